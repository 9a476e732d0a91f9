package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config fields from environment variables, loading a
// local .env file first if one exists. A missing .env is not an error.
func parseEnv(config *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("ENDPOINT_ADDR"); v != "" {
		config.EndpointAddr = v
	}
	if v := os.Getenv("DATABASE_DSN"); v != "" {
		config.DatabaseDSN = v
	}
	if v := os.Getenv("SECRET_KEY"); v != "" {
		config.SecretKey = v
	}
	if v := os.Getenv("TOKEN_VALIDITY_DURATION"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			config.TokenValidityDuration = d
		}
	}
	if v := os.Getenv("MAILGUN_API_KEY"); v != "" {
		config.MailgunAPIKey = v
	}
	if v := os.Getenv("MAILGUN_DOMAIN"); v != "" {
		config.MailgunDomain = v
	}
	if v := os.Getenv("MAIL_FROM_NAME"); v != "" {
		config.MailFromName = v
	}
}
