package httpserver

import (
	"net/http"

	"github.com/nubereats/accounts/internal/common"
	"github.com/nubereats/accounts/internal/logging"
	"github.com/nubereats/accounts/internal/server/auth"
	"github.com/nubereats/accounts/internal/server/services"
)

// SessionAuth resolves the session token from the X-JWT header into the
// acting user and stores it on the request context. A missing, invalid or
// stale token leaves the request unauthenticated; guarded resolvers reject
// it themselves, so the middleware never writes a response.
func SessionAuth(accounts *services.AccountService, secret []byte, logger logging.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.Header.Get(common.SessionTokenHeaderName)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			userID, err := auth.GetUserIDFromToken(token, secret)
			if err != nil {
				logger.Debug(r.Context(), "rejecting session token", "error", err)
				next.ServeHTTP(w, r)
				return
			}

			user, err := accounts.FindByID(r.Context(), userID)
			if err != nil {
				logger.Debug(r.Context(), "session token for unknown user", "user_id", userID)
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.WithActingUser(r.Context(), user)))
		})
	}
}
