// Package httpserver exposes the account schema over HTTP: a chi router with
// CORS, the session-token middleware, and the GraphQL handler on /graphql.
package httpserver

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/graphql-go/handler"

	"github.com/nubereats/accounts/internal/common"
	"github.com/nubereats/accounts/internal/logging"
	gqlapi "github.com/nubereats/accounts/internal/server/graphql"
	"github.com/nubereats/accounts/internal/server/services"
)

const shutdownTimeout = 5 * time.Second

type HTTPServer struct {
	address string
	logger  logging.Logger
	handler http.Handler
}

func NewHTTPServer(address string, l logging.Logger, accounts *services.AccountService, secretKey string) (*HTTPServer, error) {
	logger := l.With("module", "http_server")

	schema, err := gqlapi.NewSchema(accounts)
	if err != nil {
		return nil, err
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", common.SessionTokenHeaderName},
		MaxAge:         300,
	}))
	r.Use(SessionAuth(accounts, []byte(secretKey), logger))

	r.Handle("/graphql", handler.New(&handler.Config{
		Schema:   &schema,
		Pretty:   true,
		GraphiQL: true,
	}))

	return &HTTPServer{address: address, logger: logger, handler: r}, nil
}

func (s *HTTPServer) Run(ctx context.Context) error {

	srv := &http.Server{Addr: s.address, Handler: s.handler}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "HTTP server shutdown error", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
