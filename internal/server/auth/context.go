package auth

import (
	"context"

	"github.com/nubereats/accounts/internal/server/models"
)

type contextKey int

const actingUserKey contextKey = iota

// WithActingUser returns a context carrying the authenticated user.
func WithActingUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, actingUserKey, user)
}

// ActingUser extracts the authenticated user placed by the guard middleware.
// ok is false when the request carried no valid session token.
func ActingUser(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(actingUserKey).(*models.User)
	return user, ok && user != nil
}
