// Package users persists identity records and enforces email uniqueness.
package users

import (
	"context"

	"github.com/nubereats/accounts/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	// UpdateEmail is a partial update: it changes the address and resets
	// the verified flag in one statement.
	UpdateEmail(ctx context.Context, id int64, email string) error
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	SetVerified(ctx context.Context, id int64, verified bool) error
}
