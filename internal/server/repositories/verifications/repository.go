// Package verifications persists pending email-verification records,
// one-to-one with users.
package verifications

import (
	"context"

	"github.com/nubereats/accounts/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, verification *models.Verification) (*models.Verification, error)
	// GetByCode loads a verification together with its owning user.
	GetByCode(ctx context.Context, code string) (*models.Verification, error)
	GetByUserID(ctx context.Context, userID int64) (*models.Verification, error)
	Delete(ctx context.Context, id int64) error
}
