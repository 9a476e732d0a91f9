package verifications

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/nubereats/accounts/internal/common"
	"github.com/nubereats/accounts/internal/dbx"
	"github.com/nubereats/accounts/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, verification *models.Verification) (*models.Verification, error) {

	query :=
		`INSERT INTO verifications (code, user_id)
         VALUES ($1, $2)
		 RETURNING id, created_at, updated_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		verification.Code, verification.UserID).
		Scan(&verification.ID, &verification.CreatedAt, &verification.UpdatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return verification, nil
}

func (r *PostgresRepository) GetByCode(ctx context.Context, code string) (*models.Verification, error) {
	query :=
		`SELECT v.id, v.code, v.user_id, u.id, u.email, u.role, u.verified
		 FROM verifications v
		 JOIN users u ON u.id = v.user_id
		 WHERE v.code = $1
		 `

	v := &models.Verification{User: &models.User{}}
	err := r.db.QueryRowContext(ctx, query, code).
		Scan(&v.ID, &v.Code, &v.UserID, &v.User.ID, &v.User.Email, &v.User.Role, &v.User.Verified)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return v, nil
}

func (r *PostgresRepository) GetByUserID(ctx context.Context, userID int64) (*models.Verification, error) {
	query :=
		`SELECT id, code, user_id FROM verifications
		 WHERE user_id = $1
		 `

	v := &models.Verification{}
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&v.ID, &v.Code, &v.UserID)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return v, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	query :=
		`DELETE FROM verifications
		 WHERE id = $1
		 `

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}
