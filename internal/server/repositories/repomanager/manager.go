package repomanager

import (
	"context"
	"database/sql"

	"github.com/nubereats/accounts/internal/dbx"
	"github.com/nubereats/accounts/internal/server/repositories/users"
	"github.com/nubereats/accounts/internal/server/repositories/verifications"
)

// RepositoryManager vends repository implementations bound to a DBTX, so
// the same repositories can run against the pool or inside a transaction.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Verifications(db dbx.DBTX) verifications.Repository
}
