package verifications

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/nubereats/accounts/internal/common"
	"github.com/nubereats/accounts/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^INSERT\s+INTO\s+verifications\s*\(code,\s*user_id\)\s*VALUES\s*\(\$1,\s*\$2\)\s*RETURNING\s+id,\s*created_at,\s*updated_at\s*$`

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(5), now, now)
	mock.ExpectQuery(q).
		WithArgs("c0de", int64(1)).
		WillReturnRows(rows)

	v := &models.Verification{Code: "c0de", UserID: 1}
	got, err := repo.Create(context.Background(), v)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID != 5 {
		t.Fatalf("unexpected verification: %+v", got)
	}
}

func TestCreate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`INSERT\s+INTO\s+verifications`).
		WithArgs("c0de", int64(1)).
		WillReturnError(errors.New("db down"))

	_, err := repo.Create(context.Background(), &models.Verification{Code: "c0de", UserID: 1})
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestGetByCode_FoundWithUser(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+v\.id,\s*v\.code,\s*v\.user_id,\s*u\.id,\s*u\.email,\s*u\.role,\s*u\.verified\s+FROM\s+verifications\s+v\s+JOIN\s+users\s+u\s+ON\s+u\.id\s*=\s*v\.user_id\s+WHERE\s+v\.code\s*=\s*\$1\s*$`

	rows := sqlmock.NewRows([]string{"id", "code", "user_id", "u_id", "email", "role", "verified"}).
		AddRow(int64(5), "c0de", int64(1), int64(1), "a@x.com", "Client", false)
	mock.ExpectQuery(q).
		WithArgs("c0de").
		WillReturnRows(rows)

	got, err := repo.GetByCode(context.Background(), "c0de")
	if err != nil {
		t.Fatalf("GetByCode error: %v", err)
	}
	if got.User == nil || got.User.Email != "a@x.com" || got.UserID != 1 {
		t.Fatalf("unexpected verification: %+v", got)
	}
}

func TestGetByCode_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT\s+v\.id,.*WHERE\s+v\.code`).
		WithArgs("gone").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByCode(context.Background(), "gone")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestGetByUserID_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT\s+id,\s*code,\s*user_id\s+FROM\s+verifications\s+WHERE\s+user_id`).
		WithArgs(int64(9)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByUserID(context.Background(), 9)
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestDelete_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^DELETE\s+FROM\s+verifications\s+WHERE\s+id\s*=\s*\$1\s*$`

	mock.ExpectExec(q).
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Delete(context.Background(), 5); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
}
