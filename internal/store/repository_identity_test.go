package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-sign-desk/internal/logger"
	"github.com/MKhiriev/go-sign-desk/models"
)

func newTestIdentityRepo(t *testing.T, dialect Dialect) (IdentityRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewIdentityRepository(NewDB(db, dialect, logger.Nop())), mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func testIdentity() models.Identity {
	return models.Identity{
		FirstName:  "Ada",
		LastName:   "Lovelace",
		Telephone:  "+14155552671",
		SecretHash: "$argon2id$v=19$m=65536,t=1,p=4$c2FsdA$aGFzaA",
	}
}

// ── CreateIdentity ──────────────────────────────────────────────────────────

func TestCreateIdentity_Postgres_Success(t *testing.T) {
	repo, mock := newTestIdentityRepo(t, DialectPostgres)
	in := testIdentity()

	mock.ExpectQuery(`INSERT INTO identities \(first_name,last_name,telephone,secret_hash\) VALUES \(\$1,\$2,\$3,\$4\) RETURNING id`).
		WithArgs(in.FirstName, in.LastName, in.Telephone, in.SecretHash).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))

	created, err := repo.CreateIdentity(context.Background(), in)

	require.NoError(t, err)
	assert.Equal(t, int64(42), created.ID)
	assert.Equal(t, in.Telephone, created.Telephone)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateIdentity_SQLite_UsesQuestionPlaceholders(t *testing.T) {
	repo, mock := newTestIdentityRepo(t, DialectSQLite)
	in := testIdentity()

	mock.ExpectQuery(`INSERT INTO identities \(first_name,last_name,telephone,secret_hash\) VALUES \(\?,\?,\?,\?\) RETURNING id`).
		WithArgs(in.FirstName, in.LastName, in.Telephone, in.SecretHash).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	created, err := repo.CreateIdentity(context.Background(), in)

	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateIdentity_UniqueViolation(t *testing.T) {
	tests := []struct {
		name    string
		dialect Dialect
		err     error
	}{
		{name: "postgres", dialect: DialectPostgres, err: pgError(pgerrcode.UniqueViolation)},
		{
			name:    "sqlite",
			dialect: DialectSQLite,
			err:     sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestIdentityRepo(t, tt.dialect)

			mock.ExpectQuery("INSERT INTO identities").
				WillReturnError(tt.err)

			_, err := repo.CreateIdentity(context.Background(), testIdentity())
			assert.ErrorIs(t, err, ErrTelephoneAlreadyExists)
		})
	}
}

func TestCreateIdentity_UnexpectedDBError(t *testing.T) {
	repo, mock := newTestIdentityRepo(t, DialectPostgres)

	mock.ExpectQuery("INSERT INTO identities").
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreateIdentity(context.Background(), testIdentity())
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
	assert.NotErrorIs(t, err, ErrTelephoneAlreadyExists)
}

func TestCreateIdentity_OtherConstraintIsNotConflict(t *testing.T) {
	repo, mock := newTestIdentityRepo(t, DialectPostgres)

	mock.ExpectQuery("INSERT INTO identities").
		WillReturnError(pgError(pgerrcode.NotNullViolation))

	_, err := repo.CreateIdentity(context.Background(), testIdentity())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrTelephoneAlreadyExists)
}

// ── FindIdentityByTelephone ─────────────────────────────────────────────────

func TestFindIdentityByTelephone_Success(t *testing.T) {
	repo, mock := newTestIdentityRepo(t, DialectPostgres)
	in := testIdentity()
	now := time.Now()

	rows := sqlmock.NewRows(identityColumns).
		AddRow(7, in.FirstName, in.LastName, in.Telephone, in.SecretHash, now)

	mock.ExpectQuery(`SELECT id, first_name, last_name, telephone, secret_hash, created_at FROM identities WHERE telephone = \$1 LIMIT 1`).
		WithArgs(in.Telephone).
		WillReturnRows(rows)

	found, err := repo.FindIdentityByTelephone(context.Background(), in.Telephone)

	require.NoError(t, err)
	assert.Equal(t, int64(7), found.ID)
	assert.Equal(t, in.FirstName, found.FirstName)
	assert.Equal(t, in.LastName, found.LastName)
	assert.Equal(t, in.SecretHash, found.SecretHash)
	assert.Equal(t, now, found.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindIdentityByTelephone_NotFound(t *testing.T) {
	repo, mock := newTestIdentityRepo(t, DialectSQLite)

	mock.ExpectQuery(`FROM identities WHERE telephone = \? LIMIT 1`).
		WithArgs("+10000000000").
		WillReturnRows(sqlmock.NewRows(identityColumns))

	_, err := repo.FindIdentityByTelephone(context.Background(), "+10000000000")
	assert.ErrorIs(t, err, ErrIdentityNotFound)
}

func TestFindIdentityByTelephone_UnexpectedDBError(t *testing.T) {
	repo, mock := newTestIdentityRepo(t, DialectPostgres)

	mock.ExpectQuery("SELECT").
		WillReturnError(sql.ErrConnDone)

	_, err := repo.FindIdentityByTelephone(context.Background(), "+1")
	require.Error(t, err)
	assert.ErrorIs(t, err, sql.ErrConnDone)
	assert.Contains(t, err.Error(), "unexpected DB error")
}

func TestFindIdentityByTelephone_ScanError(t *testing.T) {
	repo, mock := newTestIdentityRepo(t, DialectPostgres)

	mock.ExpectQuery("SELECT").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1)) // intentionally wrong shape

	_, err := repo.FindIdentityByTelephone(context.Background(), "+1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrIdentityNotFound)
}
