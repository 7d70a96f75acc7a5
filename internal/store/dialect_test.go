package store

import (
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectDialect(t *testing.T) {
	tests := []struct {
		name        string
		dsn         string
		wantDialect Dialect
		wantDSN     string
		wantErr     bool
	}{
		{name: "postgres url", dsn: "postgres://u:p@localhost/db", wantDialect: DialectPostgres, wantDSN: "postgres://u:p@localhost/db"},
		{name: "postgresql url upper", dsn: "PostgreSQL://u@h/db", wantDialect: DialectPostgres, wantDSN: "PostgreSQL://u@h/db"},
		{name: "postgres keyword dsn", dsn: "host=localhost dbname=signdesk user=u", wantDialect: DialectPostgres, wantDSN: "host=localhost dbname=signdesk user=u"},
		{name: "sqlite scheme", dsn: "sqlite://data/app.db", wantDialect: DialectSQLite, wantDSN: "data/app.db"},
		{name: "file uri", dsn: "file:test.db?cache=shared", wantDialect: DialectSQLite, wantDSN: "file:test.db?cache=shared"},
		{name: "memory", dsn: ":memory:", wantDialect: DialectSQLite, wantDSN: ":memory:"},
		{name: "plain path", dsn: "  ./sign-desk.sqlite3 ", wantDialect: DialectSQLite, wantDSN: "./sign-desk.sqlite3"},
		{name: "empty", dsn: "", wantErr: true},
		{name: "mysql", dsn: "mysql://root@localhost/db", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dialect, dsn, err := DetectDialect(tt.dsn)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnsupportedDSN)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantDialect, dialect)
			assert.Equal(t, tt.wantDSN, dsn)
		})
	}
}

func TestDialect_DriverName(t *testing.T) {
	assert.Equal(t, "pgx", DialectPostgres.DriverName())
	assert.Equal(t, "sqlite3", DialectSQLite.DriverName())
	assert.Empty(t, Dialect("oracle").DriverName())
}

func TestClassifyPgError(t *testing.T) {
	tests := []struct {
		code string
		want ErrorClassification
	}{
		{pgerrcode.ConnectionFailure, Retryable},
		{pgerrcode.SerializationFailure, Retryable},
		{pgerrcode.DeadlockDetected, Retryable},
		{pgerrcode.AdminShutdown, Retryable},
		{pgerrcode.CannotConnectNow, Retryable},
		{pgerrcode.UniqueViolation, NonRetryable},
		{pgerrcode.InvalidAuthorizationSpecification, NonRetryable},
		{pgerrcode.UndefinedTable, NonRetryable},
		{pgerrcode.DataException, NonRetryable},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyPgError(&pgconn.PgError{Code: tt.code}))
		})
	}
}

func TestPostgresErrorClassifier(t *testing.T) {
	c := NewPostgresErrorClassifier()

	assert.Equal(t, NonRetryable, c.Classify(nil))
	assert.Equal(t, Unknown, c.Classify(assert.AnError))
	assert.Equal(t, Retryable, c.Classify(pgError(pgerrcode.ConnectionException)))
	assert.True(t, c.IsUniqueViolation(pgError(pgerrcode.UniqueViolation)))
	assert.False(t, c.IsUniqueViolation(pgError(pgerrcode.ForeignKeyViolation)))
	assert.False(t, c.IsUniqueViolation(assert.AnError))
}

func TestSQLiteErrorClassifier(t *testing.T) {
	c := NewSQLiteErrorClassifier()

	assert.Equal(t, NonRetryable, c.Classify(nil))
	assert.Equal(t, Unknown, c.Classify(assert.AnError))
	assert.Equal(t, Retryable, c.Classify(sqlite3.Error{Code: sqlite3.ErrLocked}))
	assert.Equal(t, NonRetryable, c.Classify(sqlite3.Error{Code: sqlite3.ErrConstraint}))
	assert.True(t, c.IsUniqueViolation(sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}))
	assert.False(t, c.IsUniqueViolation(sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintNotNull}))
}
