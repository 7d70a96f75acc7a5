package store

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-sign-desk/internal/logger"
	"github.com/MKhiriev/go-sign-desk/migrations"
)

// DB is the connection handle shared by every in-flight operation.
// It wraps a *sql.DB pool, which is safe for concurrent use, together with
// the dialect-specific query builder and error classifier.
type DB struct {
	*sql.DB
	dialect            Dialect
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewDB wraps an open pool. The connector is the usual caller; tests use it
// to wrap a sqlmock pool.
func NewDB(conn *sql.DB, dialect Dialect, log *logger.Logger) *DB {
	var classifier ErrorClassificator = NewSQLiteErrorClassifier()
	if dialect == DialectPostgres {
		classifier = NewPostgresErrorClassifier()
	}

	return &DB{
		DB:                 conn,
		dialect:            dialect,
		builder:            dialect.StatementBuilder(),
		errorClassificator: classifier,
		logger:             log,
	}
}

// Dialect returns the SQL flavour of the pool.
func (db *DB) Dialect() Dialect {
	return db.dialect
}

// Migrate applies the embedded migrations for the pool's dialect.
func (db *DB) Migrate(ctx context.Context) error {
	return migrations.Migrate(ctx, db.DB, string(db.dialect))
}
