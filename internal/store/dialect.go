package store

import (
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-sign-desk/migrations"
)

// Dialect names the SQL flavour behind a DSN. Its value is also the goose
// dialect and the migrations directory.
type Dialect string

const (
	DialectPostgres Dialect = migrations.DialectPostgres
	DialectSQLite   Dialect = migrations.DialectSQLite
)

// DriverName returns the database/sql driver registered for the dialect.
func (d Dialect) DriverName() string {
	switch d {
	case DialectPostgres:
		return "pgx"
	case DialectSQLite:
		return "sqlite3"
	default:
		return ""
	}
}

// StatementBuilder returns a squirrel builder using the dialect's placeholders.
func (d Dialect) StatementBuilder() sq.StatementBuilderType {
	if d == DialectPostgres {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}

// DetectDialect infers the dialect from dsn and returns the DSN in the form
// the driver expects.
//
//	postgres://..., postgresql://..., "host=... dbname=..." → PostgreSQL
//	sqlite://path, file:..., *.db, *.sqlite, *.sqlite3, :memory: → SQLite
func DetectDialect(dsn string) (Dialect, string, error) {
	trimmed := strings.TrimSpace(dsn)
	lower := strings.ToLower(trimmed)

	switch {
	case trimmed == "":
		return "", "", ErrUnsupportedDSN
	case strings.HasPrefix(lower, "postgres://"), strings.HasPrefix(lower, "postgresql://"):
		return DialectPostgres, trimmed, nil
	case strings.Contains(lower, "host=") && strings.Contains(lower, "dbname="):
		return DialectPostgres, trimmed, nil
	case strings.HasPrefix(lower, "sqlite://"):
		return DialectSQLite, trimmed[len("sqlite://"):], nil
	case strings.HasPrefix(lower, "file:"), lower == ":memory:":
		return DialectSQLite, trimmed, nil
	}

	for _, ext := range []string{".db", ".sqlite", ".sqlite3"} {
		if strings.HasSuffix(lower, ext) {
			return DialectSQLite, trimmed, nil
		}
	}

	return "", "", ErrUnsupportedDSN
}
