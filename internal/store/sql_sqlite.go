package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-sign-desk/internal/config"
)

// configureSQLite keeps a single connection: SQLite serialises writers and a
// recycled in-memory connection would lose the database.
func configureSQLite(conn *sql.DB, _ config.ClientDB) {
	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)
	conn.SetConnMaxLifetime(0)
}

// prepareSQLite creates the database file and its directory when dsn is a
// plain path. URIs and in-memory databases are left to the driver.
func prepareSQLite(dsn string) error {
	if dsn == ":memory:" || strings.HasPrefix(strings.ToLower(dsn), "file:") {
		return nil
	}

	return createLocalDBFileIfNotExists(dsn)
}

func createLocalDBFileIfNotExists(dbFile string) error {
	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		if dir := filepath.Dir(dbFile); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("error creating DB directory: %w", err)
			}
		}

		// if not found - create
		f, err := os.Create(dbFile)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		f.Close()
	}

	// file already exists
	return nil
}
