package store

import (
	"database/sql"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/MKhiriev/go-sign-desk/internal/config"
)

// configurePostgres applies the pool limits from cfg.
func configurePostgres(conn *sql.DB, cfg config.ClientDB) {
	if cfg.MaxOpenConns > 0 {
		conn.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	conn.SetMaxIdleConns(cfg.MaxIdleConns)
	conn.SetConnMaxLifetime(cfg.ConnMaxLifetime)
}
