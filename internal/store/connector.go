package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"io"
	"net"
	"sync"

	"github.com/MKhiriev/go-sign-desk/internal/config"
	"github.com/MKhiriev/go-sign-desk/internal/logger"
)

type openFunc func(driverName, dsn string) (*sql.DB, error)

// connectionManager is the [Connector] implementation. It keeps at most one
// pool; concurrent Connect calls are serialised.
type connectionManager struct {
	mu     sync.Mutex
	db     *DB
	closed bool

	cfg    config.ClientDB
	open   openFunc
	logger *logger.Logger
}

// NewConnector returns a [Connector] for the datastore described by cfg.
// No connection is made until Connect is called.
func NewConnector(cfg config.ClientDB, log *logger.Logger) Connector {
	return newConnectionManager(cfg, log, sql.Open)
}

func newConnectionManager(cfg config.ClientDB, log *logger.Logger, open openFunc) *connectionManager {
	return &connectionManager{
		cfg:    cfg,
		open:   open,
		logger: log,
	}
}

// Connect returns the shared pool, opening it on first use.
//
// An existing pool is pinged and returned as is; a failed ping is reported
// but the pool is kept because database/sql re-dials on its own. A new pool
// is pinged and migrated under cfg.ConnectTimeout and only cached once both
// succeed.
func (c *connectionManager) Connect(ctx context.Context) (*DB, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil, &ConnectionError{Op: OpOpen, Err: errors.New("connector is closed")}
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.ConnectTimeout)
	defer cancel()

	if c.db != nil {
		if err := c.db.PingContext(ctx); err != nil {
			c.logger.Warn().Err(err).Str("func", "*connectionManager.Connect").Msg("existing pool failed ping")
			return nil, c.connectionError(OpPing, c.db.errorClassificator, err)
		}
		return c.db, nil
	}

	dialect, dsn, err := DetectDialect(c.cfg.DSN)
	if err != nil {
		c.logger.Err(err).Str("func", "*connectionManager.Connect").Msg("cannot detect dialect")
		return nil, &ConnectionError{Op: OpDetect, Err: err}
	}

	if dialect == DialectSQLite {
		if err = prepareSQLite(dsn); err != nil {
			c.logger.Err(err).Str("func", "*connectionManager.Connect").Msg("error creating database file")
			return nil, &ConnectionError{Op: OpOpen, Err: err}
		}
	}

	conn, err := c.open(dialect.DriverName(), dsn)
	if err != nil {
		c.logger.Err(err).Str("func", "*connectionManager.Connect").Msg("error opening database")
		return nil, &ConnectionError{Op: OpOpen, Err: err}
	}

	switch dialect {
	case DialectPostgres:
		configurePostgres(conn, c.cfg)
	case DialectSQLite:
		configureSQLite(conn, c.cfg)
	}

	db := NewDB(conn, dialect, c.logger)

	if err = conn.PingContext(ctx); err != nil {
		conn.Close()
		c.logger.Err(err).Str("func", "*connectionManager.Connect").Msg("error connecting database (ping)")
		return nil, c.connectionError(OpPing, db.errorClassificator, err)
	}

	if !c.cfg.SkipMigrations {
		if err = db.Migrate(ctx); err != nil {
			conn.Close()
			c.logger.Err(err).Str("func", "*connectionManager.Connect").Msg("error migrating database")
			return nil, c.connectionError(OpMigrate, db.errorClassificator, err)
		}
	}

	c.logger.Info().
		Str("func", "*connectionManager.Connect").
		Str("dialect", string(dialect)).
		Msg("connected to database successfully")

	c.db = db
	return db, nil
}

// Close closes the pool if one was opened. Further Connect calls fail.
func (c *connectionManager) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.closed = true
	if c.db == nil {
		return nil
	}

	err := c.db.Close()
	c.db = nil
	return err
}

func (c *connectionManager) connectionError(op string, classifier ErrorClassificator, err error) *ConnectionError {
	return &ConnectionError{
		Op:        op,
		Retryable: isRetryableConnectError(classifier, err),
		Err:       err,
	}
}

// isRetryableConnectError decides whether a ping or migrate failure is
// transient. Driver codes take precedence; without one, network failures,
// timeouts and dropped connections are transient and anything else is not.
func isRetryableConnectError(classifier ErrorClassificator, err error) bool {
	switch classifier.Classify(err) {
	case Retryable:
		return true
	case NonRetryable:
		return false
	}

	if errors.Is(err, context.Canceled) {
		return false
	}

	var netErr net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, driver.ErrBadConn),
		errors.Is(err, io.EOF),
		errors.Is(err, io.ErrUnexpectedEOF),
		errors.As(err, &netErr):
		return true
	}

	return false
}
