package config

import (
	"fmt"
	"time"
)

// ArgonParams are the argon2id cost parameters used to hash secrets.
type ArgonParams struct {
	Time    uint32
	Memory  uint32
	Threads uint8
}

// ClientApp holds session-level client settings.
type ClientApp struct {
	// OperationTimeout bounds a single register or authenticate call.
	OperationTimeout time.Duration
	// PhoneRegion is the default region for telephone parsing.
	PhoneRegion string
	// Argon holds the secret hashing cost.
	Argon ArgonParams
}

// ClientDB contains datastore connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite/PostgreSQL connection string used by the client.
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnectTimeout  time.Duration
	SkipMigrations  bool
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds datastore settings.
	DB ClientDB
}

// ClientConnect holds the reconnect backoff policy.
type ClientConnect struct {
	MaxRetries     uint64
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
	JitterPercent  uint64
}

// ClientLog holds the client log settings.
type ClientLog struct {
	File  string
	Level string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains session-level client settings.
	App ClientApp
	// Storage contains datastore settings.
	Storage ClientStorage
	// Connect contains the reconnect policy.
	Connect ClientConnect
	// Log contains log destination and level.
	Log ClientLog
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps it onto the
// [ClientConfig] shape consumed by the runtime, and validates the result.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)

	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			OperationTimeout: cfg.App.OperationTimeout,
			PhoneRegion:      cfg.App.PhoneRegion,
			Argon: ArgonParams{
				Time:    cfg.App.ArgonTime,
				Memory:  cfg.App.ArgonMemory,
				Threads: cfg.App.ArgonThreads,
			},
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN:             cfg.Storage.DB.DSN,
				MaxOpenConns:    cfg.Storage.DB.MaxOpenConns,
				MaxIdleConns:    cfg.Storage.DB.MaxIdleConns,
				ConnMaxLifetime: cfg.Storage.DB.ConnMaxLifetime,
				ConnectTimeout:  cfg.Storage.DB.ConnectTimeout,
				SkipMigrations:  cfg.Storage.DB.SkipMigrations,
			},
		},
		Connect: ClientConnect{
			MaxRetries:     uint64Value(cfg.Connect.MaxRetries),
			InitialBackoff: cfg.Connect.InitialBackoff,
			MaxBackoff:     cfg.Connect.MaxBackoff,
			JitterPercent:  uint64Value(cfg.Connect.JitterPercent),
		},
		Log: ClientLog{
			File:  cfg.Log.File,
			Level: cfg.Log.Level,
		},
	}
}
