// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-sign-desk client. It aggregates all sub-configurations and is
// populated by merging built-in defaults with values from environment
// variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds session-level settings: operation deadlines, telephone
	// normalisation and secret hashing parameters.
	App App `envPrefix:"APP_"`

	// Storage holds the datastore connection settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Connect holds the reconnect policy applied after a failed connect.
	Connect Connect `envPrefix:"CONNECT_"`

	// Log holds the destination and level of the client log.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from defaults, environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// OperationTimeout bounds a single register or authenticate call.
	// Env: APP_OPERATION_TIMEOUT
	OperationTimeout time.Duration `env:"OPERATION_TIMEOUT"`

	// PhoneRegion is the ISO 3166-1 alpha-2 region used to interpret
	// telephone numbers written without a leading "+" (e.g. "US").
	// Env: APP_PHONE_REGION
	PhoneRegion string `env:"PHONE_REGION"`

	// ArgonTime is the argon2id iteration count.
	// Env: APP_ARGON_TIME
	ArgonTime uint32 `env:"ARGON_TIME"`

	// ArgonMemory is the argon2id memory cost in KiB.
	// Env: APP_ARGON_MEMORY
	ArgonMemory uint32 `env:"ARGON_MEMORY"`

	// ArgonThreads is the argon2id parallelism degree.
	// Env: APP_ARGON_THREADS
	ArgonThreads uint8 `env:"ARGON_THREADS"`
}

// Storage groups the configuration for the datastore.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN is the Data Source Name. A postgres:// or postgresql:// URL selects
	// PostgreSQL; a file path, file: URI or sqlite:// URL selects SQLite.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`

	// MaxOpenConns caps the pool size. Zero means unlimited.
	// Env: STORAGE_DB_MAX_OPEN_CONNS
	MaxOpenConns int `env:"MAX_OPEN_CONNS"`

	// MaxIdleConns caps the idle connections kept by the pool.
	// Env: STORAGE_DB_MAX_IDLE_CONNS
	MaxIdleConns int `env:"MAX_IDLE_CONNS"`

	// ConnMaxLifetime recycles pooled connections older than this.
	// Env: STORAGE_DB_CONN_MAX_LIFETIME
	ConnMaxLifetime time.Duration `env:"CONN_MAX_LIFETIME"`

	// ConnectTimeout bounds a single connect attempt (open, ping, migrate).
	// Env: STORAGE_DB_CONNECT_TIMEOUT
	ConnectTimeout time.Duration `env:"CONNECT_TIMEOUT"`

	// SkipMigrations disables applying embedded migrations on connect.
	// Env: STORAGE_DB_SKIP_MIGRATIONS
	SkipMigrations bool `env:"SKIP_MIGRATIONS"`
}

// Connect describes the exponential backoff used between connect attempts.
//
// MaxRetries and JitterPercent are pointers: zero is a meaningful value for
// both (no retries, no jitter), so nil is what marks a source that left them
// unset.
type Connect struct {
	// MaxRetries is the number of retries after the first failed attempt.
	// Env: CONNECT_MAX_RETRIES
	MaxRetries *uint64 `env:"MAX_RETRIES"`

	// InitialBackoff is the delay before the first retry.
	// Env: CONNECT_INITIAL_BACKOFF
	InitialBackoff time.Duration `env:"INITIAL_BACKOFF"`

	// MaxBackoff caps every individual delay.
	// Env: CONNECT_MAX_BACKOFF
	MaxBackoff time.Duration `env:"MAX_BACKOFF"`

	// JitterPercent randomises each delay by up to this percentage.
	// Env: CONNECT_JITTER_PERCENT
	JitterPercent *uint64 `env:"JITTER_PERCENT"`
}

// Log holds the client log settings.
type Log struct {
	// File is the path of the JSON log file. Empty means next to the
	// executable.
	// Env: LOG_FILE
	File string `env:"FILE"`

	// Level is a zerolog level name ("debug", "info", ...).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// Defaults applied before every other source.
const (
	DefaultDSN              = "sign-desk.db"
	DefaultMaxOpenConns     = 10
	DefaultMaxIdleConns     = 5
	DefaultConnMaxLifetime  = 30 * time.Minute
	DefaultConnectTimeout   = 5 * time.Second
	DefaultMaxRetries       = 5
	DefaultInitialBackoff   = 500 * time.Millisecond
	DefaultMaxBackoff       = 30 * time.Second
	DefaultJitterPercent    = 10
	DefaultOperationTimeout = 10 * time.Second
	DefaultPhoneRegion      = "US"
	DefaultArgonTime        = 1
	DefaultArgonMemory      = 64 * 1024
	DefaultArgonThreads     = 4
	DefaultLogLevel         = "info"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			OperationTimeout: DefaultOperationTimeout,
			PhoneRegion:      DefaultPhoneRegion,
			ArgonTime:        DefaultArgonTime,
			ArgonMemory:      DefaultArgonMemory,
			ArgonThreads:     DefaultArgonThreads,
		},
		Storage: Storage{
			DB: DB{
				DSN:             DefaultDSN,
				MaxOpenConns:    DefaultMaxOpenConns,
				MaxIdleConns:    DefaultMaxIdleConns,
				ConnMaxLifetime: DefaultConnMaxLifetime,
				ConnectTimeout:  DefaultConnectTimeout,
			},
		},
		Connect: Connect{
			MaxRetries:     uint64Ptr(DefaultMaxRetries),
			InitialBackoff: DefaultInitialBackoff,
			MaxBackoff:     DefaultMaxBackoff,
			JitterPercent:  uint64Ptr(DefaultJitterPercent),
		},
		Log: Log{
			Level: DefaultLogLevel,
		},
	}
}

// GetStructuredConfig loads and merges the configuration from all available
// sources in the following priority order (last source wins for non-zero
// fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags().
		withJSON().
		build()
}

func uint64Ptr(v uint64) *uint64 {
	return &v
}

func uint64Value(p *uint64) uint64 {
	if p == nil {
		return 0
	}
	return *p
}
