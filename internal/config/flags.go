package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags from the process command line.
//
// Flags:
//
//	-d database DSN
//	-c/-config json file path with configs
//	-max-open-conns datastore pool size
//	-connect-timeout single connect attempt timeout (e.g., "5s")
//	-skip-migrations do not apply embedded migrations on connect
//	-connect-retries retries after a failed connect
//	-initial-backoff first retry delay (e.g., "500ms")
//	-max-backoff retry delay cap (e.g., "30s")
//	-jitter-percent retry delay jitter, 0 disables it
//	-operation-timeout register/authenticate timeout (e.g., "10s")
//	-phone-region default telephone region (e.g., "US")
//	-log-file client log file path
//	-log-level client log level
func ParseFlags() *StructuredConfig {
	var databaseDSN string
	var jsonConfigPath string
	var maxOpenConns int
	var connectTimeout time.Duration
	var skipMigrations bool
	var connectRetries uint64
	var initialBackoff time.Duration
	var maxBackoff time.Duration
	var jitterPercent uint64
	var operationTimeout time.Duration
	var phoneRegion string
	var logFile string
	var logLevel string

	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.IntVar(&maxOpenConns, "max-open-conns", 0, "Datastore pool size")
	flag.DurationVar(&connectTimeout, "connect-timeout", 0, "Connect attempt timeout (e.g., 5s)")
	flag.BoolVar(&skipMigrations, "skip-migrations", false, "Do not apply migrations on connect")
	flag.Uint64Var(&connectRetries, "connect-retries", 0, "Retries after a failed connect")
	flag.DurationVar(&initialBackoff, "initial-backoff", 0, "First retry delay (e.g., 500ms)")
	flag.DurationVar(&maxBackoff, "max-backoff", 0, "Retry delay cap (e.g., 30s)")
	flag.Uint64Var(&jitterPercent, "jitter-percent", 0, "Retry delay jitter in percent")
	flag.DurationVar(&operationTimeout, "operation-timeout", 0, "Register/authenticate timeout (e.g., 10s)")
	flag.StringVar(&phoneRegion, "phone-region", "", "Default telephone region (e.g., US)")
	flag.StringVar(&logFile, "log-file", "", "Client log file path")
	flag.StringVar(&logLevel, "log-level", "", "Client log level")

	flag.Parse()

	connect := Connect{
		InitialBackoff: initialBackoff,
		MaxBackoff:     maxBackoff,
	}
	// Only flags given on the command line count, so "-connect-retries 0" can
	// turn retries off.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "connect-retries":
			connect.MaxRetries = uint64Ptr(connectRetries)
		case "jitter-percent":
			connect.JitterPercent = uint64Ptr(jitterPercent)
		}
	})

	return &StructuredConfig{
		App: App{
			OperationTimeout: operationTimeout,
			PhoneRegion:      phoneRegion,
		},
		Storage: Storage{
			DB: DB{
				DSN:            databaseDSN,
				MaxOpenConns:   maxOpenConns,
				ConnectTimeout: connectTimeout,
				SkipMigrations: skipMigrations,
			},
		},
		Connect: connect,
		Log: Log{
			File:  logFile,
			Level: logLevel,
		},
		JSONFilePath: jsonConfigPath,
	}
}
