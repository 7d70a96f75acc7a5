package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid datastore settings
	// (for example, empty DSN or a non-positive connect timeout).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidConnectConfigs indicates an unusable reconnect policy
	// (for example, a max backoff below the initial one).
	ErrInvalidConnectConfigs = errors.New("invalid connect configuration")
	// ErrInvalidAppConfigs indicates invalid session-level settings
	// (for example, a zero operation timeout or a malformed phone region).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidLogConfigs indicates an unknown log level.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
)
