// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"strings"

	"github.com/rs/zerolog"
)

// validate checks that the client configuration satisfies the runtime
// invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or one of the ErrInvalid*
// sentinels otherwise.
func (cfg *ClientConfig) validate() error {
	db := cfg.Storage.DB
	if strings.TrimSpace(db.DSN) == "" || db.MaxOpenConns < 0 || db.MaxIdleConns < 0 || db.ConnectTimeout <= 0 {
		return ErrInvalidStorageConfigs
	}

	c := cfg.Connect
	if c.InitialBackoff <= 0 || c.MaxBackoff < c.InitialBackoff || c.JitterPercent > 100 {
		return ErrInvalidConnectConfigs
	}

	app := cfg.App
	if app.OperationTimeout <= 0 || len(app.PhoneRegion) != 2 {
		return ErrInvalidAppConfigs
	}
	if app.Argon.Time == 0 || app.Argon.Memory == 0 || app.Argon.Threads == 0 {
		return ErrInvalidAppConfigs
	}

	if cfg.Log.Level != "" {
		if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
			return ErrInvalidLogConfigs
		}
	}

	return nil
}
