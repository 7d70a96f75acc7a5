package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the on-disk JSON layout.
type StructuredJSONConfig struct {
	App struct {
		OperationTimeout Duration `json:"operation_timeout"`
		PhoneRegion      string   `json:"phone_region"`
		Argon            struct {
			Time    uint32 `json:"time"`
			Memory  uint32 `json:"memory"`
			Threads uint8  `json:"threads"`
		} `json:"argon,omitempty"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN             string   `json:"dsn"`
			MaxOpenConns    int      `json:"max_open_conns"`
			MaxIdleConns    int      `json:"max_idle_conns"`
			ConnMaxLifetime Duration `json:"conn_max_lifetime"`
			ConnectTimeout  Duration `json:"connect_timeout"`
			SkipMigrations  bool     `json:"skip_migrations"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Connect struct {
		MaxRetries     *uint64  `json:"max_retries"`
		InitialBackoff Duration `json:"initial_backoff"`
		MaxBackoff     Duration `json:"max_backoff"`
		JitterPercent  *uint64  `json:"jitter_percent"`
	} `json:"connect,omitempty"`

	Log struct {
		File  string `json:"file"`
		Level string `json:"level"`
	} `json:"log,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			OperationTimeout: time.Duration(jsonCfg.App.OperationTimeout),
			PhoneRegion:      jsonCfg.App.PhoneRegion,
			ArgonTime:        jsonCfg.App.Argon.Time,
			ArgonMemory:      jsonCfg.App.Argon.Memory,
			ArgonThreads:     jsonCfg.App.Argon.Threads,
		},
		Storage: Storage{
			DB: DB{
				DSN:             jsonCfg.Storage.DB.DSN,
				MaxOpenConns:    jsonCfg.Storage.DB.MaxOpenConns,
				MaxIdleConns:    jsonCfg.Storage.DB.MaxIdleConns,
				ConnMaxLifetime: time.Duration(jsonCfg.Storage.DB.ConnMaxLifetime),
				ConnectTimeout:  time.Duration(jsonCfg.Storage.DB.ConnectTimeout),
				SkipMigrations:  jsonCfg.Storage.DB.SkipMigrations,
			},
		},
		Connect: Connect{
			MaxRetries:     jsonCfg.Connect.MaxRetries,
			InitialBackoff: time.Duration(jsonCfg.Connect.InitialBackoff),
			MaxBackoff:     time.Duration(jsonCfg.Connect.MaxBackoff),
			JitterPercent:  jsonCfg.Connect.JitterPercent,
		},
		Log: Log{
			File:  jsonCfg.Log.File,
			Level: jsonCfg.Log.Level,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
