// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"github.com/spf13/pflag"
)

// StructuredConfig is the top-level configuration container. It aggregates
// all sub-configurations and is populated by merging values from flags,
// environment variables, an optional JSON file and defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds the account and the root data directory.
	App App `envPrefix:"APP_"`

	// Storage holds the drafts database and media directory settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Drafts holds the behaviour settings of the drafts store.
	Drafts Drafts `envPrefix:"DRAFTS_"`

	// Logs holds the log destination and level.
	Logs Logs `envPrefix:"LOGS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the --config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds account level settings.
type App struct {
	// Account selects the per-account database and media directory.
	// Env: APP_ACCOUNT
	Account string `env:"ACCOUNT"`

	// DataDir is the root directory under which every account keeps its
	// database and drafts media.
	// Env: APP_DATA_DIR
	DataDir string `env:"DATA_DIR"`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	// DB holds the drafts database settings.
	DB DB `envPrefix:"DB_"`

	// Files holds the drafts media directory settings.
	Files Files `envPrefix:"FILES_"`
}

// DB holds connection settings for the SQLite drafts database.
type DB struct {
	// DSN is the SQLite database file path or DSN. Derived from
	// App.DataDir and App.Account when empty.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Files holds the location of the media files owned by drafts.
type Files struct {
	// CacheDir is the drafts media directory. Derived from App.DataDir and
	// App.Account when empty.
	// Env: STORAGE_FILES_CACHE_DIR
	CacheDir string `env:"CACHE_DIR"`
}

// Drafts holds drafts store settings.
type Drafts struct {
	// TTL is the lifetime of plain and failed drafts.
	// Env: DRAFTS_TTL
	TTL time.Duration `env:"TTL"`

	// QueueSize is the buffer of the storage queue.
	// Env: DRAFTS_QUEUE_SIZE
	QueueSize int `env:"QUEUE_SIZE"`
}

// Logs holds logging settings.
type Logs struct {
	// Dir is the directory of the log file. Logs go next to the executable
	// when empty.
	// Env: LOGS_DIR
	Dir string `env:"DIR"`

	// Level is a zerolog level name.
	// Env: LOGS_LEVEL
	Level string `env:"LEVEL"`
}

// GetStructuredConfig loads, merges, and validates the configuration from all
// available sources. flags is the config bound with [BindFlags]; it may be nil.
func GetStructuredConfig(flags *StructuredConfig) (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(flags).
		withEnv().
		withJSON().
		withDefaults().
		build()
}

// BindFlags registers the configuration flags on fs and returns the config
// they are parsed into.
//
// Flags:
//
//	-a/--account      account name
//	--data-dir        root data directory
//	-d/--dsn          drafts database DSN
//	-f/--cache-dir    drafts media directory
//	--ttl             lifetime of plain drafts (e.g. 168h)
//	--queue-size      storage queue buffer
//	--log-dir         log directory
//	--log-level       log level
//	-c/--config       json file path with configs
func BindFlags(fs *pflag.FlagSet) *StructuredConfig {
	cfg := new(StructuredConfig)

	fs.StringVarP(&cfg.App.Account, "account", "a", "", "Account name")
	fs.StringVar(&cfg.App.DataDir, "data-dir", "", "Root data directory")
	fs.StringVarP(&cfg.Storage.DB.DSN, "dsn", "d", "", "Drafts database DSN")
	fs.StringVarP(&cfg.Storage.Files.CacheDir, "cache-dir", "f", "", "Drafts media directory")
	fs.DurationVar(&cfg.Drafts.TTL, "ttl", 0, "Lifetime of plain and failed drafts (e.g. 168h)")
	fs.IntVar(&cfg.Drafts.QueueSize, "queue-size", 0, "Storage queue buffer size")
	fs.StringVar(&cfg.Logs.Dir, "log-dir", "", "Log directory")
	fs.StringVar(&cfg.Logs.Level, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVarP(&cfg.JSONFilePath, "config", "c", "", "JSON config file path")

	return cfg
}
