// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"dario.cat/mergo"
)

// Defaults applied when no source sets a value.
const (
	DefaultAccount   = "default"
	DefaultDataDir   = "data"
	DefaultTTL       = 7 * 24 * time.Hour
	DefaultQueueSize = 256
	DefaultLogLevel  = "info"
)

type configBuilder struct {
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 4),
	}
}

// build merges the collected configs. Sources added first take precedence.
func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}
	config.derivePaths()

	return config, config.validate()
}

func (b *configBuilder) withFlags(flags *StructuredConfig) *configBuilder {
	if flags != nil {
		b.configs = append(b.configs, flags)
	}

	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

// withJSON loads the JSON file named by the first source that sets one.
func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string
	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			jsonPath = cfg.JSONFilePath
			break
		}
	}

	if jsonPath != "" {
		jsonCfg, err := parseJSON(jsonPath)
		if err != nil {
			b.err = errors.Join(b.err, err)
			return b
		}
		b.configs = append(b.configs, jsonCfg)
	}

	return b
}

func (b *configBuilder) withDefaults() *configBuilder {
	b.configs = append(b.configs, &StructuredConfig{
		App: App{
			Account: DefaultAccount,
			DataDir: DefaultDataDir,
		},
		Drafts: Drafts{
			TTL:       DefaultTTL,
			QueueSize: DefaultQueueSize,
		},
		Logs: Logs{
			Level: DefaultLogLevel,
		},
	})

	return b
}

// derivePaths fills the per-account storage locations left empty.
func (cfg *StructuredConfig) derivePaths() {
	if cfg.App.DataDir == "" || cfg.App.Account == "" {
		return
	}

	accountDir := filepath.Join(cfg.App.DataDir, cfg.App.Account)
	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = filepath.Join(accountDir, "drafts.db")
	}
	if cfg.Storage.Files.CacheDir == "" {
		cfg.Storage.Files.CacheDir = filepath.Join(accountDir, "drafts")
	}
}
