// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"strings"

	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] can be used to
// open the drafts store.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.Account == "" || strings.ContainsAny(cfg.App.Account, `/\`) {
		return ErrInvalidAppConfigs
	}

	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}
	if cfg.Storage.Files.CacheDir == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Drafts.TTL <= 0 || cfg.Drafts.QueueSize <= 0 {
		return ErrInvalidDraftsConfigs
	}

	if cfg.Logs.Level != "" {
		if _, err := zerolog.ParseLevel(cfg.Logs.Level); err != nil {
			return ErrInvalidLogsConfigs
		}
	}

	return nil
}
