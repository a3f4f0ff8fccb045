// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// DraftsConfig is the runtime view of [StructuredConfig] consumed by the
// drafts store and its storage.
type DraftsConfig struct {
	// Account is the account the drafts belong to.
	Account string
	// Storage holds the database and media directory locations.
	Storage Storage
	// TTL is the lifetime of plain and failed drafts.
	TTL time.Duration
	// QueueSize is the buffer of the storage queue.
	QueueSize int
	// Logs holds the log destination and level.
	Logs Logs
}

// GetDraftsConfig builds and validates the drafts runtime view from the
// merged structured configuration.
func GetDraftsConfig(flags *StructuredConfig) (*DraftsConfig, error) {
	cfg, err := GetStructuredConfig(flags)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return cfg.DraftsConfig(), nil
}

// DraftsConfig maps the fields relevant to the drafts store.
func (cfg *StructuredConfig) DraftsConfig() *DraftsConfig {
	return &DraftsConfig{
		Account:   cfg.App.Account,
		Storage:   cfg.Storage,
		TTL:       cfg.Drafts.TTL,
		QueueSize: cfg.Drafts.QueueSize,
		Logs:      cfg.Logs,
	}
}
