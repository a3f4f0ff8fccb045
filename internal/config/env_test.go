// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_ACCOUNT":  "alice",
		"APP_DATA_DIR": "/var/lib/drafts",

		// Storage has nested prefixes: STORAGE_ + DB_ / FILES_
		"STORAGE_DB_DSN":          "/var/lib/drafts/alice.db",
		"STORAGE_FILES_CACHE_DIR": "/var/cache/drafts",

		"DRAFTS_TTL":        "72h",
		"DRAFTS_QUEUE_SIZE": "64",

		"LOGS_DIR":   "/var/log/drafts",
		"LOGS_LEVEL": "debug",
	}
	for k, v := range envVars {
		t.Setenv(k, v)
	}

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, "alice", cfg.App.Account)
	assert.Equal(t, "/var/lib/drafts", cfg.App.DataDir)
	assert.Equal(t, "/var/lib/drafts/alice.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "/var/cache/drafts", cfg.Storage.Files.CacheDir)
	assert.Equal(t, 72*time.Hour, cfg.Drafts.TTL)
	assert.Equal(t, 64, cfg.Drafts.QueueSize)
	assert.Equal(t, "/var/log/drafts", cfg.Logs.Dir)
	assert.Equal(t, "debug", cfg.Logs.Level)
}

func TestParseEnv_Empty(t *testing.T) {
	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("DRAFTS_TTL", "a week")

	err := parseEnv(&StructuredConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}
