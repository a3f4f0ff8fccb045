// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBindFlags_ParsesAllFlags(t *testing.T) {
	fs := pflag.NewFlagSet("drafts", pflag.ContinueOnError)
	cfg := BindFlags(fs)

	err := fs.Parse([]string{
		"-a", "carol",
		"--data-dir", "/data",
		"-d", "/data/carol.db",
		"-f", "/data/media",
		"--ttl", "12h",
		"--queue-size", "16",
		"--log-dir", "/logs",
		"--log-level", "error",
		"-c", "/etc/drafts.json",
	})
	require.NoError(t, err)

	assert.Equal(t, "carol", cfg.App.Account)
	assert.Equal(t, "/data", cfg.App.DataDir)
	assert.Equal(t, "/data/carol.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "/data/media", cfg.Storage.Files.CacheDir)
	assert.Equal(t, 12*time.Hour, cfg.Drafts.TTL)
	assert.Equal(t, 16, cfg.Drafts.QueueSize)
	assert.Equal(t, "/logs", cfg.Logs.Dir)
	assert.Equal(t, "error", cfg.Logs.Level)
	assert.Equal(t, "/etc/drafts.json", cfg.JSONFilePath)
}

func TestBindFlags_UnsetFlagsStayZero(t *testing.T) {
	fs := pflag.NewFlagSet("drafts", pflag.ContinueOnError)
	cfg := BindFlags(fs)

	require.NoError(t, fs.Parse(nil))
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestGetDraftsConfig_FlagsOverrideJSON(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.Account = "json"
	payload.Drafts.QueueSize = 99
	path := writeTempJSONConfig(t, payload)

	dir := t.TempDir()
	fs := pflag.NewFlagSet("drafts", pflag.ContinueOnError)
	flags := BindFlags(fs)
	require.NoError(t, fs.Parse([]string{"--account", "flag", "--data-dir", dir, "--config", path}))

	cfg, err := GetDraftsConfig(flags)
	require.NoError(t, err)

	assert.Equal(t, "flag", cfg.Account)
	assert.Equal(t, 99, cfg.QueueSize)
	assert.Equal(t, DefaultTTL, cfg.TTL)
	assert.Contains(t, cfg.Storage.DB.DSN, "flag")
}
