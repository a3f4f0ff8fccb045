// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk shape of the JSON config file.
type StructuredJSONConfig struct {
	App struct {
		Account string `json:"account"`
		DataDir string `json:"data_dir"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Files struct {
			CacheDir string `json:"cache_dir"`
		} `json:"files,omitempty"`
	} `json:"storage,omitempty"`

	Drafts struct {
		TTL       Duration `json:"ttl"`
		QueueSize int      `json:"queue_size"`
	} `json:"drafts,omitempty"`

	Logs struct {
		Dir   string `json:"dir"`
		Level string `json:"level"`
	} `json:"logs,omitempty"`
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
			Account: jsonCfg.App.Account,
			DataDir: jsonCfg.App.DataDir,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			Files: Files{
				CacheDir: jsonCfg.Storage.Files.CacheDir,
			},
		},
		Drafts: Drafts{
			TTL:       time.Duration(jsonCfg.Drafts.TTL),
			QueueSize: jsonCfg.Drafts.QueueSize,
		},
		Logs: Logs{
			Dir:   jsonCfg.Logs.Dir,
			Level: jsonCfg.Logs.Level,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "168h" as well as from nanosecond numbers.
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
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
