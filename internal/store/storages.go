// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-story-drafts/internal/config"
	"github.com/MKhiriev/go-story-drafts/internal/logger"
)

// Storages groups every storage backend of one account.
type Storages struct {
	DB              *DB
	DraftRepository DraftRepository
	MediaFiles      MediaFileStorage
}

// NewStorages opens the drafts database, applies migrations and prepares the
// media directory.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectSQLite(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error migrating drafts database")
		db.Close()
		return nil, fmt.Errorf("error migrating drafts database: %w", err)
	}

	files, err := NewMediaFileStorage(cfg.Files.CacheDir, log)
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Storages{
		DB:              db,
		DraftRepository: NewDraftRepository(db, log),
		MediaFiles:      files,
	}, nil
}

// Close releases the database connection.
func (s *Storages) Close() error {
	if s.DB == nil {
		return nil
	}

	return s.DB.Close()
}
