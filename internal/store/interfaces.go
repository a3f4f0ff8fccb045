// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-story-drafts/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// DraftRepository persists serialized drafts in the story_drafts table.
//
// Implementations are not required to be safe for concurrent use: the
// drafts service calls them exclusively from its storage queue.
type DraftRepository interface {
	// GetDrafts returns the rows of the given buckets, newest first. With no
	// types every row is returned.
	GetDrafts(ctx context.Context, types ...models.DraftType) ([]models.DraftRow, error)
	// InsertDraft inserts a new row.
	InsertDraft(ctx context.Context, row models.DraftRow) error
	// ReplaceDraft inserts the row or overwrites the row with the same id.
	ReplaceDraft(ctx context.Context, row models.DraftRow) error
	// DeleteDrafts removes the rows with the given ids. Unknown ids are ignored.
	DeleteDrafts(ctx context.Context, ids ...int64) error
}

// MediaFileStorage manages the media files referenced by drafts.
//
// Every file a draft owns lives inside the drafts directory; files outside of
// it belong to someone else and are copied in before a draft references them.
type MediaFileStorage interface {
	// Dir returns the drafts directory.
	Dir() string
	// InDir reports whether path is located directly inside the drafts directory.
	InDir(path string) bool
	// Exists reports whether path names an existing regular file.
	Exists(path string) bool
	// Move renames path into the drafts directory and returns the new path.
	Move(path string) (string, error)
	// Copy copies path into the drafts directory under a fresh name and
	// returns the new path.
	Copy(path string) (string, error)
	// Remove deletes path. Missing files are not an error.
	Remove(path string) error
}
