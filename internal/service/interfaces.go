// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-story-drafts/internal/workers"
	"github.com/MKhiriev/go-story-drafts/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// DraftsService defines the contract of the per-account story drafts store.
//
// Every method returns without waiting for the database: the in-memory list
// is updated synchronously and storage work runs later on the storage queue.
// Subscribers are told about changes through [Notifier].
type DraftsService interface {
	// Load reads plain and edit drafts from the database once. Calls made
	// while a load is running or after it finished are ignored.
	Load()

	// Append stores entry as a new draft under a fresh id and returns the
	// stored copy.
	Append(entry models.StoryEntry) models.StoryEntry

	// Edit overwrites the draft with the same id and moves it to the head of
	// the list. Failed drafts are persisted but not listed.
	Edit(entry models.StoryEntry) models.StoryEntry

	// SaveForEdit replaces any draft linked to remote with entry linked to it.
	SaveForEdit(entry models.StoryEntry, peerID int64, remote models.RemoteStory) models.StoryEntry

	// Delete removes the given drafts and the files they own. Calling it
	// without entries does nothing.
	Delete(entries ...models.StoryEntry)

	// DeleteExpired removes every stale draft and returns the removed ones.
	DeleteExpired() []models.StoryEntry

	// DeleteForEdit removes the drafts linked to remote.
	DeleteForEdit(remote models.RemoteStory)

	// GetForEdit returns the draft linked to remote, or nil.
	GetForEdit(peerID int64, remote models.RemoteStory) *models.StoryEntry

	// Cleanup removes every draft and allows Load to run again.
	Cleanup()

	// Find returns the visible draft with the given id.
	Find(id int64) (models.StoryEntry, error)

	// Drafts returns a copy of the visible drafts, newest first.
	Drafts() []models.StoryEntry

	// Loaded reports whether Load has completed.
	Loaded() bool
}

// Notifier receives the payload-less "drafts updated" signal.
type Notifier interface {
	DraftsUpdated()
}

// UploadingSink takes over drafts whose upload failed before the process
// stopped.
type UploadingSink interface {
	Restore(entries []models.StoryEntry)
}

// StorageQueue runs storage tasks one at a time in submission order.
type StorageQueue interface {
	Submit(task workers.Task) bool
}
