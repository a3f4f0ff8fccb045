// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"time"

	"github.com/MKhiriev/go-story-drafts/models"
)

// DefaultDraftTTL is the lifetime of plain and failed drafts.
const DefaultDraftTTL = 7 * 24 * time.Hour

// ExpirationPolicy decides which drafts are stale.
type ExpirationPolicy struct {
	// TTL is the lifetime of plain and failed drafts, counted from DraftDate.
	TTL time.Duration
	// Now returns the current time.
	Now func() time.Time
	// FileExists reports whether the media file of a draft is still on disk.
	FileExists func(path string) bool
}

// Expired reports whether entry must be dropped. A draft whose media file is
// gone is always expired. Edit drafts live until the remote story expires;
// every other draft lives for TTL.
func (p ExpirationPolicy) Expired(entry models.StoryEntry) bool {
	if entry.File != "" && p.FileExists != nil && !p.FileExists(entry.File) {
		return true
	}

	now := p.now()
	if entry.IsEdit && !entry.IsError {
		return now.After(entry.EditExpireDate)
	}

	ttl := p.TTL
	if ttl <= 0 {
		ttl = DefaultDraftTTL
	}

	return now.Sub(entry.DraftDate) > ttl
}

func (p ExpirationPolicy) now() time.Time {
	if p.Now == nil {
		return time.Now()
	}
	return p.Now()
}
