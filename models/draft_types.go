// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// DraftType is the bucket discriminator stored in the "type" column of the
// story_drafts table. It is never serialized inside the record itself; it is
// derived from the record flags every time a draft is written.
type DraftType int

const (
	// DraftTypePlain is an ordinary draft saved from the story editor.
	DraftTypePlain DraftType = 0

	// DraftTypeEdit is a draft linked to an already published story that the
	// user started editing.
	DraftTypeEdit DraftType = 1

	// DraftTypeFailed is a story whose upload failed. Such drafts are handed
	// to the uploading queue on start instead of the visible drafts list.
	DraftTypeFailed DraftType = 2
)

// String returns a short human-readable name of the bucket.
func (t DraftType) String() string {
	switch t {
	case DraftTypePlain:
		return "plain"
	case DraftTypeEdit:
		return "edit"
	case DraftTypeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// TypeOf derives the bucket of a record from its flags. Error drafts win over
// edit drafts.
func TypeOf(isEdit, isError bool) DraftType {
	switch {
	case isError:
		return DraftTypeFailed
	case isEdit:
		return DraftTypeEdit
	default:
		return DraftTypePlain
	}
}

// DraftRow is a single row of the story_drafts table.
type DraftRow struct {
	ID   int64
	Date int64
	Data []byte
	Type DraftType
}
