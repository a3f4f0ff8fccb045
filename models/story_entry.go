// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// StoryEntry is the working entity the editor operates on. Unlike
// [DraftRecord] it keeps the trim window as fractions of the media duration
// and always has a publication peer.
type StoryEntry struct {
	DraftID   int64
	IsDraft   bool
	DraftDate time.Time

	File          string
	IsVideo       bool
	FileDeletable bool

	Duration int64   // milliseconds
	Left     float64 // [0,1]
	Right    float64 // [0,1]

	Orientation  int
	Invert       int
	Width        int
	Height       int
	ResultWidth  int
	ResultHeight int
	Matrix       Matrix

	GradientTopColor    int32
	GradientBottomColor int32

	Caption         string
	CaptionEntities []MessageEntity
	PrivacyRules    []PrivacyRule
	Period          time.Duration

	PaintFile         string
	PaintEntitiesFile string
	MediaEntities     []MediaEntity
	Stickers          []StickerRef

	FilterFile  string
	FilterState []byte

	IsEdit          bool
	EditStoryID     int32
	EditStoryPeerID int64
	EditExpireDate  time.Time
	EditPhotoID     int64
	EditDocumentID  int64

	IsError bool
	Error   *DraftError

	Audio *AudioTrack
	Round *RoundTrack

	Peer Peer
}

// Type returns the storage bucket the entry is written to.
func (e StoryEntry) Type() DraftType {
	return TypeOf(e.IsEdit, e.IsError)
}

// LinkedTo reports whether the entry is an edit draft of the given remote
// story. A zero peerID matches any peer.
func (e StoryEntry) LinkedTo(peerID int64, storyID int32) bool {
	if !e.IsEdit || e.EditStoryID != storyID {
		return false
	}
	return peerID == 0 || e.EditStoryPeerID == peerID
}

// RemoteMedia is the media union of a published story. Exactly one of
// Document and Photo is expected to be set.
type RemoteMedia struct {
	Document *RemoteRef
	Photo    *RemoteRef
}

// RemoteRef is the identifier of a remote document or photo.
type RemoteRef struct {
	ID int64
}

// RemoteStory describes an already published story the user is editing.
type RemoteStory struct {
	ID         int32
	PeerID     int64
	ExpireDate time.Time
	Media      RemoteMedia
}
