// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Matrix is a 3x3 affine transform in row-major order, the layout used by
// the editor canvas.
type Matrix [9]float32

// IdentityMatrix returns the identity transform.
func IdentityMatrix() Matrix {
	return Matrix{1, 0, 0, 0, 1, 0, 0, 0, 1}
}

// DraftRecord is the persisted form of a story draft: the value stored in the
// data column of story_drafts after binary encoding.
//
// String fields follow two absence conventions. File, PaintFile,
// PaintEntitiesFile, FilterFile and Caption use the empty string for "no
// value". FilterState, Error, Audio, Round and Peer are nullable blocks and use
// nil.
type DraftRecord struct {
	ID   int64 `json:"id"`
	Date int64 `json:"date"` // unix milliseconds

	File          string `json:"file,omitempty"`
	IsVideo       bool   `json:"is_video"`
	FileDeletable bool   `json:"file_deletable"`

	// Duration of the source media and the trim window, all in milliseconds.
	Duration int64 `json:"duration"`
	Left     int64 `json:"left"`
	Right    int64 `json:"right"`

	Orientation  int32  `json:"orientation"`
	Invert       int32  `json:"invert"`
	Width        int32  `json:"width"`
	Height       int32  `json:"height"`
	ResultWidth  int32  `json:"result_width"`
	ResultHeight int32  `json:"result_height"`
	Matrix       Matrix `json:"matrix"`

	GradientTopColor    int32 `json:"gradient_top_color"`
	GradientBottomColor int32 `json:"gradient_bottom_color"`

	Caption         string          `json:"caption,omitempty"`
	CaptionEntities []MessageEntity `json:"caption_entities,omitempty"`
	PrivacyRules    []PrivacyRule   `json:"privacy_rules,omitempty"`

	PaintFile     string        `json:"paint_file,omitempty"`
	MediaEntities []MediaEntity `json:"media_entities,omitempty"`
	Stickers      []StickerRef  `json:"stickers,omitempty"`

	FilterFile  string `json:"filter_file,omitempty"`
	FilterState []byte `json:"filter_state,omitempty"`

	Period int32 `json:"period"` // seconds

	PaintEntitiesFile string `json:"paint_entities_file,omitempty"`

	IsEdit          bool  `json:"is_edit"`
	EditStoryID     int32 `json:"edit_story_id,omitempty"`
	EditStoryPeerID int64 `json:"edit_story_peer_id,omitempty"`
	EditExpireDate  int64 `json:"edit_expire_date,omitempty"` // unix seconds
	EditPhotoID     int64 `json:"edit_photo_id,omitempty"`
	EditDocumentID  int64 `json:"edit_document_id,omitempty"`

	IsError bool        `json:"is_error"`
	Error   *DraftError `json:"error,omitempty"`

	Audio *AudioTrack `json:"audio,omitempty"`
	Round *RoundTrack `json:"round,omitempty"`

	Peer *Peer `json:"peer,omitempty"`
}

// Type returns the storage bucket of the record.
func (r DraftRecord) Type() DraftType {
	return TypeOf(r.IsEdit, r.IsError)
}
