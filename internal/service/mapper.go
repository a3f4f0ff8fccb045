// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"math"
	"slices"
	"time"

	"github.com/MKhiriev/go-story-drafts/internal/logger"
	"github.com/MKhiriev/go-story-drafts/internal/store"
	"github.com/MKhiriev/go-story-drafts/models"
)

// ToRecord maps a working entry to its persisted form. The trim window is
// converted from fractions to milliseconds of the source duration; a self
// peer is not stored.
func ToRecord(entry models.StoryEntry) models.DraftRecord {
	left, right := normalizeTrim(entry.Left, entry.Right)

	record := models.DraftRecord{
		ID:   entry.DraftID,
		Date: unixMilli(entry.DraftDate),

		File:          entry.File,
		IsVideo:       entry.IsVideo,
		FileDeletable: entry.FileDeletable,

		Duration: entry.Duration,
		Left:     int64(math.Round(left * float64(entry.Duration))),
		Right:    int64(math.Round(right * float64(entry.Duration))),

		Orientation:  int32(entry.Orientation),
		Invert:       int32(entry.Invert),
		Width:        int32(entry.Width),
		Height:       int32(entry.Height),
		ResultWidth:  int32(entry.ResultWidth),
		ResultHeight: int32(entry.ResultHeight),
		Matrix:       entry.Matrix,

		GradientTopColor:    entry.GradientTopColor,
		GradientBottomColor: entry.GradientBottomColor,

		Caption:         entry.Caption,
		CaptionEntities: cloneMessageEntities(entry.CaptionEntities),
		PrivacyRules:    clonePrivacyRules(entry.PrivacyRules),

		PaintFile:     entry.PaintFile,
		MediaEntities: slices.Clone(entry.MediaEntities),
		Stickers:      cloneStickers(entry.Stickers),

		FilterFile:  entry.FilterFile,
		FilterState: bytes.Clone(entry.FilterState),

		Period: int32(entry.Period / time.Second),

		PaintEntitiesFile: entry.PaintEntitiesFile,

		IsEdit:          entry.IsEdit,
		EditStoryID:     entry.EditStoryID,
		EditStoryPeerID: entry.EditStoryPeerID,
		EditExpireDate:  unixSeconds(entry.EditExpireDate),
		EditPhotoID:     entry.EditPhotoID,
		EditDocumentID:  entry.EditDocumentID,

		IsError: entry.IsError,
		Error:   clonePtr(entry.Error),

		Audio: clonePtr(entry.Audio),
		Round: clonePtr(entry.Round),
	}

	if entry.Peer.Kind != models.PeerSelf {
		peer := entry.Peer
		record.Peer = &peer
	}

	return record
}

// ToStoryEntry maps a persisted record back to a working entry. A record
// without duration gets the full [0,1] trim window; a record without peer is
// published to self.
func ToStoryEntry(record models.DraftRecord) models.StoryEntry {
	entry := models.StoryEntry{
		DraftID:   record.ID,
		IsDraft:   true,
		DraftDate: fromUnixMilli(record.Date),

		File:          record.File,
		IsVideo:       record.IsVideo,
		FileDeletable: record.FileDeletable,

		Duration: record.Duration,
		Left:     0,
		Right:    1,

		Orientation:  int(record.Orientation),
		Invert:       int(record.Invert),
		Width:        int(record.Width),
		Height:       int(record.Height),
		ResultWidth:  int(record.ResultWidth),
		ResultHeight: int(record.ResultHeight),
		Matrix:       record.Matrix,

		GradientTopColor:    record.GradientTopColor,
		GradientBottomColor: record.GradientBottomColor,

		Caption:         record.Caption,
		CaptionEntities: cloneMessageEntities(record.CaptionEntities),
		PrivacyRules:    clonePrivacyRules(record.PrivacyRules),
		Period:          time.Duration(record.Period) * time.Second,

		PaintFile:         record.PaintFile,
		PaintEntitiesFile: record.PaintEntitiesFile,
		MediaEntities:     slices.Clone(record.MediaEntities),
		Stickers:          cloneStickers(record.Stickers),

		FilterFile:  record.FilterFile,
		FilterState: bytes.Clone(record.FilterState),

		IsEdit:          record.IsEdit,
		EditStoryID:     record.EditStoryID,
		EditStoryPeerID: record.EditStoryPeerID,
		EditExpireDate:  fromUnixSeconds(record.EditExpireDate),
		EditPhotoID:     record.EditPhotoID,
		EditDocumentID:  record.EditDocumentID,

		IsError: record.IsError,
		Error:   clonePtr(record.Error),

		Audio: clonePtr(record.Audio),
		Round: clonePtr(record.Round),

		Peer: models.SelfPeer(),
	}

	if record.Duration != 0 {
		entry.Left = float64(record.Left) / float64(record.Duration)
		entry.Right = float64(record.Right) / float64(record.Duration)
	}
	if record.Peer != nil {
		entry.Peer = *record.Peer
	}

	return entry
}

// cloneEntry returns a copy of entry that shares no memory with it.
func cloneEntry(entry models.StoryEntry) models.StoryEntry {
	out := entry
	out.CaptionEntities = cloneMessageEntities(entry.CaptionEntities)
	out.PrivacyRules = clonePrivacyRules(entry.PrivacyRules)
	out.MediaEntities = slices.Clone(entry.MediaEntities)
	out.Stickers = cloneStickers(entry.Stickers)
	out.FilterState = bytes.Clone(entry.FilterState)
	out.Error = clonePtr(entry.Error)
	out.Audio = clonePtr(entry.Audio)
	out.Round = clonePtr(entry.Round)
	return out
}

func normalizeTrim(left, right float64) (float64, float64) {
	left = min(max(left, 0), 1)
	right = min(max(right, 0), 1)
	if left > right {
		left, right = right, left
	}
	return left, right
}

func cloneMessageEntities(in []models.MessageEntity) []models.MessageEntity {
	return slices.Clone(in)
}

func clonePrivacyRules(in []models.PrivacyRule) []models.PrivacyRule {
	if in == nil {
		return nil
	}
	out := make([]models.PrivacyRule, len(in))
	for i, rule := range in {
		out[i] = models.PrivacyRule{Type: rule.Type, UserIDs: slices.Clone(rule.UserIDs)}
	}
	return out
}

func cloneStickers(in []models.StickerRef) []models.StickerRef {
	if in == nil {
		return nil
	}
	out := make([]models.StickerRef, len(in))
	for i, s := range in {
		out[i] = s
		out[i].FileReference = bytes.Clone(s.FileReference)
	}
	return out
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func unixMilli(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixMilli()
}

func fromUnixMilli(ms int64) time.Time {
	if ms == 0 {
		return time.Time{}
	}
	return time.UnixMilli(ms)
}

func unixSeconds(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.Unix()
}

func fromUnixSeconds(sec int64) time.Time {
	if sec == 0 {
		return time.Time{}
	}
	return time.Unix(sec, 0)
}

// Rehomer moves the files referenced by an entry into the drafts directory
// so that the draft exclusively owns them.
type Rehomer struct {
	files  store.MediaFileStorage
	logger *logger.Logger
}

// NewRehomer returns a Rehomer placing files into files.Dir().
func NewRehomer(files store.MediaFileStorage, log *logger.Logger) *Rehomer {
	return &Rehomer{files: files, logger: log}
}

// Rehome rewrites the file paths of entry in place. The main media is moved
// when the entry owns it and copied otherwise, after which the entry owns the
// copy. Editor generated files follow the same ownership: an entry borrowing
// its media gets copies of them too. Paths already inside the drafts
// directory are left untouched and a failed move or copy keeps the original
// path.
func (r *Rehomer) Rehome(entry *models.StoryEntry) {
	if r == nil || r.files == nil {
		return
	}

	owned := entry.FileDeletable
	if path, ok := r.rehome(entry.File, owned); ok {
		entry.File = path
		entry.FileDeletable = true
	}

	entry.PaintFile = r.rehomeEditorFile(entry.PaintFile, owned)
	entry.PaintEntitiesFile = r.rehomeEditorFile(entry.PaintEntitiesFile, owned)
	entry.FilterFile = r.rehomeEditorFile(entry.FilterFile, owned)
	if entry.Round != nil {
		entry.Round.Path = r.rehomeEditorFile(entry.Round.Path, owned)
	}
}

func (r *Rehomer) rehomeEditorFile(path string, owned bool) string {
	if newPath, ok := r.rehome(path, owned); ok {
		return newPath
	}
	return path
}

// rehome reports whether path now lives in the drafts directory.
func (r *Rehomer) rehome(path string, owned bool) (string, bool) {
	if path == "" {
		return path, false
	}
	if r.files.InDir(path) {
		return path, owned
	}
	if !r.files.Exists(path) {
		r.logger.Warn().
			Str("func", "Rehomer.Rehome").
			Str("path", path).
			Msg("draft file does not exist")
		return path, false
	}

	var (
		newPath string
		err     error
	)
	if owned {
		newPath, err = r.files.Move(path)
	} else {
		newPath, err = r.files.Copy(path)
	}
	if err != nil {
		r.logger.Err(err).
			Str("func", "Rehomer.Rehome").
			Str("path", path).
			Bool("owned", owned).
			Msg("failed to re-home draft file, keeping original path")
		return path, false
	}

	return newPath, true
}
