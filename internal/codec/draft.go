// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package codec implements the binary format of persisted story drafts.
//
// A record is the draft magic followed by a fixed, append-only sequence of
// fields. Decoding stops cleanly when the buffer ends at a field boundary, so
// records written before a field existed still decode, with that field left
// at its zero value.
package codec

import (
	"fmt"

	"github.com/MKhiriev/go-story-drafts/models"
)

type field struct {
	name string
	enc  func(w *Writer, d *models.DraftRecord)
	dec  func(r *Reader, d *models.DraftRecord)
}

// draftFields is the wire order of a record. New fields go to the end only.
var draftFields = []field{
	{"id", func(w *Writer, d *models.DraftRecord) { w.Int64(d.ID) },
		func(r *Reader, d *models.DraftRecord) { d.ID = r.Int64() }},
	{"date", func(w *Writer, d *models.DraftRecord) { w.Int64(d.Date) },
		func(r *Reader, d *models.DraftRecord) { d.Date = r.Int64() }},
	{"file", func(w *Writer, d *models.DraftRecord) { w.String(d.File) },
		func(r *Reader, d *models.DraftRecord) { d.File = r.Str() }},
	{"is_video", func(w *Writer, d *models.DraftRecord) { w.Bool(d.IsVideo) },
		func(r *Reader, d *models.DraftRecord) { d.IsVideo = r.Bool() }},
	{"file_deletable", func(w *Writer, d *models.DraftRecord) { w.Bool(d.FileDeletable) },
		func(r *Reader, d *models.DraftRecord) { d.FileDeletable = r.Bool() }},
	{"duration", func(w *Writer, d *models.DraftRecord) { w.Int64(d.Duration) },
		func(r *Reader, d *models.DraftRecord) { d.Duration = r.Int64() }},
	{"left", func(w *Writer, d *models.DraftRecord) { w.Int64(d.Left) },
		func(r *Reader, d *models.DraftRecord) { d.Left = r.Int64() }},
	{"right", func(w *Writer, d *models.DraftRecord) { w.Int64(d.Right) },
		func(r *Reader, d *models.DraftRecord) { d.Right = r.Int64() }},
	{"orientation", func(w *Writer, d *models.DraftRecord) { w.Int32(d.Orientation) },
		func(r *Reader, d *models.DraftRecord) { d.Orientation = r.Int32() }},
	{"invert", func(w *Writer, d *models.DraftRecord) { w.Int32(d.Invert) },
		func(r *Reader, d *models.DraftRecord) { d.Invert = r.Int32() }},
	{"width", func(w *Writer, d *models.DraftRecord) { w.Int32(d.Width) },
		func(r *Reader, d *models.DraftRecord) { d.Width = r.Int32() }},
	{"height", func(w *Writer, d *models.DraftRecord) { w.Int32(d.Height) },
		func(r *Reader, d *models.DraftRecord) { d.Height = r.Int32() }},
	{"result_width", func(w *Writer, d *models.DraftRecord) { w.Int32(d.ResultWidth) },
		func(r *Reader, d *models.DraftRecord) { d.ResultWidth = r.Int32() }},
	{"result_height", func(w *Writer, d *models.DraftRecord) { w.Int32(d.ResultHeight) },
		func(r *Reader, d *models.DraftRecord) { d.ResultHeight = r.Int32() }},
	{"matrix", writeMatrix, readMatrix},
	{"gradient_top_color", func(w *Writer, d *models.DraftRecord) { w.Int32(d.GradientTopColor) },
		func(r *Reader, d *models.DraftRecord) { d.GradientTopColor = r.Int32() }},
	{"gradient_bottom_color", func(w *Writer, d *models.DraftRecord) { w.Int32(d.GradientBottomColor) },
		func(r *Reader, d *models.DraftRecord) { d.GradientBottomColor = r.Int32() }},
	{"caption", func(w *Writer, d *models.DraftRecord) { w.String(d.Caption) },
		func(r *Reader, d *models.DraftRecord) { d.Caption = r.Str() }},
	{"caption_entities",
		func(w *Writer, d *models.DraftRecord) { writeList(w, d.CaptionEntities, writeMessageEntity) },
		func(r *Reader, d *models.DraftRecord) { d.CaptionEntities = readList(r, messageEntities.decode) }},
	{"privacy_rules",
		func(w *Writer, d *models.DraftRecord) { writeList(w, d.PrivacyRules, writePrivacyRule) },
		func(r *Reader, d *models.DraftRecord) { d.PrivacyRules = readList(r, privacyRules.decode) }},
	{"paint_file", func(w *Writer, d *models.DraftRecord) { w.String(d.PaintFile) },
		func(r *Reader, d *models.DraftRecord) { d.PaintFile = r.Str() }},
	{"media_entities",
		func(w *Writer, d *models.DraftRecord) { writeList(w, d.MediaEntities, writeMediaEntity) },
		func(r *Reader, d *models.DraftRecord) { d.MediaEntities = readList(r, readMediaEntity) }},
	{"stickers",
		func(w *Writer, d *models.DraftRecord) { writeList(w, d.Stickers, writeStickerRef) },
		func(r *Reader, d *models.DraftRecord) { d.Stickers = readList(r, stickerRefs.decode) }},
	{"filter_file", func(w *Writer, d *models.DraftRecord) { w.String(d.FilterFile) },
		func(r *Reader, d *models.DraftRecord) { d.FilterFile = r.Str() }},
	{"filter_state", writeFilterState, readFilterState},
	{"period", func(w *Writer, d *models.DraftRecord) { w.Int32(d.Period) },
		func(r *Reader, d *models.DraftRecord) { d.Period = r.Int32() }},

	// edit linkage
	{"paint_entities_file", func(w *Writer, d *models.DraftRecord) { w.String(d.PaintEntitiesFile) },
		func(r *Reader, d *models.DraftRecord) { d.PaintEntitiesFile = r.Str() }},
	{"is_edit", func(w *Writer, d *models.DraftRecord) { w.Bool(d.IsEdit) },
		func(r *Reader, d *models.DraftRecord) { d.IsEdit = r.Bool() }},
	{"edit_story_id", func(w *Writer, d *models.DraftRecord) { w.Int32(d.EditStoryID) },
		func(r *Reader, d *models.DraftRecord) { d.EditStoryID = r.Int32() }},
	{"edit_story_peer_id", func(w *Writer, d *models.DraftRecord) { w.Int64(d.EditStoryPeerID) },
		func(r *Reader, d *models.DraftRecord) { d.EditStoryPeerID = r.Int64() }},
	{"edit_expire_date", func(w *Writer, d *models.DraftRecord) { w.Int64(d.EditExpireDate) },
		func(r *Reader, d *models.DraftRecord) { d.EditExpireDate = r.Int64() }},
	{"edit_photo_id", func(w *Writer, d *models.DraftRecord) { w.Int64(d.EditPhotoID) },
		func(r *Reader, d *models.DraftRecord) { d.EditPhotoID = r.Int64() }},
	{"edit_document_id", func(w *Writer, d *models.DraftRecord) { w.Int64(d.EditDocumentID) },
		func(r *Reader, d *models.DraftRecord) { d.EditDocumentID = r.Int64() }},

	// failed uploads
	{"is_error", func(w *Writer, d *models.DraftRecord) { w.Bool(d.IsError) },
		func(r *Reader, d *models.DraftRecord) { d.IsError = r.Bool() }},
	{"error", writeDraftError, readDraftError},

	// secondary tracks and target
	{"audio", writeAudio, readAudio},
	{"round", writeRound, readRound},
	{"peer", writeRecordPeer, readRecordPeer},
}

// Encode serializes d into a new buffer.
func Encode(d models.DraftRecord) []byte {
	w := NewWriter()
	w.Uint32(draftMagic)
	encodeFields(w, &d, 0, len(draftFields))
	return w.Bytes()
}

func encodeFields(w *Writer, d *models.DraftRecord, from, to int) {
	for _, f := range draftFields[from:to] {
		f.enc(w, d)
	}
}

// Decode parses a record produced by [Encode].
//
// In both modes a buffer that ends on a field boundary yields the fields
// decoded so far. In strict mode every other problem, including a field cut
// in the middle, returns a *FormatError and a zero record. In tolerant mode a
// field cut in the middle is dropped silently, while a structural mismatch
// returns the partially decoded record together with a *FormatError.
func Decode(data []byte, strict bool) (models.DraftRecord, error) {
	var d models.DraftRecord
	r := NewReader(data)

	magic := r.Uint32()
	if err := r.Err(); err != nil {
		return d, &FormatError{Field: "magic", Err: err}
	}
	if magic != draftMagic {
		return d, &FormatError{Field: "magic", Err: fmt.Errorf("%w: 0x%08x", ErrBadMagic, magic)}
	}

	for _, f := range draftFields {
		if r.Remaining() == 0 {
			break
		}

		start := r.Offset()
		saved := d
		f.dec(r, &d)

		err := r.Err()
		if err == nil {
			continue
		}

		d = saved
		if !strict && IsTruncation(err) {
			break
		}

		fe := &FormatError{Field: f.name, Offset: start, Err: err}
		if strict {
			return models.DraftRecord{}, fe
		}
		return d, fe
	}

	return d, nil
}

func writeMatrix(w *Writer, d *models.DraftRecord) {
	for _, v := range d.Matrix {
		w.Float32(v)
	}
}

func readMatrix(r *Reader, d *models.DraftRecord) {
	var m models.Matrix
	for i := range m {
		m[i] = r.Float32()
	}
	d.Matrix = m
}

// writeNullable writes tagNull for an absent block, otherwise tag and body.
func writeNullable(w *Writer, present bool, tag uint32, body func()) {
	if !present {
		w.Uint32(tagNull)
		return
	}
	w.Uint32(tag)
	body()
}

// readNullable reads a block written by writeNullable and reports whether it
// was present and well formed.
func readNullable(r *Reader, kind string, tag uint32) bool {
	got := r.Uint32()
	switch {
	case r.err != nil:
		return false
	case got == tagNull:
		return false
	case got != tag:
		r.fail(errUnknownTag(kind, got))
		return false
	default:
		return true
	}
}

func writeFilterState(w *Writer, d *models.DraftRecord) {
	writeNullable(w, d.FilterState != nil, tagFilterState, func() {
		w.ByteArray(d.FilterState)
	})
}

func readFilterState(r *Reader, d *models.DraftRecord) {
	d.FilterState = nil
	if !readNullable(r, "filter state", tagFilterState) {
		return
	}
	state := r.ByteArray()
	if state == nil {
		state = []byte{}
	}
	d.FilterState = state
}

func writeDraftError(w *Writer, d *models.DraftRecord) {
	writeNullable(w, d.Error != nil, tagDraftError, func() {
		w.Int32(d.Error.Code)
		w.String(d.Error.Text)
	})
}

func readDraftError(r *Reader, d *models.DraftRecord) {
	d.Error = nil
	if !readNullable(r, "error", tagDraftError) {
		return
	}
	e := &models.DraftError{Code: r.Int32(), Text: r.Str()}
	if r.err == nil {
		d.Error = e
	}
}

func writeAudio(w *Writer, d *models.DraftRecord) {
	a := d.Audio
	writeNullable(w, a != nil, tagAudio, func() {
		w.String(a.Path)
		w.String(a.Author)
		w.String(a.Title)
		w.Int64(a.Duration)
		w.Int64(a.Offset)
		w.Float32(a.Left)
		w.Float32(a.Right)
		w.Float32(a.Volume)
	})
}

func readAudio(r *Reader, d *models.DraftRecord) {
	d.Audio = nil
	if !readNullable(r, "audio", tagAudio) {
		return
	}
	a := &models.AudioTrack{
		Path:     r.Str(),
		Author:   r.Str(),
		Title:    r.Str(),
		Duration: r.Int64(),
		Offset:   r.Int64(),
		Left:     r.Float32(),
		Right:    r.Float32(),
		Volume:   r.Float32(),
	}
	if r.err == nil {
		d.Audio = a
	}
}

func writeRound(w *Writer, d *models.DraftRecord) {
	rt := d.Round
	writeNullable(w, rt != nil, tagRound, func() {
		w.String(rt.Path)
		w.Int64(rt.Duration)
		w.Int64(rt.Offset)
		w.Float32(rt.Left)
		w.Float32(rt.Right)
		w.Float32(rt.Volume)
	})
}

func readRound(r *Reader, d *models.DraftRecord) {
	d.Round = nil
	if !readNullable(r, "round", tagRound) {
		return
	}
	rt := &models.RoundTrack{
		Path:     r.Str(),
		Duration: r.Int64(),
		Offset:   r.Int64(),
		Left:     r.Float32(),
		Right:    r.Float32(),
		Volume:   r.Float32(),
	}
	if r.err == nil {
		d.Round = rt
	}
}

func writeRecordPeer(w *Writer, d *models.DraftRecord) {
	if d.Peer == nil {
		w.Uint32(tagNull)
		return
	}
	writePeer(w, *d.Peer)
}

func readRecordPeer(r *Reader, d *models.DraftRecord) {
	d.Peer = nil

	tag := r.Uint32()
	if r.err != nil || tag == tagNull {
		return
	}

	dec, ok := peers.decoders[tag]
	if !ok {
		r.fail(errUnknownTag(peers.kind, tag))
		return
	}

	p := dec(r)
	if r.err == nil {
		d.Peer = &p
	}
}
