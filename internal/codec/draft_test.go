// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package codec

import (
	"io"
	"testing"

	"github.com/MKhiriev/go-story-drafts/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullRecord() models.DraftRecord {
	return models.DraftRecord{
		ID:            -4242424242424242,
		Date:          1760000000123,
		File:          "/cache/drafts/video.mp4",
		IsVideo:       true,
		FileDeletable: true,
		Duration:      15000,
		Left:          1500,
		Right:         12000,
		Orientation:   90,
		Invert:        1,
		Width:         1920,
		Height:        1080,
		ResultWidth:   720,
		ResultHeight:  1280,
		Matrix:        models.Matrix{0.5, 0, 10, 0, 0.5, -20, 0, 0, 1},

		GradientTopColor:    -16777216,
		GradientBottomColor: 0x7f112233,

		Caption: "hello #drafts",
		CaptionEntities: []models.MessageEntity{
			{Type: models.EntityBold, Offset: 0, Length: 5},
			{Type: models.EntityPre, Offset: 1, Length: 2, Language: "go"},
			{Type: models.EntityTextURL, Offset: 2, Length: 3, URL: "https://example.org"},
			{Type: models.EntityMentionName, Offset: 3, Length: 4, UserID: 777},
			{Type: models.EntityCustomEmoji, Offset: 4, Length: 2, DocumentID: 5555},
			{Type: models.EntityHashtag, Offset: 6, Length: 7},
		},
		PrivacyRules: []models.PrivacyRule{
			{Type: models.PrivacyAllowContacts},
			{Type: models.PrivacyDisallowUsers, UserIDs: []int64{1, 2, 3}},
		},

		PaintFile: "/cache/drafts/paint.png",
		MediaEntities: []models.MediaEntity{
			{Type: models.MediaEntityText, SubType: 2, X: 0.1, Y: 0.2, Width: 0.3, Height: 0.4, Rotation: 1.5, Scale: 2, Text: "overlay", Color: -1},
			{Type: models.MediaEntitySticker, X: 0.5, Y: 0.5, Width: 0.2, Height: 0.2, Scale: 1, DocumentID: 99},
		},
		Stickers: []models.StickerRef{
			{ID: 99, AccessHash: -7, FileReference: []byte{1, 2, 3}},
			{Empty: true, ID: 100},
		},

		FilterFile:  "/cache/drafts/filter.jpg",
		FilterState: []byte{9, 8, 7, 6},
		Period:      86400,

		PaintEntitiesFile: "/cache/drafts/entities.png",
		IsEdit:            true,
		EditStoryID:       17,
		EditStoryPeerID:   123456,
		EditExpireDate:    1760086400,
		EditPhotoID:       0,
		EditDocumentID:    31337,

		IsError: true,
		Error:   &models.DraftError{Code: 400, Text: "MEDIA_INVALID"},

		Audio: &models.AudioTrack{Path: "/music/song.mp3", Author: "Band", Title: "Song", Duration: 180000, Offset: 1000, Left: 0.1, Right: 0.9, Volume: 0.75},
		Round: &models.RoundTrack{Path: "/cache/drafts/round.mp4", Duration: 5000, Offset: 200, Left: 0, Right: 1, Volume: 1},
		Peer:  &models.Peer{Kind: models.PeerChannel, ID: -100200300},
	}
}

// prefix returns the encoding of the magic and the first n fields of d.
func prefix(d models.DraftRecord, n int) []byte {
	w := NewWriter()
	w.Uint32(draftMagic)
	encodeFields(w, &d, 0, n)
	return append([]byte(nil), w.Bytes()...)
}

func fieldIndex(t *testing.T, name string) int {
	t.Helper()
	for i, f := range draftFields {
		if f.name == name {
			return i
		}
	}
	t.Fatalf("unknown field %q", name)
	return -1
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		record models.DraftRecord
	}{
		{
			name:   "all fields populated",
			record: fullRecord(),
		},
		{
			name:   "all fields empty",
			record: models.DraftRecord{},
		},
		{
			name: "only nullable blocks present",
			record: models.DraftRecord{
				ID:          1,
				FilterState: []byte{},
				Error:       &models.DraftError{},
				Audio:       &models.AudioTrack{},
				Round:       &models.RoundTrack{},
				Peer:        &models.Peer{Kind: models.PeerSelf},
			},
		},
		{
			name: "user peer without caption",
			record: models.DraftRecord{
				ID:       2,
				Date:     1,
				File:     "a.jpg",
				Duration: 0,
				Peer:     &models.Peer{Kind: models.PeerUser, ID: 42},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := Encode(tt.record)

			for _, strict := range []bool{true, false} {
				got, err := Decode(data, strict)
				require.NoError(t, err)
				assert.Equal(t, tt.record, got)
			}
		})
	}
}

func TestEncode_StartsWithMagic(t *testing.T) {
	data := Encode(models.DraftRecord{})
	require.GreaterOrEqual(t, len(data), 4)

	r := NewReader(data)
	assert.Equal(t, draftMagic, r.Uint32())
}

func TestDecode_TruncatedAtEveryFieldBoundary(t *testing.T) {
	full := fullRecord()
	zero := models.DraftRecord{}

	for i := 0; i <= len(draftFields); i++ {
		data := prefix(full, i)

		for _, strict := range []bool{false, true} {
			got, err := Decode(data, strict)
			require.NoError(t, err, "boundary %d strict=%v", i, strict)

			// fields before the cut keep their values, fields after it are zero
			w := NewWriter()
			w.Uint32(draftMagic)
			encodeFields(w, &full, 0, i)
			encodeFields(w, &zero, i, len(draftFields))

			assert.Equal(t, w.Bytes(), Encode(got), "boundary %d strict=%v", i, strict)
		}
	}
}

func TestDecode_TruncatedMidField(t *testing.T) {
	full := fullRecord()

	for _, name := range []string{"id", "file", "matrix", "caption_entities", "stickers", "filter_state", "audio", "peer"} {
		t.Run(name, func(t *testing.T) {
			i := fieldIndex(t, name)
			cut := prefix(full, i+1)
			cut = cut[:len(cut)-1]

			got, err := Decode(cut, false)
			require.NoError(t, err)
			assert.Equal(t, Encode(mustDecode(t, prefix(full, i))), Encode(got))

			got, err = Decode(cut, true)
			require.Error(t, err)
			assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
			assert.Equal(t, models.DraftRecord{}, got)

			var fe *FormatError
			require.ErrorAs(t, err, &fe)
			assert.Equal(t, name, fe.Field)
			assert.Equal(t, len(prefix(full, i)), fe.Offset)
		})
	}
}

func mustDecode(t *testing.T, data []byte) models.DraftRecord {
	t.Helper()
	d, err := Decode(data, true)
	require.NoError(t, err)
	return d
}

func TestDecode_BadMagic(t *testing.T) {
	data := Encode(fullRecord())
	data[0] ^= 0xff

	for _, strict := range []bool{true, false} {
		got, err := Decode(data, strict)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrBadMagic)
		assert.Equal(t, models.DraftRecord{}, got)
	}
}

func TestDecode_EmptyBuffer(t *testing.T) {
	for _, data := range [][]byte{nil, {}, {1, 2}} {
		_, err := Decode(data, false)
		require.Error(t, err)
		assert.True(t, IsTruncation(err))
	}
}

func TestDecode_BadListMarker(t *testing.T) {
	full := fullRecord()
	i := fieldIndex(t, "caption_entities")

	w := NewWriter()
	w.Uint32(draftMagic)
	encodeFields(w, &full, 0, i)
	w.Uint32(0xdeadbeef)
	w.Int32(0)
	data := w.Bytes()

	t.Run("strict", func(t *testing.T) {
		got, err := Decode(data, true)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrBadListMarker)
		assert.Equal(t, models.DraftRecord{}, got)
	})

	t.Run("tolerant returns partial record", func(t *testing.T) {
		got, err := Decode(data, false)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrBadListMarker)
		assert.Equal(t, full.Caption, got.Caption)
		assert.Equal(t, full.ID, got.ID)
		assert.Nil(t, got.CaptionEntities)
		assert.Nil(t, got.PrivacyRules)
	})
}

func TestDecode_UnknownVariantTag(t *testing.T) {
	tests := []struct {
		name  string
		field string
		write func(w *Writer)
	}{
		{
			name:  "message entity",
			field: "caption_entities",
			write: func(w *Writer) {
				w.Uint32(listMarker)
				w.Int32(1)
				w.Uint32(0x01020304)
				w.Int32(0)
				w.Int32(0)
			},
		},
		{
			name:  "privacy rule",
			field: "privacy_rules",
			write: func(w *Writer) {
				w.Uint32(listMarker)
				w.Int32(1)
				w.Uint32(0x0badf00d)
			},
		},
		{
			name:  "nullable block",
			field: "filter_state",
			write: func(w *Writer) {
				w.Uint32(0x12345678)
				w.ByteArray([]byte{1})
			},
		},
	}

	full := fullRecord()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWriter()
			w.Uint32(draftMagic)
			encodeFields(w, &full, 0, fieldIndex(t, tt.field))
			tt.write(w)

			_, err := Decode(w.Bytes(), true)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrUnknownTag)

			var fe *FormatError
			require.ErrorAs(t, err, &fe)
			assert.Equal(t, tt.field, fe.Field)

			_, err = Decode(w.Bytes(), false)
			assert.ErrorIs(t, err, ErrUnknownTag)
		})
	}
}

func TestDecode_BadBool(t *testing.T) {
	full := fullRecord()

	w := NewWriter()
	w.Uint32(draftMagic)
	encodeFields(w, &full, 0, fieldIndex(t, "is_video"))
	w.Uint32(1)

	_, err := Decode(w.Bytes(), true)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadBool)
}

func TestDecode_NegativeListCount(t *testing.T) {
	full := fullRecord()

	w := NewWriter()
	w.Uint32(draftMagic)
	encodeFields(w, &full, 0, fieldIndex(t, "stickers"))
	w.Uint32(listMarker)
	w.Int32(-1)

	_, err := Decode(w.Bytes(), true)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNegativeLength)
}

func TestDecode_OldRecordWithoutTrailingBlocks(t *testing.T) {
	full := fullRecord()

	// a record written before the edit linkage existed
	data := prefix(full, fieldIndex(t, "paint_entities_file"))

	got, err := Decode(data, false)
	require.NoError(t, err)

	assert.Equal(t, full.ID, got.ID)
	assert.Equal(t, full.Period, got.Period)
	assert.Equal(t, full.FilterState, got.FilterState)
	assert.False(t, got.IsEdit)
	assert.Empty(t, got.PaintEntitiesFile)
	assert.Nil(t, got.Error)
	assert.Nil(t, got.Audio)
	assert.Nil(t, got.Round)
	assert.Nil(t, got.Peer)
}

func TestEncode_UnknownEntityTypeDegrades(t *testing.T) {
	d := models.DraftRecord{
		CaptionEntities: []models.MessageEntity{{Type: models.EntityType(1000), Offset: 1, Length: 2}},
		PrivacyRules:    []models.PrivacyRule{{Type: models.PrivacyRuleType(1000)}},
	}

	got, err := Decode(Encode(d), true)
	require.NoError(t, err)

	require.Len(t, got.CaptionEntities, 1)
	assert.Equal(t, models.EntityUnknown, got.CaptionEntities[0].Type)
	assert.Equal(t, int32(1), got.CaptionEntities[0].Offset)

	require.Len(t, got.PrivacyRules, 1)
	assert.Equal(t, models.PrivacyDisallowAll, got.PrivacyRules[0].Type)
}
