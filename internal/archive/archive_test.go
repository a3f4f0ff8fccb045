// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package archive

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/MKhiriev/go-story-drafts/internal/codec"
	"github.com/MKhiriev/go-story-drafts/models"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRecords() []models.DraftRecord {
	return []models.DraftRecord{
		{
			ID:      1,
			Date:    1_700_000_000_000,
			File:    "/drafts/a.jpg",
			Caption: "hello",
			Peer:    &models.Peer{Kind: models.PeerUser, ID: 42},
		},
		{
			ID:             2,
			Date:           1_700_000_100_000,
			File:           "/drafts/b.mp4",
			IsVideo:        true,
			Duration:       15_000,
			Right:          15_000,
			IsEdit:         true,
			EditStoryID:    7,
			EditExpireDate: 1_700_100_000,
			Audio:          &models.AudioTrack{Path: "/music/x.mp3", Volume: 0.5},
		},
	}
}

// compress wraps raw payload bytes in a zstd stream.
func compress(t *testing.T, payload []byte) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	enc, err := zstd.NewWriter(&buf)
	require.NoError(t, err)
	_, err = enc.Write(payload)
	require.NoError(t, err)
	require.NoError(t, enc.Close())
	return &buf
}

func header() []byte {
	return binary.LittleEndian.AppendUint32([]byte(magic), version)
}

func TestExportImport_RoundTrip(t *testing.T) {
	records := testRecords()

	var buf bytes.Buffer
	n, err := Export(&buf, records)
	require.NoError(t, err)
	assert.Equal(t, len(records), n)

	got, err := Import(&buf)
	require.NoError(t, err)
	assert.Equal(t, records, got)
}

func TestExportImport_Empty(t *testing.T) {
	var buf bytes.Buffer
	n, err := Export(&buf, nil)
	require.NoError(t, err)
	assert.Zero(t, n)

	got, err := Import(&buf)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestImport_BadHeader(t *testing.T) {
	_, err := Import(compress(t, []byte("NOPE\x01\x00\x00\x00")))
	assert.ErrorIs(t, err, ErrBadHeader)

	_, err = Import(compress(t, []byte("SD")))
	assert.ErrorIs(t, err, ErrBadHeader)
}

func TestImport_UnknownVersion(t *testing.T) {
	payload := binary.LittleEndian.AppendUint32([]byte(magic), 99)
	_, err := Import(compress(t, payload))
	assert.ErrorIs(t, err, ErrUnknownVersion)
}

func TestImport_TruncatedRecordKeepsPrefix(t *testing.T) {
	first := codec.Encode(testRecords()[0])

	payload := header()
	payload = binary.LittleEndian.AppendUint32(payload, uint32(len(first)))
	payload = append(payload, first...)
	payload = binary.LittleEndian.AppendUint32(payload, 100)
	payload = append(payload, 1, 2, 3)

	got, err := Import(compress(t, payload))
	require.ErrorIs(t, err, ErrTruncatedRecord)
	require.Len(t, got, 1)
	assert.Equal(t, testRecords()[0], got[0])
}

func TestImport_RecordTooLarge(t *testing.T) {
	payload := binary.LittleEndian.AppendUint32(header(), MaxRecordSize+1)
	_, err := Import(compress(t, payload))
	assert.ErrorIs(t, err, ErrRecordTooLarge)
}

func TestImport_CorruptRecordIsStrict(t *testing.T) {
	data := codec.Encode(testRecords()[0])
	data = data[:len(data)-2]

	payload := binary.LittleEndian.AppendUint32(header(), uint32(len(data)))
	payload = append(payload, data...)

	_, err := Import(compress(t, payload))
	var formatErr *codec.FormatError
	assert.ErrorAs(t, err, &formatErr)
}

func TestImport_NotZstd(t *testing.T) {
	_, err := Import(bytes.NewReader([]byte("plain text")))
	assert.Error(t, err)
}
