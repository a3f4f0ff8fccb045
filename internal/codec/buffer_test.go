// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package codec

import (
	"io"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriterReader_Primitives(t *testing.T) {
	w := NewWriter()
	w.Uint32(math.MaxUint32)
	w.Int32(math.MinInt32)
	w.Int64(math.MaxInt64)
	w.Float32(-0.125)
	w.Bool(true)
	w.Bool(false)
	w.String("привет")
	w.ByteArray([]byte{0, 1, 2})
	w.String("")

	r := NewReader(w.Bytes())
	assert.Equal(t, uint32(math.MaxUint32), r.Uint32())
	assert.Equal(t, int32(math.MinInt32), r.Int32())
	assert.Equal(t, int64(math.MaxInt64), r.Int64())
	assert.Equal(t, float32(-0.125), r.Float32())
	assert.True(t, r.Bool())
	assert.False(t, r.Bool())
	assert.Equal(t, "привет", r.Str())
	assert.Equal(t, []byte{0, 1, 2}, r.ByteArray())
	assert.Equal(t, "", r.Str())

	require.NoError(t, r.Err())
	assert.Zero(t, r.Remaining())
}

func TestReader_ErrorIsSticky(t *testing.T) {
	w := NewWriter()
	w.Int32(7)

	r := NewReader(w.Bytes())
	assert.Equal(t, int64(0), r.Int64())
	require.ErrorIs(t, r.Err(), io.ErrUnexpectedEOF)

	// the four readable bytes stay unread once the reader failed
	assert.Equal(t, int32(0), r.Int32())
	assert.Equal(t, 4, r.Remaining())
}

func TestReader_StringLongerThanBuffer(t *testing.T) {
	w := NewWriter()
	w.Int32(100)
	w.Uint32(0)

	r := NewReader(w.Bytes())
	assert.Empty(t, r.Str())
	assert.ErrorIs(t, r.Err(), io.ErrUnexpectedEOF)
}

func TestReader_EmptyByteArrayIsNil(t *testing.T) {
	w := NewWriter()
	w.ByteArray(nil)

	r := NewReader(w.Bytes())
	assert.Nil(t, r.ByteArray())
	assert.NoError(t, r.Err())
}
