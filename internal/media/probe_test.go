// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package media

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-story-drafts/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEXIF(t *testing.T) {
	tests := []struct {
		orientation  int
		wantRotation int
		wantInvert   int
	}{
		{0, 0, InvertNone},
		{1, 0, InvertNone},
		{2, 0, InvertHorizontal},
		{3, 180, InvertNone},
		{4, 0, InvertVertical},
		{5, 90, InvertVertical},
		{6, 90, InvertNone},
		{7, 270, InvertVertical},
		{8, 270, InvertNone},
		{42, 0, InvertNone},
	}

	for _, tt := range tests {
		rotation, invert := FromEXIF(tt.orientation)
		assert.Equal(t, tt.wantRotation, rotation, "orientation %d", tt.orientation)
		assert.Equal(t, tt.wantInvert, invert, "orientation %d", tt.orientation)
	}
}

func TestIsVideo(t *testing.T) {
	assert.True(t, IsVideo("/a/b/clip.MP4"))
	assert.True(t, IsVideo("clip.mov"))
	assert.False(t, IsVideo("photo.jpg"))
	assert.False(t, IsVideo("noext"))
}

func TestProbe_MissingFile(t *testing.T) {
	_, err := Probe(filepath.Join(t.TempDir(), "missing.jpg"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestNewStoryEntry_UnreadableImageFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "photo.jpg")
	require.NoError(t, os.WriteFile(path, []byte("not an image"), 0o600))

	entry := NewStoryEntry(path)

	assert.Equal(t, path, entry.File)
	assert.False(t, entry.IsVideo)
	assert.Zero(t, entry.Width)
	assert.Zero(t, entry.Height)
	assert.Zero(t, entry.Orientation)
	assert.Equal(t, StoryWidth, entry.ResultWidth)
	assert.Equal(t, StoryHeight, entry.ResultHeight)
	assert.Equal(t, 1.0, entry.Right)
	assert.Equal(t, models.IdentityMatrix(), entry.Matrix)
}

func TestNewStoryEntry_Video(t *testing.T) {
	entry := NewStoryEntry("/nowhere/clip.mp4")

	assert.True(t, entry.IsVideo)
	assert.Zero(t, entry.Width)
	assert.Equal(t, StoryHeight, entry.ResultHeight)
}
