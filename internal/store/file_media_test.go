// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-story-drafts/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMediaStorage(t *testing.T) (MediaFileStorage, string) {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "drafts")
	s, err := NewMediaFileStorage(dir, logger.Nop())
	require.NoError(t, err)
	return s, dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestNewMediaFileStorage_CreatesDir(t *testing.T) {
	s, dir := newTestMediaStorage(t)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.Equal(t, dir, s.Dir())
}

func TestMediaFileStorage_InDirAndExists(t *testing.T) {
	s, dir := newTestMediaStorage(t)

	inside := filepath.Join(dir, "a.jpg")
	outside := filepath.Join(t.TempDir(), "b.jpg")
	nested := filepath.Join(dir, "sub", "c.jpg")
	writeFile(t, inside, "a")

	assert.True(t, s.InDir(inside))
	assert.False(t, s.InDir(outside))
	assert.False(t, s.InDir(nested))
	assert.False(t, s.InDir(""))

	assert.True(t, s.Exists(inside))
	assert.False(t, s.Exists(outside))
	assert.False(t, s.Exists(dir))
	assert.False(t, s.Exists(""))
}

func TestMediaFileStorage_Move(t *testing.T) {
	s, dir := newTestMediaStorage(t)

	src := filepath.Join(t.TempDir(), "clip.mp4")
	writeFile(t, src, "video")

	dst, err := s.Move(src)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "clip.mp4"), dst)
	assert.NoFileExists(t, src)

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "video", string(data))

	// moving a file that is already inside is a no-op
	again, err := s.Move(dst)
	require.NoError(t, err)
	assert.Equal(t, dst, again)
}

func TestMediaFileStorage_Move_NameTaken(t *testing.T) {
	s, dir := newTestMediaStorage(t)
	writeFile(t, filepath.Join(dir, "photo.jpg"), "old")

	src := filepath.Join(t.TempDir(), "photo.jpg")
	writeFile(t, src, "new")

	dst, err := s.Move(src)
	require.NoError(t, err)
	assert.NotEqual(t, filepath.Join(dir, "photo.jpg"), dst)
	assert.Equal(t, ".jpg", filepath.Ext(dst))
	assert.True(t, s.InDir(dst))
}

func TestMediaFileStorage_Move_MissingSource(t *testing.T) {
	s, _ := newTestMediaStorage(t)

	_, err := s.Move(filepath.Join(t.TempDir(), "missing.jpg"))
	require.Error(t, err)
}

func TestMediaFileStorage_Copy(t *testing.T) {
	s, _ := newTestMediaStorage(t)

	src := filepath.Join(t.TempDir(), "paint.png")
	writeFile(t, src, "pixels")

	first, err := s.Copy(src)
	require.NoError(t, err)
	second, err := s.Copy(src)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.FileExists(t, src)
	for _, p := range []string{first, second} {
		assert.True(t, s.InDir(p))
		assert.Equal(t, ".png", filepath.Ext(p))
		data, err := os.ReadFile(p)
		require.NoError(t, err)
		assert.Equal(t, "pixels", string(data))
	}
}

func TestMediaFileStorage_Remove(t *testing.T) {
	s, dir := newTestMediaStorage(t)

	p := filepath.Join(dir, "x.jpg")
	writeFile(t, p, "x")

	require.NoError(t, s.Remove(p))
	assert.NoFileExists(t, p)

	require.NoError(t, s.Remove(p))
	require.NoError(t, s.Remove(""))
}
