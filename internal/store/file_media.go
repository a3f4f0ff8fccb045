// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-story-drafts/internal/logger"
)

// mediaFileStorage is the local filesystem implementation of
// [MediaFileStorage]. All files it produces are placed directly inside dir.
type mediaFileStorage struct {
	dir    string
	logger *logger.Logger
}

// NewMediaFileStorage constructs a [MediaFileStorage] rooted at dir, creating
// the directory when it is missing.
func NewMediaFileStorage(dir string, log *logger.Logger) (MediaFileStorage, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("error resolving drafts dir: %w", err)
	}
	if err = os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("error creating drafts dir: %w", err)
	}

	return &mediaFileStorage{dir: abs, logger: log}, nil
}

func (m *mediaFileStorage) Dir() string {
	return m.dir
}

func (m *mediaFileStorage) InDir(path string) bool {
	if path == "" {
		return false
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return false
	}

	return filepath.Dir(abs) == m.dir
}

func (m *mediaFileStorage) Exists(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	if err != nil {
		return false
	}

	return info.Mode().IsRegular()
}

// Move renames path into the drafts directory keeping its base name. Files
// that are already inside are returned unchanged.
func (m *mediaFileStorage) Move(path string) (string, error) {
	if m.InDir(path) {
		return path, nil
	}

	dst := filepath.Join(m.dir, filepath.Base(path))
	if m.Exists(dst) {
		dst = m.newPath(path)
	}

	if err := os.Rename(path, dst); err != nil {
		// rename fails across filesystems
		if _, copyErr := m.copyTo(path, dst); copyErr != nil {
			m.logger.Err(err).
				Str("func", "mediaFileStorage.Move").
				Str("path", path).
				Msg("failed to move file into drafts dir")
			return "", fmt.Errorf("error moving %s: %w", path, err)
		}
		if rmErr := os.Remove(path); rmErr != nil {
			m.logger.Warn().Err(rmErr).
				Str("func", "mediaFileStorage.Move").
				Str("path", path).
				Msg("source file left behind after copy")
		}
	}

	return dst, nil
}

// Copy copies path into the drafts directory under a new unique name.
func (m *mediaFileStorage) Copy(path string) (string, error) {
	dst := m.newPath(path)

	if _, err := m.copyTo(path, dst); err != nil {
		m.logger.Err(err).
			Str("func", "mediaFileStorage.Copy").
			Str("path", path).
			Msg("failed to copy file into drafts dir")
		return "", fmt.Errorf("error copying %s: %w", path, err)
	}

	return dst, nil
}

func (m *mediaFileStorage) Remove(path string) error {
	if path == "" {
		return nil
	}

	err := os.Remove(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		m.logger.Err(err).
			Str("func", "mediaFileStorage.Remove").
			Str("path", path).
			Msg("failed to remove draft file")
		return fmt.Errorf("error removing %s: %w", path, err)
	}

	return nil
}

func (m *mediaFileStorage) newPath(src string) string {
	return filepath.Join(m.dir, newFileName()+filepath.Ext(src))
}

func (m *mediaFileStorage) copyTo(src, dst string) (int64, error) {
	in, err := os.Open(src)
	if err != nil {
		return 0, err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return 0, err
	}

	n, err := io.Copy(out, in)
	if closeErr := out.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(dst)
		return 0, err
	}

	return n, nil
}

// newFileName returns a time-ordered unique file name without extension.
func newFileName() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
