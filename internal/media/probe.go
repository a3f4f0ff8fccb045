// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package media reads the geometry of gallery files used to start a new
// story draft.
package media

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-story-drafts/models"
	"github.com/evanoberholster/imagemeta"
)

// Canvas size of a story.
const (
	StoryWidth  = 720
	StoryHeight = 1280
)

// Mirror flags stored in the Invert field.
const (
	InvertNone       = 0
	InvertHorizontal = 1
	InvertVertical   = 2
)

var videoExtensions = map[string]struct{}{
	".mp4":  {},
	".m4v":  {},
	".mov":  {},
	".webm": {},
	".mkv":  {},
	".3gp":  {},
}

// Geometry is the source geometry of a media file.
type Geometry struct {
	Width  int
	Height int
	// Orientation is the clockwise rotation in degrees.
	Orientation int
	Invert      int
}

// IsVideo reports whether path looks like a video file.
func IsVideo(path string) bool {
	_, ok := videoExtensions[strings.ToLower(filepath.Ext(path))]
	return ok
}

// Probe reads width, height and EXIF orientation of an image.
func Probe(path string) (Geometry, error) {
	file, err := os.Open(path)
	if err != nil {
		return Geometry{}, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	exifData, err := imagemeta.Decode(file)
	if err != nil {
		return Geometry{}, fmt.Errorf("failed to decode EXIF metadata: %w", err)
	}

	geometry := Geometry{
		Width:  int(exifData.ImageWidth),
		Height: int(exifData.ImageHeight),
	}
	geometry.Orientation, geometry.Invert = FromEXIF(int(exifData.Orientation))

	return geometry, nil
}

// FromEXIF converts an EXIF orientation tag value to rotation and mirror
// flags. Unknown values mean no transform.
func FromEXIF(orientation int) (rotation, invert int) {
	switch orientation {
	case 2:
		return 0, InvertHorizontal
	case 3:
		return 180, InvertNone
	case 4:
		return 0, InvertVertical
	case 5:
		return 90, InvertVertical
	case 6:
		return 90, InvertNone
	case 7:
		return 270, InvertVertical
	case 8:
		return 270, InvertNone
	default:
		return 0, InvertNone
	}
}

// NewStoryEntry builds a fresh working entry for the media at path. Videos
// and files without readable metadata get zero geometry.
func NewStoryEntry(path string) models.StoryEntry {
	entry := models.StoryEntry{
		File:         path,
		IsVideo:      IsVideo(path),
		Right:        1,
		ResultWidth:  StoryWidth,
		ResultHeight: StoryHeight,
		Matrix:       models.IdentityMatrix(),
	}
	if entry.IsVideo {
		return entry
	}

	geometry, err := Probe(path)
	if err != nil {
		return entry
	}
	entry.Width = geometry.Width
	entry.Height = geometry.Height
	entry.Orientation = geometry.Orientation
	entry.Invert = geometry.Invert

	return entry
}
