// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package codec

import (
	"errors"
	"fmt"
	"io"
)

// Structural decode errors. A [FormatError] wraps exactly one of them, or
// io.ErrUnexpectedEOF for a truncated field in strict mode.
var (
	// ErrBadMagic is returned when the buffer does not start with the draft
	// record magic.
	ErrBadMagic = errors.New("bad record magic")

	// ErrBadListMarker is returned when a list does not start with the list
	// marker constant.
	ErrBadListMarker = errors.New("bad list marker")

	// ErrUnknownTag is returned when a polymorphic element or a nullable block
	// starts with a tag no decoder is registered for.
	ErrUnknownTag = errors.New("unknown type tag")

	// ErrBadBool is returned when a boolean field holds neither the true nor
	// the false constant.
	ErrBadBool = errors.New("bad boolean constant")

	// ErrNegativeLength is returned for a negative string, blob or list
	// length.
	ErrNegativeLength = errors.New("negative length")
)

// FormatError reports where and why a draft record failed to decode.
type FormatError struct {
	// Field is the name of the record field being decoded.
	Field string
	// Offset is the byte offset at which the field started.
	Offset int
	Err    error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("decode draft field %q at offset %d: %v", e.Field, e.Offset, e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// IsTruncation reports whether err only signals a buffer that ended early.
func IsTruncation(err error) bool {
	return errors.Is(err, io.ErrUnexpectedEOF)
}

func errBadBool(tag uint32) error {
	return fmt.Errorf("%w: 0x%08x", ErrBadBool, tag)
}

func errUnknownTag(kind string, tag uint32) error {
	return fmt.Errorf("%w: %s 0x%08x", ErrUnknownTag, kind, tag)
}

func errBadListMarker(tag uint32) error {
	return fmt.Errorf("%w: 0x%08x", ErrBadListMarker, tag)
}
