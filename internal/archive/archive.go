// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package archive moves draft records between stores as a single
// zstd-compressed file.
//
// An archive is a zstd stream holding a header followed by records, each
// prefixed with its little-endian uint32 length. Records use the regular
// draft encoding and are decoded strictly on import.
package archive

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/go-story-drafts/internal/codec"
	"github.com/MKhiriev/go-story-drafts/models"
	"github.com/klauspost/compress/zstd"
)

const (
	magic   = "SDAR"
	version = uint32(1)

	// MaxRecordSize bounds a single encoded record.
	MaxRecordSize = 64 << 20
)

var (
	ErrBadHeader       = errors.New("not a drafts archive")
	ErrUnknownVersion  = errors.New("unsupported archive version")
	ErrRecordTooLarge  = errors.New("archive record too large")
	ErrTruncatedRecord = errors.New("archive record truncated")
)

// Export writes records to w. It returns the number of records written.
func Export(w io.Writer, records []models.DraftRecord) (int, error) {
	enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.EncoderLevelFromZstd(12)))
	if err != nil {
		return 0, fmt.Errorf("create zstd writer: %w", err)
	}

	header := make([]byte, 0, len(magic)+4)
	header = append(header, magic...)
	header = binary.LittleEndian.AppendUint32(header, version)
	if _, err = enc.Write(header); err != nil {
		enc.Close()
		return 0, fmt.Errorf("write archive header: %w", err)
	}

	written := 0
	for _, record := range records {
		data := codec.Encode(record)
		if len(data) > MaxRecordSize {
			enc.Close()
			return written, fmt.Errorf("%w: draft %d is %d bytes", ErrRecordTooLarge, record.ID, len(data))
		}

		prefix := binary.LittleEndian.AppendUint32(nil, uint32(len(data)))
		if _, err = enc.Write(prefix); err != nil {
			enc.Close()
			return written, fmt.Errorf("write record length: %w", err)
		}
		if _, err = enc.Write(data); err != nil {
			enc.Close()
			return written, fmt.Errorf("write record: %w", err)
		}
		written++
	}

	if err = enc.Close(); err != nil {
		return written, fmt.Errorf("close zstd writer: %w", err)
	}
	return written, nil
}

// Import reads every record from an archive produced by Export.
func Import(r io.Reader) ([]models.DraftRecord, error) {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("create zstd reader: %w", err)
	}
	defer dec.Close()

	br := bufio.NewReader(dec)

	header := make([]byte, len(magic)+4)
	if _, err = io.ReadFull(br, header); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadHeader, err)
	}
	if string(header[:len(magic)]) != magic {
		return nil, ErrBadHeader
	}
	if v := binary.LittleEndian.Uint32(header[len(magic):]); v != version {
		return nil, fmt.Errorf("%w: %d", ErrUnknownVersion, v)
	}

	var (
		records []models.DraftRecord
		prefix  = make([]byte, 4)
	)
	for {
		if _, err = io.ReadFull(br, prefix); err != nil {
			if errors.Is(err, io.EOF) {
				return records, nil
			}
			return records, fmt.Errorf("%w: %w", ErrTruncatedRecord, err)
		}

		size := binary.LittleEndian.Uint32(prefix)
		if size > MaxRecordSize {
			return records, fmt.Errorf("%w: %d bytes", ErrRecordTooLarge, size)
		}

		data := make([]byte, size)
		if _, err = io.ReadFull(br, data); err != nil {
			return records, fmt.Errorf("%w: %w", ErrTruncatedRecord, err)
		}

		record, err := codec.Decode(data, true)
		if err != nil {
			return records, fmt.Errorf("record %d: %w", len(records), err)
		}
		records = append(records, record)
	}
}
