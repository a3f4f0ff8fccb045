// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package codec

import (
	"bytes"
	"encoding/binary"
	"io"
	"math"
)

// Writer appends fixed-width little-endian primitives to an in-memory buffer.
type Writer struct {
	buf bytes.Buffer
}

// NewWriter returns an empty Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Bytes returns the encoded bytes written so far.
func (w *Writer) Bytes() []byte {
	return w.buf.Bytes()
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int {
	return w.buf.Len()
}

func (w *Writer) Uint32(v uint32) {
	w.buf.Write(binary.LittleEndian.AppendUint32(nil, v))
}

func (w *Writer) Int32(v int32) {
	w.Uint32(uint32(v))
}

func (w *Writer) Int64(v int64) {
	w.buf.Write(binary.LittleEndian.AppendUint64(nil, uint64(v)))
}

func (w *Writer) Float32(v float32) {
	w.Uint32(math.Float32bits(v))
}

func (w *Writer) Bool(v bool) {
	if v {
		w.Uint32(tagTrue)
		return
	}
	w.Uint32(tagFalse)
}

func (w *Writer) ByteArray(v []byte) {
	w.Int32(int32(len(v)))
	w.buf.Write(v)
}

func (w *Writer) String(v string) {
	w.Int32(int32(len(v)))
	w.buf.WriteString(v)
}

// Reader consumes primitives written by [Writer]. The first failure is sticky:
// once err is set every subsequent read returns the zero value.
type Reader struct {
	data []byte
	pos  int
	err  error
}

// NewReader returns a Reader over data.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.data) - r.pos
}

// Offset returns the current read position.
func (r *Reader) Offset() int {
	return r.pos
}

// Err returns the first error encountered while reading.
func (r *Reader) Err() error {
	return r.err
}

func (r *Reader) fail(err error) {
	if r.err == nil {
		r.err = err
	}
}

func (r *Reader) next(n int) []byte {
	if r.err != nil {
		return nil
	}
	if n > r.Remaining() {
		r.fail(io.ErrUnexpectedEOF)
		return nil
	}
	b := r.data[r.pos : r.pos+n]
	r.pos += n
	return b
}

func (r *Reader) Uint32() uint32 {
	b := r.next(4)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint32(b)
}

func (r *Reader) Int32() int32 {
	return int32(r.Uint32())
}

func (r *Reader) Int64() int64 {
	b := r.next(8)
	if b == nil {
		return 0
	}
	return int64(binary.LittleEndian.Uint64(b))
}

func (r *Reader) Float32() float32 {
	return math.Float32frombits(r.Uint32())
}

func (r *Reader) Bool() bool {
	switch tag := r.Uint32(); {
	case r.err != nil:
		return false
	case tag == tagTrue:
		return true
	case tag == tagFalse:
		return false
	default:
		r.fail(errBadBool(tag))
		return false
	}
}

func (r *Reader) length() int {
	n := r.Int32()
	if r.err != nil {
		return 0
	}
	if n < 0 {
		r.fail(ErrNegativeLength)
		return 0
	}
	return int(n)
}

// ByteArray reads a length-prefixed blob. An empty blob decodes to nil.
func (r *Reader) ByteArray() []byte {
	n := r.length()
	b := r.next(n)
	if len(b) == 0 {
		return nil
	}
	return bytes.Clone(b)
}

func (r *Reader) Str() string {
	n := r.length()
	b := r.next(n)
	if b == nil {
		return ""
	}
	return string(b)
}
