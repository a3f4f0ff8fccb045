// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package codec

// variantTable decodes a polymorphic value that starts with a 32-bit type
// tag. Each known tag has a registered decoder; any other tag is an error.
type variantTable[T any] struct {
	kind     string
	decoders map[uint32]func(r *Reader) T
}

func newVariantTable[T any](kind string) *variantTable[T] {
	return &variantTable[T]{
		kind:     kind,
		decoders: make(map[uint32]func(r *Reader) T),
	}
}

func (t *variantTable[T]) register(tag uint32, dec func(r *Reader) T) {
	t.decoders[tag] = dec
}

// decode reads the tag and dispatches to its decoder. Unknown tags fail the
// reader.
func (t *variantTable[T]) decode(r *Reader) T {
	var zero T

	tag := r.Uint32()
	if r.err != nil {
		return zero
	}

	dec, ok := t.decoders[tag]
	if !ok {
		r.fail(errUnknownTag(t.kind, tag))
		return zero
	}

	return dec(r)
}

// writeList writes the list marker, the element count and every element.
func writeList[T any](w *Writer, items []T, enc func(w *Writer, item T)) {
	w.Uint32(listMarker)
	w.Int32(int32(len(items)))
	for _, item := range items {
		enc(w, item)
	}
}

// readList reads a list written by writeList. An empty list decodes to nil.
func readList[T any](r *Reader, dec func(r *Reader) T) []T {
	marker := r.Uint32()
	if r.err != nil {
		return nil
	}
	if marker != listMarker {
		r.fail(errBadListMarker(marker))
		return nil
	}

	n := r.length()
	if r.err != nil || n == 0 {
		return nil
	}

	// every element takes at least four bytes
	items := make([]T, 0, min(n, r.Remaining()/4))
	for len(items) < n {
		item := dec(r)
		if r.err != nil {
			return nil
		}
		items = append(items, item)
	}
	return items
}
