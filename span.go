// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package spanstrings

import (
	"github.com/cockroachdb/redact"
	"github.com/cockroachdb/spanstrings/internal/arena"
)

// Pointer is the offset of a span's first byte within its Store's arena.
type Pointer = arena.Pointer

// Span is a view of length bytes starting at a pointer into a Store's arena.
// Spans are plain values: passing one around never copies the bytes it
// refers to, and several spans may alias the same bytes.
//
// The zero Span is empty.
type Span struct {
	ptr Pointer
	len uint32
}

// Pointer returns the offset of the span's first byte. It is only meaningful
// relative to the Store that produced the span. For an empty span the value
// carries no readable range.
func (s Span) Pointer() Pointer { return s.ptr }

// Len returns the number of bytes in the span.
func (s Span) Len() int { return int(s.len) }

// IsEmpty returns true iff the span has length zero.
func (s Span) IsEmpty() bool { return s.len == 0 }

// Copy returns a shallow duplicate of the span: the result has the same
// pointer and length, and so aliases the same bytes. No memory is copied.
func (s Span) Copy() Span { return s }

// end returns the pointer just past the span's last byte.
func (s Span) end() Pointer { return s.ptr.Add(s.len) }

// String implements fmt.Stringer. It describes the span's location, not its
// contents; use Store.ToString for the latter.
func (s Span) String() string {
	return redact.StringWithoutMarkers(s)
}

// SafeFormat implements redact.SafeFormatter.
func (s Span) SafeFormat(w redact.SafePrinter, _ rune) {
	w.Printf("[%d,+%d)", redact.Safe(uint32(s.ptr)), redact.Safe(s.len))
}
