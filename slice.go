// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package spanstrings

import "github.com/cockroachdb/errors"

// GetSlice returns a view of the n bytes of sp starting at offset start. The
// result aliases sp's bytes; nothing is allocated.
//
// GetSlice returns ErrOutOfBounds if start+n exceeds the length of sp. A zero
// n is valid for any start up to and including sp.Len() and yields an empty
// span.
func (s *Store) GetSlice(sp Span, start, n int) (Span, error) {
	if start < 0 || n < 0 || start > sp.Len() || n > sp.Len()-start {
		return Span{}, errors.WithDetailf(ErrOutOfBounds,
			"start %d, length %d, span length %d", start, n, sp.Len())
	}
	return Span{ptr: sp.ptr.Add(uint32(start)), len: uint32(n)}, nil
}

// Copy returns a shallow duplicate of sp. See Span.Copy.
func Copy(sp Span) Span {
	return sp.Copy()
}

// Concat allocates a new span holding the bytes of a followed by the bytes of
// b. The result owns its storage: its pointer differs from both a's and b's,
// even when either operand is empty.
func (s *Store) Concat(a, b Span) Span {
	n := a.Len() + b.Len()
	p := s.alloc(n)
	s.arena.CopyBytes(a.ptr, p, a.len)
	s.arena.CopyBytes(b.ptr, p.Add(a.len), b.len)
	return Span{ptr: p, len: uint32(n)}
}

// ConcatStrings returns a+b, computed by converting both strings to spans,
// concatenating those and converting the result back.
func (s *Store) ConcatStrings(a, b string) string {
	return s.ToString(s.Concat(s.ToSpan(a), s.ToSpan(b)))
}
