// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package spanstrings

import (
	"bytes"

	"github.com/cockroachdb/crlib/crbytes"
)

// Equals returns true iff a and b have the same length and the same bytes.
// Spans of different lengths are unequal without any byte being read.
func (s *Store) Equals(a, b Span) bool {
	if a.len != b.len {
		return false
	}
	if a.ptr == b.ptr {
		return true
	}
	return bytes.Equal(s.Bytes(a), s.Bytes(b))
}

// StartsWith returns true iff the first prefix.Len() bytes of sp equal the
// bytes of prefix. It is false whenever prefix is longer than sp.
func (s *Store) StartsWith(sp, prefix Span) bool {
	if prefix.len > sp.len {
		return false
	}
	return crbytes.CommonPrefix(s.Bytes(sp), s.Bytes(prefix)) == prefix.Len()
}

// EndsWith returns true iff the last suffix.Len() bytes of sp equal the bytes
// of suffix. It is false whenever suffix is longer than sp.
func (s *Store) EndsWith(sp, suffix Span) bool {
	if suffix.len > sp.len {
		return false
	}
	return bytes.HasSuffix(s.Bytes(sp), s.Bytes(suffix))
}
