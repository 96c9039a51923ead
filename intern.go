// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package spanstrings

import (
	"bytes"

	"github.com/cespare/xxhash/v2"
	"github.com/cockroachdb/swiss"
)

// internTable maps the hash of an interned byte string to the owning spans
// with that hash. Collisions are resolved by comparing bytes.
type internTable struct {
	m swiss.Map[uint64, []Span]
	n int
}

func (t *internTable) init() {
	t.m.Init(0)
}

// Intern returns a span holding the bytes of b. The first time a given byte
// string is interned its bytes are copied into the arena; later calls with
// equal bytes return that same span without allocating.
func (s *Store) Intern(b []byte) Span {
	h := xxhash.Sum64(b)
	spans, _ := s.interned.m.Get(h)
	for _, sp := range spans {
		if bytes.Equal(s.Bytes(sp), b) {
			return sp
		}
	}
	sp := s.FromBytes(b)
	s.interned.m.Put(h, append(spans, sp))
	s.interned.n++
	return sp
}

// InternString is like Intern, but for a string.
func (s *Store) InternString(str string) Span {
	h := xxhash.Sum64String(str)
	spans, _ := s.interned.m.Get(h)
	for _, sp := range spans {
		if string(s.Bytes(sp)) == str {
			return sp
		}
	}
	sp := s.ToSpan(str)
	s.interned.m.Put(h, append(spans, sp))
	s.interned.n++
	return sp
}

// InternSpan is like Intern, taking its bytes from an existing span. The
// result may alias sp only if sp was itself returned by an Intern call.
func (s *Store) InternSpan(sp Span) Span {
	return s.Intern(s.Bytes(sp))
}
