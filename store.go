// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package spanstrings

import (
	"math"

	"github.com/cockroachdb/crlib/crhumanize"
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/spanstrings/internal/arena"
)

// Store owns an arena and is the entry point for every span operation that
// reads or allocates bytes. Spans produced by one Store must not be passed to
// another.
type Store struct {
	opts     *Options
	arena    *arena.Arena
	interned internTable
}

// NewStore returns a Store with an empty arena. A nil opts is equivalent to
// the zero Options.
func NewStore(opts *Options) *Store {
	opts = opts.Clone().EnsureDefaults()
	s := &Store{opts: opts}
	arenaOpts := arena.Options{
		InitialSize: opts.InitialSize,
		MaxSize:     opts.MaxSize,
	}
	if opts.Verbose {
		arenaOpts.OnGrow = func(oldCap, newCap int) {
			opts.Logger.Infof("spanstrings: arena grew from %s to %s",
				crhumanize.Bytes(int64(oldCap), crhumanize.Compact, crhumanize.OmitI),
				crhumanize.Bytes(int64(newCap), crhumanize.Compact, crhumanize.OmitI))
		}
	}
	s.arena = arena.New(arenaOpts)
	s.interned.init()
	return s
}

// alloc reserves n fresh bytes. Running out of arena space is fatal.
func (s *Store) alloc(n int) Pointer {
	var p Pointer
	var err error
	if uint64(n) > math.MaxUint32 {
		err = arena.ErrArenaFull
	} else {
		p, err = s.arena.Alloc(uint32(n))
	}
	if err != nil {
		err = errors.Wrapf(err, "spanstrings: allocating %d bytes", n)
		s.opts.Logger.Fatalf("%v", err)
		panic(err)
	}
	return p
}

// ToSpan copies str into freshly allocated arena bytes and returns the span
// owning them.
func (s *Store) ToSpan(str string) Span {
	p := s.alloc(len(str))
	s.arena.WriteString(p, str)
	return Span{ptr: p, len: uint32(len(str))}
}

// FromBytes is like ToSpan, but copies from a byte slice.
func (s *Store) FromBytes(b []byte) Span {
	p := s.alloc(len(b))
	// b may be a view of the arena taken before alloc grew it. The old
	// buffer still holds the same bytes, so the copy is unaffected.
	s.arena.Write(p, b)
	return Span{ptr: p, len: uint32(len(b))}
}

// ToString copies the span's bytes into a new string.
func (s *Store) ToString(sp Span) string {
	return string(s.Bytes(sp))
}

// Bytes returns the span's bytes without copying them. The result aliases
// the arena: it must not be modified, and it is only valid until the next
// operation on s that allocates.
func (s *Store) Bytes(sp Span) []byte {
	return s.arena.Bytes(sp.ptr, sp.len)
}
