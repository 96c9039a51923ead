// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package spanstrings

import (
	"bytes"
	"iter"

	"github.com/cockroachdb/spanstrings/internal/invariants"
)

// Split finds the first occurrence of sep in *sp and returns the bytes before
// it. *sp is advanced in place to the bytes following the separator, so that
// repeated calls walk the original span one field at a time.
//
// If sep does not occur, Split returns the whole of *sp and leaves *sp empty.
// An empty sep matches at offset zero: the result is empty and *sp is left
// unchanged.
//
// Neither the result nor the updated *sp is allocated; both alias the bytes
// *sp referred to on entry.
func (s *Store) Split(sp *Span, sep Span) Span {
	field, _ := s.split(sp, sep)
	return field
}

// split is Split, additionally reporting whether sep was found.
func (s *Store) split(sp *Span, sep Span) (field Span, found bool) {
	k := bytes.Index(s.Bytes(*sp), s.Bytes(sep))
	if k < 0 {
		field = *sp
		*sp = Span{ptr: field.end()}
		return field, false
	}
	field = Span{ptr: sp.ptr, len: uint32(k)}
	skip := uint32(k) + sep.len
	*sp = Span{ptr: sp.ptr.Add(skip), len: invariants.SafeSub(sp.len, skip)}
	return field, true
}

// Tokenizer is a cursor over the separator-delimited fields of a span. Each
// call to Next performs one Split on the cursor's remainder.
type Tokenizer struct {
	s    *Store
	rest Span
	sep  Span
	done bool
}

// Tokenize returns a Tokenizer over the fields of sp delimited by sep. sp
// itself is not modified.
//
// The fields are those of strings.Split: n separators yield n+1 fields, so a
// trailing separator yields a final empty field and an empty span yields one
// empty field. An empty sep yields sp as the only field.
func (s *Store) Tokenize(sp, sep Span) *Tokenizer {
	return &Tokenizer{s: s, rest: sp, sep: sep}
}

// Next returns the next field, or false once every field has been returned.
func (t *Tokenizer) Next() (Span, bool) {
	if t.done {
		return Span{}, false
	}
	if t.sep.IsEmpty() {
		t.done = true
		field := t.rest
		t.rest = Span{ptr: field.end()}
		return field, true
	}
	field, found := t.s.split(&t.rest, t.sep)
	t.done = !found
	return field, true
}

// Remainder returns the part of the span that has not been consumed yet.
func (t *Tokenizer) Remainder() Span {
	return t.rest
}

// Fields returns an iterator over the fields of sp delimited by sep, as
// produced by Tokenize.
func (s *Store) Fields(sp, sep Span) iter.Seq[Span] {
	return func(yield func(Span) bool) {
		t := s.Tokenize(sp, sep)
		for field, ok := t.Next(); ok; field, ok = t.Next() {
			if !yield(field) {
				return
			}
		}
	}
}
