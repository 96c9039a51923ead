// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package spanstrings provides zero-copy string spans over a byte arena.
//
// A Span is a (pointer, length) handle into the arena owned by a Store. Spans
// are views: slicing a span, copying it or splitting it never copies bytes.
// Only ToSpan, Concat, ConcatStrings and Intern allocate, and they do so by
// bumping the arena, which never frees or reuses space.
//
// Copy is a shallow duplicate. The returned span aliases the same bytes as
// its source; there is no deep-copy operation.
//
// Split is the one operation that mutates a span in place. Called repeatedly
// on the same span, it consumes one separator-delimited field at a time:
//
//	s := spanstrings.NewStore(nil)
//	rest := s.ToSpan("www.google.com")
//	dot := s.ToSpan(".")
//	s.ToString(s.Split(&rest, dot)) // "www"; rest is now "google.com"
//	s.ToString(s.Split(&rest, dot)) // "google"; rest is now "com"
//
// A Store is not safe for concurrent use.
package spanstrings
