// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package spanstrings_test

import (
	"fmt"

	"github.com/cockroachdb/spanstrings"
)

func Example() {
	s := spanstrings.NewStore(nil)
	rest := s.ToSpan("www.google.com")
	dot := s.ToSpan(".")
	for !rest.IsEmpty() {
		field := s.Split(&rest, dot)
		fmt.Println(s.ToString(field))
	}
	// Output:
	// www
	// google
	// com
}

func ExampleStore_GetSlice() {
	s := spanstrings.NewStore(nil)
	sp := s.ToSpan("abcdef")
	sub, err := s.GetSlice(sp, 2, 3)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(s.ToString(sub))
	if _, err := s.GetSlice(sp, 5, 10); err != nil {
		fmt.Println(err)
	}
	// Output:
	// cde
	// Specified length goes out of bounds
}

func ExampleStore_Concat() {
	s := spanstrings.NewStore(nil)
	c := s.Concat(s.ToSpan("cde"), s.ToSpan("wxyz"))
	fmt.Println(s.ToString(c), c.Len())
	// Output:
	// cdewxyz 7
}

func ExampleStore_Fields() {
	s := spanstrings.NewStore(nil)
	for field := range s.Fields(s.ToSpan("a,b,,c"), s.ToSpan(",")) {
		fmt.Printf("%q\n", s.ToString(field))
	}
	// Output:
	// "a"
	// "b"
	// ""
	// "c"
}
