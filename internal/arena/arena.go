/*
 * Copyright 2017 Dgraph Labs, Inc. and Contributors
 * Modifications copyright (C) 2017 Andy Kimball and Contributors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package arena implements the monotonically growing byte store that backs
// spans. Memory is addressed by offsets rather than Go pointers so that the
// backing buffer can be reallocated on growth without invalidating handles.
package arena

import (
	"math"

	"github.com/cockroachdb/crlib/crbytes"
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/spanstrings/internal/invariants"
)

// Pointer is the offset of a byte within an Arena. The zero Pointer is never
// returned by Alloc and acts as a kind of nil pointer.
type Pointer uint32

// Add returns p advanced by n bytes.
func (p Pointer) Add(n uint32) Pointer {
	return p + Pointer(n)
}

// ErrArenaFull is returned when an allocation would exceed the arena's
// configured maximum size or the 32-bit offset space.
var ErrArenaFull = errors.New("allocation failed because arena is full")

const (
	// DefaultInitialSize is the size of the backing buffer of a new arena
	// when Options.InitialSize is unset.
	DefaultInitialSize = 4 << 10

	// MaxSize is the largest size an arena may reach. Offsets are 32-bit, and
	// sizes must also fit in an int on 32-bit platforms.
	MaxSize = min(math.MaxUint32, math.MaxInt)

	// guard is the number of unused bytes that follow every allocation.
	guard = 1
)

// Options configures an Arena.
type Options struct {
	// InitialSize is the capacity of the backing buffer allocated up front.
	InitialSize int
	// MaxSize bounds the total number of bytes the arena will hand out,
	// including bookkeeping bytes. Zero means MaxSize.
	MaxSize int
	// OnGrow, if set, is invoked after the backing buffer is reallocated.
	OnGrow func(oldCap, newCap int)
}

// EnsureDefaults fills in zero fields with their defaults.
func (o *Options) EnsureDefaults() {
	if o.InitialSize <= 0 {
		o.InitialSize = DefaultInitialSize
	}
	if o.MaxSize <= 0 || o.MaxSize > MaxSize {
		o.MaxSize = MaxSize
	}
	if o.InitialSize > o.MaxSize {
		o.InitialSize = o.MaxSize
	}
}

// Arena is a bump allocator over a single growable buffer. Space is never
// freed or reused: every allocation lands after all previous ones, and each
// is followed by a guard byte so that the end offset of one allocation is
// never the start offset of another.
//
// Arena is not safe for concurrent use.
type Arena struct {
	// n is the offset of the next allocation. Offset 0 is reserved.
	n      uint64
	buf    []byte
	allocs int
	opts   Options
}

// New allocates a new arena.
func New(opts Options) *Arena {
	opts.EnsureDefaults()
	// Don't store data at position 0 in order to reserve offset=0 as a kind
	// of nil pointer.
	return &Arena{
		n:    1,
		buf:  crbytes.AllocAligned(opts.InitialSize),
		opts: opts,
	}
}

// Size returns the number of bytes consumed, including the reserved first
// byte and guard bytes.
func (a *Arena) Size() uint32 {
	return uint32(a.n)
}

// Capacity returns the size of the backing buffer.
func (a *Arena) Capacity() int {
	return len(a.buf)
}

// Allocations returns the number of successful calls to Alloc.
func (a *Arena) Allocations() int {
	return a.allocs
}

// Alloc reserves n fresh bytes and returns the offset of the first one. The
// bytes are zeroed.
func (a *Arena) Alloc(n uint32) (Pointer, error) {
	newSize := a.n + uint64(n) + guard
	if newSize > uint64(a.opts.MaxSize) {
		return 0, ErrArenaFull
	}
	if newSize > uint64(len(a.buf)) {
		a.grow(newSize)
	}
	offset := Pointer(a.n)
	a.n = newSize
	a.allocs++
	return offset, nil
}

// grow reallocates the backing buffer so that it holds at least min bytes.
// The buffer at least doubles to keep Alloc amortized O(1).
func (a *Arena) grow(min uint64) {
	oldCap := len(a.buf)
	newCap := uint64(oldCap) * 2
	if newCap < min {
		newCap = min
	}
	if newCap > uint64(a.opts.MaxSize) {
		newCap = uint64(a.opts.MaxSize)
	}
	buf := crbytes.AllocAligned(int(newCap))
	copy(buf, a.buf[:a.n])
	a.buf = buf
	if a.opts.OnGrow != nil {
		a.opts.OnGrow(oldCap, len(buf))
	}
}

// LoadByte returns the byte at p+off.
func (a *Arena) LoadByte(p Pointer, off uint32) byte {
	i := uint64(p) + uint64(off)
	invariants.CheckBounds(i, a.n)
	return a.buf[i]
}

// StoreByte stores b at p+off.
func (a *Arena) StoreByte(p Pointer, off uint32, b byte) {
	i := uint64(p) + uint64(off)
	invariants.CheckBounds(i, a.n)
	a.buf[i] = b
}

// CopyBytes copies n bytes from src to dst. The two ranges must not overlap.
func (a *Arena) CopyBytes(src, dst Pointer, n uint32) {
	if n == 0 {
		return
	}
	if invariants.Enabled {
		s, d := uint64(src), uint64(dst)
		if s < d+uint64(n) && d < s+uint64(n) {
			panic(errors.AssertionFailedf("arena: overlapping copy [%d,%d) -> [%d,%d)",
				s, s+uint64(n), d, d+uint64(n)))
		}
	}
	copy(a.Bytes(dst, n), a.Bytes(src, n))
}

// Write copies b into the arena starting at p.
func (a *Arena) Write(p Pointer, b []byte) {
	copy(a.Bytes(p, uint32(len(b))), b)
}

// WriteString copies s into the arena starting at p.
func (a *Arena) WriteString(p Pointer, s string) {
	copy(a.Bytes(p, uint32(len(s))), s)
}

// Bytes returns a view of the n bytes at p. The view aliases the arena and
// is only valid until the next allocation, which may move the buffer. Its
// capacity is clamped so that appending to it cannot scribble over
// neighbouring allocations.
func (a *Arena) Bytes(p Pointer, n uint32) []byte {
	if n == 0 {
		return nil
	}
	end := uint64(p) + uint64(n)
	if end > a.n {
		panic(errors.AssertionFailedf("arena: range [%d,%d) beyond allocated size %d", p, end, a.n))
	}
	return a.buf[p:end:end]
}
