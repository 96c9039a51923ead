// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package spanstrings

import (
	"fmt"
	"log"
	"os"

	"github.com/cockroachdb/spanstrings/internal/arena"
)

// Logger defines an interface for writing log messages.
type Logger interface {
	Infof(format string, args ...interface{})
	Fatalf(format string, args ...interface{})
}

// DefaultLogger logs to the Go stdlib logs.
var DefaultLogger defaultLogger

type defaultLogger struct{}

var _ Logger = DefaultLogger

// Infof implements the Logger.Infof interface.
func (defaultLogger) Infof(format string, args ...interface{}) {
	_ = log.Output(2, fmt.Sprintf(format, args...))
}

// Fatalf implements the Logger.Fatalf interface.
func (defaultLogger) Fatalf(format string, args ...interface{}) {
	_ = log.Output(2, fmt.Sprintf(format, args...))
	os.Exit(1)
}

// Options holds the optional parameters for a Store.
type Options struct {
	// InitialSize is the number of bytes the arena reserves up front. The
	// arena grows on demand past it.
	//
	// The default value is 4KB.
	InitialSize int

	// MaxSize is the number of bytes after which allocations fail. Every
	// allocation costs its length plus one byte. Exceeding MaxSize is fatal:
	// Logger.Fatalf is called and the allocating operation panics.
	//
	// The default value, and the upper bound, is 4GB.
	MaxSize int

	// Logger used to write log messages.
	//
	// The default logger uses the Go standard library log package.
	Logger Logger

	// Verbose enables logging of arena growth.
	Verbose bool
}

// EnsureDefaults ensures that the default values for all options are set if a
// valid value was not already specified. Returns the new options.
func (o *Options) EnsureDefaults() *Options {
	if o == nil {
		o = &Options{}
	}
	if o.InitialSize <= 0 {
		o.InitialSize = arena.DefaultInitialSize
	}
	if o.MaxSize <= 0 || o.MaxSize > arena.MaxSize {
		o.MaxSize = arena.MaxSize
	}
	if o.Logger == nil {
		o.Logger = DefaultLogger
	}
	return o
}

// Clone creates a shallow-copy of the supplied options.
func (o *Options) Clone() *Options {
	n := &Options{}
	if o != nil {
		*n = *o
	}
	return n
}
