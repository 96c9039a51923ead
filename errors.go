// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package spanstrings

import "github.com/cockroachdb/errors"

// ErrOutOfBounds is returned by GetSlice when the requested range extends
// past the end of the source span. Callers match on the message text, so it
// must not change.
var ErrOutOfBounds = errors.New("Specified length goes out of bounds")
