// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package widget

import "errors"

var (
	// ErrInvalidReference is returned for an unknown or erased id.
	// It is benign: ids can be invalidated by another goroutine
	// before the window processes the matching event.
	ErrInvalidReference = errors.New("invalid reference")

	// ErrCorruptedState is returned when an internal invariant is violated.
	// It aborts the affected pass and is never silently repaired.
	ErrCorruptedState = errors.New("corrupted state")
)
