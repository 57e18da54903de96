// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bitflag provides bit flag setting, checking, and clearing
// functions that take bit positions as enum values (from const iota's)
// and do the bit shifting from there, so that enum types can
// keep an ordinal list of flags.
package bitflag

import "sync/atomic"

// Position is an enum type whose values are bit positions.
type Position interface {
	~int | ~int32 | ~int64
}

// Mask makes a mask for checking multiple different flags
func Mask[F Position](flags ...F) int64 {
	var mask int64
	for _, f := range flags {
		mask |= 1 << uint32(f)
	}
	return mask
}

// Set sets bit value(s) for the given flags
func Set[F Position](bits *int64, flags ...F) {
	*bits |= Mask(flags...)
}

// Clear clears bit value(s) for the given flags
func Clear[F Position](bits *int64, flags ...F) {
	*bits &^= Mask(flags...)
}

// SetState sets or clears bit value(s) depending on state (on / off)
func SetState[F Position](bits *int64, state bool, flags ...F) {
	if state {
		Set(bits, flags...)
	} else {
		Clear(bits, flags...)
	}
}

// SetStateAtomic sets or clears bit value(s) depending on state,
// using an atomic compare-and-swap loop, safe for concurrent access
func SetStateAtomic[F Position](bits *int64, state bool, flags ...F) {
	mask := Mask(flags...)
	for {
		cr := atomic.LoadInt64(bits)
		nw := cr | mask
		if !state {
			nw = cr &^ mask
		}
		if atomic.CompareAndSwapInt64(bits, cr, nw) {
			return
		}
	}
}

// Toggle toggles the state of bit value(s) for the given flags
func Toggle[F Position](bits *int64, flags ...F) {
	*bits ^= Mask(flags...)
}

// Has checks if given bit value is set
func Has[F Position](bits int64, flag F) bool {
	return bits&(1<<uint32(flag)) != 0
}

// HasAtomic checks if given bit value is set using an atomic load,
// safe for concurrent access
func HasAtomic[F Position](bits *int64, flag F) bool {
	return atomic.LoadInt64(bits)&(1<<uint32(flag)) != 0
}

// HasAny checks if any of a set of flags are set (logical OR)
func HasAny[F Position](bits int64, flags ...F) bool {
	return bits&Mask(flags...) != 0
}

// HasAll checks if all of a set of flags are set (logical AND)
func HasAll[F Position](bits int64, flags ...F) bool {
	mask := Mask(flags...)
	return bits&mask == mask
}
