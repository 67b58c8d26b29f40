// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

package bigint

import "math/bits"

// Magnitude buffer primitives.
//
// A BigInt magnitude is a little-endian sequence of uint32 limbs: limb 0
// is least significant. Canonical form requires no high zero limb; the
// value zero is represented by the empty (nil) slice. These helpers
// (trimming, copying, comparing, bit counts) are not dispatched; they are
// shared by the unsigned primitives and by the signed, bitwise, division
// and serialization code.

// trimLimbs drops trailing (high) zero limbs so the result is canonical.
func trimLimbs(a []uint32) []uint32 {
	n := len(a)
	for n > 0 && a[n-1] == 0 {
		n--
	}
	return a[:n]
}

// cloneLimbs returns an independent copy of a magnitude, trimmed.
func cloneLimbs(a []uint32) []uint32 {
	a = trimLimbs(a)
	if len(a) == 0 {
		return nil
	}
	out := make([]uint32, len(a))
	copy(out, a)
	return out
}

// cmpLimbs compares two magnitudes (unsigned, canonical or not) by
// length first, then lexicographically from the highest limb down.
func cmpLimbs(a, b []uint32) int {
	a, b = trimLimbs(a), trimLimbs(b)
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// bitLenLimbs returns the number of bits needed to represent a magnitude,
// i.e. the position of its highest set bit plus one. Zero has bit length 0.
func bitLenLimbs(a []uint32) int {
	a = trimLimbs(a)
	if len(a) == 0 {
		return 0
	}
	return (len(a)-1)*32 + (32 - bits.LeadingZeros32(a[len(a)-1]))
}

// trailingZerosLimbs returns the number of trailing zero bits in a
// magnitude. Zero itself has no trailing-zero bit, so it returns 0.
func trailingZerosLimbs(a []uint32) int {
	a = trimLimbs(a)
	if len(a) == 0 {
		return 0
	}
	n := 0
	for _, limb := range a {
		if limb == 0 {
			n += 32
			continue
		}
		n += bits.TrailingZeros32(limb)
		break
	}
	return n
}

// hasNonzero reports whether any limb in a is non-zero.
func hasNonzero(a []uint32) bool {
	for _, limb := range a {
		if limb != 0 {
			return true
		}
	}
	return false
}
