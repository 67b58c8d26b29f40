// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

package bigint

import "math/bits"

// Optimized implementations of the unsigned primitives, built on
// math/bits carry-propagating intrinsics (Add32/Sub32/Mul32/Div32). The
// Go compiler lowers these to hardware add-with-carry, widening-multiply,
// and hardware-divide instructions on amd64 and arm64, so this path
// avoids the 64-bit accumulator the generic path uses for every limb.

func absAddOptimized(a, b []uint32) []uint32 {
	if len(a) < len(b) {
		a, b = b, a
	}
	out := make([]uint32, len(a)+1)
	var carry uint32
	for i := range a {
		var bv uint32
		if i < len(b) {
			bv = b[i]
		}
		out[i], carry = bits.Add32(a[i], bv, carry)
	}
	out[len(a)] = carry
	return trimLimbs(out)
}

func absSubOptimized(a, b []uint32) []uint32 {
	out := make([]uint32, len(a))
	var borrow uint32
	for i := range a {
		var bv uint32
		if i < len(b) {
			bv = b[i]
		}
		out[i], borrow = bits.Sub32(a[i], bv, borrow)
	}
	return trimLimbs(out)
}

func absMulOptimized(a, b []uint32) []uint32 {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}
	out := make([]uint32, len(a)+len(b))
	for i := range a {
		if a[i] == 0 {
			continue
		}
		var carry uint32
		for j := range b {
			hi, lo := bits.Mul32(a[i], b[j])
			s1, c1 := bits.Add32(out[i+j], lo, 0)
			s2, c2 := bits.Add32(s1, carry, 0)
			out[i+j] = s2
			carry = hi + c1 + c2
		}
		k := i + len(b)
		for carry != 0 {
			var c uint32
			out[k], c = bits.Add32(out[k], carry, 0)
			carry = c
			k++
		}
	}
	return trimLimbs(out)
}

func absMulIntOptimized(a []uint32, m uint32) []uint32 {
	if len(a) == 0 || m == 0 {
		return nil
	}
	out := make([]uint32, len(a)+1)
	var carry uint32
	for i := range a {
		hi, lo := bits.Mul32(a[i], m)
		s, c := bits.Add32(lo, carry, 0)
		out[i] = s
		carry = hi + c
	}
	out[len(a)] = carry
	return trimLimbs(out)
}

func absAddIntOptimized(a []uint32, v uint32) []uint32 {
	if v == 0 {
		return cloneLimbs(a)
	}
	if len(a) == 0 {
		return []uint32{v}
	}
	out := make([]uint32, len(a)+1)
	copy(out, a)
	carry := v
	for i := 0; carry != 0 && i < len(out); i++ {
		out[i], carry = bits.Add32(out[i], carry, 0)
	}
	return trimLimbs(out)
}

func absSubIntOptimized(a []uint32, v uint32) []uint32 {
	out := cloneLimbs(a)
	if len(out) == 0 {
		return nil
	}
	borrow := v
	for i := 0; borrow != 0 && i < len(out); i++ {
		out[i], borrow = bits.Sub32(out[i], borrow, 0)
	}
	return trimLimbs(out)
}

func absDivideByLimbOptimized(a []uint32, d uint32) ([]uint32, uint32) {
	if len(a) == 0 {
		return nil, 0
	}
	out := make([]uint32, len(a))
	var rem uint32
	for i := len(a) - 1; i >= 0; i-- {
		out[i], rem = bits.Div32(rem, a[i], d)
	}
	return trimLimbs(out), rem
}
