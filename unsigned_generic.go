// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

package bigint

// Generic implementations of the unsigned primitives: a straightforward
// limb-at-a-time loop carrying state in a uint64 accumulator. Used as the
// fallback when the CPU doesn't report the features unsigned_optimized.go
// prefers, and as the reference the optimized path is cross-checked
// against in unsigned_dispatch_test.go.

func absAddGeneric(a, b []uint32) []uint32 {
	if len(a) < len(b) {
		a, b = b, a
	}
	out := make([]uint32, len(a)+1)
	var carry uint64
	for i := range a {
		var bv uint64
		if i < len(b) {
			bv = uint64(b[i])
		}
		sum := uint64(a[i]) + bv + carry
		out[i] = uint32(sum)
		carry = sum >> 32
	}
	out[len(a)] = uint32(carry)
	return trimLimbs(out)
}

func absSubGeneric(a, b []uint32) []uint32 {
	out := make([]uint32, len(a))
	var borrow uint64
	for i := range a {
		av := uint64(a[i])
		var bv uint64
		if i < len(b) {
			bv = uint64(b[i])
		}
		d := av - bv - borrow
		out[i] = uint32(d)
		if av < bv+borrow {
			borrow = 1
		} else {
			borrow = 0
		}
	}
	return trimLimbs(out)
}

func absMulGeneric(a, b []uint32) []uint32 {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}
	out := make([]uint32, len(a)+len(b))
	for i := range a {
		ai := uint64(a[i])
		if ai == 0 {
			continue
		}
		var carry uint64
		for j := range b {
			k := i + j
			sum := uint64(out[k]) + ai*uint64(b[j]) + carry
			out[k] = uint32(sum)
			carry = sum >> 32
		}
		k := i + len(b)
		for carry != 0 {
			sum := uint64(out[k]) + carry
			out[k] = uint32(sum)
			carry = sum >> 32
			k++
		}
	}
	return trimLimbs(out)
}

func absMulIntGeneric(a []uint32, m uint32) []uint32 {
	if len(a) == 0 || m == 0 {
		return nil
	}
	out := make([]uint32, len(a)+1)
	var carry uint64
	mm := uint64(m)
	for i := range a {
		p := uint64(a[i])*mm + carry
		out[i] = uint32(p)
		carry = p >> 32
	}
	out[len(a)] = uint32(carry)
	return trimLimbs(out)
}

func absAddIntGeneric(a []uint32, v uint32) []uint32 {
	if v == 0 {
		return cloneLimbs(a)
	}
	if len(a) == 0 {
		return []uint32{v}
	}
	out := make([]uint32, len(a)+1)
	copy(out, a)
	carry := uint64(v)
	for i := 0; carry != 0 && i < len(out); i++ {
		sum := uint64(out[i]) + carry
		out[i] = uint32(sum)
		carry = sum >> 32
	}
	return trimLimbs(out)
}

func absSubIntGeneric(a []uint32, v uint32) []uint32 {
	out := cloneLimbs(a)
	if len(out) == 0 {
		return nil
	}
	borrow := uint64(v)
	for i := 0; borrow != 0 && i < len(out); i++ {
		av := uint64(out[i])
		d := av - borrow
		out[i] = uint32(d)
		if av < borrow {
			borrow = 1
		} else {
			borrow = 0
		}
	}
	return trimLimbs(out)
}

func absDivideByLimbGeneric(a []uint32, d uint32) ([]uint32, uint32) {
	if len(a) == 0 {
		return nil, 0
	}
	out := make([]uint32, len(a))
	var rem uint64
	dd := uint64(d)
	for i := len(a) - 1; i >= 0; i-- {
		cur := rem<<32 | uint64(a[i])
		out[i] = uint32(cur / dd)
		rem = cur % dd
	}
	return trimLimbs(out), uint32(rem)
}
