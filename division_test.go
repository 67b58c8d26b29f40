// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

package bigint

import (
	"math/rand"
	"testing"
)

func TestAbsDivModSingleLimb(t *testing.T) {
	q, r := absDivMod([]uint32{7}, []uint32{2})
	if cmpLimbs(q, []uint32{3}) != 0 || cmpLimbs(r, []uint32{1}) != 0 {
		t.Errorf("7 / 2 = (%v, %v), want ([3], [1])", q, r)
	}
}

func TestAbsDivModDividendSmallerThanDivisor(t *testing.T) {
	q, r := absDivMod([]uint32{2}, []uint32{7})
	if len(q) != 0 || cmpLimbs(r, []uint32{2}) != 0 {
		t.Errorf("2 / 7 = (%v, %v), want (0, 2)", q, r)
	}
}

func TestAbsDivModMultiLimbExact(t *testing.T) {
	// (2^64 - 1) / (2^32 - 1) = 2^32 + 1, remainder 0.
	a := []uint32{0xFFFFFFFF, 0xFFFFFFFF}
	b := []uint32{0xFFFFFFFF}
	q, r := absDivMod(a, b)
	if cmpLimbs(q, []uint32{1, 1}) != 0 {
		t.Errorf("q = %v, want [1,1]", q)
	}
	if len(r) != 0 {
		t.Errorf("r = %v, want 0", r)
	}
}

func TestAbsDivModSameTopLimb(t *testing.T) {
	// Exercises the quotient-digit correction loop: dividend and divisor
	// share the same high limb.
	a := []uint32{0, 0, 1}       // 2^64
	b := []uint32{0xFFFFFFFF, 1} // 2^32 + (2^32 - 1)
	q, r := absDivMod(a, b)

	reconstructed := absAdd(absMul(q, b), r)
	if cmpLimbs(reconstructed, a) != 0 {
		t.Errorf("q*b+r != a: q=%v r=%v reconstructed=%v want=%v", q, r, reconstructed, a)
	}
	if cmpLimbs(r, b) >= 0 {
		t.Errorf("remainder %v should be smaller than divisor %v", r, b)
	}
}

func TestAbsDivModRandomAgainstMultiply(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		var aLimbs, bLimbs []uint32
		for len(bLimbs) == 0 {
			bLimbs = randLimbs(r, 4)
		}
		aLimbs = randLimbs(r, 8)

		q, rem := absDivMod(aLimbs, bLimbs)
		if cmpLimbs(rem, bLimbs) >= 0 {
			t.Fatalf("remainder not smaller than divisor: a=%v b=%v q=%v rem=%v", aLimbs, bLimbs, q, rem)
		}
		reconstructed := absAdd(absMul(q, bLimbs), rem)
		if cmpLimbs(reconstructed, trimLimbs(aLimbs)) != 0 {
			t.Fatalf("q*b+r != a: a=%v b=%v q=%v rem=%v got=%v", aLimbs, bLimbs, q, rem, reconstructed)
		}
	}
}
