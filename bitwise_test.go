// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

package bigint

import "testing"

func TestBitwiseScenarios(t *testing.T) {
	allBits := FromUint32(0xFFFFFFFF)
	negOne := FromInt64(-1)

	if got := new(BigInt).And(allBits, allBits).String(); got != "4294967295" {
		t.Errorf("0xFFFFFFFF & 0xFFFFFFFF = %s, want 4294967295", got)
	}
	if got := new(BigInt).And(allBits, negOne).String(); got != "4294967295" {
		t.Errorf("0xFFFFFFFF & -1 = %s, want 4294967295", got)
	}
	if got := new(BigInt).And(negOne, negOne).String(); got != "-1" {
		t.Errorf("-1 & -1 = %s, want -1", got)
	}
}

func TestNot(t *testing.T) {
	if got := new(BigInt).Not(Zero()).String(); got != "-1" {
		t.Errorf("~0 = %s, want -1", got)
	}
	x := FromInt64(5)
	notX := new(BigInt).Not(x)
	want := new(BigInt).Neg(new(BigInt).Add(x, FromInt64(1)))
	if notX.Cmp(want) != 0 {
		t.Errorf("~5 = %s, want %s", notX, want)
	}
}

func TestRshScenarios(t *testing.T) {
	if got := new(BigInt).Rsh(FromInt64(-1), 1).String(); got != "-1" {
		t.Errorf("-1 >> 1 = %s, want -1", got)
	}
	if got := new(BigInt).Rsh(FromInt64(-8), 2).String(); got != "-2" {
		t.Errorf("-8 >> 2 = %s, want -2", got)
	}
	if got := new(BigInt).Rsh(FromInt64(8), 2).String(); got != "2" {
		t.Errorf("8 >> 2 = %s, want 2", got)
	}
	if got := new(BigInt).Rsh(FromInt64(-4), 2).String(); got != "-1" {
		t.Errorf("-4 >> 2 = %s, want -1", got)
	}
}

func TestLshEqualsMulByPowerOfTwo(t *testing.T) {
	for n := uint(0); n < 40; n += 7 {
		x := FromInt64(123456789)
		shifted := new(BigInt).Lsh(x, n)

		pow := FromInt64(1)
		two := FromInt64(2)
		for i := uint(0); i < n; i++ {
			pow.Mul(pow, two)
		}
		want := new(BigInt).Mul(x, pow)
		if shifted.Cmp(want) != 0 {
			t.Errorf("%s << %d = %s, want %s", x, n, shifted, want)
		}
	}
}

func TestAndOrXorAgainstBruteForce64(t *testing.T) {
	cases := []int64{0, 1, -1, 5, -5, 255, -255, 1 << 40, -(1 << 40)}
	for _, a := range cases {
		for _, b := range cases {
			x, y := FromInt64(a), FromInt64(b)

			if got := new(BigInt).And(x, y).Int64(); got != a&b {
				t.Errorf("%d & %d = %d, want %d", a, b, got, a&b)
			}
			if got := new(BigInt).Or(x, y).Int64(); got != a|b {
				t.Errorf("%d | %d = %d, want %d", a, b, got, a|b)
			}
			if got := new(BigInt).Xor(x, y).Int64(); got != a^b {
				t.Errorf("%d ^ %d = %d, want %d", a, b, got, a^b)
			}
		}
	}
}
