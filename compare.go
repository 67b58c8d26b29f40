// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

package bigint

// Cmp compares x and y and returns -1, 0, or +1 depending on whether
// x < y, x == y, or x > y.
func (x *BigInt) Cmp(y *BigInt) int {
	xZero, yZero := x.IsZero(), y.IsZero()
	switch {
	case xZero && yZero:
		return 0
	case xZero:
		if y.neg {
			return 1
		}
		return -1
	case yZero:
		if x.neg {
			return -1
		}
		return 1
	}

	if x.neg != y.neg {
		if x.neg {
			return -1
		}
		return 1
	}

	c := cmpLimbs(x.mag, y.mag)
	if x.neg {
		return -c
	}
	return c
}

// CmpAbs compares |x| and |y| and returns -1, 0, or +1 depending on
// whether |x| < |y|, |x| == |y|, or |x| > |y|.
func (x *BigInt) CmpAbs(y *BigInt) int {
	return cmpLimbs(x.mag, y.mag)
}

// Eq reports whether x == y.
func (x *BigInt) Eq(y *BigInt) bool { return x.Cmp(y) == 0 }

// Lt reports whether x < y.
func (x *BigInt) Lt(y *BigInt) bool { return x.Cmp(y) < 0 }

// Lte reports whether x <= y.
func (x *BigInt) Lte(y *BigInt) bool { return x.Cmp(y) <= 0 }

// Gt reports whether x > y.
func (x *BigInt) Gt(y *BigInt) bool { return x.Cmp(y) > 0 }

// Gte reports whether x >= y.
func (x *BigInt) Gte(y *BigInt) bool { return x.Cmp(y) >= 0 }
