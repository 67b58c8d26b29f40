// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

package bigint

import "github.com/pkg/errors"

// Add sets z to x+y and returns z.
func (z *BigInt) Add(x, y *BigInt) *BigInt {
	if x.neg == y.neg {
		mag := absAdd(x.mag, y.mag)
		neg := x.neg
		z.mag, z.neg = mag, neg && len(mag) > 0
		return z
	}

	switch cmpLimbs(x.mag, y.mag) {
	case 0:
		z.mag, z.neg = nil, false
	case 1:
		z.mag = absSub(x.mag, y.mag)
		z.neg = x.neg && len(z.mag) > 0
	default:
		z.mag = absSub(y.mag, x.mag)
		z.neg = y.neg && len(z.mag) > 0
	}
	return z
}

// Sub sets z to x-y and returns z.
func (z *BigInt) Sub(x, y *BigInt) *BigInt {
	negY := y.Copy()
	negY.neg = !negY.neg
	return z.Add(x, negY)
}

// Neg sets z to -x and returns z.
func (z *BigInt) Neg(x *BigInt) *BigInt {
	mag := cloneLimbs(x.mag)
	z.mag = mag
	z.neg = len(mag) > 0 && !x.neg
	return z
}

// Mul sets z to x*y and returns z.
func (z *BigInt) Mul(x, y *BigInt) *BigInt {
	mag := absMul(x.mag, y.mag)
	z.mag = mag
	z.neg = (x.neg != y.neg) && len(mag) > 0
	return z
}

// QuoRem sets z to the truncated quotient x/y and r to the remainder
// x-z*y, then returns (z, r). The remainder has the same sign as x (or
// is zero), matching truncated (toward zero) division. It returns
// ErrDivisionByZero, without modifying z or r, if y is zero.
func (z *BigInt) QuoRem(x, y, r *BigInt) (*BigInt, *BigInt, error) {
	if y.IsZero() {
		return z, r, errors.WithStack(ErrDivisionByZero)
	}

	xNeg, yNeg := x.neg, y.neg
	qMag, rMag := absDivMod(x.mag, y.mag)

	z.mag = qMag
	z.neg = (xNeg != yNeg) && len(qMag) > 0

	r.mag = rMag
	r.neg = xNeg && len(rMag) > 0

	return z, r, nil
}

// Quo sets z to the truncated quotient x/y and returns z. It returns
// ErrDivisionByZero, without modifying z, if y is zero.
func (z *BigInt) Quo(x, y *BigInt) (*BigInt, error) {
	var r BigInt
	_, _, err := z.QuoRem(x, y, &r)
	if err != nil {
		return z, err
	}
	return z, nil
}

// Rem sets z to the remainder of x/y (same sign as x, or zero) and
// returns z. It returns ErrDivisionByZero, without modifying z, if y is
// zero.
func (z *BigInt) Rem(x, y *BigInt) (*BigInt, error) {
	var q BigInt
	_, _, err := q.QuoRem(x, y, z)
	if err != nil {
		return z, err
	}
	return z, nil
}

// Inc adds 1 to z in place and returns z.
func (z *BigInt) Inc() *BigInt {
	if !z.neg {
		z.mag = absAddInt(z.mag, 1)
		return z
	}
	z.mag = absSubInt(z.mag, 1)
	if len(z.mag) == 0 {
		z.neg = false
	}
	return z
}

// Dec subtracts 1 from z in place and returns z.
func (z *BigInt) Dec() *BigInt {
	if z.neg {
		z.mag = absAddInt(z.mag, 1)
		return z
	}
	if len(z.mag) == 0 {
		z.mag = []uint32{1}
		z.neg = true
		return z
	}
	z.mag = absSubInt(z.mag, 1)
	return z
}
