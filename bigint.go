// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

package bigint

import "math"

// BigInt is an arbitrary-precision signed integer. The zero value
// represents 0 and is ready to use.
//
// Representation: sign-magnitude. mag holds the absolute value as
// little-endian base-2^32 limbs with no leading (high) zero limb; zero
// is represented by a nil/empty mag, and neg is meaningless (and always
// treated as false) when mag is empty.
//
// Methods follow the math/big.Int convention: the receiver is both the
// destination and the return value, e.g. z.Add(x, y) computes x+y,
// stores it in z, and returns z. x and y may alias z or each other.
// BigInt values are otherwise ordinary Go values: copying a BigInt by
// assignment (b := a) is safe and produces an independent value, because
// operations never mutate a magnitude slice that might be shared —
// every mutating method builds a fresh result slice.
type BigInt struct {
	mag []uint32
	neg bool
}

// NewInt returns a new BigInt set to 0.
func NewInt() *BigInt {
	return &BigInt{}
}

// SetInt64 sets z to x and returns z.
func (z *BigInt) SetInt64(x int64) *BigInt {
	z.mag, z.neg = magnitudeOfInt64(x)
	return z
}

// SetUint64 sets z to x and returns z.
func (z *BigInt) SetUint64(x uint64) *BigInt {
	z.mag = fromUint64Mag(x)
	z.neg = false
	return z
}

// SetInt32 sets z to x and returns z.
func (z *BigInt) SetInt32(x int32) *BigInt { return z.SetInt64(int64(x)) }

// SetUint32 sets z to x and returns z.
func (z *BigInt) SetUint32(x uint32) *BigInt { return z.SetUint64(uint64(x)) }

// SetInt16 sets z to x and returns z.
func (z *BigInt) SetInt16(x int16) *BigInt { return z.SetInt64(int64(x)) }

// SetUint16 sets z to x and returns z.
func (z *BigInt) SetUint16(x uint16) *BigInt { return z.SetUint64(uint64(x)) }

// FromInt64 returns a new BigInt set to x.
func FromInt64(x int64) *BigInt { return new(BigInt).SetInt64(x) }

// FromUint64 returns a new BigInt set to x.
func FromUint64(x uint64) *BigInt { return new(BigInt).SetUint64(x) }

// FromInt32 returns a new BigInt set to x.
func FromInt32(x int32) *BigInt { return new(BigInt).SetInt32(x) }

// FromUint32 returns a new BigInt set to x.
func FromUint32(x uint32) *BigInt { return new(BigInt).SetUint32(x) }

// FromInt16 returns a new BigInt set to x.
func FromInt16(x int16) *BigInt { return new(BigInt).SetInt16(x) }

// FromUint16 returns a new BigInt set to x.
func FromUint16(x uint16) *BigInt { return new(BigInt).SetUint16(x) }

// Set sets z to x and returns z.
func (z *BigInt) Set(x *BigInt) *BigInt {
	if z == x {
		return z
	}
	z.mag = cloneLimbs(x.mag)
	z.neg = x.neg && len(z.mag) > 0
	return z
}

// Copy returns a new BigInt with the same value as x.
func (x *BigInt) Copy() *BigInt {
	return new(BigInt).Set(x)
}

// Swap exchanges the values of z and x.
func (z *BigInt) Swap(x *BigInt) {
	z.mag, x.mag = x.mag, z.mag
	z.neg, x.neg = x.neg, z.neg
}

// IsZero reports whether x is 0.
func (x *BigInt) IsZero() bool {
	return len(x.mag) == 0
}

// IsNegative reports whether x < 0.
func (x *BigInt) IsNegative() bool {
	return x.neg && len(x.mag) > 0
}

// Sign returns -1, 0, or +1 depending on whether x is negative, zero, or
// positive.
func (x *BigInt) Sign() int {
	if len(x.mag) == 0 {
		return 0
	}
	if x.neg {
		return -1
	}
	return 1
}

// Abs sets z to |x| and returns z.
func (z *BigInt) Abs(x *BigInt) *BigInt {
	z.mag = cloneLimbs(x.mag)
	z.neg = false
	return z
}

// Int64 returns the int64 value of x. If x is not representable in an
// int64, the result is undefined.
func (x *BigInt) Int64() int64 {
	v := int64(toUint64Mag(x.mag))
	if x.neg {
		if len(x.mag) == 2 && x.mag[0] == 0 && x.mag[1] == 0x80000000 {
			return math.MinInt64
		}
		return -v
	}
	return v
}

// Uint64 returns the uint64 value of |x|. If |x| does not fit in a
// uint64, the result is undefined.
func (x *BigInt) Uint64() uint64 {
	return toUint64Mag(x.mag)
}

// BitLen returns the length of the absolute value of x in bits. BitLen(0)
// is 0.
func (x *BigInt) BitLen() int {
	return bitLenLimbs(x.mag)
}

// TrailingZeros returns the number of trailing zero bits in |x|.
// TrailingZeros(0) is 0.
func (x *BigInt) TrailingZeros() int {
	return trailingZerosLimbs(x.mag)
}
