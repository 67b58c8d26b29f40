// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

package bigint

// Zero, One, and Ten are commonly needed small values. Each call returns
// a fresh, independently owned BigInt; callers may mutate the result
// freely.
func Zero() *BigInt { return NewInt() }

func One() *BigInt { return FromInt64(1) }

func MinusOne() *BigInt { return FromInt64(-1) }

func Ten() *BigInt { return FromInt64(10) }
