// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

// Package bigint provides an arbitrary-precision signed integer type.
//
// A BigInt stores its value as a sign flag plus a little-endian sequence
// of 32-bit limbs representing the absolute value. Arithmetic, bitwise,
// comparison, shift, and decimal I/O operations are all provided as
// methods in the style of math/big.Int: the receiver is the destination,
// operands are passed explicitly, and a setter method returns its
// receiver (together with an error for the methods that can fail) so
// calls can be chained.
//
// Multiplication is schoolbook O(n·m) by choice — this package does not
// implement Karatsuba or FFT-based multiplication. Division and modulo
// use Knuth's Algorithm D. Bitwise operators (And, Or, Xor, Not) present
// an infinite-width two's-complement view of the value without ever
// materialising an infinite bit string.
package bigint
