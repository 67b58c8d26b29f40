// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

package bigint

import (
	"strings"

	"github.com/pkg/errors"
)

// chunkDigits is the number of decimal digits folded into the magnitude
// per multiply-add step; 10^9 is the largest power of ten that still
// fits a uint32 multiplier with room to spare.
const chunkDigits = 9

var pow10 = [chunkDigits + 1]uint32{
	1, 10, 100, 1000, 10000, 100000,
	1000000, 10000000, 100000000, 1000000000,
}

// SetString sets z to the value represented by s, a base-10 integer
// literal with an optional leading '+' or '-', and returns z. If s is
// not a valid literal, z is left unmodified and a wrapped ErrParse is
// returned.
func (z *BigInt) SetString(s string) (*BigInt, error) {
	v, err := parseDecimal(s)
	if err != nil {
		return z, err
	}
	z.mag, z.neg = v.mag, v.neg
	return z, nil
}

// ParseBigInt parses s as a base-10 integer literal, as SetString does,
// returning a wrapped ErrParse on failure.
func ParseBigInt(s string) (*BigInt, error) {
	return parseDecimal(s)
}

func parseDecimal(s string) (*BigInt, error) {
	orig := s
	neg := false
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}
	if len(s) == 0 {
		return nil, errors.Wrapf(ErrParse, "%q", orig)
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return nil, errors.Wrapf(ErrParse, "%q", orig)
		}
	}

	first := len(s) % chunkDigits
	if first == 0 {
		first = chunkDigits
	}

	var mag []uint32
	pos := 0

	addChunk := func(chunk string) {
		var v uint32
		for i := 0; i < len(chunk); i++ {
			v = v*10 + uint32(chunk[i]-'0')
		}
		mag = absAddInt(absMulInt(mag, pow10[len(chunk)]), v)
	}

	addChunk(s[pos : pos+first])
	pos += first
	for pos < len(s) {
		addChunk(s[pos : pos+chunkDigits])
		pos += chunkDigits
	}

	mag = trimLimbs(mag)
	return &BigInt{mag: mag, neg: neg && len(mag) > 0}, nil
}

// String returns the base-10 representation of x, with a leading '-' if
// x is negative. The zero value renders as "0".
func (x *BigInt) String() string {
	if x.IsZero() {
		return "0"
	}

	mag := cloneLimbs(x.mag)
	var chunks []uint32
	for len(mag) > 0 {
		var rem uint32
		mag, rem = absDivideByLimb(mag, 1000000000)
		chunks = append(chunks, rem)
	}

	var b strings.Builder
	if x.neg {
		b.WriteByte('-')
	}

	last := len(chunks) - 1
	b.WriteString(itoaNoPad(chunks[last]))
	for i := last - 1; i >= 0; i-- {
		b.WriteString(itoaPadded(chunks[i], chunkDigits))
	}
	return b.String()
}

func itoaNoPad(v uint32) string {
	if v == 0 {
		return "0"
	}
	var buf [10]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	return string(buf[i:])
}

func itoaPadded(v uint32, width int) string {
	var buf [chunkDigits]byte
	for i := width - 1; i >= 0; i-- {
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	return string(buf[:])
}

// MarshalText implements encoding.TextMarshaler.
func (x *BigInt) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (z *BigInt) UnmarshalText(text []byte) error {
	v, err := parseDecimal(string(text))
	if err != nil {
		return err
	}
	z.mag, z.neg = v.mag, v.neg
	return nil
}
