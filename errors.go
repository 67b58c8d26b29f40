// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

package bigint

import "github.com/pkg/errors"

// ErrParse is returned (wrapped with context) by SetString and
// UnmarshalText when the input is not a valid decimal integer literal.
var ErrParse = errors.New("bigint: malformed decimal string")

// ErrDivisionByZero is returned by QuoRem, Quo, and Rem when the divisor
// is zero.
var ErrDivisionByZero = errors.New("bigint: division by zero")
