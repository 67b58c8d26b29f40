// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

package bigint

import "testing"

func TestParseAndStringRoundTrip(t *testing.T) {
	cases := []string{
		"0", "1", "-1", "42", "-42",
		"123456789012345678901234567890",
		"-123456789012345678901234567890",
		"999999999", "1000000000", "1000000001",
	}
	for _, s := range cases {
		x, err := ParseBigInt(s)
		if err != nil {
			t.Fatalf("ParseBigInt(%q): %v", s, err)
		}
		if got := x.String(); got != s {
			t.Errorf("round trip %q -> %q", s, got)
		}
	}
}

func TestParseLeadingPlus(t *testing.T) {
	x, err := ParseBigInt("+42")
	if err != nil {
		t.Fatalf("ParseBigInt(+42): %v", err)
	}
	if x.String() != "42" {
		t.Errorf("+42 parsed as %s", x)
	}
}

func TestParseErrors(t *testing.T) {
	bad := []string{"", "-", "+", "12a", "a12", "1.5", "- 1", "1-"}
	for _, s := range bad {
		if _, err := ParseBigInt(s); err == nil {
			t.Errorf("ParseBigInt(%q) should have failed", s)
		}
	}
}

func TestParseDoesNotMutateOnError(t *testing.T) {
	z := FromInt64(99)
	orig := z.Copy()
	if _, err := z.SetString("not a number"); err == nil {
		t.Fatal("expected parse error")
	}
	if z.Cmp(orig) != 0 {
		t.Errorf("SetString mutated z on error: z = %s", z)
	}
}

func TestStringNoLeadingZerosOrNegativeZero(t *testing.T) {
	x, _ := ParseBigInt("-0")
	if x.String() != "0" {
		t.Errorf("to_string(-0) = %q", x.String())
	}

	y, _ := ParseBigInt("00042")
	if y.String() != "42" {
		t.Errorf("to_string(from_string(\"00042\")) = %q, want \"42\"", y.String())
	}
}

func TestMarshalUnmarshalText(t *testing.T) {
	x, _ := ParseBigInt("-123456789012345678901234567890")
	text, err := x.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText: %v", err)
	}

	var y BigInt
	if err := y.UnmarshalText(text); err != nil {
		t.Fatalf("UnmarshalText: %v", err)
	}
	if x.Cmp(&y) != 0 {
		t.Errorf("round trip through text failed: got %s, want %s", &y, x)
	}
}

func TestStringChunkBoundary(t *testing.T) {
	// Exercises the formatter across multiple 9-digit chunks with an
	// intermediate chunk that needs left-padding.
	s := "1" + "000000000" + "000000001"
	x, err := ParseBigInt(s)
	if err != nil {
		t.Fatalf("ParseBigInt(%q): %v", s, err)
	}
	if got := x.String(); got != s {
		t.Errorf("got %q, want %q", got, s)
	}
}
