package mathexpr

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestEval(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"9", 9},
		{"3^2", 9},
		{"3 ** 2", 9},
		{"2*3", 6},
		{"2 × 3", 6},
		{"2·3", 6},
		{"12 ÷ 4", 3},
		{"1+2*3", 7},
		{"(1+2)*3", 9},
		{"-3^2", -9},
		{"(-3)^2", 9},
		{"2^3^2", 512},
		{"2^-1", 0.5},
		{"--4", 4},
		{"√16", 4},
		{"√(9+16)", 5},
		{"2*√9", 6},
		{"√9^2", 9},
		{"π", math.Pi},
		{"2*PI", 2 * math.Pi},
		{".5+1.25", 1.75},
		{"10/4", 2.5},
	}
	for _, tc := range cases {
		got, err := Eval(tc.in)
		if err != nil {
			t.Fatalf("Eval(%q) returned error: %v", tc.in, err)
		}
		if math.Abs(got-tc.want) > 1e-9 {
			t.Fatalf("Eval(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestEvalErrors(t *testing.T) {
	cases := []struct {
		in   string
		want error
	}{
		{"", ErrEmpty},
		{"   ", ErrEmpty},
		{"1/0", ErrNotAValue},
		{"1/(2-2)", ErrNotAValue},
		{"√(0-4)", ErrNotAValue},
		{"√-4", ErrSyntax},
		{"10^400", ErrNotAValue},
		{"alert(1)", ErrInvalidChar},
		{"x+1", ErrInvalidChar},
		{"2,5", ErrInvalidChar},
		{"1+", ErrSyntax},
		{"(1+2", ErrSyntax},
		{"1+2)", ErrSyntax},
		{"1..2", ErrSyntax},
		{"2π", ErrSyntax},
		{"p", ErrSyntax},
		{"ii", ErrSyntax},
		{"()", ErrSyntax},
		{strings.Repeat("1+", MaxLength) + "1", ErrTooLong},
		{strings.Repeat("(", 100) + "1" + strings.Repeat(")", 100), ErrTooDeep},
		{strings.Repeat("-", 200) + "1", ErrTooDeep},
	}
	for _, tc := range cases {
		if _, err := Eval(tc.in); !errors.Is(err, tc.want) {
			t.Fatalf("Eval(%q) error = %v, want %v", tc.in, err, tc.want)
		}
	}
}

func TestNormalize(t *testing.T) {
	if got := Normalize(" 2 ** X × 3 ÷ 1 "); got != "2^x*3/1" {
		t.Fatalf("Normalize returned %q", got)
	}
}
