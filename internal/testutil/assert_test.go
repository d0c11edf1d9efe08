package testutil

import (
	"errors"
	"fmt"
	"testing"
)

// Assertion failures cannot be observed without mocking *testing.T, so
// these tests cover the passing paths and the message formatting.

func TestAssertEqual_Success(t *testing.T) {
	AssertEqual(t, "TH", "TH")
	AssertEqual(t, 52, 52)
	AssertEqual(t, []int{41, 18467, 6334}, []int{41, 18467, 6334})
	AssertEqual(t, nil, nil)
	AssertEqual(t, 69, 69, "move counter after game %d", 10913)
}

func TestAssertEqual_NilAndEmptySlices(t *testing.T) {
	var cascade []uint8
	AssertEqual(t, cascade, []uint8{})
	AssertEqual(t, [][]uint8{nil, {1}}, [][]uint8{{}, {1}})
}

func TestAssertError_Success(t *testing.T) {
	AssertNoError(t, nil)
	AssertNoError(t, nil, "move %s should apply", "26")
	AssertError(t, errors.New("illegal move"))
	AssertError(t, errors.New("illegal move"), "expected error from %s", "72")
}

func TestAssertErrorIs_Success(t *testing.T) {
	sentinel := errors.New("empty source")
	wrapped := fmt.Errorf("a: %w", sentinel)
	AssertErrorIs(t, sentinel, sentinel)
	AssertErrorIs(t, wrapped, sentinel, "wrapped once")
	AssertErrorIs(t, fmt.Errorf("move 3: %w", wrapped), sentinel)
}

func TestAssertContains_Success(t *testing.T) {
	AssertContains(t, "-- -- | AH --", "AH")
	AssertContains(t, "test", "")
	AssertNotContains(t, "-- -- | AH --", "KS")
}

func TestAssertBool_Success(t *testing.T) {
	AssertTrue(t, true)
	AssertTrue(t, len("KH") == 2)
	AssertFalse(t, false)
	AssertFalse(t, len("KH") == 0)
}

func TestAssertNil_Success(t *testing.T) {
	var p *int
	var m map[string]int
	AssertNil(t, p)
	AssertNil(t, m)
	AssertNil(t, nil)

	x := 42
	AssertNotNil(t, &x)
	AssertNotNil(t, "hello")
	AssertNotNil(t, []int{1, 2, 3})
}

func TestIsNil(t *testing.T) {
	var p *int
	var f func()
	tests := []struct {
		name string
		v    any
		want bool
	}{
		{"untyped nil", nil, true},
		{"typed nil pointer", p, true},
		{"nil func", f, true},
		{"zero int", 0, false},
		{"empty string", "", false},
		{"empty slice", []int{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isNil(tt.v); got != tt.want {
				t.Errorf("isNil(%v) = %v, want %v", tt.v, got, tt.want)
			}
		})
	}
}

func TestFormatMessage(t *testing.T) {
	tests := []struct {
		name string
		args []any
		want string
	}{
		{"no args", nil, ""},
		{"empty args", []any{}, ""},
		{"single string", []any{"hello"}, "hello"},
		{"single int", []any{42}, "42"},
		{"format string", []any{"seed %d", 617}, "seed 617"},
		{"format multiple", []any{"%s %d %s", "move", 3, "72"}, "move 3 72"},
		{"non-string format", []any{42, "ignored"}, "42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatMessage(tt.args...)
			if got != tt.want {
				t.Errorf("formatMessage(%v) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}
