package service

import (
	"errors"
	"reflect"
	"testing"
)

func TestFormatWeeksRoundTrip(t *testing.T) {
	canonical := []string{
		"1-16",
		"1,3,5-7",
		"2",
		"1-2,4",
		"3-5,9-12,14",
	}
	for _, text := range canonical {
		ws, err := ParseWeeks(text)
		if err != nil {
			t.Fatalf("parse %q: %v", text, err)
		}
		if got := FormatWeeks(ws); got != text {
			t.Fatalf("round trip %q: got %q", text, got)
		}
	}
}

func TestParseWeeksSwapsInvertedRange(t *testing.T) {
	a, err := ParseWeeks("5-3")
	if err != nil {
		t.Fatalf("parse 5-3: %v", err)
	}
	b, err := ParseWeeks("3-5")
	if err != nil {
		t.Fatalf("parse 3-5: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("expected 5-3 and 3-5 to parse identically: %v vs %v", a.Weeks(), b.Weeks())
	}
}

func TestParseWeeksClampsOversizedRange(t *testing.T) {
	ws, err := ParseWeeks("1-100")
	if err != nil {
		t.Fatalf("parse 1-100: %v", err)
	}
	if len(ws) != 31 {
		t.Fatalf("expected 31 weeks, got %d", len(ws))
	}
	if !ws.Contains(1) || !ws.Contains(31) || ws.Contains(32) {
		t.Fatalf("expected exactly weeks 1..31, got %v", ws.Weeks())
	}
}

func TestParseWeeksLenientFallsBackToDefaultTerm(t *testing.T) {
	for _, text := range []string{"", "xyz", ",,"} {
		ws := ParseWeeksLenient(text)
		if len(ws) != 16 || !ws.Contains(1) || !ws.Contains(16) || ws.Contains(17) {
			t.Fatalf("lenient %q: expected weeks 1..16, got %v", text, ws.Weeks())
		}
	}
}

func TestParseWeeksLenientSkipsMalformedTokens(t *testing.T) {
	ws := ParseWeeksLenient("1,xyz,4-5")
	if got := FormatWeeks(ws); got != "1,4-5" {
		t.Fatalf("expected 1,4-5, got %q", got)
	}
}

func TestParseWeeksStrictRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "empty", text: ""},
		{name: "garbage", text: "xyz"},
		{name: "partial garbage", text: "1,abc"},
		{name: "zero week", text: "0"},
		{name: "negative range", text: "0-4"},
	}
	for _, tc := range tests {
		if _, err := ParseWeeks(tc.text); !errors.Is(err, ErrInvalidScheduleInput) {
			t.Fatalf("%s: expected ErrInvalidScheduleInput for %q, got %v", tc.name, tc.text, err)
		}
	}
}

func TestWeeksFromIntsDropsNonPositive(t *testing.T) {
	ws := WeeksFromInts([]int{3, 0, -2, 5, 4})
	if got := FormatWeeks(ws); got != "3-5" {
		t.Fatalf("expected 3-5, got %q", got)
	}
}

func TestNormalizeWeeksCanonicalizes(t *testing.T) {
	if got := NormalizeWeeks("7,5,6"); got != "5-7" {
		t.Fatalf("expected 5-7, got %q", got)
	}
	if got := NormalizeWeeks("1-3,2-4"); got != "1-4" {
		t.Fatalf("expected overlapping ranges merged to 1-4, got %q", got)
	}
}

func TestWeekSetIntersects(t *testing.T) {
	a := ParseWeeksLenient("1-8")
	b := ParseWeeksLenient("9-16")
	if a.Intersects(b) {
		t.Fatalf("1-8 and 9-16 must be disjoint")
	}
	c := ParseWeeksLenient("8-9")
	if !a.Intersects(c) || !b.Intersects(c) {
		t.Fatalf("8-9 must intersect both halves of the term")
	}
}
