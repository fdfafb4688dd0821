package service

import (
	"errors"
	"testing"
	"time"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{in: "00:00", want: 0},
		{in: "08:00", want: 480},
		{in: "23:59", want: 1439},
		{in: "24:00", wantErr: true},
		{in: "08:60", wantErr: true},
		{in: "9:00", wantErr: true},
		{in: "banana", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tc := range tests {
		got, err := ParseClock(tc.in)
		if tc.wantErr {
			if !errors.Is(err, ErrInvalidScheduleInput) {
				t.Fatalf("%q: expected ErrInvalidScheduleInput, got %v", tc.in, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("%q: unexpected error %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("%q: expected %d minutes, got %d", tc.in, tc.want, got)
		}
	}
}

func TestNormalizeClockShapes(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{name: "hh:mm is a no-op", in: "09:30", want: "09:30"},
		{name: "hh:mm:ss trimmed", in: "09:30:00", want: "09:30"},
		{name: "duration", in: 9*time.Hour + 30*time.Minute, want: "09:30"},
		{name: "time.Time", in: time.Date(2024, 9, 2, 13, 45, 0, 0, time.UTC), want: "13:45"},
		{name: "integer hours", in: 9, want: "09:00"},
		{name: "fractional hours", in: 9.5, want: "09:30"},
		{name: "nil falls back", in: nil, want: "08:00"},
		{name: "garbage string falls back", in: "banana", want: "08:00"},
		{name: "unknown shape falls back", in: struct{}{}, want: "08:00"},
		{name: "negative duration falls back", in: -time.Hour, want: "08:00"},
		{name: "out of range hours fall back", in: 25, want: "08:00"},
	}
	for _, tc := range tests {
		if got := NormalizeClock(tc.in); got != tc.want {
			t.Fatalf("%s: expected %q, got %q", tc.name, tc.want, got)
		}
	}
}

func TestNormalizeClockIsStable(t *testing.T) {
	// re-normalizing an already normalized value must not change it
	for _, v := range []any{"07:15", 8, 9.25, 10 * time.Hour} {
		once := NormalizeClock(v)
		if twice := NormalizeClock(once); twice != once {
			t.Fatalf("normalize not stable: %q -> %q", once, twice)
		}
	}
}

func TestFormatClock(t *testing.T) {
	if got := FormatClock(480); got != "08:00" {
		t.Fatalf("expected 08:00, got %q", got)
	}
	if got := FormatClock(1439); got != "23:59" {
		t.Fatalf("expected 23:59, got %q", got)
	}
}
