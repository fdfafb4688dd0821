package service

import (
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"
)

// Fallback used on the read path when a stored time value is unusable.
const fallbackClock = "08:00"

const minutesPerDay = 24 * 60

// ParseClock is the strict "HH:MM" parser for user-supplied times. Returns
// the minute of day in [0,1440).
func ParseClock(s string) (int, error) {
	s = strings.TrimSpace(s)
	if len(s) != 5 || s[2] != ':' {
		return 0, invalidInput("time", fmt.Sprintf("%q is not HH:MM", s))
	}
	hour, err := strconv.Atoi(s[:2])
	if err != nil {
		return 0, invalidInput("time", fmt.Sprintf("%q is not HH:MM", s))
	}
	minute, err := strconv.Atoi(s[3:])
	if err != nil {
		return 0, invalidInput("time", fmt.Sprintf("%q is not HH:MM", s))
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, invalidInput("time", fmt.Sprintf("%q is out of range", s))
	}
	return hour*60 + minute, nil
}

// FormatClock renders a minute of day as "HH:MM".
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// NormalizeClock coerces a time value of unknown origin shape to "HH:MM".
// Recognized shapes: "HH:MM" (no-op), "HH:MM:SS", time.Time, time.Duration,
// integer hour counts, fractional-hour floats. Anything else yields the
// 08:00 fallback; read-path only, the write path uses ParseClock.
func NormalizeClock(raw any) string {
	switch v := raw.(type) {
	case nil:
		return fallbackClock

	case string:
		s := strings.TrimSpace(v)
		if _, err := ParseClock(s); err == nil {
			return s
		}
		// "HH:MM:SS" from a TIME column
		if t, err := time.Parse("15:04:05", s); err == nil {
			return t.Format("15:04")
		}
		log.Printf("[WARN] clock: unusable time %q, substituting %s", v, fallbackClock)
		return fallbackClock

	case time.Time:
		return v.Format("15:04")

	case time.Duration:
		total := int(v.Seconds())
		if total < 0 {
			log.Printf("[WARN] clock: negative duration %s, substituting %s", v, fallbackClock)
			return fallbackClock
		}
		minutes := (total / 60) % minutesPerDay
		return FormatClock(minutes)

	case int:
		return clockFromHours(float64(v))
	case int64:
		return clockFromHours(float64(v))
	case float32:
		return clockFromHours(float64(v))
	case float64:
		return clockFromHours(v)

	default:
		log.Printf("[WARN] clock: unrecognized time shape %T, substituting %s", raw, fallbackClock)
		return fallbackClock
	}
}

func clockFromHours(hours float64) string {
	h := int(hours)
	m := int((hours - float64(h)) * 60)
	if h < 0 || h > 23 || m < 0 {
		log.Printf("[WARN] clock: hour value %v out of range, substituting %s", hours, fallbackClock)
		return fallbackClock
	}
	return fmt.Sprintf("%02d:%02d", h, m)
}
