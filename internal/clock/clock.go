// Package clock converts wall-clock "HH:MM" strings to minutes since midnight
// and back. It is the only primitive the rest of rotina uses to compare times.
package clock

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// MinutesPerDay is the length of a day in minutes.
const MinutesPerDay = 24 * 60

// Day boundaries as used by the schedule builder.
const (
	StartOfDay = "00:00"
	EndOfDay   = "23:59"
	Noon       = 12 * 60
)

// Errors returned by the conversion functions.
var (
	ErrMalformedTime = errors.New("time must be in HH:MM format (00:00-23:59)")
	ErrOutOfRange    = errors.New("minutes must be within 0-1439")
)

// ToMinutes converts a zero-padded "HH:MM" string to minutes since midnight.
func ToMinutes(hhmm string) (int, error) {
	parts := strings.Split(hhmm, ":")
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrMalformedTime, hhmm)
	}
	hours, err := parseDigits(parts[0])
	if err != nil || hours > 23 {
		return 0, fmt.Errorf("%w: %q", ErrMalformedTime, hhmm)
	}
	mins, err := parseDigits(parts[1])
	if err != nil || mins > 59 {
		return 0, fmt.Errorf("%w: %q", ErrMalformedTime, hhmm)
	}
	return hours*60 + mins, nil
}

// parseDigits rejects signs and spaces that strconv.Atoi would accept.
func parseDigits(s string) (int, error) {
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, strconv.ErrSyntax
		}
	}
	return strconv.Atoi(s)
}

// ToHHMM converts minutes since midnight to "HH:MM".
// Callers normalize wraparound before formatting.
func ToHHMM(m int) (string, error) {
	if m < 0 || m >= MinutesPerDay {
		return "", fmt.Errorf("%w: %d", ErrOutOfRange, m)
	}
	return fmt.Sprintf("%02d:%02d", m/60, m%60), nil
}

// Valid reports whether s is a well-formed "HH:MM" string.
func Valid(s string) bool {
	_, err := ToMinutes(s)
	return err == nil
}

// Span converts a start/end pair to minutes. An end before the start is
// treated as wrapping past midnight and gets MinutesPerDay added.
func Span(start, end string) (s, e int, err error) {
	s, err = ToMinutes(start)
	if err != nil {
		return 0, 0, err
	}
	e, err = ToMinutes(end)
	if err != nil {
		return 0, 0, err
	}
	if e < s {
		e += MinutesPerDay
	}
	return s, e, nil
}

// Overlaps is the half-open interval test [s1,e1) vs [s2,e2).
// Touching endpoints do not overlap; identical ranges do.
func Overlaps(s1, e1, s2, e2 int) bool {
	return s1 < e2 && e1 > s2
}

// OverlapMinutes calculates the overlapping minutes between two time ranges.
// Returns 0 if there is no overlap or either range is malformed.
func OverlapMinutes(start1, end1, start2, end2 string) int {
	s1, e1, err := Span(start1, end1)
	if err != nil {
		return 0
	}
	s2, e2, err := Span(start2, end2)
	if err != nil {
		return 0
	}

	overlapStart := max(s1, s2)
	overlapEnd := min(e1, e2)

	if overlapEnd <= overlapStart {
		return 0
	}
	return overlapEnd - overlapStart
}

// FormatDuration renders a minute count as "45min", "2h" or "3h 20min".
func FormatDuration(m int) string {
	if m < 0 {
		m = 0
	}
	h, rest := m/60, m%60
	switch {
	case h == 0:
		return fmt.Sprintf("%dmin", rest)
	case rest == 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dh %dmin", h, rest)
	}
}
