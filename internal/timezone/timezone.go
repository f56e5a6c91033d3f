// Package timezone validates fixed-offset "GMT±N" designations and converts
// them to the Etc/GMT form used by the tz database. Only whole-hour offsets
// between 0 and 12 are supported; arbitrary IANA zone names are not.
package timezone

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	ErrInvalidFormat    = errors.New("timezone must be provided in GMT±N format")
	ErrMissingPrefix    = errors.New("timezone must start with GMT")
	ErrMissingSign      = errors.New("timezone must include + or - after GMT")
	ErrOffsetOutOfRange = errors.New("timezone offset must be between 0 and 12")
)

// FixedOffsetZone is a validated whole-hour UTC offset. The sign is stored
// as the user typed it: GMT+5 means five hours ahead of UTC. The tz database
// Etc/GMT names use the opposite sign, which Name flips for you.
type FixedOffsetZone struct {
	sign  int // +1 or -1
	hours int // 0..12
}

// Normalize parses a "GMT±N" string into a FixedOffsetZone.
//
// Validation happens in order: empty input, missing GMT prefix, missing sign,
// unparseable or out-of-range magnitude. Decimal magnitudes ("GMT+5.5") are
// accepted and truncated toward zero.
func Normalize(raw string) (FixedOffsetZone, error) {
	if raw == "" {
		return FixedOffsetZone{}, fmt.Errorf("%w (e.g. 'GMT+5', 'GMT-3')", ErrInvalidFormat)
	}

	s := strings.ToUpper(strings.TrimSpace(raw))
	if !strings.HasPrefix(s, "GMT") {
		return FixedOffsetZone{}, fmt.Errorf("%w: %q", ErrMissingPrefix, raw)
	}

	rest := s[len("GMT"):]
	if rest == "" || (rest[0] != '+' && rest[0] != '-') {
		return FixedOffsetZone{}, fmt.Errorf("%w: %q", ErrMissingSign, raw)
	}

	sign := 1
	if rest[0] == '-' {
		sign = -1
	}

	magnitude, err := strconv.ParseFloat(strings.TrimSpace(rest[1:]), 64)
	if err != nil {
		return FixedOffsetZone{}, fmt.Errorf("%w: %q", ErrInvalidFormat, raw)
	}

	hours := int(magnitude) // truncate toward zero, "5.9" → 5
	if hours < 0 || hours > 12 {
		return FixedOffsetZone{}, fmt.Errorf("%w, got %d", ErrOffsetOutOfRange, hours)
	}

	return FixedOffsetZone{sign: sign, hours: hours}, nil
}

// Hours returns the signed user-facing offset in whole hours.
func (z FixedOffsetZone) Hours() int {
	return z.sign * z.hours
}

// String renders the zone as the user-facing form, e.g. "GMT+5".
func (z FixedOffsetZone) String() string {
	return fmt.Sprintf("GMT%c%d", signRune(z.sign), z.hours)
}

// Name returns the canonical tz database identifier. The sign flips relative
// to the user-facing form: GMT+5 → Etc/GMT-5, GMT-3 → Etc/GMT+3.
func (z FixedOffsetZone) Name() string {
	return fmt.Sprintf("Etc/GMT%c%d", signRune(-z.sign), z.hours)
}

// Location returns a fixed *time.Location carrying the canonical name and
// the user-facing offset. No tzdata lookup is involved.
func (z FixedOffsetZone) Location() *time.Location {
	return time.FixedZone(z.Name(), z.Hours()*3600)
}

func signRune(sign int) rune {
	if sign < 0 {
		return '-'
	}
	return '+'
}
