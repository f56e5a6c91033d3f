// Package relativedate resolves human scheduling phrases ("tomorrow",
// "next Monday", "next 04/01") into absolute zone-aware timestamps.
//
// Resolution is pure: the only outside read is the clock, and only when the
// caller does not supply a reference instant. Phrases are classified by an
// ordered rule list; the first matching rule wins, and anything unmatched
// falls through to lenient layout parsing.
package relativedate

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/tbekov/scheduling-assistant/internal/timezone"
)

var (
	// ErrMissingHour means the caller did not supply the mandatory hour of
	// day. A default meeting time is never assumed.
	ErrMissingHour = errors.New("meeting hour must be explicitly provided in 24-hour format")

	ErrHourOutOfRange  = errors.New("meeting hour must be between 0 and 23")
	ErrUnparseableDate = errors.New("could not parse date")
	ErrUnknownWeekday  = errors.New("unrecognized weekday name")
)

// ResolvedInstant is a resolved calendar day projected onto a fixed-offset
// zone at exactly the requested hour, minutes and below zeroed.
type ResolvedInstant struct {
	Time time.Time
	Zone timezone.FixedOffsetZone
}

var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

// rollThreshold is how far in the future a year-less month/day phrase must
// land before it is taken as this year's occurrence. Anything past or closer
// than this rolls to next year. The threshold is deliberate behavior, not a
// tunable.
const rollThreshold = 7 * 24 * time.Hour

// Resolve classifies phrase against base (ref, or now in zone when nil) and
// returns the resulting day at hour:00:00 in zone. hour is mandatory; nil
// fails with ErrMissingHour before any parsing happens.
func Resolve(phrase string, zone timezone.FixedOffsetZone, hour *int, ref *time.Time) (ResolvedInstant, error) {
	if hour == nil {
		return ResolvedInstant{}, ErrMissingHour
	}
	if *hour < 0 || *hour > 23 {
		return ResolvedInstant{}, fmt.Errorf("%w, got %d", ErrHourOutOfRange, *hour)
	}

	loc := zone.Location()
	base := time.Now().In(loc)
	if ref != nil {
		base = ref.In(loc)
	}

	day, err := classify(normalize(phrase), base, loc)
	if err != nil {
		return ResolvedInstant{}, err
	}

	y, m, d := day.Date()
	return ResolvedInstant{
		Time: time.Date(y, m, d, *hour, 0, 0, 0, loc),
		Zone: zone,
	}, nil
}

// normalize lower-cases, trims, and strips one leading "for " filler.
func normalize(phrase string) string {
	p := strings.ToLower(strings.TrimSpace(phrase))
	return strings.TrimPrefix(p, "for ")
}

// rule is one classification step: matched reports whether the rule claimed
// the phrase, in which case day and err are its verdict.
type rule func(phrase string, base time.Time, loc *time.Location) (day time.Time, matched bool, err error)

var rules = []rule{
	literal("tomorrow", func(base time.Time) time.Time { return base.AddDate(0, 0, 1) }),
	literal("next week", func(base time.Time) time.Time { return base.AddDate(0, 0, 7) }),
	literal("next month", nextMonth),
	nextPrefixed,
}

func classify(phrase string, base time.Time, loc *time.Location) (time.Time, error) {
	for _, r := range rules {
		day, matched, err := r(phrase, base, loc)
		if err != nil {
			return time.Time{}, err
		}
		if matched {
			return day, nil
		}
	}
	return parseLenient(phrase, base, loc)
}

func literal(want string, advance func(time.Time) time.Time) rule {
	return func(phrase string, base time.Time, _ *time.Location) (time.Time, bool, error) {
		if phrase != want {
			return time.Time{}, false, nil
		}
		return advance(base), true, nil
	}
}

// nextMonth advances one calendar month, clamping the day of month to the
// target month's length: Jan 31 → Feb 28 (or 29).
func nextMonth(base time.Time) time.Time {
	y, m, d := base.Date()
	if last := daysIn(m+1, y, base.Location()); d > last {
		d = last
	}
	return time.Date(y, m+1, d, 0, 0, 0, 0, base.Location())
}

func daysIn(m time.Month, year int, loc *time.Location) int {
	// Day 0 of the following month is the last day of m.
	return time.Date(year, m+1, 0, 0, 0, 0, 0, loc).Day()
}

// nextPrefixed handles "next <weekday>" and "next <month/day>".
func nextPrefixed(phrase string, base time.Time, loc *time.Location) (time.Time, bool, error) {
	rest, ok := strings.CutPrefix(phrase, "next ")
	if !ok {
		return time.Time{}, false, nil
	}

	if wd, ok := weekdays[rest]; ok {
		return nextWeekday(base, wd), true, nil
	}

	if m, d, ok := parseMonthDay(rest); ok {
		return nextOccurrence(base, m, d, loc), true, nil
	}

	if isWeekdayShaped(rest) {
		return time.Time{}, true, fmt.Errorf("%w: %q", ErrUnknownWeekday, rest)
	}
	return time.Time{}, true, fmt.Errorf("%w: %q", ErrUnparseableDate, rest)
}

// nextWeekday returns the next occurrence of wd strictly after base: when
// base already falls on wd the answer is seven days out, never the same day.
func nextWeekday(base time.Time, wd time.Weekday) time.Time {
	days := (int(wd) - int(base.Weekday()) + 7) % 7
	if days == 0 {
		days = 7
	}
	return base.AddDate(0, 0, days)
}

var monthDayLayouts = []string{
	"1/2",       // 04/01, 4/1 — month first
	"January 2", // april 1
	"Jan 2",     // apr 1
	"2 January",
}

func parseMonthDay(s string) (time.Month, int, bool) {
	for _, layout := range monthDayLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Month(), t.Day(), true
		}
	}
	return 0, 0, false
}

// nextOccurrence maps a year-less month/day onto this year, rolling to next
// year when this year's date is already past or lands under rollThreshold
// away. A same-week "next 12/25" almost certainly does not mean the day
// after tomorrow.
func nextOccurrence(base time.Time, m time.Month, d int, loc *time.Location) time.Time {
	target := time.Date(base.Year(), m, d, 0, 0, 0, 0, loc)
	if target.Before(base) || target.Sub(base) < rollThreshold {
		target = time.Date(base.Year()+1, m, d, 0, 0, 0, 0, loc)
	}
	return target
}

func isWeekdayShaped(s string) bool {
	if s == "" || strings.ContainsRune(s, ' ') {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

var lenientLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04",
	"2006-01-02t15:04:05",
	"01/02/2006",
	"1/2/2006",
	"January 2, 2006",
	"Jan 2, 2006",
	"January 2 2006",
	"2 January 2006",
	"January 2",
	"Jan 2",
	"1/2",
}

// parseLenient is the catch-all for phrases that matched no rule. Layouts
// without a year adopt the reference year.
func parseLenient(phrase string, base time.Time, loc *time.Location) (time.Time, error) {
	for _, layout := range lenientLayouts {
		t, err := time.ParseInLocation(layout, phrase, loc)
		if err != nil {
			continue
		}
		if t.Year() == 0 {
			t = time.Date(base.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
		}
		return t, nil
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrUnparseableDate, phrase)
}
