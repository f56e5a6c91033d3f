package relativedate_test

import (
	"errors"
	"testing"
	"time"

	"github.com/tbekov/scheduling-assistant/internal/relativedate"
	"github.com/tbekov/scheduling-assistant/internal/timezone"
)

func mustZone(t *testing.T, raw string) timezone.FixedOffsetZone {
	t.Helper()
	z, err := timezone.Normalize(raw)
	if err != nil {
		t.Fatalf("Normalize(%q): %v", raw, err)
	}
	return z
}

func intPtr(n int) *int { return &n }

func resolveAt(t *testing.T, phrase string, zone timezone.FixedOffsetZone, hour int, ref time.Time) relativedate.ResolvedInstant {
	t.Helper()
	got, err := relativedate.Resolve(phrase, zone, intPtr(hour), &ref)
	if err != nil {
		t.Fatalf("Resolve(%q): %v", phrase, err)
	}
	return got
}

func wantDay(t *testing.T, got relativedate.ResolvedInstant, year int, month time.Month, day, hour int) {
	t.Helper()
	y, m, d := got.Time.Date()
	if y != year || m != month || d != day {
		t.Errorf("resolved to %04d-%02d-%02d, want %04d-%02d-%02d", y, m, d, year, month, day)
	}
	if got.Time.Hour() != hour {
		t.Errorf("hour = %d, want %d", got.Time.Hour(), hour)
	}
	if got.Time.Minute() != 0 || got.Time.Second() != 0 || got.Time.Nanosecond() != 0 {
		t.Errorf("minutes and below must be zero, got %v", got.Time)
	}
}

func TestResolve_Tomorrow(t *testing.T) {
	zone := mustZone(t, "GMT+5")
	ref := time.Date(2024, time.March, 14, 16, 45, 12, 0, zone.Location())

	got := resolveAt(t, "tomorrow", zone, 9, ref)
	wantDay(t, got, 2024, time.March, 15, 9)

	_, offset := got.Time.Zone()
	if offset != 5*3600 {
		t.Errorf("result offset = %d, want %d", offset, 5*3600)
	}
}

func TestResolve_NextWeek(t *testing.T) {
	zone := mustZone(t, "GMT+0")
	ref := time.Date(2024, time.March, 14, 10, 0, 0, 0, zone.Location())

	got := resolveAt(t, "next week", zone, 14, ref)
	wantDay(t, got, 2024, time.March, 21, 14)
}

func TestResolve_NextMonth_ClampsDay(t *testing.T) {
	zone := mustZone(t, "GMT+0")

	// Jan 31 → Feb 29 in a leap year.
	ref := time.Date(2024, time.January, 31, 8, 0, 0, 0, zone.Location())
	got := resolveAt(t, "next month", zone, 9, ref)
	wantDay(t, got, 2024, time.February, 29, 9)

	// Jan 31 → Feb 28 otherwise.
	ref = time.Date(2023, time.January, 31, 8, 0, 0, 0, zone.Location())
	got = resolveAt(t, "next month", zone, 9, ref)
	wantDay(t, got, 2023, time.February, 28, 9)

	// Plain case, no clamping.
	ref = time.Date(2024, time.March, 14, 8, 0, 0, 0, zone.Location())
	got = resolveAt(t, "next month", zone, 9, ref)
	wantDay(t, got, 2024, time.April, 14, 9)
}

func TestResolve_NextWeekday(t *testing.T) {
	zone := mustZone(t, "GMT-3")
	// 2024-03-14 is a Thursday.
	ref := time.Date(2024, time.March, 14, 12, 0, 0, 0, zone.Location())

	got := resolveAt(t, "next monday", zone, 10, ref)
	wantDay(t, got, 2024, time.March, 18, 10)
	if got.Time.Weekday() != time.Monday {
		t.Errorf("weekday = %v, want Monday", got.Time.Weekday())
	}

	got = resolveAt(t, "next friday", zone, 10, ref)
	wantDay(t, got, 2024, time.March, 15, 10)
}

func TestResolve_NextWeekday_SameDayGoesOneWeekOut(t *testing.T) {
	zone := mustZone(t, "GMT+0")
	// 2024-03-18 is a Monday; "next monday" must never resolve to today.
	ref := time.Date(2024, time.March, 18, 9, 0, 0, 0, zone.Location())

	got := resolveAt(t, "next Monday", zone, 10, ref)
	wantDay(t, got, 2024, time.March, 25, 10)
}

func TestResolve_NextExplicitDate(t *testing.T) {
	zone := mustZone(t, "GMT+0")
	ref := time.Date(2024, time.March, 14, 9, 0, 0, 0, zone.Location())

	// Far enough out: this year's occurrence. 04/01 is American MM/DD.
	got := resolveAt(t, "next 04/01", zone, 9, ref)
	wantDay(t, got, 2024, time.April, 1, 9)

	// Month-name form.
	got = resolveAt(t, "next april 1", zone, 9, ref)
	wantDay(t, got, 2024, time.April, 1, 9)
}

func TestResolve_NextExplicitDate_TooCloseRollsToNextYear(t *testing.T) {
	zone := mustZone(t, "GMT+0")

	// Dec 25 is five days after the reference: under the 7-day threshold.
	ref := time.Date(2024, time.December, 20, 0, 0, 0, 0, zone.Location())
	got := resolveAt(t, "next 12/25", zone, 9, ref)
	wantDay(t, got, 2025, time.December, 25, 9)

	// Already past: also next year.
	ref = time.Date(2024, time.December, 26, 0, 0, 0, 0, zone.Location())
	got = resolveAt(t, "next 12/25", zone, 9, ref)
	wantDay(t, got, 2025, time.December, 25, 9)

	// Exactly 7 days out stays this year.
	ref = time.Date(2024, time.December, 18, 0, 0, 0, 0, zone.Location())
	got = resolveAt(t, "next 12/25", zone, 9, ref)
	wantDay(t, got, 2024, time.December, 25, 9)
}

func TestResolve_MissingHour(t *testing.T) {
	zone := mustZone(t, "GMT+5")
	ref := time.Date(2024, time.March, 14, 9, 0, 0, 0, zone.Location())

	for _, phrase := range []string{"tomorrow", "next week", "next monday", "next 04/01", "2024-06-01", "garbage"} {
		_, err := relativedate.Resolve(phrase, zone, nil, &ref)
		if !errors.Is(err, relativedate.ErrMissingHour) {
			t.Errorf("Resolve(%q, hour=nil) error = %v, want ErrMissingHour", phrase, err)
		}
	}
}

func TestResolve_HourOutOfRange(t *testing.T) {
	zone := mustZone(t, "GMT+0")
	ref := time.Date(2024, time.March, 14, 9, 0, 0, 0, zone.Location())

	for _, h := range []int{-1, 24, 99} {
		_, err := relativedate.Resolve("tomorrow", zone, intPtr(h), &ref)
		if !errors.Is(err, relativedate.ErrHourOutOfRange) {
			t.Errorf("Resolve(hour=%d) error = %v, want ErrHourOutOfRange", h, err)
		}
	}
}

func TestResolve_UnknownWeekday(t *testing.T) {
	zone := mustZone(t, "GMT+0")
	ref := time.Date(2024, time.March, 14, 9, 0, 0, 0, zone.Location())

	_, err := relativedate.Resolve("next froday", zone, intPtr(9), &ref)
	if !errors.Is(err, relativedate.ErrUnknownWeekday) {
		t.Errorf("error = %v, want ErrUnknownWeekday", err)
	}
}

func TestResolve_Unparseable(t *testing.T) {
	zone := mustZone(t, "GMT+0")
	ref := time.Date(2024, time.March, 14, 9, 0, 0, 0, zone.Location())

	_, err := relativedate.Resolve("whenever works", zone, intPtr(9), &ref)
	if !errors.Is(err, relativedate.ErrUnparseableDate) {
		t.Errorf("error = %v, want ErrUnparseableDate", err)
	}

	_, err = relativedate.Resolve("next 99/99", zone, intPtr(9), &ref)
	if !errors.Is(err, relativedate.ErrUnparseableDate) {
		t.Errorf("error = %v, want ErrUnparseableDate", err)
	}
}

func TestResolve_ForPrefixAndCase(t *testing.T) {
	zone := mustZone(t, "GMT+0")
	ref := time.Date(2024, time.March, 14, 9, 0, 0, 0, zone.Location())

	got := resolveAt(t, "  For Tomorrow ", zone, 9, ref)
	wantDay(t, got, 2024, time.March, 15, 9)
}

func TestResolve_FreeformDate(t *testing.T) {
	zone := mustZone(t, "GMT+2")
	ref := time.Date(2024, time.March, 14, 9, 0, 0, 0, zone.Location())

	got := resolveAt(t, "2024-06-01", zone, 15, ref)
	wantDay(t, got, 2024, time.June, 1, 15)

	// Year-less freeform adopts the reference year.
	got = resolveAt(t, "june 1", zone, 15, ref)
	wantDay(t, got, 2024, time.June, 1, 15)

	// A time component in the phrase is discarded in favor of hour.
	got = resolveAt(t, "2024-06-01 18:30", zone, 15, ref)
	wantDay(t, got, 2024, time.June, 1, 15)
}

func TestResolve_ReferenceProjectedIntoZone(t *testing.T) {
	zone := mustZone(t, "GMT+5")
	// 23:00 UTC on March 14 is already March 15 in GMT+5; "tomorrow" is
	// relative to the zone's calendar, so it lands on March 16.
	ref := time.Date(2024, time.March, 14, 23, 0, 0, 0, time.UTC)

	got := resolveAt(t, "tomorrow", zone, 9, ref)
	wantDay(t, got, 2024, time.March, 16, 9)
}
