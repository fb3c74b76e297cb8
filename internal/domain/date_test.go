package domain

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-03-10")
	if err != nil {
		t.Fatalf("ParseDate error: %v", err)
	}
	if d != (Date{Year: 2025, Month: time.March, Day: 10}) {
		t.Fatalf("date = %+v", d)
	}
	if d.String() != "2025-03-10" {
		t.Fatalf("String = %q, want %q", d.String(), "2025-03-10")
	}

	if _, err := ParseDate("2025-3-10"); err == nil {
		t.Fatalf("expected error for non-padded date")
	}
	if _, err := ParseDate("2025-02-30"); err == nil {
		t.Fatalf("expected error for out of range day")
	}
}

func TestDateWindow_Boundaries(t *testing.T) {
	d := Date{Year: 2025, Month: time.March, Day: 10}
	start, end := d.Window(time.UTC)

	if !start.Equal(time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("start = %v", start)
	}
	lastInstant := time.Date(2025, 3, 10, 23, 59, 59, 999999999, time.UTC)
	if !end.Equal(lastInstant) {
		t.Fatalf("end = %v, want %v", end, lastInstant)
	}

	nextMidnight := time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)
	if !end.Before(nextMidnight) {
		t.Fatalf("end %v must be before next midnight %v", end, nextMidnight)
	}

	// Postgres keeps microseconds; the truncated last instant still falls in the window.
	stored := lastInstant.Truncate(time.Microsecond)
	if stored.Before(start) || stored.After(end) {
		t.Fatalf("microsecond-truncated last instant %v outside window", stored)
	}
}

func TestDateWindow_DSTDayInLocation(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("LoadLocation error: %v", err)
	}

	d := Date{Year: 2025, Month: time.March, Day: 9}
	start, end := d.Window(loc)

	if got := end.Sub(start); got != 23*time.Hour-time.Nanosecond {
		t.Fatalf("window length = %v, want 23h minus 1ns", got)
	}
}

func TestDateWindow_NilLocationIsUTC(t *testing.T) {
	start, _ := Date{Year: 2026, Month: time.January, Day: 1}.Window(nil)
	if start.Location() != time.UTC {
		t.Fatalf("location = %v, want UTC", start.Location())
	}
}

func TestDateOf_UsesTimeLocation(t *testing.T) {
	loc := time.FixedZone("plus14", 14*60*60)
	ts := time.Date(2026, 1, 1, 0, 30, 0, 0, loc)

	if got := DateOf(ts); got != (Date{Year: 2026, Month: time.January, Day: 1}) {
		t.Fatalf("DateOf = %+v", got)
	}
	if got := DateOf(ts.UTC()); got != (Date{Year: 2025, Month: time.December, Day: 31}) {
		t.Fatalf("DateOf(UTC) = %+v", got)
	}
}
