package timeutil

import (
	"testing"
	"time"
)

func TestParseAndFormatDate(t *testing.T) {
	parsed, err := ParseDate("2024-03-09")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := FormatDate(parsed); got != "2024-03-09" {
		t.Fatalf("expected round trip, got %s", got)
	}
}

func TestParseCalendarDate(t *testing.T) {
	d, err := ParseCalendarDate("2025-12-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Year != 2025 || d.Month != time.December || d.Day != 1 {
		t.Fatalf("unexpected date %+v", d)
	}
	if d.String() != "2025-12-01" {
		t.Fatalf("expected 2025-12-01, got %s", d.String())
	}
	if _, err := ParseCalendarDate("12/01/2025"); err == nil {
		t.Fatal("expected error for invalid layout")
	}
}

func TestTodayUsesLocation(t *testing.T) {
	// 03:00 UTC is still the previous day in New York.
	now := time.Date(2024, 7, 5, 3, 0, 0, 0, time.UTC)
	ny, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	if got := Today(now, ny); got.String() != "2024-07-04" {
		t.Fatalf("expected 2024-07-04 in New York, got %s", got)
	}
	if got := Today(now, nil); got.String() != "2024-07-05" {
		t.Fatalf("expected 2024-07-05 in UTC, got %s", got)
	}
}

func TestDateIsZero(t *testing.T) {
	if !(Date{}).IsZero() {
		t.Fatal("expected zero date")
	}
	if DateOf(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)).IsZero() {
		t.Fatal("expected non-zero date")
	}
}
