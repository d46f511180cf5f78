package utils

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	got, err := ParseDate(" 2025-03-15 ")
	if err != nil {
		t.Fatalf("ParseDate error: %v", err)
	}
	want := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("ParseDate = %v, want %v", got, want)
	}

	if _, err := ParseDate("15/03/2025"); err == nil {
		t.Fatalf("expected error for non ISO date")
	}
}

func TestStartAndEndOfDay(t *testing.T) {
	at := time.Date(2025, 3, 15, 13, 45, 30, 12345, time.UTC)

	start := StartOfDay(at)
	if start != time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC) {
		t.Fatalf("StartOfDay = %v", start)
	}

	end := EndOfDay(at)
	if end != time.Date(2025, 3, 15, 23, 59, 59, 999999999, time.UTC) {
		t.Fatalf("EndOfDay = %v", end)
	}

	if !end.Before(start.AddDate(0, 0, 1)) {
		t.Fatalf("EndOfDay must stay inside the same day")
	}
}

func TestFormatDate(t *testing.T) {
	at := time.Date(2025, 3, 5, 9, 0, 0, 0, time.UTC)
	if FormatDate(at) != "2025-03-05" {
		t.Fatalf("FormatDate = %q", FormatDate(at))
	}
}
