package types

import (
	"errors"
	"testing"
	"time"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("09:30")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ts.String() != "09:30" {
		t.Fatalf("got %q, want 09:30", ts)
	}

	for _, bad := range []string{"9:30", "25:00", "10:60", "abc", ""} {
		if _, err := NewTimeStringFromString(bad); !errors.Is(err, ErrInvalidTimeString) {
			t.Fatalf("NewTimeStringFromString(%q): expected ErrInvalidTimeString, got %v", bad, err)
		}
	}
}

func TestAddMinutes(t *testing.T) {
	ts := MustTimeString("10:00")

	next, err := ts.AddMinutes(30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if next.String() != "10:30" {
		t.Fatalf("got %q, want 10:30", next)
	}

	crossed, err := MustTimeString("10:45").AddMinutes(30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if crossed.String() != "11:15" {
		t.Fatalf("got %q, want 11:15", crossed)
	}

	if _, err := MustTimeString("23:45").AddMinutes(30); !errors.Is(err, ErrTimeOutOfRange) {
		t.Fatalf("expected ErrTimeOutOfRange, got %v", err)
	}
}

func TestIsBeforeIsAfter(t *testing.T) {
	a := MustTimeString("09:00")
	b := MustTimeString("18:30")

	if !a.IsBefore(b) {
		t.Fatal("09:00 must be before 18:30")
	}
	if !b.IsAfter(a) {
		t.Fatal("18:30 must be after 09:00")
	}
	if a.IsBefore(a) || a.IsAfter(a) {
		t.Fatal("time must not compare before/after itself")
	}
}

func TestOnDate(t *testing.T) {
	date := time.Date(2026, time.March, 16, 0, 0, 0, 0, time.UTC)

	got, err := MustTimeString("14:30").OnDate(date)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := time.Date(2026, time.March, 16, 14, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestScan(t *testing.T) {
	var ts TimeString

	if err := ts.Scan("10:30:00"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ts.String() != "10:30" {
		t.Fatalf("got %q, want 10:30 (seconds truncated)", ts)
	}

	if err := ts.Scan([]byte("08:15")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ts.String() != "08:15" {
		t.Fatalf("got %q, want 08:15", ts)
	}

	if err := ts.Scan(nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ts.IsZero() {
		t.Fatal("nil must scan into zero value")
	}

	if err := ts.Scan(42); err == nil {
		t.Fatal("expected error for unsupported type")
	}
}

func TestValue(t *testing.T) {
	v, err := MustTimeString("10:00").Value()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != "10:00" {
		t.Fatalf("got %v, want 10:00", v)
	}

	nilV, err := TimeString("").Value()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if nilV != nil {
		t.Fatal("zero value must serialize as NULL")
	}
}
