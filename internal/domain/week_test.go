package domain

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestWeekWindow_Midweek(t *testing.T) {
	// Среда 18 марта 2026
	start, end := WeekWindow(time.Date(2026, time.March, 18, 14, 30, 0, 0, time.UTC))

	if !start.Equal(date(2026, time.March, 16)) {
		t.Fatalf("week start: got %v, want 2026-03-16", start)
	}
	if !end.Equal(date(2026, time.March, 23)) {
		t.Fatalf("week end: got %v, want 2026-03-23", end)
	}
}

func TestWeekWindow_Monday(t *testing.T) {
	start, end := WeekWindow(date(2026, time.March, 16))

	if !start.Equal(date(2026, time.March, 16)) {
		t.Fatalf("week start: got %v, want 2026-03-16", start)
	}
	if !end.Equal(date(2026, time.March, 23)) {
		t.Fatalf("week end: got %v, want 2026-03-23", end)
	}
}

func TestWeekWindow_Sunday(t *testing.T) {
	// Воскресенье принадлежит прошедшей неделе, а не открывает новую
	start, end := WeekWindow(time.Date(2026, time.March, 22, 23, 59, 0, 0, time.UTC))

	if !start.Equal(date(2026, time.March, 16)) {
		t.Fatalf("week start: got %v, want 2026-03-16", start)
	}
	if !end.Equal(date(2026, time.March, 23)) {
		t.Fatalf("week end: got %v, want 2026-03-23", end)
	}
}

func TestSameWeek(t *testing.T) {
	monday := date(2026, time.March, 16)
	sunday := time.Date(2026, time.March, 22, 18, 0, 0, 0, time.UTC)
	nextMonday := date(2026, time.March, 23)

	if !SameWeek(monday, sunday) {
		t.Fatal("monday and sunday of the same week must match")
	}
	if SameWeek(sunday, nextMonday) {
		t.Fatal("sunday and next monday must not match")
	}
}

func TestAppointmentOverlaps(t *testing.T) {
	apt := &Appointment{
		StartTime:       time.Date(2026, time.March, 16, 10, 0, 0, 0, time.UTC),
		DurationMinutes: 60,
	}

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  bool
	}{
		{
			name:  "полное совпадение",
			start: time.Date(2026, time.March, 16, 10, 0, 0, 0, time.UTC),
			end:   time.Date(2026, time.March, 16, 11, 0, 0, 0, time.UTC),
			want:  true,
		},
		{
			name:  "пересечение началом",
			start: time.Date(2026, time.March, 16, 10, 30, 0, 0, time.UTC),
			end:   time.Date(2026, time.March, 16, 11, 30, 0, 0, time.UTC),
			want:  true,
		},
		{
			name:  "граничащий интервал после — не пересекается",
			start: time.Date(2026, time.March, 16, 11, 0, 0, 0, time.UTC),
			end:   time.Date(2026, time.March, 16, 11, 30, 0, 0, time.UTC),
			want:  false,
		},
		{
			name:  "граничащий интервал до — не пересекается",
			start: time.Date(2026, time.March, 16, 9, 30, 0, 0, time.UTC),
			end:   time.Date(2026, time.March, 16, 10, 0, 0, 0, time.UTC),
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := apt.Overlaps(tt.start, tt.end); got != tt.want {
				t.Fatalf("Overlaps(%v, %v) = %v, want %v", tt.start, tt.end, got, tt.want)
			}
		})
	}
}

func TestIsBlocking(t *testing.T) {
	for _, status := range []AppointmentStatus{StatusPending, StatusApproved} {
		apt := &Appointment{Status: status}
		if !apt.IsBlocking() {
			t.Fatalf("status %s must block slots", status)
		}
	}

	rejected := &Appointment{Status: StatusRejected}
	if rejected.IsBlocking() {
		t.Fatal("rejected appointment must not block slots")
	}
}
