package dateutil

import (
	"errors"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	t.Run("valid date", func(t *testing.T) {
		got, err := ParseDate("2025-01-15")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if Key(got) != "2025-01-15" {
			t.Errorf("got %s, want 2025-01-15", Key(got))
		}
	})

	t.Run("empty defaults to today", func(t *testing.T) {
		got, err := ParseDate("")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if Key(got) != Key(time.Now()) {
			t.Errorf("got %s, want today", Key(got))
		}
	})

	t.Run("invalid format", func(t *testing.T) {
		_, err := ParseDate("01-15-2025")
		if !errors.Is(err, ErrInvalidDateFormat) {
			t.Errorf("got error %v, want %v", err, ErrInvalidDateFormat)
		}
	})
}

func TestNewDateRange(t *testing.T) {
	t.Run("valid date range", func(t *testing.T) {
		dr, err := NewDateRange("2025-01-15", "2025-01-20")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if Key(dr.Start) != "2025-01-15" || Key(dr.End) != "2025-01-20" {
			t.Errorf("got %s..%s", Key(dr.Start), Key(dr.End))
		}
		if n := len(dr.Days()); n != 6 {
			t.Errorf("Days() = %d entries, want 6", n)
		}
	})

	t.Run("end defaults to start", func(t *testing.T) {
		dr, err := NewDateRange("2025-01-15", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !dr.End.Equal(dr.Start) {
			t.Errorf("end %v != start %v", dr.End, dr.Start)
		}
	})

	t.Run("end before start", func(t *testing.T) {
		_, err := NewDateRange("2025-01-20", "2025-01-15")
		if !errors.Is(err, ErrEndDateBeforeStart) {
			t.Errorf("got error %v, want %v", err, ErrEndDateBeforeStart)
		}
	})
}

func TestPreviousDay(t *testing.T) {
	tests := []struct {
		name  string
		input time.Time
		want  string
	}{
		{name: "mid month", input: time.Date(2026, 10, 16, 15, 30, 0, 0, time.UTC), want: "2026-10-15"},
		{name: "first of month", input: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), want: "2026-02-28"},
		{name: "leap year", input: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), want: "2024-02-29"},
		{name: "new year", input: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), want: "2025-12-31"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Key(PreviousDay(tt.input)); got != tt.want {
				t.Errorf("PreviousDay = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestDayNameAndFormattedDate(t *testing.T) {
	d := time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC) // Friday
	if got := DayName(d); got != "sexta-feira" {
		t.Errorf("DayName = %q, want sexta-feira", got)
	}
	if got := DayName(d.AddDate(0, 0, 2)); got != "domingo" {
		t.Errorf("DayName = %q, want domingo", got)
	}
	if got := FormattedDate(d); got != "16/10/2026" {
		t.Errorf("FormattedDate = %q, want 16/10/2026", got)
	}
}

func TestWeekRange(t *testing.T) {
	tests := []struct {
		name       string
		input      time.Time
		wantMonday string
		wantSunday string
	}{
		{name: "wednesday", input: time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC), wantMonday: "2025-01-13", wantSunday: "2025-01-19"},
		{name: "monday", input: time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC), wantMonday: "2025-01-13", wantSunday: "2025-01-19"},
		{name: "sunday", input: time.Date(2025, 1, 19, 23, 0, 0, 0, time.UTC), wantMonday: "2025-01-13", wantSunday: "2025-01-19"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			monday, sunday := WeekRange(tt.input)
			if Key(monday) != tt.wantMonday || Key(sunday) != tt.wantSunday {
				t.Errorf("WeekRange = %s..%s, want %s..%s", Key(monday), Key(sunday), tt.wantMonday, tt.wantSunday)
			}
		})
	}
}

func TestTruncateToDay(t *testing.T) {
	in := time.Date(2025, 1, 15, 14, 30, 45, 123, time.UTC)
	want := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	if got := TruncateToDay(in); !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestParseRelativeDate(t *testing.T) {
	// Wednesday
	ref := time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		input string
		want  string
	}{
		{"", "2025-01-15"},
		{"today", "2025-01-15"},
		{"HOJE", "2025-01-15"},
		{"yesterday", "2025-01-14"},
		{"ontem", "2025-01-14"},
		{"tomorrow", "2025-01-16"},
		{"amanhã", "2025-01-16"},
		{"next-week", "2025-01-22"},
		{"friday", "2025-01-17"},
		{"sexta", "2025-01-17"},
		{"wednesday", "2025-01-22"},
		{"next-monday", "2025-01-20"},
		{"last-monday", "2025-01-13"},
		{"last-wednesday", "2025-01-08"},
		{"2024-12-31", "2024-12-31"},
		{" 2025-02-01 ", "2025-02-01"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseRelativeDate(tt.input, ref)
			if err != nil {
				t.Fatalf("ParseRelativeDate(%q) error: %v", tt.input, err)
			}
			if Key(got) != tt.want {
				t.Errorf("ParseRelativeDate(%q) = %s, want %s", tt.input, Key(got), tt.want)
			}
		})
	}
}

func TestParseRelativeDate_Errors(t *testing.T) {
	ref := time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC)
	for _, input := range []string{"someday", "next-month", "last-year", "15/01/2025"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseRelativeDate(input, ref)
			if !errors.Is(err, ErrInvalidDateFormat) {
				t.Errorf("ParseRelativeDate(%q) error = %v, want ErrInvalidDateFormat", input, err)
			}
		})
	}
}
