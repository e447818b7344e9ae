package dateutil

import (
	"testing"
	"time"
)

func TestStartOfDay(t *testing.T) {
	input := time.Date(2025, 1, 15, 14, 30, 45, 123456789, time.UTC)
	expected := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)

	result := StartOfDay(input)

	if !result.Equal(expected) {
		t.Errorf("StartOfDay(%v) = %v, want %v", input, result, expected)
	}
}

func TestStartOfDay_KeepsWallClockDate(t *testing.T) {
	prague := time.FixedZone("CET", 3600)
	input := time.Date(2025, 1, 1, 0, 30, 0, 0, prague) // still Dec 31 in UTC

	result := StartOfDay(input)

	if result.Day() != 1 || result.Month() != time.January || result.Location() != time.UTC {
		t.Errorf("StartOfDay(%v) = %v, want 2025-01-01 UTC", input, result)
	}
}

func TestISOWeekday(t *testing.T) {
	tests := []struct {
		name  string
		input time.Time
		want  int
	}{
		{"Monday", Date(2025, 1, 13), 1},
		{"Wednesday", Date(2025, 1, 15), 3},
		{"Friday", Date(2025, 1, 17), 5},
		{"Saturday", Date(2025, 1, 18), 6},
		{"Sunday", Date(2025, 1, 19), 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ISOWeekday(tt.input); got != tt.want {
				t.Errorf("ISOWeekday(%v) = %d, want %d",
					tt.input.Format("2006-01-02 Mon"), got, tt.want)
			}
		})
	}
}

func TestIsWeekday(t *testing.T) {
	tests := []struct {
		name  string
		input time.Time
		want  bool
	}{
		{"Monday is weekday", time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC), true},
		{"Tuesday is weekday", time.Date(2025, 1, 14, 0, 0, 0, 0, time.UTC), true},
		{"Wednesday is weekday", time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), true},
		{"Thursday is weekday", time.Date(2025, 1, 16, 0, 0, 0, 0, time.UTC), true},
		{"Friday is weekday", time.Date(2025, 1, 17, 0, 0, 0, 0, time.UTC), true},
		{"Saturday is not weekday", time.Date(2025, 1, 18, 0, 0, 0, 0, time.UTC), false},
		{"Sunday is not weekday", time.Date(2025, 1, 19, 0, 0, 0, 0, time.UTC), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsWeekday(tt.input)

			if result != tt.want {
				t.Errorf("IsWeekday(%v) = %v, want %v",
					tt.input.Format("2006-01-02 Mon"), result, tt.want)
			}
		})
	}
}

func TestIsWeekend(t *testing.T) {
	tests := []struct {
		name  string
		input time.Time
		want  bool
	}{
		{"Saturday is weekend", time.Date(2025, 1, 18, 0, 0, 0, 0, time.UTC), true},
		{"Sunday is weekend", time.Date(2025, 1, 19, 0, 0, 0, 0, time.UTC), true},
		{"Monday is not weekend", time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC), false},
		{"Friday is not weekend", time.Date(2025, 1, 17, 0, 0, 0, 0, time.UTC), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsWeekend(tt.input)

			if result != tt.want {
				t.Errorf("IsWeekend(%v) = %v, want %v",
					tt.input.Format("2006-01-02 Mon"), result, tt.want)
			}
		})
	}
}

func TestIsSameDay(t *testing.T) {
	tests := []struct {
		name  string
		date1 time.Time
		date2 time.Time
		want  bool
	}{
		{
			"Same date different time",
			time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC),
			time.Date(2025, 1, 15, 20, 0, 0, 0, time.UTC),
			true,
		},
		{
			"Different date",
			time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC),
			time.Date(2025, 1, 16, 10, 0, 0, 0, time.UTC),
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsSameDay(tt.date1, tt.date2)

			if result != tt.want {
				t.Errorf("IsSameDay(%v, %v) = %v, want %v",
					tt.date1, tt.date2, result, tt.want)
			}
		})
	}
}

func TestDaysInYear(t *testing.T) {
	tests := []struct {
		year int
		want int
	}{
		{2023, 365},
		{2024, 366},
		{2100, 365},
		{2000, 366},
	}

	for _, tt := range tests {
		if got := DaysInYear(tt.year); got != tt.want {
			t.Errorf("DaysInYear(%d) = %d, want %d", tt.year, got, tt.want)
		}
	}
}

func TestDaysInMonth(t *testing.T) {
	if got := DaysInMonth(2024, time.February); got != 29 {
		t.Errorf("DaysInMonth(2024, February) = %d, want 29", got)
	}
	if got := DaysInMonth(2023, time.December); got != 31 {
		t.Errorf("DaysInMonth(2023, December) = %d, want 31", got)
	}
}

func TestEachDay(t *testing.T) {
	first, last := YearBounds(2024)

	count := 0
	prev := time.Time{}
	EachDay(first, last, func(day time.Time) bool {
		if !prev.IsZero() && day.Sub(prev) != 24*time.Hour {
			t.Fatalf("EachDay skipped from %v to %v", prev, day)
		}
		prev = day
		count++
		return true
	})

	if count != 366 {
		t.Errorf("EachDay visited %d days in 2024, want 366", count)
	}
	if !IsSameDay(prev, last) {
		t.Errorf("EachDay last day = %v, want %v", prev, last)
	}
}

func TestEachDay_StopsEarly(t *testing.T) {
	first, last := YearBounds(2023)

	count := 0
	EachDay(first, last, func(day time.Time) bool {
		count++
		return count < 10
	})

	if count != 10 {
		t.Errorf("EachDay visited %d days, want 10", count)
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{
			"ISO format YYYY-MM-DD",
			"2025-01-15",
			time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
			false,
		},
		{
			"Czech format DD.MM.YYYY",
			"15.01.2025",
			time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
			false,
		},
		{
			"Czech format without padding",
			"5.7.2025",
			time.Date(2025, 7, 5, 0, 0, 0, 0, time.UTC),
			false,
		},
		{
			"ISO with time is truncated to the day",
			"2025-01-15T10:30:00",
			time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
			false,
		},
		{
			"Garbage",
			"yesterday",
			time.Time{},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseDate(tt.input)

			if (err != nil) != tt.wantErr {
				t.Errorf("ParseDate(%v) error = %v, wantErr %v", tt.input, err, tt.wantErr)
				return
			}

			if !tt.wantErr && !result.Equal(tt.want) {
				t.Errorf("ParseDate(%v) = %v, want %v", tt.input, result, tt.want)
			}
		})
	}
}
