package dateutil

import (
	"fmt"
	"time"
)

// Date returns midnight UTC of the given calendar day
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// StartOfDay returns the calendar day of t as midnight UTC.
// The wall-clock date of t is kept, its location is dropped.
func StartOfDay(t time.Time) time.Time {
	return Date(t.Year(), t.Month(), t.Day())
}

// ISOWeekday returns the ISO 8601 weekday number (Monday=1 .. Sunday=7)
func ISOWeekday(t time.Time) int {
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday = 7
	}
	return weekday
}

// IsWeekday returns true if the date is Monday-Friday
func IsWeekday(t time.Time) bool {
	return ISOWeekday(t) <= 5
}

// IsWeekend returns true if the date is Saturday or Sunday
func IsWeekend(t time.Time) bool {
	return ISOWeekday(t) >= 6
}

// IsSameDay returns true if two dates are on the same day
func IsSameDay(date1, date2 time.Time) bool {
	return date1.Year() == date2.Year() &&
		date1.Month() == date2.Month() &&
		date1.Day() == date2.Day()
}

// DaysInYear returns 366 for leap years and 365 otherwise
func DaysInYear(year int) int {
	return Date(year, time.December, 31).YearDay()
}

// DaysInMonth returns the number of days of month in year
func DaysInMonth(year int, month time.Month) int {
	return Date(year, month+1, 0).Day()
}

// EachDay calls fn for every day from start to end inclusive, in order.
// Iteration stops early when fn returns false.
func EachDay(start, end time.Time, fn func(day time.Time) bool) {
	for day := StartOfDay(start); !day.After(end); day = day.AddDate(0, 0, 1) {
		if !fn(day) {
			return
		}
	}
}

// YearBounds returns January 1 and December 31 of year
func YearBounds(year int) (first, last time.Time) {
	return Date(year, time.January, 1), Date(year, time.December, 31)
}

// FormatDate formats date as YYYY-MM-DD
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// ParseDate parses date string in various formats
func ParseDate(dateStr string) (time.Time, error) {
	formats := []string{
		"2006-01-02",
		"02.01.2006",
		"2.1.2006",
		"2006-01-02T15:04:05",
		"2006-01-02T15:04:05Z",
		"2006-01-02T15:04:05-0700",
	}

	for _, format := range formats {
		if t, err := time.Parse(format, dateStr); err == nil {
			return StartOfDay(t), nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized date format: %q", dateStr)
}
