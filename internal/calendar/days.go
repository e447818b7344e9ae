package calendar

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/username/czech-holidays/pkg/dateutil"
)

// hoursPerWorkday follows the standard 40-hour working week
const hoursPerWorkday = 8

// WorkdayOptions controls which days Resolver.Workdays counts
type WorkdayOptions struct {
	IncludeSaturday bool
	IncludeSunday   bool
	IncludeHolidays bool // holidays count as working days
}

// ShoppingOptions controls which days Resolver.ShoppingDays counts.
// The zero value excludes weekends and keeps restricted holidays; use
// DefaultShoppingOptions for the usual shop week.
type ShoppingOptions struct {
	IncludeSaturday   bool
	IncludeSunday     bool
	ExcludeRestricted bool
}

// DefaultShoppingOptions opens shops on both weekend days and closes them
// on restricted holidays
func DefaultShoppingOptions() ShoppingOptions {
	return ShoppingOptions{
		IncludeSaturday:   true,
		IncludeSunday:     true,
		ExcludeRestricted: true,
	}
}

// DayList is a chronological list of days plus advisories raised while
// computing it
type DayList struct {
	Year     int
	Dates    []time.Time
	Warnings []string
}

type dateSet map[string]struct{}

func newDateSet(records []Holiday) dateSet {
	set := make(dateSet, len(records))
	for _, h := range records {
		set[dateutil.FormatDate(h.Date)] = struct{}{}
	}
	return set
}

func (s dateSet) has(day time.Time) bool {
	_, ok := s[dateutil.FormatDate(day)]
	return ok
}

// weekdayAllowed compares ISO weekday numbers so the result never depends
// on the locale
func weekdayAllowed(day time.Time, includeSaturday, includeSunday bool) bool {
	switch dateutil.ISOWeekday(day) {
	case 6:
		return includeSaturday
	case 7:
		return includeSunday
	default:
		return true
	}
}

// collectDays returns every day of year accepted by keep, in order
func collectDays(year int, keep func(day time.Time) bool) []time.Time {
	first, last := dateutil.YearBounds(year)
	days := make([]time.Time, 0, dateutil.DaysInYear(year))
	dateutil.EachDay(first, last, func(day time.Time) bool {
		if keep(day) {
			days = append(days, day)
		}
		return true
	})
	return days
}

// Workdays returns the working days of year in chronological order
func (r *Resolver) Workdays(year int, opts WorkdayOptions) ([]time.Time, error) {
	holidays := dateSet{}
	if !opts.IncludeHolidays {
		records, _, err := r.table(year, false)
		if err != nil {
			return nil, err
		}
		holidays = newDateSet(records)
	} else if err := checkYear(year); err != nil {
		return nil, err
	}

	days := collectDays(year, func(day time.Time) bool {
		return !holidays.has(day) && weekdayAllowed(day, opts.IncludeSaturday, opts.IncludeSunday)
	})

	r.logger.Debug("Workdays computed",
		zap.Int("year", year),
		zap.Bool("include_saturday", opts.IncludeSaturday),
		zap.Bool("include_sunday", opts.IncludeSunday),
		zap.Bool("include_holidays", opts.IncludeHolidays),
		zap.Int("days", len(days)))

	return days, nil
}

// ShoppingDays returns the days of year shops may open. Excluding
// restricted holidays requires a year the restriction law covers.
func (r *Resolver) ShoppingDays(year int, opts ShoppingOptions) (*DayList, error) {
	restricted := dateSet{}
	var warnings []string
	if opts.ExcludeRestricted {
		records, w, err := r.table(year, true)
		if err != nil {
			return nil, err
		}
		restricted = newDateSet(records)
		warnings = w
	} else if err := checkYear(year); err != nil {
		return nil, err
	}

	days := collectDays(year, func(day time.Time) bool {
		return !restricted.has(day) && weekdayAllowed(day, opts.IncludeSaturday, opts.IncludeSunday)
	})

	r.logger.Debug("Shopping days computed",
		zap.Int("year", year),
		zap.Bool("exclude_restricted", opts.ExcludeRestricted),
		zap.Int("days", len(days)))

	return &DayList{Year: year, Dates: days, Warnings: warnings}, nil
}

// HolidaysDuringWeekend returns the holiday dates of year falling on a
// Saturday or Sunday, in table order. Days shared by two holidays appear
// once per holiday.
func (r *Resolver) HolidaysDuringWeekend(year int) ([]time.Time, error) {
	records, _, err := r.table(year, false)
	if err != nil {
		return nil, err
	}

	var dates []time.Time
	for _, h := range records {
		if dateutil.IsWeekend(h.Date) {
			dates = append(dates, h.Date)
		}
	}
	return dates, nil
}

// WorkdaysDuringWeekend returns the Saturdays and Sundays of year that are
// not holidays, or every weekend day when includeHolidays is set
func (r *Resolver) WorkdaysDuringWeekend(year int, includeHolidays bool) ([]time.Time, error) {
	days, err := r.Workdays(year, WorkdayOptions{
		IncludeSaturday: true,
		IncludeSunday:   true,
		IncludeHolidays: includeHolidays,
	})
	if err != nil {
		return nil, err
	}

	weekend := days[:0]
	for _, day := range days {
		if dateutil.IsWeekend(day) {
			weekend = append(weekend, day)
		}
	}
	return weekend, nil
}

// IsWorkday checks if the given date is a working day
func (r *Resolver) IsWorkday(date time.Time) (bool, int, error) {
	dayInfo, err := r.GetDayInfo(date)
	if err != nil {
		return false, 0, err
	}

	return dayInfo.IsWorkday, dayInfo.WorkingHours, nil
}

// GetDayInfo returns detailed info for a specific day
func (r *Resolver) GetDayInfo(date time.Time) (*DayInfo, error) {
	day := dateutil.StartOfDay(date)

	records, _, err := r.table(day.Year(), false)
	if err != nil {
		return nil, err
	}

	info := classify(day, records)
	return &info, nil
}

// GetMonthInfo returns calendar info for the entire month
func (r *Resolver) GetMonthInfo(year int, month time.Month) (*MonthInfo, error) {
	if month < time.January || month > time.December {
		return nil, fmt.Errorf("%w: month %d", ErrOutOfRange, month)
	}

	records, _, err := r.table(year, false)
	if err != nil {
		return nil, err
	}

	daysInMonth := dateutil.DaysInMonth(year, month)
	monthInfo := &MonthInfo{
		Year:  year,
		Month: month,
		Days:  make([]DayInfo, 0, daysInMonth),
	}

	for d := 1; d <= daysInMonth; d++ {
		info := classify(dateutil.Date(year, month, d), records)

		switch info.Type {
		case DayTypeWorkday:
			monthInfo.WorkDays++
		case DayTypeWeekend:
			monthInfo.Weekends++
		case DayTypeHoliday:
			monthInfo.Holidays++
		}
		monthInfo.WorkingHours += info.WorkingHours

		monthInfo.Days = append(monthInfo.Days, info)
	}

	r.logger.Debug("Month info computed",
		zap.Int("year", year),
		zap.Int("month", int(month)),
		zap.Int("work_days", monthInfo.WorkDays),
		zap.Int("working_hours", monthInfo.WorkingHours))

	return monthInfo, nil
}

// classify determines the day type of day against the year's holidays.
// A holiday wins over a weekend.
func classify(day time.Time, records []Holiday) DayInfo {
	info := DayInfo{Date: day}

	var names []string
	for _, h := range records {
		if !dateutil.IsSameDay(h.Date, day) {
			continue
		}
		info.Holidays = append(info.Holidays, h)
		names = append(names, h.NameCz)
		if restrictsShopping(h) {
			info.ShoppingRestricted = true
		}
	}

	switch {
	case len(info.Holidays) > 0:
		info.Type = DayTypeHoliday
		info.Note = strings.Join(names, ", ")
	case dateutil.IsWeekend(day):
		info.Type = DayTypeWeekend
	default:
		info.Type = DayTypeWorkday
		info.IsWorkday = true
		info.WorkingHours = hoursPerWorkday
	}

	return info
}
