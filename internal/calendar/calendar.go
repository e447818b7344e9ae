package calendar

import (
	"errors"
	"time"
)

var (
	// ErrOutOfRange is returned for years (or months) the rules do not cover
	ErrOutOfRange = errors.New("out of range")

	// ErrTypeMismatch is returned when an input cannot be read as the expected type
	ErrTypeMismatch = errors.New("type mismatch")
)

// DayType represents the type of day
type DayType int

const (
	DayTypeWorkday DayType = iota + 1
	DayTypeWeekend
	DayTypeHoliday
)

func (t DayType) String() string {
	switch t {
	case DayTypeWorkday:
		return "workday"
	case DayTypeWeekend:
		return "weekend"
	case DayTypeHoliday:
		return "holiday"
	default:
		return "unknown"
	}
}

// Category is the legal kind of a holiday
type Category int

const (
	CategoryState Category = iota + 1
	CategoryPublic
	CategoryOther
)

func (c Category) String() string {
	switch c {
	case CategoryState:
		return "State"
	case CategoryPublic:
		return "Public"
	case CategoryOther:
		return "Other"
	default:
		return "Unknown"
	}
}

// Holiday is one holiday record resolved for a specific year
type Holiday struct {
	NameCz             string
	NameEn             string
	Date               time.Time
	Fixed              bool
	Category           Category
	ValidFrom          int
	ShoppingRestricted bool
}

// Name returns the holiday name in the requested language
func (h Holiday) Name(lang Language) string {
	if lang == English {
		return h.NameEn
	}
	return h.NameCz
}

// NamedDate pairs a holiday date with one localized name
type NamedDate struct {
	Date time.Time
	Name string
}

// DayInfo represents information about a specific day
type DayInfo struct {
	Date               time.Time
	Type               DayType
	WorkingHours       int
	IsWorkday          bool
	ShoppingRestricted bool
	Holidays           []Holiday
	Note               string
}

// MonthInfo represents calendar information for a month
type MonthInfo struct {
	Year         int
	Month        time.Month
	WorkingHours int // Total working hours in the month
	WorkDays     int
	Weekends     int
	Holidays     int
	Days         []DayInfo
}

// Calendar interface for checking working days
type Calendar interface {
	// IsWorkday checks if the given date is a working day
	IsWorkday(date time.Time) (bool, int, error)

	// GetMonthInfo returns calendar info for the entire month
	GetMonthInfo(year int, month time.Month) (*MonthInfo, error)

	// GetDayInfo returns detailed info for a specific day
	GetDayInfo(date time.Time) (*DayInfo, error)
}
