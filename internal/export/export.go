package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/username/czech-holidays/internal/calendar"
	"github.com/username/czech-holidays/pkg/dateutil"
)

// Format is an output encoding
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
	FormatICS   Format = "ics"
)

// ErrUnsupported is returned when a format cannot encode a view
var ErrUnsupported = errors.New("unsupported by output format")

// ParseFormat parses a format name
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatTable, FormatJSON, FormatYAML, FormatICS:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q", s)
	}
}

// Options configures an Exporter
type Options struct {
	Lang         calendar.Language
	ProductID    string
	CalendarName string
	Now          func() time.Time // DTSTAMP source for iCalendar output
}

// Exporter writes resolver results in one format
type Exporter struct {
	format Format
	opts   Options
	logger *zap.Logger
}

// New creates a new Exporter
func New(format Format, opts Options, logger *zap.Logger) *Exporter {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Exporter{format: format, opts: opts, logger: logger}
}

type holidayRow struct {
	Date               string `json:"date" yaml:"date"`
	NameCz             string `json:"name_cz" yaml:"name_cz"`
	NameEn             string `json:"name_en" yaml:"name_en"`
	Fixed              bool   `json:"fixed" yaml:"fixed"`
	Category           string `json:"category" yaml:"category"`
	ValidFrom          int    `json:"valid_from" yaml:"valid_from"`
	ShoppingRestricted bool   `json:"shopping_restricted" yaml:"shopping_restricted"`
}

type namedRow struct {
	Date string `json:"date" yaml:"date"`
	Name string `json:"name" yaml:"name"`
}

type holidaysDoc struct {
	Year     int          `json:"year" yaml:"year"`
	Mode     string       `json:"mode" yaml:"mode"`
	Holidays []holidayRow `json:"holidays,omitempty" yaml:"holidays,omitempty"`
	Dates    []string     `json:"dates,omitempty" yaml:"dates,omitempty"`
	Names    []namedRow   `json:"names,omitempty" yaml:"names,omitempty"`
	Warnings []string     `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

type datesDoc struct {
	Year     int      `json:"year" yaml:"year"`
	Kind     string   `json:"kind" yaml:"kind"`
	Count    int      `json:"count" yaml:"count"`
	Dates    []string `json:"dates" yaml:"dates"`
	Warnings []string `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

type dayRow struct {
	Date               string `json:"date" yaml:"date"`
	Weekday            string `json:"weekday" yaml:"weekday"`
	Type               string `json:"type" yaml:"type"`
	WorkingHours       int    `json:"working_hours" yaml:"working_hours"`
	ShoppingRestricted bool   `json:"shopping_restricted" yaml:"shopping_restricted"`
	Note               string `json:"note,omitempty" yaml:"note,omitempty"`
}

type monthDoc struct {
	Year         int      `json:"year" yaml:"year"`
	Month        int      `json:"month" yaml:"month"`
	WorkDays     int      `json:"work_days" yaml:"work_days"`
	Weekends     int      `json:"weekends" yaml:"weekends"`
	Holidays     int      `json:"holidays" yaml:"holidays"`
	WorkingHours int      `json:"working_hours" yaml:"working_hours"`
	Days         []dayRow `json:"days" yaml:"days"`
}

func formatDates(dates []time.Time) []string {
	out := make([]string, len(dates))
	for i, date := range dates {
		out[i] = dateutil.FormatDate(date)
	}
	return out
}

func newHolidaysDoc(res *calendar.HolidayResult) holidaysDoc {
	doc := holidaysDoc{
		Year:     res.Year,
		Mode:     res.Mode.String(),
		Warnings: res.Warnings,
	}
	for _, h := range res.Records {
		doc.Holidays = append(doc.Holidays, holidayRow{
			Date:               dateutil.FormatDate(h.Date),
			NameCz:             h.NameCz,
			NameEn:             h.NameEn,
			Fixed:              h.Fixed,
			Category:           h.Category.String(),
			ValidFrom:          h.ValidFrom,
			ShoppingRestricted: h.ShoppingRestricted,
		})
	}
	if res.Dates != nil {
		doc.Dates = formatDates(res.Dates)
	}
	for _, n := range res.Names {
		doc.Names = append(doc.Names, namedRow{Date: dateutil.FormatDate(n.Date), Name: n.Name})
	}
	return doc
}

func newMonthDoc(m *calendar.MonthInfo) monthDoc {
	doc := monthDoc{
		Year:         m.Year,
		Month:        int(m.Month),
		WorkDays:     m.WorkDays,
		Weekends:     m.Weekends,
		Holidays:     m.Holidays,
		WorkingHours: m.WorkingHours,
		Days:         make([]dayRow, 0, len(m.Days)),
	}
	for _, day := range m.Days {
		doc.Days = append(doc.Days, dayRow{
			Date:               dateutil.FormatDate(day.Date),
			Weekday:            day.Date.Weekday().String(),
			Type:               day.Type.String(),
			WorkingHours:       day.WorkingHours,
			ShoppingRestricted: day.ShoppingRestricted,
			Note:               day.Note,
		})
	}
	return doc
}

func (e *Exporter) encode(w io.Writer, doc any) error {
	switch e.format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(doc)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%s: %w", e.format, ErrUnsupported)
	}
}

// WriteHolidays writes a holiday table projection
func (e *Exporter) WriteHolidays(w io.Writer, res *calendar.HolidayResult) error {
	e.logger.Debug("Writing holidays",
		zap.String("format", string(e.format)),
		zap.Int("year", res.Year),
		zap.String("mode", res.Mode.String()))

	switch e.format {
	case FormatTable:
		return e.holidaysTable(w, res)
	case FormatICS:
		return e.holidaysICS(w, res)
	default:
		return e.encode(w, newHolidaysDoc(res))
	}
}

// WriteDates writes a list of days such as workdays; kind labels the list
func (e *Exporter) WriteDates(w io.Writer, year int, kind string, dates []time.Time, warnings []string) error {
	e.logger.Debug("Writing dates",
		zap.String("format", string(e.format)),
		zap.String("kind", kind),
		zap.Int("count", len(dates)))

	switch e.format {
	case FormatTable:
		return e.datesTable(w, kind, dates, warnings)
	case FormatICS:
		return e.datesICS(w, kind, dates)
	default:
		return e.encode(w, datesDoc{
			Year:     year,
			Kind:     kind,
			Count:    len(dates),
			Dates:    formatDates(dates),
			Warnings: warnings,
		})
	}
}

// WriteMonth writes the day classification of a month
func (e *Exporter) WriteMonth(w io.Writer, m *calendar.MonthInfo) error {
	switch e.format {
	case FormatTable:
		return e.monthTable(w, m)
	case FormatICS:
		return fmt.Errorf("month view: %w", ErrUnsupported)
	default:
		return e.encode(w, newMonthDoc(m))
	}
}

func newTabWriter(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func writeWarnings(w io.Writer, warnings []string) {
	for _, warning := range warnings {
		fmt.Fprintf(w, "⚠️  %s\n", warning)
	}
}

func (e *Exporter) holidaysTable(w io.Writer, res *calendar.HolidayResult) error {
	tw := newTabWriter(w)

	switch res.Mode {
	case calendar.ModeDatesOnly:
		fmt.Fprintln(tw, "DATE\tWEEKDAY")
		for _, date := range res.Dates {
			fmt.Fprintf(tw, "%s\t%s\n", dateutil.FormatDate(date), date.Weekday())
		}
	case calendar.ModeNamesCz, calendar.ModeNamesEn:
		fmt.Fprintln(tw, "DATE\tNAME")
		for _, n := range res.Names {
			fmt.Fprintf(tw, "%s\t%s\n", dateutil.FormatDate(n.Date), n.Name)
		}
	default:
		fmt.Fprintln(tw, "DATE\tWEEKDAY\tNAME\tCATEGORY\tFIXED\tSHOPS CLOSED")
		for _, h := range res.Records {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
				dateutil.FormatDate(h.Date),
				h.Date.Weekday(),
				h.Name(e.opts.Lang),
				h.Category,
				yesNo(h.Fixed),
				yesNo(h.ShoppingRestricted))
		}
	}

	if err := tw.Flush(); err != nil {
		return err
	}
	writeWarnings(w, res.Warnings)
	return nil
}

func (e *Exporter) datesTable(w io.Writer, kind string, dates []time.Time, warnings []string) error {
	tw := newTabWriter(w)
	fmt.Fprintln(tw, "DATE\tWEEKDAY")
	for _, date := range dates {
		fmt.Fprintf(tw, "%s\t%s\n", dateutil.FormatDate(date), date.Weekday())
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(w, "\n%d %s\n", len(dates), kind)
	writeWarnings(w, warnings)
	return nil
}

func (e *Exporter) monthTable(w io.Writer, m *calendar.MonthInfo) error {
	fmt.Fprintf(w, "📅 %s %d\n", m.Month, m.Year)
	fmt.Fprintln(w, "═══════════════════════════════════════════════════════")

	tw := newTabWriter(w)
	fmt.Fprintln(tw, "DATE\tWEEKDAY\tTYPE\tHOURS\tNOTE")
	for _, day := range m.Days {
		note := day.Note
		if day.ShoppingRestricted {
			note += " (shops closed)"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\n",
			dateutil.FormatDate(day.Date),
			day.Date.Weekday(),
			day.Type,
			day.WorkingHours,
			strings.TrimSpace(note))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(w, "\n  Working days:   %d\n", m.WorkDays)
	fmt.Fprintf(w, "  Weekend days:   %d\n", m.Weekends)
	fmt.Fprintf(w, "  Holidays:       %d\n", m.Holidays)
	fmt.Fprintf(w, "  Working hours:  %dh\n", m.WorkingHours)
	return nil
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
