package calendar

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/username/czech-holidays/pkg/dateutil"
)

// OutputMode selects the projection returned by Resolver.Holidays
type OutputMode int

const (
	ModeFullRecords OutputMode = iota
	ModeDatesOnly
	ModeNamesCz
	ModeNamesEn
)

func (m OutputMode) String() string {
	switch m {
	case ModeDatesOnly:
		return "dates"
	case ModeNamesCz:
		return "cz"
	case ModeNamesEn:
		return "en"
	default:
		return "full"
	}
}

// NamesMode returns the name-pair mode for lang
func NamesMode(lang Language) OutputMode {
	if lang == English {
		return ModeNamesEn
	}
	return ModeNamesCz
}

// ParseOutputMode parses "full", "dates", "cz" or "en"
func ParseOutputMode(s string) (OutputMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "full", "records":
		return ModeFullRecords, nil
	case "dates", "dates-only":
		return ModeDatesOnly, nil
	case "cz", "cs", "names-cz":
		return ModeNamesCz, nil
	case "en", "names-en":
		return ModeNamesEn, nil
	default:
		return ModeFullRecords, fmt.Errorf("%w: unknown output mode %q", ErrTypeMismatch, s)
	}
}

// ParseYear reads a year from user input
func ParseYear(s string) (int, error) {
	year, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: year must be an integer, got %q", ErrTypeMismatch, s)
	}
	return year, nil
}

// ParseMonth reads a month number (1-12) from user input
func ParseMonth(s string) (time.Month, error) {
	month, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: month must be an integer, got %q", ErrTypeMismatch, s)
	}
	if month < 1 || month > 12 {
		return 0, fmt.Errorf("%w: month %d is not between 1 and 12", ErrOutOfRange, month)
	}
	return time.Month(month), nil
}

// Query selects the holidays of one year
type Query struct {
	Year               int
	Mode               OutputMode
	ShoppingRestricted bool
}

// HolidayResult holds the projection selected by Mode. Only the field
// matching Mode is populated.
type HolidayResult struct {
	Year     int
	Mode     OutputMode
	Records  []Holiday
	Dates    []time.Time
	Names    []NamedDate
	Warnings []string
}

// Resolver computes Czech holidays and day classifications.
// It keeps no state between calls and is safe for concurrent use.
type Resolver struct {
	logger *zap.Logger
}

var _ Calendar = (*Resolver)(nil)

// NewResolver creates a new Resolver
func NewResolver(logger *zap.Logger) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{logger: logger}
}

func checkYear(year int) error {
	if year < MinYear {
		return fmt.Errorf("%w: year %d is before %d", ErrOutOfRange, year, MinYear)
	}
	return nil
}

// Holidays builds the holiday table of q.Year and projects it per q.Mode
func (r *Resolver) Holidays(q Query) (*HolidayResult, error) {
	records, warnings, err := r.table(q.Year, q.ShoppingRestricted)
	if err != nil {
		return nil, err
	}

	result := &HolidayResult{
		Year:     q.Year,
		Mode:     q.Mode,
		Warnings: warnings,
	}

	switch q.Mode {
	case ModeDatesOnly:
		result.Dates = uniqueDates(records)
	case ModeNamesCz:
		result.Names = namedDates(records, Czech)
	case ModeNamesEn:
		result.Names = namedDates(records, English)
	default:
		result.Records = records
	}

	return result, nil
}

// table resolves every rule valid in year, in table order, optionally
// keeping only shopping-restricted records
func (r *Resolver) table(year int, shoppingRestricted bool) ([]Holiday, []string, error) {
	if err := checkYear(year); err != nil {
		return nil, nil, err
	}
	if shoppingRestricted && year < ShoppingLawYear {
		return nil, nil, fmt.Errorf("%w: shopping restrictions apply from %d, got %d",
			ErrOutOfRange, ShoppingLawYear, year)
	}

	records := make([]Holiday, 0, len(rules))
	for _, rule := range rules {
		if !rule.ValidIn(year) {
			continue
		}
		holiday, err := rule.Resolve(year)
		if err != nil {
			return nil, nil, err
		}
		if shoppingRestricted && !restrictsShopping(holiday) {
			continue
		}
		records = append(records, holiday)
	}

	var warnings []string
	if shoppingRestricted && year == ShoppingLawYear {
		warning := fmt.Sprintf("shopping restrictions are in force from %s; "+
			"only restricted holidays after that day are returned for %d",
			dateutil.FormatDate(ShoppingLawEffective), year)
		warnings = append(warnings, warning)
		r.logger.Warn("Partial shopping restriction year",
			zap.Int("year", year),
			zap.String("effective", dateutil.FormatDate(ShoppingLawEffective)))
	}

	r.logger.Debug("Holiday table built",
		zap.Int("year", year),
		zap.Bool("shopping_restricted", shoppingRestricted),
		zap.Int("records", len(records)))

	return records, warnings, nil
}

// restrictsShopping reports whether retail trade is restricted on the holiday
func restrictsShopping(h Holiday) bool {
	return h.ShoppingRestricted && h.Date.After(ShoppingLawEffective)
}

func uniqueDates(records []Holiday) []time.Time {
	seen := make(map[string]struct{}, len(records))
	dates := make([]time.Time, 0, len(records))
	for _, h := range records {
		key := dateutil.FormatDate(h.Date)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		dates = append(dates, h.Date)
	}
	sort.Slice(dates, func(i, j int) bool {
		return dates[i].Before(dates[j])
	})
	return dates
}

func namedDates(records []Holiday, lang Language) []NamedDate {
	names := make([]NamedDate, 0, len(records))
	for _, h := range records {
		names = append(names, NamedDate{Date: h.Date, Name: h.Name(lang)})
	}
	return names
}
