package calendar

import (
	"fmt"
	"time"

	"github.com/teambition/rrule-go"

	"github.com/username/czech-holidays/pkg/dateutil"
)

const (
	// MinYear is the earliest year the rule table is valid for
	MinYear = 2001

	// ShoppingLawYear is the year the retail restriction law came into force
	ShoppingLawYear = 2016
)

// ShoppingLawEffective is the day the retail restriction law took effect.
// Restricted holidays count only when they fall after it.
var ShoppingLawEffective = dateutil.Date(ShoppingLawYear, time.October, 1)

// Rule describes one holiday and the years it is observed in.
// A rule is either fixed (Month and Day set) or movable (EasterOffset
// days from Easter Sunday).
type Rule struct {
	NameCz             string
	NameEn             string
	Month              time.Month
	Day                int
	EasterOffset       int
	Category           Category
	ValidFrom          int
	ValidUntil         int // 0 = still in force
	ShoppingRestricted bool
}

// Fixed reports whether the rule falls on the same month and day every year
func (r Rule) Fixed() bool {
	return r.Month != 0
}

// ValidIn reports whether the rule is in force in year
func (r Rule) ValidIn(year int) bool {
	if year < r.ValidFrom {
		return false
	}
	return r.ValidUntil == 0 || year <= r.ValidUntil
}

// recurrence builds the yearly recurrence of the rule anchored at the
// start of year
func (r Rule) recurrence(year int) (*rrule.RRule, error) {
	opt := rrule.ROption{
		Freq:    rrule.YEARLY,
		Dtstart: dateutil.Date(year, time.January, 1),
	}
	if r.Fixed() {
		opt.Bymonth = []int{int(r.Month)}
		opt.Bymonthday = []int{r.Day}
	} else {
		opt.Byeaster = []int{r.EasterOffset}
	}
	return rrule.NewRRule(opt)
}

// DateIn returns the day the rule falls on in year
func (r Rule) DateIn(year int) (time.Time, error) {
	rec, err := r.recurrence(year)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid recurrence for %q: %w", r.NameEn, err)
	}

	first, last := dateutil.YearBounds(year)
	occurrences := rec.Between(first, last, true)
	if len(occurrences) == 0 {
		return time.Time{}, fmt.Errorf("%q has no occurrence in %d", r.NameEn, year)
	}
	return dateutil.StartOfDay(occurrences[0]), nil
}

// Resolve turns the rule into the holiday record of year
func (r Rule) Resolve(year int) (Holiday, error) {
	date, err := r.DateIn(year)
	if err != nil {
		return Holiday{}, err
	}
	return Holiday{
		NameCz:             r.NameCz,
		NameEn:             r.NameEn,
		Date:               date,
		Fixed:              r.Fixed(),
		Category:           r.Category,
		ValidFrom:          r.ValidFrom,
		ShoppingRestricted: r.ShoppingRestricted,
	}, nil
}

// Rules returns a copy of the holiday rule table in table order
func Rules() []Rule {
	out := make([]Rule, len(rules))
	copy(out, rules)
	return out
}

// rules lists Czech holidays per Act No. 245/2000 Coll. and its amendments.
// Good Friday was added by Act No. 359/2015 Coll.; the retail restriction
// follows Act No. 223/2016 Coll.
var rules = []Rule{
	{
		NameCz:    "Den obnovy samostatného českého státu",
		NameEn:    "Restoration Day of the Independent Czech State",
		Month:     time.January,
		Day:       1,
		Category:  CategoryState,
		ValidFrom: MinYear,
	},
	{
		NameCz:             "Nový rok",
		NameEn:             "New Year's Day",
		Month:              time.January,
		Day:                1,
		Category:           CategoryOther,
		ValidFrom:          MinYear,
		ShoppingRestricted: true,
	},
	{
		NameCz:       "Velký pátek",
		NameEn:       "Good Friday",
		EasterOffset: -2,
		Category:     CategoryOther,
		ValidFrom:    2016,
	},
	{
		NameCz:             "Velikonoční pondělí",
		NameEn:             "Easter Monday",
		EasterOffset:       1,
		Category:           CategoryOther,
		ValidFrom:          MinYear,
		ShoppingRestricted: true,
	},
	{
		NameCz:    "Svátek práce",
		NameEn:    "Labour Day",
		Month:     time.May,
		Day:       1,
		Category:  CategoryOther,
		ValidFrom: MinYear,
	},
	{
		NameCz:             "Den vítězství",
		NameEn:             "Victory Day",
		Month:              time.May,
		Day:                8,
		Category:           CategoryPublic,
		ValidFrom:          MinYear,
		ShoppingRestricted: true,
	},
	{
		NameCz:    "Den slovanských věrozvěstů Cyrila a Metoděje",
		NameEn:    "Saints Cyril and Methodius Day",
		Month:     time.July,
		Day:       5,
		Category:  CategoryPublic,
		ValidFrom: MinYear,
	},
	{
		NameCz:    "Den upálení mistra Jana Husa",
		NameEn:    "Jan Hus Day",
		Month:     time.July,
		Day:       6,
		Category:  CategoryPublic,
		ValidFrom: MinYear,
	},
	{
		NameCz:             "Den české státnosti",
		NameEn:             "Czech Statehood Day",
		Month:              time.September,
		Day:                28,
		Category:           CategoryPublic,
		ValidFrom:          MinYear,
		ShoppingRestricted: true,
	},
	{
		NameCz:             "Den vzniku samostatného československého státu",
		NameEn:             "Czechoslovak Independence Day",
		Month:              time.October,
		Day:                28,
		Category:           CategoryPublic,
		ValidFrom:          MinYear,
		ShoppingRestricted: true,
	},
	{
		NameCz:    "Den boje za svobodu a demokracii a Mezinárodní den studentstva",
		NameEn:    "Struggle for Freedom and Democracy Day and International Students' Day",
		Month:     time.November,
		Day:       17,
		Category:  CategoryPublic,
		ValidFrom: MinYear,
	},
	{
		// shops close at noon only, so the day is not marked restricted
		NameCz:    "Štědrý den",
		NameEn:    "Christmas Eve",
		Month:     time.December,
		Day:       24,
		Category:  CategoryOther,
		ValidFrom: MinYear,
	},
	{
		NameCz:             "1. svátek vánoční",
		NameEn:             "Christmas Day",
		Month:              time.December,
		Day:                25,
		Category:           CategoryOther,
		ValidFrom:          MinYear,
		ShoppingRestricted: true,
	},
	{
		NameCz:             "2. svátek vánoční",
		NameEn:             "St. Stephen's Day",
		Month:              time.December,
		Day:                26,
		Category:           CategoryOther,
		ValidFrom:          MinYear,
		ShoppingRestricted: true,
	},
}
