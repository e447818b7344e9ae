package export

import (
	"fmt"
	"io"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/username/czech-holidays/internal/calendar"
	"github.com/username/czech-holidays/pkg/dateutil"
)

func (e *Exporter) newCalendar() *ical.Calendar {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(e.opts.ProductID)
	if e.opts.CalendarName != "" {
		cal.SetXWRCalName(e.opts.CalendarName)
	}
	return cal
}

// addDay adds an all-day, non-blocking event
func (e *Exporter) addDay(cal *ical.Calendar, uid string, date time.Time, summary string) *ical.VEvent {
	event := cal.AddEvent(uid)
	event.SetDtStampTime(e.opts.Now().UTC())
	event.SetAllDayStartAt(date)
	event.SetAllDayEndAt(date.AddDate(0, 0, 1))
	event.SetSummary(summary)
	event.SetTimeTransparency(ical.TransparencyTransparent)
	return event
}

func uid(date time.Time, kind string, index int) string {
	return fmt.Sprintf("%s-%s-%d@czech-holidays", dateutil.FormatDate(date), kind, index)
}

func (e *Exporter) holidaysICS(w io.Writer, res *calendar.HolidayResult) error {
	cal := e.newCalendar()

	switch res.Mode {
	case calendar.ModeDatesOnly:
		summary := "Státní svátek"
		if e.opts.Lang == calendar.English {
			summary = "Public holiday"
		}
		for i, date := range res.Dates {
			e.addDay(cal, uid(date, "holiday", i), date, summary)
		}
	case calendar.ModeNamesCz, calendar.ModeNamesEn:
		for i, n := range res.Names {
			e.addDay(cal, uid(n.Date, "holiday", i), n.Date, n.Name)
		}
	default:
		for i, h := range res.Records {
			event := e.addDay(cal, uid(h.Date, "holiday", i), h.Date, h.Name(e.opts.Lang))
			other := calendar.English
			if e.opts.Lang == calendar.English {
				other = calendar.Czech
			}
			description := h.Name(other)
			if h.ShoppingRestricted {
				description += "\nShops closed / Obchody zavřeny"
			}
			event.SetDescription(description)
			event.SetProperty(ical.ComponentPropertyCategories, h.Category.String())
		}
	}

	return cal.SerializeTo(w)
}

func (e *Exporter) datesICS(w io.Writer, kind string, dates []time.Time) error {
	cal := e.newCalendar()
	for i, date := range dates {
		e.addDay(cal, uid(date, kind, i), date, kind)
	}
	return cal.SerializeTo(w)
}
