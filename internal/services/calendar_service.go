package services

import (
	"fmt"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"

	dbm "globetrotter/internal/models/db_models"
)

type CalendarExporter interface {
	Export(trip dbm.Trip) ([]byte, error)
}

type icsCalendarExporter struct {
	productID string
	now       func() time.Time
}

func NewCalendarExporter(appName string) CalendarExporter {
	if appName == "" {
		appName = "GlobeTrotter"
	}
	return &icsCalendarExporter{
		productID: fmt.Sprintf("-//%s//Trip Export//EN", appName),
		now:       time.Now,
	}
}

// Export emits one all-day event per city visit and one per section.
func (e *icsCalendarExporter) Export(trip dbm.Trip) ([]byte, error) {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(e.productID)
	cal.SetName(trip.Title)
	if trip.Description != "" {
		cal.SetDescription(trip.Description)
	}

	stamp := e.now().UTC()

	for _, visit := range trip.Cities {
		summary := "City visit"
		if visit.City != nil {
			summary = fmt.Sprintf("%s, %s", visit.City.Name, visit.City.Country)
		}
		event := cal.AddEvent(fmt.Sprintf("visit-%s@%s", visit.ID, trip.ID))
		event.SetDtStampTime(stamp)
		event.SetAllDayStartAt(visit.StartDate)
		event.SetAllDayEndAt(exclusiveEnd(visit.EndDate))
		event.SetSummary(summary)
		if visit.City != nil {
			event.SetLocation(visit.City.Name)
		}
	}

	for _, section := range trip.Sections {
		event := cal.AddEvent(fmt.Sprintf("section-%s@%s", section.ID, trip.ID))
		event.SetDtStampTime(stamp)
		event.SetAllDayStartAt(section.StartDate)
		event.SetAllDayEndAt(exclusiveEnd(section.EndDate))
		event.SetSummary(section.Name)

		var desc strings.Builder
		desc.WriteString(section.Description)
		if section.Budget > 0 {
			fmt.Fprintf(&desc, "\nBudget: %.2f", section.Budget)
		}
		if n := len(section.Activities); n > 0 {
			fmt.Fprintf(&desc, "\nActivities: %d", n)
		}
		event.SetDescription(strings.TrimSpace(desc.String()))
	}

	return []byte(cal.Serialize()), nil
}

// All-day DTEND is exclusive in iCalendar.
func exclusiveEnd(end time.Time) time.Time {
	return end.AddDate(0, 0, 1)
}
