package services

import (
	"bytes"
	"testing"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dbm "globetrotter/internal/models/db_models"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestDeriveTripStatus(t *testing.T) {
	start, end := day("2025-09-01"), day("2025-09-04")

	assert.Equal(t, dbm.TripStatusUpcoming, DeriveTripStatus(start, end, day("2025-08-31")))
	assert.Equal(t, dbm.TripStatusOngoing, DeriveTripStatus(start, end, day("2025-09-01")))
	assert.Equal(t, dbm.TripStatusOngoing, DeriveTripStatus(start, end, day("2025-09-04").Add(23*time.Hour)))
	assert.Equal(t, dbm.TripStatusCompleted, DeriveTripStatus(start, end, day("2025-09-05")))
}

func TestCalendarExport(t *testing.T) {
	trip := dbm.Trip{Title: "Paris Trip", Description: "Autumn"}
	trip.ID = uuid.New()

	visit := dbm.TripCity{
		StartDate: day("2025-09-01"),
		EndDate:   day("2025-09-04"),
		City:      &dbm.City{Name: "Paris", Country: "France"},
	}
	visit.ID = uuid.New()
	trip.Cities = []dbm.TripCity{visit}

	section := dbm.Section{Name: "Day 1", Description: "Arrival", Budget: 50, StartDate: day("2025-09-01"), EndDate: day("2025-09-01")}
	section.ID = uuid.New()
	trip.Sections = []dbm.Section{section}

	exporter := &icsCalendarExporter{productID: "-//Test//EN", now: func() time.Time { return day("2025-08-01") }}
	data, err := exporter.Export(trip)
	require.NoError(t, err)

	cal, err := ics.ParseCalendar(bytes.NewReader(data))
	require.NoError(t, err)
	events := cal.Events()
	require.Len(t, events, 2)

	assert.Contains(t, events[0].GetProperty(ics.ComponentPropertySummary).Value, "Paris")
	assert.Equal(t, "Day 1", events[1].GetProperty(ics.ComponentPropertySummary).Value)

	start, err := events[1].GetAllDayStartAt()
	require.NoError(t, err)
	assert.Equal(t, "2025-09-01", start.Format("2006-01-02"))

	// all-day ends are exclusive
	assert.Contains(t, string(data), "DTEND;VALUE=DATE:20250905")
	assert.Contains(t, string(data), "DTEND;VALUE=DATE:20250902")
}

func TestCalendarFileName(t *testing.T) {
	assert.Equal(t, "paris--autumn---2025.ics", calendarFileName("Paris: Autumn / 2025"))
	assert.Equal(t, "trip.ics", calendarFileName("  ***  "))
}
