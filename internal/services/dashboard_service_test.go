package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"globetrotter/internal/models/request_models"
	"globetrotter/internal/repositories"
	"globetrotter/pkg/utils"
)

type mockDashboardRepo struct {
	failOn string
	times  []int64
}

func (m *mockDashboardRepo) err(name string) error {
	if m.failOn == name {
		return errors.New(name + " failed")
	}
	return nil
}

func (m *mockDashboardRepo) CountTotalAccounts(context.Context) (int64, error) {
	return 10, m.err("accounts")
}
func (m *mockDashboardRepo) CountNewAccounts(context.Context, time.Time, time.Time) (int64, error) {
	return 3, m.err("newAccounts")
}
func (m *mockDashboardRepo) CountTotalTrips(context.Context) (int64, error) {
	return 7, m.err("trips")
}
func (m *mockDashboardRepo) CountNewTrips(context.Context, time.Time, time.Time) (int64, error) {
	return int64(len(m.times)), m.err("newTrips")
}
func (m *mockDashboardRepo) CountTotalSections(context.Context) (int64, error) {
	return 21, m.err("sections")
}
func (m *mockDashboardRepo) TripCreationTimes(context.Context, time.Time, time.Time) ([]int64, error) {
	return m.times, m.err("series")
}
func (m *mockDashboardRepo) TopCities(_ context.Context, limit int) ([]repositories.CityVisitRow, error) {
	return []repositories.CityVisitRow{{CityID: "c1", Name: "Paris", Country: "France", Visits: 4}}, m.err("cities")
}
func (m *mockDashboardRepo) TopActivities(_ context.Context, limit int) ([]repositories.ActivityUsageRow, error) {
	return []repositories.ActivityUsageRow{{ActivityID: "a1", Name: "Louvre", Uses: 2}}, m.err("activities")
}

var _ repositories.DashboardRepository = (*mockDashboardRepo)(nil)

func TestBucketSeries_Day(t *testing.T) {
	start := day("2025-09-01")
	end := day("2025-09-03").Add(23 * time.Hour)
	ts := []int64{
		day("2025-09-01").Add(2 * time.Hour).Unix(),
		day("2025-09-01").Add(20 * time.Hour).Unix(),
		day("2025-09-03").Unix(),
	}

	points := BucketSeries(ts, start, end, GranularityDay)
	require.Len(t, points, 3)
	assert.Equal(t, int64(2), points[0].Count)
	assert.Equal(t, int64(0), points[1].Count)
	assert.Equal(t, int64(1), points[2].Count)
}

func TestBucketSeries_WeekStartsMonday(t *testing.T) {
	// 2025-09-03 is a Wednesday
	points := BucketSeries([]int64{day("2025-09-03").Unix()}, day("2025-09-03"), day("2025-09-10"), GranularityWeek)
	require.Len(t, points, 2)
	assert.Equal(t, "2025-09-01", points[0].Bucket.Format("2006-01-02"))
	assert.Equal(t, int64(1), points[0].Count)
	assert.Equal(t, "2025-09-08", points[1].Bucket.Format("2006-01-02"))
}

func TestBucketSeries_Month(t *testing.T) {
	points := BucketSeries([]int64{day("2025-02-14").Unix()}, day("2025-01-20"), day("2025-03-02"), GranularityMonth)
	require.Len(t, points, 3)
	assert.Equal(t, int64(1), points[1].Count)
	assert.Equal(t, time.February, points[1].Bucket.Month())
}

func TestBuildAnalytics(t *testing.T) {
	repo := &mockDashboardRepo{times: []int64{day("2025-09-02").Unix()}}
	svc := &dashboardService{repo: repo, now: func() time.Time { return day("2025-09-10") }}

	out, err := svc.BuildAnalytics(context.Background(), request_models.AnalyticsQuery{From: "2025-09-01", To: "2025-09-03"})
	require.NoError(t, err)

	assert.Equal(t, GranularityDay, out.Granularity)
	assert.Equal(t, int64(10), out.TotalUsers)
	assert.Equal(t, int64(7), out.TotalTrips)
	assert.Equal(t, int64(1), out.NewTrips)
	assert.Equal(t, int64(21), out.TotalSections)
	require.Len(t, out.TripsSeries, 3)
	assert.Equal(t, int64(1), out.TripsSeries[1].Count)
	require.Len(t, out.TopCities, 1)
	assert.Equal(t, "Paris", out.TopCities[0].Name)
	require.Len(t, out.TopActivities, 1)
	assert.Zero(t, out.TopActivities[0].AvgCost)
}

func TestBuildAnalytics_Defaults(t *testing.T) {
	svc := &dashboardService{repo: &mockDashboardRepo{}, now: func() time.Time { return day("2025-09-30") }}

	out, err := svc.BuildAnalytics(context.Background(), request_models.AnalyticsQuery{})
	require.NoError(t, err)
	assert.Equal(t, "2025-08-31", out.From.Format("2006-01-02"))
	assert.Len(t, out.TripsSeries, 31)
}

func TestBuildAnalytics_Errors(t *testing.T) {
	svc := &dashboardService{repo: &mockDashboardRepo{}, now: time.Now}

	_, err := svc.BuildAnalytics(context.Background(), request_models.AnalyticsQuery{Granularity: "hour"})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)

	_, err = svc.BuildAnalytics(context.Background(), request_models.AnalyticsQuery{From: "2025-09-10", To: "2025-09-01"})
	assert.ErrorIs(t, err, utils.ErrInvalidDateRange)

	failing := &dashboardService{repo: &mockDashboardRepo{failOn: "cities"}, now: time.Now}
	_, err = failing.BuildAnalytics(context.Background(), request_models.AnalyticsQuery{})
	assert.ErrorIs(t, err, utils.ErrDatabaseError)
}

func TestBuildAnalytics_SeriesLengthIsCapped(t *testing.T) {
	repo := &mockDashboardRepo{}
	svc := &dashboardService{repo: repo, now: time.Now}

	_, err := svc.BuildAnalytics(context.Background(), request_models.AnalyticsQuery{From: "0001-01-01", To: "2025-09-01"})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)

	_, err = svc.BuildAnalytics(context.Background(), request_models.AnalyticsQuery{From: "2024-01-01", To: "2025-09-01", Granularity: "day"})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)

	// the same span fits by month
	out, err := svc.BuildAnalytics(context.Background(), request_models.AnalyticsQuery{From: "2024-01-01", To: "2025-09-01", Granularity: "month"})
	require.NoError(t, err)
	assert.Len(t, out.TripsSeries, 21)

	// a full leap year by day is the largest accepted series
	out, err = svc.BuildAnalytics(context.Background(), request_models.AnalyticsQuery{From: "2024-01-01", To: "2024-12-31"})
	require.NoError(t, err)
	assert.Len(t, out.TripsSeries, maxSeriesPoints)
}

func TestBucketCount_MatchesSeries(t *testing.T) {
	start, end := day("2025-01-15"), day("2025-09-03")
	for _, g := range []string{GranularityDay, GranularityWeek, GranularityMonth} {
		assert.Len(t, BucketSeries(nil, start, end, g), bucketCount(start, end, g), g)
	}
}
