package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"globetrotter/internal/models/request_models"
	resp "globetrotter/internal/models/response_models"
	"globetrotter/internal/repositories"
	"globetrotter/pkg/utils"
)

const (
	GranularityDay   = "day"
	GranularityWeek  = "week"
	GranularityMonth = "month"

	defaultRankingLimit = 10
	maxRankingLimit     = 50
	defaultRangeDays    = 30
	maxSeriesPoints     = 366
)

type DashboardService interface {
	BuildAnalytics(ctx context.Context, q request_models.AnalyticsQuery) (*resp.AnalyticsResponse, error)
}

type dashboardService struct {
	repo repositories.DashboardRepository
	now  func() time.Time
}

func NewDashboardService(repo repositories.DashboardRepository) DashboardService {
	return &dashboardService{repo: repo, now: time.Now}
}

type analyticsRange struct {
	start, end  time.Time
	granularity string
	limit       int
}

// normalizeQuery fills defaults: the last 30 days by day, top 10.
func (s *dashboardService) normalizeQuery(q request_models.AnalyticsQuery) (analyticsRange, error) {
	out := analyticsRange{granularity: strings.ToLower(strings.TrimSpace(q.Granularity)), limit: q.Limit}

	switch out.granularity {
	case "":
		out.granularity = GranularityDay
	case GranularityDay, GranularityWeek, GranularityMonth:
	default:
		return out, utils.ErrInvalidInput
	}

	if strings.TrimSpace(q.To) == "" {
		out.end = s.now().UTC()
	} else {
		to, err := utils.ParseDate(q.To)
		if err != nil {
			return out, err
		}
		// a bare date covers the whole day
		out.end = to.Add(24*time.Hour - time.Second)
	}
	if strings.TrimSpace(q.From) == "" {
		out.start = utils.StartOfDay(out.end.AddDate(0, 0, -defaultRangeDays))
	} else {
		from, err := utils.ParseDate(q.From)
		if err != nil {
			return out, err
		}
		out.start = from
	}
	if out.start.After(out.end) {
		return out, utils.ErrInvalidDateRange
	}
	if n := bucketCount(out.start, out.end, out.granularity); n > maxSeriesPoints {
		return out, fmt.Errorf("%w: range spans %d %s buckets, at most %d allowed",
			utils.ErrInvalidInput, n, out.granularity, maxSeriesPoints)
	}

	if out.limit <= 0 {
		out.limit = defaultRankingLimit
	}
	out.limit = min(out.limit, maxRankingLimit)
	return out, nil
}

func (s *dashboardService) BuildAnalytics(ctx context.Context, q request_models.AnalyticsQuery) (*resp.AnalyticsResponse, error) {
	rng, err := s.normalizeQuery(q)
	if err != nil {
		return nil, err
	}

	out := &resp.AnalyticsResponse{From: rng.start, To: rng.end, Granularity: rng.granularity}
	var (
		created    []int64
		cityRows   []repositories.CityVisitRow
		activities []repositories.ActivityUsageRow
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { out.TotalUsers, err = s.repo.CountTotalAccounts(gctx); return })
	g.Go(func() (err error) { out.NewUsers, err = s.repo.CountNewAccounts(gctx, rng.start, rng.end); return })
	g.Go(func() (err error) { out.TotalTrips, err = s.repo.CountTotalTrips(gctx); return })
	g.Go(func() (err error) { out.NewTrips, err = s.repo.CountNewTrips(gctx, rng.start, rng.end); return })
	g.Go(func() (err error) { out.TotalSections, err = s.repo.CountTotalSections(gctx); return })
	g.Go(func() (err error) { created, err = s.repo.TripCreationTimes(gctx, rng.start, rng.end); return })
	g.Go(func() (err error) { cityRows, err = s.repo.TopCities(gctx, rng.limit); return })
	g.Go(func() (err error) { activities, err = s.repo.TopActivities(gctx, rng.limit); return })
	if err := g.Wait(); err != nil {
		return nil, utils.ErrDatabaseError
	}

	out.TripsSeries = BucketSeries(created, rng.start, rng.end, rng.granularity)
	out.TopCities = lo.Map(cityRows, func(r repositories.CityVisitRow, _ int) resp.TopCity {
		return resp.TopCity{CityID: r.CityID, Name: r.Name, Country: r.Country, Visits: r.Visits}
	})
	out.TopActivities = lo.Map(activities, func(r repositories.ActivityUsageRow, _ int) resp.TopActivity {
		return resp.TopActivity{
			ActivityID: r.ActivityID,
			Name:       r.Name,
			Category:   r.Category,
			Uses:       r.Uses,
			AvgCost:    lo.FromPtr(r.AvgCost),
		}
	})
	return out, nil
}

func bucketStart(t time.Time, granularity string) time.Time {
	d := utils.StartOfDay(t)
	switch granularity {
	case GranularityWeek:
		// weeks start on Monday
		offset := (int(d.Weekday()) + 6) % 7
		return d.AddDate(0, 0, -offset)
	case GranularityMonth:
		return time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.UTC)
	default:
		return d
	}
}

func nextBucket(t time.Time, granularity string) time.Time {
	switch granularity {
	case GranularityWeek:
		return t.AddDate(0, 0, 7)
	case GranularityMonth:
		return t.AddDate(0, 1, 0)
	default:
		return t.AddDate(0, 0, 1)
	}
}

// bucketCount is the number of points BucketSeries would emit for [start, end].
func bucketCount(start, end time.Time, granularity string) int {
	first, last := bucketStart(start.UTC(), granularity), bucketStart(end.UTC(), granularity)
	switch granularity {
	case GranularityMonth:
		return (last.Year()-first.Year())*12 + int(last.Month()) - int(first.Month()) + 1
	case GranularityWeek:
		return int(last.Sub(first).Hours()/(24*7)) + 1
	default:
		return int(last.Sub(first).Hours()/24) + 1
	}
}

// BucketSeries counts unix timestamps into contiguous buckets covering [start, end].
// Empty buckets are emitted with a zero count.
func BucketSeries(timestamps []int64, start, end time.Time, granularity string) []resp.SeriesPoint {
	counts := make(map[time.Time]int64, len(timestamps))
	for _, ts := range timestamps {
		counts[bucketStart(time.Unix(ts, 0).UTC(), granularity)]++
	}

	var points []resp.SeriesPoint
	for b := bucketStart(start.UTC(), granularity); !b.After(end.UTC()); b = nextBucket(b, granularity) {
		points = append(points, resp.SeriesPoint{Bucket: b, Count: counts[b]})
	}
	return points
}
