package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	dbm "globetrotter/internal/models/db_models"
)

type DashboardRepository interface {
	CountTotalAccounts(ctx context.Context) (int64, error)
	CountNewAccounts(ctx context.Context, start, end time.Time) (int64, error)
	CountTotalTrips(ctx context.Context) (int64, error)
	CountNewTrips(ctx context.Context, start, end time.Time) (int64, error)
	CountTotalSections(ctx context.Context) (int64, error)

	// TripCreationTimes returns created_at (unix seconds) of trips created in the range.
	// Bucketing is done by the caller so the query stays portable.
	TripCreationTimes(ctx context.Context, start, end time.Time) ([]int64, error)

	TopCities(ctx context.Context, limit int) ([]CityVisitRow, error)
	TopActivities(ctx context.Context, limit int) ([]ActivityUsageRow, error)
}

type dashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &dashboardRepository{db: db}
}

// ---------- Row helpers ----------
type CityVisitRow struct {
	CityID  string `gorm:"column:city_id"`
	Name    string `gorm:"column:name"`
	Country string `gorm:"column:country"`
	Visits  int64  `gorm:"column:visits"`
}

type ActivityUsageRow struct {
	ActivityID string   `gorm:"column:activity_id"`
	Name       string   `gorm:"column:name"`
	Category   string   `gorm:"column:category"`
	Uses       int64    `gorm:"column:uses"`
	AvgCost    *float64 `gorm:"column:avg_cost"`
}

// ---------- Counts ----------
func (r *dashboardRepository) CountTotalAccounts(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&dbm.Account{}).Count(&n).Error
	return n, err
}

func (r *dashboardRepository) CountNewAccounts(ctx context.Context, start, end time.Time) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&dbm.Account{}).
		Where("created_at BETWEEN ? AND ?", start.Unix(), end.Unix()).
		Count(&n).Error
	return n, err
}

func (r *dashboardRepository) CountTotalTrips(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&dbm.Trip{}).Count(&n).Error
	return n, err
}

func (r *dashboardRepository) CountNewTrips(ctx context.Context, start, end time.Time) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&dbm.Trip{}).
		Where("created_at BETWEEN ? AND ?", start.Unix(), end.Unix()).
		Count(&n).Error
	return n, err
}

func (r *dashboardRepository) CountTotalSections(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&dbm.Section{}).Count(&n).Error
	return n, err
}

// ---------- Series ----------
func (r *dashboardRepository) TripCreationTimes(ctx context.Context, start, end time.Time) ([]int64, error) {
	var out []int64
	err := r.db.WithContext(ctx).
		Model(&dbm.Trip{}).
		Where("created_at BETWEEN ? AND ?", start.Unix(), end.Unix()).
		Order("created_at ASC").
		Pluck("created_at", &out).Error
	return out, err
}

// ---------- Rankings ----------
func (r *dashboardRepository) TopCities(ctx context.Context, limit int) ([]CityVisitRow, error) {
	var rows []CityVisitRow
	err := r.db.WithContext(ctx).
		Table("trip_cities tc").
		Select("c.id AS city_id, c.name AS name, c.country AS country, COUNT(*) AS visits").
		Joins("JOIN cities c ON c.id = tc.city_id AND c.deleted_at IS NULL").
		Where("tc.deleted_at IS NULL").
		Group("c.id, c.name, c.country").
		Order("visits DESC").
		Order("c.name ASC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

func (r *dashboardRepository) TopActivities(ctx context.Context, limit int) ([]ActivityUsageRow, error) {
	var rows []ActivityUsageRow
	err := r.db.WithContext(ctx).
		Table("section_activities sa").
		Select("a.id AS activity_id, a.name AS name, a.category AS category, COUNT(*) AS uses, AVG(a.cost) AS avg_cost").
		Joins("JOIN sections s ON s.id = sa.section_id AND s.deleted_at IS NULL").
		Joins("JOIN activities a ON a.id = sa.activity_id AND a.deleted_at IS NULL").
		Group("a.id, a.name, a.category").
		Order("uses DESC").
		Order("a.name ASC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}
