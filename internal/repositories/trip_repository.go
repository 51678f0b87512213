package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	dbm "globetrotter/internal/models/db_models"
)

type TripRepository interface {
	Create(ctx context.Context, trip *dbm.Trip) error
	FindById(ctx context.Context, id string) (*dbm.Trip, error)
	// FindDetailsById also loads sections with their activity slots.
	FindDetailsById(ctx context.Context, id string) (*dbm.Trip, error)
	ListByAccount(ctx context.Context, accountId string) ([]dbm.Trip, error)
	ListPublic(ctx context.Context, limit int) ([]dbm.Trip, error)
	Update(ctx context.Context, trip *dbm.Trip) error
	Delete(ctx context.Context, id string) (bool, error)
	AddCity(ctx context.Context, visit *dbm.TripCity) error
	RemoveCity(ctx context.Context, tripId, visitId string) (bool, error)
}

type tripRepository struct {
	db *gorm.DB
}

func NewTripRepository(db *gorm.DB) TripRepository {
	return &tripRepository{db: db}
}

func orderedVisits(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC").Order("start_date ASC")
}

func (r *tripRepository) Create(ctx context.Context, trip *dbm.Trip) error {
	return r.db.WithContext(ctx).Create(trip).Error
}

func (r *tripRepository) FindById(ctx context.Context, id string) (*dbm.Trip, error) {
	var trip dbm.Trip
	err := r.db.WithContext(ctx).
		Preload("Cities", orderedVisits).
		Preload("Cities.City").
		First(&trip, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &trip, nil
}

func (r *tripRepository) FindDetailsById(ctx context.Context, id string) (*dbm.Trip, error) {
	var trip dbm.Trip
	err := r.db.WithContext(ctx).
		Preload("Cities", orderedVisits).
		Preload("Cities.City").
		Preload("Sections", func(db *gorm.DB) *gorm.DB { return db.Order("start_date ASC") }).
		Preload("Sections.Activities", orderedSlots).
		First(&trip, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &trip, nil
}

func (r *tripRepository) ListByAccount(ctx context.Context, accountId string) ([]dbm.Trip, error) {
	var trips []dbm.Trip
	err := r.db.WithContext(ctx).
		Preload("Cities", orderedVisits).
		Preload("Cities.City").
		Where("account_id = ?", accountId).
		Order("start_date DESC").
		Find(&trips).Error
	return trips, err
}

func (r *tripRepository) ListPublic(ctx context.Context, limit int) ([]dbm.Trip, error) {
	var trips []dbm.Trip
	err := r.db.WithContext(ctx).
		Preload("Cities", orderedVisits).
		Preload("Cities.City").
		Where("is_public = ?", true).
		Order("created_at DESC").
		Limit(limit).
		Find(&trips).Error
	return trips, err
}

func (r *tripRepository) Update(ctx context.Context, trip *dbm.Trip) error {
	return r.db.WithContext(ctx).
		Omit("Cities", "Sections").
		Save(trip).Error
}

func (r *tripRepository) Delete(ctx context.Context, id string) (bool, error) {
	found := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&dbm.Trip{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		found = true
		return tx.Where("trip_id = ?", id).Delete(&dbm.TripCity{}).Error
	})
	return found, err
}

func (r *tripRepository) AddCity(ctx context.Context, visit *dbm.TripCity) error {
	return r.db.WithContext(ctx).Omit("City").Create(visit).Error
}

func (r *tripRepository) RemoveCity(ctx context.Context, tripId, visitId string) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("trip_id = ? AND id = ?", tripId, visitId).
		Delete(&dbm.TripCity{})
	return res.RowsAffected > 0, res.Error
}
