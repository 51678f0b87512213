package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	dbm "globetrotter/internal/models/db_models"
)

type ActivityRepository interface {
	Create(ctx context.Context, activity *dbm.Activity) error
	Update(ctx context.Context, activity *dbm.Activity) error
	Delete(ctx context.Context, id string) (bool, error)
	FindById(ctx context.Context, id string) (*dbm.Activity, error)
	// ListAll returns the full catalog in a stable order (created_at, id).
	ListAll(ctx context.Context) ([]dbm.Activity, error)
	ListByCity(ctx context.Context, cityId string) ([]dbm.Activity, error)
	SearchByName(ctx context.Context, query string, limit int) ([]dbm.Activity, error)
	ListSimilar(ctx context.Context, category string, excludeIds []string, limit int) ([]dbm.Activity, error)
	FindByIds(ctx context.Context, ids []string) ([]dbm.Activity, error)
}

type activityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) Create(ctx context.Context, activity *dbm.Activity) error {
	return r.db.WithContext(ctx).Omit("City").Create(activity).Error
}

func (r *activityRepository) Update(ctx context.Context, activity *dbm.Activity) error {
	return r.db.WithContext(ctx).Omit("City").Save(activity).Error
}

func (r *activityRepository) Delete(ctx context.Context, id string) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&dbm.Activity{}, "id = ?", id)
	return res.RowsAffected > 0, res.Error
}

func (r *activityRepository) FindById(ctx context.Context, id string) (*dbm.Activity, error) {
	var activity dbm.Activity
	err := r.db.WithContext(ctx).First(&activity, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &activity, nil
}

func (r *activityRepository) ListAll(ctx context.Context) ([]dbm.Activity, error) {
	var activities []dbm.Activity
	err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Order("id ASC").
		Find(&activities).Error
	return activities, err
}

func (r *activityRepository) ListByCity(ctx context.Context, cityId string) ([]dbm.Activity, error) {
	var activities []dbm.Activity
	err := r.db.WithContext(ctx).
		Where("city_id = ?", cityId).
		Order("name ASC").
		Find(&activities).Error
	return activities, err
}

func (r *activityRepository) SearchByName(ctx context.Context, query string, limit int) ([]dbm.Activity, error) {
	var activities []dbm.Activity
	q := r.db.WithContext(ctx).
		Where(`LOWER(name) LIKE ? ESCAPE '\'`, likePattern(query)).
		Order("name ASC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&activities).Error
	return activities, err
}

func (r *activityRepository) ListSimilar(ctx context.Context, category string, excludeIds []string, limit int) ([]dbm.Activity, error) {
	var activities []dbm.Activity
	q := r.db.WithContext(ctx).Where("category = ?", category)
	if len(excludeIds) > 0 {
		q = q.Where("id NOT IN ?", excludeIds)
	}
	err := q.Order("name ASC").Limit(limit).Find(&activities).Error
	return activities, err
}

func (r *activityRepository) FindByIds(ctx context.Context, ids []string) ([]dbm.Activity, error) {
	if len(ids) == 0 {
		return []dbm.Activity{}, nil
	}
	var activities []dbm.Activity
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&activities).Error
	return activities, err
}
