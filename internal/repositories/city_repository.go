package repositories

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	dbm "globetrotter/internal/models/db_models"
)

type CityRepository interface {
	Create(ctx context.Context, city *dbm.City) error
	Update(ctx context.Context, city *dbm.City) error
	Delete(ctx context.Context, id string) (bool, error)
	FindById(ctx context.Context, id string) (*dbm.City, error)
	List(ctx context.Context) ([]dbm.City, error)
	SearchByName(ctx context.Context, query string, limit int) ([]dbm.City, error)
	FindByIds(ctx context.Context, ids []string) ([]dbm.City, error)
}

type cityRepository struct {
	db *gorm.DB
}

func NewCityRepository(db *gorm.DB) CityRepository {
	return &cityRepository{db: db}
}

func (r *cityRepository) Create(ctx context.Context, city *dbm.City) error {
	return r.db.WithContext(ctx).Create(city).Error
}

func (r *cityRepository) Update(ctx context.Context, city *dbm.City) error {
	return r.db.WithContext(ctx).Save(city).Error
}

func (r *cityRepository) Delete(ctx context.Context, id string) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&dbm.City{}, "id = ?", id)
	return res.RowsAffected > 0, res.Error
}

func (r *cityRepository) FindById(ctx context.Context, id string) (*dbm.City, error) {
	var city dbm.City
	err := r.db.WithContext(ctx).First(&city, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &city, nil
}

func (r *cityRepository) List(ctx context.Context) ([]dbm.City, error) {
	var cities []dbm.City
	err := r.db.WithContext(ctx).
		Order("popularity_score DESC").
		Order("name ASC").
		Find(&cities).Error
	return cities, err
}

// SearchByName does a case-insensitive substring match on name.
func (r *cityRepository) SearchByName(ctx context.Context, query string, limit int) ([]dbm.City, error) {
	var cities []dbm.City
	q := r.db.WithContext(ctx).
		Where(`LOWER(name) LIKE ? ESCAPE '\'`, likePattern(query)).
		Order("popularity_score DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&cities).Error
	return cities, err
}

func (r *cityRepository) FindByIds(ctx context.Context, ids []string) ([]dbm.City, error) {
	if len(ids) == 0 {
		return []dbm.City{}, nil
	}
	var cities []dbm.City
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&cities).Error
	return cities, err
}

func likePattern(query string) string {
	q := strings.ToLower(strings.TrimSpace(query))
	q = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(q)
	return "%" + q + "%"
}
