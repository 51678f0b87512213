package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	dbm "globetrotter/internal/models/db_models"
)

type SectionRepository interface {
	// CreateBulk inserts all sections and their activity slots in one transaction.
	CreateBulk(ctx context.Context, sections []dbm.Section) error
	FindById(ctx context.Context, id string) (*dbm.Section, error)
	ListByTrip(ctx context.Context, tripId string) ([]dbm.Section, error)
	Replace(ctx context.Context, section *dbm.Section) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type sectionRepository struct {
	db *gorm.DB
}

func NewSectionRepository(db *gorm.DB) SectionRepository {
	return &sectionRepository{db: db}
}

func orderedSlots(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}

func (r *sectionRepository) CreateBulk(ctx context.Context, sections []dbm.Section) error {
	if len(sections) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&sections).Error
	})
}

func (r *sectionRepository) FindById(ctx context.Context, id string) (*dbm.Section, error) {
	var section dbm.Section
	err := r.db.WithContext(ctx).
		Preload("Activities", orderedSlots).
		First(&section, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &section, nil
}

func (r *sectionRepository) ListByTrip(ctx context.Context, tripId string) ([]dbm.Section, error) {
	var sections []dbm.Section
	err := r.db.WithContext(ctx).
		Preload("Activities", orderedSlots).
		Where("trip_id = ?", tripId).
		Order("start_date ASC").
		Order("created_at ASC").
		Find(&sections).Error
	return sections, err
}

// Replace overwrites the section's fields and its activity slots. Returns false when the
// section does not exist.
func (r *sectionRepository) Replace(ctx context.Context, section *dbm.Section) (bool, error) {
	found := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&dbm.Section{}).
			Where("id = ?", section.ID).
			Updates(map[string]interface{}{
				"name":        section.Name,
				"description": section.Description,
				"budget":      section.Budget,
				"start_date":  section.StartDate,
				"end_date":    section.EndDate,
				"updated_at":  section.UpdatedAt,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		found = true

		if err := tx.Where("section_id = ?", section.ID).Delete(&dbm.SectionActivity{}).Error; err != nil {
			return err
		}
		if len(section.Activities) == 0 {
			return nil
		}
		for i := range section.Activities {
			section.Activities[i].SectionID = section.ID
		}
		return tx.Create(&section.Activities).Error
	})
	return found, err
}

func (r *sectionRepository) Delete(ctx context.Context, id string) (bool, error) {
	found := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&dbm.Section{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		found = true
		return tx.Where("section_id = ?", id).Delete(&dbm.SectionActivity{}).Error
	})
	return found, err
}
