package db_models

import (
	"time"

	"github.com/google/uuid"
)

type Section struct {
	BaseModel
	TripID      uuid.UUID `gorm:"type:uuid;index;not null"`
	Name        string    `gorm:"not null"`
	Description string
	Budget      float64 `gorm:"default:0"`
	StartDate   time.Time
	EndDate     time.Time

	Activities []SectionActivity `gorm:"foreignKey:SectionID;constraint:OnDelete:CASCADE"`
}

// SectionActivity is one slot of a section. ActivityID is nil when the slot could not be
// resolved, and it deliberately carries no foreign key so dangling ids survive catalog deletes.
type SectionActivity struct {
	SectionID  uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Position   int        `gorm:"primaryKey;autoIncrement:false"`
	ActivityID *uuid.UUID `gorm:"type:uuid;index"`
}
