package db_models

import (
	"time"

	"github.com/google/uuid"
)

const (
	TripStatusUpcoming  = "upcoming"
	TripStatusOngoing   = "ongoing"
	TripStatusCompleted = "completed"
)

type Trip struct {
	BaseModel
	AccountID   uuid.UUID `gorm:"type:uuid;index;not null"`
	Title       string    `gorm:"not null"`
	Description string
	CoverPhoto  string
	StartDate   time.Time
	EndDate     time.Time
	IsPublic    bool
	Status      string `gorm:"default:upcoming"`

	Cities   []TripCity `gorm:"foreignKey:TripID;constraint:OnDelete:CASCADE"`
	Sections []Section  `gorm:"foreignKey:TripID"`
}

// TripCity is one city visit inside a trip.
type TripCity struct {
	BaseModel
	TripID    uuid.UUID `gorm:"type:uuid;index;not null"`
	CityID    uuid.UUID `gorm:"type:uuid;index;not null"`
	City      *City     `gorm:"foreignKey:CityID"`
	StartDate time.Time
	EndDate   time.Time
	Position  int `gorm:"column:position"`
}
