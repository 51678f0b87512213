package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	CategorySightseeing = "sightseeing"
	CategoryFood        = "food"
	CategoryAdventure   = "adventure"
	CategoryCulture     = "culture"
	CategoryOther       = "other"
)

var ActivityCategories = []string{
	CategorySightseeing,
	CategoryFood,
	CategoryAdventure,
	CategoryCulture,
	CategoryOther,
}

type Activity struct {
	BaseModel
	Name        string    `gorm:"index;not null"`
	Description string
	CityID      uuid.UUID `gorm:"type:uuid;index;not null"`
	City        *City     `gorm:"foreignKey:CityID"`
	Category    string    `gorm:"default:other"`
	Cost        *float64
	Duration    *float64 // hours
	Images      datatypes.JSONSlice[string]
}
