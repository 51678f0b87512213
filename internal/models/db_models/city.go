package db_models

import "gorm.io/datatypes"

type City struct {
	BaseModel
	Name            string `gorm:"index;not null"`
	Country         string `gorm:"not null"`
	CostIndex       float64
	PopularityScore float64 `gorm:"index"`
	Description     string
	Images          datatypes.JSONSlice[string]

	Activities []Activity `gorm:"foreignKey:CityID"`
}
