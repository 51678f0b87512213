package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type CommunityPost struct {
	BaseModel
	AccountID uuid.UUID  `gorm:"type:uuid;index;not null"`
	Account   *Account   `gorm:"foreignKey:AccountID"`
	TripID    *uuid.UUID `gorm:"type:uuid;index"`
	Title     string     `gorm:"not null"`
	Content   string
	Images    datatypes.JSONSlice[string]

	Likes    []PostLike    `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
	Comments []PostComment `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
}

type PostLike struct {
	PostID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	AccountID uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt int64     `gorm:"autoCreateTime"`
}

type PostComment struct {
	BaseModel
	PostID    uuid.UUID `gorm:"type:uuid;index;not null"`
	AccountID uuid.UUID `gorm:"type:uuid;index;not null"`
	Account   *Account  `gorm:"foreignKey:AccountID"`
	Content   string    `gorm:"not null"`
}
