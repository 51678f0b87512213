package db_models

import (
	"time"

	"github.com/lib/pq"
	"github.com/pgvector/pgvector-go"
)

// ActivityEmbedding is only migrated when embeddings are enabled; it needs the pgvector extension.
type ActivityEmbedding struct {
	ActivityID string `gorm:"primaryKey;column:activity_id"`
	Name       string
	CityID     string
	Category   string
	Keywords   pq.StringArray  `gorm:"type:text[]"`
	Embedding  pgvector.Vector `gorm:"type:vector(1536)"`
	UpdatedAt  time.Time       `gorm:"autoUpdateTime"`
}
