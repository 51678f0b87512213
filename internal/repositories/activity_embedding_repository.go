package repositories

import (
	"context"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	dbm "globetrotter/internal/models/db_models"
)

type ActivityEmbeddingRepository interface {
	Upsert(ctx context.Context, embedding *dbm.ActivityEmbedding) error
	Delete(ctx context.Context, activityId string) error
	// Nearest returns activity ids ordered by cosine distance, above minSimilarity.
	Nearest(ctx context.Context, vector pgvector.Vector, minSimilarity float64, limit int) ([]string, error)
}

type activityEmbeddingRepository struct {
	db *gorm.DB
}

func NewActivityEmbeddingRepository(db *gorm.DB) ActivityEmbeddingRepository {
	return &activityEmbeddingRepository{db: db}
}

func (r *activityEmbeddingRepository) Upsert(ctx context.Context, embedding *dbm.ActivityEmbedding) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "activity_id"}},
			UpdateAll: true,
		}).
		Create(embedding).Error
}

func (r *activityEmbeddingRepository) Delete(ctx context.Context, activityId string) error {
	return r.db.WithContext(ctx).Delete(&dbm.ActivityEmbedding{}, "activity_id = ?", activityId).Error
}

func (r *activityEmbeddingRepository) Nearest(ctx context.Context, vector pgvector.Vector, minSimilarity float64, limit int) ([]string, error) {
	var ids []string
	query := `
        SELECT activity_id
        FROM activity_embeddings
        WHERE (1 - (embedding <=> ?)) > ?
        ORDER BY embedding <=> ?
        LIMIT ?
    `
	err := r.db.WithContext(ctx).Raw(query, vector, minSimilarity, vector, limit).Scan(&ids).Error
	return ids, err
}
