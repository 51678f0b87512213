package services

import (
	"context"
	"errors"
	"strings"

	dbm "globetrotter/internal/models/db_models"
	"globetrotter/internal/repositories"
	"globetrotter/pkg/logger"
	"globetrotter/pkg/utils"
)

var ErrEmbeddingsDisabled = errors.New("embeddings disabled")

// ActivityEmbedder keeps the vector index in sync with the catalog and answers
// nearest-neighbour queries.
type ActivityEmbedder interface {
	Enabled() bool
	Refresh(ctx context.Context, activity dbm.Activity) error
	Remove(ctx context.Context, activityId string) error
	Nearest(ctx context.Context, query string, limit int) ([]string, error)
}

type activityEmbedder struct {
	repo   repositories.ActivityEmbeddingRepository
	client utils.EmbeddingClient
	log    *logger.Logger
}

func NewActivityEmbedder(repo repositories.ActivityEmbeddingRepository, client utils.EmbeddingClient, log *logger.Logger) ActivityEmbedder {
	return &activityEmbedder{repo: repo, client: client, log: log.With("service", "ActivityEmbedder")}
}

func (e *activityEmbedder) Enabled() bool { return true }

func (e *activityEmbedder) Refresh(ctx context.Context, activity dbm.Activity) error {
	vector, err := e.client.Embed(ctx, embeddingText(activity))
	if err != nil {
		return err
	}
	return e.repo.Upsert(ctx, &dbm.ActivityEmbedding{
		ActivityID: activity.ID.String(),
		Name:       activity.Name,
		CityID:     activity.CityID.String(),
		Category:   activity.Category,
		Keywords:   keywords(activity),
		Embedding:  vector,
	})
}

func (e *activityEmbedder) Remove(ctx context.Context, activityId string) error {
	return e.repo.Delete(ctx, activityId)
}

func (e *activityEmbedder) Nearest(ctx context.Context, query string, limit int) ([]string, error) {
	vector, err := e.client.Embed(ctx, query)
	if err != nil {
		return nil, err
	}
	return e.repo.Nearest(ctx, vector, 0.3, limit)
}

func embeddingText(a dbm.Activity) string {
	parts := []string{a.Name, a.Category}
	if a.Description != "" {
		parts = append(parts, a.Description)
	}
	return strings.Join(parts, ". ")
}

func keywords(a dbm.Activity) []string {
	seen := map[string]bool{}
	var out []string
	for _, w := range strings.Fields(NormalizeActivityName(a.Name + " " + a.Category)) {
		if len(w) > 2 && !seen[w] {
			seen[w] = true
			out = append(out, w)
		}
	}
	return out
}

type disabledEmbedder struct{}

// NewDisabledEmbedder is used when EMBEDDINGS_ENABLED is false.
func NewDisabledEmbedder() ActivityEmbedder { return disabledEmbedder{} }

func (disabledEmbedder) Enabled() bool                                          { return false }
func (disabledEmbedder) Refresh(context.Context, dbm.Activity) error            { return nil }
func (disabledEmbedder) Remove(context.Context, string) error                   { return nil }
func (disabledEmbedder) Nearest(context.Context, string, int) ([]string, error) { return nil, ErrEmbeddingsDisabled }
