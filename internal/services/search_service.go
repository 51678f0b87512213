package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"

	dbm "globetrotter/internal/models/db_models"
	resp "globetrotter/internal/models/response_models"
	"globetrotter/internal/repositories"
	"globetrotter/pkg/logger"
	"globetrotter/pkg/utils"
)

const (
	similarActivityLimit = 5
	suggestionLimit      = 5
	semanticLimit        = 10
)

type SearchServiceInterface interface {
	Search(ctx context.Context, query string) (*resp.SearchResponse, error)
	Suggestions(ctx context.Context, query string) ([]string, error)
	SemanticSearch(ctx context.Context, query string) (*resp.SearchResponse, error)
}

type SearchService struct {
	cityRepo     repositories.CityRepository
	activityRepo repositories.ActivityRepository
	embedder     ActivityEmbedder
	log          *logger.Logger
}

func NewSearchService(
	cityRepo repositories.CityRepository,
	activityRepo repositories.ActivityRepository,
	embedder ActivityEmbedder,
	log *logger.Logger,
) SearchServiceInterface {
	return &SearchService{
		cityRepo:     cityRepo,
		activityRepo: activityRepo,
		embedder:     embedder,
		log:          log.With("service", "SearchService"),
	}
}

// Search tries a city name first. Without a city match it falls back to activity names,
// returning their cities and a few activities of the first match's category.
func (s *SearchService) Search(ctx context.Context, query string) (*resp.SearchResponse, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return nil, fmt.Errorf("%w: search query is required", utils.ErrInvalidInput)
	}

	cities, err := s.cityRepo.SearchByName(ctx, q, 1)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if len(cities) > 0 {
		city := cities[0]
		activities, err := s.activityRepo.ListByCity(ctx, city.ID.String())
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		cr := toCityResponse(city)
		return &resp.SearchResponse{
			Type:       resp.SearchTypeCity,
			City:       &cr,
			Activities: toActivityResponses(activities),
		}, nil
	}

	activities, err := s.activityRepo.SearchByName(ctx, q, 0)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if len(activities) == 0 {
		return nil, utils.ErrNoSearchResults
	}
	return s.activityResult(ctx, activities)
}

func (s *SearchService) Suggestions(ctx context.Context, query string) ([]string, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return []string{}, nil
	}

	cities, err := s.cityRepo.SearchByName(ctx, q, suggestionLimit)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	activities, err := s.activityRepo.SearchByName(ctx, q, suggestionLimit)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]string, 0, len(cities)+len(activities))
	out = append(out, lo.Map(cities, func(c dbm.City, _ int) string { return c.Name })...)
	out = append(out, lo.Map(activities, func(a dbm.Activity, _ int) string { return a.Name })...)
	return out, nil
}

// SemanticSearch ranks activities by embedding distance and falls back to Search when
// embeddings are off, the query cannot be embedded, or nothing is close enough.
func (s *SearchService) SemanticSearch(ctx context.Context, query string) (*resp.SearchResponse, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return nil, fmt.Errorf("%w: search query is required", utils.ErrInvalidInput)
	}

	ids, err := s.embedder.Nearest(ctx, q, semanticLimit)
	if err != nil {
		if !errors.Is(err, ErrEmbeddingsDisabled) {
			s.log.Warn("Semantic search unavailable, using name search", "error", err)
		}
		return s.Search(ctx, q)
	}
	if len(ids) == 0 {
		return s.Search(ctx, q)
	}

	found, err := s.activityRepo.FindByIds(ctx, ids)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	// keep the distance order from the index
	byID := lo.KeyBy(found, func(a dbm.Activity) string { return a.ID.String() })
	ranked := lo.FilterMap(ids, func(id string, _ int) (dbm.Activity, bool) {
		a, ok := byID[id]
		return a, ok
	})
	if len(ranked) == 0 {
		return s.Search(ctx, q)
	}
	return s.activityResult(ctx, ranked)
}

func (s *SearchService) activityResult(ctx context.Context, activities []dbm.Activity) (*resp.SearchResponse, error) {
	cityIDs := lo.Uniq(lo.Map(activities, func(a dbm.Activity, _ int) string { return a.CityID.String() }))
	cities, err := s.cityRepo.FindByIds(ctx, cityIDs)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	exclude := lo.Map(activities, func(a dbm.Activity, _ int) string { return a.ID.String() })
	similar, err := s.activityRepo.ListSimilar(ctx, activities[0].Category, exclude, similarActivityLimit)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &resp.SearchResponse{
		Type:       resp.SearchTypeActivity,
		Cities:     toCityResponses(cities),
		Activities: toActivityResponses(activities),
		Similar:    toActivityResponses(similar),
	}, nil
}
