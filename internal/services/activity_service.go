package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"gorm.io/datatypes"

	dbm "globetrotter/internal/models/db_models"
	"globetrotter/internal/models/request_models"
	resp "globetrotter/internal/models/response_models"
	"globetrotter/internal/repositories"
	"globetrotter/pkg/logger"
	"globetrotter/pkg/utils"
)

type ActivityServiceInterface interface {
	CreateActivity(ctx context.Context, req request_models.ActivityRequest) (*resp.ActivityResponse, error)
	UpdateActivity(ctx context.Context, id string, req request_models.ActivityRequest) (*resp.ActivityResponse, error)
	DeleteActivity(ctx context.Context, id string) error
	GetActivity(ctx context.Context, id string) (*resp.ActivityResponse, error)
	ListActivities(ctx context.Context, cityId string) ([]resp.ActivityResponse, error)
}

type ActivityService struct {
	activityRepo repositories.ActivityRepository
	cityRepo     repositories.CityRepository
	embedder     ActivityEmbedder
	log          *logger.Logger
}

func NewActivityService(
	activityRepo repositories.ActivityRepository,
	cityRepo repositories.CityRepository,
	embedder ActivityEmbedder,
	log *logger.Logger,
) ActivityServiceInterface {
	return &ActivityService{
		activityRepo: activityRepo,
		cityRepo:     cityRepo,
		embedder:     embedder,
		log:          log.With("service", "ActivityService"),
	}
}

// NormalizeCategory lowercases the category and coerces anything unknown to "other".
func NormalizeCategory(category string) string {
	c := strings.ToLower(strings.TrimSpace(category))
	if lo.Contains(dbm.ActivityCategories, c) {
		return c
	}
	return dbm.CategoryOther
}

func (s *ActivityService) CreateActivity(ctx context.Context, req request_models.ActivityRequest) (*resp.ActivityResponse, error) {
	activity := &dbm.Activity{}
	if err := s.apply(ctx, activity, req); err != nil {
		return nil, err
	}
	if err := s.activityRepo.Create(ctx, activity); err != nil {
		s.log.Error("Failed to create activity", "error", err)
		return nil, utils.ErrDatabaseError
	}
	s.refreshEmbedding(ctx, *activity)
	out := toActivityResponse(*activity)
	return &out, nil
}

func (s *ActivityService) UpdateActivity(ctx context.Context, id string, req request_models.ActivityRequest) (*resp.ActivityResponse, error) {
	activity, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.apply(ctx, activity, req); err != nil {
		return nil, err
	}
	if err := s.activityRepo.Update(ctx, activity); err != nil {
		s.log.Error("Failed to update activity", "activity_id", id, "error", err)
		return nil, utils.ErrDatabaseError
	}
	s.refreshEmbedding(ctx, *activity)
	out := toActivityResponse(*activity)
	return &out, nil
}

// DeleteActivity leaves section slots that point at the activity untouched.
func (s *ActivityService) DeleteActivity(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return utils.ErrActivityNotFound
	}
	found, err := s.activityRepo.Delete(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if !found {
		return utils.ErrActivityNotFound
	}
	if err := s.embedder.Remove(ctx, id); err != nil {
		s.log.Warn("Failed to remove activity embedding", "activity_id", id, "error", err)
	}
	return nil
}

func (s *ActivityService) GetActivity(ctx context.Context, id string) (*resp.ActivityResponse, error) {
	activity, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	out := toActivityResponse(*activity)
	return &out, nil
}

func (s *ActivityService) ListActivities(ctx context.Context, cityId string) ([]resp.ActivityResponse, error) {
	var (
		activities []dbm.Activity
		err        error
	)
	if cityId == "" {
		activities, err = s.activityRepo.ListAll(ctx)
	} else {
		if _, perr := uuid.Parse(cityId); perr != nil {
			return nil, fmt.Errorf("%w: cityId is not a valid id", utils.ErrInvalidInput)
		}
		activities, err = s.activityRepo.ListByCity(ctx, cityId)
	}
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return toActivityResponses(activities), nil
}

func (s *ActivityService) find(ctx context.Context, id string) (*dbm.Activity, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, utils.ErrActivityNotFound
	}
	activity, err := s.activityRepo.FindById(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if activity == nil {
		return nil, utils.ErrActivityNotFound
	}
	return activity, nil
}

func (s *ActivityService) apply(ctx context.Context, activity *dbm.Activity, req request_models.ActivityRequest) error {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return fmt.Errorf("%w: name is required", utils.ErrInvalidInput)
	}
	if req.Cost != nil && *req.Cost < 0 {
		return fmt.Errorf("%w: cost must not be negative", utils.ErrInvalidInput)
	}
	if req.Duration != nil && *req.Duration < 0 {
		return fmt.Errorf("%w: duration must not be negative", utils.ErrInvalidInput)
	}
	cityID, err := uuid.Parse(req.CityID)
	if err != nil {
		return fmt.Errorf("%w: cityId is not a valid id", utils.ErrInvalidInput)
	}
	city, err := s.cityRepo.FindById(ctx, cityID.String())
	if err != nil {
		return utils.ErrDatabaseError
	}
	if city == nil {
		return utils.ErrCityNotFound
	}

	activity.Name = name
	activity.Description = req.Description
	activity.CityID = cityID
	activity.Category = NormalizeCategory(req.Category)
	activity.Cost = req.Cost
	activity.Duration = req.Duration
	activity.Images = datatypes.NewJSONSlice(req.Images)
	return nil
}

// Embedding refresh is best effort; the catalog write already succeeded.
func (s *ActivityService) refreshEmbedding(ctx context.Context, activity dbm.Activity) {
	if !s.embedder.Enabled() {
		return
	}
	if err := s.embedder.Refresh(ctx, activity); err != nil {
		s.log.Warn("Failed to refresh activity embedding", "activity_id", activity.ID, "error", err)
	}
}
