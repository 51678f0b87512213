package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	dbm "globetrotter/internal/models/db_models"
	"globetrotter/internal/models/request_models"
	resp "globetrotter/internal/models/response_models"
	"globetrotter/internal/repositories"
	"globetrotter/pkg/utils"
)

type CityServiceInterface interface {
	CreateCity(ctx context.Context, req request_models.CityRequest) (*resp.CityResponse, error)
	UpdateCity(ctx context.Context, id string, req request_models.CityRequest) (*resp.CityResponse, error)
	DeleteCity(ctx context.Context, id string) error
	GetCity(ctx context.Context, id string) (*resp.CityResponse, error)
	ListCities(ctx context.Context) ([]resp.CityResponse, error)
}

type CityService struct {
	cityRepo repositories.CityRepository
}

func NewCityService(cityRepo repositories.CityRepository) CityServiceInterface {
	return &CityService{cityRepo: cityRepo}
}

func (s *CityService) CreateCity(ctx context.Context, req request_models.CityRequest) (*resp.CityResponse, error) {
	city := &dbm.City{}
	applyCityRequest(city, req)
	if err := s.cityRepo.Create(ctx, city); err != nil {
		return nil, utils.ErrDatabaseError
	}
	out := toCityResponse(*city)
	return &out, nil
}

func (s *CityService) UpdateCity(ctx context.Context, id string, req request_models.CityRequest) (*resp.CityResponse, error) {
	city, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	applyCityRequest(city, req)
	if err := s.cityRepo.Update(ctx, city); err != nil {
		return nil, utils.ErrDatabaseError
	}
	out := toCityResponse(*city)
	return &out, nil
}

func (s *CityService) DeleteCity(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return utils.ErrCityNotFound
	}
	found, err := s.cityRepo.Delete(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if !found {
		return utils.ErrCityNotFound
	}
	return nil
}

func (s *CityService) GetCity(ctx context.Context, id string) (*resp.CityResponse, error) {
	city, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	out := toCityResponse(*city)
	return &out, nil
}

func (s *CityService) ListCities(ctx context.Context) ([]resp.CityResponse, error) {
	cities, err := s.cityRepo.List(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return toCityResponses(cities), nil
}

func (s *CityService) find(ctx context.Context, id string) (*dbm.City, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, utils.ErrCityNotFound
	}
	city, err := s.cityRepo.FindById(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if city == nil {
		return nil, utils.ErrCityNotFound
	}
	return city, nil
}

func applyCityRequest(city *dbm.City, req request_models.CityRequest) {
	city.Name = strings.TrimSpace(req.Name)
	city.Country = strings.TrimSpace(req.Country)
	city.CostIndex = req.CostIndex
	city.PopularityScore = req.PopularityScore
	city.Description = req.Description
	city.Images = datatypes.NewJSONSlice(req.Images)
}
