package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	dbm "globetrotter/internal/models/db_models"
	"globetrotter/internal/models/request_models"
	resp "globetrotter/internal/models/response_models"
	"globetrotter/internal/repositories"
	"globetrotter/pkg/logger"
	"globetrotter/pkg/utils"
)

type TripServiceInterface interface {
	CreateTrip(ctx context.Context, accountId string, req request_models.CreateTripRequest) (*resp.TripResponse, error)
	ListMyTrips(ctx context.Context, accountId string) ([]resp.TripResponse, error)
	ListPublicTrips(ctx context.Context, limit int) ([]resp.TripResponse, error)
	GetTrip(ctx context.Context, accountId, tripId string) (*resp.TripResponse, error)
	UpdateTrip(ctx context.Context, accountId, tripId string, req request_models.UpdateTripRequest) (*resp.TripResponse, error)
	DeleteTrip(ctx context.Context, accountId, tripId string) error
	AddCity(ctx context.Context, accountId, tripId string, req request_models.AddTripCityRequest) (*resp.TripResponse, error)
	RemoveCity(ctx context.Context, accountId, tripId, visitId string) error
	ExportCalendar(ctx context.Context, accountId, tripId string) ([]byte, string, error)
}

type TripService struct {
	tripRepo repositories.TripRepository
	cityRepo repositories.CityRepository
	calendar CalendarExporter
	log      *logger.Logger
	now      func() time.Time
}

func NewTripService(
	tripRepo repositories.TripRepository,
	cityRepo repositories.CityRepository,
	calendar CalendarExporter,
	log *logger.Logger,
) TripServiceInterface {
	return &TripService{
		tripRepo: tripRepo,
		cityRepo: cityRepo,
		calendar: calendar,
		log:      log.With("service", "TripService"),
		now:      time.Now,
	}
}

// DeriveTripStatus computes status from the date range. Both ends are inclusive calendar days.
func DeriveTripStatus(start, end, now time.Time) string {
	today := utils.StartOfDay(now)
	switch {
	case today.Before(utils.StartOfDay(start)):
		return dbm.TripStatusUpcoming
	case today.After(utils.StartOfDay(end)):
		return dbm.TripStatusCompleted
	default:
		return dbm.TripStatusOngoing
	}
}

func (s *TripService) CreateTrip(ctx context.Context, accountId string, req request_models.CreateTripRequest) (*resp.TripResponse, error) {
	owner, err := uuid.Parse(accountId)
	if err != nil {
		return nil, utils.ErrUnauthorized
	}
	if strings.TrimSpace(req.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", utils.ErrInvalidInput)
	}
	start, end, err := utils.ParseDateRange(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	trip := &dbm.Trip{
		AccountID:   owner,
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		CoverPhoto:  req.CoverPhoto,
		StartDate:   start,
		EndDate:     end,
		IsPublic:    req.IsPublic,
		Status:      DeriveTripStatus(start, end, s.now()),
	}
	if err := s.tripRepo.Create(ctx, trip); err != nil {
		s.log.Error("Failed to create trip", "account_id", accountId, "error", err)
		return nil, utils.ErrDatabaseError
	}
	out := s.toTripResponse(*trip)
	return &out, nil
}

func (s *TripService) ListMyTrips(ctx context.Context, accountId string) ([]resp.TripResponse, error) {
	trips, err := s.tripRepo.ListByAccount(ctx, accountId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return lo.Map(trips, func(t dbm.Trip, _ int) resp.TripResponse { return s.toTripResponse(t) }), nil
}

func (s *TripService) ListPublicTrips(ctx context.Context, limit int) ([]resp.TripResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	trips, err := s.tripRepo.ListPublic(ctx, limit)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return lo.Map(trips, func(t dbm.Trip, _ int) resp.TripResponse { return s.toTripResponse(t) }), nil
}

// GetTrip returns the trip with its sections. Public trips are readable by anyone.
func (s *TripService) GetTrip(ctx context.Context, accountId, tripId string) (*resp.TripResponse, error) {
	trip, err := s.loadDetails(ctx, tripId)
	if err != nil {
		return nil, err
	}
	if !trip.IsPublic && trip.AccountID.String() != accountId {
		return nil, utils.ErrTripNotFound
	}
	out := s.toTripResponse(*trip)
	out.Sections = toSectionResponses(trip.Sections)
	return &out, nil
}

func (s *TripService) UpdateTrip(ctx context.Context, accountId, tripId string, req request_models.UpdateTripRequest) (*resp.TripResponse, error) {
	trip, err := s.loadOwned(ctx, accountId, tripId)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		if strings.TrimSpace(*req.Title) == "" {
			return nil, fmt.Errorf("%w: title must not be empty", utils.ErrInvalidInput)
		}
		trip.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		trip.Description = *req.Description
	}
	if req.CoverPhoto != nil {
		trip.CoverPhoto = *req.CoverPhoto
	}
	if req.IsPublic != nil {
		trip.IsPublic = *req.IsPublic
	}
	if req.StartDate != nil {
		if trip.StartDate, err = utils.ParseDate(*req.StartDate); err != nil {
			return nil, err
		}
	}
	if req.EndDate != nil {
		if trip.EndDate, err = utils.ParseDate(*req.EndDate); err != nil {
			return nil, err
		}
	}
	if trip.StartDate.After(trip.EndDate) {
		return nil, utils.ErrInvalidDateRange
	}
	trip.Status = DeriveTripStatus(trip.StartDate, trip.EndDate, s.now())

	if err := s.tripRepo.Update(ctx, trip); err != nil {
		s.log.Error("Failed to update trip", "trip_id", tripId, "error", err)
		return nil, utils.ErrDatabaseError
	}
	out := s.toTripResponse(*trip)
	return &out, nil
}

func (s *TripService) DeleteTrip(ctx context.Context, accountId, tripId string) error {
	if _, err := s.loadOwned(ctx, accountId, tripId); err != nil {
		return err
	}
	found, err := s.tripRepo.Delete(ctx, tripId)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if !found {
		return utils.ErrTripNotFound
	}
	return nil
}

func (s *TripService) AddCity(ctx context.Context, accountId, tripId string, req request_models.AddTripCityRequest) (*resp.TripResponse, error) {
	trip, err := s.loadOwned(ctx, accountId, tripId)
	if err != nil {
		return nil, err
	}
	if req.Order == nil || *req.Order < 0 {
		return nil, fmt.Errorf("%w: order must be zero or greater", utils.ErrInvalidInput)
	}
	cityID, err := uuid.Parse(req.CityID)
	if err != nil {
		return nil, fmt.Errorf("%w: cityId is not a valid id", utils.ErrInvalidInput)
	}
	start, end, err := utils.ParseDateRange(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	city, err := s.cityRepo.FindById(ctx, cityID.String())
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if city == nil {
		return nil, utils.ErrCityNotFound
	}

	visit := &dbm.TripCity{
		TripID:    trip.ID,
		CityID:    cityID,
		StartDate: start,
		EndDate:   end,
		Position:  *req.Order,
	}
	if err := s.tripRepo.AddCity(ctx, visit); err != nil {
		s.log.Error("Failed to add city to trip", "trip_id", tripId, "city_id", cityID, "error", err)
		return nil, utils.ErrDatabaseError
	}

	refreshed, err := s.tripRepo.FindById(ctx, tripId)
	if err != nil || refreshed == nil {
		return nil, utils.ErrDatabaseError
	}
	out := s.toTripResponse(*refreshed)
	return &out, nil
}

func (s *TripService) RemoveCity(ctx context.Context, accountId, tripId, visitId string) error {
	if _, err := s.loadOwned(ctx, accountId, tripId); err != nil {
		return err
	}
	if _, err := uuid.Parse(visitId); err != nil {
		return utils.ErrTripCityNotFound
	}
	found, err := s.tripRepo.RemoveCity(ctx, tripId, visitId)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if !found {
		return utils.ErrTripCityNotFound
	}
	return nil
}

// ExportCalendar renders the trip as an iCalendar document and a suggested file name.
func (s *TripService) ExportCalendar(ctx context.Context, accountId, tripId string) ([]byte, string, error) {
	trip, err := s.loadDetails(ctx, tripId)
	if err != nil {
		return nil, "", err
	}
	if !trip.IsPublic && trip.AccountID.String() != accountId {
		return nil, "", utils.ErrTripNotFound
	}
	body, err := s.calendar.Export(*trip)
	if err != nil {
		s.log.Error("Failed to render calendar", "trip_id", tripId, "error", err)
		return nil, "", err
	}
	return body, calendarFileName(trip.Title), nil
}

func (s *TripService) loadDetails(ctx context.Context, tripId string) (*dbm.Trip, error) {
	if _, err := uuid.Parse(tripId); err != nil {
		return nil, utils.ErrTripNotFound
	}
	trip, err := s.tripRepo.FindDetailsById(ctx, tripId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}
	return trip, nil
}

// loadOwned hides other users' trips behind not-found.
func (s *TripService) loadOwned(ctx context.Context, accountId, tripId string) (*dbm.Trip, error) {
	if _, err := uuid.Parse(tripId); err != nil {
		return nil, utils.ErrTripNotFound
	}
	trip, err := s.tripRepo.FindById(ctx, tripId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil || trip.AccountID.String() != accountId {
		return nil, utils.ErrTripNotFound
	}
	return trip, nil
}

func (s *TripService) toTripResponse(t dbm.Trip) resp.TripResponse {
	return resp.TripResponse{
		ID:          t.ID.String(),
		UserID:      t.AccountID.String(),
		Title:       t.Title,
		Description: t.Description,
		CoverPhoto:  t.CoverPhoto,
		StartDate:   t.StartDate,
		EndDate:     t.EndDate,
		IsPublic:    t.IsPublic,
		Status:      DeriveTripStatus(t.StartDate, t.EndDate, s.now()),
		Cities: lo.Map(t.Cities, func(v dbm.TripCity, _ int) resp.TripCityResponse {
			out := resp.TripCityResponse{
				ID:        v.ID.String(),
				CityID:    v.CityID.String(),
				StartDate: v.StartDate,
				EndDate:   v.EndDate,
				Order:     v.Position,
			}
			if v.City != nil {
				out.CityName = v.City.Name
				out.Country = v.City.Country
			}
			return out
		}),
		CreatedAt: t.CreatedAt,
	}
}

func calendarFileName(title string) string {
	slug := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		default:
			return '-'
		}
	}, strings.TrimSpace(title))
	slug = strings.Trim(slug, "-")
	if slug == "" {
		slug = "trip"
	}
	return slug + ".ics"
}
