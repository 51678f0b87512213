package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	dbm "globetrotter/internal/models/db_models"
	"globetrotter/internal/models/request_models"
	resp "globetrotter/internal/models/response_models"
	"globetrotter/internal/repositories"
	"globetrotter/pkg/logger"
	"globetrotter/pkg/utils"
)

// Reads stay open so public trips can be browsed; writes require the trip owner.
type SectionServiceInterface interface {
	CreateSections(ctx context.Context, accountId string, reqs []request_models.SectionRequest) ([]resp.SectionResponse, error)
	GetSection(ctx context.Context, id string) (*resp.SectionResponse, error)
	ListTripSections(ctx context.Context, tripId string) ([]resp.SectionResponse, error)
	UpdateSection(ctx context.Context, accountId, id string, req request_models.UpdateSectionRequest) (*resp.SectionResponse, error)
	DeleteSection(ctx context.Context, accountId, id string) error
}

// TripReader is the slice of the trip repository needed for ownership checks.
type TripReader interface {
	FindById(ctx context.Context, id string) (*dbm.Trip, error)
}

type SectionService struct {
	sectionRepo repositories.SectionRepository
	trips       TripReader
	log         *logger.Logger
}

func NewSectionService(sectionRepo repositories.SectionRepository, trips TripReader, log *logger.Logger) SectionServiceInterface {
	return &SectionService{
		sectionRepo: sectionRepo,
		trips:       trips,
		log:         log.With("service", "SectionService"),
	}
}

// CreateSections validates every entry first; one bad entry rejects the whole batch.
// Every referenced trip must belong to accountId.
func (s *SectionService) CreateSections(ctx context.Context, accountId string, reqs []request_models.SectionRequest) ([]resp.SectionResponse, error) {
	if len(reqs) == 0 {
		return nil, fmt.Errorf("%w: at least one section is required", utils.ErrInvalidInput)
	}

	sections := make([]dbm.Section, 0, len(reqs))
	for i, r := range reqs {
		section, err := buildSection(r)
		if err != nil {
			return nil, fmt.Errorf("section %d: %w", i, err)
		}
		sections = append(sections, section)
	}

	checked := make(map[uuid.UUID]bool, 1)
	for _, sec := range sections {
		if checked[sec.TripID] {
			continue
		}
		if err := s.checkOwner(ctx, accountId, sec.TripID); err != nil {
			return nil, err
		}
		checked[sec.TripID] = true
	}

	if err := s.sectionRepo.CreateBulk(ctx, sections); err != nil {
		s.log.Error("Failed to create sections", "count", len(sections), "error", err)
		return nil, utils.ErrDatabaseError
	}
	return toSectionResponses(sections), nil
}

func (s *SectionService) GetSection(ctx context.Context, id string) (*resp.SectionResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, utils.ErrSectionNotFound
	}
	section, err := s.sectionRepo.FindById(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if section == nil {
		return nil, utils.ErrSectionNotFound
	}
	out := toSectionResponse(*section)
	return &out, nil
}

func (s *SectionService) ListTripSections(ctx context.Context, tripId string) ([]resp.SectionResponse, error) {
	if _, err := uuid.Parse(tripId); err != nil {
		return nil, fmt.Errorf("%w: tripId is not a valid id", utils.ErrInvalidInput)
	}
	sections, err := s.sectionRepo.ListByTrip(ctx, tripId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return toSectionResponses(sections), nil
}

func (s *SectionService) UpdateSection(ctx context.Context, accountId, id string, req request_models.UpdateSectionRequest) (*resp.SectionResponse, error) {
	existing, err := s.loadOwned(ctx, accountId, id)
	if err != nil {
		return nil, err
	}

	updated, err := buildSection(request_models.SectionRequest{
		TripID:      existing.TripID.String(),
		Name:        req.Name,
		Description: req.Description,
		Budget:      req.Budget,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Activities:  req.Activities,
	})
	if err != nil {
		return nil, err
	}
	updated.ID = existing.ID
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = utils.NowUnixSeconds()

	found, err := s.sectionRepo.Replace(ctx, &updated)
	if err != nil {
		s.log.Error("Failed to update section", "section_id", id, "error", err)
		return nil, utils.ErrDatabaseError
	}
	if !found {
		return nil, utils.ErrSectionNotFound
	}
	out := toSectionResponse(updated)
	return &out, nil
}

func (s *SectionService) DeleteSection(ctx context.Context, accountId, id string) error {
	if _, err := s.loadOwned(ctx, accountId, id); err != nil {
		return err
	}
	found, err := s.sectionRepo.Delete(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if !found {
		return utils.ErrSectionNotFound
	}
	return nil
}

// loadOwned hides sections of other users' trips behind not-found.
func (s *SectionService) loadOwned(ctx context.Context, accountId, id string) (*dbm.Section, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, utils.ErrSectionNotFound
	}
	section, err := s.sectionRepo.FindById(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if section == nil {
		return nil, utils.ErrSectionNotFound
	}
	if err := s.checkOwner(ctx, accountId, section.TripID); err != nil {
		if errors.Is(err, utils.ErrTripNotFound) {
			return nil, utils.ErrSectionNotFound
		}
		return nil, err
	}
	return section, nil
}

func (s *SectionService) checkOwner(ctx context.Context, accountId string, tripID uuid.UUID) error {
	trip, err := s.trips.FindById(ctx, tripID.String())
	if err != nil {
		return utils.ErrDatabaseError
	}
	if trip == nil || trip.AccountID.String() != accountId {
		s.log.Warn("Section write rejected, trip not owned by caller", "trip_id", tripID, "account_id", accountId)
		return utils.ErrTripNotFound
	}
	return nil
}

// buildSection checks required fields and converts a request into a record. Activity ids
// supplied directly must be well-formed; a null id is kept as an empty slot.
func buildSection(r request_models.SectionRequest) (dbm.Section, error) {
	var missing []string
	if strings.TrimSpace(r.TripID) == "" {
		missing = append(missing, "tripId")
	}
	if strings.TrimSpace(r.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(r.Description) == "" {
		missing = append(missing, "description")
	}
	if strings.TrimSpace(r.StartDate) == "" {
		missing = append(missing, "startDate")
	}
	if strings.TrimSpace(r.EndDate) == "" {
		missing = append(missing, "endDate")
	}
	if len(missing) > 0 {
		return dbm.Section{}, fmt.Errorf("%w: missing required fields: %s", utils.ErrInvalidInput, strings.Join(missing, ", "))
	}

	tripID, err := uuid.Parse(strings.TrimSpace(r.TripID))
	if err != nil {
		return dbm.Section{}, fmt.Errorf("%w: tripId is not a valid id", utils.ErrInvalidInput)
	}
	start, err := utils.ParseDate(r.StartDate)
	if err != nil {
		return dbm.Section{}, err
	}
	end, err := utils.ParseDate(r.EndDate)
	if err != nil {
		return dbm.Section{}, err
	}

	budget := 0.0
	if r.Budget != nil {
		if *r.Budget < 0 {
			return dbm.Section{}, fmt.Errorf("%w: budget must not be negative", utils.ErrInvalidInput)
		}
		budget = *r.Budget
	}

	slots := make([]dbm.SectionActivity, 0, len(r.Activities))
	for pos, a := range r.Activities {
		slot := dbm.SectionActivity{Position: pos}
		if a.ActivityID != nil && *a.ActivityID != "" {
			id, err := uuid.Parse(*a.ActivityID)
			if err != nil {
				return dbm.Section{}, fmt.Errorf("%w: activities[%d].activityId is not a valid id", utils.ErrInvalidInput, pos)
			}
			slot.ActivityID = &id
		}
		slots = append(slots, slot)
	}

	return dbm.Section{
		TripID:      tripID,
		Name:        r.Name,
		Description: r.Description,
		Budget:      budget,
		StartDate:   start,
		EndDate:     end,
		Activities:  slots,
	}, nil
}
