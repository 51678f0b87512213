package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	dbm "globetrotter/internal/models/db_models"
	"globetrotter/internal/models/request_models"
	resp "globetrotter/internal/models/response_models"
	"globetrotter/pkg/logger"
	mem "globetrotter/pkg/memcache"
	"globetrotter/pkg/utils"
)

// ItineraryGenerator produces a candidate itinerary for a trip. Implementations live in
// pkg/utils (external HTTP service, OpenAI, Gemini).
type ItineraryGenerator interface {
	GenerateItinerary(ctx context.Context, prompt request_models.ItineraryPrompt) (*resp.ItineraryProposal, error)
}

// CatalogReader is the slice of the activity repository the reconciliation needs.
type CatalogReader interface {
	ListAll(ctx context.Context) ([]dbm.Activity, error)
}

// SectionWriter persists a batch of sections atomically.
type SectionWriter interface {
	CreateBulk(ctx context.Context, sections []dbm.Section) error
}

type ItineraryServiceInterface interface {
	CreateItineraryByAI(ctx context.Context, req request_models.CreateItineraryRequest) (*resp.ItineraryResult, error)
}

type ItineraryService struct {
	catalog   CatalogReader
	sections  SectionWriter
	generator ItineraryGenerator
	locker    mem.TripLocker
	timeout   time.Duration
	log       *logger.Logger
}

func NewItineraryService(
	catalog CatalogReader,
	sections SectionWriter,
	generator ItineraryGenerator,
	locker mem.TripLocker,
	generateTimeout time.Duration,
	log *logger.Logger,
) ItineraryServiceInterface {
	return &ItineraryService{
		catalog:   catalog,
		sections:  sections,
		generator: generator,
		locker:    locker,
		timeout:   generateTimeout,
		log:       log.With("service", "ItineraryService"),
	}
}

// CreateItineraryByAI generates sections for a trip and stores them. Every failure after
// validation is reported as ErrItineraryGeneration; the failing stage only shows in logs.
func (s *ItineraryService) CreateItineraryByAI(ctx context.Context, req request_models.CreateItineraryRequest) (*resp.ItineraryResult, error) {
	tripID, err := validateItineraryRequest(req)
	if err != nil {
		return nil, err
	}

	release, ok, err := s.locker.TryLock(ctx, tripID.String())
	if err != nil {
		return nil, s.fail("lock", tripID, err)
	}
	if !ok {
		s.log.Warn("Itinerary generation rejected, trip is busy", "trip_id", tripID)
		return nil, utils.ErrItineraryInProgress
	}
	defer release()

	started := time.Now()

	catalog, err := s.catalog.ListAll(ctx)
	if err != nil {
		return nil, s.fail("catalog", tripID, err)
	}
	index := BuildActivityIndex(catalog)

	proposal, err := s.generate(ctx, request_models.ItineraryPrompt{
		Name:        req.Name,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Activities:  toActivityResponses(catalog),
	})
	if err != nil {
		return nil, s.fail("generator", tripID, err)
	}
	if proposal == nil {
		proposal = &resp.ItineraryProposal{}
	}

	sections, err := MaterializeSections(tripID, proposal.Sections, index)
	if err != nil {
		return nil, s.fail("materialize", tripID, err)
	}

	if err := s.sections.CreateBulk(ctx, sections); err != nil {
		return nil, s.fail("persist", tripID, err)
	}

	unresolved := 0
	for _, sec := range sections {
		for _, slot := range sec.Activities {
			if slot.ActivityID == nil {
				unresolved++
			}
		}
	}
	s.log.Info("Itinerary created",
		"trip_id", tripID,
		"sections", len(sections),
		"catalog_size", len(catalog),
		"unresolved_activities", unresolved,
		"duration_ms", time.Since(started).Milliseconds(),
	)

	return &resp.ItineraryResult{
		Count:    len(sections),
		Sections: toSectionResponses(sections),
	}, nil
}

// generate bounds the provider call so the trip lock always outlives it. A zero timeout
// leaves ctx as is.
func (s *ItineraryService) generate(ctx context.Context, prompt request_models.ItineraryPrompt) (*resp.ItineraryProposal, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	return s.generator.GenerateItinerary(ctx, prompt)
}

func (s *ItineraryService) fail(stage string, tripID uuid.UUID, err error) error {
	s.log.Error("Itinerary generation failed", "stage", stage, "trip_id", tripID, "error", err)
	// The cause stays in the log; callers only see the generic sentinel.
	return fmt.Errorf("%w: %s", utils.ErrItineraryGeneration, stage)
}

func validateItineraryRequest(req request_models.CreateItineraryRequest) (uuid.UUID, error) {
	var missing []string
	for _, f := range []struct {
		name  string
		value string
	}{
		{"name", req.Name},
		{"description", req.Description},
		{"start_date", req.StartDate},
		{"end_date", req.EndDate},
		{"tripId", req.TripID},
	} {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return uuid.Nil, fmt.Errorf("%w: missing required fields: %s", utils.ErrInvalidInput, strings.Join(missing, ", "))
	}

	tripID, err := uuid.Parse(strings.TrimSpace(req.TripID))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: tripId is not a valid id", utils.ErrInvalidInput)
	}
	if _, _, err := utils.ParseDateRange(req.StartDate, req.EndDate); err != nil {
		return uuid.Nil, err
	}
	return tripID, nil
}
