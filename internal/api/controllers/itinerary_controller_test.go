package controllers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	dbm "globetrotter/internal/models/db_models"
	"globetrotter/internal/models/request_models"
	resp "globetrotter/internal/models/response_models"
	"globetrotter/internal/services"
	"globetrotter/pkg/logger"
	mem "globetrotter/pkg/memcache"
)

type stubCatalog struct{}

func (stubCatalog) ListAll(context.Context) ([]dbm.Activity, error) { return nil, nil }

type stubSectionWriter struct {
	calls int
}

func (s *stubSectionWriter) CreateBulk(context.Context, []dbm.Section) error {
	s.calls++
	return nil
}

type stubGenerator struct {
	proposal *resp.ItineraryProposal
}

func (s stubGenerator) GenerateItinerary(context.Context, request_models.ItineraryPrompt) (*resp.ItineraryProposal, error) {
	return s.proposal, nil
}

var (
	_ services.CatalogReader      = stubCatalog{}
	_ services.SectionWriter      = (*stubSectionWriter)(nil)
	_ services.ItineraryGenerator = stubGenerator{}
)

func TestCreateItineraryByAI_UnparsableProposalDateIsGeneric500(t *testing.T) {
	writer := &stubSectionWriter{}
	generator := stubGenerator{proposal: &resp.ItineraryProposal{Sections: []resp.SectionProposal{
		{Name: "Day 1", Description: "Arrival", StartDate: "tomorrow", EndDate: "2025-09-01"},
	}}}
	svc := services.NewItineraryService(stubCatalog{}, writer, generator, mem.NewKeyedLocks(0), time.Minute, logger.NewNop())

	r := gin.New()
	r.POST("/sections/create-itinerary-by-ai", NewItineraryController(svc).CreateItineraryByAI)

	w := do(r, http.MethodPost, "/sections/create-itinerary-by-ai",
		`{"name":"Paris","description":"museums","start_date":"2025-09-01","end_date":"2025-09-03","tripId":"`+uuid.NewString()+`"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	body := decodeEnvelope(t, w)
	assert.Equal(t, "Failed to create itinerary", body["error"])
	assert.NotContains(t, w.Body.String(), "tomorrow")
	assert.NotContains(t, w.Body.String(), "materialize")
	assert.Zero(t, writer.calls)
}
