package services

import (
	"context"

	"github.com/google/uuid"

	dbm "globetrotter/internal/models/db_models"
	"globetrotter/internal/models/request_models"
	resp "globetrotter/internal/models/response_models"
	"globetrotter/internal/repositories"
	mem "globetrotter/pkg/memcache"
)

// Function-field doubles. Set only what a test needs; the call counters let tests assert
// that a collaborator was never reached.

type mockCatalog struct {
	listAll func(ctx context.Context) ([]dbm.Activity, error)
	calls   int
}

func (m *mockCatalog) ListAll(ctx context.Context) ([]dbm.Activity, error) {
	m.calls++
	return m.listAll(ctx)
}

var _ CatalogReader = (*mockCatalog)(nil)

type mockSectionWriter struct {
	createBulk func(ctx context.Context, sections []dbm.Section) error
	calls      int
	saved      []dbm.Section
}

func (m *mockSectionWriter) CreateBulk(ctx context.Context, sections []dbm.Section) error {
	m.calls++
	m.saved = sections
	if m.createBulk == nil {
		return nil
	}
	return m.createBulk(ctx, sections)
}

var _ SectionWriter = (*mockSectionWriter)(nil)

type mockGenerator struct {
	generate func(ctx context.Context, prompt request_models.ItineraryPrompt) (*resp.ItineraryProposal, error)
	calls    int
	prompt   request_models.ItineraryPrompt
}

func (m *mockGenerator) GenerateItinerary(ctx context.Context, prompt request_models.ItineraryPrompt) (*resp.ItineraryProposal, error) {
	m.calls++
	m.prompt = prompt
	return m.generate(ctx, prompt)
}

var _ ItineraryGenerator = (*mockGenerator)(nil)

type mockLocker struct {
	tryLock  func(ctx context.Context, tripID string) (func(), bool, error)
	released int
}

func (m *mockLocker) TryLock(ctx context.Context, tripID string) (func(), bool, error) {
	if m.tryLock != nil {
		return m.tryLock(ctx, tripID)
	}
	return func() { m.released++ }, true, nil
}

var _ mem.TripLocker = (*mockLocker)(nil)

type mockSectionRepo struct {
	createBulk func(ctx context.Context, sections []dbm.Section) error
	findById   func(ctx context.Context, id string) (*dbm.Section, error)
	listByTrip func(ctx context.Context, tripId string) ([]dbm.Section, error)
	replace    func(ctx context.Context, section *dbm.Section) (bool, error)
	delete     func(ctx context.Context, id string) (bool, error)
}

func (m *mockSectionRepo) CreateBulk(ctx context.Context, sections []dbm.Section) error {
	return m.createBulk(ctx, sections)
}
func (m *mockSectionRepo) FindById(ctx context.Context, id string) (*dbm.Section, error) {
	return m.findById(ctx, id)
}
func (m *mockSectionRepo) ListByTrip(ctx context.Context, tripId string) ([]dbm.Section, error) {
	return m.listByTrip(ctx, tripId)
}
func (m *mockSectionRepo) Replace(ctx context.Context, section *dbm.Section) (bool, error) {
	return m.replace(ctx, section)
}
func (m *mockSectionRepo) Delete(ctx context.Context, id string) (bool, error) {
	return m.delete(ctx, id)
}

var _ repositories.SectionRepository = (*mockSectionRepo)(nil)

type mockTripReader struct {
	findById func(ctx context.Context, id string) (*dbm.Trip, error)
	calls    int
}

func (m *mockTripReader) FindById(ctx context.Context, id string) (*dbm.Trip, error) {
	m.calls++
	return m.findById(ctx, id)
}

var _ TripReader = (*mockTripReader)(nil)

// ownedTrips reports every trip id as belonging to owner.
func ownedTrips(owner uuid.UUID) *mockTripReader {
	return &mockTripReader{findById: func(_ context.Context, id string) (*dbm.Trip, error) {
		trip := &dbm.Trip{AccountID: owner}
		trip.ID = uuid.MustParse(id)
		return trip, nil
	}}
}

type mockChatAssistant struct {
	reply        func(ctx context.Context, conversation []request_models.ChatMessage) (string, error)
	calls        int
	conversation []request_models.ChatMessage
}

func (m *mockChatAssistant) Reply(ctx context.Context, conversation []request_models.ChatMessage) (string, error) {
	m.calls++
	m.conversation = conversation
	return m.reply(ctx, conversation)
}

var _ ChatAssistant = (*mockChatAssistant)(nil)
