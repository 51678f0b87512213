package repositories_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dbm "globetrotter/internal/models/db_models"
	"globetrotter/internal/repositories"
)

func uuidPtr(id uuid.UUID) *uuid.UUID { return &id }

func newSection(tripID uuid.UUID, name string, start time.Time, slots ...*uuid.UUID) dbm.Section {
	s := dbm.Section{
		BaseModel:   dbm.BaseModel{ID: uuid.New()},
		TripID:      tripID,
		Name:        name,
		Description: name + " description",
		StartDate:   start,
		EndDate:     start,
	}
	for i, id := range slots {
		s.Activities = append(s.Activities, dbm.SectionActivity{Position: i, ActivityID: id})
	}
	return s
}

func TestSectionRepository_CreateBulkAndRead(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewSectionRepository(newTestDB(t))
	tripID := uuid.New()
	known, dangling := uuid.New(), uuid.New()
	day1 := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)

	sections := []dbm.Section{
		newSection(tripID, "Day 2", day1.AddDate(0, 0, 1)),
		newSection(tripID, "Day 1", day1, uuidPtr(known), nil, uuidPtr(dangling)),
	}
	require.NoError(t, repo.CreateBulk(ctx, sections))

	got, err := repo.FindById(ctx, sections[1].ID.String())
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Day 1", got.Name)
	assert.Zero(t, got.Budget)
	require.Len(t, got.Activities, 3)
	assert.Equal(t, known, *got.Activities[0].ActivityID)
	assert.Nil(t, got.Activities[1].ActivityID)
	// ids that match no activity are stored as is
	assert.Equal(t, dangling, *got.Activities[2].ActivityID)

	list, err := repo.ListByTrip(ctx, tripID.String())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Day 1", list[0].Name)
	assert.Equal(t, "Day 2", list[1].Name)

	other, err := repo.ListByTrip(ctx, uuid.NewString())
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestSectionRepository_CreateBulkEmpty(t *testing.T) {
	repo := repositories.NewSectionRepository(newTestDB(t))
	assert.NoError(t, repo.CreateBulk(context.Background(), nil))
}

func TestSectionRepository_CreateBulkIsAtomic(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := repositories.NewSectionRepository(db)
	tripID := uuid.New()
	day1 := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)

	first := newSection(tripID, "first", day1)
	require.NoError(t, repo.CreateBulk(ctx, []dbm.Section{first}))

	// the second entry reuses an existing primary key, so the whole batch must roll back
	fresh := newSection(tripID, "fresh", day1)
	clash := newSection(tripID, "clash", day1)
	clash.ID = first.ID
	err := repo.CreateBulk(ctx, []dbm.Section{fresh, clash})
	require.Error(t, err)

	list, err := repo.ListByTrip(ctx, tripID.String())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "first", list[0].Name)
}

func TestSectionRepository_ReplaceAndDelete(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewSectionRepository(newTestDB(t))
	tripID := uuid.New()
	day1 := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)

	section := newSection(tripID, "before", day1, uuidPtr(uuid.New()), uuidPtr(uuid.New()))
	require.NoError(t, repo.CreateBulk(ctx, []dbm.Section{section}))
	sectionID := section.ID

	replacement := newSection(tripID, "after", day1.AddDate(0, 0, 2), nil)
	replacement.ID = sectionID
	replacement.Budget = 75
	found, err := repo.Replace(ctx, &replacement)
	require.NoError(t, err)
	assert.True(t, found)

	got, err := repo.FindById(ctx, sectionID.String())
	require.NoError(t, err)
	assert.Equal(t, "after", got.Name)
	assert.Equal(t, 75.0, got.Budget)
	require.Len(t, got.Activities, 1)
	assert.Nil(t, got.Activities[0].ActivityID)

	missing := newSection(tripID, "ghost", day1)
	missing.ID = uuid.New()
	found, err = repo.Replace(ctx, &missing)
	require.NoError(t, err)
	assert.False(t, found)

	deleted, err := repo.Delete(ctx, sectionID.String())
	require.NoError(t, err)
	assert.True(t, deleted)

	got, err = repo.FindById(ctx, sectionID.String())
	require.NoError(t, err)
	assert.Nil(t, got)

	deleted, err = repo.Delete(ctx, sectionID.String())
	require.NoError(t, err)
	assert.False(t, deleted)
}
