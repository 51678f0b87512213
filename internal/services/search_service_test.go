package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dbm "globetrotter/internal/models/db_models"
	resp "globetrotter/internal/models/response_models"
	"globetrotter/internal/repositories"
	"globetrotter/pkg/logger"
	"globetrotter/pkg/utils"
)

func newSearchFixture(t *testing.T) SearchServiceInterface {
	t.Helper()
	ctx := context.Background()
	db := newTestDB(t)

	cities := repositories.NewCityRepository(db)
	activities := repositories.NewActivityRepository(db)

	paris := dbm.City{Name: "Paris", Country: "France", PopularityScore: 90}
	rome := dbm.City{Name: "Rome", Country: "Italy", PopularityScore: 80}
	require.NoError(t, cities.Create(ctx, &paris))
	require.NoError(t, cities.Create(ctx, &rome))
	for _, a := range []dbm.Activity{
		{Name: "Louvre Museum", Category: dbm.CategoryCulture, CityID: paris.ID},
		{Name: "Vatican Museums", Category: dbm.CategoryCulture, CityID: rome.ID},
		{Name: "Colosseum", Category: dbm.CategorySightseeing, CityID: rome.ID},
		{Name: "Opera Garnier", Category: dbm.CategoryCulture, CityID: paris.ID},
	} {
		require.NoError(t, activities.Create(ctx, &a))
	}

	return NewSearchService(cities, activities, NewDisabledEmbedder(), logger.NewNop())
}

func TestSearchService_CityMatch(t *testing.T) {
	svc := newSearchFixture(t)

	got, err := svc.Search(context.Background(), "  paris ")
	require.NoError(t, err)
	assert.Equal(t, resp.SearchTypeCity, got.Type)
	require.NotNil(t, got.City)
	assert.Equal(t, "Paris", got.City.Name)
	assert.Len(t, got.Activities, 2)
}

func TestSearchService_ActivityMatch(t *testing.T) {
	svc := newSearchFixture(t)

	got, err := svc.Search(context.Background(), "museum")
	require.NoError(t, err)
	assert.Equal(t, resp.SearchTypeActivity, got.Type)
	assert.Len(t, got.Activities, 2)
	assert.Len(t, got.Cities, 2)
	require.Len(t, got.Similar, 1)
	assert.Equal(t, "Opera Garnier", got.Similar[0].Name)
}

func TestSearchService_Errors(t *testing.T) {
	svc := newSearchFixture(t)

	_, err := svc.Search(context.Background(), "   ")
	assert.ErrorIs(t, err, utils.ErrInvalidInput)

	_, err = svc.Search(context.Background(), "atlantis")
	assert.ErrorIs(t, err, utils.ErrNoSearchResults)
}

func TestSearchService_Suggestions(t *testing.T) {
	svc := newSearchFixture(t)

	got, err := svc.Suggestions(context.Background(), "o")
	require.NoError(t, err)
	assert.Contains(t, got, "Rome")
	assert.Contains(t, got, "Colosseum")

	empty, err := svc.Suggestions(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestSearchService_SemanticFallsBackWhenDisabled(t *testing.T) {
	svc := newSearchFixture(t)

	got, err := svc.SemanticSearch(context.Background(), "colosseum")
	require.NoError(t, err)
	assert.Equal(t, resp.SearchTypeActivity, got.Type)
	require.Len(t, got.Activities, 1)
	assert.Equal(t, "Colosseum", got.Activities[0].Name)
}

func TestNormalizeCategory(t *testing.T) {
	assert.Equal(t, dbm.CategoryFood, NormalizeCategory(" Food "))
	assert.Equal(t, dbm.CategoryCulture, NormalizeCategory("CULTURE"))
	assert.Equal(t, dbm.CategoryOther, NormalizeCategory("nightlife"))
	assert.Equal(t, dbm.CategoryOther, NormalizeCategory(""))
}
