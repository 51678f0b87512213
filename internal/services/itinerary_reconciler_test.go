package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dbm "globetrotter/internal/models/db_models"
	resp "globetrotter/internal/models/response_models"
	"globetrotter/pkg/utils"
)

func strPtr(s string) *string { return &s }

func activity(id uuid.UUID, name string) dbm.Activity {
	a := dbm.Activity{Name: name}
	a.ID = id
	return a
}

func TestNormalizeActivityName(t *testing.T) {
	cases := map[string]string{
		"City Tour":       "city tour",
		"  CITY TOUR  ":   "city tour",
		"\tMusée d'Orsay": "musée d'orsay",
		"":                "",
		"   ":             "",
		"Tours, Tours!":   "tours, tours!",
	}
	for in, want := range cases {
		got := NormalizeActivityName(in)
		assert.Equal(t, want, got, "input %q", in)
		assert.Equal(t, got, NormalizeActivityName(got), "normalizing twice changed %q", in)
	}
}

func TestBuildActivityIndex_LastWriteWins(t *testing.T) {
	first, second := uuid.New(), uuid.New()

	index := BuildActivityIndex([]dbm.Activity{
		activity(first, "City Tour"),
		activity(second, "city tour"),
	})

	require.Len(t, index, 1)
	assert.Equal(t, second, index["city tour"])
}

func TestBuildActivityIndex_EmptyCatalog(t *testing.T) {
	index := BuildActivityIndex(nil)
	assert.Empty(t, index)

	_, ok := index.Lookup("anything")
	assert.False(t, ok)
}

func TestResolveActivityRef(t *testing.T) {
	tourID := uuid.New()
	index := BuildActivityIndex([]dbm.Activity{activity(tourID, "City Tour")})
	unknownID := uuid.New()

	tests := []struct {
		name string
		ref  resp.ActivityRefProposal
		want *uuid.UUID
	}{
		{
			name: "id wins over name and is not checked against the catalog",
			ref:  resp.ActivityRefProposal{ActivityID: strPtr(unknownID.String()), Name: strPtr("City Tour")},
			want: &unknownID,
		},
		{
			name: "name matches after trimming and lowercasing",
			ref:  resp.ActivityRefProposal{Name: strPtr("  CITY TOUR  ")},
			want: &tourID,
		},
		{
			name: "unknown name resolves to nil",
			ref:  resp.ActivityRefProposal{Name: strPtr("Nonexistent Activity")},
		},
		{
			name: "empty reference resolves to nil",
			ref:  resp.ActivityRefProposal{},
		},
		{
			name: "empty id falls through to the name",
			ref:  resp.ActivityRefProposal{ActivityID: strPtr(""), Name: strPtr("city tour")},
			want: &tourID,
		},
		{
			name: "malformed id falls through to the name",
			ref:  resp.ActivityRefProposal{ActivityID: strPtr("abc123"), Name: strPtr("City Tour")},
			want: &tourID,
		},
		{
			name: "malformed id without a name resolves to nil",
			ref:  resp.ActivityRefProposal{ActivityID: strPtr("abc123")},
		},
		{
			name: "whitespace-only name resolves to nil",
			ref:  resp.ActivityRefProposal{Name: strPtr("   ")},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ResolveActivityRef(tc.ref, index)
			if tc.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tc.want, *got)
		})
	}
}

func TestMaterializeSections(t *testing.T) {
	tripID := uuid.New()
	eiffel := uuid.New()
	index := BuildActivityIndex([]dbm.Activity{activity(eiffel, "Eiffel Tower")})
	budget := 120.5

	sections, err := MaterializeSections(tripID, []resp.SectionProposal{
		{
			Name:        "Day 1",
			Description: "Arrival",
			StartDate:   "2025-09-01",
			EndDate:     "2025-09-01",
			Activities: []resp.ActivityRefProposal{
				{Name: strPtr("eiffel tower")},
				{Name: strPtr("Unknown Spot")},
			},
		},
		{
			Name:        "Day 2",
			Description: "Museums",
			Budget:      &budget,
			StartDate:   "2025-09-02T00:00:00Z",
			EndDate:     "2025-09-02",
		},
	}, index)
	require.NoError(t, err)
	require.Len(t, sections, 2)

	day1 := sections[0]
	assert.Equal(t, tripID, day1.TripID)
	assert.Equal(t, "Day 1", day1.Name)
	assert.Equal(t, "Arrival", day1.Description)
	assert.Zero(t, day1.Budget)
	assert.Equal(t, "2025-09-01", utils.FormatDate(day1.StartDate))
	require.Len(t, day1.Activities, 2)
	require.NotNil(t, day1.Activities[0].ActivityID)
	assert.Equal(t, eiffel, *day1.Activities[0].ActivityID)
	assert.Nil(t, day1.Activities[1].ActivityID)
	assert.Equal(t, 0, day1.Activities[0].Position)
	assert.Equal(t, 1, day1.Activities[1].Position)

	day2 := sections[1]
	assert.Equal(t, budget, day2.Budget)
	assert.Empty(t, day2.Activities)
}

func TestMaterializeSections_BadDateFailsBatch(t *testing.T) {
	_, err := MaterializeSections(uuid.New(), []resp.SectionProposal{
		{Name: "ok", StartDate: "2025-09-01", EndDate: "2025-09-01"},
		{Name: "bad", StartDate: "next tuesday", EndDate: "2025-09-02"},
	}, ActivityIndex{})

	require.Error(t, err)
	assert.ErrorIs(t, err, utils.ErrInvalidDate)
}
