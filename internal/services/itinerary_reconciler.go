package services

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	dbm "globetrotter/internal/models/db_models"
	resp "globetrotter/internal/models/response_models"
	"globetrotter/pkg/utils"
)

// ActivityIndex maps a normalized activity name to its id. Built once per reconciliation
// run and read-only afterwards.
type ActivityIndex map[string]uuid.UUID

// NormalizeActivityName trims surrounding whitespace and lowercases. Nothing else.
func NormalizeActivityName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// BuildActivityIndex indexes the whole catalog. When two activities normalize to the same
// key the later one in catalog order wins.
func BuildActivityIndex(catalog []dbm.Activity) ActivityIndex {
	index := make(ActivityIndex, len(catalog))
	for _, a := range catalog {
		index[NormalizeActivityName(a.Name)] = a.ID
	}
	return index
}

func (idx ActivityIndex) Lookup(name string) (uuid.UUID, bool) {
	key := NormalizeActivityName(name)
	if key == "" {
		return uuid.Nil, false
	}
	id, ok := idx[key]
	return id, ok
}

// acceptProposedActivityID decides whether an id echoed by the generator is stored as is.
// Any well-formed id is trusted; it is not checked against the catalog.
func acceptProposedActivityID(raw string) (uuid.UUID, bool) {
	if raw == "" {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// ResolveActivityRef returns the activity id to store for one proposed slot, or nil.
// Order: usable explicit id, then name lookup, then nil.
func ResolveActivityRef(ref resp.ActivityRefProposal, index ActivityIndex) *uuid.UUID {
	if ref.ActivityID != nil {
		if id, ok := acceptProposedActivityID(*ref.ActivityID); ok {
			return &id
		}
	}
	if ref.Name != nil {
		if id, ok := index.Lookup(*ref.Name); ok {
			return &id
		}
	}
	return nil
}

// MaterializeSections turns proposals into section records for tripID, one per proposal and
// in the same order. A proposal date that cannot be parsed fails the whole batch.
func MaterializeSections(tripID uuid.UUID, proposals []resp.SectionProposal, index ActivityIndex) ([]dbm.Section, error) {
	sections := make([]dbm.Section, 0, len(proposals))
	for i, p := range proposals {
		start, err := utils.ParseDate(p.StartDate)
		if err != nil {
			return nil, fmt.Errorf("section %d start_date: %w", i, err)
		}
		end, err := utils.ParseDate(p.EndDate)
		if err != nil {
			return nil, fmt.Errorf("section %d end_date: %w", i, err)
		}

		budget := 0.0
		if p.Budget != nil {
			budget = *p.Budget
		}

		slots := make([]dbm.SectionActivity, 0, len(p.Activities))
		for pos, ref := range p.Activities {
			slots = append(slots, dbm.SectionActivity{
				Position:   pos,
				ActivityID: ResolveActivityRef(ref, index),
			})
		}

		sections = append(sections, dbm.Section{
			TripID:      tripID,
			Name:        p.Name,
			Description: p.Description,
			Budget:      budget,
			StartDate:   start,
			EndDate:     end,
			Activities:  slots,
		})
	}
	return sections, nil
}
