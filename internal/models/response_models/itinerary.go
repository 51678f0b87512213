package response_models

import "encoding/json"

// ItineraryProposal is the candidate itinerary returned by a generator.
// A payload without "sections" decodes to an empty list.
type ItineraryProposal struct {
	Sections []SectionProposal `json:"sections"`
}

type SectionProposal struct {
	Name        string                `json:"name"`
	Description string                `json:"description"`
	Budget      *float64              `json:"budget,omitempty"`
	StartDate   string                `json:"start_date"`
	EndDate     string                `json:"end_date"`
	Activities  []ActivityRefProposal `json:"activities"`
}

// ActivityRefProposal carries an explicit activity id, a free-text name, or neither.
type ActivityRefProposal struct {
	ActivityID *string `json:"activityId,omitempty"`
	Name       *string `json:"name,omitempty"`
}

// UnmarshalJSON keeps only string-valued fields. A number, object or array in either field,
// or a slot that is not an object, leaves the reference empty instead of failing the decode.
func (a *ActivityRefProposal) UnmarshalJSON(data []byte) error {
	*a = ActivityRefProposal{}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil
	}
	a.ActivityID = stringField(raw["activityId"])
	a.Name = stringField(raw["name"])
	return nil
}

func stringField(raw json.RawMessage) *string {
	if len(raw) == 0 {
		return nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil
	}
	return &s
}

type ItineraryResult struct {
	Count    int               `json:"count"`
	Sections []SectionResponse `json:"sections"`
}
