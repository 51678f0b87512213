package utils

import (
	"bytes"
	"encoding/json"
	"fmt"

	"globetrotter/internal/models/response_models"
)

// DecodeItinerary parses a generator payload. Valid JSON that is not an object, or an object
// without "sections", yields an empty itinerary. Invalid JSON or a mistyped sections list is an error.
func DecodeItinerary(data []byte) (*response_models.ItineraryProposal, error) {
	data = stripCodeFence(data)
	if !json.Valid(data) {
		return nil, fmt.Errorf("itinerary payload is not valid JSON")
	}

	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		return &response_models.ItineraryProposal{Sections: []response_models.SectionProposal{}}, nil
	}

	out := &response_models.ItineraryProposal{Sections: []response_models.SectionProposal{}}
	raw, ok := top["sections"]
	if !ok || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return out, nil
	}
	if err := json.Unmarshal(raw, &out.Sections); err != nil {
		return nil, fmt.Errorf("decode itinerary sections: %w", err)
	}
	if out.Sections == nil {
		out.Sections = []response_models.SectionProposal{}
	}
	return out, nil
}

// LLMs sometimes wrap JSON in a markdown fence even when told not to.
func stripCodeFence(data []byte) []byte {
	trimmed := bytes.TrimSpace(data)
	if !bytes.HasPrefix(trimmed, []byte("```")) {
		return trimmed
	}
	trimmed = bytes.TrimPrefix(trimmed, []byte("```"))
	if nl := bytes.IndexByte(trimmed, '\n'); nl >= 0 {
		trimmed = trimmed[nl+1:]
	}
	trimmed = bytes.TrimSuffix(bytes.TrimSpace(trimmed), []byte("```"))
	return bytes.TrimSpace(trimmed)
}
