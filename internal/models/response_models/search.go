package response_models

const (
	SearchTypeCity     = "city"
	SearchTypeActivity = "activity"
)

type SearchResponse struct {
	Type       string             `json:"type"`
	City       *CityResponse      `json:"city,omitempty"`
	Cities     []CityResponse     `json:"cities,omitempty"`
	Activities []ActivityResponse `json:"activities"`
	Similar    []ActivityResponse `json:"similarActivities,omitempty"`
}
