package response_models

type CityResponse struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Country         string   `json:"country"`
	CostIndex       float64  `json:"costIndex"`
	PopularityScore float64  `json:"popularityScore"`
	Description     string   `json:"description"`
	Images          []string `json:"images"`
}

type ActivityResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	CityID      string   `json:"cityId"`
	Category    string   `json:"category"`
	Cost        *float64 `json:"cost,omitempty"`
	Duration    *float64 `json:"duration,omitempty"`
	Images      []string `json:"images"`
}
