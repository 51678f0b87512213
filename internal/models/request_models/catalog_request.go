package request_models

type CityRequest struct {
	Name            string   `json:"name" binding:"required"`
	Country         string   `json:"country" binding:"required"`
	CostIndex       float64  `json:"costIndex" binding:"gte=0"`
	PopularityScore float64  `json:"popularityScore" binding:"gte=0"`
	Description     string   `json:"description"`
	Images          []string `json:"images"`
}

type ActivityRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	CityID      string   `json:"cityId" binding:"required,uuid"`
	Category    string   `json:"category"`
	Cost        *float64 `json:"cost"`
	Duration    *float64 `json:"duration"`
	Images      []string `json:"images"`
}
