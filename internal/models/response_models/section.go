package response_models

import "time"

type SectionActivityResponse struct {
	ActivityID *string `json:"activityId"`
}

type SectionResponse struct {
	ID          string                    `json:"id"`
	TripID      string                    `json:"tripId"`
	Name        string                    `json:"name"`
	Description string                    `json:"description"`
	Budget      float64                   `json:"budget"`
	StartDate   time.Time                 `json:"startDate"`
	EndDate     time.Time                 `json:"endDate"`
	Activities  []SectionActivityResponse `json:"activities"`
	CreatedAt   int64                     `json:"createdAt"`
	UpdatedAt   int64                     `json:"updatedAt"`
}
