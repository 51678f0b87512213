package request_models

type SectionActivityRequest struct {
	ActivityID *string `json:"activityId"`
}

// SectionRequest is one section in a direct create call. Required fields are checked by the
// service so a batch can be rejected as a whole.
type SectionRequest struct {
	TripID      string                   `json:"tripId"`
	Name        string                   `json:"name"`
	Description string                   `json:"description"`
	Budget      *float64                 `json:"budget"`
	StartDate   string                   `json:"startDate"`
	EndDate     string                   `json:"endDate"`
	Activities  []SectionActivityRequest `json:"activities"`
}

type UpdateSectionRequest struct {
	Name        string                   `json:"name" binding:"required"`
	Description string                   `json:"description" binding:"required"`
	Budget      *float64                 `json:"budget" binding:"omitempty,gte=0"`
	StartDate   string                   `json:"startDate" binding:"required"`
	EndDate     string                   `json:"endDate" binding:"required"`
	Activities  []SectionActivityRequest `json:"activities"`
}
