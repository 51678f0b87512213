package request_models

type CreateTripRequest struct {
	Title       string `json:"title" binding:"required,max=200"`
	Description string `json:"description"`
	CoverPhoto  string `json:"coverPhoto"`
	StartDate   string `json:"startDate" binding:"required"`
	EndDate     string `json:"endDate" binding:"required"`
	IsPublic    bool   `json:"isPublic"`
}

type UpdateTripRequest struct {
	Title       *string `json:"title" binding:"omitempty,min=1,max=200"`
	Description *string `json:"description"`
	CoverPhoto  *string `json:"coverPhoto"`
	StartDate   *string `json:"startDate"`
	EndDate     *string `json:"endDate"`
	IsPublic    *bool   `json:"isPublic"`
}

type AddTripCityRequest struct {
	CityID    string `json:"cityId" binding:"required,uuid"`
	StartDate string `json:"startDate" binding:"required"`
	EndDate   string `json:"endDate" binding:"required"`
	Order     *int   `json:"order" binding:"required,gte=0"`
}
