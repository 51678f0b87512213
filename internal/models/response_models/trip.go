package response_models

import "time"

type TripCityResponse struct {
	ID        string    `json:"id"`
	CityID    string    `json:"cityId"`
	CityName  string    `json:"cityName,omitempty"`
	Country   string    `json:"country,omitempty"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	Order     int       `json:"order"`
}

type TripResponse struct {
	ID          string             `json:"id"`
	UserID      string             `json:"userId"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	CoverPhoto  string             `json:"coverPhoto,omitempty"`
	StartDate   time.Time          `json:"startDate"`
	EndDate     time.Time          `json:"endDate"`
	IsPublic    bool               `json:"isPublic"`
	Status      string             `json:"status"`
	Cities      []TripCityResponse `json:"cities"`
	Sections    []SectionResponse  `json:"sections,omitempty"`
	CreatedAt   int64              `json:"createdAt"`
}
