package response_models

import "time"

type SeriesPoint struct {
	Bucket time.Time `json:"bucket"`
	Count  int64     `json:"count"`
}

type TopCity struct {
	CityID  string `json:"cityId"`
	Name    string `json:"name"`
	Country string `json:"country"`
	Visits  int64  `json:"visits"`
}

type TopActivity struct {
	ActivityID string  `json:"activityId"`
	Name       string  `json:"name"`
	Category   string  `json:"category"`
	Uses       int64   `json:"uses"`
	AvgCost    float64 `json:"avgCost"`
}

type AnalyticsResponse struct {
	From          time.Time     `json:"from"`
	To            time.Time     `json:"to"`
	Granularity   string        `json:"granularity"`
	TotalUsers    int64         `json:"totalUsers"`
	NewUsers      int64         `json:"newUsers"`
	TotalTrips    int64         `json:"totalTrips"`
	NewTrips      int64         `json:"newTrips"`
	TotalSections int64         `json:"totalSections"`
	TripsSeries   []SeriesPoint `json:"tripsSeries"`
	TopCities     []TopCity     `json:"topCities"`
	TopActivities []TopActivity `json:"topActivities"`
}
