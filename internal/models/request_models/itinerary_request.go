package request_models

import "globetrotter/internal/models/response_models"

// CreateItineraryRequest triggers AI itinerary generation for an existing trip.
type CreateItineraryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
	StartDate   string `json:"start_date" binding:"required"`
	EndDate     string `json:"end_date" binding:"required"`
	TripID      string `json:"tripId" binding:"required"`
}

// ItineraryPrompt is what an itinerary generator receives. The JSON form is the body sent to
// the external itinerary service.
type ItineraryPrompt struct {
	Name        string                             `json:"name"`
	Description string                             `json:"description"`
	StartDate   string                             `json:"start_date"`
	EndDate     string                             `json:"end_date"`
	Activities  []response_models.ActivityResponse `json:"activities"`
}
