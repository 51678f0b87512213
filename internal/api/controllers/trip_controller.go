package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"globetrotter/internal/models/request_models"
	"globetrotter/internal/services"
	"globetrotter/pkg/utils"
)

type TripController struct {
	tripService services.TripServiceInterface
}

func NewTripController(tripService services.TripServiceInterface) *TripController {
	return &TripController{
		tripService: tripService,
	}
}

// CreateTrip godoc
// @Summary Create a trip
// @Tags Trips
// @Accept json
// @Produce json
// @Param request body request_models.CreateTripRequest true "Trip payload"
// @Success 201 {object} response_models.TripResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips [post]
func (t *TripController) CreateTrip(c *gin.Context) {
	var req request_models.CreateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	trip, err := t.tripService.CreateTrip(c.Request.Context(), currentUserID(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, trip, "Trip created successfully")
}

// ListMyTrips godoc
// @Summary List the caller's trips
// @Tags Trips
// @Produce json
// @Success 200 {array} response_models.TripResponse
// @Security BearerAuth
// @Router /trips [get]
func (t *TripController) ListMyTrips(c *gin.Context) {
	trips, err := t.tripService.ListMyTrips(c.Request.Context(), currentUserID(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, trips, "Trips fetched successfully")
}

// ListPublicTrips godoc
// @Summary List public trips
// @Tags Trips
// @Produce json
// @Param limit query int false "Max trips" default(20) minimum(1) maximum(100)
// @Success 200 {array} response_models.TripResponse
// @Router /trips/public [get]
func (t *TripController) ListPublicTrips(c *gin.Context) {
	limit, ok := queryInt(c, "limit", 20, 100)
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, "Invalid limit (must be 1-100)")
		return
	}

	trips, err := t.tripService.ListPublicTrips(c.Request.Context(), limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, trips, "Trips fetched successfully")
}

// GetTrip godoc
// @Summary Get a trip with its city visits and sections
// @Tags Trips
// @Produce json
// @Param id path string true "Trip ID"
// @Success 200 {object} response_models.TripResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{id} [get]
func (t *TripController) GetTrip(c *gin.Context) {
	trip, err := t.tripService.GetTrip(c.Request.Context(), currentUserID(c), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, trip, "Trip fetched successfully")
}

// UpdateTrip godoc
// @Summary Update a trip
// @Tags Trips
// @Accept json
// @Produce json
// @Param id path string true "Trip ID"
// @Param request body request_models.UpdateTripRequest true "Fields to change"
// @Success 200 {object} response_models.TripResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{id} [put]
func (t *TripController) UpdateTrip(c *gin.Context) {
	var req request_models.UpdateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	trip, err := t.tripService.UpdateTrip(c.Request.Context(), currentUserID(c), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, trip, "Trip updated successfully")
}

// DeleteTrip godoc
// @Summary Delete a trip
// @Tags Trips
// @Produce json
// @Param id path string true "Trip ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{id} [delete]
func (t *TripController) DeleteTrip(c *gin.Context) {
	if err := t.tripService.DeleteTrip(c.Request.Context(), currentUserID(c), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Trip deleted successfully")
}

// AddCity godoc
// @Summary Add a city visit to a trip
// @Tags Trips
// @Accept json
// @Produce json
// @Param id path string true "Trip ID"
// @Param request body request_models.AddTripCityRequest true "City, date range and order"
// @Success 200 {object} response_models.TripResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{id}/cities [post]
func (t *TripController) AddCity(c *gin.Context) {
	var req request_models.AddTripCityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	trip, err := t.tripService.AddCity(c.Request.Context(), currentUserID(c), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, trip, "City added to trip")
}

// RemoveCity godoc
// @Summary Remove a city visit from a trip
// @Tags Trips
// @Produce json
// @Param id path string true "Trip ID"
// @Param visitId path string true "City visit ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{id}/cities/{visitId} [delete]
func (t *TripController) RemoveCity(c *gin.Context) {
	if err := t.tripService.RemoveCity(c.Request.Context(), currentUserID(c), c.Param("id"), c.Param("visitId")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "City removed from trip")
}

// ExportCalendar godoc
// @Summary Download the trip as an iCalendar file
// @Tags Trips
// @Produce text/calendar
// @Param id path string true "Trip ID"
// @Success 200 {file} file
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{id}/calendar.ics [get]
func (t *TripController) ExportCalendar(c *gin.Context) {
	data, fileName, err := t.tripService.ExportCalendar(c.Request.Context(), currentUserID(c), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", data)
}
