package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"globetrotter/internal/models/request_models"
	"globetrotter/internal/services"
	"globetrotter/pkg/utils"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
}

func NewItineraryController(itineraryService services.ItineraryServiceInterface) *ItineraryController {
	return &ItineraryController{
		itineraryService: itineraryService,
	}
}

// CreateItineraryByAI godoc
// @Summary Generate trip sections with AI
// @Description Asks the itinerary generator for a plan, matches proposed activities against the catalog and stores the resulting sections
// @Tags Sections
// @Accept json
// @Produce json
// @Param request body request_models.CreateItineraryRequest true "Trip name, description, date range and trip id"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Failure 429 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Security BearerAuth
// @Router /sections/create-itinerary-by-ai [post]
func (i *ItineraryController) CreateItineraryByAI(c *gin.Context) {
	var req request_models.CreateItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "name, description, start_date, end_date and tripId are required")
		return
	}

	result, err := i.itineraryService.CreateItineraryByAI(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, result.Sections, fmt.Sprintf("%d sections created successfully", result.Count))
}
