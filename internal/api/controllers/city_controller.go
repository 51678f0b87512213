package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"globetrotter/internal/models/request_models"
	"globetrotter/internal/services"
	"globetrotter/pkg/utils"
)

type CityController struct {
	cityService services.CityServiceInterface
}

func NewCityController(cityService services.CityServiceInterface) *CityController {
	return &CityController{cityService: cityService}
}

// ListCities godoc
// @Summary List cities by popularity
// @Tags Cities
// @Produce json
// @Success 200 {array} response_models.CityResponse
// @Router /cities [get]
func (ct *CityController) ListCities(c *gin.Context) {
	cities, err := ct.cityService.ListCities(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, cities, "Cities fetched successfully")
}

// GetCity godoc
// @Summary Get a city
// @Tags Cities
// @Produce json
// @Param id path string true "City ID"
// @Success 200 {object} response_models.CityResponse
// @Failure 404 {object} utils.APIResponse
// @Router /cities/{id} [get]
func (ct *CityController) GetCity(c *gin.Context) {
	city, err := ct.cityService.GetCity(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, city, "City fetched successfully")
}

// CreateCity godoc
// @Summary Create a city
// @Tags Cities
// @Accept json
// @Produce json
// @Param request body request_models.CityRequest true "City payload"
// @Success 201 {object} response_models.CityResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/cities [post]
func (ct *CityController) CreateCity(c *gin.Context) {
	var req request_models.CityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	city, err := ct.cityService.CreateCity(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, city, "City created successfully")
}

// UpdateCity godoc
// @Summary Update a city
// @Tags Cities
// @Accept json
// @Produce json
// @Param id path string true "City ID"
// @Param request body request_models.CityRequest true "City payload"
// @Success 200 {object} response_models.CityResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/cities/{id} [put]
func (ct *CityController) UpdateCity(c *gin.Context) {
	var req request_models.CityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	city, err := ct.cityService.UpdateCity(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, city, "City updated successfully")
}

// DeleteCity godoc
// @Summary Delete a city
// @Tags Cities
// @Param id path string true "City ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/cities/{id} [delete]
func (ct *CityController) DeleteCity(c *gin.Context) {
	if err := ct.cityService.DeleteCity(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "City deleted successfully")
}
