package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"globetrotter/internal/models/request_models"
	"globetrotter/internal/services"
	"globetrotter/pkg/utils"
)

type ActivityController struct {
	activityService services.ActivityServiceInterface
}

func NewActivityController(activityService services.ActivityServiceInterface) *ActivityController {
	return &ActivityController{activityService: activityService}
}

// ListActivities godoc
// @Summary List activities
// @Description All activities, or only those of one city when cityId is given
// @Tags Activities
// @Produce json
// @Param cityId query string false "City ID"
// @Success 200 {array} response_models.ActivityResponse
// @Router /activities [get]
func (a *ActivityController) ListActivities(c *gin.Context) {
	activities, err := a.activityService.ListActivities(c.Request.Context(), c.Query("cityId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, activities, "Activities fetched successfully")
}

// GetActivity godoc
// @Summary Get an activity
// @Tags Activities
// @Produce json
// @Param id path string true "Activity ID"
// @Success 200 {object} response_models.ActivityResponse
// @Failure 404 {object} utils.APIResponse
// @Router /activities/{id} [get]
func (a *ActivityController) GetActivity(c *gin.Context) {
	activity, err := a.activityService.GetActivity(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, activity, "Activity fetched successfully")
}

// CreateActivity godoc
// @Summary Create an activity
// @Tags Activities
// @Accept json
// @Produce json
// @Param request body request_models.ActivityRequest true "Activity payload"
// @Success 201 {object} response_models.ActivityResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/activities [post]
func (a *ActivityController) CreateActivity(c *gin.Context) {
	var req request_models.ActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	activity, err := a.activityService.CreateActivity(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, activity, "Activity created successfully")
}

// UpdateActivity godoc
// @Summary Update an activity
// @Tags Activities
// @Accept json
// @Produce json
// @Param id path string true "Activity ID"
// @Param request body request_models.ActivityRequest true "Activity payload"
// @Success 200 {object} response_models.ActivityResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/activities/{id} [put]
func (a *ActivityController) UpdateActivity(c *gin.Context) {
	var req request_models.ActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	activity, err := a.activityService.UpdateActivity(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, activity, "Activity updated successfully")
}

// DeleteActivity godoc
// @Summary Delete an activity
// @Description Sections that reference the activity keep the dangling id
// @Tags Activities
// @Param id path string true "Activity ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/activities/{id} [delete]
func (a *ActivityController) DeleteActivity(c *gin.Context) {
	if err := a.activityService.DeleteActivity(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Activity deleted successfully")
}
