package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"globetrotter/internal/models/request_models"
	"globetrotter/internal/services"
	"globetrotter/pkg/utils"
)

type DashboardController struct {
	dashboardService services.DashboardService
}

func NewDashboardController(dashboardService services.DashboardService) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
	}
}

// GetAnalytics godoc
// @Summary Admin analytics
// @Description User and trip totals, trip creation series, top cities and top activities
// @Tags Dashboard
// @Produce json
// @Param from query string false "Start date (YYYY-MM-DD or RFC3339). Default: 30 days before to"
// @Param to query string false "End date (YYYY-MM-DD or RFC3339). Default: now"
// @Param granularity query string false "Bucket size: day | week | month (default: day)"
// @Param limit query int false "Ranking size (default 10, max 50)"
// @Success 200 {object} response_models.AnalyticsResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/analytics [get]
func (d *DashboardController) GetAnalytics(c *gin.Context) {
	var q request_models.AnalyticsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	report, err := d.dashboardService.BuildAnalytics(c.Request.Context(), q)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, report, "Analytics fetched successfully")
}
