package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"globetrotter/internal/services"
	"globetrotter/pkg/utils"
)

type SearchController struct {
	searchService services.SearchServiceInterface
}

func NewSearchController(searchService services.SearchServiceInterface) *SearchController {
	return &SearchController{searchService: searchService}
}

// Search godoc
// @Summary Search cities and activities by name
// @Description A matching city returns the city with its activities; otherwise matching activities, their cities and similar activities
// @Tags Search
// @Produce json
// @Param q query string true "Search text"
// @Success 200 {object} response_models.SearchResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /search [get]
func (s *SearchController) Search(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		utils.RespondError(c, http.StatusBadRequest, "Query parameter q is required")
		return
	}

	result, err := s.searchService.Search(c.Request.Context(), q)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, result, "Search completed")
}

// Suggestions godoc
// @Summary Autocomplete city and activity names
// @Tags Search
// @Produce json
// @Param q query string false "Prefix or fragment"
// @Success 200 {array} string
// @Router /search/suggestions [get]
func (s *SearchController) Suggestions(c *gin.Context) {
	names, err := s.searchService.Suggestions(c.Request.Context(), c.Query("q"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, names, "Suggestions fetched successfully")
}

// SemanticSearch godoc
// @Summary Find activities by meaning
// @Description Uses activity embeddings when enabled and falls back to name search
// @Tags Search
// @Produce json
// @Param q query string true "Free text"
// @Success 200 {object} response_models.SearchResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /search/semantic [get]
func (s *SearchController) SemanticSearch(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		utils.RespondError(c, http.StatusBadRequest, "Query parameter q is required")
		return
	}

	result, err := s.searchService.SemanticSearch(c.Request.Context(), q)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, result, "Search completed")
}
