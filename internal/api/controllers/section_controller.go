package controllers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"globetrotter/internal/models/request_models"
	"globetrotter/internal/services"
	"globetrotter/pkg/utils"
)

type SectionController struct {
	sectionService services.SectionServiceInterface
}

func NewSectionController(sectionService services.SectionServiceInterface) *SectionController {
	return &SectionController{
		sectionService: sectionService,
	}
}

// decodeSectionBatch accepts either one section object or an array of them.
func decodeSectionBatch(body []byte) ([]request_models.SectionRequest, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, utils.ErrInvalidInput
	}
	if trimmed[0] == '[' {
		var reqs []request_models.SectionRequest
		if err := json.Unmarshal(trimmed, &reqs); err != nil {
			return nil, err
		}
		return reqs, nil
	}
	var req request_models.SectionRequest
	if err := json.Unmarshal(trimmed, &req); err != nil {
		return nil, err
	}
	return []request_models.SectionRequest{req}, nil
}

// CreateSections godoc
// @Summary Create sections
// @Description Create one section or an array of sections. Every entry is validated before anything is stored.
// @Tags Sections
// @Accept json
// @Produce json
// @Param request body []request_models.SectionRequest true "A section object or an array of sections"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /sections [post]
func (s *SectionController) CreateSections(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	reqs, err := decodeSectionBatch(body)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	sections, err := s.sectionService.CreateSections(c.Request.Context(), currentUserID(c), reqs)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, sections, "Sections created successfully")
}

// ListTripSections godoc
// @Summary List sections of a trip
// @Tags Sections
// @Produce json
// @Param tripId path string true "Trip ID"
// @Success 200 {array} response_models.SectionResponse
// @Security BearerAuth
// @Router /sections/trip/{tripId} [get]
func (s *SectionController) ListTripSections(c *gin.Context) {
	sections, err := s.sectionService.ListTripSections(c.Request.Context(), c.Param("tripId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, sections, "Sections fetched successfully")
}

// GetSection godoc
// @Summary Get a section
// @Tags Sections
// @Produce json
// @Param id path string true "Section ID"
// @Success 200 {object} response_models.SectionResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /sections/{id} [get]
func (s *SectionController) GetSection(c *gin.Context) {
	section, err := s.sectionService.GetSection(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, section, "Section fetched successfully")
}

// UpdateSection godoc
// @Summary Update a section
// @Description Replaces every field of the section, including its activity list
// @Tags Sections
// @Accept json
// @Produce json
// @Param id path string true "Section ID"
// @Param request body request_models.UpdateSectionRequest true "Section fields"
// @Success 200 {object} response_models.SectionResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /sections/{id} [put]
func (s *SectionController) UpdateSection(c *gin.Context) {
	var req request_models.UpdateSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	section, err := s.sectionService.UpdateSection(c.Request.Context(), currentUserID(c), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, section, "Section updated successfully")
}

// DeleteSection godoc
// @Summary Delete a section
// @Tags Sections
// @Produce json
// @Param id path string true "Section ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /sections/{id} [delete]
func (s *SectionController) DeleteSection(c *gin.Context) {
	if err := s.sectionService.DeleteSection(c.Request.Context(), currentUserID(c), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Section deleted successfully")
}
