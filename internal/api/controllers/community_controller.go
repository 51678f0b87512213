package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"globetrotter/internal/models/request_models"
	"globetrotter/internal/services"
	"globetrotter/pkg/utils"
)

type CommunityController struct {
	communityService services.CommunityServiceInterface
}

func NewCommunityController(communityService services.CommunityServiceInterface) *CommunityController {
	return &CommunityController{communityService: communityService}
}

// ListPosts godoc
// @Summary List community posts, newest first
// @Tags Community
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(20) minimum(1) maximum(100)
// @Success 200 {array} response_models.PostResponse
// @Router /community/posts [get]
func (cc *CommunityController) ListPosts(c *gin.Context) {
	page, ok := queryInt(c, "page", 1, 1<<20)
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page number")
		return
	}
	pageSize, ok := queryInt(c, "pageSize", 20, 100)
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page size (must be 1-100)")
		return
	}

	posts, err := cc.communityService.ListPosts(c.Request.Context(), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, posts, "Posts fetched successfully")
}

// GetPost godoc
// @Summary Get a community post
// @Tags Community
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} response_models.PostResponse
// @Failure 404 {object} utils.APIResponse
// @Router /community/posts/{id} [get]
func (cc *CommunityController) GetPost(c *gin.Context) {
	post, err := cc.communityService.GetPost(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, post, "Post fetched successfully")
}

// CreatePost godoc
// @Summary Share a post
// @Tags Community
// @Accept json
// @Produce json
// @Param request body request_models.CreatePostRequest true "Post payload"
// @Success 201 {object} response_models.PostResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /community/posts [post]
func (cc *CommunityController) CreatePost(c *gin.Context) {
	var req request_models.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	post, err := cc.communityService.CreatePost(c.Request.Context(), currentUserID(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, post, "Post created successfully")
}

// ToggleLike godoc
// @Summary Like or unlike a post
// @Tags Community
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} response_models.LikeResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /community/posts/{id}/like [post]
func (cc *CommunityController) ToggleLike(c *gin.Context) {
	like, err := cc.communityService.ToggleLike(c.Request.Context(), currentUserID(c), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, like, "Like updated")
}

// AddComment godoc
// @Summary Comment on a post
// @Tags Community
// @Accept json
// @Produce json
// @Param id path string true "Post ID"
// @Param request body request_models.CommentRequest true "Comment payload"
// @Success 201 {object} response_models.CommentResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /community/posts/{id}/comments [post]
func (cc *CommunityController) AddComment(c *gin.Context) {
	var req request_models.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	comment, err := cc.communityService.AddComment(c.Request.Context(), currentUserID(c), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, comment, "Comment added")
}
