package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"globetrotter/internal/models/request_models"
	"globetrotter/internal/services"
	"globetrotter/pkg/utils"
)

type ChatController struct {
	chatService services.ChatServiceInterface
}

func NewChatController(chatService services.ChatServiceInterface) *ChatController {
	return &ChatController{
		chatService: chatService,
	}
}

// Chat godoc
// @Summary Travel assistant chat
// @Description Answers the last user message of the conversation. Assistant turns may use role "bot" or "assistant".
// @Tags Chat
// @Accept json
// @Produce json
// @Param request body request_models.ChatRequest true "Conversation so far, oldest first"
// @Success 200 {object} response_models.ChatResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 429 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Failure 503 {object} utils.APIResponse
// @Security BearerAuth
// @Router /chat [post]
func (h *ChatController) Chat(c *gin.Context) {
	var req request_models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "conversation with role and text on every message is required")
		return
	}

	out, err := h.chatService.Reply(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, out, "Reply generated successfully")
}
