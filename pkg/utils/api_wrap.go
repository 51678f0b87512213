package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	respond(c, http.StatusOK, data, message)
}

func RespondCreated(c *gin.Context, data interface{}, message string) {
	respond(c, http.StatusCreated, data, message)
}

func respond(c *gin.Context, code int, data interface{}, message string) {
	c.JSON(code, APIResponse{
		Status:  "success",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		Error:   message,
		TraceID: c.GetString("trace_id"),
	})
}

// HandleServiceError maps service sentinels to a status code and envelope. The error is also
// attached to the gin context so the request logger records the cause.
func HandleServiceError(c *gin.Context, err error) {
	_ = c.Error(err)

	switch {
	case errors.Is(err, ErrItineraryGeneration):
		RespondError(c, http.StatusInternalServerError, "Failed to create itinerary")
	case errors.Is(err, ErrChatFailed):
		RespondError(c, http.StatusInternalServerError, "Failed to generate a reply")
	case errors.Is(err, ErrChatUnavailable):
		RespondError(c, http.StatusServiceUnavailable, "Chat assistant is not available")
	case errors.Is(err, ErrInvalidInput),
		errors.Is(err, ErrInvalidDate),
		errors.Is(err, ErrInvalidDateRange):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrInvalidCredentials),
		errors.Is(err, ErrUnauthorized):
		RespondError(c, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, ErrInvalidResetToken):
		RespondError(c, http.StatusBadRequest, "Invalid or expired reset token")
	case errors.Is(err, ErrForbidden):
		RespondError(c, http.StatusForbidden, "Forbidden: insufficient permissions")
	case errors.Is(err, ErrAccountNotFound):
		RespondError(c, http.StatusNotFound, "Account not found")
	case errors.Is(err, ErrTripNotFound):
		RespondError(c, http.StatusNotFound, "Trip not found")
	case errors.Is(err, ErrTripCityNotFound):
		RespondError(c, http.StatusNotFound, "Trip city not found")
	case errors.Is(err, ErrSectionNotFound):
		RespondError(c, http.StatusNotFound, "Section not found")
	case errors.Is(err, ErrCityNotFound):
		RespondError(c, http.StatusNotFound, "City not found")
	case errors.Is(err, ErrActivityNotFound):
		RespondError(c, http.StatusNotFound, "Activity not found")
	case errors.Is(err, ErrPostNotFound):
		RespondError(c, http.StatusNotFound, "Post not found")
	case errors.Is(err, ErrNoSearchResults):
		RespondError(c, http.StatusNotFound, "No results found")
	case errors.Is(err, ErrEmailAlreadyExists):
		RespondError(c, http.StatusConflict, "Email already exists")
	case errors.Is(err, ErrItineraryInProgress):
		RespondError(c, http.StatusConflict, "Itinerary generation already in progress for this trip")
	case errors.Is(err, ErrRateLimited):
		RespondError(c, http.StatusTooManyRequests, "Too many requests")
	default:
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
