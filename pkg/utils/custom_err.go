package utils

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidDate        = errors.New("invalid date")
	ErrInvalidDateRange   = errors.New("start date must not be after end date")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrAccountNotFound    = errors.New("account not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidResetToken  = errors.New("invalid or expired reset token")
	ErrTripNotFound       = errors.New("trip not found")
	ErrTripCityNotFound   = errors.New("trip city not found")
	ErrSectionNotFound    = errors.New("section not found")
	ErrCityNotFound       = errors.New("city not found")
	ErrActivityNotFound   = errors.New("activity not found")
	ErrPostNotFound       = errors.New("post not found")
	ErrNoSearchResults    = errors.New("no results found")

	ErrItineraryGeneration = errors.New("itinerary generation failed")
	ErrItineraryInProgress = errors.New("itinerary generation already in progress for this trip")
	ErrRateLimited         = errors.New("too many requests")

	ErrChatFailed      = errors.New("chat reply failed")
	ErrChatUnavailable = errors.New("chat assistant is not configured")

	ErrDatabaseError = errors.New("database error")
)
