package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/skyhold/outfitledger/internal/market"
	"github.com/skyhold/outfitledger/internal/outfit"
)

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Headers are already sent; all we can do is log.
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
	ErrMsgInvalidRequestBody = "Invalid request body"
	ErrMsgInvalidRequest     = "Invalid request"
	ErrMsgUnknownError       = "Unknown error"
	ErrMsgServerError        = "Server error occurred. Please try again."

	ErrMsgHolderNotFoundError  = "Holder not found"
	ErrMsgOutfitNotFoundError  = "Outfit not found"
	ErrMsgInsufficientStockErr = "Not enough outfits in stock"
	ErrMsgInvalidQuantityError = "Quantity must be positive"
	ErrMsgSameHolderError      = "Source and destination must differ"
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP responses
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, market.ErrHolderNotFound):
		return http.StatusNotFound, ErrMsgHolderNotFoundError
	case errors.Is(err, outfit.ErrOutfitNotFound):
		return http.StatusBadRequest, ErrMsgOutfitNotFoundError
	case errors.Is(err, market.ErrInsufficientStock):
		return http.StatusBadRequest, ErrMsgInsufficientStockErr
	case errors.Is(err, market.ErrInvalidQuantity):
		return http.StatusBadRequest, ErrMsgInvalidQuantityError
	case errors.Is(err, market.ErrSameHolder):
		return http.StatusBadRequest, ErrMsgSameHolderError
	default:
		return http.StatusInternalServerError, ErrMsgServerError
	}
}

// respondServiceError maps a service error and writes it
func respondServiceError(w http.ResponseWriter, err error) {
	status, message := mapServiceErrorToUserMessage(err)
	respondError(w, status, message)
}
