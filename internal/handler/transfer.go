package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/skyhold/outfitledger/internal/logger"
	"github.com/skyhold/outfitledger/internal/market"
)

type GiveRequest struct {
	FromID        string `json:"from_id" validate:"required,uuid4"`
	ToID          string `json:"to_id" validate:"required,uuid4"`
	Outfit        string `json:"outfit" validate:"required,max=100"`
	Quantity      int    `json:"quantity" validate:"min=1,max=100000"`
	MostWornFirst bool   `json:"most_worn_first"`
}

type GiveResponse struct {
	Moved int `json:"moved"`
}

// HandleGive moves outfits between two holders at their current wear levels
func HandleGive(svc market.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req GiveRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode give request", "error", err)
			http.Error(w, ErrMsgInvalidRequestBody, http.StatusBadRequest)
			return
		}

		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Warn("Invalid request", "error", err)
			http.Error(w, fmt.Sprintf("%s: %v", ErrMsgInvalidRequest, err), http.StatusBadRequest)
			return
		}

		moved, err := svc.Give(r.Context(), req.FromID, req.ToID, req.Outfit, req.Quantity, req.MostWornFirst)
		if err != nil {
			log.Error("Failed to give", "error", err, "outfit", req.Outfit)
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, GiveResponse{Moved: moved})
	}
}

type PlunderRequest struct {
	FromID   string `json:"from_id" validate:"required,uuid4"`
	ToID     string `json:"to_id" validate:"required,uuid4"`
	Outfit   string `json:"outfit" validate:"required,max=100"`
	Quantity int    `json:"quantity" validate:"min=1,max=100000"`
}

// HandlePlunder moves outfits from a boarded holder, adding plunder wear
func HandlePlunder(svc market.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req PlunderRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode plunder request", "error", err)
			http.Error(w, ErrMsgInvalidRequestBody, http.StatusBadRequest)
			return
		}

		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Warn("Invalid request", "error", err)
			http.Error(w, fmt.Sprintf("%s: %v", ErrMsgInvalidRequest, err), http.StatusBadRequest)
			return
		}

		result, err := svc.Plunder(r.Context(), req.FromID, req.ToID, req.Outfit, req.Quantity)
		if err != nil {
			log.Error("Failed to plunder", "error", err, "outfit", req.Outfit)
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, result)
	}
}

type AgeFleetRequest struct {
	Days int `json:"days" validate:"min=1,max=10000"`
}

// HandleAgeFleet advances wear on every holder's outfits by the given days
func HandleAgeFleet(svc market.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req AgeFleetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode age fleet request", "error", err)
			http.Error(w, ErrMsgInvalidRequestBody, http.StatusBadRequest)
			return
		}

		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Warn("Invalid request", "error", err)
			http.Error(w, fmt.Sprintf("%s: %v", ErrMsgInvalidRequest, err), http.StatusBadRequest)
			return
		}

		if err := svc.AgeFleet(r.Context(), req.Days); err != nil {
			log.Error("Failed to age fleet", "error", err)
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Fleet aged"})
	}
}
