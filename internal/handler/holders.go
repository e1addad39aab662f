package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/skyhold/outfitledger/internal/logger"
	"github.com/skyhold/outfitledger/internal/market"
)

type CreateHolderRequest struct {
	Name string `json:"name" validate:"required,max=100,excludesall=\x00\n\r\t"`
}

// HandleCreateHolder registers a new outfit holder
func HandleCreateHolder(svc market.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req CreateHolderRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode create holder request", "error", err)
			http.Error(w, ErrMsgInvalidRequestBody, http.StatusBadRequest)
			return
		}

		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Warn("Invalid request", "error", err)
			http.Error(w, fmt.Sprintf("%s: %v", ErrMsgInvalidRequest, err), http.StatusBadRequest)
			return
		}

		holder, err := svc.CreateHolder(r.Context(), req.Name)
		if err != nil {
			log.Error("Failed to create holder", "error", err, "name", req.Name)
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusCreated, holder)
	}
}

// HandleGetHolder returns holder metadata
func HandleGetHolder(svc market.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		holderID := chi.URLParam(r, "holderID")

		holder, err := svc.GetHolder(r.Context(), holderID)
		if err != nil {
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, holder)
	}
}

type HoldingsResponse struct {
	HolderID string           `json:"holder_id"`
	Holdings []market.Holding `json:"holdings"`
}

// HandleGetHoldings lists a holder's outfits by wear bucket
func HandleGetHoldings(svc market.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		holderID := chi.URLParam(r, "holderID")

		holdings, err := svc.Holdings(r.Context(), holderID)
		if err != nil {
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, HoldingsResponse{HolderID: holderID, Holdings: holdings})
	}
}
