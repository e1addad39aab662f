package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/skyhold/outfitledger/internal/logger"
	"github.com/skyhold/outfitledger/internal/market"
)

type QuoteRequest struct {
	HolderID string `json:"holder_id" validate:"required,uuid4"`
	Outfit   string `json:"outfit" validate:"required,max=100"`
	Quantity int    `json:"quantity" validate:"min=1,max=100000"`
	Selling  bool   `json:"selling"`
}

// HandleQuote prices a prospective buy or sell without committing it
func HandleQuote(svc market.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req QuoteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode quote request", "error", err)
			http.Error(w, ErrMsgInvalidRequestBody, http.StatusBadRequest)
			return
		}

		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Warn("Invalid request", "error", err)
			http.Error(w, fmt.Sprintf("%s: %v", ErrMsgInvalidRequest, err), http.StatusBadRequest)
			return
		}

		quote, err := svc.Quote(r.Context(), req.HolderID, req.Outfit, req.Quantity, req.Selling)
		if err != nil {
			log.Error("Failed to quote", "error", err, "outfit", req.Outfit)
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, quote)
	}
}

type BuyRequest struct {
	HolderID string `json:"holder_id" validate:"required,uuid4"`
	Outfit   string `json:"outfit" validate:"required,max=100"`
	Quantity int    `json:"quantity" validate:"min=1,max=100000"`
	Used     bool   `json:"used"`
}

// HandleBuy purchases outfits into a holder's inventory, factory-new or used
func HandleBuy(svc market.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req BuyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode buy request", "error", err)
			http.Error(w, ErrMsgInvalidRequestBody, http.StatusBadRequest)
			return
		}

		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Warn("Invalid request", "error", err)
			http.Error(w, fmt.Sprintf("%s: %v", ErrMsgInvalidRequest, err), http.StatusBadRequest)
			return
		}

		result, err := svc.Buy(r.Context(), req.HolderID, req.Outfit, req.Quantity, req.Used)
		if err != nil {
			log.Error("Failed to buy", "error", err, "outfit", req.Outfit)
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, result)
	}
}

type SellRequest struct {
	HolderID string `json:"holder_id" validate:"required,uuid4"`
	Outfit   string `json:"outfit" validate:"required,max=100"`
	Quantity int    `json:"quantity" validate:"min=1,max=100000"`
}

// HandleSell sells outfits out of a holder's inventory, most-worn first
func HandleSell(svc market.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req SellRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode sell request", "error", err)
			http.Error(w, ErrMsgInvalidRequestBody, http.StatusBadRequest)
			return
		}

		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Warn("Invalid request", "error", err)
			http.Error(w, fmt.Sprintf("%s: %v", ErrMsgInvalidRequest, err), http.StatusBadRequest)
			return
		}

		result, err := svc.Sell(r.Context(), req.HolderID, req.Outfit, req.Quantity)
		if err != nil {
			log.Error("Failed to sell", "error", err, "outfit", req.Outfit)
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, result)
	}
}
