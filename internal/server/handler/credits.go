package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/codepilot/codepilot/internal/core"
	"github.com/codepilot/codepilot/internal/credits"
)

// CreditsHandler serves the credit balance, history, and purchase endpoints.
// All three require an authenticated caller.
type CreditsHandler struct {
	ledger *credits.Ledger
	logger *slog.Logger
}

// NewCreditsHandler creates a credits handler.
func NewCreditsHandler(ledger *credits.Ledger, logger *slog.Logger) *CreditsHandler {
	return &CreditsHandler{ledger: ledger, logger: logger}
}

// Balance handles GET /api/credits/balance.
func (h *CreditsHandler) Balance(w http.ResponseWriter, r *http.Request) {
	caller := CallerFromContext(r.Context())
	if !caller.IsAuthenticated() {
		respondError(w, http.StatusBadRequest, "User not authenticated")
		return
	}

	user, err := h.ledger.Balance(r.Context(), caller.UserID())
	if err != nil {
		if errors.Is(err, core.ErrUserNotFound) {
			respondError(w, http.StatusBadRequest, "User not found")
			return
		}
		logAndRespondServerError(w, h.logger, "Failed to get credit balance", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"credits":    user.Credits,
		"totalSpent": user.TotalSpent,
	})
}

// History handles GET /api/credits/history.
func (h *CreditsHandler) History(w http.ResponseWriter, r *http.Request) {
	caller := CallerFromContext(r.Context())
	if !caller.IsAuthenticated() {
		respondError(w, http.StatusBadRequest, "User not authenticated")
		return
	}

	entries, err := h.ledger.History(r.Context(), caller.UserID())
	if err != nil {
		logAndRespondServerError(w, h.logger, "Failed to get credit history", err)
		return
	}
	respondJSON(w, http.StatusOK, entries)
}

type purchaseRequest struct {
	Credits int     `json:"credits"`
	Price   float64 `json:"price"`
}

// Purchase handles POST /api/credits/purchase. The quoted price must match
// the catalog; there is no payment gateway in this version, so validated
// purchases credit the account directly.
func (h *CreditsHandler) Purchase(w http.ResponseWriter, r *http.Request) {
	caller := CallerFromContext(r.Context())
	if !caller.IsAuthenticated() {
		respondError(w, http.StatusBadRequest, "User not authenticated")
		return
	}

	var req purchaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	receipt, err := h.ledger.Purchase(r.Context(), caller.UserID(), req.Credits, req.Price)
	if err != nil {
		switch {
		case errors.Is(err, credits.ErrInvalidPurchase):
			respondError(w, http.StatusBadRequest, "Invalid pricing")
		case errors.Is(err, core.ErrUserNotFound):
			respondError(w, http.StatusBadRequest, "User not found")
		default:
			logAndRespondServerError(w, h.logger, "Failed to purchase credits", err)
		}
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"success":      true,
		"creditsAdded": receipt.CreditsAdded,
		"newBalance":   receipt.NewBalance,
		"message":      "Credits purchased successfully!",
	})
}
