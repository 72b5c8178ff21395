package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/codepilot/codepilot/internal/core"
	"github.com/codepilot/codepilot/internal/review"
)

// ReviewHandler serves the review submission and listing endpoints.
type ReviewHandler struct {
	svc          *review.Service
	maxBodyBytes int64
	logger       *slog.Logger
}

// NewReviewHandler creates a review handler.
func NewReviewHandler(svc *review.Service, maxBodyBytes int64, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{svc: svc, maxBodyBytes: maxBodyBytes, logger: logger}
}

// Submit handles POST /api/review: the credit-gated pipeline.
func (h *ReviewHandler) Submit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)

	var req core.ReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Code == "" {
		respondError(w, http.StatusBadRequest, "Code is required")
		return
	}
	if req.Language == "" {
		respondError(w, http.StatusBadRequest, "Language is required")
		return
	}

	caller := CallerFromContext(r.Context())

	result, err := h.svc.Submit(r.Context(), caller, req)
	if err != nil {
		if errors.Is(err, core.ErrInsufficientCredits) {
			respondError(w, http.StatusBadRequest, "Insufficient credits. Please purchase more credits to continue.")
			return
		}
		logAndRespondServerError(w, h.logger, "Failed to process review", err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// ListAll handles GET /api/review: every review, newest first.
func (h *ReviewHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.svc.ListAll(r.Context())
	if err != nil {
		logAndRespondServerError(w, h.logger, "Failed to list reviews", err)
		return
	}
	respondJSON(w, http.StatusOK, reviews)
}

// ListByLanguage handles GET /api/review/language/{language}.
func (h *ReviewHandler) ListByLanguage(w http.ResponseWriter, r *http.Request) {
	language := chi.URLParam(r, "language")

	reviews, err := h.svc.ListByLanguage(r.Context(), language)
	if err != nil {
		logAndRespondServerError(w, h.logger, "Failed to list reviews", err)
		return
	}
	respondJSON(w, http.StatusOK, reviews)
}
