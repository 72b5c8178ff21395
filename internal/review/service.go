// Package review implements the credit-gated review pipeline: debit, two
// inference calls, sanitization, persistence, and compensation when any step
// after the debit fails.
package review

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/codepilot/codepilot/internal/core"
	"github.com/codepilot/codepilot/internal/credits"
	"github.com/codepilot/codepilot/internal/llm"
	"github.com/codepilot/codepilot/internal/storage"
)

// Service runs the end-to-end review pipeline. One call to Submit is one
// request-scoped execution: no state is shared between runs beyond the
// persisted balance, and the two inference calls happen sequentially on the
// caller's goroutine.
type Service struct {
	ledger   *credits.Ledger
	provider llm.Provider
	store    storage.Store
	logger   *slog.Logger
}

// NewService creates the review pipeline service.
func NewService(ledger *credits.Ledger, provider llm.Provider, store storage.Store, logger *slog.Logger) *Service {
	if ledger == nil {
		panic("ledger cannot be nil")
	}
	if provider == nil {
		panic("provider cannot be nil")
	}
	if store == nil {
		panic("store cannot be nil")
	}
	return &Service{ledger: ledger, provider: provider, store: store, logger: logger}
}

// Submit executes the pipeline for one request. Authenticated callers pay
// one credit; any failure after the debit triggers a compensating refund
// before the error is returned. Anonymous callers run unmetered and their
// reviews are not persisted. The result is all-or-nothing: either both model
// outputs made it through, or the caller gets an error.
func (s *Service) Submit(ctx context.Context, caller core.Caller, req core.ReviewRequest) (*core.ReviewResult, error) {
	metered := caller.IsAuthenticated()

	var (
		remaining int
		pendingID uuid.UUID
	)
	if metered {
		ok, err := s.ledger.HasCredits(ctx, caller.UserID())
		if err != nil {
			return nil, fmt.Errorf("credit check failed: %w", err)
		}
		if !ok {
			// Terminal before any mutation.
			return nil, core.ErrInsufficientCredits
		}

		remaining, pendingID, err = s.ledger.Debit(ctx, caller.UserID(), 1)
		if err != nil {
			// The pre-check can lose a race; the debit is the real gate.
			return nil, err
		}
	}

	result, err := s.runPipeline(ctx, caller, req, remaining)
	if err != nil {
		if metered {
			s.compensate(ctx, pendingID)
		}
		return nil, err
	}

	if metered {
		if err := s.ledger.Settle(ctx, pendingID); err != nil {
			// The review is already committed; the reconciler must not
			// refund it later, so a settle failure is a real error.
			s.logger.Error("failed to settle pending debit", "pending_id", pendingID, "error", err)
		}
	}

	return result, nil
}

// runPipeline performs the unmetered part of the request: prompts, the two
// sequential inference calls, sanitization, and persistence.
func (s *Service) runPipeline(ctx context.Context, caller core.Caller, req core.ReviewRequest, remaining int) (*core.ReviewResult, error) {
	suggestionsText, err := s.provider.Generate(ctx, llm.SuggestionsPrompt(req.Code, req.Language))
	if err != nil {
		return nil, fmt.Errorf("suggestions request: %w", err)
	}

	correctedText, err := s.provider.Generate(ctx, llm.CorrectedCodePrompt(req.Code, req.Language))
	if err != nil {
		return nil, fmt.Errorf("corrected-code request: %w", err)
	}

	result := &core.ReviewResult{
		Review:        llm.CleanSuggestions(suggestionsText),
		CorrectedCode: llm.ExtractCode(correctedText),
	}

	if caller.IsAuthenticated() {
		// The stored record keeps the raw model output, pre-sanitization,
		// so the original response stays auditable.
		rec := &core.Review{
			UserID:   caller.UserID(),
			Language: req.Language,
			Code:     req.Code,
			Review:   suggestionsText + "\n\n" + correctedText,
		}
		if err := s.store.SaveReview(ctx, rec); err != nil {
			return nil, fmt.Errorf("%w: %w", core.ErrPersistence, err)
		}

		result.CreditsRemaining = &remaining
		result.ReviewID = &rec.ID

		s.logger.Info("review persisted",
			"review_id", rec.ID,
			"user_id", caller.UserID(),
			"language", req.Language,
			"credits_remaining", remaining,
		)
	}

	return result, nil
}

// compensate refunds the debit after a downstream failure. Best-effort in
// band: if it fails here, the pending-debit row survives and the reconciler
// picks it up, so the credit is not lost.
func (s *Service) compensate(ctx context.Context, pendingID uuid.UUID) {
	refunded, err := s.ledger.Refund(ctx, pendingID)
	if err != nil {
		s.logger.Error("in-band refund failed, leaving to reconciler", "pending_id", pendingID, "error", err)
		return
	}
	if refunded {
		s.logger.Info("review failed, credit refunded", "pending_id", pendingID)
	}
}

// ListAll returns every stored review, newest first.
func (s *Service) ListAll(ctx context.Context) ([]core.Review, error) {
	return s.store.ListReviews(ctx)
}

// ListByLanguage returns reviews for one language.
func (s *Service) ListByLanguage(ctx context.Context, language string) ([]core.Review, error) {
	return s.store.ListReviewsByLanguage(ctx, language)
}
