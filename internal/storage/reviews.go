package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/codepilot/codepilot/internal/core"
)

// SaveReview inserts a new review record. The identifier and timestamp are
// assigned here, at persistence time, and written back to the struct.
func (s *postgresStore) SaveReview(ctx context.Context, review *core.Review) error {
	if review.ID == uuid.Nil {
		review.ID = uuid.New()
	}
	if review.Timestamp.IsZero() {
		review.Timestamp = time.Now().UTC()
	}

	query := `INSERT INTO reviews (id, user_id, language, code, review, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := s.db.ExecContext(ctx, query,
		review.ID, review.UserID, review.Language, review.Code, review.Review, review.Timestamp)
	if err != nil {
		return fmt.Errorf("failed to save review: %w", err)
	}
	return nil
}

// ListReviews returns all reviews, most recent first.
func (s *postgresStore) ListReviews(ctx context.Context) ([]core.Review, error) {
	query := `SELECT id, user_id, language, code, review, created_at
	          FROM reviews ORDER BY created_at DESC`

	var reviews []core.Review
	if err := s.db.SelectContext(ctx, &reviews, query); err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	return reviews, nil
}

// ListReviewsByLanguage returns reviews for one language. Order is whatever
// the database gives back.
func (s *postgresStore) ListReviewsByLanguage(ctx context.Context, language string) ([]core.Review, error) {
	query := `SELECT id, user_id, language, code, review, created_at
	          FROM reviews WHERE language = $1`

	var reviews []core.Review
	if err := s.db.SelectContext(ctx, &reviews, query, language); err != nil {
		return nil, fmt.Errorf("failed to list reviews by language: %w", err)
	}
	return reviews, nil
}
