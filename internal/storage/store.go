// Package storage implements the persistence layer over PostgreSQL.
package storage

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	// import db drivers
	_ "github.com/lib/pq"

	"github.com/codepilot/codepilot/internal/core"
)

// Store defines the interface for all database operations.
type Store interface {
	// Users.
	GetUserByID(ctx context.Context, id uuid.UUID) (*core.User, error)
	GetUserByToken(ctx context.Context, token string) (*core.User, error)

	// Credit balance. DebitCredits atomically decrements the balance and
	// records a pending-debit intent row in the same transaction; it returns
	// core.ErrInsufficientCredits when the balance cannot cover the amount.
	// The balance never goes negative.
	DebitCredits(ctx context.Context, userID uuid.UUID, amount int) (remaining int, pendingID uuid.UUID, err error)
	// CreditUser unconditionally increments the balance, adds price to the
	// user's total spend, and records a history row.
	CreditUser(ctx context.Context, userID uuid.UUID, amount int, price float64, paymentMethod string) (newBalance int, err error)
	SettlePendingDebit(ctx context.Context, pendingID uuid.UUID) error
	// RefundPendingDebit credits the debited amount back and deletes the
	// intent row in one transaction. It reports false when the row no longer
	// exists, which makes refunds idempotent.
	RefundPendingDebit(ctx context.Context, pendingID uuid.UUID) (refunded bool, err error)
	ListPendingDebitsBefore(ctx context.Context, cutoff time.Time) ([]core.PendingDebit, error)
	ListCreditHistory(ctx context.Context, userID uuid.UUID) ([]core.CreditEntry, error)

	// Reviews.
	SaveReview(ctx context.Context, review *core.Review) error
	ListReviews(ctx context.Context) ([]core.Review, error)
	ListReviewsByLanguage(ctx context.Context, language string) ([]core.Review, error)
}

type postgresStore struct {
	db *sqlx.DB
}

// NewStore creates a new Store backed by the given connection pool.
func NewStore(db *sqlx.DB) Store {
	return &postgresStore{db: db}
}
