// Package core defines the domain types, caller identity, and error taxonomy
// shared by the review pipeline. These components are deliberately free of
// transport and storage concerns so the packages implementing them stay
// decoupled.
package core

import (
	"time"

	"github.com/google/uuid"
)

// User is the identity subsystem's view of an account, consumed here for its
// credit balance. Credits never go below zero; the storage layer enforces the
// floor with a compare-and-swap update.
type User struct {
	ID         uuid.UUID `db:"id" json:"id"`
	Username   string    `db:"username" json:"username"`
	Email      string    `db:"email" json:"email"`
	Credits    int       `db:"credits" json:"credits"`
	TotalSpent float64   `db:"total_spent" json:"totalSpent"`
	CreatedAt  time.Time `db:"created_at" json:"createdAt"`
}

// HasCredits reports whether the user can pay for one review.
func (u *User) HasCredits() bool {
	return u.Credits > 0
}

// ReviewRequest is the caller-supplied input to the review pipeline.
// Validation (non-empty code and language) happens at the HTTP boundary.
type ReviewRequest struct {
	Code     string `json:"code"`
	Language string `json:"language"`
}

// Review is the persisted record of one successful pipeline run. The Review
// field holds the raw model output (suggestions and corrected code,
// newline-separated) before any sanitization, so the original response stays
// auditable. Reviews are never updated or deleted.
type Review struct {
	ID        uuid.UUID `db:"id" json:"id"`
	UserID    uuid.UUID `db:"user_id" json:"userId"`
	Language  string    `db:"language" json:"language"`
	Code      string    `db:"code" json:"code"`
	Review    string    `db:"review" json:"review"`
	Timestamp time.Time `db:"created_at" json:"timestamp"`
}

// ReviewResult is the response surfaced to the caller. CreditsRemaining and
// ReviewID are nil for anonymous callers.
type ReviewResult struct {
	Review           string     `json:"review"`
	CorrectedCode    string     `json:"correctedCode"`
	CreditsRemaining *int       `json:"creditsRemaining,omitempty"`
	ReviewID         *uuid.UUID `json:"reviewId,omitempty"`
}

// CreditEntry is one row of a user's credit history: a signup grant, a
// purchase, or a refund issued as failure compensation.
type CreditEntry struct {
	ID            uuid.UUID `db:"id" json:"id"`
	UserID        uuid.UUID `db:"user_id" json:"userId"`
	Amount        int       `db:"amount" json:"amount"`
	Price         float64   `db:"price" json:"price"`
	Status        string    `db:"status" json:"status"`
	PaymentMethod string    `db:"payment_method" json:"paymentMethod"`
	CreatedAt     time.Time `db:"created_at" json:"createdAt"`
}

// Credit entry payment methods.
const (
	PaymentMethodSignup   = "FREE_SIGNUP"
	PaymentMethodPurchase = "DEMO_PURCHASE"
	PaymentMethodRefund   = "REFUND"
)

// Credit entry statuses.
const (
	CreditStatusSuccess = "SUCCESS"
	CreditStatusPending = "PENDING"
	CreditStatusFailed  = "FAILED"
)

// PendingDebit is the durable intent record written alongside every debit.
// It exists so a crash between the debit and its compensating credit cannot
// silently lose a credit: the reconciler refunds rows that outlive the grace
// window.
type PendingDebit struct {
	ID        uuid.UUID `db:"id" json:"id"`
	UserID    uuid.UUID `db:"user_id" json:"userId"`
	Amount    int       `db:"amount" json:"amount"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}
