package credits

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/codepilot/codepilot/internal/core"
	"github.com/codepilot/codepilot/internal/storage"
)

// Ledger meters review usage against per-user credit balances. All mutations
// go through the storage layer's compare-and-swap updates, so concurrent
// requests from the same user cannot drive the balance negative, and every
// debit leaves a durable intent row until it is settled or refunded.
//
// Anonymous callers never reach the ledger; unmetered anonymous reviews are
// a product decision, not a gap.
type Ledger struct {
	store   storage.Store
	catalog *Catalog
	logger  *slog.Logger
}

// NewLedger creates a ledger over the given store and purchase catalog.
func NewLedger(store storage.Store, catalog *Catalog, logger *slog.Logger) *Ledger {
	return &Ledger{store: store, catalog: catalog, logger: logger}
}

// HasCredits reports whether the user's balance is positive. It is a cheap
// pre-check for the friendly client error; Debit remains the authoritative
// gate under concurrency.
func (l *Ledger) HasCredits(ctx context.Context, userID uuid.UUID) (bool, error) {
	user, err := l.store.GetUserByID(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("failed to load user for credit check: %w", err)
	}
	return user.HasCredits(), nil
}

// Debit atomically takes amount credits from the user and records the
// pending-debit intent. Returns core.ErrInsufficientCredits when the balance
// cannot cover it; the balance is untouched in that case.
func (l *Ledger) Debit(ctx context.Context, userID uuid.UUID, amount int) (remaining int, pendingID uuid.UUID, err error) {
	remaining, pendingID, err = l.store.DebitCredits(ctx, userID, amount)
	if err != nil {
		return 0, uuid.Nil, err
	}
	l.logger.Debug("debited credits", "user_id", userID, "amount", amount, "remaining", remaining)
	return remaining, pendingID, nil
}

// Credit unconditionally adds credits to the user's balance, recording a
// history entry. Used for top-ups; refunds go through Refund so they stay
// tied to their originating debit.
func (l *Ledger) Credit(ctx context.Context, userID uuid.UUID, amount int, price float64, paymentMethod string) (int, error) {
	newBalance, err := l.store.CreditUser(ctx, userID, amount, price, paymentMethod)
	if err != nil {
		return 0, err
	}
	l.logger.Debug("credited user", "user_id", userID, "amount", amount, "balance", newBalance)
	return newBalance, nil
}

// Settle clears the pending-debit intent after the pipeline committed its
// result.
func (l *Ledger) Settle(ctx context.Context, pendingID uuid.UUID) error {
	return l.store.SettlePendingDebit(ctx, pendingID)
}

// Refund compensates a debit after a downstream failure. Idempotent: once
// the intent row is gone, further refund attempts are no-ops.
func (l *Ledger) Refund(ctx context.Context, pendingID uuid.UUID) (bool, error) {
	refunded, err := l.store.RefundPendingDebit(ctx, pendingID)
	if err != nil {
		return false, err
	}
	if refunded {
		l.logger.Info("refunded pending debit", "pending_id", pendingID)
	}
	return refunded, nil
}

// PurchaseReceipt describes a completed purchase.
type PurchaseReceipt struct {
	CreditsAdded int     `json:"creditsAdded"`
	NewBalance   int     `json:"newBalance"`
	Price        float64 `json:"price"`
}

// Purchase validates the requested bundle against the catalog and adds the
// credits. There is no payment gateway in this version: credits are added
// unconditionally once the pricing checks out.
func (l *Ledger) Purchase(ctx context.Context, userID uuid.UUID, creditAmount int, price float64) (*PurchaseReceipt, error) {
	if err := l.catalog.Validate(creditAmount, price); err != nil {
		return nil, err
	}

	newBalance, err := l.Credit(ctx, userID, creditAmount, price, core.PaymentMethodPurchase)
	if err != nil {
		return nil, err
	}

	l.logger.Info("credits purchased", "user_id", userID, "credits", creditAmount, "price", price)
	return &PurchaseReceipt{
		CreditsAdded: creditAmount,
		NewBalance:   newBalance,
		Price:        price,
	}, nil
}

// History returns the user's credit entries, newest first.
func (l *Ledger) History(ctx context.Context, userID uuid.UUID) ([]core.CreditEntry, error) {
	return l.store.ListCreditHistory(ctx, userID)
}

// Balance returns the user's current credits and total spend.
func (l *Ledger) Balance(ctx context.Context, userID uuid.UUID) (*core.User, error) {
	return l.store.GetUserByID(ctx, userID)
}
