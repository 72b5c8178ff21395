package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/codepilot/codepilot/internal/core"
)

// DebitCredits decrements the balance with a compare-and-swap update so
// concurrent requests from the same user serialize in the database instead
// of racing on a read-modify-write. The pending-debit intent row is written
// in the same transaction, so a later crash can always be reconciled back to
// a consistent balance.
func (s *postgresStore) DebitCredits(ctx context.Context, userID uuid.UUID, amount int) (int, uuid.UUID, error) {
	if amount <= 0 {
		return 0, uuid.Nil, fmt.Errorf("debit amount must be positive, got %d", amount)
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, uuid.Nil, fmt.Errorf("failed to begin debit transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var remaining int
	err = tx.QueryRowxContext(ctx,
		`UPDATE users SET credits = credits - $2 WHERE id = $1 AND credits >= $2 RETURNING credits`,
		userID, amount,
	).Scan(&remaining)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// Either the user does not exist or the balance cannot cover the
			// debit; distinguish so callers can report the right error.
			var exists bool
			if checkErr := tx.GetContext(ctx, &exists,
				`SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`, userID); checkErr != nil {
				return 0, uuid.Nil, fmt.Errorf("failed to check user existence: %w", checkErr)
			}
			if !exists {
				return 0, uuid.Nil, core.ErrUserNotFound
			}
			return 0, uuid.Nil, core.ErrInsufficientCredits
		}
		return 0, uuid.Nil, fmt.Errorf("failed to debit credits: %w", err)
	}

	pendingID := uuid.New()
	_, err = tx.ExecContext(ctx,
		`INSERT INTO pending_debits (id, user_id, amount, created_at) VALUES ($1, $2, $3, $4)`,
		pendingID, userID, amount, time.Now().UTC(),
	)
	if err != nil {
		return 0, uuid.Nil, fmt.Errorf("failed to record pending debit: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, uuid.Nil, fmt.Errorf("failed to commit debit: %w", err)
	}
	return remaining, pendingID, nil
}

// CreditUser increments the balance and appends a history row.
func (s *postgresStore) CreditUser(ctx context.Context, userID uuid.UUID, amount int, price float64, paymentMethod string) (int, error) {
	if amount <= 0 {
		return 0, fmt.Errorf("credit amount must be positive, got %d", amount)
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin credit transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	newBalance, err := creditInTx(ctx, tx, userID, amount, price, paymentMethod)
	if err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit credit: %w", err)
	}
	return newBalance, nil
}

// creditInTx applies a balance increment plus history row inside an existing
// transaction. Shared by top-ups and refunds.
func creditInTx(ctx context.Context, tx sqlxExecer, userID uuid.UUID, amount int, price float64, paymentMethod string) (int, error) {
	var newBalance int
	err := tx.QueryRowxContext(ctx,
		`UPDATE users SET credits = credits + $2, total_spent = total_spent + $3 WHERE id = $1 RETURNING credits`,
		userID, amount, price,
	).Scan(&newBalance)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, core.ErrUserNotFound
		}
		return 0, fmt.Errorf("failed to credit user: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO credits (id, user_id, amount, price, status, payment_method, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		uuid.New(), userID, amount, price, core.CreditStatusSuccess, paymentMethod, time.Now().UTC(),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to record credit entry: %w", err)
	}
	return newBalance, nil
}

// SettlePendingDebit clears the intent row once the pipeline has committed
// its result.
func (s *postgresStore) SettlePendingDebit(ctx context.Context, pendingID uuid.UUID) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM pending_debits WHERE id = $1`, pendingID)
	if err != nil {
		return fmt.Errorf("failed to settle pending debit: %w", err)
	}
	return nil
}

// RefundPendingDebit reverses a debit. Deleting the intent row and crediting
// the balance happen in one transaction keyed on the row, so the in-band
// refund and the reconciler can both attempt it without double-crediting.
func (s *postgresStore) RefundPendingDebit(ctx context.Context, pendingID uuid.UUID) (bool, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to begin refund transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var pd core.PendingDebit
	err = tx.QueryRowxContext(ctx,
		`DELETE FROM pending_debits WHERE id = $1 RETURNING id, user_id, amount, created_at`,
		pendingID,
	).Scan(&pd.ID, &pd.UserID, &pd.Amount, &pd.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// Already settled or refunded.
			return false, nil
		}
		return false, fmt.Errorf("failed to claim pending debit: %w", err)
	}

	if _, err := creditInTx(ctx, tx, pd.UserID, pd.Amount, 0, core.PaymentMethodRefund); err != nil {
		return false, fmt.Errorf("failed to refund pending debit: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit refund: %w", err)
	}
	return true, nil
}

// ListPendingDebitsBefore returns intent rows older than the cutoff. These
// are debits whose request died before settling or refunding.
func (s *postgresStore) ListPendingDebitsBefore(ctx context.Context, cutoff time.Time) ([]core.PendingDebit, error) {
	query := `SELECT id, user_id, amount, created_at FROM pending_debits WHERE created_at < $1 ORDER BY created_at`

	var rows []core.PendingDebit
	if err := s.db.SelectContext(ctx, &rows, query, cutoff); err != nil {
		return nil, fmt.Errorf("failed to list pending debits: %w", err)
	}
	return rows, nil
}

// ListCreditHistory returns a user's credit entries, newest first.
func (s *postgresStore) ListCreditHistory(ctx context.Context, userID uuid.UUID) ([]core.CreditEntry, error) {
	query := `SELECT id, user_id, amount, price, status, payment_method, created_at
	          FROM credits WHERE user_id = $1 ORDER BY created_at DESC`

	var entries []core.CreditEntry
	if err := s.db.SelectContext(ctx, &entries, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list credit history: %w", err)
	}
	return entries, nil
}

// sqlxExecer is the subset of sqlx.Tx used by creditInTx.
type sqlxExecer interface {
	QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}
