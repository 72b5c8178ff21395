package credits

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/codepilot/codepilot/internal/core"
	"github.com/codepilot/codepilot/mocks"
)

func newTestLedger(t *testing.T) (*Ledger, *mocks.MockStore) {
	t.Helper()
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewLedger(store, DefaultCatalog(), logger), store
}

func TestLedgerHasCredits(t *testing.T) {
	ledger, store := newTestLedger(t)
	userID := uuid.New()

	store.EXPECT().GetUserByID(gomock.Any(), userID).Return(&core.User{ID: userID, Credits: 3}, nil)
	ok, err := ledger.HasCredits(context.Background(), userID)
	require.NoError(t, err)
	assert.True(t, ok)

	store.EXPECT().GetUserByID(gomock.Any(), userID).Return(&core.User{ID: userID, Credits: 0}, nil)
	ok, err = ledger.HasCredits(context.Background(), userID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLedgerDebitInsufficient(t *testing.T) {
	ledger, store := newTestLedger(t)
	userID := uuid.New()

	store.EXPECT().DebitCredits(gomock.Any(), userID, 1).Return(0, uuid.Nil, core.ErrInsufficientCredits)

	_, _, err := ledger.Debit(context.Background(), userID, 1)
	assert.ErrorIs(t, err, core.ErrInsufficientCredits)
}

func TestLedgerRefundIdempotent(t *testing.T) {
	ledger, store := newTestLedger(t)
	pendingID := uuid.New()

	store.EXPECT().RefundPendingDebit(gomock.Any(), pendingID).Return(true, nil)
	refunded, err := ledger.Refund(context.Background(), pendingID)
	require.NoError(t, err)
	assert.True(t, refunded)

	// Second attempt: the intent row is gone, nothing happens.
	store.EXPECT().RefundPendingDebit(gomock.Any(), pendingID).Return(false, nil)
	refunded, err = ledger.Refund(context.Background(), pendingID)
	require.NoError(t, err)
	assert.False(t, refunded)
}

func TestLedgerPurchase(t *testing.T) {
	t.Run("valid bundle credits the user", func(t *testing.T) {
		ledger, store := newTestLedger(t)
		userID := uuid.New()

		store.EXPECT().
			CreditUser(gomock.Any(), userID, 100, 50.0, core.PaymentMethodPurchase).
			Return(120, nil)

		receipt, err := ledger.Purchase(context.Background(), userID, 100, 50.0)
		require.NoError(t, err)
		assert.Equal(t, 100, receipt.CreditsAdded)
		assert.Equal(t, 120, receipt.NewBalance)
	})

	t.Run("bad pricing never touches the store", func(t *testing.T) {
		ledger, _ := newTestLedger(t)

		_, err := ledger.Purchase(context.Background(), uuid.New(), 100, 10.0)
		assert.Error(t, err)
	})
}
