package review

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/codepilot/codepilot/internal/core"
	"github.com/codepilot/codepilot/internal/credits"
	"github.com/codepilot/codepilot/mocks"
)

func newTestReconciler(t *testing.T) (*Reconciler, *mocks.MockStore) {
	t.Helper()
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ledger := credits.NewLedger(store, credits.DefaultCatalog(), logger)
	return NewReconciler(store, ledger, time.Minute, 10*time.Minute, 2, logger), store
}

func TestSweepOnceRefundsOrphans(t *testing.T) {
	rec, store := newTestReconciler(t)

	orphans := []core.PendingDebit{
		{ID: uuid.New(), UserID: uuid.New(), Amount: 1},
		{ID: uuid.New(), UserID: uuid.New(), Amount: 1},
	}
	store.EXPECT().ListPendingDebitsBefore(gomock.Any(), gomock.Any()).Return(orphans, nil)
	store.EXPECT().RefundPendingDebit(gomock.Any(), orphans[0].ID).Return(true, nil)
	store.EXPECT().RefundPendingDebit(gomock.Any(), orphans[1].ID).Return(true, nil)

	require.NoError(t, rec.SweepOnce(context.Background()))
}

func TestSweepOnceEmpty(t *testing.T) {
	rec, store := newTestReconciler(t)

	store.EXPECT().ListPendingDebitsBefore(gomock.Any(), gomock.Any()).Return(nil, nil)
	assert.NoError(t, rec.SweepOnce(context.Background()))
}

func TestSweepOnceToleratesRacedRefund(t *testing.T) {
	rec, store := newTestReconciler(t)

	orphan := core.PendingDebit{ID: uuid.New(), UserID: uuid.New(), Amount: 1}
	store.EXPECT().ListPendingDebitsBefore(gomock.Any(), gomock.Any()).Return([]core.PendingDebit{orphan}, nil)
	// An in-band refund got there first: already gone, not an error.
	store.EXPECT().RefundPendingDebit(gomock.Any(), orphan.ID).Return(false, nil)

	assert.NoError(t, rec.SweepOnce(context.Background()))
}

func TestSweepOnceReportsRefundError(t *testing.T) {
	rec, store := newTestReconciler(t)

	orphan := core.PendingDebit{ID: uuid.New(), UserID: uuid.New(), Amount: 1}
	store.EXPECT().ListPendingDebitsBefore(gomock.Any(), gomock.Any()).Return([]core.PendingDebit{orphan}, nil)
	store.EXPECT().RefundPendingDebit(gomock.Any(), orphan.ID).Return(false, errors.New("deadlock"))

	assert.Error(t, rec.SweepOnce(context.Background()))
}

func TestReconcilerStartStop(t *testing.T) {
	rec, store := newTestReconciler(t)
	store.EXPECT().ListPendingDebitsBefore(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

	rec.Start()
	rec.Stop()
}
