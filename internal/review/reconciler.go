package review

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/codepilot/codepilot/internal/credits"
	"github.com/codepilot/codepilot/internal/storage"
)

// Reconciler sweeps pending-debit intent rows that outlived their request.
// A crash between a debit and its compensating credit leaves the intent row
// behind; once a row is older than the grace window no live request can
// still settle it, so the sweep refunds it. Refunds are idempotent at the
// storage level, so the sweep can safely race an in-band refund.
type Reconciler struct {
	store    storage.Store
	ledger   *credits.Ledger
	interval time.Duration
	grace    time.Duration
	parallel int
	logger   *slog.Logger

	stop chan struct{}
	wg   sync.WaitGroup
}

// NewReconciler creates a reconciler. parallel bounds how many refunds run
// concurrently within one sweep.
func NewReconciler(store storage.Store, ledger *credits.Ledger, interval, grace time.Duration, parallel int, logger *slog.Logger) *Reconciler {
	if parallel <= 0 {
		parallel = 1
	}
	return &Reconciler{
		store:    store,
		ledger:   ledger,
		interval: interval,
		grace:    grace,
		parallel: parallel,
		logger:   logger,
		stop:     make(chan struct{}),
	}
}

// Start launches the background sweep loop.
func (r *Reconciler) Start() {
	r.wg.Add(1)
	go r.run()
	r.logger.Info("pending-debit reconciler started", "interval", r.interval, "grace", r.grace)
}

func (r *Reconciler) run() {
	defer r.wg.Done()

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := r.SweepOnce(context.Background()); err != nil {
				r.logger.Error("pending-debit sweep failed", "error", err)
			}
		case <-r.stop:
			return
		}
	}
}

// SweepOnce refunds all pending debits older than the grace window.
func (r *Reconciler) SweepOnce(ctx context.Context) error {
	cutoff := time.Now().Add(-r.grace)
	orphans, err := r.store.ListPendingDebitsBefore(ctx, cutoff)
	if err != nil {
		return err
	}
	if len(orphans) == 0 {
		return nil
	}

	r.logger.Warn("found orphaned pending debits", "count", len(orphans))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.parallel)
	for _, orphan := range orphans {
		orphan := orphan
		g.Go(func() error {
			refunded, err := r.ledger.Refund(gctx, orphan.ID)
			if err != nil {
				r.logger.Error("failed to refund orphaned debit",
					"pending_id", orphan.ID, "user_id", orphan.UserID, "error", err)
				return err
			}
			if refunded {
				r.logger.Info("refunded orphaned debit",
					"pending_id", orphan.ID, "user_id", orphan.UserID, "amount", orphan.Amount)
			}
			return nil
		})
	}
	return g.Wait()
}

// Stop halts the sweep loop and waits for an in-flight sweep to finish.
func (r *Reconciler) Stop() {
	close(r.stop)
	r.wg.Wait()
	r.logger.Info("pending-debit reconciler stopped")
}
