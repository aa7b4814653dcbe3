package reconciler

import (
	"context"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/attendrop/minter/internal/adapter"
	"github.com/attendrop/minter/internal/domain"
	"github.com/attendrop/minter/internal/logger"
	"github.com/attendrop/minter/internal/providers/ethereum"
	"github.com/attendrop/minter/internal/store"
	"github.com/attendrop/minter/internal/store/schema"
)

const (
	defaultPollInterval = 30 * time.Second
	defaultWorkers      = 10
	defaultQueueSize    = 256
)

// Config tunes the reconciliation loop
type Config struct {
	PollInterval time.Duration
	Workers      int
	QueueSize    int
}

// Reconciler moves pending transaction records to their terminal state. It
// is the only component allowed to transition status; the orchestrator only
// ever creates records as pending.
type Reconciler struct {
	store    store.Store
	ledger   ethereum.Ledger
	clock    adapter.Clock
	interval time.Duration
	workers  int
	queue    int
}

// New creates a reconciler. Zero config values fall back to defaults.
func New(s store.Store, l ethereum.Ledger, clock adapter.Clock, cfg Config) *Reconciler {
	if cfg.PollInterval == 0 {
		cfg.PollInterval = defaultPollInterval
	}
	if cfg.Workers == 0 {
		cfg.Workers = defaultWorkers
	}
	if cfg.QueueSize == 0 {
		cfg.QueueSize = defaultQueueSize
	}
	return &Reconciler{
		store:    s,
		ledger:   l,
		clock:    clock,
		interval: cfg.PollInterval,
		workers:  cfg.Workers,
		queue:    cfg.QueueSize,
	}
}

// Run polls for pending transactions until ctx is canceled
func (r *Reconciler) Run(ctx context.Context) error {
	pool := pond.NewPool(
		r.workers,
		pond.WithQueueSize(r.queue),
		pond.WithContext(ctx),
	)
	defer pool.StopAndWait()

	logger.InfoCtx(ctx, "reconciler started",
		zap.Duration("poll_interval", r.interval),
		zap.Int("workers", r.workers),
	)

	for {
		if err := r.ReconcileOnce(ctx, pool); err != nil {
			logger.ErrorCtx(ctx, err)
		}

		select {
		case <-ctx.Done():
			logger.InfoCtx(ctx, "reconciler stopping")
			return ctx.Err()
		case <-r.clock.After(r.interval):
		}
	}
}

// ReconcileOnce checks every pending transaction once, concurrently
func (r *Reconciler) ReconcileOnce(ctx context.Context, pool pond.Pool) error {
	pending, err := r.store.ListPendingTransactions(ctx)
	if err != nil {
		return err
	}
	if len(pending) == 0 {
		return nil
	}

	logger.DebugCtx(ctx, "reconciling pending transactions", zap.Int("count", len(pending)))

	group := pool.NewGroup()
	for _, tx := range pending {
		tx := tx
		group.Submit(func() {
			r.reconcileTransaction(ctx, tx)
		})
	}
	group.Wait()

	return nil
}

// reconcileTransaction fetches the receipt with retry and applies the
// monotonic status transition. Transactions without a receipt stay pending;
// the bump path handles the ones stuck for good.
func (r *Reconciler) reconcileTransaction(ctx context.Context, tx schema.Transaction) {
	var status domain.TransactionStatus

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = time.Second
	b.MaxInterval = 10 * time.Second
	b.MaxElapsedTime = time.Minute

	operation := func() error {
		var err error
		status, err = r.ledger.ReceiptStatus(ctx, tx.TxHash)
		return err
	}
	if err := backoff.Retry(operation, backoff.WithContext(b, ctx)); err != nil {
		logger.WarnCtx(ctx, "failed to fetch receipt",
			zap.String("tx_hash", tx.TxHash),
			zap.Error(err),
		)
		return
	}

	if status == domain.TransactionStatusPending {
		return
	}

	if err := r.store.UpdateTransactionStatus(ctx, tx.TxHash, status); err != nil {
		logger.ErrorCtx(ctx, err, zap.String("tx_hash", tx.TxHash))
		return
	}

	logger.InfoCtx(ctx, "transaction reconciled",
		zap.String("tx_hash", tx.TxHash),
		zap.String("status", string(status)),
	)
}
