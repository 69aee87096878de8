package jobs

import (
	"context"
	"time"

	"go.uber.org/zap"
	"wallet-manager.backend/pkg/logger"
)

// Reconciler is the subset of the transfer usecase the job needs.
type Reconciler interface {
	Reconcile(ctx context.Context) (int, error)
}

// ReconcileJob sweeps pending transactions on a timer, so status staleness
// is bounded even when nobody queries the listing endpoints.
type ReconcileJob struct {
	reconciler Reconciler
	interval   time.Duration
	stop       chan struct{}
}

func NewReconcileJob(reconciler Reconciler, interval time.Duration) *ReconcileJob {
	return &ReconcileJob{
		reconciler: reconciler,
		interval:   interval,
		stop:       make(chan struct{}),
	}
}

func (j *ReconcileJob) Start(ctx context.Context) {
	logger.Info(ctx, "starting reconcile job", zap.Duration("interval", j.interval))

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info(ctx, "reconcile job stopped (context cancelled)")
			return
		case <-j.stop:
			logger.Info(ctx, "reconcile job stopped")
			return
		case <-ticker.C:
			j.runOnce(ctx)
		}
	}
}

func (j *ReconcileJob) Stop() {
	close(j.stop)
}

func (j *ReconcileJob) runOnce(ctx context.Context) {
	updated, err := j.reconciler.Reconcile(ctx)
	if err != nil {
		logger.Error(ctx, "reconcile sweep failed", zap.Error(err))
		return
	}
	if updated > 0 {
		logger.Info(ctx, "reconcile sweep finished", zap.Int("updated", updated))
	}
}
