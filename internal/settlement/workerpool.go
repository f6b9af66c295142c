package settlement

import (
	"context"

	"go.uber.org/zap"

	"github.com/scrapsync/scrapsync/internal/domain"
)

// SettleFn resolves one pending withdrawal against the provider.
type SettleFn func(txn domain.Transaction) error

type WorkerPoolI interface {
	Submit(ctx context.Context, txn domain.Transaction, settle SettleFn) error
	Close()
}

type job struct {
	txn    domain.Transaction
	settle SettleFn
}

// WorkerPool bounds how many withdrawals are settled concurrently, so
// a large PENDING backlog cannot flood the provider with status calls.
type WorkerPool struct {
	jobs chan job
}

func NewWorkerPool(size int) *WorkerPool {
	wp := &WorkerPool{jobs: make(chan job, size)}

	for i := 0; i < size; i++ {
		go wp.worker()
	}
	return wp
}

func (wp *WorkerPool) worker() {
	for j := range wp.jobs {
		if err := j.settle(j.txn); err != nil {
			zap.L().Error("Withdrawal settlement failed",
				zap.Int("transactionID", j.txn.ID), zap.Error(err))
		}
	}
}

func (wp *WorkerPool) Submit(ctx context.Context, txn domain.Transaction, settle SettleFn) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case wp.jobs <- job{txn: txn, settle: settle}:
		return nil
	}
}

func (wp *WorkerPool) Close() {
	close(wp.jobs)
}
