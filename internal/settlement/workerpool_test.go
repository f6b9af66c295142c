package settlement

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/scrapsync/scrapsync/internal/domain"
)

func TestWorkerPoolSubmit(t *testing.T) {
	wp := NewWorkerPool(2)
	defer wp.Close()

	settled := make(chan int, 1)
	err := wp.Submit(context.Background(), pendingWithdrawal(5, 1, "10"), func(txn domain.Transaction) error {
		settled <- txn.ID
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 5, <-settled)
}

func TestWorkerPoolSubmitCancelled(t *testing.T) {
	// No workers and no buffer, so only the context case can fire.
	wp := &WorkerPool{jobs: make(chan job)}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := wp.Submit(ctx, pendingWithdrawal(5, 1, "10"), func(domain.Transaction) error { return nil })
	assert.ErrorIs(t, err, context.Canceled)
}
