package settlement

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/scrapsync/scrapsync/internal/config"
	"github.com/scrapsync/scrapsync/internal/domain"
	"github.com/scrapsync/scrapsync/internal/pg"
)

type mocks struct {
	provider     *MockPayoutProvider
	transactions *MockTransactionRepo
	accounts     *MockAccountRepo
	notifier     *MockNotifier
	txManager    *pg.MockTXManager
}

func newMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		provider:     NewMockPayoutProvider(ctrl),
		transactions: NewMockTransactionRepo(ctrl),
		accounts:     NewMockAccountRepo(ctrl),
		notifier:     NewMockNotifier(ctrl),
		txManager:    pg.NewMockTXManager(ctrl),
	}
	cfg := &config.Config{SettleInterval: 10 * time.Millisecond}
	service := New(cfg, m.provider, m.transactions, m.accounts, m.notifier, m.txManager)
	return service, m
}

func passThrough(m *pg.MockTXManager) {
	m.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn pg.TransactionalFn) error {
			return fn(ctx)
		},
	).AnyTimes()
}

func intPtr(v int) *int { return &v }

func pendingWithdrawal(id, userID int, amount string) domain.Transaction {
	return domain.Transaction{
		ID:         id,
		FromUserID: intPtr(userID),
		Amount:     decimal.RequireFromString(amount),
		Type:       domain.TxnWithdraw,
		Status:     domain.TxnPending,
	}
}

func TestStart(t *testing.T) {
	service, m := newMock(t)
	m.transactions.EXPECT().FindPendingWithdrawals(gomock.Any(), batchLimit).
		Return(nil, nil).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	service.Start(ctx)
	time.Sleep(30 * time.Millisecond)
	cancel()
}

func TestHandleWithdrawal(t *testing.T) {
	t.Run("processed payout completes the withdrawal", func(t *testing.T) {
		service, m := newMock(t)
		passThrough(m.txManager)

		m.provider.EXPECT().PayoutStatus(gomock.Any(), "txn_9").Return("processed", nil)
		m.transactions.EXPECT().MarkCompleted(gomock.Any(), 9, nil, nil).Return(true, nil)
		m.notifier.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, n *domain.Notification) (*domain.Notification, error) {
				assert.Equal(t, 2, n.UserID)
				assert.Equal(t, "Withdrawal Completed", n.Title)
				return n, nil
			})

		err := service.handleWithdrawal(context.Background(), pendingWithdrawal(9, 2, "40"))
		assert.NoError(t, err)
	})

	t.Run("rejected payout refunds the wallet", func(t *testing.T) {
		service, m := newMock(t)
		passThrough(m.txManager)

		m.provider.EXPECT().PayoutStatus(gomock.Any(), "txn_9").Return("rejected", nil)
		m.transactions.EXPECT().MarkFailed(gomock.Any(), 9).Return(true, nil)
		m.transactions.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, txn *domain.Transaction) (*domain.Transaction, error) {
				assert.Equal(t, domain.TxnRefund, txn.Type)
				assert.Equal(t, domain.TxnCompleted, txn.Status)
				assert.Equal(t, 2, *txn.ToUserID)
				assert.True(t, txn.Amount.Equal(decimal.RequireFromString("40")))
				txn.ID = 15
				return txn, nil
			})
		m.accounts.EXPECT().Credit(gomock.Any(), 2, decimal.RequireFromString("40")).
			Return(decimal.RequireFromString("40"), nil)
		m.notifier.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, n *domain.Notification) (*domain.Notification, error) {
				assert.Equal(t, "Withdrawal Failed", n.Title)
				assert.Equal(t, domain.PriorityHigh, n.Priority)
				return n, nil
			})

		err := service.handleWithdrawal(context.Background(), pendingWithdrawal(9, 2, "40"))
		assert.NoError(t, err)
	})

	t.Run("pending payout leaves everything alone", func(t *testing.T) {
		service, m := newMock(t)
		m.provider.EXPECT().PayoutStatus(gomock.Any(), "txn_9").Return("pending", nil)

		err := service.handleWithdrawal(context.Background(), pendingWithdrawal(9, 2, "40"))
		assert.NoError(t, err)
	})

	t.Run("already resolved withdrawal is skipped", func(t *testing.T) {
		service, m := newMock(t)
		passThrough(m.txManager)
		m.provider.EXPECT().PayoutStatus(gomock.Any(), "txn_9").Return("processed", nil)
		m.transactions.EXPECT().MarkCompleted(gomock.Any(), 9, nil, nil).Return(false, nil)

		err := service.handleWithdrawal(context.Background(), pendingWithdrawal(9, 2, "40"))
		assert.NoError(t, err)
	})

	t.Run("provider errors are retried then surfaced", func(t *testing.T) {
		service, m := newMock(t)
		m.provider.EXPECT().PayoutStatus(gomock.Any(), "txn_9").
			Return("", errors.New("payment provider unavailable")).Times(maxRetries)

		err := service.handleWithdrawal(context.Background(), pendingWithdrawal(9, 2, "40"))
		assert.Error(t, err)
	})
}

func TestProcessWithdrawals(t *testing.T) {
	t.Run("deduplicates in-flight transactions", func(t *testing.T) {
		service, m := newMock(t)

		txn := pendingWithdrawal(33, 2, "40")
		inFlight.Store(txn.ID, struct{}{})
		defer inFlight.Delete(txn.ID)

		m.transactions.EXPECT().FindPendingWithdrawals(gomock.Any(), batchLimit).
			Return([]domain.Transaction{txn}, nil)

		// No provider call expected: the transaction is already in flight.
		service.processWithdrawals(context.Background())
	})

	t.Run("fetch failure is logged, not fatal", func(t *testing.T) {
		service, m := newMock(t)
		m.transactions.EXPECT().FindPendingWithdrawals(gomock.Any(), batchLimit).
			Return(nil, errors.New("connection reset"))

		service.processWithdrawals(context.Background())
	})
}
