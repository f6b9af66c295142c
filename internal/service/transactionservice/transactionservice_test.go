package transactionservice

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/scrapsync/scrapsync/internal/domain"
	transactionrepo "github.com/scrapsync/scrapsync/internal/repo/transaction-repo"
)

func newMock(t *testing.T) (*Service, *MockTransactionRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockTransactionRepo(ctrl)
	return New(repo), repo
}

func intPtr(v int) *int { return &v }

func TestList(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		limit      int
		wantLimit  int
		wantOffset int
	}{
		{name: "defaults", page: 0, limit: 0, wantLimit: 20, wantOffset: 0},
		{name: "third page", page: 3, limit: 10, wantLimit: 10, wantOffset: 20},
		{name: "limit clamped", page: 1, limit: 1000, wantLimit: 100, wantOffset: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo := newMock(t)
			filter := transactionrepo.Filter{Type: domain.TxnTransfer}
			repo.EXPECT().
				ListByUser(gomock.Any(), 1, filter, tt.wantLimit, tt.wantOffset).
				Return([]domain.Transaction{{ID: 42}}, 1, nil)

			txns, total, err := service.List(context.Background(), 1, filter, tt.page, tt.limit)
			assert.NoError(t, err)
			assert.Equal(t, 1, total)
			assert.Len(t, txns, 1)
		})
	}
}

func TestGetTransaction(t *testing.T) {
	txn := &domain.Transaction{ID: 42, FromUserID: intPtr(1), ToUserID: intPtr(2)}

	t.Run("sender can read", func(t *testing.T) {
		service, repo := newMock(t)
		repo.EXPECT().GetByID(gomock.Any(), 42).Return(txn, nil)

		got, err := service.GetTransaction(context.Background(), 1, 42)
		assert.NoError(t, err)
		assert.Equal(t, 42, got.ID)
	})

	t.Run("recipient can read", func(t *testing.T) {
		service, repo := newMock(t)
		repo.EXPECT().GetByID(gomock.Any(), 42).Return(txn, nil)

		_, err := service.GetTransaction(context.Background(), 2, 42)
		assert.NoError(t, err)
	})

	t.Run("third party reads not found", func(t *testing.T) {
		service, repo := newMock(t)
		repo.EXPECT().GetByID(gomock.Any(), 42).Return(txn, nil)

		_, err := service.GetTransaction(context.Background(), 3, 42)
		assert.ErrorIs(t, err, ErrTransactionNotFound)
	})

	t.Run("unknown id", func(t *testing.T) {
		service, repo := newMock(t)
		repo.EXPECT().GetByID(gomock.Any(), 99).Return(nil, nil)

		_, err := service.GetTransaction(context.Background(), 1, 99)
		assert.ErrorIs(t, err, ErrTransactionNotFound)
	})
}
