package orderservice

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/scrapsync/scrapsync/internal/domain"
	"github.com/scrapsync/scrapsync/internal/pg"
)

type mocks struct {
	orders        *MockOrderRepo
	accounts      *MockAccountRepo
	relationships *MockRelationshipRepo
	payout        *MockPayout
	notifier      *MockNotifier
	txManager     *pg.MockTXManager
}

func newMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		orders:        NewMockOrderRepo(ctrl),
		accounts:      NewMockAccountRepo(ctrl),
		relationships: NewMockRelationshipRepo(ctrl),
		payout:        NewMockPayout(ctrl),
		notifier:      NewMockNotifier(ctrl),
		txManager:     pg.NewMockTXManager(ctrl),
	}
	service := New(m.orders, m.accounts, m.relationships, m.payout, m.notifier, m.txManager)
	return service, m
}

func passThrough(m *pg.MockTXManager) {
	m.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn pg.TransactionalFn) error {
			return fn(ctx)
		},
	).AnyTimes()
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func order(id int, status string, partnerID *int) *domain.Order {
	return &domain.Order{
		ID:              id,
		CustomerID:      1,
		MCPID:           1,
		PickupPartnerID: partnerID,
		OrderAmount:     dec("120"),
		Status:          status,
		Address:         "12 MG Road, Pune",
	}
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to string
		want     bool
	}{
		{domain.OrderPending, domain.OrderAssigned, true},
		{domain.OrderAssigned, domain.OrderInProgress, true},
		{domain.OrderInProgress, domain.OrderCompleted, true},
		{domain.OrderAssigned, domain.OrderCompleted, true},
		{domain.OrderPending, domain.OrderCancelled, true},
		{domain.OrderInProgress, domain.OrderCancelled, true},
		{domain.OrderAssigned, domain.OrderPending, false},
		{domain.OrderCompleted, domain.OrderInProgress, false},
		{domain.OrderCompleted, domain.OrderCancelled, false},
		{domain.OrderCancelled, domain.OrderAssigned, false},
		{domain.OrderCancelled, domain.OrderCompleted, false},
		{domain.OrderPending, "SHIPPED", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, canTransition(tt.from, tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestCreate(t *testing.T) {
	t.Run("creates a pending order and notifies the MCP", func(t *testing.T) {
		service, m := newMock(t)
		passThrough(m.txManager)

		m.orders.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o *domain.Order) (*domain.Order, error) {
				assert.Equal(t, domain.OrderPending, o.Status)
				assert.Equal(t, 1, o.CustomerID)
				assert.Equal(t, 1, o.MCPID)
				o.ID = 10
				return o, nil
			})
		m.notifier.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, n *domain.Notification) (*domain.Notification, error) {
				assert.Equal(t, domain.PriorityHigh, n.Priority)
				assert.True(t, n.ActionRequired)
				return n, nil
			})

		got, err := service.Create(context.Background(), 1, CreateParams{OrderAmount: dec("120"), Address: "12 MG Road, Pune"})
		assert.NoError(t, err)
		assert.Equal(t, 10, got.ID)
	})

	t.Run("rejects invalid input", func(t *testing.T) {
		service, _ := newMock(t)

		_, err := service.Create(context.Background(), 1, CreateParams{OrderAmount: dec("0"), Address: "somewhere"})
		assert.ErrorIs(t, err, ErrInvalidOrder)

		_, err = service.Create(context.Background(), 1, CreateParams{OrderAmount: dec("100"), Address: ""})
		assert.ErrorIs(t, err, ErrInvalidOrder)
	})
}

func TestAssign(t *testing.T) {
	t.Run("assigns to an active associated partner", func(t *testing.T) {
		service, m := newMock(t)
		passThrough(m.txManager)

		m.orders.EXPECT().GetByIDForUpdate(gomock.Any(), 10).Return(order(10, domain.OrderPending, nil), nil)
		m.accounts.EXPECT().GetByID(gomock.Any(), 7).Return(
			&domain.Account{ID: 7, Role: domain.RolePickupPartner, Status: domain.StatusActive}, nil)
		m.relationships.EXPECT().GetActiveByPair(gomock.Any(), 1, 7).Return(&domain.PartnerRelationship{ID: 3}, nil)
		partnerID := 7
		m.orders.EXPECT().Assign(gomock.Any(), 10, 7).Return(order(10, domain.OrderAssigned, &partnerID), nil)
		m.notifier.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&domain.Notification{}, nil)

		got, err := service.Assign(context.Background(), 1, 10, 7)
		assert.NoError(t, err)
		assert.Equal(t, domain.OrderAssigned, got.Status)
	})

	t.Run("inactive partner", func(t *testing.T) {
		service, m := newMock(t)
		passThrough(m.txManager)
		m.orders.EXPECT().GetByIDForUpdate(gomock.Any(), 10).Return(order(10, domain.OrderPending, nil), nil)
		m.accounts.EXPECT().GetByID(gomock.Any(), 7).Return(
			&domain.Account{ID: 7, Role: domain.RolePickupPartner, Status: domain.StatusInactive}, nil)

		_, err := service.Assign(context.Background(), 1, 10, 7)
		assert.ErrorIs(t, err, ErrPartnerNotFound)
	})

	t.Run("partner not associated with the MCP", func(t *testing.T) {
		service, m := newMock(t)
		passThrough(m.txManager)
		m.orders.EXPECT().GetByIDForUpdate(gomock.Any(), 10).Return(order(10, domain.OrderPending, nil), nil)
		m.accounts.EXPECT().GetByID(gomock.Any(), 7).Return(
			&domain.Account{ID: 7, Role: domain.RolePickupPartner, Status: domain.StatusActive}, nil)
		m.relationships.EXPECT().GetActiveByPair(gomock.Any(), 1, 7).Return(nil, nil)

		_, err := service.Assign(context.Background(), 1, 10, 7)
		assert.ErrorIs(t, err, ErrNotAssociated)
	})

	t.Run("completed order cannot be assigned", func(t *testing.T) {
		service, m := newMock(t)
		passThrough(m.txManager)
		m.orders.EXPECT().GetByIDForUpdate(gomock.Any(), 10).Return(order(10, domain.OrderCompleted, nil), nil)

		_, err := service.Assign(context.Background(), 1, 10, 7)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("unknown order", func(t *testing.T) {
		service, m := newMock(t)
		passThrough(m.txManager)
		m.orders.EXPECT().GetByIDForUpdate(gomock.Any(), 10).Return(nil, nil)

		_, err := service.Assign(context.Background(), 1, 10, 7)
		assert.ErrorIs(t, err, ErrOrderNotFound)
	})

	t.Run("only the order's MCP may assign", func(t *testing.T) {
		service, m := newMock(t)
		passThrough(m.txManager)
		m.orders.EXPECT().GetByIDForUpdate(gomock.Any(), 10).Return(order(10, domain.OrderPending, nil), nil)

		_, err := service.Assign(context.Background(), 42, 10, 7)
		assert.ErrorIs(t, err, ErrNotOrderParty)
	})
}

func TestUpdateStatus(t *testing.T) {
	partnerID := 7

	t.Run("completion stamps completed_at and settles the payout once", func(t *testing.T) {
		service, m := newMock(t)
		passThrough(m.txManager)

		m.orders.EXPECT().GetByIDForUpdate(gomock.Any(), 10).Return(order(10, domain.OrderInProgress, &partnerID), nil)
		completed := order(10, domain.OrderCompleted, &partnerID)
		m.orders.EXPECT().UpdateStatus(gomock.Any(), 10, domain.OrderCompleted, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ int, _ string, completedAt *time.Time) (*domain.Order, error) {
				assert.NotNil(t, completedAt)
				completed.CompletedAt = completedAt
				return completed, nil
			})
		m.payout.EXPECT().SettlePayout(gomock.Any(), completed).Return(nil).Times(1)
		// Customer and MCP share an id here, so two parties get notified.
		m.notifier.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&domain.Notification{}, nil).Times(2)

		got, err := service.UpdateStatus(context.Background(), 1, 10, domain.OrderCompleted)
		assert.NoError(t, err)
		assert.Equal(t, domain.OrderCompleted, got.Status)
	})

	t.Run("completing an already completed order fails without a second payout", func(t *testing.T) {
		service, m := newMock(t)
		passThrough(m.txManager)
		m.orders.EXPECT().GetByIDForUpdate(gomock.Any(), 10).Return(order(10, domain.OrderCompleted, &partnerID), nil)

		_, err := service.UpdateStatus(context.Background(), 1, 10, domain.OrderCompleted)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("backward transition is rejected", func(t *testing.T) {
		service, m := newMock(t)
		passThrough(m.txManager)
		m.orders.EXPECT().GetByIDForUpdate(gomock.Any(), 10).Return(order(10, domain.OrderInProgress, &partnerID), nil)

		_, err := service.UpdateStatus(context.Background(), 1, 10, domain.OrderAssigned)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("unknown status", func(t *testing.T) {
		service, _ := newMock(t)

		_, err := service.UpdateStatus(context.Background(), 1, 10, "SHIPPED")
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("assigned partner may advance the order", func(t *testing.T) {
		service, m := newMock(t)
		passThrough(m.txManager)

		m.orders.EXPECT().GetByIDForUpdate(gomock.Any(), 10).Return(order(10, domain.OrderAssigned, &partnerID), nil)
		m.orders.EXPECT().UpdateStatus(gomock.Any(), 10, domain.OrderInProgress, nil).
			Return(order(10, domain.OrderInProgress, &partnerID), nil)
		m.notifier.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&domain.Notification{}, nil).Times(2)

		_, err := service.UpdateStatus(context.Background(), 7, 10, domain.OrderInProgress)
		assert.NoError(t, err)
	})

	t.Run("a stranger cannot advance the order", func(t *testing.T) {
		service, m := newMock(t)
		passThrough(m.txManager)
		m.orders.EXPECT().GetByIDForUpdate(gomock.Any(), 10).Return(order(10, domain.OrderInProgress, &partnerID), nil)

		_, err := service.UpdateStatus(context.Background(), 42, 10, domain.OrderCompleted)
		assert.ErrorIs(t, err, ErrNotOrderParty)
	})

	t.Run("payout failure aborts the whole transition", func(t *testing.T) {
		service, m := newMock(t)
		passThrough(m.txManager)

		m.orders.EXPECT().GetByIDForUpdate(gomock.Any(), 10).Return(order(10, domain.OrderInProgress, &partnerID), nil)
		completed := order(10, domain.OrderCompleted, &partnerID)
		m.orders.EXPECT().UpdateStatus(gomock.Any(), 10, domain.OrderCompleted, gomock.Any()).Return(completed, nil)
		m.payout.EXPECT().SettlePayout(gomock.Any(), completed).Return(ErrTransactionFailed)

		_, err := service.UpdateStatus(context.Background(), 1, 10, domain.OrderCompleted)
		assert.ErrorIs(t, err, ErrTransactionFailed)
	})

	t.Run("in-progress notifies with high priority", func(t *testing.T) {
		service, m := newMock(t)
		passThrough(m.txManager)

		m.orders.EXPECT().GetByIDForUpdate(gomock.Any(), 10).Return(order(10, domain.OrderAssigned, &partnerID), nil)
		m.orders.EXPECT().UpdateStatus(gomock.Any(), 10, domain.OrderInProgress, nil).
			Return(order(10, domain.OrderInProgress, &partnerID), nil)
		m.notifier.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, n *domain.Notification) (*domain.Notification, error) {
				assert.Equal(t, domain.PriorityHigh, n.Priority)
				assert.True(t, n.ActionRequired)
				return n, nil
			}).Times(2)

		_, err := service.UpdateStatus(context.Background(), 1, 10, domain.OrderInProgress)
		assert.NoError(t, err)
	})
}

func TestCancel(t *testing.T) {
	partnerID := 7

	t.Run("cancels a non-terminal order with the reason in the notification", func(t *testing.T) {
		service, m := newMock(t)
		passThrough(m.txManager)

		m.orders.EXPECT().GetByIDForUpdate(gomock.Any(), 10).Return(order(10, domain.OrderAssigned, &partnerID), nil)
		m.orders.EXPECT().UpdateStatus(gomock.Any(), 10, domain.OrderCancelled, nil).
			Return(order(10, domain.OrderCancelled, &partnerID), nil)
		m.notifier.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, n *domain.Notification) (*domain.Notification, error) {
				assert.Contains(t, n.Message, "Customer unavailable")
				assert.False(t, n.ActionRequired)
				return n, nil
			}).Times(2)

		got, err := service.Cancel(context.Background(), 1, 10, "Customer unavailable")
		assert.NoError(t, err)
		assert.Equal(t, domain.OrderCancelled, got.Status)
	})

	t.Run("completed order cannot be cancelled", func(t *testing.T) {
		service, m := newMock(t)
		passThrough(m.txManager)
		m.orders.EXPECT().GetByIDForUpdate(gomock.Any(), 10).Return(order(10, domain.OrderCompleted, &partnerID), nil)

		_, err := service.Cancel(context.Background(), 1, 10, "")
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("a stranger cannot cancel the order", func(t *testing.T) {
		service, m := newMock(t)
		passThrough(m.txManager)
		m.orders.EXPECT().GetByIDForUpdate(gomock.Any(), 10).Return(order(10, domain.OrderAssigned, &partnerID), nil)

		_, err := service.Cancel(context.Background(), 42, 10, "")
		assert.ErrorIs(t, err, ErrNotOrderParty)
	})
}

func TestGetOrder(t *testing.T) {
	service, m := newMock(t)

	m.orders.EXPECT().GetByID(gomock.Any(), 10).Return(order(10, domain.OrderPending, nil), nil)
	got, err := service.GetOrder(context.Background(), 10)
	assert.NoError(t, err)
	assert.Equal(t, 10, got.ID)

	m.orders.EXPECT().GetByID(gomock.Any(), 99).Return(nil, nil)
	_, err = service.GetOrder(context.Background(), 99)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}
