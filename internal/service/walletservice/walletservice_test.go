package walletservice

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/scrapsync/scrapsync/internal/domain"
	"github.com/scrapsync/scrapsync/internal/pg"
	"github.com/scrapsync/scrapsync/internal/service/commission"
)

type mocks struct {
	accounts      *MockAccountRepo
	relationships *MockRelationshipRepo
	transactions  *MockTransactionRepo
	notifier      *MockNotifier
	txManager     *pg.MockTXManager
}

func newMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		accounts:      NewMockAccountRepo(ctrl),
		relationships: NewMockRelationshipRepo(ctrl),
		transactions:  NewMockTransactionRepo(ctrl),
		notifier:      NewMockNotifier(ctrl),
		txManager:     pg.NewMockTXManager(ctrl),
	}
	service := New(m.accounts, m.relationships, m.transactions, m.notifier, m.txManager)
	return service, m
}

// passThrough makes the mocked transaction manager run the unit body.
func passThrough(m *pg.MockTXManager) {
	m.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn pg.TransactionalFn) error {
			return fn(ctx)
		},
	).AnyTimes()
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func mcpAccount(id int, balance string) *domain.Account {
	return &domain.Account{ID: id, FullName: "Asha Verma", Role: domain.RoleMCP, Status: domain.StatusActive, Balance: dec(balance)}
}

func partnerAccount(id int, balance string) *domain.Account {
	return &domain.Account{ID: id, FullName: "Ravi Kumar", Role: domain.RolePickupPartner, Status: domain.StatusActive, Balance: dec(balance)}
}

func TestAddMoney(t *testing.T) {
	t.Run("credits wallet and logs a completed transaction", func(t *testing.T) {
		service, m := newMock(t)
		passThrough(m.txManager)

		m.accounts.EXPECT().GetByID(gomock.Any(), 1).Return(mcpAccount(1, "0"), nil)
		m.accounts.EXPECT().Credit(gomock.Any(), 1, dec("100")).Return(dec("100"), nil)
		m.transactions.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, txn *domain.Transaction) (*domain.Transaction, error) {
				assert.Equal(t, domain.TxnAddMoney, txn.Type)
				assert.Equal(t, domain.TxnCompleted, txn.Status)
				assert.Nil(t, txn.FromUserID)
				assert.Equal(t, 1, *txn.ToUserID)
				assert.True(t, txn.Amount.Equal(dec("100")))
				txn.ID = 42
				return txn, nil
			})
		m.notifier.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&domain.Notification{}, nil)

		txn, newBalance, err := service.AddMoney(context.Background(), 1, dec("100"))
		assert.NoError(t, err)
		assert.Equal(t, 42, txn.ID)
		assert.True(t, newBalance.Equal(dec("100")))
	})

	t.Run("rejects non-positive amount before any mutation", func(t *testing.T) {
		service, _ := newMock(t)

		_, _, err := service.AddMoney(context.Background(), 1, dec("0"))
		assert.ErrorIs(t, err, ErrInvalidAmount)

		_, _, err = service.AddMoney(context.Background(), 1, dec("-5"))
		assert.ErrorIs(t, err, ErrInvalidAmount)
	})

	t.Run("unknown account", func(t *testing.T) {
		service, m := newMock(t)
		passThrough(m.txManager)
		m.accounts.EXPECT().GetByID(gomock.Any(), 99).Return(nil, nil)

		_, _, err := service.AddMoney(context.Background(), 99, dec("100"))
		assert.ErrorIs(t, err, ErrAccountNotFound)
	})

	t.Run("storage error surfaces as transaction failure", func(t *testing.T) {
		service, m := newMock(t)
		passThrough(m.txManager)
		m.accounts.EXPECT().GetByID(gomock.Any(), 1).Return(mcpAccount(1, "0"), nil)
		m.accounts.EXPECT().Credit(gomock.Any(), 1, dec("100")).Return(decimal.Zero, errors.New("connection reset"))

		_, _, err := service.AddMoney(context.Background(), 1, dec("100"))
		assert.ErrorIs(t, err, ErrTransactionFailed)
	})
}

func TestTransferMoney(t *testing.T) {
	activeRel := &domain.PartnerRelationship{ID: 3, MCPID: 1, PartnerID: 2, Status: domain.StatusActive}

	t.Run("moves money and conserves the pair total", func(t *testing.T) {
		service, m := newMock(t)
		passThrough(m.txManager)

		mcpBalance := dec("100")
		partnerBalance := dec("0")
		pairTotal := mcpBalance.Add(partnerBalance)

		m.accounts.EXPECT().GetByID(gomock.Any(), 1).Return(mcpAccount(1, "100"), nil)
		m.accounts.EXPECT().GetByID(gomock.Any(), 2).Return(partnerAccount(2, "0"), nil)
		m.relationships.EXPECT().GetActiveByPair(gomock.Any(), 1, 2).Return(activeRel, nil)
		m.accounts.EXPECT().Debit(gomock.Any(), 1, dec("40")).DoAndReturn(
			func(context.Context, int, decimal.Decimal) (decimal.Decimal, bool, error) {
				mcpBalance = mcpBalance.Sub(dec("40"))
				return mcpBalance, true, nil
			})
		m.accounts.EXPECT().Credit(gomock.Any(), 2, dec("40")).DoAndReturn(
			func(context.Context, int, decimal.Decimal) (decimal.Decimal, error) {
				partnerBalance = partnerBalance.Add(dec("40"))
				return partnerBalance, nil
			})
		m.transactions.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, txn *domain.Transaction) (*domain.Transaction, error) {
				assert.Equal(t, domain.TxnTransfer, txn.Type)
				assert.Equal(t, domain.TxnCompleted, txn.Status)
				assert.Equal(t, 1, *txn.FromUserID)
				assert.Equal(t, 2, *txn.ToUserID)
				txn.ID = 7
				return txn, nil
			})
		m.notifier.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&domain.Notification{}, nil).Times(2)

		txn, err := service.TransferMoney(context.Background(), 1, 2, dec("40"), "")
		assert.NoError(t, err)
		assert.Equal(t, 7, txn.ID)
		assert.True(t, mcpBalance.Equal(dec("60")))
		assert.True(t, partnerBalance.Equal(dec("40")))
		assert.True(t, mcpBalance.Add(partnerBalance).Equal(pairTotal), "transfer must conserve the pair total")
	})

	t.Run("caller that is not an MCP", func(t *testing.T) {
		service, m := newMock(t)
		passThrough(m.txManager)
		m.accounts.EXPECT().GetByID(gomock.Any(), 2).Return(partnerAccount(2, "100"), nil)

		_, err := service.TransferMoney(context.Background(), 2, 1, dec("40"), "")
		assert.ErrorIs(t, err, ErrNotMCP)
	})

	t.Run("no active relationship mutates nothing", func(t *testing.T) {
		service, m := newMock(t)
		passThrough(m.txManager)
		m.accounts.EXPECT().GetByID(gomock.Any(), 1).Return(mcpAccount(1, "100"), nil)
		m.accounts.EXPECT().GetByID(gomock.Any(), 2).Return(partnerAccount(2, "0"), nil)
		m.relationships.EXPECT().GetActiveByPair(gomock.Any(), 1, 2).Return(nil, nil)

		_, err := service.TransferMoney(context.Background(), 1, 2, dec("40"), "")
		assert.ErrorIs(t, err, ErrNotAssociated)
	})

	t.Run("insufficient balance", func(t *testing.T) {
		service, m := newMock(t)
		passThrough(m.txManager)
		m.accounts.EXPECT().GetByID(gomock.Any(), 1).Return(mcpAccount(1, "10"), nil)
		m.accounts.EXPECT().GetByID(gomock.Any(), 2).Return(partnerAccount(2, "0"), nil)
		m.relationships.EXPECT().GetActiveByPair(gomock.Any(), 1, 2).Return(activeRel, nil)
		m.accounts.EXPECT().Debit(gomock.Any(), 1, dec("40")).Return(decimal.Zero, false, nil)

		_, err := service.TransferMoney(context.Background(), 1, 2, dec("40"), "")
		assert.ErrorIs(t, err, ErrInsufficientFunds)
	})
}

func TestWithdrawMoney(t *testing.T) {
	t.Run("debits wallet and leaves the transaction pending", func(t *testing.T) {
		service, m := newMock(t)
		passThrough(m.txManager)

		m.accounts.EXPECT().GetByID(gomock.Any(), 2).Return(partnerAccount(2, "40"), nil)
		m.accounts.EXPECT().Debit(gomock.Any(), 2, dec("40")).Return(dec("0"), true, nil)
		m.transactions.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, txn *domain.Transaction) (*domain.Transaction, error) {
				assert.Equal(t, domain.TxnWithdraw, txn.Type)
				assert.Equal(t, domain.TxnPending, txn.Status)
				assert.Equal(t, 2, *txn.FromUserID)
				assert.Nil(t, txn.ToUserID)
				assert.Contains(t, txn.Description, "3455")
				assert.NotContains(t, txn.Description, "001122334455")
				txn.ID = 9
				return txn, nil
			})
		m.notifier.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&domain.Notification{}, nil)

		txn, err := service.WithdrawMoney(context.Background(), 2, dec("40"), "001122334455")
		assert.NoError(t, err)
		assert.Equal(t, domain.TxnPending, txn.Status)
	})

	t.Run("insufficient balance leaves wallet unchanged", func(t *testing.T) {
		service, m := newMock(t)
		passThrough(m.txManager)
		m.accounts.EXPECT().GetByID(gomock.Any(), 2).Return(partnerAccount(2, "10"), nil)
		m.accounts.EXPECT().Debit(gomock.Any(), 2, dec("40")).Return(decimal.Zero, false, nil)

		_, err := service.WithdrawMoney(context.Background(), 2, dec("40"), "001122334455")
		assert.ErrorIs(t, err, ErrInsufficientFunds)
	})

	t.Run("missing bank details", func(t *testing.T) {
		service, _ := newMock(t)

		_, err := service.WithdrawMoney(context.Background(), 2, dec("40"), "")
		assert.ErrorIs(t, err, ErrInvalidAmount)
	})
}

func TestSettlePayout(t *testing.T) {
	partnerID := 2
	order := &domain.Order{
		ID:              10,
		MCPID:           1,
		PickupPartnerID: &partnerID,
		OrderAmount:     dec("100"),
		Status:          domain.OrderCompleted,
	}

	t.Run("credits partner with amount minus commission, MCP not debited", func(t *testing.T) {
		service, m := newMock(t)
		passThrough(m.txManager)

		rel := &domain.PartnerRelationship{
			MCPID: 1, PartnerID: 2,
			CommissionRate: dec("10"),
			CommissionType: domain.CommissionPercentage,
			Status:         domain.StatusActive,
		}
		m.relationships.EXPECT().GetActiveByPair(gomock.Any(), 1, 2).Return(rel, nil)
		m.transactions.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, txn *domain.Transaction) (*domain.Transaction, error) {
				assert.Equal(t, domain.TxnPayment, txn.Type)
				assert.Equal(t, domain.TxnCompleted, txn.Status)
				assert.True(t, txn.Amount.Equal(dec("90")))
				assert.Equal(t, 10, *txn.OrderID)
				txn.ID = 11
				return txn, nil
			})
		// Only the partner credit is expected; no Debit call may happen.
		m.accounts.EXPECT().Credit(gomock.Any(), 2, dec("90")).Return(dec("90"), nil)
		m.notifier.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&domain.Notification{}, nil)

		err := service.SettlePayout(context.Background(), order)
		assert.NoError(t, err)
	})

	t.Run("withholds payout without an active relationship and alerts the MCP", func(t *testing.T) {
		service, m := newMock(t)
		passThrough(m.txManager)
		m.relationships.EXPECT().GetActiveByPair(gomock.Any(), 1, 2).Return(nil, nil)
		// No transaction and no credit, but the MCP must be told the
		// partner went unpaid.
		m.notifier.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, n *domain.Notification) (*domain.Notification, error) {
				assert.Equal(t, 1, n.UserID)
				assert.Equal(t, "Payout Withheld", n.Title)
				assert.Equal(t, domain.PriorityHigh, n.Priority)
				assert.True(t, n.ActionRequired)
				assert.Equal(t, 10, *n.ReferenceID)
				return n, nil
			})

		err := service.SettlePayout(context.Background(), order)
		assert.NoError(t, err)
	})

	t.Run("invalid commission config fails loudly", func(t *testing.T) {
		service, m := newMock(t)
		passThrough(m.txManager)
		rel := &domain.PartnerRelationship{
			MCPID: 1, PartnerID: 2,
			CommissionRate: dec("150"),
			CommissionType: domain.CommissionFixed,
			Status:         domain.StatusActive,
		}
		m.relationships.EXPECT().GetActiveByPair(gomock.Any(), 1, 2).Return(rel, nil)

		err := service.SettlePayout(context.Background(), order)
		assert.ErrorIs(t, err, commission.ErrInvalidConfig)
	})

	t.Run("order without partner is a no-op", func(t *testing.T) {
		service, _ := newMock(t)

		err := service.SettlePayout(context.Background(), &domain.Order{ID: 10, MCPID: 1})
		assert.NoError(t, err)
	})
}

func TestGetBalance(t *testing.T) {
	service, m := newMock(t)

	m.accounts.EXPECT().GetByID(gomock.Any(), 1).Return(mcpAccount(1, "500.50"), nil)
	balance, err := service.GetBalance(context.Background(), 1)
	assert.NoError(t, err)
	assert.True(t, balance.Equal(dec("500.50")))

	m.accounts.EXPECT().GetByID(gomock.Any(), 99).Return(nil, nil)
	_, err = service.GetBalance(context.Background(), 99)
	assert.ErrorIs(t, err, ErrAccountNotFound)
}
