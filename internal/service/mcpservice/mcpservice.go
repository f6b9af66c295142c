package mcpservice

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/scrapsync/scrapsync/internal/domain"
	orderrepo "github.com/scrapsync/scrapsync/internal/repo/order-repo"
)

const recentTransactionLimit = 5

type AccountRepo interface {
	GetByID(ctx context.Context, id int) (*domain.Account, error)
}

type RelationshipRepo interface {
	CountByMCP(ctx context.Context, mcpID int) (total, active int, err error)
}

type OrderRepo interface {
	StatsByMCP(ctx context.Context, mcpID int) (*orderrepo.Stats, error)
}

type TransactionRepo interface {
	RecentByUser(ctx context.Context, userID, limit int) ([]domain.Transaction, error)
}

var (
	ErrAccountNotFound = errors.New("account not found")
	ErrNotMCP          = errors.New("dashboard is only available to MCP accounts")
)

// Dashboard is the MCP overview: wallet, roster and order counters plus
// the latest ledger activity. Read-only aggregates, no core logic.
type Dashboard struct {
	Account            *domain.Account
	PartnersTotal      int
	PartnersActive     int
	PartnersInactive   int
	OrderStats         *orderrepo.Stats
	RecentTransactions []domain.Transaction
}

type Service struct {
	accountRepo      AccountRepo
	relationshipRepo RelationshipRepo
	orderRepo        OrderRepo
	transactionRepo  TransactionRepo
}

func New(accountRepo AccountRepo, relationshipRepo RelationshipRepo, orderRepo OrderRepo, transactionRepo TransactionRepo) *Service {
	return &Service{
		accountRepo:      accountRepo,
		relationshipRepo: relationshipRepo,
		orderRepo:        orderRepo,
		transactionRepo:  transactionRepo,
	}
}

func (s *Service) GetDashboard(ctx context.Context, mcpID int) (*Dashboard, error) {
	account, err := s.accountRepo.GetByID(ctx, mcpID)
	if err != nil {
		zap.L().Error("failed to load dashboard account", zap.Error(err))
		return nil, err
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}
	if account.Role != domain.RoleMCP {
		return nil, ErrNotMCP
	}

	total, active, err := s.relationshipRepo.CountByMCP(ctx, mcpID)
	if err != nil {
		return nil, err
	}

	orderStats, err := s.orderRepo.StatsByMCP(ctx, mcpID)
	if err != nil {
		return nil, err
	}

	recent, err := s.transactionRepo.RecentByUser(ctx, mcpID, recentTransactionLimit)
	if err != nil {
		return nil, err
	}

	return &Dashboard{
		Account:            account,
		PartnersTotal:      total,
		PartnersActive:     active,
		PartnersInactive:   total - active,
		OrderStats:         orderStats,
		RecentTransactions: recent,
	}, nil
}
