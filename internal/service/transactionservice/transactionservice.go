package transactionservice

import (
	"context"
	"errors"

	"github.com/scrapsync/scrapsync/internal/domain"
	transactionrepo "github.com/scrapsync/scrapsync/internal/repo/transaction-repo"
)

type TransactionRepo interface {
	GetByID(ctx context.Context, id int) (*domain.Transaction, error)
	ListByUser(ctx context.Context, userID int, filter transactionrepo.Filter, limit, offset int) ([]domain.Transaction, int, error)
}

var ErrTransactionNotFound = errors.New("transaction not found")

const (
	defaultLimit = 20
	maxLimit     = 100
)

// Service reads the transaction log on behalf of a user. Writes go
// through the wallet and payment services only.
type Service struct {
	transactionRepo TransactionRepo
}

func New(transactionRepo TransactionRepo) *Service {
	return &Service{
		transactionRepo: transactionRepo,
	}
}

func (s *Service) List(ctx context.Context, userID int, filter transactionrepo.Filter, page, limit int) ([]domain.Transaction, int, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return s.transactionRepo.ListByUser(ctx, userID, filter, limit, (page-1)*limit)
}

// GetTransaction returns one transaction if the user is its sender or
// recipient; anything else reads as not found.
func (s *Service) GetTransaction(ctx context.Context, userID, id int) (*domain.Transaction, error) {
	txn, err := s.transactionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if txn == nil {
		return nil, ErrTransactionNotFound
	}

	involved := (txn.FromUserID != nil && *txn.FromUserID == userID) ||
		(txn.ToUserID != nil && *txn.ToUserID == userID)
	if !involved {
		return nil, ErrTransactionNotFound
	}
	return txn, nil
}
