// Package settlement resolves PENDING withdrawals against the payment
// provider's payout ledger in the background.
package settlement

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/scrapsync/scrapsync/internal/config"
	"github.com/scrapsync/scrapsync/internal/domain"
	"github.com/scrapsync/scrapsync/internal/gateway"
	"github.com/scrapsync/scrapsync/internal/pg"
)

const (
	maxRetries    = 3
	retryInterval = time.Second * 1
	batchLimit    = 100
)

var inFlight sync.Map

type PayoutProvider interface {
	PayoutStatus(ctx context.Context, reference string) (string, error)
}

type TransactionRepo interface {
	FindPendingWithdrawals(ctx context.Context, limit int) ([]domain.Transaction, error)
	MarkCompleted(ctx context.Context, id int, paymentID, signature *string) (bool, error)
	MarkFailed(ctx context.Context, id int) (bool, error)
	Create(ctx context.Context, txn *domain.Transaction) (*domain.Transaction, error)
}

type AccountRepo interface {
	Credit(ctx context.Context, id int, amount decimal.Decimal) (decimal.Decimal, error)
}

type Notifier interface {
	Create(ctx context.Context, n *domain.Notification) (*domain.Notification, error)
}

// Service polls the provider for every PENDING WITHDRAW transaction. A
// processed payout closes the transaction COMPLETED; a rejected one
// moves it to FAILED and credits the amount back through a compensating
// REFUND transaction, keeping the ledger reconcilable.
type Service struct {
	provider        PayoutProvider
	transactionRepo TransactionRepo
	accountRepo     AccountRepo
	notifier        Notifier
	txManager       pg.TXManager
	workerPool      WorkerPoolI
	pollInterval    time.Duration
}

func New(cfg *config.Config, provider PayoutProvider, transactionRepo TransactionRepo, accountRepo AccountRepo, notifier Notifier, txManager pg.TXManager) *Service {
	return &Service{
		provider:        provider,
		transactionRepo: transactionRepo,
		accountRepo:     accountRepo,
		notifier:        notifier,
		txManager:       txManager,
		workerPool:      NewWorkerPool(10),
		pollInterval:    cfg.SettleInterval,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Settlement service started")
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping settlement service")
			return
		case <-ticker.C:
			s.processWithdrawals(ctx)
		}
	}
}

func (s *Service) processWithdrawals(ctx context.Context) {
	withdrawals, err := s.transactionRepo.FindPendingWithdrawals(ctx, batchLimit)
	if err != nil {
		zap.L().Error("Failed to fetch pending withdrawals", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, txn := range withdrawals {
		txn := txn

		if _, loaded := inFlight.LoadOrStore(txn.ID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.Submit(ctx, txn, func(txn domain.Transaction) error {
				defer inFlight.Delete(txn.ID)
				return s.handleWithdrawal(ctx, txn)
			})
			if err != nil {
				inFlight.Delete(txn.ID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error processing withdrawals", zap.Error(err))
	}
}

// payoutReference is the id under which a withdrawal is known to the
// provider's payout API.
func payoutReference(txnID int) string {
	return fmt.Sprintf("txn_%d", txnID)
}

func (s *Service) handleWithdrawal(ctx context.Context, txn domain.Transaction) error {
	var status string
	var err error

	for attempt := 1; attempt <= maxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		status, err = s.provider.PayoutStatus(ctx, payoutReference(txn.ID))
		if err == nil {
			break
		}
		if attempt < maxRetries {
			time.Sleep(retryInterval * time.Duration(attempt))
			continue
		}
		return fmt.Errorf("failed to query payout for transaction %d after %d retries: %w", txn.ID, maxRetries, err)
	}

	switch status {
	case gateway.PayoutProcessed:
		return s.settle(ctx, txn)
	case gateway.PayoutRejected:
		return s.refund(ctx, txn)
	case gateway.PayoutPending:
		return nil
	default:
		zap.L().Warn("Unrecognized payout status", zap.Int("transactionID", txn.ID), zap.String("status", status))
		return nil
	}
}

func (s *Service) settle(ctx context.Context, txn domain.Transaction) error {
	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		ok, err := s.transactionRepo.MarkCompleted(ctx, txn.ID, nil, nil)
		if err != nil {
			return err
		}
		if !ok {
			// Already resolved by a concurrent run.
			return nil
		}

		_, err = s.notifier.Create(ctx, &domain.Notification{
			UserID:      *txn.FromUserID,
			Title:       "Withdrawal Completed",
			Message:     fmt.Sprintf("Your withdrawal of ₹%s has been transferred to your bank account.", txn.Amount),
			Type:        domain.NotificationWallet,
			ReferenceID: &txn.ID,
		})
		if err != nil {
			return err
		}

		zap.L().Info("Withdrawal settled", zap.Int("transactionID", txn.ID))
		return nil
	})
}

// refund fails the withdrawal and gives the money back. The FAILED
// withdrawal and its compensating COMPLETED REFUND commit together.
func (s *Service) refund(ctx context.Context, txn domain.Transaction) error {
	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		ok, err := s.transactionRepo.MarkFailed(ctx, txn.ID)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}

		userID := *txn.FromUserID
		refund, err := s.transactionRepo.Create(ctx, &domain.Transaction{
			ToUserID:    &userID,
			Amount:      txn.Amount,
			Type:        domain.TxnRefund,
			Status:      domain.TxnCompleted,
			Description: fmt.Sprintf("Refund for failed withdrawal #%d", txn.ID),
		})
		if err != nil {
			return err
		}

		if _, err := s.accountRepo.Credit(ctx, userID, txn.Amount); err != nil {
			return err
		}

		_, err = s.notifier.Create(ctx, &domain.Notification{
			UserID:      userID,
			Title:       "Withdrawal Failed",
			Message:     fmt.Sprintf("Your withdrawal of ₹%s was rejected by the bank and has been refunded to your wallet.", txn.Amount),
			Type:        domain.NotificationWallet,
			ReferenceID: &refund.ID,
			Priority:    domain.PriorityHigh,
		})
		if err != nil {
			return err
		}

		zap.L().Info("Withdrawal refunded", zap.Int("transactionID", txn.ID), zap.Int("refundID", refund.ID))
		return nil
	})
}
