package walletservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/scrapsync/scrapsync/internal/domain"
	"github.com/scrapsync/scrapsync/internal/pg"
	"github.com/scrapsync/scrapsync/internal/service/commission"
)

type AccountRepo interface {
	GetByID(ctx context.Context, id int) (*domain.Account, error)
	Credit(ctx context.Context, id int, amount decimal.Decimal) (decimal.Decimal, error)
	Debit(ctx context.Context, id int, amount decimal.Decimal) (decimal.Decimal, bool, error)
}

type RelationshipRepo interface {
	GetActiveByPair(ctx context.Context, mcpID, partnerID int) (*domain.PartnerRelationship, error)
}

type TransactionRepo interface {
	Create(ctx context.Context, txn *domain.Transaction) (*domain.Transaction, error)
}

type Notifier interface {
	Create(ctx context.Context, n *domain.Notification) (*domain.Notification, error)
}

var (
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrAccountNotFound   = errors.New("account not found")
	ErrPartnerNotFound   = errors.New("partner not found")
	ErrInsufficientFunds = errors.New("insufficient wallet balance")
	ErrNotMCP            = errors.New("only MCPs can transfer money to partners")
	ErrNotAssociated     = errors.New("partner is not associated with this account")
	ErrTransactionFailed = errors.New("transaction failed")
)

// Service is the wallet engine. Every operation that moves money runs
// as one transaction manager unit spanning the balance mutation(s), the
// transaction log append and the notification write; a failure anywhere
// aborts the whole unit with no partial effect.
type Service struct {
	accountRepo      AccountRepo
	relationshipRepo RelationshipRepo
	transactionRepo  TransactionRepo
	notifier         Notifier
	txManager        pg.TXManager
}

func New(accountRepo AccountRepo, relationshipRepo RelationshipRepo, transactionRepo TransactionRepo, notifier Notifier, txManager pg.TXManager) *Service {
	return &Service{
		accountRepo:      accountRepo,
		relationshipRepo: relationshipRepo,
		transactionRepo:  transactionRepo,
		notifier:         notifier,
		txManager:        txManager,
	}
}

var knownErrors = []error{
	ErrInvalidAmount,
	ErrAccountNotFound,
	ErrPartnerNotFound,
	ErrInsufficientFunds,
	ErrNotMCP,
	ErrNotAssociated,
	commission.ErrInvalidConfig,
}

// unitErr keeps domain sentinels intact and folds everything else
// (commit failures included) into ErrTransactionFailed.
func unitErr(op string, err error) error {
	if err == nil {
		return nil
	}
	for _, known := range knownErrors {
		if errors.Is(err, known) {
			return err
		}
	}
	zap.L().Error(op+" unit aborted", zap.Error(err))
	return ErrTransactionFailed
}

func (s *Service) AddMoney(ctx context.Context, userID int, amount decimal.Decimal) (*domain.Transaction, decimal.Decimal, error) {
	if amount.Sign() <= 0 {
		return nil, decimal.Zero, ErrInvalidAmount
	}

	var (
		txn        *domain.Transaction
		newBalance decimal.Decimal
	)
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		account, err := s.accountRepo.GetByID(ctx, userID)
		if err != nil {
			return err
		}
		if account == nil {
			return ErrAccountNotFound
		}

		newBalance, err = s.accountRepo.Credit(ctx, userID, amount)
		if err != nil {
			return err
		}

		txn, err = s.transactionRepo.Create(ctx, &domain.Transaction{
			ToUserID:    &userID,
			Amount:      amount,
			Type:        domain.TxnAddMoney,
			Status:      domain.TxnCompleted,
			Description: "Added money to wallet",
		})
		if err != nil {
			return err
		}

		_, err = s.notifier.Create(ctx, &domain.Notification{
			UserID:      userID,
			Title:       "Money Added",
			Message:     fmt.Sprintf("₹%s has been added to your wallet.", amount),
			Type:        domain.NotificationWallet,
			ReferenceID: &txn.ID,
		})
		return err
	})
	if err != nil {
		return nil, decimal.Zero, unitErr("add money", err)
	}
	return txn, newBalance, nil
}

func (s *Service) TransferMoney(ctx context.Context, mcpID, partnerID int, amount decimal.Decimal, description string) (*domain.Transaction, error) {
	if partnerID == 0 || amount.Sign() <= 0 {
		return nil, ErrInvalidAmount
	}
	if description == "" {
		description = "Transfer to pickup partner"
	}

	var txn *domain.Transaction
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		mcp, err := s.accountRepo.GetByID(ctx, mcpID)
		if err != nil {
			return err
		}
		if mcp == nil || mcp.Role != domain.RoleMCP {
			return ErrNotMCP
		}

		partner, err := s.accountRepo.GetByID(ctx, partnerID)
		if err != nil {
			return err
		}
		if partner == nil || partner.Role != domain.RolePickupPartner {
			return ErrPartnerNotFound
		}

		rel, err := s.relationshipRepo.GetActiveByPair(ctx, mcpID, partnerID)
		if err != nil {
			return err
		}
		if rel == nil {
			return ErrNotAssociated
		}

		if _, ok, err := s.accountRepo.Debit(ctx, mcpID, amount); err != nil {
			return err
		} else if !ok {
			return ErrInsufficientFunds
		}
		if _, err := s.accountRepo.Credit(ctx, partnerID, amount); err != nil {
			return err
		}

		txn, err = s.transactionRepo.Create(ctx, &domain.Transaction{
			FromUserID:  &mcpID,
			ToUserID:    &partnerID,
			Amount:      amount,
			Type:        domain.TxnTransfer,
			Status:      domain.TxnCompleted,
			Description: description,
		})
		if err != nil {
			return err
		}

		if _, err := s.notifier.Create(ctx, &domain.Notification{
			UserID:      mcpID,
			Title:       "Money Transferred",
			Message:     fmt.Sprintf("₹%s has been transferred to %s.", amount, partner.FullName),
			Type:        domain.NotificationWallet,
			ReferenceID: &txn.ID,
		}); err != nil {
			return err
		}
		_, err = s.notifier.Create(ctx, &domain.Notification{
			UserID:      partnerID,
			Title:       "Money Received",
			Message:     fmt.Sprintf("₹%s has been received from %s.", amount, mcp.FullName),
			Type:        domain.NotificationWallet,
			ReferenceID: &txn.ID,
		})
		return err
	})
	if err != nil {
		return nil, unitErr("transfer money", err)
	}
	return txn, nil
}

// WithdrawMoney debits the wallet immediately and records a PENDING
// WITHDRAW transaction; settlement to the bank rail happens outside the
// core and later resolves the transaction COMPLETED or FAILED.
func (s *Service) WithdrawMoney(ctx context.Context, userID int, amount decimal.Decimal, bankAccount string) (*domain.Transaction, error) {
	if amount.Sign() <= 0 || bankAccount == "" {
		return nil, ErrInvalidAmount
	}

	var txn *domain.Transaction
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		account, err := s.accountRepo.GetByID(ctx, userID)
		if err != nil {
			return err
		}
		if account == nil {
			return ErrAccountNotFound
		}

		if _, ok, err := s.accountRepo.Debit(ctx, userID, amount); err != nil {
			return err
		} else if !ok {
			return ErrInsufficientFunds
		}

		txn, err = s.transactionRepo.Create(ctx, &domain.Transaction{
			FromUserID:  &userID,
			Amount:      amount,
			Type:        domain.TxnWithdraw,
			Status:      domain.TxnPending,
			Description: "Withdrawal request to bank account " + maskAccount(bankAccount),
		})
		if err != nil {
			return err
		}

		_, err = s.notifier.Create(ctx, &domain.Notification{
			UserID:      userID,
			Title:       "Withdrawal Request",
			Message:     fmt.Sprintf("Your withdrawal request of ₹%s is being processed.", amount),
			Type:        domain.NotificationWallet,
			ReferenceID: &txn.ID,
		})
		return err
	})
	if err != nil {
		return nil, unitErr("withdraw money", err)
	}
	return txn, nil
}

func (s *Service) GetBalance(ctx context.Context, userID int) (decimal.Decimal, error) {
	account, err := s.accountRepo.GetByID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get balance", zap.Error(err))
		return decimal.Zero, err
	}
	if account == nil {
		return decimal.Zero, ErrAccountNotFound
	}
	return account.Balance, nil
}

// SettlePayout pays the pickup partner for a completed order. It joins
// the caller's transaction manager unit, so the order status change and
// the payout commit together. The MCP wallet is intentionally not
// debited here: the commission stays with the MCP as revenue retained
// on the order rather than funds drawn from its stored balance.
func (s *Service) SettlePayout(ctx context.Context, order *domain.Order) error {
	if order == nil || order.PickupPartnerID == nil {
		return nil
	}
	partnerID := *order.PickupPartnerID

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		rel, err := s.relationshipRepo.GetActiveByPair(ctx, order.MCPID, partnerID)
		if err != nil {
			return err
		}
		if rel == nil {
			// The order still completes, but the money stays put until
			// the MCP resolves the roster state by hand.
			zap.L().Warn("no active relationship, withholding payout",
				zap.Int("orderID", order.ID), zap.Int("partnerID", partnerID))
			_, err := s.notifier.Create(ctx, &domain.Notification{
				UserID:         order.MCPID,
				Title:          "Payout Withheld",
				Message:        fmt.Sprintf("Order #%d completed, but the payout to partner #%d was withheld: no active partnership. Review the roster and settle manually.", order.ID, partnerID),
				Type:           domain.NotificationWallet,
				ReferenceID:    &order.ID,
				Priority:       domain.PriorityHigh,
				ActionRequired: true,
			})
			return err
		}

		_, partnerAmount, err := commission.Split(order.OrderAmount, rel)
		if err != nil {
			return err
		}

		txn, err := s.transactionRepo.Create(ctx, &domain.Transaction{
			FromUserID:  &order.MCPID,
			ToUserID:    &partnerID,
			Amount:      partnerAmount,
			Type:        domain.TxnPayment,
			Status:      domain.TxnCompleted,
			OrderID:     &order.ID,
			Description: fmt.Sprintf("Payment for order #%d", order.ID),
		})
		if err != nil {
			return err
		}

		if _, err := s.accountRepo.Credit(ctx, partnerID, partnerAmount); err != nil {
			return err
		}

		_, err = s.notifier.Create(ctx, &domain.Notification{
			UserID:      partnerID,
			Title:       "Payment Received",
			Message:     fmt.Sprintf("You received ₹%s for completing order #%d", partnerAmount, order.ID),
			Type:        domain.NotificationWallet,
			ReferenceID: &txn.ID,
			Priority:    domain.PriorityMedium,
		})
		return err
	})
	return unitErr("settle payout", err)
}

func maskAccount(account string) string {
	if len(account) <= 4 {
		return "****"
	}
	return "****" + account[len(account)-4:]
}
