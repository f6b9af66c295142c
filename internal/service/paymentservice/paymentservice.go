package paymentservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/scrapsync/scrapsync/internal/domain"
	"github.com/scrapsync/scrapsync/internal/pg"
)

type Provider interface {
	CreateOrder(ctx context.Context, amountMinor int64, receipt string) (string, error)
	VerifySignature(orderID, paymentID, signature string) bool
	KeyID() string
}

type AccountRepo interface {
	GetByID(ctx context.Context, id int) (*domain.Account, error)
	Credit(ctx context.Context, id int, amount decimal.Decimal) (decimal.Decimal, error)
}

type TransactionRepo interface {
	Create(ctx context.Context, txn *domain.Transaction) (*domain.Transaction, error)
	GetByIDForUpdate(ctx context.Context, id int) (*domain.Transaction, error)
	MarkCompleted(ctx context.Context, id int, paymentID, signature *string) (bool, error)
}

type Notifier interface {
	Create(ctx context.Context, n *domain.Notification) (*domain.Notification, error)
}

var (
	ErrInvalidAmount       = errors.New("amount must be positive with at most two decimal places")
	ErrAccountNotFound     = errors.New("account not found")
	ErrInvalidSignature    = errors.New("payment signature verification failed")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrAlreadyProcessed    = errors.New("payment already processed")
	ErrTransactionFailed   = errors.New("transaction failed")
)

// TopUp describes a provider checkout order waiting for confirmation.
type TopUp struct {
	ProviderOrderID string
	AmountMinor     int64
	TransactionID   int
	Key             string
}

// Service bridges wallet top-ups to the external payment provider: it
// registers checkout orders and confirms signed payment callbacks.
type Service struct {
	provider        Provider
	accountRepo     AccountRepo
	transactionRepo TransactionRepo
	notifier        Notifier
	txManager       pg.TXManager
}

func New(provider Provider, accountRepo AccountRepo, transactionRepo TransactionRepo, notifier Notifier, txManager pg.TXManager) *Service {
	return &Service{
		provider:        provider,
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		notifier:        notifier,
		txManager:       txManager,
	}
}

var knownErrors = []error{
	ErrInvalidAmount,
	ErrAccountNotFound,
	ErrInvalidSignature,
	ErrTransactionNotFound,
	ErrAlreadyProcessed,
}

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

// CreateTopUp registers a provider checkout order for the amount (sent
// in minor units) and records a PENDING ADD_MONEY transaction carrying
// the provider order id. With partnerID set an MCP funds the partner's
// wallet instead of its own.
func (s *Service) CreateTopUp(ctx context.Context, userID int, amount decimal.Decimal, partnerID *int) (*TopUp, error) {
	amountMinor, ok := toMinorUnits(amount)
	if !ok {
		return nil, ErrInvalidAmount
	}

	recipientID := userID
	if partnerID != nil {
		recipientID = *partnerID
	}
	recipient, err := s.accountRepo.GetByID(ctx, recipientID)
	if err != nil {
		return nil, unitErr("create top-up", err)
	}
	if recipient == nil {
		return nil, ErrAccountNotFound
	}

	receipt := fmt.Sprintf("topup_%d_%d", recipientID, time.Now().UnixNano())
	providerOrderID, err := s.provider.CreateOrder(ctx, amountMinor, receipt)
	if err != nil {
		zap.L().Error("failed to register provider order", zap.Error(err), zap.Int("recipientID", recipientID))
		return nil, err
	}

	var txn *domain.Transaction
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		txn, err = s.transactionRepo.Create(ctx, &domain.Transaction{
			ToUserID:        &recipientID,
			Amount:          amount,
			Type:            domain.TxnAddMoney,
			Status:          domain.TxnPending,
			Description:     "Wallet top-up via payment gateway",
			ProviderOrderID: &providerOrderID,
		})
		return err
	})
	if err != nil {
		return nil, unitErr("create top-up", err)
	}

	return &TopUp{
		ProviderOrderID: providerOrderID,
		AmountMinor:     amountMinor,
		TransactionID:   txn.ID,
		Key:             s.provider.KeyID(),
	}, nil
}

// ConfirmParams is the provider callback payload for a finished checkout.
type ConfirmParams struct {
	TransactionID     int
	ProviderOrderID   string
	ProviderPaymentID string
	ProviderSignature string
	PartnerID         *int
}

// ConfirmPayment settles a pending top-up after checking the provider
// signature. The signature is verified before anything is touched; the
// credit itself runs under a row lock so a duplicated callback finds
// the transaction COMPLETED and reports ErrAlreadyProcessed instead of
// crediting twice.
func (s *Service) ConfirmPayment(ctx context.Context, userID int, params ConfirmParams) (*domain.Transaction, decimal.Decimal, error) {
	if !s.provider.VerifySignature(params.ProviderOrderID, params.ProviderPaymentID, params.ProviderSignature) {
		zap.L().Warn("payment signature mismatch",
			zap.Int("transactionID", params.TransactionID),
			zap.String("providerOrderID", params.ProviderOrderID))
		return nil, decimal.Zero, ErrInvalidSignature
	}

	expectedRecipient := userID
	if params.PartnerID != nil {
		expectedRecipient = *params.PartnerID
	}

	var (
		txn        *domain.Transaction
		newBalance decimal.Decimal
	)
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		txn, err = s.transactionRepo.GetByIDForUpdate(ctx, params.TransactionID)
		if err != nil {
			return err
		}
		if txn == nil || txn.Type != domain.TxnAddMoney ||
			txn.ProviderOrderID == nil || *txn.ProviderOrderID != params.ProviderOrderID ||
			txn.ToUserID == nil || *txn.ToUserID != expectedRecipient {
			return ErrTransactionNotFound
		}

		if txn.Status == domain.TxnCompleted {
			account, err := s.accountRepo.GetByID(ctx, expectedRecipient)
			if err != nil {
				return err
			}
			if account != nil {
				newBalance = account.Balance
			}
			return ErrAlreadyProcessed
		}

		ok, err := s.transactionRepo.MarkCompleted(ctx, txn.ID, &params.ProviderPaymentID, &params.ProviderSignature)
		if err != nil {
			return err
		}
		if !ok {
			return ErrAlreadyProcessed
		}
		txn.Status = domain.TxnCompleted
		txn.ProviderPaymentID = &params.ProviderPaymentID
		txn.ProviderSignature = &params.ProviderSignature

		newBalance, err = s.accountRepo.Credit(ctx, expectedRecipient, txn.Amount)
		if err != nil {
			return err
		}

		_, err = s.notifier.Create(ctx, &domain.Notification{
			UserID:      expectedRecipient,
			Title:       "Wallet Top-Up Successful",
			Message:     fmt.Sprintf("₹%s has been added to your wallet.", txn.Amount),
			Type:        domain.NotificationWallet,
			ReferenceID: &txn.ID,
		})
		return err
	})
	if err != nil {
		if errors.Is(err, ErrAlreadyProcessed) {
			return txn, newBalance, ErrAlreadyProcessed
		}
		return nil, decimal.Zero, unitErr("confirm payment", err)
	}
	return txn, newBalance, nil
}

// toMinorUnits converts a rupee amount to paise, rejecting amounts that
// are non-positive or carry sub-paise precision.
func toMinorUnits(amount decimal.Decimal) (int64, bool) {
	if amount.Sign() <= 0 {
		return 0, false
	}
	minor := amount.Shift(2)
	if !minor.IsInteger() {
		return 0, false
	}
	return minor.IntPart(), true
}
