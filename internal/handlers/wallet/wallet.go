package wallet

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/scrapsync/scrapsync/internal/domain"
	"github.com/scrapsync/scrapsync/internal/dto"
	"github.com/scrapsync/scrapsync/internal/service/walletservice"
	"github.com/scrapsync/scrapsync/pkg/auth"
	"github.com/scrapsync/scrapsync/pkg/utils"
)

type Service interface {
	GetBalance(ctx context.Context, userID int) (decimal.Decimal, error)
	AddMoney(ctx context.Context, userID int, amount decimal.Decimal) (*domain.Transaction, decimal.Decimal, error)
	TransferMoney(ctx context.Context, mcpID, partnerID int, amount decimal.Decimal, description string) (*domain.Transaction, error)
	WithdrawMoney(ctx context.Context, userID int, amount decimal.Decimal, bankAccount string) (*domain.Transaction, error)
}

type WalletHandler struct {
	walletService Service
}

func New(walletService Service) *WalletHandler {
	return &WalletHandler{
		walletService: walletService,
	}
}

// GetBalance godoc
//
//	@Summary		Get wallet balance
//	@Description	Current wallet balance of the authenticated account.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.BalanceResponseDTO	"Current balance"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		404	{object}	utils.Response			"Account not found"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/wallet/balance [get]
func (h *WalletHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	balance, err := h.walletService.GetBalance(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, walletservice.ErrAccountNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{Balance: balance})
}

// AddMoney godoc
//
//	@Summary		Add money to the wallet
//	@Description	Credit the wallet directly and record a COMPLETED ADD_MONEY transaction.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.AddMoneyRequestDTO			true	"Amount to add"
//	@Success		200		{object}	dto.WalletOperationResponseDTO	"New balance and transaction"
//	@Failure		400		{object}	utils.Response					"Invalid amount"
//	@Failure		401		{object}	utils.Response					"User not authorized"
//	@Failure		404		{object}	utils.Response					"Account not found"
//	@Failure		500		{object}	utils.Response					"Internal server error"
//	@Router			/api/wallet/add [post]
func (h *WalletHandler) AddMoney(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.AddMoneyRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	txn, newBalance, err := h.walletService.AddMoney(r.Context(), userID, req.Amount)
	if err != nil {
		h.respondWalletError(w, err)
		return
	}

	txnDTO := dto.NewTransactionDTO(*txn)
	utils.RespondWithJSON(w, http.StatusOK, dto.WalletOperationResponseDTO{
		NewBalance:  newBalance,
		Transaction: &txnDTO,
	})
}

// Transfer godoc
//
//	@Summary		Transfer money to a pickup partner
//	@Description	Move money from the MCP wallet to an associated partner's wallet. Debit and credit commit atomically.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.TransferMoneyRequestDTO	true	"Transfer payload"
//	@Success		200		{object}	dto.TransactionResponseDTO	"Completed transfer"
//	@Failure		400		{object}	utils.Response				"Invalid amount"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		402		{object}	utils.Response				"Insufficient wallet balance"
//	@Failure		403		{object}	utils.Response				"Not an MCP or partner not associated"
//	@Failure		404		{object}	utils.Response				"Partner not found"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/wallet/transfer [post]
func (h *WalletHandler) Transfer(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.TransferMoneyRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	txn, err := h.walletService.TransferMoney(r.Context(), userID, req.PartnerID, req.Amount, req.Description)
	if err != nil {
		h.respondWalletError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewTransactionDTO(*txn))
}

// Withdraw godoc
//
//	@Summary		Request a withdrawal to a bank account
//	@Description	Debit the wallet and open a PENDING WITHDRAW transaction. The settlement watcher resolves it against the payout provider.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.WithdrawMoneyRequestDTO	true	"Withdrawal payload"
//	@Success		202		{object}	dto.TransactionResponseDTO	"Pending withdrawal"
//	@Failure		400		{object}	utils.Response				"Invalid amount or bank details"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		402		{object}	utils.Response				"Insufficient wallet balance"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/wallet/withdraw [post]
func (h *WalletHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.WithdrawMoneyRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.BankDetails.AccountNumber == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "bank account number is required")
		return
	}

	txn, err := h.walletService.WithdrawMoney(r.Context(), userID, req.Amount, req.BankDetails.AccountNumber)
	if err != nil {
		h.respondWalletError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusAccepted, dto.NewTransactionDTO(*txn))
}

func (h *WalletHandler) respondWalletError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, walletservice.ErrInvalidAmount):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, walletservice.ErrInsufficientFunds):
		utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
	case errors.Is(err, walletservice.ErrNotMCP), errors.Is(err, walletservice.ErrNotAssociated):
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, walletservice.ErrAccountNotFound), errors.Is(err, walletservice.ErrPartnerNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
