package payments

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/scrapsync/scrapsync/internal/domain"
	"github.com/scrapsync/scrapsync/internal/dto"
	"github.com/scrapsync/scrapsync/internal/gateway"
	"github.com/scrapsync/scrapsync/internal/service/paymentservice"
	"github.com/scrapsync/scrapsync/pkg/auth"
	"github.com/scrapsync/scrapsync/pkg/utils"
)

type Service interface {
	CreateTopUp(ctx context.Context, userID int, amount decimal.Decimal, partnerID *int) (*paymentservice.TopUp, error)
	ConfirmPayment(ctx context.Context, userID int, params paymentservice.ConfirmParams) (*domain.Transaction, decimal.Decimal, error)
}

type PaymentHandler struct {
	paymentService Service
}

func New(paymentService Service) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
	}
}

// CreateTopUp godoc
//
//	@Summary		Start a gateway top-up
//	@Description	Register a checkout order with the payment provider and open a PENDING ADD_MONEY transaction. The wallet is credited only after the signed confirmation arrives.
//	@Tags			Payments
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateTopUpRequestDTO	true	"Top-up payload"
//	@Success		201		{object}	dto.CreateTopUpResponseDTO	"Provider order for checkout"
//	@Failure		400		{object}	utils.Response				"Invalid amount"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		404		{object}	utils.Response				"Account not found"
//	@Failure		422		{object}	utils.Response				"Provider rejected the order"
//	@Failure		502		{object}	utils.Response				"Payment provider unavailable"
//	@Router			/api/payments/topup [post]
func (h *PaymentHandler) CreateTopUp(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.CreateTopUpRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	topUp, err := h.paymentService.CreateTopUp(r.Context(), userID, req.Amount, req.PartnerID)
	if err != nil {
		switch {
		case errors.Is(err, paymentservice.ErrInvalidAmount):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, paymentservice.ErrAccountNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, gateway.ErrOrderRejected):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, gateway.ErrProviderUnavailable):
			utils.RespondWithError(w, http.StatusBadGateway, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, dto.CreateTopUpResponseDTO{
		ProviderOrderID: topUp.ProviderOrderID,
		AmountMinor:     topUp.AmountMinor,
		Currency:        "INR",
		TransactionID:   topUp.TransactionID,
		Key:             topUp.Key,
	})
}

// ConfirmPayment godoc
//
//	@Summary		Confirm a gateway payment
//	@Description	Verify the provider signature and credit the wallet. A repeated confirmation of the same payment returns 200 without crediting twice.
//	@Tags			Payments
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ConfirmPaymentRequestDTO	true	"Provider callback payload"
//	@Success		200		{object}	dto.ConfirmPaymentResponseDTO	"Payment confirmed"
//	@Failure		400		{object}	utils.Response					"Signature verification failed"
//	@Failure		401		{object}	utils.Response					"User not authorized"
//	@Failure		404		{object}	utils.Response					"Transaction not found"
//	@Failure		500		{object}	utils.Response					"Internal server error"
//	@Router			/api/payments/confirm [post]
func (h *PaymentHandler) ConfirmPayment(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.ConfirmPaymentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	txn, newBalance, err := h.paymentService.ConfirmPayment(r.Context(), userID, paymentservice.ConfirmParams{
		TransactionID:     req.TransactionID,
		ProviderOrderID:   req.ProviderOrderID,
		ProviderPaymentID: req.ProviderPaymentID,
		ProviderSignature: req.ProviderSignature,
		PartnerID:         req.PartnerID,
	})
	if err != nil {
		switch {
		case errors.Is(err, paymentservice.ErrAlreadyProcessed):
			// Idempotent replay of a settled payment.
			resp := dto.ConfirmPaymentResponseDTO{
				Message:    "Payment already processed",
				NewBalance: newBalance,
			}
			if txn != nil {
				txnDTO := dto.NewTransactionDTO(*txn)
				resp.Transaction = &txnDTO
			}
			utils.RespondWithJSON(w, http.StatusOK, resp)
		case errors.Is(err, paymentservice.ErrInvalidSignature):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, paymentservice.ErrTransactionNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	txnDTO := dto.NewTransactionDTO(*txn)
	utils.RespondWithJSON(w, http.StatusOK, dto.ConfirmPaymentResponseDTO{
		Message:     "Payment confirmed",
		NewBalance:  newBalance,
		Transaction: &txnDTO,
	})
}
