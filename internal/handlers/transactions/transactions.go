package transactions

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/scrapsync/scrapsync/internal/domain"
	"github.com/scrapsync/scrapsync/internal/dto"
	transactionrepo "github.com/scrapsync/scrapsync/internal/repo/transaction-repo"
	"github.com/scrapsync/scrapsync/internal/service/transactionservice"
	"github.com/scrapsync/scrapsync/pkg/auth"
	"github.com/scrapsync/scrapsync/pkg/utils"
)

type Service interface {
	List(ctx context.Context, userID int, filter transactionrepo.Filter, page, limit int) ([]domain.Transaction, int, error)
	GetTransaction(ctx context.Context, userID, id int) (*domain.Transaction, error)
}

type TransactionHandler struct {
	transactionService Service
}

func New(transactionService Service) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
	}
}

// List godoc
//
//	@Summary		List transactions
//	@Description	Paginated transaction history of the authenticated account, newest first.
//	@Tags			Transactions
//	@Security		BearerAuth
//	@Produce		json
//	@Param			page	query		int									false	"Page number"	default(1)
//	@Param			limit	query		int									false	"Page size"		default(20)
//	@Param			type	query		string								false	"Filter by type"	Enums(ADD_MONEY,TRANSFER,WITHDRAW,PAYMENT,REFUND)
//	@Param			status	query		string								false	"Filter by status"	Enums(PENDING,COMPLETED,FAILED)
//	@Success		200		{object}	dto.TransactionListResponseDTO		"Transactions"
//	@Failure		401		{object}	utils.Response						"User not authorized"
//	@Failure		500		{object}	utils.Response						"Internal server error"
//	@Router			/api/transactions [get]
func (h *TransactionHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	query := r.URL.Query()
	page, _ := strconv.Atoi(query.Get("page"))
	limit, _ := strconv.Atoi(query.Get("limit"))
	filter := transactionrepo.Filter{
		Type:   query.Get("type"),
		Status: query.Get("status"),
	}

	txns, total, err := h.transactionService.List(r.Context(), userID, filter, page, limit)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewTransactionListDTO(txns, total, page, limit))
}

// GetTransaction godoc
//
//	@Summary		Get transaction details
//	@Description	A transaction is visible only to its sender or recipient.
//	@Tags			Transactions
//	@Security		BearerAuth
//	@Produce		json
//	@Param			transactionID	path		int							true	"Transaction ID"
//	@Success		200				{object}	dto.TransactionResponseDTO	"Transaction"
//	@Failure		400				{object}	utils.Response				"Invalid transaction id"
//	@Failure		401				{object}	utils.Response				"User not authorized"
//	@Failure		404				{object}	utils.Response				"Transaction not found"
//	@Failure		500				{object}	utils.Response				"Internal server error"
//	@Router			/api/transactions/{transactionID} [get]
func (h *TransactionHandler) GetTransaction(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	id, err := strconv.Atoi(chi.URLParam(r, "transactionID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid transaction id")
		return
	}

	txn, err := h.transactionService.GetTransaction(r.Context(), userID, id)
	if err != nil {
		switch {
		case errors.Is(err, transactionservice.ErrTransactionNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewTransactionDTO(*txn))
}
