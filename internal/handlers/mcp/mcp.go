package mcp

import (
	"context"
	"errors"
	"net/http"

	"github.com/scrapsync/scrapsync/internal/dto"
	"github.com/scrapsync/scrapsync/internal/service/mcpservice"
	"github.com/scrapsync/scrapsync/pkg/auth"
	"github.com/scrapsync/scrapsync/pkg/utils"
)

type Service interface {
	GetDashboard(ctx context.Context, mcpID int) (*mcpservice.Dashboard, error)
}

type MCPHandler struct {
	mcpService Service
}

func New(mcpService Service) *MCPHandler {
	return &MCPHandler{
		mcpService: mcpService,
	}
}

// GetDashboard godoc
//
//	@Summary		MCP dashboard
//	@Description	Wallet balance, roster and order counters, and the five most recent transactions in one response.
//	@Tags			MCP
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.DashboardResponseDTO	"Dashboard"
//	@Failure		401	{object}	utils.Response				"User not authorized"
//	@Failure		403	{object}	utils.Response				"Account is not an MCP"
//	@Failure		404	{object}	utils.Response				"Account not found"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/mcp/dashboard [get]
func (h *MCPHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	mcpID := r.Context().Value(auth.UserIDKey).(int)

	dashboard, err := h.mcpService.GetDashboard(r.Context(), mcpID)
	if err != nil {
		switch {
		case errors.Is(err, mcpservice.ErrAccountNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, mcpservice.ErrNotMCP):
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	response := dto.DashboardResponseDTO{
		Name:          dashboard.Account.FullName,
		Email:         dashboard.Account.Email,
		WalletBalance: dashboard.Account.Balance,
		Partners: dto.DashboardPartnersDTO{
			Total:    dashboard.PartnersTotal,
			Active:   dashboard.PartnersActive,
			Inactive: dashboard.PartnersInactive,
		},
		Orders: dto.DashboardOrdersDTO{
			Total:        dashboard.OrderStats.Total,
			Completed:    dashboard.OrderStats.Completed,
			Pending:      dashboard.OrderStats.Pending,
			Cancelled:    dashboard.OrderStats.Cancelled,
			TotalRevenue: dashboard.OrderStats.CompletedRevenue,
		},
		RecentTransactions: make([]dto.TransactionResponseDTO, 0, len(dashboard.RecentTransactions)),
	}
	for _, txn := range dashboard.RecentTransactions {
		response.RecentTransactions = append(response.RecentTransactions, dto.NewTransactionDTO(txn))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
