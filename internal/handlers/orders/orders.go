package orders

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/scrapsync/scrapsync/internal/domain"
	"github.com/scrapsync/scrapsync/internal/dto"
	orderrepo "github.com/scrapsync/scrapsync/internal/repo/order-repo"
	"github.com/scrapsync/scrapsync/internal/service/orderservice"
	"github.com/scrapsync/scrapsync/pkg/auth"
	"github.com/scrapsync/scrapsync/pkg/utils"
)

type Service interface {
	Create(ctx context.Context, userID int, p orderservice.CreateParams) (*domain.Order, error)
	List(ctx context.Context, filter orderrepo.Filter) ([]domain.Order, error)
	GetOrder(ctx context.Context, orderID int) (*domain.Order, error)
	Assign(ctx context.Context, userID, orderID, partnerID int) (*domain.Order, error)
	UpdateStatus(ctx context.Context, userID, orderID int, status string) (*domain.Order, error)
	Cancel(ctx context.Context, userID, orderID int, reason string) (*domain.Order, error)
}

type OrderHandler struct {
	orderService Service
}

func New(orderService Service) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

// Create godoc
//
//	@Summary		Create a pickup order
//	@Description	Register a new PENDING pickup order under the authenticated MCP.
//	@Tags			Orders
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateOrderRequestDTO	true	"Order payload"
//	@Success		201		{object}	dto.OrderResponseDTO		"Created order"
//	@Failure		400		{object}	utils.Response				"Invalid order"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/orders [post]
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.CreateOrderRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	order, err := h.orderService.Create(r.Context(), userID, orderservice.CreateParams{
		OrderAmount: req.OrderAmount,
		Address:     req.Address,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
	})
	if err != nil {
		h.respondOrderError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewOrderDTO(*order))
}

// List godoc
//
//	@Summary		List orders
//	@Description	Orders visible to the authenticated account: an MCP sees its own orders, a pickup partner sees assigned ones. Optional status filter.
//	@Tags			Orders
//	@Security		BearerAuth
//	@Produce		json
//	@Param			status	query		string					false	"Filter by order status"	Enums(PENDING,ASSIGNED,IN_PROGRESS,COMPLETED,CANCELLED)
//	@Success		200		{array}		dto.OrderResponseDTO	"Orders"
//	@Failure		401		{object}	utils.Response			"User not authorized"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/orders [get]
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	role := r.Context().Value(auth.RoleKey).(string)

	filter := orderrepo.Filter{Status: r.URL.Query().Get("status")}
	if role == domain.RolePickupPartner {
		filter.PartnerID = userID
	} else {
		filter.MCPID = userID
	}

	orders, err := h.orderService.List(r.Context(), filter)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.OrderResponseDTO, 0, len(orders))
	for _, order := range orders {
		response = append(response, dto.NewOrderDTO(order))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetOrder godoc
//
//	@Summary		Get order details
//	@Tags			Orders
//	@Security		BearerAuth
//	@Produce		json
//	@Param			orderID	path		int						true	"Order ID"
//	@Success		200		{object}	dto.OrderResponseDTO	"Order"
//	@Failure		400		{object}	utils.Response			"Invalid order id"
//	@Failure		401		{object}	utils.Response			"User not authorized"
//	@Failure		404		{object}	utils.Response			"Order not found"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/orders/{orderID} [get]
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	orderID, err := strconv.Atoi(chi.URLParam(r, "orderID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid order id")
		return
	}

	order, err := h.orderService.GetOrder(r.Context(), orderID)
	if err != nil {
		h.respondOrderError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewOrderDTO(*order))
}

// Assign godoc
//
//	@Summary		Assign an order to a pickup partner
//	@Description	Move a PENDING order to ASSIGNED. The partner must be an active account associated with the order's MCP.
//	@Tags			Orders
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			orderID	path		int							true	"Order ID"
//	@Param			request	body		dto.AssignOrderRequestDTO	true	"Assignment payload"
//	@Success		200		{object}	dto.OrderResponseDTO		"Assigned order"
//	@Failure		400		{object}	utils.Response				"Invalid order id"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		403		{object}	utils.Response				"Not this MCP's order, or partner not associated"
//	@Failure		404		{object}	utils.Response				"Order or partner not found"
//	@Failure		409		{object}	utils.Response				"Order is not assignable"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/orders/{orderID}/assign [post]
func (h *OrderHandler) Assign(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	orderID, err := strconv.Atoi(chi.URLParam(r, "orderID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid order id")
		return
	}

	var req dto.AssignOrderRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	order, err := h.orderService.Assign(r.Context(), userID, orderID, req.PickupPartnerID)
	if err != nil {
		h.respondOrderError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewOrderDTO(*order))
}

// UpdateStatus godoc
//
//	@Summary		Update order status
//	@Description	Advance the order through its lifecycle. Completing an order settles the partner payout in the same atomic unit; a completed or cancelled order cannot change again.
//	@Tags			Orders
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			orderID	path		int								true	"Order ID"
//	@Param			request	body		dto.UpdateOrderStatusRequestDTO	true	"Target status"
//	@Success		200		{object}	dto.OrderResponseDTO			"Updated order"
//	@Failure		400		{object}	utils.Response					"Invalid order id or status"
//	@Failure		401		{object}	utils.Response					"User not authorized"
//	@Failure		403		{object}	utils.Response					"Caller is neither the order's MCP nor its partner"
//	@Failure		404		{object}	utils.Response					"Order not found"
//	@Failure		409		{object}	utils.Response					"Invalid status transition"
//	@Failure		500		{object}	utils.Response					"Internal server error"
//	@Router			/api/orders/{orderID}/status [patch]
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	orderID, err := strconv.Atoi(chi.URLParam(r, "orderID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid order id")
		return
	}

	var req dto.UpdateOrderStatusRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	order, err := h.orderService.UpdateStatus(r.Context(), userID, orderID, req.Status)
	if err != nil {
		h.respondOrderError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewOrderDTO(*order))
}

// Cancel godoc
//
//	@Summary		Cancel an order
//	@Description	Cancel any order that has not reached a terminal state, recording the reason.
//	@Tags			Orders
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			orderID	path		int							true	"Order ID"
//	@Param			request	body		dto.CancelOrderRequestDTO	false	"Cancellation reason"
//	@Success		200		{object}	dto.OrderResponseDTO		"Cancelled order"
//	@Failure		400		{object}	utils.Response				"Invalid order id"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		403		{object}	utils.Response				"Caller is neither the order's MCP nor its partner"
//	@Failure		404		{object}	utils.Response				"Order not found"
//	@Failure		409		{object}	utils.Response				"Order already completed or cancelled"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/orders/{orderID}/cancel [post]
func (h *OrderHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	orderID, err := strconv.Atoi(chi.URLParam(r, "orderID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid order id")
		return
	}

	var req dto.CancelOrderRequestDTO
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
			return
		}
	}

	order, err := h.orderService.Cancel(r.Context(), userID, orderID, req.CancelReason)
	if err != nil {
		h.respondOrderError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewOrderDTO(*order))
}

func (h *OrderHandler) respondOrderError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, orderservice.ErrInvalidOrder):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, orderservice.ErrOrderNotFound), errors.Is(err, orderservice.ErrPartnerNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, orderservice.ErrNotAssociated), errors.Is(err, orderservice.ErrNotOrderParty):
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, orderservice.ErrInvalidTransition):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
