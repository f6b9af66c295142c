package orders

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/scrapsync/scrapsync/internal/domain"
	"github.com/scrapsync/scrapsync/internal/dto"
	orderrepo "github.com/scrapsync/scrapsync/internal/repo/order-repo"
	"github.com/scrapsync/scrapsync/internal/service/orderservice"
	"github.com/scrapsync/scrapsync/pkg/auth"
)

func NewMock(t *testing.T) (*OrderHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	return handler, service
}

func authed(r *http.Request, role string) *http.Request {
	ctx := context.WithValue(r.Context(), auth.UserIDKey, 1)
	ctx = context.WithValue(ctx, auth.RoleKey, role)
	return r.WithContext(ctx)
}

func withOrderID(r *http.Request, id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("orderID", id)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestCreateOrderHandler(t *testing.T) {
	t.Run("registers a pending order", func(t *testing.T) {
		handler, service := NewMock(t)
		service.EXPECT().Create(gomock.Any(), 1, orderservice.CreateParams{
			OrderAmount: dec("120"),
			Address:     "12 MG Road, Pune",
		}).Return(&domain.Order{ID: 10, MCPID: 1, OrderAmount: dec("120"), Status: domain.OrderPending}, nil)

		body := bytes.NewBufferString(`{"orderAmount": 120, "address": "12 MG Road, Pune"}`)
		r := authed(httptest.NewRequest(http.MethodPost, "/api/orders", body), domain.RoleMCP)
		w := httptest.NewRecorder()
		handler.Create(w, r)

		assert.Equal(t, http.StatusCreated, w.Code)
		var resp dto.OrderResponseDTO
		assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, 10, resp.ID)
		assert.Equal(t, domain.OrderPending, resp.Status)
	})

	t.Run("rejects an invalid order", func(t *testing.T) {
		handler, service := NewMock(t)
		service.EXPECT().Create(gomock.Any(), 1, gomock.Any()).
			Return(nil, orderservice.ErrInvalidOrder)

		body := bytes.NewBufferString(`{"orderAmount": -5, "address": ""}`)
		r := authed(httptest.NewRequest(http.MethodPost, "/api/orders", body), domain.RoleMCP)
		w := httptest.NewRecorder()
		handler.Create(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestListOrdersHandler(t *testing.T) {
	t.Run("MCP sees its own orders", func(t *testing.T) {
		handler, service := NewMock(t)
		service.EXPECT().List(gomock.Any(), orderrepo.Filter{MCPID: 1}).
			Return([]domain.Order{{ID: 10, MCPID: 1, Status: domain.OrderPending}}, nil)

		r := authed(httptest.NewRequest(http.MethodGet, "/api/orders", nil), domain.RoleMCP)
		w := httptest.NewRecorder()
		handler.List(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp []dto.OrderResponseDTO
		assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Len(t, resp, 1)
	})

	t.Run("pickup partner sees assigned orders only", func(t *testing.T) {
		handler, service := NewMock(t)
		service.EXPECT().List(gomock.Any(), orderrepo.Filter{PartnerID: 1, Status: domain.OrderAssigned}).
			Return([]domain.Order{}, nil)

		r := authed(httptest.NewRequest(http.MethodGet, "/api/orders?status=ASSIGNED", nil), domain.RolePickupPartner)
		w := httptest.NewRecorder()
		handler.List(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})
}

func TestAssignOrderHandler(t *testing.T) {
	partnerID := 7

	tests := []struct {
		name         string
		serviceErr   error
		expectedCode int
	}{
		{name: "Successful assignment", serviceErr: nil, expectedCode: http.StatusOK},
		{name: "Order not found", serviceErr: orderservice.ErrOrderNotFound, expectedCode: http.StatusNotFound},
		{name: "Partner not associated", serviceErr: orderservice.ErrNotAssociated, expectedCode: http.StatusForbidden},
		{name: "Someone else's order", serviceErr: orderservice.ErrNotOrderParty, expectedCode: http.StatusForbidden},
		{name: "Order already assigned", serviceErr: orderservice.ErrInvalidTransition, expectedCode: http.StatusConflict},
		{name: "Internal error", serviceErr: errors.New("boom"), expectedCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			var order *domain.Order
			if tt.serviceErr == nil {
				order = &domain.Order{ID: 10, MCPID: 1, PickupPartnerID: &partnerID, Status: domain.OrderAssigned}
			}
			service.EXPECT().Assign(gomock.Any(), 1, 10, 7).Return(order, tt.serviceErr)

			body := bytes.NewBufferString(`{"pickupPartnerId": 7}`)
			r := authed(httptest.NewRequest(http.MethodPost, "/api/orders/10/assign", body), domain.RoleMCP)
			r = withOrderID(r, "10")
			w := httptest.NewRecorder()
			handler.Assign(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}

	t.Run("non-numeric order id", func(t *testing.T) {
		handler, _ := NewMock(t)

		body := bytes.NewBufferString(`{"pickupPartnerId": 7}`)
		r := authed(httptest.NewRequest(http.MethodPost, "/api/orders/abc/assign", body), domain.RoleMCP)
		r = withOrderID(r, "abc")
		w := httptest.NewRecorder()
		handler.Assign(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestUpdateOrderStatusHandler(t *testing.T) {
	t.Run("completes an order", func(t *testing.T) {
		handler, service := NewMock(t)
		service.EXPECT().UpdateStatus(gomock.Any(), 1, 10, domain.OrderCompleted).
			Return(&domain.Order{ID: 10, MCPID: 1, Status: domain.OrderCompleted}, nil)

		body := bytes.NewBufferString(`{"status": "COMPLETED"}`)
		r := authed(httptest.NewRequest(http.MethodPatch, "/api/orders/10/status", body), domain.RoleMCP)
		r = withOrderID(r, "10")
		w := httptest.NewRecorder()
		handler.UpdateStatus(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp dto.OrderResponseDTO
		assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, domain.OrderCompleted, resp.Status)
	})

	t.Run("another account's order", func(t *testing.T) {
		handler, service := NewMock(t)
		service.EXPECT().UpdateStatus(gomock.Any(), 1, 10, domain.OrderCompleted).
			Return(nil, orderservice.ErrNotOrderParty)

		body := bytes.NewBufferString(`{"status": "COMPLETED"}`)
		r := authed(httptest.NewRequest(http.MethodPatch, "/api/orders/10/status", body), domain.RoleMCP)
		r = withOrderID(r, "10")
		w := httptest.NewRecorder()
		handler.UpdateStatus(w, r)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("terminal order cannot move again", func(t *testing.T) {
		handler, service := NewMock(t)
		service.EXPECT().UpdateStatus(gomock.Any(), 1, 10, domain.OrderInProgress).
			Return(nil, orderservice.ErrInvalidTransition)

		body := bytes.NewBufferString(`{"status": "IN_PROGRESS"}`)
		r := authed(httptest.NewRequest(http.MethodPatch, "/api/orders/10/status", body), domain.RoleMCP)
		r = withOrderID(r, "10")
		w := httptest.NewRecorder()
		handler.UpdateStatus(w, r)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestCancelOrderHandler(t *testing.T) {
	t.Run("cancels with a reason", func(t *testing.T) {
		handler, service := NewMock(t)
		service.EXPECT().Cancel(gomock.Any(), 1, 10, "Customer unavailable").
			Return(&domain.Order{ID: 10, MCPID: 1, Status: domain.OrderCancelled}, nil)

		body := bytes.NewBufferString(`{"cancelReason": "Customer unavailable"}`)
		r := authed(httptest.NewRequest(http.MethodPost, "/api/orders/10/cancel", body), domain.RoleMCP)
		r = withOrderID(r, "10")
		w := httptest.NewRecorder()
		handler.Cancel(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("cancels without a body", func(t *testing.T) {
		handler, service := NewMock(t)
		service.EXPECT().Cancel(gomock.Any(), 1, 10, "").
			Return(&domain.Order{ID: 10, MCPID: 1, Status: domain.OrderCancelled}, nil)

		r := authed(httptest.NewRequest(http.MethodPost, "/api/orders/10/cancel", nil), domain.RoleMCP)
		r = withOrderID(r, "10")
		w := httptest.NewRecorder()
		handler.Cancel(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
