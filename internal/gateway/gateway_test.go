package gateway

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/scrapsync/scrapsync/internal/config"
	"github.com/scrapsync/scrapsync/pkg/clients"
)

func newMock(t *testing.T) (*Client, *clients.MockHTTPClientI) {
	ctrl := gomock.NewController(t)
	httpClient := clients.NewMockHTTPClientI(ctrl)
	cfg := &config.Config{
		PaymentAddress:   "https://provider.test",
		PaymentKeyID:     "key_id",
		PaymentKeySecret: "key_secret",
	}
	return New(cfg, httpClient), httpClient
}

func sign(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestCreateOrder(t *testing.T) {
	tests := []struct {
		name        string
		statusCode  int
		respBody    []byte
		clientErr   error
		wantOrderID string
		wantErr     error
	}{
		{
			name:        "created",
			statusCode:  http.StatusCreated,
			respBody:    []byte(`{"id":"order_abc123"}`),
			wantOrderID: "order_abc123",
		},
		{
			name:       "rejected",
			statusCode: http.StatusBadRequest,
			respBody:   []byte(`{"error":"amount too small"}`),
			wantErr:    ErrOrderRejected,
		},
		{
			name:       "provider down",
			statusCode: http.StatusBadGateway,
			wantErr:    ErrProviderUnavailable,
		},
		{
			name:      "transport error",
			clientErr: errors.New("connection refused"),
			wantErr:   ErrProviderUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, httpClient := newMock(t)
			httpClient.EXPECT().
				Post(gomock.Any(), "https://provider.test/v1/orders", gomock.Any(), gomock.Any()).
				Return(tt.statusCode, tt.respBody, tt.clientErr)

			orderID, err := client.CreateOrder(context.Background(), 10000, "txn_1")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantOrderID, orderID)
		})
	}

	t.Run("sends basic auth and minor units", func(t *testing.T) {
		client, httpClient := newMock(t)
		httpClient.EXPECT().
			Post(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, headers http.Header, body []byte) (int, []byte, error) {
				assert.Contains(t, headers.Get("Authorization"), "Basic ")
				assert.JSONEq(t, `{"amount":10000,"currency":"INR","receipt":"txn_1"}`, string(body))
				return http.StatusOK, []byte(`{"id":"order_abc123"}`), nil
			})

		_, err := client.CreateOrder(context.Background(), 10000, "txn_1")
		assert.NoError(t, err)
	})
}

func TestPayoutStatus(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		respBody   []byte
		want       string
		wantErr    error
	}{
		{name: "processed", statusCode: http.StatusOK, respBody: []byte(`{"id":"pout_1","status":"processed"}`), want: PayoutProcessed},
		{name: "rejected", statusCode: http.StatusOK, respBody: []byte(`{"id":"pout_1","status":"rejected"}`), want: PayoutRejected},
		{name: "still queued", statusCode: http.StatusOK, respBody: []byte(`{"id":"pout_1","status":"queued"}`), want: PayoutPending},
		{name: "unknown reference stays pending", statusCode: http.StatusNotFound, want: PayoutPending},
		{name: "provider down", statusCode: http.StatusServiceUnavailable, wantErr: ErrProviderUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, httpClient := newMock(t)
			httpClient.EXPECT().
				Get(gomock.Any(), "https://provider.test/v1/payouts/txn_9", gomock.Any()).
				Return(tt.statusCode, tt.respBody, nil)

			status, err := client.PayoutStatus(context.Background(), "txn_9")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, status)
		})
	}
}

func TestVerifySignature(t *testing.T) {
	client, _ := newMock(t)

	valid := sign("key_secret", "order_abc123", "pay_xyz789")
	assert.True(t, client.VerifySignature("order_abc123", "pay_xyz789", valid))

	assert.False(t, client.VerifySignature("order_abc123", "pay_xyz789", "forged"))
	assert.False(t, client.VerifySignature("order_abc123", "pay_other", valid))
	assert.False(t, client.VerifySignature("order_abc123", "pay_xyz789",
		sign("wrong_secret", "order_abc123", "pay_xyz789")))
}
