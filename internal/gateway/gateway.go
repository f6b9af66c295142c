// Package gateway talks to the external payment provider's REST API and
// owns the shared-secret signature check for payment confirmations.
package gateway

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/scrapsync/scrapsync/internal/config"
	"github.com/scrapsync/scrapsync/pkg/clients"
)

const currency = "INR"

// Payout states reported by the provider for withdrawal settlements.
const (
	PayoutPending   = "pending"
	PayoutProcessed = "processed"
	PayoutRejected  = "rejected"
)

var (
	ErrProviderUnavailable = errors.New("payment provider unavailable")
	ErrOrderRejected       = errors.New("payment provider rejected the order")
)

type Client struct {
	baseURL   string
	keyID     string
	keySecret string
	client    clients.HTTPClientI
}

func New(cfg *config.Config, client clients.HTTPClientI) *Client {
	return &Client{
		baseURL:   cfg.PaymentAddress,
		keyID:     cfg.PaymentKeyID,
		keySecret: cfg.PaymentKeySecret,
		client:    client,
	}
}

// KeyID is handed to browser clients so they can open the provider's
// checkout with the matching public key.
func (c *Client) KeyID() string {
	return c.keyID
}

type orderRequest struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

type orderResponse struct {
	ID string `json:"id"`
}

// CreateOrder registers a checkout order for the given amount in minor
// units and returns the provider's order id.
func (c *Client) CreateOrder(ctx context.Context, amountMinor int64, receipt string) (string, error) {
	body, err := json.Marshal(orderRequest{
		Amount:   amountMinor,
		Currency: currency,
		Receipt:  receipt,
	})
	if err != nil {
		return "", err
	}

	statusCode, respBody, err := c.client.Post(ctx, c.baseURL+"/v1/orders", c.headers(), body)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrProviderUnavailable, err)
	}

	switch statusCode {
	case http.StatusOK, http.StatusCreated:
		var resp orderResponse
		if err := json.Unmarshal(respBody, &resp); err != nil {
			return "", fmt.Errorf("failed to parse provider order response: %w", err)
		}
		if resp.ID == "" {
			return "", fmt.Errorf("provider order response without id")
		}
		return resp.ID, nil
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return "", ErrOrderRejected
	default:
		return "", fmt.Errorf("%w: unexpected status %d", ErrProviderUnavailable, statusCode)
	}
}

type payoutResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// PayoutStatus reports the provider-side state of a withdrawal payout.
// An unknown reference counts as still pending so the caller keeps
// polling instead of refunding prematurely.
func (c *Client) PayoutStatus(ctx context.Context, reference string) (string, error) {
	statusCode, respBody, err := c.client.Get(ctx, c.baseURL+"/v1/payouts/"+reference, c.headers())
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrProviderUnavailable, err)
	}

	switch statusCode {
	case http.StatusOK:
		var resp payoutResponse
		if err := json.Unmarshal(respBody, &resp); err != nil {
			return "", fmt.Errorf("failed to parse provider payout response: %w", err)
		}
		switch resp.Status {
		case PayoutProcessed, PayoutRejected:
			return resp.Status, nil
		default:
			return PayoutPending, nil
		}
	case http.StatusNotFound:
		return PayoutPending, nil
	default:
		return "", fmt.Errorf("%w: unexpected status %d", ErrProviderUnavailable, statusCode)
	}
}

// VerifySignature recomputes the HMAC-SHA256 of "orderID|paymentID"
// under the key secret and compares in constant time.
func (c *Client) VerifySignature(orderID, paymentID, signature string) bool {
	mac := hmac.New(sha256.New, []byte(c.keySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}

func (c *Client) headers() http.Header {
	headers := http.Header{}
	headers.Set("Content-Type", "application/json")
	headers.Set("Authorization", "Basic "+base64.StdEncoding.EncodeToString([]byte(c.keyID+":"+c.keySecret)))
	return headers
}
