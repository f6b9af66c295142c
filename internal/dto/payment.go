package dto

import "github.com/shopspring/decimal"

type CreateTopUpRequestDTO struct {
	Amount decimal.Decimal `json:"amount" swaggertype:"number" example:"500"`
	// PartnerID lets an MCP top up a partner wallet instead of its own.
	PartnerID *int `json:"partnerId,omitempty" example:"7"`
}

type CreateTopUpResponseDTO struct {
	ProviderOrderID string `json:"orderId" example:"order_NXhT2cQ9rZ0a1b"`
	AmountMinor     int64  `json:"amount" example:"50000"`
	Currency        string `json:"currency" example:"INR"`
	TransactionID   int    `json:"transactionId" example:"42"`
	Key             string `json:"key" example:"rzp_test_abc"`
}

type ConfirmPaymentRequestDTO struct {
	TransactionID     int    `json:"transactionId" example:"42"`
	ProviderOrderID   string `json:"providerOrderId" example:"order_NXhT2cQ9rZ0a1b"`
	ProviderPaymentID string `json:"providerPaymentId" example:"pay_NXhU71fL3c9d2e"`
	ProviderSignature string `json:"providerSignature"`
	PartnerID         *int   `json:"partnerId,omitempty"`
}

type ConfirmPaymentResponseDTO struct {
	Message     string          `json:"message" example:"Payment confirmed"`
	NewBalance  decimal.Decimal `json:"newBalance" swaggertype:"number" example:"750.50"`
	Transaction *TransactionResponseDTO `json:"transaction,omitempty"`
}
