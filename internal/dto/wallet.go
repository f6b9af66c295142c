package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type AddMoneyRequestDTO struct {
	Amount decimal.Decimal `json:"amount" swaggertype:"number" example:"250.50"`
}

type TransferMoneyRequestDTO struct {
	PartnerID   int             `json:"partnerId" example:"7"`
	Amount      decimal.Decimal `json:"amount" swaggertype:"number" example:"40"`
	Description string          `json:"description,omitempty" example:"Weekly float"`
}

type BankDetailsDTO struct {
	AccountNumber     string `json:"accountNumber" example:"001122334455"`
	IFSCCode          string `json:"ifscCode" example:"HDFC0001234"`
	AccountHolderName string `json:"accountHolderName" example:"Asha Verma"`
}

type WithdrawMoneyRequestDTO struct {
	Amount      decimal.Decimal `json:"amount" swaggertype:"number" example:"100"`
	BankDetails BankDetailsDTO  `json:"bankDetails"`
}

type BalanceResponseDTO struct {
	Balance decimal.Decimal `json:"balance" swaggertype:"number" example:"500.50"`
}

type WalletOperationResponseDTO struct {
	NewBalance  decimal.Decimal         `json:"newBalance" swaggertype:"number" example:"750.50"`
	Transaction *TransactionResponseDTO `json:"transaction"`
}

type TransactionResponseDTO struct {
	ID          int             `json:"id" example:"42"`
	FromUserID  *int            `json:"fromUserId,omitempty"`
	ToUserID    *int            `json:"toUserId,omitempty"`
	Amount      decimal.Decimal `json:"amount" swaggertype:"number" example:"40"`
	Type        string          `json:"type" example:"TRANSFER"`
	Status      string          `json:"status" example:"COMPLETED"`
	OrderID     *int            `json:"orderId,omitempty"`
	Description string          `json:"description,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
}
