package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	RoleMCP           string = "MCP"
	RolePickupPartner string = "PICKUP_PARTNER"
)

const (
	StatusActive   string = "ACTIVE"
	StatusInactive string = "INACTIVE"
)

// Account is a wallet-bearing user. Accounts are never deleted, only
// switched to INACTIVE. Balance is mutated exclusively by the wallet
// service inside a transaction manager unit.
type Account struct {
	ID           int             `db:"id"`
	FullName     string          `db:"full_name"`
	Email        string          `db:"email"`
	Phone        string          `db:"phone"`
	PasswordHash string          `db:"password_hash"`
	Role         string          `db:"role"`
	Status       string          `db:"status"`
	Balance      decimal.Decimal `db:"balance"`
	CreatedAt    time.Time       `db:"created_at"`
	UpdatedAt    time.Time       `db:"updated_at"`
}

const (
	CommissionPercentage string = "PERCENTAGE"
	CommissionFixed      string = "FIXED"
)

// PartnerRelationship links one MCP to one pickup partner. There is at
// most one relationship per (mcp, partner) pair; commission applies
// only while the relationship is ACTIVE.
type PartnerRelationship struct {
	ID             int             `db:"id"`
	MCPID          int             `db:"mcp_id"`
	PartnerID      int             `db:"partner_id"`
	CommissionRate decimal.Decimal `db:"commission_rate"`
	CommissionType string          `db:"commission_type"`
	Status         string          `db:"status"`
	CreatedAt      time.Time       `db:"created_at"`
	UpdatedAt      time.Time       `db:"updated_at"`
}

const (
	OrderPending    string = "PENDING"
	OrderAssigned   string = "ASSIGNED"
	OrderInProgress string = "IN_PROGRESS"
	OrderCompleted  string = "COMPLETED"
	OrderCancelled  string = "CANCELLED"
)

type Order struct {
	ID              int             `db:"id"`
	CustomerID      int             `db:"customer_id"`
	PickupPartnerID *int            `db:"pickup_partner_id"`
	MCPID           int             `db:"mcp_id"`
	OrderAmount     decimal.Decimal `db:"order_amount"`
	Status          string          `db:"status"`
	Address         string          `db:"address"`
	Latitude        *float64        `db:"latitude"`
	Longitude       *float64        `db:"longitude"`
	CreatedAt       time.Time       `db:"created_at"`
	UpdatedAt       time.Time       `db:"updated_at"`
	CompletedAt     *time.Time      `db:"completed_at"`
}

const (
	TxnAddMoney string = "ADD_MONEY"
	TxnTransfer string = "TRANSFER"
	TxnWithdraw string = "WITHDRAW"
	TxnPayment  string = "PAYMENT"
	TxnRefund   string = "REFUND"
)

const (
	TxnPending   string = "PENDING"
	TxnCompleted string = "COMPLETED"
	TxnFailed    string = "FAILED"
)

// Transaction is one money movement. At least one of FromUserID and
// ToUserID is set. Status only ever moves PENDING -> COMPLETED or
// PENDING -> FAILED; a COMPLETED transaction is immutable.
type Transaction struct {
	ID                int             `db:"id"`
	FromUserID        *int            `db:"from_user_id"`
	ToUserID          *int            `db:"to_user_id"`
	Amount            decimal.Decimal `db:"amount"`
	Type              string          `db:"type"`
	Status            string          `db:"status"`
	OrderID           *int            `db:"order_id"`
	Description       string          `db:"description"`
	ProviderOrderID   *string         `db:"provider_order_id"`
	ProviderPaymentID *string         `db:"provider_payment_id"`
	ProviderSignature *string         `db:"provider_signature"`
	CreatedAt         time.Time       `db:"created_at"`
	UpdatedAt         time.Time       `db:"updated_at"`
}

// RosterEntry pairs a relationship with its partner account for list
// views.
type RosterEntry struct {
	Relationship PartnerRelationship
	Partner      Account
}

const (
	NotificationOrder   string = "ORDER"
	NotificationWallet  string = "WALLET"
	NotificationPartner string = "PARTNER"
	NotificationSystem  string = "SYSTEM"
)

const (
	PriorityLow    string = "low"
	PriorityMedium string = "medium"
	PriorityHigh   string = "high"
)

type Notification struct {
	ID             int       `db:"id"`
	UserID         int       `db:"user_id"`
	Title          string    `db:"title"`
	Message        string    `db:"message"`
	Type           string    `db:"type"`
	IsRead         bool      `db:"is_read"`
	ReferenceID    *int      `db:"reference_id"`
	Priority       string    `db:"priority"`
	ActionRequired bool      `db:"action_required"`
	CreatedAt      time.Time `db:"created_at"`
}
