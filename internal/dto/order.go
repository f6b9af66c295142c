package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateOrderRequestDTO struct {
	OrderAmount decimal.Decimal `json:"orderAmount" swaggertype:"number" example:"120"`
	Address     string          `json:"address" example:"12 MG Road, Pune"`
	Latitude    *float64        `json:"latitude,omitempty" example:"18.5204"`
	Longitude   *float64        `json:"longitude,omitempty" example:"73.8567"`
}

type AssignOrderRequestDTO struct {
	PickupPartnerID int `json:"pickupPartnerId" example:"7"`
}

type UpdateOrderStatusRequestDTO struct {
	Status string `json:"status" example:"COMPLETED" enums:"PENDING,ASSIGNED,IN_PROGRESS,COMPLETED,CANCELLED"`
}

type CancelOrderRequestDTO struct {
	CancelReason string `json:"cancelReason,omitempty" example:"Customer unavailable"`
}

type OrderResponseDTO struct {
	ID              int             `json:"id" example:"10"`
	CustomerID      int             `json:"customerId"`
	PickupPartnerID *int            `json:"pickupPartnerId,omitempty"`
	MCPID           int             `json:"mcpId"`
	OrderAmount     decimal.Decimal `json:"orderAmount" swaggertype:"number" example:"120"`
	Status          string          `json:"status" example:"PENDING"`
	Address         string          `json:"address"`
	Latitude        *float64        `json:"latitude,omitempty"`
	Longitude       *float64        `json:"longitude,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
	CompletedAt     *time.Time      `json:"completedAt,omitempty"`
}
