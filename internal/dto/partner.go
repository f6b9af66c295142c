package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type AddPartnerRequestDTO struct {
	FullName       string          `json:"fullName" example:"Ravi Kumar"`
	Email          string          `json:"email" example:"ravi@scrapsync.in"`
	Password       string          `json:"password" example:"secret"`
	Phone          string          `json:"phone" example:"+919800000002"`
	CommissionRate decimal.Decimal `json:"commissionRate" swaggertype:"number" example:"10"`
	CommissionType string          `json:"commissionType" example:"PERCENTAGE" enums:"PERCENTAGE,FIXED"`
}

type UpdateCommissionRequestDTO struct {
	CommissionRate *decimal.Decimal `json:"commissionRate,omitempty" swaggertype:"number" example:"15"`
	CommissionType *string          `json:"commissionType,omitempty" enums:"PERCENTAGE,FIXED"`
	Status         *string          `json:"status,omitempty" enums:"ACTIVE,INACTIVE"`
}

type PartnerSummaryDTO struct {
	ID       int             `json:"id" example:"7"`
	FullName string          `json:"fullName"`
	Email    string          `json:"email"`
	Phone    string          `json:"phone"`
	Status   string          `json:"status"`
	Balance  decimal.Decimal `json:"balance" swaggertype:"number"`
}

type PartnerResponseDTO struct {
	RelationshipID int               `json:"relationshipId" example:"3"`
	Partner        PartnerSummaryDTO `json:"partner"`
	CommissionRate decimal.Decimal   `json:"commissionRate" swaggertype:"number" example:"10"`
	CommissionType string            `json:"commissionType" example:"PERCENTAGE"`
	Status         string            `json:"status" example:"ACTIVE"`
	CreatedAt      time.Time         `json:"createdAt"`
}
