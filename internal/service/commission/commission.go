// Package commission derives payout splits from a partner
// relationship's commission policy.
package commission

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/scrapsync/scrapsync/internal/domain"
)

var ErrInvalidConfig = errors.New("invalid commission configuration")

var hundred = decimal.NewFromInt(100)

// Split divides an order amount into the commission retained on the
// order and the payout owed to the pickup partner. A FIXED rate larger
// than the order amount is a configuration error and fails loudly
// instead of producing a negative payout.
func Split(orderAmount decimal.Decimal, rel *domain.PartnerRelationship) (commissionAmount, partnerAmount decimal.Decimal, err error) {
	if rel == nil || orderAmount.Sign() <= 0 || rel.CommissionRate.Sign() < 0 {
		return decimal.Zero, decimal.Zero, ErrInvalidConfig
	}

	switch rel.CommissionType {
	case domain.CommissionPercentage:
		commissionAmount = orderAmount.Mul(rel.CommissionRate).Div(hundred).Round(2)
	case domain.CommissionFixed:
		commissionAmount = rel.CommissionRate
	default:
		return decimal.Zero, decimal.Zero, ErrInvalidConfig
	}

	partnerAmount = orderAmount.Sub(commissionAmount)
	if partnerAmount.Sign() < 0 {
		return decimal.Zero, decimal.Zero, ErrInvalidConfig
	}
	return commissionAmount, partnerAmount, nil
}
