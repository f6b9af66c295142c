package commission

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/scrapsync/scrapsync/internal/domain"
)

func rel(rate string, commissionType string) *domain.PartnerRelationship {
	return &domain.PartnerRelationship{
		CommissionRate: decimal.RequireFromString(rate),
		CommissionType: commissionType,
	}
}

func TestSplit(t *testing.T) {
	tests := []struct {
		name            string
		orderAmount     string
		rel             *domain.PartnerRelationship
		wantCommission  string
		wantPartner     string
		wantErr         error
	}{
		{
			name:           "percentage split",
			orderAmount:    "100",
			rel:            rel("10", domain.CommissionPercentage),
			wantCommission: "10",
			wantPartner:    "90",
		},
		{
			name:           "fixed split",
			orderAmount:    "100",
			rel:            rel("15", domain.CommissionFixed),
			wantCommission: "15",
			wantPartner:    "85",
		},
		{
			name:           "percentage rounds to two places",
			orderAmount:    "99.99",
			rel:            rel("3.5", domain.CommissionPercentage),
			wantCommission: "3.50",
			wantPartner:    "96.49",
		},
		{
			name:           "zero rate keeps full payout",
			orderAmount:    "50",
			rel:            rel("0", domain.CommissionFixed),
			wantCommission: "0",
			wantPartner:    "50",
		},
		{
			name:        "fixed rate above order amount",
			orderAmount: "100",
			rel:         rel("150", domain.CommissionFixed),
			wantErr:     ErrInvalidConfig,
		},
		{
			name:        "percentage above hundred",
			orderAmount: "100",
			rel:         rel("120", domain.CommissionPercentage),
			wantErr:     ErrInvalidConfig,
		},
		{
			name:        "negative rate",
			orderAmount: "100",
			rel:         rel("-5", domain.CommissionFixed),
			wantErr:     ErrInvalidConfig,
		},
		{
			name:        "unknown commission type",
			orderAmount: "100",
			rel:         rel("10", "TIERED"),
			wantErr:     ErrInvalidConfig,
		},
		{
			name:        "non-positive order amount",
			orderAmount: "0",
			rel:         rel("10", domain.CommissionPercentage),
			wantErr:     ErrInvalidConfig,
		},
		{
			name:        "nil relationship",
			orderAmount: "100",
			rel:         nil,
			wantErr:     ErrInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			commissionAmount, partnerAmount, err := Split(decimal.RequireFromString(tt.orderAmount), tt.rel)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.True(t, commissionAmount.Equal(decimal.RequireFromString(tt.wantCommission)),
				"commission = %s, want %s", commissionAmount, tt.wantCommission)
			assert.True(t, partnerAmount.Equal(decimal.RequireFromString(tt.wantPartner)),
				"partner amount = %s, want %s", partnerAmount, tt.wantPartner)
			assert.True(t, commissionAmount.Add(partnerAmount).Equal(decimal.RequireFromString(tt.orderAmount)),
				"split must conserve the order amount")
		})
	}
}
