package validatorx

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

type amountRequest struct {
	Amount   decimal.Decimal     `json:"amount" validate:"required,dgt0"`
	Shipping decimal.Decimal     `json:"shipping" validate:"dgte0"`
	Expected decimal.NullDecimal `json:"expected"`
	Name     string              `json:"name" validate:"required"`
}

func TestValidateStruct_Decimal(t *testing.T) {
	tests := []struct {
		name    string
		req     amountRequest
		wantErr string
	}{
		{
			name: "valid",
			req:  amountRequest{Amount: decimal.NewFromInt(10), Shipping: decimal.Zero, Name: "x"},
		},
		{
			name:    "zero amount",
			req:     amountRequest{Amount: decimal.Zero, Name: "x"},
			wantErr: "Amount failed on dgt0",
		},
		{
			name:    "negative shipping",
			req:     amountRequest{Amount: decimal.NewFromInt(1), Shipping: decimal.NewFromInt(-1), Name: "x"},
			wantErr: "Shipping failed on dgte0",
		},
		{
			name:    "missing name",
			req:     amountRequest{Amount: decimal.NewFromInt(1)},
			wantErr: "Name failed on required",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(&tt.req)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, tt.wantErr, Message(err))
		})
	}
}
