package order_test

import (
	"testing"

	apporder "github.com/muhammadheryan/marketplace/application/order"
	"github.com/muhammadheryan/marketplace/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFeePolicy_ServiceFee(t *testing.T) {
	fees := apporder.FeePolicy{MinSubtotal: dec(50000), Interval: dec(100000), Rate: dec(1000)}

	tests := []struct {
		name     string
		subtotal decimal.Decimal
		want     decimal.Decimal
	}{
		{name: "below minimum", subtotal: dec(49999), want: dec(0)},
		{name: "exactly minimum", subtotal: dec(50000), want: dec(1000)},
		{name: "exactly one interval", subtotal: dec(100000), want: dec(1000)},
		{name: "just over one interval", subtotal: dec(100001), want: dec(2000)},
		{name: "two intervals", subtotal: dec(200000), want: dec(2000)},
		{name: "fractional subtotal", subtotal: decimal.RequireFromString("250000.50"), want: dec(3000)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := fees.ServiceFee(tt.subtotal)
			assert.True(t, tt.want.Equal(got), "want %s got %s", tt.want, got)
		})
	}
}

func TestFeePolicy_Breakdown(t *testing.T) {
	fees := apporder.FeePolicy{MinSubtotal: dec(50000), Interval: dec(100000), Rate: dec(1000)}

	got := fees.Breakdown(cartLines(), dec(25000))

	assert.True(t, got.Subtotal.Equal(dec(200000)))
	assert.True(t, got.ServiceFee.Equal(dec(2000)))
	assert.True(t, got.ShippingFee.Equal(dec(25000)))
	assert.True(t, got.Total.Equal(dec(227000)))

	empty := fees.Breakdown([]model.CartLine{}, dec(0))
	assert.True(t, empty.Total.IsZero())
}

func TestWithinTolerance(t *testing.T) {
	one := dec(1)
	assert.True(t, apporder.WithinTolerance(dec(1000), dec(1000), one))
	assert.True(t, apporder.WithinTolerance(dec(1000), dec(1001), one))
	assert.True(t, apporder.WithinTolerance(decimal.RequireFromString("999.5"), dec(1000), one))
	assert.False(t, apporder.WithinTolerance(dec(1000), dec(1002), one))
	assert.False(t, apporder.WithinTolerance(dec(1002), dec(1000), one))
}
