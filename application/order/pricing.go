package order

import (
	"github.com/muhammadheryan/marketplace/model"
	"github.com/shopspring/decimal"
)

// FeePolicy is the stepped platform service fee.
type FeePolicy struct {
	MinSubtotal decimal.Decimal
	Interval    decimal.Decimal
	Rate        decimal.Decimal
}

// ServiceFee is zero below MinSubtotal, otherwise ceil(subtotal / Interval) * Rate.
func (f FeePolicy) ServiceFee(subtotal decimal.Decimal) decimal.Decimal {
	if subtotal.LessThan(f.MinSubtotal) || !f.Interval.IsPositive() {
		return decimal.Zero
	}
	steps := subtotal.Div(f.Interval).Ceil()
	return steps.Mul(f.Rate)
}

// Subtotal sums price x quantity over the current cart lines.
func Subtotal(lines []model.CartLine) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.LineTotal())
	}
	return total
}

func (f FeePolicy) Breakdown(lines []model.CartLine, shipping decimal.Decimal) model.PriceBreakdown {
	subtotal := Subtotal(lines)
	fee := f.ServiceFee(subtotal)
	return model.PriceBreakdown{
		Subtotal:    subtotal,
		ShippingFee: shipping,
		ServiceFee:  fee,
		Total:       subtotal.Add(fee).Add(shipping),
	}
}

// WithinTolerance reports whether |expected - actual| <= tolerance.
func WithinTolerance(expected, actual, tolerance decimal.Decimal) bool {
	return expected.Sub(actual).Abs().LessThanOrEqual(tolerance)
}
