package model

import (
	"time"

	"github.com/muhammadheryan/marketplace/constant"
	"github.com/shopspring/decimal"
)

type CreateOrderRequest struct {
	AddressID       uint64              `json:"address_id" validate:"required"`
	LogisticsOption string              `json:"logistics_option" validate:"required"`
	PaymentMethod   string              `json:"payment_method" validate:"required"`
	ShippingCost    decimal.Decimal     `json:"shipping_cost" validate:"dgte0"`
	TotalPrice      decimal.NullDecimal `json:"total_price"`
}

// PriceBreakdown is the server side computation of an order's amounts.
type PriceBreakdown struct {
	Subtotal    decimal.Decimal `json:"subtotal"`
	ShippingFee decimal.Decimal `json:"shipping_fee"`
	ServiceFee  decimal.Decimal `json:"service_fee"`
	Total       decimal.Decimal `json:"total"`
}

type OrderEntity struct {
	ID              uint64                 `db:"id" json:"id"`
	UserID          uint64                 `db:"user_id" json:"user_id"`
	AddressID       uint64                 `db:"address_id" json:"address_id"`
	RecipientName   string                 `db:"recipient_name" json:"recipient_name"`
	RecipientPhone  string                 `db:"recipient_phone" json:"recipient_phone"`
	ShippingAddress string                 `db:"shipping_address" json:"shipping_address"`
	Subtotal        decimal.Decimal        `db:"subtotal" json:"subtotal"`
	ShippingFee     decimal.Decimal        `db:"shipping_fee" json:"shipping_fee"`
	ServiceFee      decimal.Decimal        `db:"service_fee" json:"service_fee"`
	TotalAmount     decimal.Decimal        `db:"total_amount" json:"total_amount"`
	Status          constant.OrderStatus   `db:"status" json:"status"`
	PaymentStatus   constant.PaymentStatus `db:"payment_status" json:"payment_status"`
	PaymentMethod   string                 `db:"payment_method" json:"payment_method"`
	LogisticsOption string                 `db:"logistics_option" json:"logistics_option"`
	ShippingResi    *string                `db:"shipping_resi" json:"shipping_resi,omitempty"`
	PaidAt          *time.Time             `db:"paid_at" json:"paid_at,omitempty"`
	CreatedAt       time.Time              `db:"created_at" json:"created_at"`
}

type OrderItemEntity struct {
	ID        uint64          `db:"id" json:"id"`
	OrderID   uint64          `db:"order_id" json:"order_id"`
	ProductID uint64          `db:"product_id" json:"product_id"`
	StoreID   uint64          `db:"store_id" json:"store_id"`
	Quantity  int64           `db:"quantity" json:"quantity"`
	Price     decimal.Decimal `db:"price" json:"price"`
}

func (i OrderItemEntity) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(i.Quantity))
}

// OrderStateUpdate writes status and the derived payment status together.
type OrderStateUpdate struct {
	OrderID      uint64
	Status       constant.OrderStatus
	ShippingResi *string
	PaidAt       *time.Time
}

type CreateOrderResponse struct {
	Order     *OrderEntity `json:"order"`
	SnapToken string       `json:"snap_token,omitempty"`
}

type OrderDetailResponse struct {
	Order *OrderEntity      `json:"order"`
	Items []OrderItemEntity `json:"items"`
}

type UpdateOrderStatusRequest struct {
	Status       constant.OrderStatus `json:"status" validate:"required"`
	ShippingResi *string              `json:"shipping_resi"`
}

type PaymentTokenResponse struct {
	OrderID   uint64 `json:"order_id"`
	SnapToken string `json:"snap_token"`
}
