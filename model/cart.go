package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type CartEntity struct {
	ID        uint64    `db:"id" json:"id"`
	UserID    uint64    `db:"user_id" json:"user_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type CartItemEntity struct {
	ID        uint64 `db:"id" json:"id"`
	CartID    uint64 `db:"cart_id" json:"cart_id"`
	ProductID uint64 `db:"product_id" json:"product_id"`
	Quantity  int64  `db:"quantity" json:"quantity"`
}

// CartItemOwned is a cart item joined with the owner of its cart.
type CartItemOwned struct {
	CartItemEntity
	UserID uint64 `db:"user_id"`
}

// CartLine is a cart item joined with the current product data.
type CartLine struct {
	ID          uint64          `db:"id" json:"id"`
	ProductID   uint64          `db:"product_id" json:"product_id"`
	ProductName string          `db:"product_name" json:"product_name"`
	StoreID     uint64          `db:"store_id" json:"store_id"`
	Price       decimal.Decimal `db:"price" json:"price"`
	Quantity    int64           `db:"quantity" json:"quantity"`
}

func (l CartLine) LineTotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(l.Quantity))
}

type AddCartItemRequest struct {
	ProductID uint64 `json:"product_id" validate:"required"`
	Quantity  int64  `json:"quantity" validate:"required,gt=0"`
}

type UpdateCartItemRequest struct {
	Quantity int64 `json:"quantity"`
}

type CartResponse struct {
	ID    uint64          `json:"id"`
	Items []CartLine      `json:"items"`
	Total decimal.Decimal `json:"total"`
}
