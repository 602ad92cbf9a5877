package model

import (
	"github.com/muhammadheryan/marketplace/constant"
	"github.com/shopspring/decimal"
)

type ProductListItem struct {
	ID        uint64          `db:"id" json:"id"`
	Name      string          `db:"name" json:"name"`
	StoreName string          `db:"store_name" json:"store_name"`
	Stock     int64           `db:"stock" json:"stock"`
	Price     decimal.Decimal `db:"price" json:"price"`
}

type ProductDetail struct {
	ID          uint64               `db:"id" json:"id"`
	Name        string               `db:"name" json:"name"`
	Description string               `db:"description" json:"description,omitempty"`
	StoreID     uint64               `db:"store_id" json:"store_id"`
	StoreName   string               `db:"store_name" json:"store_name"`
	StoreStatus constant.StoreStatus `db:"store_status" json:"-"`
	IsActive    bool                 `db:"is_active" json:"-"`
	Stock       int64                `db:"stock" json:"stock"`
	Price       decimal.Decimal      `db:"price" json:"price"`
}

// Purchasable reports whether the product may be put into a cart or ordered.
func (p *ProductDetail) Purchasable() bool {
	return p.IsActive && p.StoreStatus == constant.StoreStatusApproved
}

// ProductStock is a stock row read under lock during checkout.
type ProductStock struct {
	ID          uint64               `db:"id"`
	Name        string               `db:"name"`
	Stock       int64                `db:"stock"`
	IsActive    bool                 `db:"is_active"`
	StoreStatus constant.StoreStatus `db:"store_status"`
}

func (p ProductStock) Purchasable() bool {
	return p.IsActive && p.StoreStatus == constant.StoreStatusApproved
}

type ProductListResponse struct {
	Items      []ProductListItem `json:"items"`
	TotalCount int64             `json:"total_count"`
	Page       int               `json:"page"`
	PerPage    int               `json:"per_page"`
}

// ProductFilter narrows the public catalogue. Zero values mean "any".
type ProductFilter struct {
	StoreID uint64
	Query   string
	Page    int
	PerPage int
}
