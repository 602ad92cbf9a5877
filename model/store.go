package model

import (
	"github.com/muhammadheryan/marketplace/constant"
	"github.com/shopspring/decimal"
)

type StoreEntity struct {
	ID          uint64               `db:"id" json:"id"`
	OwnerUserID uint64               `db:"owner_user_id" json:"owner_user_id"`
	Name        string               `db:"name" json:"name"`
	Status      constant.StoreStatus `db:"status" json:"status"`
	Balance     decimal.Decimal      `db:"balance" json:"balance"`
}

// StoreShare is the amount owed to one store from a delivered order.
type StoreShare struct {
	StoreID uint64
	Amount  decimal.Decimal
}
