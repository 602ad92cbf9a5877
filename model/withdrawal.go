package model

import (
	"time"

	"github.com/muhammadheryan/marketplace/constant"
	"github.com/shopspring/decimal"
)

type WithdrawalEntity struct {
	ID          uint64                    `db:"id" json:"id"`
	StoreID     uint64                    `db:"store_id" json:"store_id"`
	Amount      decimal.Decimal           `db:"amount" json:"amount"`
	BankName    string                    `db:"bank_name" json:"bank_name"`
	BankAccount string                    `db:"bank_account" json:"bank_account"`
	BankUser    string                    `db:"bank_user" json:"bank_user"`
	Status      constant.WithdrawalStatus `db:"status" json:"status"`
	Note        string                    `db:"note" json:"note,omitempty"`
	CreatedAt   time.Time                 `db:"created_at" json:"created_at"`
	ReviewedAt  *time.Time                `db:"reviewed_at" json:"reviewed_at,omitempty"`
}

type WithdrawalRequest struct {
	Amount      decimal.Decimal `json:"amount" validate:"required,dgt0"`
	BankName    string          `json:"bank_name" validate:"required"`
	BankAccount string          `json:"bank_account" validate:"required"`
	BankUser    string          `json:"bank_user" validate:"required"`
}

type RejectWithdrawalRequest struct {
	Note string `json:"note"`
}

type WithdrawalListResponse struct {
	StoreID     uint64             `json:"store_id"`
	Balance     decimal.Decimal    `json:"balance"`
	Withdrawals []WithdrawalEntity `json:"withdrawals"`
}
