package model

import "github.com/shopspring/decimal"

// WebhookNotification is the gateway's asynchronous transaction notification.
type WebhookNotification struct {
	OrderID           string `json:"order_id" validate:"required"`
	TransactionStatus string `json:"transaction_status" validate:"required"`
	FraudStatus       string `json:"fraud_status"`
	GrossAmount       string `json:"gross_amount" validate:"required"`
	StatusCode        string `json:"status_code" validate:"required"`
	SignatureKey      string `json:"signature_key" validate:"required"`
	TransactionID     string `json:"transaction_id"`
	PaymentType       string `json:"payment_type"`
}

type WebhookResponse struct {
	Status string `json:"status"`
}

// PaymentCustomer is forwarded to the gateway for the hosted checkout page.
type PaymentCustomer struct {
	Name  string
	Email string
	Phone string
}

type PaymentTransaction struct {
	OrderID     uint64
	GrossAmount decimal.Decimal
	Customer    PaymentCustomer
}
