package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrCredentialExists
	ErrInvalidPassword
	ErrForbidden
	ErrInsufficientStock
	ErrInvalidOrderStatus
	ErrEmptyCart
	ErrPriceMismatch
	ErrInsufficientBalance
	ErrBelowMinimumWithdrawal
	ErrInvalidSignature
	ErrPaymentTokenUnavailable
	ErrProductUnavailable
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:                 "success",
	ErrInternal:                "error internal",
	ErrNotFound:                "data not found",
	ErrInvalidRequest:          "invalid request",
	ErrUnauthorize:             "unauthorize request",
	ErrCredentialExists:        "email or phone already exists",
	ErrInvalidPassword:         "password invalid",
	ErrForbidden:               "forbidden",
	ErrInsufficientStock:       "insufficient stock",
	ErrInvalidOrderStatus:      "invalid order status",
	ErrEmptyCart:               "cart is empty",
	ErrPriceMismatch:           "price mismatch, please retry checkout",
	ErrInsufficientBalance:     "insufficient balance",
	ErrBelowMinimumWithdrawal:  "withdrawal amount below minimum",
	ErrInvalidSignature:        "invalid signature",
	ErrPaymentTokenUnavailable: "order created but payment token unavailable, please retry",
	ErrProductUnavailable:      "product is no longer available",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:                 http.StatusOK,
	ErrInternal:                http.StatusInternalServerError,
	ErrNotFound:                http.StatusNotFound,
	ErrInvalidRequest:          http.StatusBadRequest,
	ErrUnauthorize:             http.StatusUnauthorized,
	ErrCredentialExists:        http.StatusBadRequest,
	ErrInvalidPassword:         http.StatusBadRequest,
	ErrForbidden:               http.StatusForbidden,
	ErrInsufficientStock:       http.StatusBadRequest,
	ErrInvalidOrderStatus:      http.StatusBadRequest,
	ErrEmptyCart:               http.StatusBadRequest,
	ErrPriceMismatch:           http.StatusBadRequest,
	ErrInsufficientBalance:     http.StatusBadRequest,
	ErrBelowMinimumWithdrawal:  http.StatusBadRequest,
	ErrInvalidSignature:        http.StatusBadRequest,
	ErrPaymentTokenUnavailable: http.StatusBadGateway,
	ErrProductUnavailable:      http.StatusBadRequest,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:                 "0000",
	ErrInternal:                "0001",
	ErrNotFound:                "0002",
	ErrInvalidRequest:          "0003",
	ErrUnauthorize:             "0004",
	ErrCredentialExists:        "0005",
	ErrInvalidPassword:         "0006",
	ErrForbidden:               "0007",
	ErrInsufficientStock:       "0008",
	ErrInvalidOrderStatus:      "0009",
	ErrEmptyCart:               "0010",
	ErrPriceMismatch:           "0011",
	ErrInsufficientBalance:     "0012",
	ErrBelowMinimumWithdrawal:  "0013",
	ErrInvalidSignature:        "0014",
	ErrPaymentTokenUnavailable: "0015",
	ErrProductUnavailable:      "0016",
}
