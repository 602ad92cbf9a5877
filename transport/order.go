package transport

import (
	"net/http"

	"github.com/muhammadheryan/marketplace/constant"
	"github.com/muhammadheryan/marketplace/model"
	"github.com/muhammadheryan/marketplace/utils/errors"
)

// CreateOrder handler
// @Summary Checkout
// @Description Turns the caller's cart into an order and returns a payment token.
// @Description A 502 response still carries the created order; the token can be requested again.
// @Tags Order
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.CreateOrderRequest true "Create Order Request"
// @Success 201 {object} model.CreateOrderResponse
// @Failure 400 {object} Response
// @Failure 404 {object} Response
// @Failure 502 {object} Response
// @Router /checkout [post]
// @Router /orders [post]
func (s *RestHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFrom(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.CreateOrderRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.OrderApp.CreateOrder(r.Context(), caller, &req)
	if err != nil {
		if errors.TypeOf(err) == constant.ErrPaymentTokenUnavailable {
			writeErrorWithData(w, err, res)
			return
		}
		writeError(w, err)
		return
	}

	writeCreated(w, res)
}

// GetOrder handler
// @Summary Get order
// @Tags Order
// @Produce json
// @Security BearerAuth
// @Param id path int true "Order ID"
// @Success 200 {object} model.OrderDetailResponse
// @Failure 404 {object} Response
// @Router /orders/{id} [get]
func (s *RestHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFrom(r)
	if err != nil {
		writeError(w, err)
		return
	}

	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.OrderApp.GetOrder(r.Context(), caller, id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// UpdateOrderStatus handler
// @Summary Ship order
// @Description Seller moves a PROCESSING order to SHIPPED, optionally with a tracking number
// @Tags Order
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Order ID"
// @Param request body model.UpdateOrderStatusRequest true "Update Order Status Request"
// @Success 200 {object} model.OrderEntity
// @Failure 400 {object} Response
// @Failure 403 {object} Response
// @Router /orders/{id}/status [patch]
func (s *RestHandler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFrom(r)
	if err != nil {
		writeError(w, err)
		return
	}

	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.UpdateOrderStatusRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.OrderApp.UpdateOrderStatus(r.Context(), caller, id, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ConfirmOrderReceived handler
// @Summary Confirm order received
// @Description Buyer confirms a SHIPPED order; store balances are credited
// @Tags Order
// @Produce json
// @Security BearerAuth
// @Param id path int true "Order ID"
// @Success 200 {object} model.OrderEntity
// @Failure 400 {object} Response
// @Failure 404 {object} Response
// @Router /orders/{id}/confirm-received [patch]
func (s *RestHandler) ConfirmOrderReceived(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFrom(r)
	if err != nil {
		writeError(w, err)
		return
	}

	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.OrderApp.ConfirmOrderReceived(r.Context(), caller, id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// RequestPaymentToken handler
// @Summary Request payment token
// @Description Issues a new payment token for an unpaid order
// @Tags Order
// @Produce json
// @Security BearerAuth
// @Param id path int true "Order ID"
// @Success 200 {object} model.PaymentTokenResponse
// @Failure 400 {object} Response
// @Failure 502 {object} Response
// @Router /orders/{id}/payment-token [post]
func (s *RestHandler) RequestPaymentToken(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFrom(r)
	if err != nil {
		writeError(w, err)
		return
	}

	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.OrderApp.RequestPaymentToken(r.Context(), caller, id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// CancelExpiredOrder handler
// @Summary Cancel expired order
// @Description Internal endpoint used by the expiration consumer
// @Tags Internal
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} Response
// @Failure 400 {object} Response
// @Failure 403 {object} Response
// @Router /internal/v1/order/{id}/cancel [post]
func (s *RestHandler) CancelExpiredOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.OrderApp.CancelExpiredOrder(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}
