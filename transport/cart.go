package transport

import (
	"net/http"

	"github.com/muhammadheryan/marketplace/model"
)

// GetCart handler
// @Summary Get cart
// @Description Cart lines with the computed total. An empty shape is returned when no cart exists.
// @Tags Cart
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.CartResponse
// @Router /cart [get]
func (s *RestHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFrom(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.CartApp.GetCart(r.Context(), caller)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// AddCartItem handler
// @Summary Add item to cart
// @Tags Cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.AddCartItemRequest true "Add Cart Item Request"
// @Success 201 {object} model.CartItemEntity
// @Failure 400 {object} Response
// @Failure 404 {object} Response
// @Router /cart [post]
func (s *RestHandler) AddCartItem(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFrom(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.AddCartItemRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.CartApp.AddItem(r.Context(), caller, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeCreated(w, res)
}

// UpdateCartItem handler
// @Summary Update cart item quantity
// @Description A quantity of zero or less removes the item
// @Tags Cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param itemId path int true "Cart item ID"
// @Param request body model.UpdateCartItemRequest true "Update Cart Item Request"
// @Success 200 {object} model.CartItemEntity
// @Failure 400 {object} Response
// @Failure 404 {object} Response
// @Router /cart/{itemId} [patch]
func (s *RestHandler) UpdateCartItem(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFrom(r)
	if err != nil {
		writeError(w, err)
		return
	}

	itemID, err := pathID(r, "itemId")
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.UpdateCartItemRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.CartApp.UpdateQuantity(r.Context(), caller, itemID, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// DeleteCartItem handler
// @Summary Delete cart item
// @Tags Cart
// @Produce json
// @Security BearerAuth
// @Param itemId path int true "Cart item ID"
// @Success 200 {object} Response
// @Failure 404 {object} Response
// @Router /cart/{itemId} [delete]
func (s *RestHandler) DeleteCartItem(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFrom(r)
	if err != nil {
		writeError(w, err)
		return
	}

	itemID, err := pathID(r, "itemId")
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.CartApp.DeleteItem(r.Context(), caller, itemID); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}
