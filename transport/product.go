package transport

import (
	"net/http"
	"strconv"

	"github.com/muhammadheryan/marketplace/constant"
	"github.com/muhammadheryan/marketplace/model"
	"github.com/muhammadheryan/marketplace/utils/errors"
)

// ListProducts handler
// @Summary List products
// @Description Paginated list of active products from approved stores
// @Tags Product
// @Produce json
// @Param q query string false "Name contains"
// @Param store_id query int false "Only products of this store"
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(10)
// @Success 200 {object} model.ProductListResponse
// @Router /products [get]
func (s *RestHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	// unparsable paging falls back to the app defaults
	filter := model.ProductFilter{Query: query.Get("q")}
	filter.Page, _ = strconv.Atoi(query.Get("page"))
	filter.PerPage, _ = strconv.Atoi(query.Get("per_page"))

	if raw := query.Get("store_id"); raw != "" {
		storeID, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			writeError(w, errors.SetCustomErrorMessage(constant.ErrInvalidRequest, "invalid store_id"))
			return
		}
		filter.StoreID = storeID
	}

	res, err := s.ProductApp.ListProducts(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetProduct handler
// @Summary Get product
// @Tags Product
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} model.ProductDetail
// @Failure 404 {object} Response
// @Router /products/{id} [get]
func (s *RestHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.ProductApp.GetProduct(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
