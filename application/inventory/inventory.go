// Package inventory keeps product stock consistent with orders. Every function runs inside the
// caller's transaction so stock moves commit or roll back together with the order rows.
package inventory

import (
	"context"
	"fmt"
	"sort"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/marketplace/constant"
	"github.com/muhammadheryan/marketplace/model"
	productrepo "github.com/muhammadheryan/marketplace/repository/product"
	"github.com/muhammadheryan/marketplace/utils/errors"
	"github.com/muhammadheryan/marketplace/utils/logger"
	"go.uber.org/zap"
)

// Demand is the quantity requested for one product.
type Demand struct {
	ProductID uint64
	Quantity  int64
}

// DemandFromCart merges cart lines per product; a cart may hold more than one line for the same product.
func DemandFromCart(lines []model.CartLine) []Demand {
	totals := make(map[uint64]int64)
	for _, l := range lines {
		totals[l.ProductID] += l.Quantity
	}
	return sorted(totals)
}

// DemandFromOrder merges order items per product.
func DemandFromOrder(items []model.OrderItemEntity) []Demand {
	totals := make(map[uint64]int64)
	for _, it := range items {
		totals[it.ProductID] += it.Quantity
	}
	return sorted(totals)
}

// sorted orders demand by product id, matching the row lock order.
func sorted(totals map[uint64]int64) []Demand {
	out := make([]Demand, 0, len(totals))
	for id, qty := range totals {
		out = append(out, Demand{ProductID: id, Quantity: qty})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ProductID < out[j].ProductID })
	return out
}

// Reserve locks the product rows, verifies every demand against the freshest stock and listing state,
// then decrements. Nothing is decremented unless all demands fit.
func Reserve(ctx context.Context, tx *sqlx.Tx, repo productrepo.ProductRepository, demand []Demand) error {
	ids := make([]uint64, len(demand))
	for i, d := range demand {
		ids[i] = d.ProductID
	}

	stocks, err := repo.GetStocksForUpdateTx(ctx, tx, ids)
	if err != nil {
		logger.Error("[Reserve] lock stock", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	byID := make(map[uint64]model.ProductStock, len(stocks))
	for _, s := range stocks {
		byID[s.ID] = s
	}

	for _, d := range demand {
		s, ok := byID[d.ProductID]
		if !ok {
			return errors.SetCustomErrorMessage(constant.ErrNotFound, fmt.Sprintf("product %d not found", d.ProductID))
		}
		if !s.Purchasable() {
			return errors.SetCustomErrorMessage(constant.ErrProductUnavailable,
				fmt.Sprintf("product %s is no longer available", s.Name))
		}
		if s.Stock < d.Quantity {
			logger.Info("[Reserve] insufficient stock", zap.Uint64("product_id", d.ProductID), zap.Int64("need", d.Quantity), zap.Int64("available", s.Stock))
			return InsufficientStock(s.Name, s.Stock)
		}
	}

	for _, d := range demand {
		ok, err := repo.DecrementStockTx(ctx, tx, d.ProductID, d.Quantity)
		if err != nil {
			logger.Error("[Reserve] decrement stock", zap.Uint64("product_id", d.ProductID), zap.String("error", err.Error()))
			return errors.SetCustomError(constant.ErrInternal)
		}
		if !ok {
			// the row is locked, so this only happens if the lock was not honoured
			s := byID[d.ProductID]
			return InsufficientStock(s.Name, s.Stock)
		}
	}
	return nil
}

// Release gives the quantities of a cancelled order back to stock.
func Release(ctx context.Context, tx *sqlx.Tx, repo productrepo.ProductRepository, demand []Demand) error {
	for _, d := range demand {
		if err := repo.IncrementStockTx(ctx, tx, d.ProductID, d.Quantity); err != nil {
			logger.Error("[Release] increment stock", zap.Uint64("product_id", d.ProductID), zap.String("error", err.Error()))
			return errors.SetCustomError(constant.ErrInternal)
		}
	}
	return nil
}

func InsufficientStock(productName string, available int64) error {
	return errors.SetCustomErrorMessage(constant.ErrInsufficientStock,
		fmt.Sprintf("insufficient stock for product %s, available %d", productName, available))
}
