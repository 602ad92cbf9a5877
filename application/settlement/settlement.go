package settlement

import (
	"context"
	"sort"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/marketplace/constant"
	"github.com/muhammadheryan/marketplace/model"
	orderrepo "github.com/muhammadheryan/marketplace/repository/order"
	storerepo "github.com/muhammadheryan/marketplace/repository/store"
	"github.com/muhammadheryan/marketplace/utils/errors"
	"github.com/muhammadheryan/marketplace/utils/logger"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type SettlementApp interface {
	// SettleTx marks the order DELIVERED and credits each store with its share of the item subtotal.
	// It must run in the same transaction that verified the order is SHIPPED.
	SettleTx(ctx context.Context, tx *sqlx.Tx, order *model.OrderEntity) ([]model.StoreShare, error)
}

type settlementAppImpl struct {
	orderRepo orderrepo.OrderRepository
	storeRepo storerepo.StoreRepository
}

func NewSettlementApp(orderRepo orderrepo.OrderRepository, storeRepo storerepo.StoreRepository) SettlementApp {
	return &settlementAppImpl{orderRepo: orderRepo, storeRepo: storeRepo}
}

// Split sums price x quantity per store. Shipping and service fees stay with the platform.
// The result is ordered by store id.
func Split(items []model.OrderItemEntity) []model.StoreShare {
	totals := make(map[uint64]decimal.Decimal)
	for _, it := range items {
		totals[it.StoreID] = totals[it.StoreID].Add(it.LineTotal())
	}

	shares := make([]model.StoreShare, 0, len(totals))
	for storeID, amount := range totals {
		shares = append(shares, model.StoreShare{StoreID: storeID, Amount: amount})
	}
	sort.Slice(shares, func(i, j int) bool { return shares[i].StoreID < shares[j].StoreID })
	return shares
}

func (s *settlementAppImpl) SettleTx(ctx context.Context, tx *sqlx.Tx, order *model.OrderEntity) ([]model.StoreShare, error) {
	if order.Status != constant.OrderStatusShipped {
		return nil, errors.SetCustomError(constant.ErrInvalidOrderStatus)
	}

	items, err := s.orderRepo.GetItemsTx(ctx, tx, order.ID)
	if err != nil {
		logger.Error("[SettleTx] get order items", zap.Uint64("order_id", order.ID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	err = s.orderRepo.UpdateStateTx(ctx, tx, &model.OrderStateUpdate{
		OrderID: order.ID,
		Status:  constant.OrderStatusDelivered,
	})
	if err != nil {
		logger.Error("[SettleTx] update status", zap.Uint64("order_id", order.ID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	shares := Split(items)
	for _, share := range shares {
		if err := s.storeRepo.IncrementBalanceTx(ctx, tx, share.StoreID, share.Amount); err != nil {
			logger.Error("[SettleTx] credit store", zap.Uint64("order_id", order.ID), zap.Uint64("store_id", share.StoreID), zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
	}

	order.Status = constant.OrderStatusDelivered
	order.PaymentStatus = constant.OrderStatusDelivered.PaymentStatus()
	logger.Info("[SettleTx] order settled", zap.Uint64("order_id", order.ID), zap.Int("stores", len(shares)))
	return shares, nil
}
