package inventory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/marketplace/application/inventory"
	"github.com/muhammadheryan/marketplace/constant"
	productmocks "github.com/muhammadheryan/marketplace/mocks/repository/product"
	"github.com/muhammadheryan/marketplace/model"
	cerr "github.com/muhammadheryan/marketplace/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestDemandFromCart(t *testing.T) {
	got := inventory.DemandFromCart([]model.CartLine{
		{ProductID: 3, Quantity: 1},
		{ProductID: 1, Quantity: 2},
		{ProductID: 3, Quantity: 4},
	})

	assert.Equal(t, []inventory.Demand{
		{ProductID: 1, Quantity: 2},
		{ProductID: 3, Quantity: 5},
	}, got)
}

func TestDemandFromOrder(t *testing.T) {
	got := inventory.DemandFromOrder([]model.OrderItemEntity{
		{ProductID: 9, Quantity: 1},
		{ProductID: 2, Quantity: 7},
	})

	assert.Equal(t, []inventory.Demand{
		{ProductID: 2, Quantity: 7},
		{ProductID: 9, Quantity: 1},
	}, got)
}

func TestReserve(t *testing.T) {
	demand := []inventory.Demand{{ProductID: 1, Quantity: 2}, {ProductID: 2, Quantity: 3}}

	tests := []struct {
		name     string
		mockCall func(repo *productmocks.ProductRepository, tx *sqlx.Tx)
		wantErr  bool
		errCode  constant.ErrorType
		errMsg   string
	}{
		{
			name: "success: all demands fit",
			mockCall: func(repo *productmocks.ProductRepository, tx *sqlx.Tx) {
				repo.On("GetStocksForUpdateTx", mock.Anything, tx, []uint64{1, 2}).Return([]model.ProductStock{
					sellable(1, "Kopi", 2),
					sellable(2, "Teh", 5),
				}, nil).Once()
				repo.On("DecrementStockTx", mock.Anything, tx, uint64(1), int64(2)).Return(true, nil).Once()
				repo.On("DecrementStockTx", mock.Anything, tx, uint64(2), int64(3)).Return(true, nil).Once()
			},
		},
		{
			name: "error: shortfall on the second product decrements nothing",
			mockCall: func(repo *productmocks.ProductRepository, tx *sqlx.Tx) {
				repo.On("GetStocksForUpdateTx", mock.Anything, tx, []uint64{1, 2}).Return([]model.ProductStock{
					sellable(1, "Kopi", 2),
					sellable(2, "Teh", 2),
				}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInsufficientStock,
			errMsg:  "insufficient stock for product Teh, available 2",
		},
		{
			name: "error: product deactivated after it was carted",
			mockCall: func(repo *productmocks.ProductRepository, tx *sqlx.Tx) {
				teh := sellable(2, "Teh", 9)
				teh.IsActive = false
				repo.On("GetStocksForUpdateTx", mock.Anything, tx, []uint64{1, 2}).Return([]model.ProductStock{
					sellable(1, "Kopi", 2),
					teh,
				}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrProductUnavailable,
			errMsg:  "product Teh is no longer available",
		},
		{
			name: "error: store no longer approved",
			mockCall: func(repo *productmocks.ProductRepository, tx *sqlx.Tx) {
				kopi := sellable(1, "Kopi", 2)
				kopi.StoreStatus = constant.StoreStatusRejected
				repo.On("GetStocksForUpdateTx", mock.Anything, tx, []uint64{1, 2}).Return([]model.ProductStock{
					kopi,
					sellable(2, "Teh", 5),
				}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrProductUnavailable,
		},
		{
			name: "error: product disappeared",
			mockCall: func(repo *productmocks.ProductRepository, tx *sqlx.Tx) {
				repo.On("GetStocksForUpdateTx", mock.Anything, tx, []uint64{1, 2}).Return([]model.ProductStock{
					sellable(1, "Kopi", 2),
				}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name: "error: conditional decrement misses",
			mockCall: func(repo *productmocks.ProductRepository, tx *sqlx.Tx) {
				repo.On("GetStocksForUpdateTx", mock.Anything, tx, []uint64{1, 2}).Return([]model.ProductStock{
					sellable(1, "Kopi", 2),
					sellable(2, "Teh", 3),
				}, nil).Once()
				repo.On("DecrementStockTx", mock.Anything, tx, uint64(1), int64(2)).Return(false, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInsufficientStock,
		},
		{
			name: "error: lock query fails",
			mockCall: func(repo *productmocks.ProductRepository, tx *sqlx.Tx) {
				repo.On("GetStocksForUpdateTx", mock.Anything, tx, []uint64{1, 2}).Return(nil, errors.New("lock wait timeout")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := productmocks.NewProductRepository(t)
			tx := &sqlx.Tx{}
			tt.mockCall(repo, tx)

			err := inventory.Reserve(context.Background(), tx, repo, demand)
			if tt.wantErr {
				assert.Equal(t, tt.errCode, cerr.TypeOf(err))
				if tt.errMsg != "" {
					assert.EqualError(t, err, tt.errMsg)
				}
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestRelease(t *testing.T) {
	repo := productmocks.NewProductRepository(t)
	tx := &sqlx.Tx{}
	repo.On("IncrementStockTx", mock.Anything, tx, uint64(1), int64(2)).Return(nil).Once()
	repo.On("IncrementStockTx", mock.Anything, tx, uint64(2), int64(3)).Return(errors.New("boom")).Once()

	err := inventory.Release(context.Background(), tx, repo, []inventory.Demand{
		{ProductID: 1, Quantity: 2},
		{ProductID: 2, Quantity: 3},
	})

	assert.Equal(t, constant.ErrInternal, cerr.TypeOf(err))
}

func sellable(id uint64, name string, stock int64) model.ProductStock {
	return model.ProductStock{ID: id, Name: name, Stock: stock, IsActive: true, StoreStatus: constant.StoreStatusApproved}
}
