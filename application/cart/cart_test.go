package cart_test

import (
	"context"
	"errors"
	"testing"

	appcart "github.com/muhammadheryan/marketplace/application/cart"
	"github.com/muhammadheryan/marketplace/constant"
	cartmocks "github.com/muhammadheryan/marketplace/mocks/repository/cart"
	productmocks "github.com/muhammadheryan/marketplace/mocks/repository/product"
	"github.com/muhammadheryan/marketplace/model"
	cerr "github.com/muhammadheryan/marketplace/utils/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var buyer = model.Caller{UserID: 1, Role: constant.RoleBuyer}

func activeProduct(stock int64) *model.ProductDetail {
	return &model.ProductDetail{
		ID:          5,
		Name:        "Kopi Gayo",
		StoreID:     2,
		StoreStatus: constant.StoreStatusApproved,
		IsActive:    true,
		Stock:       stock,
		Price:       decimal.NewFromInt(100000),
	}
}

func TestCartApp_AddItem(t *testing.T) {
	type fields struct {
		cartRepo    *cartmocks.CartRepository
		productRepo *productmocks.ProductRepository
	}
	type args struct {
		caller model.Caller
		req    *model.AddCartItemRequest
	}
	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		want     *model.CartItemEntity
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: first add creates the cart lazily",
			fields: fields{
				cartRepo:    cartmocks.NewCartRepository(t),
				productRepo: productmocks.NewProductRepository(t),
			},
			args: args{caller: buyer, req: &model.AddCartItemRequest{ProductID: 5, Quantity: 2}},
			mockCall: func(f fields) {
				f.productRepo.On("GetByID", mock.Anything, uint64(5)).Return(activeProduct(10), nil).Once()
				f.cartRepo.On("GetByUserID", mock.Anything, uint64(1)).Return(nil, nil).Once()
				f.cartRepo.On("Create", mock.Anything, uint64(1)).Return(&model.CartEntity{ID: 3, UserID: 1}, nil).Once()
				f.cartRepo.On("GetItemByProduct", mock.Anything, uint64(3), uint64(5)).Return(nil, nil).Once()
				f.cartRepo.On("InsertItem", mock.Anything, &model.CartItemEntity{CartID: 3, ProductID: 5, Quantity: 2}).
					Return(&model.CartItemEntity{ID: 8, CartID: 3, ProductID: 5, Quantity: 2}, nil).Once()
			},
			want: &model.CartItemEntity{ID: 8, CartID: 3, ProductID: 5, Quantity: 2},
		},
		{
			name: "success: existing line is incremented",
			fields: fields{
				cartRepo:    cartmocks.NewCartRepository(t),
				productRepo: productmocks.NewProductRepository(t),
			},
			args: args{caller: buyer, req: &model.AddCartItemRequest{ProductID: 5, Quantity: 2}},
			mockCall: func(f fields) {
				f.productRepo.On("GetByID", mock.Anything, uint64(5)).Return(activeProduct(5), nil).Once()
				f.cartRepo.On("GetByUserID", mock.Anything, uint64(1)).Return(&model.CartEntity{ID: 3, UserID: 1}, nil).Once()
				f.cartRepo.On("GetItemByProduct", mock.Anything, uint64(3), uint64(5)).
					Return(&model.CartItemEntity{ID: 8, CartID: 3, ProductID: 5, Quantity: 3}, nil).Once()
				f.cartRepo.On("UpdateItemQuantity", mock.Anything, uint64(8), int64(5)).Return(nil).Once()
			},
			want: &model.CartItemEntity{ID: 8, CartID: 3, ProductID: 5, Quantity: 5},
		},
		{
			name: "error: combined quantity exceeds stock",
			fields: fields{
				cartRepo:    cartmocks.NewCartRepository(t),
				productRepo: productmocks.NewProductRepository(t),
			},
			args: args{caller: buyer, req: &model.AddCartItemRequest{ProductID: 5, Quantity: 2}},
			mockCall: func(f fields) {
				f.productRepo.On("GetByID", mock.Anything, uint64(5)).Return(activeProduct(4), nil).Once()
				f.cartRepo.On("GetByUserID", mock.Anything, uint64(1)).Return(&model.CartEntity{ID: 3, UserID: 1}, nil).Once()
				f.cartRepo.On("GetItemByProduct", mock.Anything, uint64(3), uint64(5)).
					Return(&model.CartItemEntity{ID: 8, CartID: 3, ProductID: 5, Quantity: 3}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInsufficientStock,
		},
		{
			name: "error: requested quantity exceeds stock",
			fields: fields{
				cartRepo:    cartmocks.NewCartRepository(t),
				productRepo: productmocks.NewProductRepository(t),
			},
			args: args{caller: buyer, req: &model.AddCartItemRequest{ProductID: 5, Quantity: 2}},
			mockCall: func(f fields) {
				f.productRepo.On("GetByID", mock.Anything, uint64(5)).Return(activeProduct(1), nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInsufficientStock,
		},
		{
			name: "error: product of an unapproved store",
			fields: fields{
				cartRepo:    cartmocks.NewCartRepository(t),
				productRepo: productmocks.NewProductRepository(t),
			},
			args: args{caller: buyer, req: &model.AddCartItemRequest{ProductID: 5, Quantity: 1}},
			mockCall: func(f fields) {
				p := activeProduct(10)
				p.StoreStatus = constant.StoreStatusPending
				f.productRepo.On("GetByID", mock.Anything, uint64(5)).Return(p, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name: "error: inactive product",
			fields: fields{
				cartRepo:    cartmocks.NewCartRepository(t),
				productRepo: productmocks.NewProductRepository(t),
			},
			args: args{caller: buyer, req: &model.AddCartItemRequest{ProductID: 5, Quantity: 1}},
			mockCall: func(f fields) {
				p := activeProduct(10)
				p.IsActive = false
				f.productRepo.On("GetByID", mock.Anything, uint64(5)).Return(p, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name: "error: admin has no cart",
			fields: fields{
				cartRepo:    cartmocks.NewCartRepository(t),
				productRepo: productmocks.NewProductRepository(t),
			},
			args:    args{caller: model.Caller{UserID: 9, Role: constant.RoleAdmin}, req: &model.AddCartItemRequest{ProductID: 5, Quantity: 1}},
			wantErr: true,
			errCode: constant.ErrForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			s := appcart.NewCartApp(tt.fields.cartRepo, tt.fields.productRepo)

			got, err := s.AddItem(context.Background(), tt.args.caller, tt.args.req)
			if tt.wantErr {
				assert.Equal(t, tt.errCode, cerr.TypeOf(err))
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCartApp_UpdateQuantity(t *testing.T) {
	owned := &model.CartItemOwned{
		CartItemEntity: model.CartItemEntity{ID: 8, CartID: 3, ProductID: 5, Quantity: 1},
		UserID:         1,
	}

	tests := []struct {
		name     string
		quantity int64
		mockCall func(cartRepo *cartmocks.CartRepository, productRepo *productmocks.ProductRepository)
		want     *model.CartItemEntity
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name:     "success: quantity updated within stock",
			quantity: 4,
			mockCall: func(cartRepo *cartmocks.CartRepository, productRepo *productmocks.ProductRepository) {
				cartRepo.On("GetItemByID", mock.Anything, uint64(8)).Return(owned, nil).Once()
				productRepo.On("GetByID", mock.Anything, uint64(5)).Return(activeProduct(4), nil).Once()
				cartRepo.On("UpdateItemQuantity", mock.Anything, uint64(8), int64(4)).Return(nil).Once()
			},
			want: &model.CartItemEntity{ID: 8, CartID: 3, ProductID: 5, Quantity: 4},
		},
		{
			name:     "success: zero quantity deletes the line",
			quantity: 0,
			mockCall: func(cartRepo *cartmocks.CartRepository, productRepo *productmocks.ProductRepository) {
				cartRepo.On("GetItemByID", mock.Anything, uint64(8)).Return(owned, nil).Once()
				cartRepo.On("DeleteItem", mock.Anything, uint64(8)).Return(nil).Once()
			},
			want: nil,
		},
		{
			name:     "error: above stock",
			quantity: 5,
			mockCall: func(cartRepo *cartmocks.CartRepository, productRepo *productmocks.ProductRepository) {
				cartRepo.On("GetItemByID", mock.Anything, uint64(8)).Return(owned, nil).Once()
				productRepo.On("GetByID", mock.Anything, uint64(5)).Return(activeProduct(4), nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInsufficientStock,
		},
		{
			name:     "error: item of another user",
			quantity: 2,
			mockCall: func(cartRepo *cartmocks.CartRepository, productRepo *productmocks.ProductRepository) {
				cartRepo.On("GetItemByID", mock.Anything, uint64(8)).Return(&model.CartItemOwned{
					CartItemEntity: owned.CartItemEntity,
					UserID:         2,
				}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cartRepo := cartmocks.NewCartRepository(t)
			productRepo := productmocks.NewProductRepository(t)
			tt.mockCall(cartRepo, productRepo)

			got, err := appcart.NewCartApp(cartRepo, productRepo).
				UpdateQuantity(context.Background(), buyer, 8, &model.UpdateCartItemRequest{Quantity: tt.quantity})
			if tt.wantErr {
				assert.Equal(t, tt.errCode, cerr.TypeOf(err))
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCartApp_DeleteItem(t *testing.T) {
	t.Run("error: missing item", func(t *testing.T) {
		cartRepo := cartmocks.NewCartRepository(t)
		cartRepo.On("GetItemByID", mock.Anything, uint64(8)).Return(nil, nil).Once()

		err := appcart.NewCartApp(cartRepo, productmocks.NewProductRepository(t)).DeleteItem(context.Background(), buyer, 8)

		assert.Equal(t, constant.ErrNotFound, cerr.TypeOf(err))
	})

	t.Run("error: storage failure", func(t *testing.T) {
		cartRepo := cartmocks.NewCartRepository(t)
		cartRepo.On("GetItemByID", mock.Anything, uint64(8)).Return(&model.CartItemOwned{
			CartItemEntity: model.CartItemEntity{ID: 8},
			UserID:         1,
		}, nil).Once()
		cartRepo.On("DeleteItem", mock.Anything, uint64(8)).Return(errors.New("lost connection")).Once()

		err := appcart.NewCartApp(cartRepo, productmocks.NewProductRepository(t)).DeleteItem(context.Background(), buyer, 8)

		assert.Equal(t, constant.ErrInternal, cerr.TypeOf(err))
	})
}

func TestCartApp_GetCart(t *testing.T) {
	t.Run("success: no cart yet returns empty shape", func(t *testing.T) {
		cartRepo := cartmocks.NewCartRepository(t)
		cartRepo.On("GetByUserID", mock.Anything, uint64(1)).Return(nil, nil).Once()

		got, err := appcart.NewCartApp(cartRepo, productmocks.NewProductRepository(t)).GetCart(context.Background(), buyer)

		assert.NoError(t, err)
		assert.Empty(t, got.Items)
		assert.NotNil(t, got.Items)
		assert.True(t, got.Total.IsZero())
	})

	t.Run("success: total sums price times quantity", func(t *testing.T) {
		cartRepo := cartmocks.NewCartRepository(t)
		cartRepo.On("GetByUserID", mock.Anything, uint64(1)).Return(&model.CartEntity{ID: 3, UserID: 1}, nil).Once()
		cartRepo.On("ListLines", mock.Anything, uint64(3)).Return([]model.CartLine{
			{ID: 1, ProductID: 5, Price: decimal.NewFromInt(100000), Quantity: 2},
			{ID: 2, ProductID: 6, Price: decimal.RequireFromString("2500.50"), Quantity: 2},
		}, nil).Once()

		got, err := appcart.NewCartApp(cartRepo, productmocks.NewProductRepository(t)).GetCart(context.Background(), buyer)

		assert.NoError(t, err)
		assert.Equal(t, uint64(3), got.ID)
		assert.Len(t, got.Items, 2)
		assert.True(t, got.Total.Equal(decimal.RequireFromString("205001")))
	})
}
