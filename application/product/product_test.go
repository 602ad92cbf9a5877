package product_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	appproduct "github.com/muhammadheryan/marketplace/application/product"
	"github.com/muhammadheryan/marketplace/constant"
	productmocks "github.com/muhammadheryan/marketplace/mocks/repository/product"
	"github.com/muhammadheryan/marketplace/model"
	cerr "github.com/muhammadheryan/marketplace/utils/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func TestProductApp_ListProducts(t *testing.T) {
	items := []model.ProductListItem{
		{ID: 1, Name: "Kopi Gayo", StoreName: "Toko A", Stock: 100, Price: decimal.NewFromInt(50000)},
		{ID: 2, Name: "Kopi Toraja", StoreName: "Toko A", Stock: 50, Price: decimal.RequireFromString("7500.50")},
	}

	tests := []struct {
		name     string
		filter   model.ProductFilter
		repoWant model.ProductFilter
		repoRet  []model.ProductListItem
		repoErr  error
		want     *model.ProductListResponse
		errCode  constant.ErrorType
	}{
		{
			name:     "success: filter passed through",
			filter:   model.ProductFilter{StoreID: 3, Query: "kopi", Page: 2, PerPage: 2},
			repoWant: model.ProductFilter{StoreID: 3, Query: "kopi", Page: 2, PerPage: 2},
			repoRet:  items,
			want:     &model.ProductListResponse{Items: items, TotalCount: 4, Page: 2, PerPage: 2},
		},
		{
			name:     "success: paging defaults",
			filter:   model.ProductFilter{Page: -1},
			repoWant: model.ProductFilter{Page: 1, PerPage: 10},
			repoRet:  []model.ProductListItem{},
			want:     &model.ProductListResponse{Items: []model.ProductListItem{}, TotalCount: 4, Page: 1, PerPage: 10},
		},
		{
			name:     "success: page size capped",
			filter:   model.ProductFilter{Page: 3, PerPage: 1000},
			repoWant: model.ProductFilter{Page: 3, PerPage: 100},
			repoRet:  []model.ProductListItem{},
			want:     &model.ProductListResponse{Items: []model.ProductListItem{}, TotalCount: 4, Page: 3, PerPage: 100},
		},
		{
			name:     "error: repository error",
			filter:   model.ProductFilter{Page: 1, PerPage: 10},
			repoWant: model.ProductFilter{Page: 1, PerPage: 10},
			repoErr:  errors.New("db error"),
			errCode:  constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := productmocks.NewProductRepository(t)
			repo.On("List", mock.Anything, tt.repoWant).Return(tt.repoRet, int64(4), tt.repoErr).Once()

			got, err := appproduct.NewProductApp(repo).ListProducts(context.Background(), tt.filter)
			if tt.want == nil {
				if cerr.TypeOf(err) != tt.errCode {
					t.Fatalf("ListProducts() error = %v, want type %v", err, tt.errCode)
				}
				return
			}
			if err != nil || !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("ListProducts() = %+v, %v, want %+v", got, err, tt.want)
			}
		})
	}
}

func TestProductApp_GetProduct(t *testing.T) {
	active := &model.ProductDetail{
		ID: 1, Name: "Kopi Gayo", StoreID: 3, StoreName: "Toko A",
		StoreStatus: constant.StoreStatusApproved, IsActive: true, Stock: 5, Price: decimal.NewFromInt(50000),
	}
	inactive := *active
	inactive.IsActive = false
	unapproved := *active
	unapproved.StoreStatus = constant.StoreStatusRejected

	tests := []struct {
		name    string
		repoRet *model.ProductDetail
		repoErr error
		want    *model.ProductDetail
		errCode constant.ErrorType
	}{
		{name: "success: active product", repoRet: active, want: active},
		{name: "error: missing product", repoRet: nil, errCode: constant.ErrNotFound},
		{name: "error: inactive product", repoRet: &inactive, errCode: constant.ErrNotFound},
		{name: "error: store not approved", repoRet: &unapproved, errCode: constant.ErrNotFound},
		{name: "error: repository error", repoErr: errors.New("db error"), errCode: constant.ErrInternal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := productmocks.NewProductRepository(t)
			repo.On("GetByID", mock.Anything, uint64(1)).Return(tt.repoRet, tt.repoErr).Once()

			got, err := appproduct.NewProductApp(repo).GetProduct(context.Background(), 1)
			if tt.want != nil {
				if err != nil || !reflect.DeepEqual(got, tt.want) {
					t.Fatalf("GetProduct() = %+v, %v", got, err)
				}
				return
			}
			if cerr.TypeOf(err) != tt.errCode {
				t.Fatalf("GetProduct() error = %v, want type %v", err, tt.errCode)
			}
		})
	}
}
