package product

import (
	"context"

	"github.com/muhammadheryan/marketplace/constant"
	"github.com/muhammadheryan/marketplace/model"
	productRepo "github.com/muhammadheryan/marketplace/repository/product"
	"github.com/muhammadheryan/marketplace/utils/errors"
	"github.com/muhammadheryan/marketplace/utils/logger"
	"go.uber.org/zap"
)

const (
	defaultPerPage = 10
	maxPerPage     = 100
)

type ProductApp interface {
	ListProducts(ctx context.Context, filter model.ProductFilter) (*model.ProductListResponse, error)
	GetProduct(ctx context.Context, id uint64) (*model.ProductDetail, error)
}

type productAppImpl struct {
	productRepo productRepo.ProductRepository
}

func NewProductApp(productRepo productRepo.ProductRepository) ProductApp {
	return &productAppImpl{productRepo: productRepo}
}

func (s *productAppImpl) ListProducts(ctx context.Context, filter model.ProductFilter) (*model.ProductListResponse, error) {
	switch {
	case filter.PerPage <= 0:
		filter.PerPage = defaultPerPage
	case filter.PerPage > maxPerPage:
		filter.PerPage = maxPerPage
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}

	items, total, err := s.productRepo.List(ctx, filter)
	if err != nil {
		logger.Error("[ListProducts] error productRepo.List",
			zap.Uint64("store_id", filter.StoreID),
			zap.String("error", err.Error()),
		)
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.ProductListResponse{
		Items:      items,
		TotalCount: total,
		Page:       filter.Page,
		PerPage:    filter.PerPage,
	}, nil
}

// GetProduct hides inactive products and products of unapproved stores.
func (s *productAppImpl) GetProduct(ctx context.Context, id uint64) (*model.ProductDetail, error) {
	result, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[GetProduct] error productRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if result == nil || !result.Purchasable() {
		return nil, errors.SetCustomErrorMessage(constant.ErrNotFound, "product not found")
	}

	return result, nil
}
