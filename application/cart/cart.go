package cart

import (
	"context"

	"github.com/muhammadheryan/marketplace/application/inventory"
	"github.com/muhammadheryan/marketplace/application/policy"
	"github.com/muhammadheryan/marketplace/constant"
	"github.com/muhammadheryan/marketplace/model"
	cartRepo "github.com/muhammadheryan/marketplace/repository/cart"
	productRepo "github.com/muhammadheryan/marketplace/repository/product"
	"github.com/muhammadheryan/marketplace/utils/errors"
	"github.com/muhammadheryan/marketplace/utils/logger"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type CartApp interface {
	AddItem(ctx context.Context, caller model.Caller, req *model.AddCartItemRequest) (*model.CartItemEntity, error)
	// UpdateQuantity returns a nil item when the quantity removed the line.
	UpdateQuantity(ctx context.Context, caller model.Caller, itemID uint64, req *model.UpdateCartItemRequest) (*model.CartItemEntity, error)
	DeleteItem(ctx context.Context, caller model.Caller, itemID uint64) error
	GetCart(ctx context.Context, caller model.Caller) (*model.CartResponse, error)
}

type cartAppImpl struct {
	cartRepo    cartRepo.CartRepository
	productRepo productRepo.ProductRepository
}

func NewCartApp(cartRepo cartRepo.CartRepository, productRepo productRepo.ProductRepository) CartApp {
	return &cartAppImpl{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

func (s *cartAppImpl) AddItem(ctx context.Context, caller model.Caller, req *model.AddCartItemRequest) (*model.CartItemEntity, error) {
	if !policy.Authorize(caller, policy.ActionManageCart, policy.Resource{OwnerUserID: caller.UserID}) {
		return nil, errors.SetCustomError(constant.ErrForbidden)
	}
	if req.Quantity <= 0 {
		return nil, errors.SetCustomErrorMessage(constant.ErrInvalidRequest, "quantity must be positive")
	}

	product, err := s.purchasableProduct(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}
	if product.Stock < req.Quantity {
		return nil, stockError(product)
	}

	cart, err := s.cartRepo.GetByUserID(ctx, caller.UserID)
	if err != nil {
		logger.Error("[AddItem] error cartRepo.GetByUserID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if cart == nil {
		cart, err = s.cartRepo.Create(ctx, caller.UserID)
		if err != nil {
			logger.Error("[AddItem] error cartRepo.Create", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
	}

	existing, err := s.cartRepo.GetItemByProduct(ctx, cart.ID, product.ID)
	if err != nil {
		logger.Error("[AddItem] error cartRepo.GetItemByProduct", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if existing != nil {
		quantity := existing.Quantity + req.Quantity
		if product.Stock < quantity {
			return nil, stockError(product)
		}
		if err := s.cartRepo.UpdateItemQuantity(ctx, existing.ID, quantity); err != nil {
			logger.Error("[AddItem] error cartRepo.UpdateItemQuantity", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		existing.Quantity = quantity
		return existing, nil
	}

	item, err := s.cartRepo.InsertItem(ctx, &model.CartItemEntity{
		CartID:    cart.ID,
		ProductID: product.ID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		logger.Error("[AddItem] error cartRepo.InsertItem", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return item, nil
}

func (s *cartAppImpl) UpdateQuantity(ctx context.Context, caller model.Caller, itemID uint64, req *model.UpdateCartItemRequest) (*model.CartItemEntity, error) {
	if req.Quantity <= 0 {
		return nil, s.DeleteItem(ctx, caller, itemID)
	}

	item, err := s.ownedItem(ctx, caller, itemID)
	if err != nil {
		return nil, err
	}

	product, err := s.purchasableProduct(ctx, item.ProductID)
	if err != nil {
		return nil, err
	}
	if product.Stock < req.Quantity {
		return nil, stockError(product)
	}

	if err := s.cartRepo.UpdateItemQuantity(ctx, item.ID, req.Quantity); err != nil {
		logger.Error("[UpdateQuantity] error cartRepo.UpdateItemQuantity", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	updated := item.CartItemEntity
	updated.Quantity = req.Quantity
	return &updated, nil
}

func (s *cartAppImpl) DeleteItem(ctx context.Context, caller model.Caller, itemID uint64) error {
	item, err := s.ownedItem(ctx, caller, itemID)
	if err != nil {
		return err
	}

	if err := s.cartRepo.DeleteItem(ctx, item.ID); err != nil {
		logger.Error("[DeleteItem] error cartRepo.DeleteItem", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *cartAppImpl) GetCart(ctx context.Context, caller model.Caller) (*model.CartResponse, error) {
	resp := &model.CartResponse{Items: []model.CartLine{}, Total: decimal.Zero}

	cart, err := s.cartRepo.GetByUserID(ctx, caller.UserID)
	if err != nil {
		logger.Error("[GetCart] error cartRepo.GetByUserID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	// reads never create the cart
	if cart == nil {
		return resp, nil
	}

	lines, err := s.cartRepo.ListLines(ctx, cart.ID)
	if err != nil {
		logger.Error("[GetCart] error cartRepo.ListLines", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	resp.ID = cart.ID
	for _, l := range lines {
		resp.Items = append(resp.Items, l)
		resp.Total = resp.Total.Add(l.LineTotal())
	}
	return resp, nil
}

// ownedItem hides items of other users behind NotFound.
func (s *cartAppImpl) ownedItem(ctx context.Context, caller model.Caller, itemID uint64) (*model.CartItemOwned, error) {
	item, err := s.cartRepo.GetItemByID(ctx, itemID)
	if err != nil {
		logger.Error("[ownedItem] error cartRepo.GetItemByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if item == nil || !policy.Authorize(caller, policy.ActionManageCart, policy.Resource{OwnerUserID: item.UserID}) {
		return nil, errors.SetCustomErrorMessage(constant.ErrNotFound, "cart item not found")
	}
	return item, nil
}

func (s *cartAppImpl) purchasableProduct(ctx context.Context, productID uint64) (*model.ProductDetail, error) {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		logger.Error("[purchasableProduct] error productRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if product == nil || !product.Purchasable() {
		return nil, errors.SetCustomErrorMessage(constant.ErrNotFound, "product not found")
	}
	return product, nil
}

func stockError(p *model.ProductDetail) error {
	return inventory.InsufficientStock(p.Name, p.Stock)
}
