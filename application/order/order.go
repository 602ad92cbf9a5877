package order

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/marketplace/application/inventory"
	"github.com/muhammadheryan/marketplace/application/policy"
	"github.com/muhammadheryan/marketplace/application/settlement"
	"github.com/muhammadheryan/marketplace/cmd/config"
	"github.com/muhammadheryan/marketplace/constant"
	"github.com/muhammadheryan/marketplace/model"
	addressrepo "github.com/muhammadheryan/marketplace/repository/address"
	cartrepo "github.com/muhammadheryan/marketplace/repository/cart"
	orderrepo "github.com/muhammadheryan/marketplace/repository/order"
	productrepo "github.com/muhammadheryan/marketplace/repository/product"
	txrepo "github.com/muhammadheryan/marketplace/repository/tx"
	userrepo "github.com/muhammadheryan/marketplace/repository/user"
	"github.com/muhammadheryan/marketplace/thirdparty/midtrans"
	"github.com/muhammadheryan/marketplace/thirdparty/rabbitmq"
	"github.com/muhammadheryan/marketplace/utils/errors"
	"github.com/muhammadheryan/marketplace/utils/logger"
	"go.uber.org/zap"
)

type OrderApp interface {
	CreateOrder(ctx context.Context, caller model.Caller, req *model.CreateOrderRequest) (*model.CreateOrderResponse, error)
	GetOrder(ctx context.Context, caller model.Caller, orderID uint64) (*model.OrderDetailResponse, error)
	RequestPaymentToken(ctx context.Context, caller model.Caller, orderID uint64) (*model.PaymentTokenResponse, error)
	UpdateOrderStatus(ctx context.Context, caller model.Caller, orderID uint64, req *model.UpdateOrderStatusRequest) (*model.OrderEntity, error)
	ConfirmOrderReceived(ctx context.Context, caller model.Caller, orderID uint64) (*model.OrderEntity, error)
	CancelExpiredOrder(ctx context.Context, orderID uint64) error
}

// Dependencies groups the collaborators of the order app.
type Dependencies struct {
	TxRepo      txrepo.TxRepository
	CartRepo    cartrepo.CartRepository
	AddressRepo addressrepo.AddressRepository
	ProductRepo productrepo.ProductRepository
	OrderRepo   orderrepo.OrderRepository
	UserRepo    userrepo.UserRepository
	Settlement  settlement.SettlementApp
	Gateway     midtrans.Client
	// Publisher may be nil, in which case unpaid orders are not expired automatically.
	Publisher rabbitmq.OrderExpirationPublisher
}

type orderAppImpl struct {
	config *config.Config
	fees   FeePolicy
	deps   Dependencies
}

func NewOrderApp(config *config.Config, deps Dependencies) OrderApp {
	return &orderAppImpl{
		config: config,
		fees: FeePolicy{
			MinSubtotal: config.Order.ServiceFeeMinSubtotal,
			Interval:    config.Order.ServiceFeeInterval,
			Rate:        config.Order.ServiceFeeRate,
		},
		deps: deps,
	}
}

// sellerTargets are the statuses a seller may move an order into; the rest are driven by payment or the buyer.
var sellerTargets = map[constant.OrderStatus]bool{
	constant.OrderStatusShipped: true,
}

func (s *orderAppImpl) CreateOrder(ctx context.Context, caller model.Caller, req *model.CreateOrderRequest) (*model.CreateOrderResponse, error) {
	if !policy.Authorize(caller, policy.ActionCheckout, policy.Resource{OwnerUserID: caller.UserID}) {
		return nil, errors.SetCustomError(constant.ErrForbidden)
	}

	var order *model.OrderEntity
	err := txrepo.Run(ctx, s.deps.TxRepo, func(tx *sqlx.Tx) error {
		cart, err := s.deps.CartRepo.GetByUserForUpdateTx(ctx, tx, caller.UserID)
		if err != nil {
			logger.Error("[CreateOrder] lock cart", zap.String("error", err.Error()))
			return errors.SetCustomError(constant.ErrInternal)
		}
		if cart == nil {
			return errors.SetCustomErrorMessage(constant.ErrNotFound, "cart not found")
		}

		// read after the cart lock so a concurrent checkout of the same cart sees it already emptied
		lines, err := s.deps.CartRepo.ListLinesTx(ctx, tx, cart.ID)
		if err != nil {
			logger.Error("[CreateOrder] list cart lines", zap.String("error", err.Error()))
			return errors.SetCustomError(constant.ErrInternal)
		}
		if len(lines) == 0 {
			return errors.SetCustomError(constant.ErrEmptyCart)
		}

		address, err := s.deps.AddressRepo.GetByID(ctx, req.AddressID)
		if err != nil {
			logger.Error("[CreateOrder] get address", zap.String("error", err.Error()))
			return errors.SetCustomError(constant.ErrInternal)
		}
		if address == nil || address.UserID != caller.UserID {
			return errors.SetCustomErrorMessage(constant.ErrNotFound, "address not found")
		}

		price := s.fees.Breakdown(lines, req.ShippingCost)
		if req.TotalPrice.Valid && !WithinTolerance(req.TotalPrice.Decimal, price.Total, s.config.Order.PriceTolerance) {
			logger.WithContext(ctx).Info("[CreateOrder] price mismatch",
				zap.String("client_total", req.TotalPrice.Decimal.String()), zap.String("server_total", price.Total.String()))
			return errors.SetCustomError(constant.ErrPriceMismatch)
		}

		if err := inventory.Reserve(ctx, tx, s.deps.ProductRepo, inventory.DemandFromCart(lines)); err != nil {
			return err
		}

		order = &model.OrderEntity{
			UserID:          caller.UserID,
			AddressID:       address.ID,
			RecipientName:   address.RecipientName,
			RecipientPhone:  address.Phone,
			ShippingAddress: formatAddress(address),
			Subtotal:        price.Subtotal,
			ShippingFee:     price.ShippingFee,
			ServiceFee:      price.ServiceFee,
			TotalAmount:     price.Total,
			Status:          constant.OrderStatusPendingPayment,
			PaymentStatus:   constant.OrderStatusPendingPayment.PaymentStatus(),
			PaymentMethod:   req.PaymentMethod,
			LogisticsOption: req.LogisticsOption,
			CreatedAt:       time.Now(),
		}
		orderID, err := s.deps.OrderRepo.InsertOrderTx(ctx, tx, order)
		if err != nil {
			logger.Error("[CreateOrder] insert order", zap.String("error", err.Error()))
			return errors.SetCustomError(constant.ErrInternal)
		}
		order.ID = orderID

		if err := s.deps.OrderRepo.InsertOrderItemsTx(ctx, tx, orderID, orderItems(lines)); err != nil {
			logger.Error("[CreateOrder] insert items", zap.Uint64("order_id", orderID), zap.String("error", err.Error()))
			return errors.SetCustomError(constant.ErrInternal)
		}

		if err := s.deps.CartRepo.DeleteItemsTx(ctx, tx, cart.ID, lineIDs(lines)); err != nil {
			logger.Error("[CreateOrder] clear ordered lines", zap.Uint64("cart_id", cart.ID), zap.String("error", err.Error()))
			return errors.SetCustomError(constant.ErrInternal)
		}
		return nil
	})
	if err != nil {
		return nil, errors.MapInternal("[CreateOrder] tx", err)
	}

	s.scheduleExpiration(ctx, order)

	resp := &model.CreateOrderResponse{Order: order}
	token, err := s.paymentToken(ctx, order)
	if err != nil {
		// the order is committed; the client recovers through RequestPaymentToken
		return resp, err
	}
	resp.SnapToken = token
	return resp, nil
}

func (s *orderAppImpl) GetOrder(ctx context.Context, caller model.Caller, orderID uint64) (*model.OrderDetailResponse, error) {
	order, err := s.deps.OrderRepo.GetByID(ctx, orderID)
	if err != nil {
		logger.Error("[GetOrder] get order", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if order == nil {
		return nil, errors.SetCustomErrorMessage(constant.ErrNotFound, "order not found")
	}

	res := policy.Resource{OwnerUserID: order.UserID}
	if order.UserID != caller.UserID && caller.Role == constant.RoleSeller {
		res.OrderSeller, err = s.deps.OrderRepo.HasSellerItem(ctx, orderID, caller.UserID)
		if err != nil {
			logger.Error("[GetOrder] check seller", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
	}
	if !policy.Authorize(caller, policy.ActionViewOrder, res) {
		return nil, errors.SetCustomErrorMessage(constant.ErrNotFound, "order not found")
	}

	items, err := s.deps.OrderRepo.GetItems(ctx, orderID)
	if err != nil {
		logger.Error("[GetOrder] get items", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.OrderDetailResponse{Order: order, Items: items}, nil
}

func (s *orderAppImpl) RequestPaymentToken(ctx context.Context, caller model.Caller, orderID uint64) (*model.PaymentTokenResponse, error) {
	order, err := s.deps.OrderRepo.GetByID(ctx, orderID)
	if err != nil {
		logger.Error("[RequestPaymentToken] get order", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if order == nil || order.UserID != caller.UserID {
		return nil, errors.SetCustomErrorMessage(constant.ErrNotFound, "order not found")
	}
	if order.Status != constant.OrderStatusPendingPayment {
		return nil, errors.SetCustomError(constant.ErrInvalidOrderStatus)
	}

	token, err := s.paymentToken(ctx, order)
	if err != nil {
		return nil, err
	}
	return &model.PaymentTokenResponse{OrderID: order.ID, SnapToken: token}, nil
}

func (s *orderAppImpl) UpdateOrderStatus(ctx context.Context, caller model.Caller, orderID uint64, req *model.UpdateOrderStatusRequest) (*model.OrderEntity, error) {
	if !req.Status.Valid() {
		return nil, errors.SetCustomErrorMessage(constant.ErrInvalidRequest, fmt.Sprintf("unknown order status %q", req.Status))
	}

	var updated *model.OrderEntity
	err := txrepo.Run(ctx, s.deps.TxRepo, func(tx *sqlx.Tx) error {
		order, err := s.deps.OrderRepo.GetForUpdateTx(ctx, tx, orderID)
		if err != nil {
			logger.Error("[UpdateOrderStatus] get order", zap.String("error", err.Error()))
			return errors.SetCustomError(constant.ErrInternal)
		}
		if order == nil {
			return errors.SetCustomErrorMessage(constant.ErrNotFound, "order not found")
		}

		isSeller, err := s.deps.OrderRepo.HasSellerItem(ctx, orderID, caller.UserID)
		if err != nil {
			logger.Error("[UpdateOrderStatus] check seller", zap.String("error", err.Error()))
			return errors.SetCustomError(constant.ErrInternal)
		}
		if !policy.Authorize(caller, policy.ActionUpdateOrderStatus, policy.Resource{OrderSeller: isSeller}) {
			return errors.SetCustomError(constant.ErrForbidden)
		}
		if !sellerTargets[req.Status] || !order.Status.CanTransitionTo(req.Status) {
			return errors.SetCustomErrorMessage(constant.ErrInvalidOrderStatus,
				fmt.Sprintf("cannot change order status from %s to %s", order.Status, req.Status))
		}

		update := &model.OrderStateUpdate{OrderID: orderID, Status: req.Status}
		if req.Status == constant.OrderStatusShipped && req.ShippingResi != nil && strings.TrimSpace(*req.ShippingResi) != "" {
			resi := strings.TrimSpace(*req.ShippingResi)
			update.ShippingResi = &resi
			order.ShippingResi = &resi
		}
		if err := s.deps.OrderRepo.UpdateStateTx(ctx, tx, update); err != nil {
			logger.Error("[UpdateOrderStatus] update status", zap.String("error", err.Error()))
			return errors.SetCustomError(constant.ErrInternal)
		}

		order.Status = req.Status
		order.PaymentStatus = req.Status.PaymentStatus()
		updated = order
		return nil
	})
	if err != nil {
		return nil, errors.MapInternal("[UpdateOrderStatus] tx", err)
	}
	return updated, nil
}

func (s *orderAppImpl) ConfirmOrderReceived(ctx context.Context, caller model.Caller, orderID uint64) (*model.OrderEntity, error) {
	var confirmed *model.OrderEntity
	err := txrepo.Run(ctx, s.deps.TxRepo, func(tx *sqlx.Tx) error {
		order, err := s.deps.OrderRepo.GetForUpdateTx(ctx, tx, orderID)
		if err != nil {
			logger.Error("[ConfirmOrderReceived] get order", zap.String("error", err.Error()))
			return errors.SetCustomError(constant.ErrInternal)
		}
		if order == nil || !policy.Authorize(caller, policy.ActionConfirmReceipt, policy.Resource{OwnerUserID: order.UserID}) {
			return errors.SetCustomErrorMessage(constant.ErrNotFound, "order not found")
		}
		if order.Status != constant.OrderStatusShipped {
			return errors.SetCustomErrorMessage(constant.ErrInvalidOrderStatus,
				fmt.Sprintf("order is %s, only SHIPPED orders can be confirmed", order.Status))
		}

		if _, err := s.deps.Settlement.SettleTx(ctx, tx, order); err != nil {
			return err
		}
		confirmed = order
		return nil
	})
	if err != nil {
		return nil, errors.MapInternal("[ConfirmOrderReceived] tx", err)
	}
	return confirmed, nil
}

func (s *orderAppImpl) CancelExpiredOrder(ctx context.Context, orderID uint64) error {
	err := txrepo.Run(ctx, s.deps.TxRepo, func(tx *sqlx.Tx) error {
		order, err := s.deps.OrderRepo.GetForUpdateTx(ctx, tx, orderID)
		if err != nil {
			logger.Error("[CancelExpiredOrder] get order", zap.String("error", err.Error()))
			return errors.SetCustomError(constant.ErrInternal)
		}
		if order == nil {
			return errors.SetCustomErrorMessage(constant.ErrNotFound, "order not found")
		}
		if order.Status != constant.OrderStatusPendingPayment {
			return errors.SetCustomError(constant.ErrInvalidOrderStatus)
		}
		return CancelTx(ctx, tx, s.deps.OrderRepo, s.deps.ProductRepo, order)
	})
	if err != nil {
		return errors.MapInternal("[CancelExpiredOrder] tx", err)
	}
	logger.Info("[CancelExpiredOrder] order cancelled", zap.Uint64("order_id", orderID))
	return nil
}

// CancelTx moves a locked PENDING_PAYMENT order to CANCELLED and returns its quantities to stock.
func CancelTx(ctx context.Context, tx *sqlx.Tx, orders orderrepo.OrderRepository, products productrepo.ProductRepository, order *model.OrderEntity) error {
	if !order.Status.CanTransitionTo(constant.OrderStatusCancelled) {
		return errors.SetCustomError(constant.ErrInvalidOrderStatus)
	}

	items, err := orders.GetItemsTx(ctx, tx, order.ID)
	if err != nil {
		logger.Error("[CancelTx] get items", zap.Uint64("order_id", order.ID), zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if err := inventory.Release(ctx, tx, products, inventory.DemandFromOrder(items)); err != nil {
		return err
	}

	err = orders.UpdateStateTx(ctx, tx, &model.OrderStateUpdate{OrderID: order.ID, Status: constant.OrderStatusCancelled})
	if err != nil {
		logger.Error("[CancelTx] update status", zap.Uint64("order_id", order.ID), zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	order.Status = constant.OrderStatusCancelled
	order.PaymentStatus = constant.OrderStatusCancelled.PaymentStatus()
	return nil
}

func (s *orderAppImpl) scheduleExpiration(ctx context.Context, order *model.OrderEntity) {
	if s.deps.Publisher == nil {
		return
	}
	msg := rabbitmq.OrderExpirationMessage{
		OrderID:   order.ID,
		UserID:    order.UserID,
		ExpiresAt: order.CreatedAt.Add(s.config.Order.PaymentExpiration),
	}
	if err := s.deps.Publisher.PublishOrderExpiration(ctx, msg); err != nil {
		logger.Error("[CreateOrder] publish order expiration", zap.Uint64("order_id", order.ID), zap.String("error", err.Error()))
	}
}

// paymentToken asks the gateway for a checkout token. Failures are reported as ErrPaymentTokenUnavailable.
func (s *orderAppImpl) paymentToken(ctx context.Context, order *model.OrderEntity) (string, error) {
	customer := model.PaymentCustomer{}
	user, err := s.deps.UserRepo.Get(ctx, &model.UserFilter{ID: order.UserID})
	if err != nil {
		logger.Warn("[paymentToken] get user", zap.Uint64("order_id", order.ID), zap.String("error", err.Error()))
	} else if user != nil {
		customer = model.PaymentCustomer{Name: user.Name, Email: user.Email, Phone: user.Phone}
	}

	token, err := s.deps.Gateway.CreateTransaction(ctx, &model.PaymentTransaction{
		OrderID:     order.ID,
		GrossAmount: order.TotalAmount,
		Customer:    customer,
	})
	if err != nil {
		logger.Error("[paymentToken] create transaction", zap.Uint64("order_id", order.ID), zap.String("error", err.Error()))
		return "", errors.SetCustomError(constant.ErrPaymentTokenUnavailable)
	}
	return token, nil
}

func orderItems(lines []model.CartLine) []model.OrderItemEntity {
	items := make([]model.OrderItemEntity, len(lines))
	for i, l := range lines {
		items[i] = model.OrderItemEntity{
			ProductID: l.ProductID,
			StoreID:   l.StoreID,
			Quantity:  l.Quantity,
			Price:     l.Price,
		}
	}
	return items
}

func lineIDs(lines []model.CartLine) []uint64 {
	ids := make([]uint64, len(lines))
	for i, l := range lines {
		ids[i] = l.ID
	}
	return ids
}

func formatAddress(a *model.AddressEntity) string {
	parts := make([]string, 0, 3)
	for _, p := range []string{a.FullAddress, a.City, a.PostalCode} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}
