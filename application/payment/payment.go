package payment

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	apporder "github.com/muhammadheryan/marketplace/application/order"
	"github.com/muhammadheryan/marketplace/cmd/config"
	"github.com/muhammadheryan/marketplace/constant"
	"github.com/muhammadheryan/marketplace/model"
	orderrepo "github.com/muhammadheryan/marketplace/repository/order"
	productrepo "github.com/muhammadheryan/marketplace/repository/product"
	redisrepo "github.com/muhammadheryan/marketplace/repository/redis"
	txrepo "github.com/muhammadheryan/marketplace/repository/tx"
	"github.com/muhammadheryan/marketplace/thirdparty/midtrans"
	"github.com/muhammadheryan/marketplace/utils/errors"
	"github.com/muhammadheryan/marketplace/utils/logger"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const webhookAck = "OK"

type PaymentApp interface {
	HandleWebhook(ctx context.Context, n *model.WebhookNotification) (*model.WebhookResponse, error)
}

type paymentAppImpl struct {
	config      *config.Config
	txRepo      txrepo.TxRepository
	orderRepo   orderrepo.OrderRepository
	productRepo productrepo.ProductRepository
	redisRepo   redisrepo.Repository
	gateway     midtrans.Client
	now         func() time.Time
}

func NewPaymentApp(
	config *config.Config,
	txRepo txrepo.TxRepository,
	orderRepo orderrepo.OrderRepository,
	productRepo productrepo.ProductRepository,
	redisRepo redisrepo.Repository,
	gateway midtrans.Client,
) PaymentApp {
	return &paymentAppImpl{
		config:      config,
		txRepo:      txRepo,
		orderRepo:   orderRepo,
		productRepo: productRepo,
		redisRepo:   redisRepo,
		gateway:     gateway,
		now:         time.Now,
	}
}

// MapTransactionStatus converts the gateway transaction and fraud status into the order status they imply.
func MapTransactionStatus(transactionStatus, fraudStatus string) constant.OrderStatus {
	switch transactionStatus {
	case constant.TransactionStatusCapture:
		if fraudStatus == constant.FraudStatusAccept {
			return constant.OrderStatusProcessing
		}
		return constant.OrderStatusPendingPayment
	case constant.TransactionStatusSettlement:
		return constant.OrderStatusProcessing
	case constant.TransactionStatusCancel, constant.TransactionStatusDeny, constant.TransactionStatusExpire:
		return constant.OrderStatusCancelled
	default:
		return constant.OrderStatusPendingPayment
	}
}

func dedupeKey(n *model.WebhookNotification) string {
	return strings.Join([]string{n.OrderID, n.TransactionStatus, n.FraudStatus, n.StatusCode}, ":")
}

func (s *paymentAppImpl) HandleWebhook(ctx context.Context, n *model.WebhookNotification) (*model.WebhookResponse, error) {
	if !s.gateway.VerifySignature(n) {
		logger.WithContext(ctx).Warn("[HandleWebhook] invalid signature",
			zap.String("order_id", n.OrderID), zap.String("transaction_status", n.TransactionStatus), zap.String("transaction_id", n.TransactionID))
		return nil, errors.SetCustomError(constant.ErrInvalidSignature)
	}

	orderID, err := midtrans.ParseGatewayOrderID(n.OrderID)
	if err != nil {
		return nil, errors.SetCustomErrorMessage(constant.ErrInvalidRequest, "invalid order_id")
	}
	gross, err := decimal.NewFromString(n.GrossAmount)
	if err != nil {
		return nil, errors.SetCustomErrorMessage(constant.ErrInvalidRequest, "invalid gross_amount")
	}

	key := dedupeKey(n)
	processed, err := s.redisRepo.IsWebhookProcessed(ctx, key)
	if err != nil {
		// the row lock and status guard still make a replay harmless
		logger.Warn("[HandleWebhook] dedupe lookup failed", zap.Uint64("order_id", orderID), zap.String("error", err.Error()))
	}
	if processed {
		logger.Info("[HandleWebhook] duplicate notification", zap.Uint64("order_id", orderID), zap.String("transaction_status", n.TransactionStatus))
		return &model.WebhookResponse{Status: webhookAck}, nil
	}

	target := MapTransactionStatus(n.TransactionStatus, n.FraudStatus)

	err = txrepo.Run(ctx, s.txRepo, func(tx *sqlx.Tx) error {
		order, err := s.orderRepo.GetForUpdateTx(ctx, tx, orderID)
		if err != nil {
			logger.Error("[HandleWebhook] get order", zap.Uint64("order_id", orderID), zap.String("error", err.Error()))
			return errors.SetCustomError(constant.ErrInternal)
		}
		if order == nil {
			return errors.SetCustomErrorMessage(constant.ErrNotFound, "order not found")
		}
		if !gross.Equal(order.TotalAmount.Ceil()) {
			logger.Warn("[HandleWebhook] gross amount mismatch", zap.Uint64("order_id", orderID),
				zap.String("gross_amount", n.GrossAmount), zap.String("total_amount", order.TotalAmount.String()))
			return errors.SetCustomErrorMessage(constant.ErrInvalidRequest, "gross_amount does not match order total")
		}

		if order.Status == target {
			return nil
		}
		if !order.Status.CanTransitionTo(target) {
			if order.Status == constant.OrderStatusCancelled && target.PaymentStatus() == constant.PaymentStatusPaid {
				// money was captured for an order whose stock is already released
				logger.WithContext(ctx).Error("[HandleWebhook] payment settled for cancelled order, refund required",
					zap.Uint64("order_id", orderID), zap.String("transaction_id", n.TransactionID),
					zap.String("transaction_status", n.TransactionStatus), zap.String("gross_amount", n.GrossAmount))
				return nil
			}
			logger.Info("[HandleWebhook] ignoring out of order notification", zap.Uint64("order_id", orderID),
				zap.String("current", string(order.Status)), zap.String("target", string(target)))
			return nil
		}

		if target == constant.OrderStatusCancelled {
			return apporder.CancelTx(ctx, tx, s.orderRepo, s.productRepo, order)
		}

		update := &model.OrderStateUpdate{OrderID: orderID, Status: target}
		if target.PaymentStatus() == constant.PaymentStatusPaid {
			paidAt := s.now()
			update.PaidAt = &paidAt
		}
		if err := s.orderRepo.UpdateStateTx(ctx, tx, update); err != nil {
			logger.Error("[HandleWebhook] update order", zap.Uint64("order_id", orderID), zap.String("error", err.Error()))
			return errors.SetCustomError(constant.ErrInternal)
		}
		logger.WithContext(ctx).Info("[HandleWebhook] order updated", zap.Uint64("order_id", orderID), zap.String("status", string(target)))
		return nil
	})
	if err != nil {
		return nil, errors.MapInternal(fmt.Sprintf("[HandleWebhook] order %d", orderID), err)
	}

	if _, err := s.redisRepo.MarkWebhookProcessed(ctx, key, s.config.Payment.WebhookDedupeTTL); err != nil {
		logger.Warn("[HandleWebhook] mark processed failed", zap.Uint64("order_id", orderID), zap.String("error", err.Error()))
	}
	return &model.WebhookResponse{Status: webhookAck}, nil
}
