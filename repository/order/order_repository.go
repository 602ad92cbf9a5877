package order

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/marketplace/model"
)

type SQL struct {
	conn *sqlx.DB
}

type OrderRepository interface {
	InsertOrderTx(ctx context.Context, tx *sqlx.Tx, order *model.OrderEntity) (uint64, error)
	InsertOrderItemsTx(ctx context.Context, tx *sqlx.Tx, orderID uint64, items []model.OrderItemEntity) error
	GetByID(ctx context.Context, orderID uint64) (*model.OrderEntity, error)
	GetForUpdateTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) (*model.OrderEntity, error)
	GetItems(ctx context.Context, orderID uint64) ([]model.OrderItemEntity, error)
	GetItemsTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) ([]model.OrderItemEntity, error)
	HasSellerItem(ctx context.Context, orderID, sellerUserID uint64) (bool, error)
	UpdateStateTx(ctx context.Context, tx *sqlx.Tx, req *model.OrderStateUpdate) error
}

func NewOrderRepository(conn *sqlx.DB) OrderRepository {
	return &SQL{conn: conn}
}

const (
	orderColumns = `id, user_id, address_id, recipient_name, recipient_phone, shipping_address, subtotal, shipping_fee, service_fee, total_amount,
status, payment_status, payment_method, logistics_option, shipping_resi, paid_at, created_at`

	insertOrder = `INSERT INTO orders (user_id, address_id, recipient_name, recipient_phone, shipping_address, subtotal, shipping_fee, service_fee, total_amount,
status, payment_status, payment_method, logistics_option, created_at)
VALUES (:user_id, :address_id, :recipient_name, :recipient_phone, :shipping_address, :subtotal, :shipping_fee, :service_fee, :total_amount,
:status, :payment_status, :payment_method, :logistics_option, NOW())`

	insertOrderItems = `INSERT INTO order_item (order_id, product_id, store_id, quantity, price)
VALUES (:order_id, :product_id, :store_id, :quantity, :price)`

	getOrder          = `SELECT ` + orderColumns + ` FROM orders WHERE id = ?`
	getOrderForUpdate = getOrder + ` FOR UPDATE`
	getOrderItems     = `SELECT id, order_id, product_id, store_id, quantity, price FROM order_item WHERE order_id = ? ORDER BY id`

	hasSellerItem = `SELECT EXISTS(
SELECT 1 FROM order_item oi JOIN store s ON oi.store_id = s.id WHERE oi.order_id = ? AND s.owner_user_id = ?)`

	// shipping_resi and paid_at are only overwritten when a value is supplied
	updateState = `UPDATE orders SET status = ?, payment_status = ?,
shipping_resi = COALESCE(?, shipping_resi), paid_at = COALESCE(?, paid_at)
WHERE id = ?`
)

func (r *SQL) InsertOrderTx(ctx context.Context, tx *sqlx.Tx, order *model.OrderEntity) (uint64, error) {
	res, err := tx.NamedExecContext(ctx, insertOrder, order)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (r *SQL) InsertOrderItemsTx(ctx context.Context, tx *sqlx.Tx, orderID uint64, items []model.OrderItemEntity) error {
	if len(items) == 0 {
		return nil
	}
	rows := make([]model.OrderItemEntity, len(items))
	for i, it := range items {
		it.OrderID = orderID
		rows[i] = it
	}
	_, err := tx.NamedExecContext(ctx, insertOrderItems, rows)
	return err
}

func (r *SQL) GetByID(ctx context.Context, orderID uint64) (*model.OrderEntity, error) {
	var order model.OrderEntity
	if err := r.conn.GetContext(ctx, &order, getOrder, orderID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

func (r *SQL) GetForUpdateTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) (*model.OrderEntity, error) {
	var order model.OrderEntity
	if err := tx.GetContext(ctx, &order, getOrderForUpdate, orderID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

func (r *SQL) GetItems(ctx context.Context, orderID uint64) ([]model.OrderItemEntity, error) {
	items := make([]model.OrderItemEntity, 0)
	if err := r.conn.SelectContext(ctx, &items, getOrderItems, orderID); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *SQL) GetItemsTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) ([]model.OrderItemEntity, error) {
	items := make([]model.OrderItemEntity, 0)
	if err := tx.SelectContext(ctx, &items, getOrderItems, orderID); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *SQL) HasSellerItem(ctx context.Context, orderID, sellerUserID uint64) (bool, error) {
	var exists bool
	if err := r.conn.GetContext(ctx, &exists, hasSellerItem, orderID, sellerUserID); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *SQL) UpdateStateTx(ctx context.Context, tx *sqlx.Tx, req *model.OrderStateUpdate) error {
	_, err := tx.ExecContext(ctx, updateState, req.Status, req.Status.PaymentStatus(), req.ShippingResi, req.PaidAt, req.OrderID)
	return err
}
