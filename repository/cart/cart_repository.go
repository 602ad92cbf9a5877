package cart

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

type CartRepository interface {
	GetByUserID(ctx context.Context, userID uint64) (*model.CartEntity, error)
	Create(ctx context.Context, userID uint64) (*model.CartEntity, error)
	GetItemByProduct(ctx context.Context, cartID, productID uint64) (*model.CartItemEntity, error)
	GetItemByID(ctx context.Context, itemID uint64) (*model.CartItemOwned, error)
	InsertItem(ctx context.Context, item *model.CartItemEntity) (*model.CartItemEntity, error)
	UpdateItemQuantity(ctx context.Context, itemID uint64, quantity int64) error
	DeleteItem(ctx context.Context, itemID uint64) error
	ListLines(ctx context.Context, cartID uint64) ([]model.CartLine, error)
	// GetByUserForUpdateTx locks the cart row so concurrent checkouts of one cart run one after another.
	GetByUserForUpdateTx(ctx context.Context, tx *sqlx.Tx, userID uint64) (*model.CartEntity, error)
	ListLinesTx(ctx context.Context, tx *sqlx.Tx, cartID uint64) ([]model.CartLine, error)
	// DeleteItemsTx removes only the given lines; items added after they were read stay in the cart.
	DeleteItemsTx(ctx context.Context, tx *sqlx.Tx, cartID uint64, itemIDs []uint64) error
}

func NewCartRepository(conn *sqlx.DB) CartRepository {
	return &SQL{conn: conn}
}

const (
	getCartByUser          = `SELECT id, user_id, created_at FROM cart WHERE user_id = ?`
	getCartByUserForUpdate = getCartByUser + ` FOR UPDATE`
	// user_id is unique, so two concurrent first adds resolve to the same cart
	insertCart = `INSERT INTO cart (user_id, created_at) VALUES (?, NOW()) ON DUPLICATE KEY UPDATE id = LAST_INSERT_ID(id)`

	getItemByProduct = `SELECT id, cart_id, product_id, quantity FROM cart_item WHERE cart_id = ? AND product_id = ? ORDER BY id LIMIT 1`
	getItemByID      = `SELECT ci.id, ci.cart_id, ci.product_id, ci.quantity, c.user_id
FROM cart_item ci
JOIN cart c ON ci.cart_id = c.id
WHERE ci.id = ?`
	insertItem         = `INSERT INTO cart_item (cart_id, product_id, quantity) VALUES (?, ?, ?)`
	updateItemQuantity = `UPDATE cart_item SET quantity = ? WHERE id = ?`
	deleteItem         = `DELETE FROM cart_item WHERE id = ?`
	listLines          = `SELECT ci.id, ci.product_id, ci.quantity, p.name AS product_name, p.store_id, p.price
FROM cart_item ci
JOIN product p ON ci.product_id = p.id
WHERE ci.cart_id = ?
ORDER BY ci.id`
	deleteItems = `DELETE FROM cart_item WHERE cart_id = ? AND id IN (?)`
)

func (s *SQL) GetByUserID(ctx context.Context, userID uint64) (*model.CartEntity, error) {
	var cart model.CartEntity
	if err := s.conn.GetContext(ctx, &cart, getCartByUser, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &cart, nil
}

func (s *SQL) Create(ctx context.Context, userID uint64) (*model.CartEntity, error) {
	res, err := s.conn.ExecContext(ctx, insertCart, userID)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return &model.CartEntity{ID: uint64(id), UserID: userID}, nil
}

func (s *SQL) GetItemByProduct(ctx context.Context, cartID, productID uint64) (*model.CartItemEntity, error) {
	var item model.CartItemEntity
	if err := s.conn.GetContext(ctx, &item, getItemByProduct, cartID, productID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (s *SQL) GetItemByID(ctx context.Context, itemID uint64) (*model.CartItemOwned, error) {
	var item model.CartItemOwned
	if err := s.conn.GetContext(ctx, &item, getItemByID, itemID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (s *SQL) InsertItem(ctx context.Context, item *model.CartItemEntity) (*model.CartItemEntity, error) {
	res, err := s.conn.ExecContext(ctx, insertItem, item.CartID, item.ProductID, item.Quantity)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	item.ID = uint64(id)
	return item, nil
}

func (s *SQL) UpdateItemQuantity(ctx context.Context, itemID uint64, quantity int64) error {
	_, err := s.conn.ExecContext(ctx, updateItemQuantity, quantity, itemID)
	return err
}

func (s *SQL) DeleteItem(ctx context.Context, itemID uint64) error {
	_, err := s.conn.ExecContext(ctx, deleteItem, itemID)
	return err
}

func (s *SQL) ListLines(ctx context.Context, cartID uint64) ([]model.CartLine, error) {
	lines := make([]model.CartLine, 0)
	if err := s.conn.SelectContext(ctx, &lines, listLines, cartID); err != nil {
		return nil, err
	}
	return lines, nil
}

func (s *SQL) GetByUserForUpdateTx(ctx context.Context, tx *sqlx.Tx, userID uint64) (*model.CartEntity, error) {
	var cart model.CartEntity
	if err := tx.GetContext(ctx, &cart, getCartByUserForUpdate, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &cart, nil
}

func (s *SQL) ListLinesTx(ctx context.Context, tx *sqlx.Tx, cartID uint64) ([]model.CartLine, error) {
	lines := make([]model.CartLine, 0)
	if err := tx.SelectContext(ctx, &lines, listLines, cartID); err != nil {
		return nil, err
	}
	return lines, nil
}

func (s *SQL) DeleteItemsTx(ctx context.Context, tx *sqlx.Tx, cartID uint64, itemIDs []uint64) error {
	if len(itemIDs) == 0 {
		return nil
	}
	query, args, err := sqlx.In(deleteItems, cartID, itemIDs)
	if err != nil {
		return err
	}
	_, err = tx.ExecContext(ctx, tx.Rebind(query), args...)
	return err
}
