package product

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/marketplace/constant"
	"github.com/muhammadheryan/marketplace/model"
)

type SQL struct {
	conn *sqlx.DB
}

type ProductRepository interface {
	List(ctx context.Context, filter model.ProductFilter) ([]model.ProductListItem, int64, error)
	GetByID(ctx context.Context, id uint64) (*model.ProductDetail, error)
	GetStocksForUpdateTx(ctx context.Context, tx *sqlx.Tx, ids []uint64) ([]model.ProductStock, error)
	DecrementStockTx(ctx context.Context, tx *sqlx.Tx, id uint64, quantity int64) (bool, error)
	IncrementStockTx(ctx context.Context, tx *sqlx.Tx, id uint64, quantity int64) error
}

func NewProductRepository(conn *sqlx.DB) ProductRepository {
	return &SQL{conn: conn}
}

const (
	listProductsSelect  = `SELECT p.id, p.name, p.price, p.stock, s.name AS store_name`
	countProductsSelect = `SELECT COUNT(*)`
	catalogueFrom       = ` FROM product p JOIN store s ON p.store_id = s.id WHERE p.is_active = TRUE AND s.status = ?`

	getProductDetail = `SELECT p.id, p.name, p.description, p.price, p.stock, p.is_active, s.id AS store_id, s.name AS store_name, s.status AS store_status
FROM product p
JOIN store s ON p.store_id = s.id
WHERE p.id = ?`

	// product rows are locked in id order so concurrent checkouts acquire locks in the same sequence;
	// the store row is read but not locked
	getStocksForUpdate = `SELECT p.id, p.name, p.stock, p.is_active, s.status AS store_status
FROM product p
JOIN store s ON p.store_id = s.id
WHERE p.id IN (?)
ORDER BY p.id
FOR UPDATE OF p`

	decrementStock = `UPDATE product SET stock = stock - ? WHERE id = ? AND stock >= ?`
	incrementStock = `UPDATE product SET stock = stock + ? WHERE id = ?`
)

// catalogueWhere returns the shared FROM/WHERE clause for list and count.
func catalogueWhere(filter model.ProductFilter) (string, []any) {
	clause := catalogueFrom
	args := []any{constant.StoreStatusApproved}

	if filter.StoreID != 0 {
		clause += ` AND p.store_id = ?`
		args = append(args, filter.StoreID)
	}
	if q := strings.TrimSpace(filter.Query); q != "" {
		clause += ` AND p.name LIKE ?`
		args = append(args, "%"+q+"%")
	}
	return clause, args
}

func (s *SQL) List(ctx context.Context, filter model.ProductFilter) ([]model.ProductListItem, int64, error) {
	where, args := catalogueWhere(filter)
	offset := (filter.Page - 1) * filter.PerPage

	query := listProductsSelect + where + ` ORDER BY p.id LIMIT ? OFFSET ?`
	items := make([]model.ProductListItem, 0, filter.PerPage)
	if err := s.conn.SelectContext(ctx, &items, query, append(args, filter.PerPage, offset)...); err != nil {
		return nil, 0, err
	}

	var total int64
	if err := s.conn.GetContext(ctx, &total, countProductsSelect+where, args...); err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

func (s *SQL) GetByID(ctx context.Context, id uint64) (*model.ProductDetail, error) {
	var detail model.ProductDetail
	if err := s.conn.QueryRowxContext(ctx, getProductDetail, id).StructScan(&detail); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &detail, nil
}

func (s *SQL) GetStocksForUpdateTx(ctx context.Context, tx *sqlx.Tx, ids []uint64) ([]model.ProductStock, error) {
	if len(ids) == 0 {
		return []model.ProductStock{}, nil
	}
	query, args, err := sqlx.In(getStocksForUpdate, ids)
	if err != nil {
		return nil, err
	}

	stocks := make([]model.ProductStock, 0, len(ids))
	if err := tx.SelectContext(ctx, &stocks, tx.Rebind(query), args...); err != nil {
		return nil, err
	}
	return stocks, nil
}

// DecrementStockTx returns false when the row holds less than quantity; nothing is written in that case.
func (s *SQL) DecrementStockTx(ctx context.Context, tx *sqlx.Tx, id uint64, quantity int64) (bool, error) {
	res, err := tx.ExecContext(ctx, decrementStock, quantity, id, quantity)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected == 1, nil
}

func (s *SQL) IncrementStockTx(ctx context.Context, tx *sqlx.Tx, id uint64, quantity int64) error {
	_, err := tx.ExecContext(ctx, incrementStock, quantity, id)
	return err
}
