package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/marketplace/model"
	"github.com/shopspring/decimal"
)

type SQL struct {
	conn *sqlx.DB
}

type StoreRepository interface {
	GetByOwner(ctx context.Context, ownerUserID uint64) (*model.StoreEntity, error)
	GetForUpdateTx(ctx context.Context, tx *sqlx.Tx, storeID uint64) (*model.StoreEntity, error)
	IncrementBalanceTx(ctx context.Context, tx *sqlx.Tx, storeID uint64, amount decimal.Decimal) error
	DecrementBalanceTx(ctx context.Context, tx *sqlx.Tx, storeID uint64, amount decimal.Decimal) (bool, error)
}

func NewStoreRepository(conn *sqlx.DB) StoreRepository {
	return &SQL{conn: conn}
}

const (
	getStoreByOwner   = `SELECT id, owner_user_id, name, status, balance FROM store WHERE owner_user_id = ?`
	getStoreForUpdate = `SELECT id, owner_user_id, name, status, balance FROM store WHERE id = ? FOR UPDATE`
	incrementBalance  = `UPDATE store SET balance = balance + ? WHERE id = ?`
	decrementBalance  = `UPDATE store SET balance = balance - ? WHERE id = ? AND balance >= ?`
)

func (s *SQL) GetByOwner(ctx context.Context, ownerUserID uint64) (*model.StoreEntity, error) {
	var store model.StoreEntity
	if err := s.conn.GetContext(ctx, &store, getStoreByOwner, ownerUserID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &store, nil
}

func (s *SQL) GetForUpdateTx(ctx context.Context, tx *sqlx.Tx, storeID uint64) (*model.StoreEntity, error) {
	var store model.StoreEntity
	if err := tx.GetContext(ctx, &store, getStoreForUpdate, storeID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &store, nil
}

func (s *SQL) IncrementBalanceTx(ctx context.Context, tx *sqlx.Tx, storeID uint64, amount decimal.Decimal) error {
	res, err := tx.ExecContext(ctx, incrementBalance, amount, storeID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected != 1 {
		return fmt.Errorf("store %d: %w", storeID, sql.ErrNoRows)
	}
	return nil
}

// DecrementBalanceTx returns false when the balance is lower than amount; nothing is written in that case.
func (s *SQL) DecrementBalanceTx(ctx context.Context, tx *sqlx.Tx, storeID uint64, amount decimal.Decimal) (bool, error) {
	res, err := tx.ExecContext(ctx, decrementBalance, amount, storeID, amount)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected == 1, nil
}
