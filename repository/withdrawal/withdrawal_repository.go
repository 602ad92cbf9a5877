package withdrawal

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/marketplace/constant"
	"github.com/muhammadheryan/marketplace/model"
)

type SQL struct {
	conn *sqlx.DB
}

type WithdrawalRepository interface {
	InsertTx(ctx context.Context, tx *sqlx.Tx, w *model.WithdrawalEntity) (uint64, error)
	GetForUpdateTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.WithdrawalEntity, error)
	UpdateStatusTx(ctx context.Context, tx *sqlx.Tx, id uint64, status constant.WithdrawalStatus, note string) error
	ListByStore(ctx context.Context, storeID uint64) ([]model.WithdrawalEntity, error)
}

func NewWithdrawalRepository(conn *sqlx.DB) WithdrawalRepository {
	return &SQL{conn: conn}
}

const (
	insertWithdrawal = `INSERT INTO withdrawal (store_id, amount, bank_name, bank_account, bank_user, status, note, created_at)
VALUES (:store_id, :amount, :bank_name, :bank_account, :bank_user, :status, :note, NOW())`
	withdrawalColumns    = `id, store_id, amount, bank_name, bank_account, bank_user, status, note, created_at, reviewed_at`
	getWithdrawalForLock = `SELECT ` + withdrawalColumns + ` FROM withdrawal WHERE id = ? FOR UPDATE`
	updateWithdrawal     = `UPDATE withdrawal SET status = ?, note = ?, reviewed_at = NOW() WHERE id = ?`
	listByStore          = `SELECT ` + withdrawalColumns + ` FROM withdrawal WHERE store_id = ? ORDER BY id DESC`
)

func (r *SQL) InsertTx(ctx context.Context, tx *sqlx.Tx, w *model.WithdrawalEntity) (uint64, error) {
	res, err := tx.NamedExecContext(ctx, insertWithdrawal, w)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (r *SQL) GetForUpdateTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.WithdrawalEntity, error) {
	var w model.WithdrawalEntity
	if err := tx.GetContext(ctx, &w, getWithdrawalForLock, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &w, nil
}

func (r *SQL) UpdateStatusTx(ctx context.Context, tx *sqlx.Tx, id uint64, status constant.WithdrawalStatus, note string) error {
	_, err := tx.ExecContext(ctx, updateWithdrawal, status, note, id)
	return err
}

func (r *SQL) ListByStore(ctx context.Context, storeID uint64) ([]model.WithdrawalEntity, error) {
	list := make([]model.WithdrawalEntity, 0)
	if err := r.conn.SelectContext(ctx, &list, listByStore, storeID); err != nil {
		return nil, err
	}
	return list, nil
}
