package address

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

type AddressRepository interface {
	GetByID(ctx context.Context, id uint64) (*model.AddressEntity, error)
}

func NewAddressRepository(conn *sqlx.DB) AddressRepository {
	return &SQL{conn: conn}
}

const getAddressByID = `SELECT id, user_id, recipient_name, phone, full_address, city, postal_code FROM address WHERE id = ?`

func (s *SQL) GetByID(ctx context.Context, id uint64) (*model.AddressEntity, error) {
	var addr model.AddressEntity
	if err := s.conn.GetContext(ctx, &addr, getAddressByID, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &addr, nil
}
