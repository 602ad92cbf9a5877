package user

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/marketplace/model"
)

type SQL struct {
	conn *sqlx.DB
}

type UserRepository interface {
	Create(ctx context.Context, req *model.UserEntity) (*model.UserEntity, error)
	Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error)
	// CredentialTaken reports whether any account already uses the email or the phone.
	CredentialTaken(ctx context.Context, email, phone string) (bool, error)
}

func NewUserRepository(conn *sqlx.DB) UserRepository {
	return &SQL{conn: conn}
}

const (
	userColumns     = `id, name, email, phone, role, password_hash, created_at, updated_at`
	insertUserQuery = `INSERT INTO user (name, email, phone, role, password_hash, created_at) VALUES (?, ?, ?, ?, ?, NOW())`
	credentialTaken = `SELECT EXISTS(SELECT 1 FROM user WHERE email = ? OR phone = ?)`
)

func (s *SQL) Create(ctx context.Context, data *model.UserEntity) (*model.UserEntity, error) {
	result, err := s.conn.ExecContext(ctx, insertUserQuery, data.Name, data.Email, data.Phone, data.Role, data.PasswordHash)
	if err != nil {
		return nil, err
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	data.ID = uint64(lastID)
	return data, nil
}

// getQuery builds the lookup for the non-empty filter fields, joined with AND.
func getQuery(filter *model.UserFilter) (string, []any) {
	conds := make([]string, 0, 3)
	args := make([]any, 0, 3)

	if filter.ID != 0 {
		conds = append(conds, "id = ?")
		args = append(args, filter.ID)
	}
	if filter.Email != "" {
		conds = append(conds, "email = ?")
		args = append(args, filter.Email)
	}
	if filter.Phone != "" {
		conds = append(conds, "phone = ?")
		args = append(args, filter.Phone)
	}

	query := `SELECT ` + userColumns + ` FROM user`
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}
	return query + ` LIMIT 1`, args
}

func (s *SQL) Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error) {
	if filter == nil || *filter == (model.UserFilter{}) {
		return nil, errors.New("user filter is empty")
	}

	query, args := getQuery(filter)

	var entity model.UserEntity
	if err := s.conn.GetContext(ctx, &entity, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) CredentialTaken(ctx context.Context, email, phone string) (bool, error) {
	var taken bool
	if err := s.conn.GetContext(ctx, &taken, credentialTaken, email, phone); err != nil {
		return false, err
	}
	return taken, nil
}
