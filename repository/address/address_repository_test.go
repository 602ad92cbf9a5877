package address

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewAddressRepository(sqlx.NewDb(db, "mysql"))
	cols := []string{"id", "user_id", "recipient_name", "phone", "full_address", "city", "postal_code"}

	mock.ExpectQuery(regexp.QuoteMeta(getAddressByID)).WithArgs(2).
		WillReturnRows(sqlmock.NewRows(cols).AddRow(2, 1, "Ana", "0812", "Jl. Mawar 1", "Bandung", "40111"))
	mock.ExpectQuery(regexp.QuoteMeta(getAddressByID)).WithArgs(3).
		WillReturnRows(sqlmock.NewRows(cols))

	addr, err := repo.GetByID(context.Background(), 2)
	require.NoError(t, err)
	require.NotNil(t, addr)
	assert.Equal(t, uint64(1), addr.UserID)
	assert.Equal(t, "Bandung", addr.City)

	addr, err = repo.GetByID(context.Background(), 3)
	require.NoError(t, err)
	assert.Nil(t, addr)

	assert.NoError(t, mock.ExpectationsWereMet())
}
