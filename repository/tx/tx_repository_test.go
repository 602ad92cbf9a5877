package tx

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	errFn := errors.New("insufficient stock")
	errDB := errors.New("connection refused")

	tests := []struct {
		name     string
		mockCall func(mock sqlmock.Sqlmock)
		fn       func(tx *sqlx.Tx) error
		wantErr  error
		wantRan  bool
	}{
		{
			name: "commit on success",
			mockCall: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("UPDATE product").WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
			fn: func(tx *sqlx.Tx) error {
				_, err := tx.Exec("UPDATE product SET stock = stock - 1 WHERE id = 1")
				return err
			},
			wantRan: true,
		},
		{
			name: "rollback keeps the fn error",
			mockCall: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectRollback()
			},
			fn:      func(tx *sqlx.Tx) error { return errFn },
			wantErr: errFn,
			wantRan: true,
		},
		{
			name: "begin failure skips fn",
			mockCall: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin().WillReturnError(errDB)
			},
			fn:      func(tx *sqlx.Tx) error { return nil },
			wantErr: errDB,
		},
		{
			name: "commit failure",
			mockCall: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectCommit().WillReturnError(errDB)
			},
			fn:      func(tx *sqlx.Tx) error { return nil },
			wantErr: errDB,
			wantRan: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()
			tt.mockCall(mock)

			ran := false
			err = Run(context.Background(), NewTxRepository(sqlx.NewDb(db, "mysql")), func(tx *sqlx.Tx) error {
				ran = true
				return tt.fn(tx)
			})

			assert.Equal(t, tt.wantRan, ran)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
