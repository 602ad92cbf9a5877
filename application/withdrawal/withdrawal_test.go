package withdrawal_test

import (
	"context"
	"testing"

	"github.com/jmoiron/sqlx"
	appwithdrawal "github.com/muhammadheryan/marketplace/application/withdrawal"
	"github.com/muhammadheryan/marketplace/cmd/config"
	"github.com/muhammadheryan/marketplace/constant"
	storemocks "github.com/muhammadheryan/marketplace/mocks/repository/store"
	txmocks "github.com/muhammadheryan/marketplace/mocks/repository/tx"
	withdrawalmocks "github.com/muhammadheryan/marketplace/mocks/repository/withdrawal"
	"github.com/muhammadheryan/marketplace/model"
	cerr "github.com/muhammadheryan/marketplace/utils/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type fields struct {
	txRepo         *txmocks.TxRepository
	storeRepo      *storemocks.StoreRepository
	withdrawalRepo *withdrawalmocks.WithdrawalRepository
}

func newFields(t *testing.T) fields {
	return fields{
		txRepo:         txmocks.NewTxRepository(t),
		storeRepo:      storemocks.NewStoreRepository(t),
		withdrawalRepo: withdrawalmocks.NewWithdrawalRepository(t),
	}
}

func newApp(f fields) appwithdrawal.WithdrawalApp {
	cfg := &config.Config{Withdrawal: config.WithdrawalConfig{MinAmount: decimal.NewFromInt(10000)}}
	return appwithdrawal.NewWithdrawalApp(cfg, f.txRepo, f.storeRepo, f.withdrawalRepo)
}

func decEq(v int64) interface{} {
	return mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(decimal.NewFromInt(v)) })
}

var (
	seller = model.Caller{UserID: 7, Role: constant.RoleSeller}
	admin  = model.Caller{UserID: 9, Role: constant.RoleAdmin}
)

func sellerStore(balance int64) *model.StoreEntity {
	return &model.StoreEntity{ID: 2, OwnerUserID: 7, Name: "Toko Kopi", Status: constant.StoreStatusApproved, Balance: decimal.NewFromInt(balance)}
}

func TestWithdrawalApp_RequestWithdrawal(t *testing.T) {
	req := func(amount int64) *model.WithdrawalRequest {
		return &model.WithdrawalRequest{Amount: decimal.NewFromInt(amount), BankName: "BCA", BankAccount: "123", BankUser: "Sari"}
	}

	tests := []struct {
		name     string
		caller   model.Caller
		req      *model.WithdrawalRequest
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name:   "success: balance is held and a pending row inserted",
			caller: seller,
			req:    req(20000),
			mockCall: func(f fields) {
				f.storeRepo.On("GetByOwner", mock.Anything, uint64(7)).Return(sellerStore(50000), nil).Once()
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
				f.storeRepo.On("GetForUpdateTx", mock.Anything, tx, uint64(2)).Return(sellerStore(50000), nil).Once()
				f.storeRepo.On("DecrementBalanceTx", mock.Anything, tx, uint64(2), decEq(20000)).Return(true, nil).Once()
				f.withdrawalRepo.On("InsertTx", mock.Anything, tx, mock.MatchedBy(func(w *model.WithdrawalEntity) bool {
					return w.StoreID == 2 && w.Status == constant.WithdrawalStatusPending && w.BankName == "BCA"
				})).Return(uint64(11), nil).Once()
			},
		},
		{
			name:   "error: below minimum leaves balance untouched",
			caller: seller,
			req:    req(5000),
			mockCall: func(f fields) {
				f.storeRepo.On("GetByOwner", mock.Anything, uint64(7)).Return(sellerStore(50000), nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrBelowMinimumWithdrawal,
		},
		{
			name:   "error: more than the balance",
			caller: seller,
			req:    req(60000),
			mockCall: func(f fields) {
				f.storeRepo.On("GetByOwner", mock.Anything, uint64(7)).Return(sellerStore(50000), nil).Once()
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
				f.storeRepo.On("GetForUpdateTx", mock.Anything, tx, uint64(2)).Return(sellerStore(50000), nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInsufficientBalance,
		},
		{
			name:   "error: conditional decrement lost a race",
			caller: seller,
			req:    req(20000),
			mockCall: func(f fields) {
				f.storeRepo.On("GetByOwner", mock.Anything, uint64(7)).Return(sellerStore(50000), nil).Once()
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
				f.storeRepo.On("GetForUpdateTx", mock.Anything, tx, uint64(2)).Return(sellerStore(50000), nil).Once()
				f.storeRepo.On("DecrementBalanceTx", mock.Anything, tx, uint64(2), decEq(20000)).Return(false, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInsufficientBalance,
		},
		{
			name:     "error: buyers have no store",
			caller:   model.Caller{UserID: 1, Role: constant.RoleBuyer},
			req:      req(20000),
			mockCall: func(f fields) {},
			wantErr:  true,
			errCode:  constant.ErrForbidden,
		},
		{
			name:   "error: seller without a store",
			caller: seller,
			req:    req(20000),
			mockCall: func(f fields) {
				f.storeRepo.On("GetByOwner", mock.Anything, uint64(7)).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			tt.mockCall(f)

			got, err := newApp(f).RequestWithdrawal(context.Background(), tt.caller, tt.req)
			if tt.wantErr {
				assert.Equal(t, tt.errCode, cerr.TypeOf(err))
				assert.Nil(t, got)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, uint64(11), got.ID)
			assert.Equal(t, constant.WithdrawalStatusPending, got.Status)
		})
	}
}

func TestWithdrawalApp_ListWithdrawals(t *testing.T) {
	f := newFields(t)
	f.storeRepo.On("GetByOwner", mock.Anything, uint64(7)).Return(sellerStore(30000), nil).Once()
	f.withdrawalRepo.On("ListByStore", mock.Anything, uint64(2)).Return([]model.WithdrawalEntity{
		{ID: 11, StoreID: 2, Amount: decimal.NewFromInt(20000), Status: constant.WithdrawalStatusPending},
	}, nil).Once()

	got, err := newApp(f).ListWithdrawals(context.Background(), seller)

	assert.NoError(t, err)
	assert.Equal(t, uint64(2), got.StoreID)
	assert.True(t, got.Balance.Equal(decimal.NewFromInt(30000)))
	assert.Len(t, got.Withdrawals, 1)
}

func TestWithdrawalApp_Review(t *testing.T) {
	pending := func() *model.WithdrawalEntity {
		return &model.WithdrawalEntity{ID: 11, StoreID: 2, Amount: decimal.NewFromInt(20000), Status: constant.WithdrawalStatusPending}
	}

	t.Run("success: approve keeps the balance debited", func(t *testing.T) {
		f := newFields(t)
		tx := &sqlx.Tx{}
		f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
		f.txRepo.On("CommitTx", tx).Return(nil).Once()
		f.withdrawalRepo.On("GetForUpdateTx", mock.Anything, tx, uint64(11)).Return(pending(), nil).Once()
		f.withdrawalRepo.On("UpdateStatusTx", mock.Anything, tx, uint64(11), constant.WithdrawalStatusApproved, "").Return(nil).Once()

		got, err := newApp(f).ApproveWithdrawal(context.Background(), admin, 11)

		assert.NoError(t, err)
		assert.Equal(t, constant.WithdrawalStatusApproved, got.Status)
		assert.NotNil(t, got.ReviewedAt)
	})

	t.Run("success: reject refunds the store", func(t *testing.T) {
		f := newFields(t)
		tx := &sqlx.Tx{}
		f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
		f.txRepo.On("CommitTx", tx).Return(nil).Once()
		f.withdrawalRepo.On("GetForUpdateTx", mock.Anything, tx, uint64(11)).Return(pending(), nil).Once()
		f.storeRepo.On("IncrementBalanceTx", mock.Anything, tx, uint64(2), decEq(20000)).Return(nil).Once()
		f.withdrawalRepo.On("UpdateStatusTx", mock.Anything, tx, uint64(11), constant.WithdrawalStatusRejected, "wrong account").Return(nil).Once()

		got, err := newApp(f).RejectWithdrawal(context.Background(), admin, 11, &model.RejectWithdrawalRequest{Note: "wrong account"})

		assert.NoError(t, err)
		assert.Equal(t, constant.WithdrawalStatusRejected, got.Status)
	})

	t.Run("error: already reviewed", func(t *testing.T) {
		f := newFields(t)
		tx := &sqlx.Tx{}
		f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
		f.txRepo.On("RollbackTx", tx).Return(nil).Once()
		done := pending()
		done.Status = constant.WithdrawalStatusRejected
		f.withdrawalRepo.On("GetForUpdateTx", mock.Anything, tx, uint64(11)).Return(done, nil).Once()

		_, err := newApp(f).RejectWithdrawal(context.Background(), admin, 11, &model.RejectWithdrawalRequest{})

		assert.Equal(t, constant.ErrInvalidRequest, cerr.TypeOf(err))
	})

	t.Run("error: sellers cannot review", func(t *testing.T) {
		f := newFields(t)

		_, err := newApp(f).ApproveWithdrawal(context.Background(), seller, 11)

		assert.Equal(t, constant.ErrForbidden, cerr.TypeOf(err))
	})
}
