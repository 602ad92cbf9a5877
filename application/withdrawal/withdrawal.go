package withdrawal

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/marketplace/application/policy"
	"github.com/muhammadheryan/marketplace/cmd/config"
	"github.com/muhammadheryan/marketplace/constant"
	"github.com/muhammadheryan/marketplace/model"
	storeRepo "github.com/muhammadheryan/marketplace/repository/store"
	txRepo "github.com/muhammadheryan/marketplace/repository/tx"
	withdrawalRepo "github.com/muhammadheryan/marketplace/repository/withdrawal"
	"github.com/muhammadheryan/marketplace/utils/errors"
	"github.com/muhammadheryan/marketplace/utils/logger"
	"go.uber.org/zap"
)

type WithdrawalApp interface {
	RequestWithdrawal(ctx context.Context, caller model.Caller, req *model.WithdrawalRequest) (*model.WithdrawalEntity, error)
	ListWithdrawals(ctx context.Context, caller model.Caller) (*model.WithdrawalListResponse, error)
	ApproveWithdrawal(ctx context.Context, caller model.Caller, withdrawalID uint64) (*model.WithdrawalEntity, error)
	// RejectWithdrawal returns the held amount to the store balance.
	RejectWithdrawal(ctx context.Context, caller model.Caller, withdrawalID uint64, req *model.RejectWithdrawalRequest) (*model.WithdrawalEntity, error)
}

type withdrawalAppImpl struct {
	config         *config.Config
	txRepo         txRepo.TxRepository
	storeRepo      storeRepo.StoreRepository
	withdrawalRepo withdrawalRepo.WithdrawalRepository
}

func NewWithdrawalApp(config *config.Config, txRepo txRepo.TxRepository, storeRepo storeRepo.StoreRepository, withdrawalRepo withdrawalRepo.WithdrawalRepository) WithdrawalApp {
	return &withdrawalAppImpl{
		config:         config,
		txRepo:         txRepo,
		storeRepo:      storeRepo,
		withdrawalRepo: withdrawalRepo,
	}
}

func (s *withdrawalAppImpl) RequestWithdrawal(ctx context.Context, caller model.Caller, req *model.WithdrawalRequest) (*model.WithdrawalEntity, error) {
	store, err := s.callerStore(ctx, caller)
	if err != nil {
		return nil, err
	}

	minAmount := s.config.Withdrawal.MinAmount
	if req.Amount.LessThan(minAmount) {
		return nil, errors.SetCustomErrorMessage(constant.ErrBelowMinimumWithdrawal,
			fmt.Sprintf("minimum withdrawal is %s", minAmount.String()))
	}

	w := &model.WithdrawalEntity{
		StoreID:     store.ID,
		Amount:      req.Amount,
		BankName:    req.BankName,
		BankAccount: req.BankAccount,
		BankUser:    req.BankUser,
		Status:      constant.WithdrawalStatusPending,
		CreatedAt:   time.Now(),
	}

	err = s.runTx(ctx, func(tx *sqlx.Tx) error {
		locked, err := s.storeRepo.GetForUpdateTx(ctx, tx, store.ID)
		if err != nil {
			logger.Error("[RequestWithdrawal] error storeRepo.GetForUpdateTx", zap.String("error", err.Error()))
			return errors.SetCustomError(constant.ErrInternal)
		}
		if locked == nil || locked.Balance.LessThan(req.Amount) {
			return errors.SetCustomError(constant.ErrInsufficientBalance)
		}

		ok, err := s.storeRepo.DecrementBalanceTx(ctx, tx, store.ID, req.Amount)
		if err != nil {
			logger.Error("[RequestWithdrawal] error storeRepo.DecrementBalanceTx", zap.String("error", err.Error()))
			return errors.SetCustomError(constant.ErrInternal)
		}
		if !ok {
			return errors.SetCustomError(constant.ErrInsufficientBalance)
		}

		id, err := s.withdrawalRepo.InsertTx(ctx, tx, w)
		if err != nil {
			logger.Error("[RequestWithdrawal] error withdrawalRepo.InsertTx", zap.String("error", err.Error()))
			return errors.SetCustomError(constant.ErrInternal)
		}
		w.ID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("[RequestWithdrawal] withdrawal requested", zap.Uint64("store_id", store.ID), zap.Uint64("withdrawal_id", w.ID), zap.String("amount", w.Amount.String()))
	return w, nil
}

func (s *withdrawalAppImpl) ListWithdrawals(ctx context.Context, caller model.Caller) (*model.WithdrawalListResponse, error) {
	store, err := s.callerStore(ctx, caller)
	if err != nil {
		return nil, err
	}

	list, err := s.withdrawalRepo.ListByStore(ctx, store.ID)
	if err != nil {
		logger.Error("[ListWithdrawals] error withdrawalRepo.ListByStore", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.WithdrawalListResponse{
		StoreID:     store.ID,
		Balance:     store.Balance,
		Withdrawals: list,
	}, nil
}

func (s *withdrawalAppImpl) ApproveWithdrawal(ctx context.Context, caller model.Caller, withdrawalID uint64) (*model.WithdrawalEntity, error) {
	return s.review(ctx, caller, withdrawalID, constant.WithdrawalStatusApproved, "")
}

func (s *withdrawalAppImpl) RejectWithdrawal(ctx context.Context, caller model.Caller, withdrawalID uint64, req *model.RejectWithdrawalRequest) (*model.WithdrawalEntity, error) {
	return s.review(ctx, caller, withdrawalID, constant.WithdrawalStatusRejected, req.Note)
}

func (s *withdrawalAppImpl) review(ctx context.Context, caller model.Caller, withdrawalID uint64, status constant.WithdrawalStatus, note string) (*model.WithdrawalEntity, error) {
	if !policy.Authorize(caller, policy.ActionReviewWithdrawal, policy.Resource{}) {
		return nil, errors.SetCustomError(constant.ErrForbidden)
	}

	var reviewed *model.WithdrawalEntity
	err := s.runTx(ctx, func(tx *sqlx.Tx) error {
		w, err := s.withdrawalRepo.GetForUpdateTx(ctx, tx, withdrawalID)
		if err != nil {
			logger.Error("[ReviewWithdrawal] error withdrawalRepo.GetForUpdateTx", zap.String("error", err.Error()))
			return errors.SetCustomError(constant.ErrInternal)
		}
		if w == nil {
			return errors.SetCustomErrorMessage(constant.ErrNotFound, "withdrawal not found")
		}
		if w.Status != constant.WithdrawalStatusPending {
			return errors.SetCustomErrorMessage(constant.ErrInvalidRequest, fmt.Sprintf("withdrawal already %s", w.Status))
		}

		if status == constant.WithdrawalStatusRejected {
			if err := s.storeRepo.IncrementBalanceTx(ctx, tx, w.StoreID, w.Amount); err != nil {
				logger.Error("[ReviewWithdrawal] error storeRepo.IncrementBalanceTx", zap.String("error", err.Error()))
				return errors.SetCustomError(constant.ErrInternal)
			}
		}

		if err := s.withdrawalRepo.UpdateStatusTx(ctx, tx, w.ID, status, note); err != nil {
			logger.Error("[ReviewWithdrawal] error withdrawalRepo.UpdateStatusTx", zap.String("error", err.Error()))
			return errors.SetCustomError(constant.ErrInternal)
		}

		now := time.Now()
		w.Status = status
		w.Note = note
		w.ReviewedAt = &now
		reviewed = w
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.WithContext(ctx).Info("[ReviewWithdrawal] withdrawal reviewed", zap.Uint64("withdrawal_id", withdrawalID), zap.String("status", string(status)))
	return reviewed, nil
}

func (s *withdrawalAppImpl) callerStore(ctx context.Context, caller model.Caller) (*model.StoreEntity, error) {
	if caller.Role != constant.RoleSeller {
		return nil, errors.SetCustomError(constant.ErrForbidden)
	}

	store, err := s.storeRepo.GetByOwner(ctx, caller.UserID)
	if err != nil {
		logger.Error("[callerStore] error storeRepo.GetByOwner", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if store == nil {
		return nil, errors.SetCustomErrorMessage(constant.ErrNotFound, "store not found")
	}
	if !policy.Authorize(caller, policy.ActionRequestWithdrawal, policy.Resource{OwnerUserID: store.OwnerUserID}) {
		return nil, errors.SetCustomError(constant.ErrForbidden)
	}
	return store, nil
}

func (s *withdrawalAppImpl) runTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	if err := txRepo.Run(ctx, s.txRepo, fn); err != nil {
		return errors.MapInternal("[withdrawal] tx", err)
	}
	return nil
}
