package transport

import (
	"net/http"

	"github.com/muhammadheryan/marketplace/model"
)

// RequestWithdrawal handler
// @Summary Request withdrawal
// @Description Seller withdraws store balance; the amount is held until an admin reviews it
// @Tags Withdrawal
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.WithdrawalRequest true "Withdrawal Request"
// @Success 201 {object} model.WithdrawalEntity
// @Failure 400 {object} Response
// @Failure 403 {object} Response
// @Router /withdrawals [post]
func (s *RestHandler) RequestWithdrawal(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFrom(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.WithdrawalRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.WithdrawalApp.RequestWithdrawal(r.Context(), caller, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeCreated(w, res)
}

// ListWithdrawals handler
// @Summary List withdrawals
// @Tags Withdrawal
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.WithdrawalListResponse
// @Failure 403 {object} Response
// @Router /withdrawals [get]
func (s *RestHandler) ListWithdrawals(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFrom(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.WithdrawalApp.ListWithdrawals(r.Context(), caller)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ApproveWithdrawal handler
// @Summary Approve withdrawal
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Withdrawal ID"
// @Success 200 {object} model.WithdrawalEntity
// @Failure 400 {object} Response
// @Failure 403 {object} Response
// @Router /admin/withdrawals/{id}/approve [patch]
func (s *RestHandler) ApproveWithdrawal(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFrom(r)
	if err != nil {
		writeError(w, err)
		return
	}

	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.WithdrawalApp.ApproveWithdrawal(r.Context(), caller, id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// RejectWithdrawal handler
// @Summary Reject withdrawal
// @Description Rejecting refunds the held amount to the store balance
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Withdrawal ID"
// @Param request body model.RejectWithdrawalRequest false "Reject Withdrawal Request"
// @Success 200 {object} model.WithdrawalEntity
// @Failure 400 {object} Response
// @Failure 403 {object} Response
// @Router /admin/withdrawals/{id}/reject [patch]
func (s *RestHandler) RejectWithdrawal(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFrom(r)
	if err != nil {
		writeError(w, err)
		return
	}

	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	// the note is optional, so an empty body is accepted
	var req model.RejectWithdrawalRequest
	if r.ContentLength != 0 {
		if err := decodeAndValidate(r, &req); err != nil {
			writeError(w, err)
			return
		}
	}

	res, err := s.WithdrawalApp.RejectWithdrawal(r.Context(), caller, id, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
