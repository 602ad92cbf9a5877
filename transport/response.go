package transport

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/marketplace/constant"
	"github.com/muhammadheryan/marketplace/model"
	utilsContext "github.com/muhammadheryan/marketplace/utils/context"
	"github.com/muhammadheryan/marketplace/utils/errors"
	"github.com/muhammadheryan/marketplace/utils/logger"
	validatorx "github.com/muhammadheryan/marketplace/utils/validator"
	"go.uber.org/zap"
)

// Response is the envelope of every JSON body.
type Response struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("[writeJSON] encode response", zap.String("error", err.Error()))
	}
}

func writeSuccess(w http.ResponseWriter, data interface{}) {
	writeWithStatus(w, http.StatusOK, data)
}

func writeCreated(w http.ResponseWriter, data interface{}) {
	writeWithStatus(w, http.StatusCreated, data)
}

func writeWithStatus(w http.ResponseWriter, status int, data interface{}) {
	writeJSON(w, status, Response{
		Code:    constant.ErrorTypeCode[constant.Successful],
		Message: constant.ErrorTypeMessage[constant.Successful],
		Data:    data,
	})
}

func writeError(w http.ResponseWriter, err error) {
	writeErrorWithData(w, err, nil)
}

// writeErrorWithData is used when a failed call still produced something the client needs,
// such as an order committed before the payment token could be issued.
func writeErrorWithData(w http.ResponseWriter, err error, data interface{}) {
	var ce errors.CustomError
	if !stderrors.As(err, &ce) {
		ce = errors.SetCustomError(constant.ErrInternal)
	}
	writeJSON(w, ce.ErrorHTTPCode(), Response{
		Code:    ce.ErrorCode(),
		Message: ce.Error(),
		Data:    data,
	})
}

// decodeAndValidate reads a JSON body into req and runs the struct validation tags.
func decodeAndValidate(r *http.Request, req interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		return errors.SetCustomErrorMessage(constant.ErrInvalidRequest, "malformed JSON body")
	}
	if err := validatorx.ValidateStruct(req); err != nil {
		return errors.SetCustomErrorMessage(constant.ErrInvalidRequest, validatorx.Message(err))
	}
	return nil
}

func pathID(r *http.Request, name string) (uint64, error) {
	id, err := strconv.ParseUint(mux.Vars(r)[name], 10, 64)
	if err != nil || id == 0 {
		return 0, errors.SetCustomErrorMessage(constant.ErrInvalidRequest, "invalid "+name)
	}
	return id, nil
}

func callerFrom(r *http.Request) (model.Caller, error) {
	caller, ok := utilsContext.GetCaller(r.Context())
	if !ok {
		return model.Caller{}, errors.SetCustomError(constant.ErrUnauthorize)
	}
	return caller, nil
}
