package errors

import (
	stderrors "errors"

	"github.com/muhammadheryan/marketplace/constant"
	"github.com/muhammadheryan/marketplace/utils/logger"
	"go.uber.org/zap"
)

type CustomError struct {
	errType constant.ErrorType
	message string
}

func (c CustomError) Error() string {
	if c.message != "" {
		return c.message
	}
	return constant.ErrorTypeMessage[c.errType]
}

func (c CustomError) ErrorCode() string {
	return constant.ErrorTypeCode[c.errType]
}

func (c CustomError) ErrorHTTPCode() int {
	return constant.ErrorTypeHTTPCode[c.errType]
}

func (c CustomError) Type() constant.ErrorType {
	return c.errType
}

// Is reports whether target is a CustomError of the same type, ignoring the detail message.
func (c CustomError) Is(target error) bool {
	t, ok := target.(CustomError)
	if !ok {
		return false
	}
	return t.errType == c.errType
}

func SetCustomError(errorType constant.ErrorType) CustomError {
	return CustomError{
		errType: errorType,
	}
}

// SetCustomErrorMessage keeps the error type but overrides the message shown to the client.
func SetCustomErrorMessage(errorType constant.ErrorType, message string) CustomError {
	return CustomError{
		errType: errorType,
		message: message,
	}
}

// TypeOf returns the CustomError type carried by err, or ErrInternal for anything else.
func TypeOf(err error) constant.ErrorType {
	var ce CustomError
	if stderrors.As(err, &ce) {
		return ce.errType
	}
	return constant.ErrInternal
}

// MapInternal passes CustomErrors through and logs anything else before hiding it behind ErrInternal.
func MapInternal(op string, err error) error {
	var ce CustomError
	if stderrors.As(err, &ce) {
		return ce
	}
	logger.Error(op, zap.String("error", err.Error()))
	return SetCustomError(constant.ErrInternal)
}
