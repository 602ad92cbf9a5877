package errors_test

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/muhammadheryan/marketplace/constant"
	cerr "github.com/muhammadheryan/marketplace/utils/errors"
	"github.com/stretchr/testify/assert"
)

func TestCustomError(t *testing.T) {
	err := cerr.SetCustomError(constant.ErrNotFound)
	assert.Equal(t, "data not found", err.Error())
	assert.Equal(t, "0002", err.ErrorCode())
	assert.Equal(t, http.StatusNotFound, err.ErrorHTTPCode())

	detailed := cerr.SetCustomErrorMessage(constant.ErrInsufficientStock, "insufficient stock for product Kopi, available 1")
	assert.Equal(t, "insufficient stock for product Kopi, available 1", detailed.Error())
	assert.Equal(t, constant.ErrorTypeCode[constant.ErrInsufficientStock], detailed.ErrorCode())
}

func TestCustomError_Is(t *testing.T) {
	detailed := cerr.SetCustomErrorMessage(constant.ErrInsufficientStock, "available 1")
	wrapped := fmt.Errorf("checkout: %w", detailed)

	assert.True(t, stderrors.Is(wrapped, cerr.SetCustomError(constant.ErrInsufficientStock)))
	assert.False(t, stderrors.Is(wrapped, cerr.SetCustomError(constant.ErrInternal)))
	assert.Equal(t, constant.ErrInsufficientStock, cerr.TypeOf(wrapped))
	assert.Equal(t, constant.ErrInternal, cerr.TypeOf(stderrors.New("boom")))
}

func TestMapInternal(t *testing.T) {
	stock := cerr.SetCustomError(constant.ErrInsufficientStock)
	assert.Equal(t, stock, cerr.MapInternal("[Test]", stock))

	mapped := cerr.MapInternal("[Test]", stderrors.New("connection reset"))
	assert.Equal(t, constant.ErrInternal, cerr.TypeOf(mapped))
	assert.Equal(t, "error internal", mapped.Error())
}
