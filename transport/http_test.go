package transport

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/muhammadheryan/marketplace/constant"
	cartMock "github.com/muhammadheryan/marketplace/mocks/application/cart"
	orderMock "github.com/muhammadheryan/marketplace/mocks/application/order"
	paymentMock "github.com/muhammadheryan/marketplace/mocks/application/payment"
	productMock "github.com/muhammadheryan/marketplace/mocks/application/product"
	userMock "github.com/muhammadheryan/marketplace/mocks/application/user"
	withdrawalMock "github.com/muhammadheryan/marketplace/mocks/application/withdrawal"
	"github.com/muhammadheryan/marketplace/model"
	utilsContext "github.com/muhammadheryan/marketplace/utils/context"
	"github.com/muhammadheryan/marketplace/utils/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	testToken  = "valid-token"
	testAPIKey = "internal-key"
)

type fields struct {
	userApp       *userMock.UserApp
	productApp    *productMock.ProductApp
	cartApp       *cartMock.CartApp
	orderApp      *orderMock.OrderApp
	paymentApp    *paymentMock.PaymentApp
	withdrawalApp *withdrawalMock.WithdrawalApp
}

func newFields(t *testing.T) fields {
	return fields{
		userApp:       userMock.NewUserApp(t),
		productApp:    productMock.NewProductApp(t),
		cartApp:       cartMock.NewCartApp(t),
		orderApp:      orderMock.NewOrderApp(t),
		paymentApp:    paymentMock.NewPaymentApp(t),
		withdrawalApp: withdrawalMock.NewWithdrawalApp(t),
	}
}

func (f fields) handler() http.Handler {
	return NewTransport(&RestHandler{
		UserApp:       f.userApp,
		ProductApp:    f.productApp,
		CartApp:       f.cartApp,
		OrderApp:      f.orderApp,
		PaymentApp:    f.paymentApp,
		WithdrawalApp: f.withdrawalApp,
	}, testAPIKey)
}

func (f fields) loggedIn(caller model.Caller) {
	f.userApp.On("ValidateToken", mock.Anything, testToken).Return(&caller, nil)
}

var (
	buyer  = model.Caller{UserID: 1, Role: constant.RoleBuyer}
	seller = model.Caller{UserID: 7, Role: constant.RoleSeller}
	admin  = model.Caller{UserID: 9, Role: constant.RoleAdmin}
)

type envelope struct {
	Code    string          `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func do(t *testing.T, h http.Handler, method, path, body string, headers map[string]string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return rec, env
}

func bearer(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name     string
		headers  map[string]string
		mockCall func(f fields)
		wantCode int
	}{
		{
			name:     "missing token",
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "not a bearer scheme",
			headers:  map[string]string{"Authorization": "Basic abc"},
			wantCode: http.StatusUnauthorized,
		},
		{
			name:    "rejected token",
			headers: bearer("expired"),
			mockCall: func(f fields) {
				f.userApp.On("ValidateToken", mock.Anything, "expired").
					Return(nil, errors.SetCustomError(constant.ErrUnauthorize))
			},
			wantCode: http.StatusUnauthorized,
		},
		{
			name:    "caller reaches the handler",
			headers: bearer(testToken),
			mockCall: func(f fields) {
				f.loggedIn(buyer)
				f.cartApp.On("GetCart", mock.Anything, buyer).
					Return(&model.CartResponse{Items: []model.CartLine{}, Total: decimal.Zero}, nil)
			},
			wantCode: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}

			rec, env := do(t, f.handler(), http.MethodGet, "/cart", "", tt.headers)
			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.wantCode == http.StatusUnauthorized {
				assert.Equal(t, constant.ErrorTypeCode[constant.ErrUnauthorize], env.Code)
			}
			assert.NotEmpty(t, rec.Header().Get(requestIDHeader))
		})
	}
}

func TestPublicRoutes(t *testing.T) {
	f := newFields(t)
	f.productApp.On("ListProducts", mock.Anything, model.ProductFilter{Query: "kopi", StoreID: 3, Page: 2}).
		Return(&model.ProductListResponse{Items: []model.ProductListItem{}, Page: 2, PerPage: 10}, nil)
	f.productApp.On("GetProduct", mock.Anything, uint64(4)).
		Return(nil, errors.SetCustomError(constant.ErrNotFound))

	rec, env := do(t, f.handler(), http.MethodGet, "/products?q=kopi&store_id=3&page=2&per_page=abc", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, constant.ErrorTypeCode[constant.Successful], env.Code)

	rec, env = do(t, f.handler(), http.MethodGet, "/products?store_id=x", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, constant.ErrorTypeCode[constant.ErrInvalidRequest], env.Code)

	rec, env = do(t, f.handler(), http.MethodGet, "/products/4", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, constant.ErrorTypeCode[constant.ErrNotFound], env.Code)

	rec, _ = do(t, f.handler(), http.MethodGet, "/products/abc", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRequestIDPropagation(t *testing.T) {
	f := newFields(t)
	f.productApp.On("GetProduct", mock.MatchedBy(func(ctx context.Context) bool {
		return utilsContext.GetRequestID(ctx) == "req-42"
	}), uint64(4)).Return(&model.ProductDetail{ID: 4}, nil).Once()

	rec, _ := do(t, f.handler(), http.MethodGet, "/products/4", "", map[string]string{requestIDHeader: "req-42"})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "req-42", rec.Header().Get(requestIDHeader))
}

func TestRegisterLoginLogout(t *testing.T) {
	f := newFields(t)
	f.userApp.On("Register", mock.Anything, &model.RegisterRequest{
		Name: "Ana", Email: "ana@mail.com", Phone: "0812", Password: "secret1",
	}).Return(&model.RegisterResponse{}, nil)
	f.userApp.On("Login", mock.Anything, &model.LoginRequest{Identifier: "ana@mail.com", Password: "secret1"}).
		Return(&model.LoginResponse{Token: "jwt"}, nil)
	f.loggedIn(buyer)
	f.userApp.On("Logout", mock.Anything, testToken).Return(nil)

	rec, _ := do(t, f.handler(), http.MethodPost, "/register",
		`{"name":"Ana","email":"ana@mail.com","phone":"0812","password":"secret1"}`, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, env := do(t, f.handler(), http.MethodPost, "/register", `{"name":"Ana","email":"not-an-email"}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, env.Message, "Email failed on email")

	rec, env = do(t, f.handler(), http.MethodPost, "/login", `{"identifier":"ana@mail.com","password":"secret1"}`, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"name":"","email":"","role":"","token":"jwt"}`, string(env.Data))

	rec, _ = do(t, f.handler(), http.MethodPost, "/logout", "", bearer(testToken))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCartRoutes(t *testing.T) {
	tests := []struct {
		name     string
		method   string
		path     string
		body     string
		mockCall func(f fields)
		wantCode int
		wantMsg  string
	}{
		{
			name:   "add item",
			method: http.MethodPost,
			path:   "/cart",
			body:   `{"product_id":3,"quantity":2}`,
			mockCall: func(f fields) {
				f.cartApp.On("AddItem", mock.Anything, buyer, &model.AddCartItemRequest{ProductID: 3, Quantity: 2}).
					Return(&model.CartItemEntity{ID: 11, CartID: 5, ProductID: 3, Quantity: 2}, nil)
			},
			wantCode: http.StatusCreated,
		},
		{
			name:     "add item with zero quantity",
			method:   http.MethodPost,
			path:     "/cart",
			body:     `{"product_id":3,"quantity":0}`,
			wantCode: http.StatusBadRequest,
			wantMsg:  "Quantity failed on required",
		},
		{
			name:     "malformed body",
			method:   http.MethodPost,
			path:     "/cart",
			body:     `{"product_id":`,
			wantCode: http.StatusBadRequest,
			wantMsg:  "malformed JSON body",
		},
		{
			name:   "insufficient stock",
			method: http.MethodPost,
			path:   "/cart",
			body:   `{"product_id":3,"quantity":9}`,
			mockCall: func(f fields) {
				f.cartApp.On("AddItem", mock.Anything, buyer, mock.Anything).
					Return(nil, errors.SetCustomErrorMessage(constant.ErrInsufficientStock, "insufficient stock for product Teh, available 2"))
			},
			wantCode: http.StatusBadRequest,
			wantMsg:  "insufficient stock for product Teh, available 2",
		},
		{
			name:   "update quantity",
			method: http.MethodPatch,
			path:   "/cart/11",
			body:   `{"quantity":4}`,
			mockCall: func(f fields) {
				f.cartApp.On("UpdateQuantity", mock.Anything, buyer, uint64(11), &model.UpdateCartItemRequest{Quantity: 4}).
					Return(&model.CartItemEntity{ID: 11, Quantity: 4}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:   "delete foreign item",
			method: http.MethodDelete,
			path:   "/cart/12",
			mockCall: func(f fields) {
				f.cartApp.On("DeleteItem", mock.Anything, buyer, uint64(12)).
					Return(errors.SetCustomError(constant.ErrNotFound))
			},
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			f.loggedIn(buyer)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}

			rec, env := do(t, f.handler(), tt.method, tt.path, tt.body, bearer(testToken))
			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.wantMsg != "" {
				assert.Contains(t, env.Message, tt.wantMsg)
			}
		})
	}
}

func TestCreateOrder(t *testing.T) {
	body := `{"address_id":2,"logistics_option":"JNE","payment_method":"snap","shipping_cost":25000,"total_price":227000}`
	order := &model.OrderEntity{ID: 42, UserID: 1, Status: constant.OrderStatusPendingPayment}

	tests := []struct {
		name     string
		path     string
		body     string
		mockCall func(f fields)
		wantCode int
		wantErr  constant.ErrorType
		check    func(t *testing.T, env envelope)
	}{
		{
			name: "checkout",
			path: "/checkout",
			body: body,
			mockCall: func(f fields) {
				f.orderApp.On("CreateOrder", mock.Anything, buyer, mock.MatchedBy(func(req *model.CreateOrderRequest) bool {
					return req.AddressID == 2 && req.ShippingCost.Equal(decimal.NewFromInt(25000)) &&
						req.TotalPrice.Valid && req.TotalPrice.Decimal.Equal(decimal.NewFromInt(227000))
				})).Return(&model.CreateOrderResponse{Order: order, SnapToken: "snap-1"}, nil)
			},
			wantCode: http.StatusCreated,
			wantErr:  constant.Successful,
			check: func(t *testing.T, env envelope) {
				var res model.CreateOrderResponse
				require.NoError(t, json.Unmarshal(env.Data, &res))
				assert.Equal(t, "snap-1", res.SnapToken)
				assert.Equal(t, uint64(42), res.Order.ID)
			},
		},
		{
			name: "orders alias with token failure keeps the order in the body",
			path: "/orders",
			body: body,
			mockCall: func(f fields) {
				f.orderApp.On("CreateOrder", mock.Anything, buyer, mock.Anything).
					Return(&model.CreateOrderResponse{Order: order}, errors.SetCustomError(constant.ErrPaymentTokenUnavailable))
			},
			wantCode: http.StatusBadGateway,
			wantErr:  constant.ErrPaymentTokenUnavailable,
			check: func(t *testing.T, env envelope) {
				var res model.CreateOrderResponse
				require.NoError(t, json.Unmarshal(env.Data, &res))
				assert.Equal(t, uint64(42), res.Order.ID)
				assert.Empty(t, res.SnapToken)
			},
		},
		{
			name:     "negative shipping cost",
			path:     "/checkout",
			body:     `{"address_id":2,"logistics_option":"JNE","payment_method":"snap","shipping_cost":-1}`,
			wantCode: http.StatusBadRequest,
			wantErr:  constant.ErrInvalidRequest,
		},
		{
			name: "price mismatch",
			path: "/checkout",
			body: body,
			mockCall: func(f fields) {
				f.orderApp.On("CreateOrder", mock.Anything, buyer, mock.Anything).
					Return(nil, errors.SetCustomError(constant.ErrPriceMismatch))
			},
			wantCode: http.StatusBadRequest,
			wantErr:  constant.ErrPriceMismatch,
		},
		{
			name: "unexpected error is hidden",
			path: "/checkout",
			body: body,
			mockCall: func(f fields) {
				f.orderApp.On("CreateOrder", mock.Anything, buyer, mock.Anything).
					Return(nil, stderrors.New("dial tcp: connection refused"))
			},
			wantCode: http.StatusInternalServerError,
			wantErr:  constant.ErrInternal,
			check: func(t *testing.T, env envelope) {
				assert.Equal(t, constant.ErrorTypeMessage[constant.ErrInternal], env.Message)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			f.loggedIn(buyer)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}

			rec, env := do(t, f.handler(), http.MethodPost, tt.path, tt.body, bearer(testToken))
			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, constant.ErrorTypeCode[tt.wantErr], env.Code)
			if tt.check != nil {
				tt.check(t, env)
			}
		})
	}
}

func TestOrderFulfillmentRoutes(t *testing.T) {
	resi := "JNE123"

	f := newFields(t)
	f.loggedIn(seller)
	f.orderApp.On("UpdateOrderStatus", mock.Anything, seller, uint64(42), &model.UpdateOrderStatusRequest{
		Status: constant.OrderStatusShipped, ShippingResi: &resi,
	}).Return(&model.OrderEntity{ID: 42, Status: constant.OrderStatusShipped, ShippingResi: &resi}, nil)
	f.orderApp.On("ConfirmOrderReceived", mock.Anything, seller, uint64(42)).
		Return(nil, errors.SetCustomError(constant.ErrNotFound))
	f.orderApp.On("GetOrder", mock.Anything, seller, uint64(42)).
		Return(&model.OrderDetailResponse{Order: &model.OrderEntity{ID: 42}, Items: []model.OrderItemEntity{}}, nil)
	f.orderApp.On("RequestPaymentToken", mock.Anything, seller, uint64(42)).
		Return(nil, errors.SetCustomError(constant.ErrInvalidOrderStatus))

	h := f.handler()

	rec, _ := do(t, h, http.MethodPatch, "/orders/42/status", `{"status":"SHIPPED","shipping_resi":"JNE123"}`, bearer(testToken))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, env := do(t, h, http.MethodPatch, "/orders/42/status", `{"shipping_resi":"JNE123"}`, bearer(testToken))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, env.Message, "Status failed on required")

	rec, _ = do(t, h, http.MethodPatch, "/orders/42/confirm-received", "", bearer(testToken))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, _ = do(t, h, http.MethodGet, "/orders/42", "", bearer(testToken))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, env = do(t, h, http.MethodPost, "/orders/42/payment-token", "", bearer(testToken))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, constant.ErrorTypeCode[constant.ErrInvalidOrderStatus], env.Code)

	rec, _ = do(t, h, http.MethodGet, "/orders/0", "", bearer(testToken))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPaymentWebhook(t *testing.T) {
	body := `{"order_id":"ORDER-42","transaction_status":"settlement","fraud_status":"accept",` +
		`"gross_amount":"227000.00","status_code":"200","signature_key":"abc"}`

	tests := []struct {
		name     string
		body     string
		mockCall func(f fields)
		wantCode int
		wantErr  constant.ErrorType
	}{
		{
			name: "accepted without a bearer token",
			body: body,
			mockCall: func(f fields) {
				f.paymentApp.On("HandleWebhook", mock.Anything, mock.MatchedBy(func(n *model.WebhookNotification) bool {
					return n.OrderID == "ORDER-42" && n.TransactionStatus == "settlement"
				})).Return(&model.WebhookResponse{Status: "OK"}, nil)
			},
			wantCode: http.StatusOK,
			wantErr:  constant.Successful,
		},
		{
			name: "bad signature",
			body: body,
			mockCall: func(f fields) {
				f.paymentApp.On("HandleWebhook", mock.Anything, mock.Anything).
					Return(nil, errors.SetCustomError(constant.ErrInvalidSignature))
			},
			wantCode: http.StatusBadRequest,
			wantErr:  constant.ErrInvalidSignature,
		},
		{
			name:     "missing signature",
			body:     `{"order_id":"ORDER-42","transaction_status":"settlement","gross_amount":"1","status_code":"200"}`,
			wantCode: http.StatusBadRequest,
			wantErr:  constant.ErrInvalidRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}

			rec, env := do(t, f.handler(), http.MethodPost, "/payment/webhook", tt.body, nil)
			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, constant.ErrorTypeCode[tt.wantErr], env.Code)
		})
	}
}

func TestWithdrawalRoutes(t *testing.T) {
	t.Run("seller requests", func(t *testing.T) {
		f := newFields(t)
		f.loggedIn(seller)
		f.withdrawalApp.On("RequestWithdrawal", mock.Anything, seller, mock.MatchedBy(func(req *model.WithdrawalRequest) bool {
			return req.Amount.Equal(decimal.NewFromInt(20000)) && req.BankName == "BCA"
		})).Return(&model.WithdrawalEntity{ID: 3, Status: constant.WithdrawalStatusPending}, nil)
		f.withdrawalApp.On("ListWithdrawals", mock.Anything, seller).
			Return(&model.WithdrawalListResponse{StoreID: 2, Withdrawals: []model.WithdrawalEntity{}}, nil)

		rec, _ := do(t, f.handler(), http.MethodPost, "/withdrawals",
			`{"amount":"20000","bank_name":"BCA","bank_account":"123","bank_user":"Ana"}`, bearer(testToken))
		assert.Equal(t, http.StatusCreated, rec.Code)

		rec, env := do(t, f.handler(), http.MethodPost, "/withdrawals",
			`{"amount":"0","bank_name":"BCA","bank_account":"123","bank_user":"Ana"}`, bearer(testToken))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, env.Message, "Amount failed on dgt0")

		rec, _ = do(t, f.handler(), http.MethodGet, "/withdrawals", "", bearer(testToken))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("admin reviews", func(t *testing.T) {
		f := newFields(t)
		f.loggedIn(admin)
		f.withdrawalApp.On("ApproveWithdrawal", mock.Anything, admin, uint64(3)).
			Return(&model.WithdrawalEntity{ID: 3, Status: constant.WithdrawalStatusApproved}, nil)
		f.withdrawalApp.On("RejectWithdrawal", mock.Anything, admin, uint64(4), &model.RejectWithdrawalRequest{}).
			Return(&model.WithdrawalEntity{ID: 4, Status: constant.WithdrawalStatusRejected}, nil)
		f.withdrawalApp.On("RejectWithdrawal", mock.Anything, admin, uint64(5), &model.RejectWithdrawalRequest{Note: "wrong account"}).
			Return(nil, errors.SetCustomErrorMessage(constant.ErrInvalidRequest, "withdrawal already APPROVED"))

		rec, _ := do(t, f.handler(), http.MethodPatch, "/admin/withdrawals/3/approve", "", bearer(testToken))
		assert.Equal(t, http.StatusOK, rec.Code)

		rec, _ = do(t, f.handler(), http.MethodPatch, "/admin/withdrawals/4/reject", "", bearer(testToken))
		assert.Equal(t, http.StatusOK, rec.Code)

		rec, env := do(t, f.handler(), http.MethodPatch, "/admin/withdrawals/5/reject", `{"note":"wrong account"}`, bearer(testToken))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "withdrawal already APPROVED", env.Message)
	})
}

func TestInternalCancel(t *testing.T) {
	tests := []struct {
		name     string
		headers  map[string]string
		mockCall func(f fields)
		wantCode int
	}{
		{
			name:     "missing key",
			wantCode: http.StatusForbidden,
		},
		{
			name:     "wrong key",
			headers:  bearer("guess"),
			wantCode: http.StatusForbidden,
		},
		{
			name:    "cancelled",
			headers: bearer(testAPIKey),
			mockCall: func(f fields) {
				f.orderApp.On("CancelExpiredOrder", mock.Anything, uint64(42)).Return(nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:    "already paid",
			headers: bearer(testAPIKey),
			mockCall: func(f fields) {
				f.orderApp.On("CancelExpiredOrder", mock.Anything, uint64(42)).
					Return(errors.SetCustomError(constant.ErrInvalidOrderStatus))
			},
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}

			rec, _ := do(t, f.handler(), http.MethodPost, "/internal/v1/order/42/cancel", "", tt.headers)
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}
