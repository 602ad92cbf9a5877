package transport

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	cartapp "github.com/muhammadheryan/marketplace/application/cart"
	orderapp "github.com/muhammadheryan/marketplace/application/order"
	paymentapp "github.com/muhammadheryan/marketplace/application/payment"
	productapp "github.com/muhammadheryan/marketplace/application/product"
	userapp "github.com/muhammadheryan/marketplace/application/user"
	withdrawalapp "github.com/muhammadheryan/marketplace/application/withdrawal"
	"github.com/muhammadheryan/marketplace/constant"
	"github.com/muhammadheryan/marketplace/model"
	"github.com/muhammadheryan/marketplace/utils/errors"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RestHandler struct {
	UserApp       userapp.UserApp
	ProductApp    productapp.ProductApp
	CartApp       cartapp.CartApp
	OrderApp      orderapp.OrderApp
	PaymentApp    paymentapp.PaymentApp
	WithdrawalApp withdrawalapp.WithdrawalApp
}

func NewTransport(rh *RestHandler, internalAPIKey string) http.Handler {
	mux := mux.NewRouter()

	// Swagger UI
	mux.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// Public routes
	mux.HandleFunc("/register", rh.Register).Methods(http.MethodPost)
	mux.HandleFunc("/login", rh.Login).Methods(http.MethodPost)
	mux.HandleFunc("/products", rh.ListProducts).Methods(http.MethodGet)
	mux.HandleFunc("/products/{id}", rh.GetProduct).Methods(http.MethodGet)
	mux.HandleFunc("/payment/webhook", rh.PaymentWebhook).Methods(http.MethodPost)

	// protected routes
	mux.HandleFunc("/logout", rh.Logout).Methods(http.MethodPost)

	mux.HandleFunc("/cart", rh.GetCart).Methods(http.MethodGet)
	mux.HandleFunc("/cart", rh.AddCartItem).Methods(http.MethodPost)
	mux.HandleFunc("/cart/{itemId}", rh.UpdateCartItem).Methods(http.MethodPatch)
	mux.HandleFunc("/cart/{itemId}", rh.DeleteCartItem).Methods(http.MethodDelete)

	mux.HandleFunc("/checkout", rh.CreateOrder).Methods(http.MethodPost)
	mux.HandleFunc("/orders", rh.CreateOrder).Methods(http.MethodPost)
	mux.HandleFunc("/orders/{id}", rh.GetOrder).Methods(http.MethodGet)
	mux.HandleFunc("/orders/{id}/status", rh.UpdateOrderStatus).Methods(http.MethodPatch)
	mux.HandleFunc("/orders/{id}/confirm-received", rh.ConfirmOrderReceived).Methods(http.MethodPatch)
	mux.HandleFunc("/orders/{id}/payment-token", rh.RequestPaymentToken).Methods(http.MethodPost)

	mux.HandleFunc("/withdrawals", rh.RequestWithdrawal).Methods(http.MethodPost)
	mux.HandleFunc("/withdrawals", rh.ListWithdrawals).Methods(http.MethodGet)
	mux.HandleFunc("/admin/withdrawals/{id}/approve", rh.ApproveWithdrawal).Methods(http.MethodPatch)
	mux.HandleFunc("/admin/withdrawals/{id}/reject", rh.RejectWithdrawal).Methods(http.MethodPatch)

	// internal routes, called by the expiration consumer
	internal := mux.PathPrefix("/internal/v1").Subrouter()
	internal.Use(InternalMiddleware(internalAPIKey))
	internal.HandleFunc("/order/{id}/cancel", rh.CancelExpiredOrder).Methods(http.MethodPost)

	// middleware
	mux.Use(LoggingMiddleware())
	mux.Use(AuthMiddleware(rh.UserApp))

	return mux
}

// Register handler
// @Summary Register user
// @Description Register a new buyer or seller
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.RegisterRequest true "Register Request"
// @Success 200 {object} model.RegisterResponse
// @Failure 400 {object} Response
// @Router /register [post]
func (s *RestHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req model.RegisterRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.UserApp.Register(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// Login handler
// @Summary Login user
// @Description Login with email or phone and receive JWT token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Login Request"
// @Success 200 {object} model.LoginResponse
// @Failure 400 {object} Response
// @Router /login [post]
func (s *RestHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.UserApp.Login(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// Logout handler
// @Summary Logout user
// @Description Revoke the session behind the bearer token
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response
// @Failure 401 {object} Response
// @Router /logout [post]
func (s *RestHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token, ok := bearerToken(r)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	if err := s.UserApp.Logout(r.Context(), token); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}

func bearerToken(r *http.Request) (string, bool) {
	auth := r.Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
	return token, token != ""
}
