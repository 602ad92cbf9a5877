package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	cartapp "github.com/muhammadheryan/marketplace/application/cart"
	orderapp "github.com/muhammadheryan/marketplace/application/order"
	paymentapp "github.com/muhammadheryan/marketplace/application/payment"
	productapp "github.com/muhammadheryan/marketplace/application/product"
	settlementapp "github.com/muhammadheryan/marketplace/application/settlement"
	userapp "github.com/muhammadheryan/marketplace/application/user"
	withdrawalapp "github.com/muhammadheryan/marketplace/application/withdrawal"
	"github.com/muhammadheryan/marketplace/cmd/config"
	redisclient "github.com/muhammadheryan/marketplace/cmd/redis"
	_ "github.com/muhammadheryan/marketplace/docs"
	addressRepo "github.com/muhammadheryan/marketplace/repository/address"
	cartRepo "github.com/muhammadheryan/marketplace/repository/cart"
	orderRepo "github.com/muhammadheryan/marketplace/repository/order"
	productRepo "github.com/muhammadheryan/marketplace/repository/product"
	redisRepo "github.com/muhammadheryan/marketplace/repository/redis"
	storeRepo "github.com/muhammadheryan/marketplace/repository/store"
	txRepo "github.com/muhammadheryan/marketplace/repository/tx"
	userRepo "github.com/muhammadheryan/marketplace/repository/user"
	withdrawalRepo "github.com/muhammadheryan/marketplace/repository/withdrawal"
	"github.com/muhammadheryan/marketplace/thirdparty/midtrans"
	"github.com/muhammadheryan/marketplace/thirdparty/rabbitmq"
	"github.com/muhammadheryan/marketplace/transport"
	"github.com/muhammadheryan/marketplace/utils/logger"
	"go.uber.org/zap"
)

// @title MARKETPLACE API
// @version 1.0
// @description Multi-vendor marketplace API: cart, checkout, payment, fulfillment and store withdrawals
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	pingCtx, cancelPing := context.WithTimeout(context.Background(), cfg.Redis.DialTimeout)
	redisClient, err := redisclient.New(pingCtx, cfg.Redis)
	cancelPing()
	if err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer redisClient.Close()

	// without the broker, checkout still works but unpaid orders are not expired
	var expirationPublisher rabbitmq.OrderExpirationPublisher
	publisher, err := rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
	if err != nil {
		logger.Warn("rabbitmq unavailable, order expiration disabled", zap.Error(err))
	} else {
		expirationPublisher = publisher
		defer publisher.Close()
	}

	gateway, err := midtrans.NewClient(&cfg.Payment)
	if err != nil {
		logger.Fatal("err init payment gateway", zap.Error(err))
	}

	// Initialize repositories
	TxRepo := txRepo.NewTxRepository(db)
	UserRepo := userRepo.NewUserRepository(db)
	RedisRepo := redisRepo.NewRepository(redisClient)
	ProductRepo := productRepo.NewProductRepository(db)
	CartRepo := cartRepo.NewCartRepository(db)
	AddressRepo := addressRepo.NewAddressRepository(db)
	OrderRepo := orderRepo.NewOrderRepository(db)
	StoreRepo := storeRepo.NewStoreRepository(db)
	WithdrawalRepo := withdrawalRepo.NewWithdrawalRepository(db)

	// Initialize application layers
	UserApp := userapp.NewUserApp(cfg, UserRepo, RedisRepo)
	ProductApp := productapp.NewProductApp(ProductRepo)
	CartApp := cartapp.NewCartApp(CartRepo, ProductRepo)
	SettlementApp := settlementapp.NewSettlementApp(OrderRepo, StoreRepo)
	OrderApp := orderapp.NewOrderApp(cfg, orderapp.Dependencies{
		TxRepo:      TxRepo,
		CartRepo:    CartRepo,
		AddressRepo: AddressRepo,
		ProductRepo: ProductRepo,
		OrderRepo:   OrderRepo,
		UserRepo:    UserRepo,
		Settlement:  SettlementApp,
		Gateway:     gateway,
		Publisher:   expirationPublisher,
	})
	PaymentApp := paymentapp.NewPaymentApp(cfg, TxRepo, OrderRepo, ProductRepo, RedisRepo, gateway)
	WithdrawalApp := withdrawalapp.NewWithdrawalApp(cfg, TxRepo, StoreRepo, WithdrawalRepo)

	httpTransport := transport.NewTransport(&transport.RestHandler{
		UserApp:       UserApp,
		ProductApp:    ProductApp,
		CartApp:       CartApp,
		OrderApp:      OrderApp,
		PaymentApp:    PaymentApp,
		WithdrawalApp: WithdrawalApp,
	}, cfg.Internal.APIKey)

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("failed server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}
