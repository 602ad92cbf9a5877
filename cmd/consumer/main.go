package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/muhammadheryan/marketplace/cmd/config"
	"github.com/muhammadheryan/marketplace/thirdparty/rabbitmq"
	"github.com/muhammadheryan/marketplace/utils/logger"
	"go.uber.org/zap"
)

// The consumer cancels orders whose payment window elapsed. It owns no database connection;
// cancellation goes through the API's internal endpoint.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		panic(err)
	}
	defer logger.Close()

	canceller := rabbitmq.NewInternalAPICanceller(cfg.Internal.BaseURL, cfg.Internal.APIKey)

	consumer, err := rabbitmq.NewConsumer(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password, canceller)
	if err != nil {
		logger.Fatal("err connect rabbitmq", zap.Error(err))
	}
	defer consumer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := consumer.Start(ctx); err != nil {
		logger.Fatal("err start consumer", zap.Error(err))
	}
	logger.Info("Order expiration consumer running")

	<-ctx.Done()
	logger.Info("Shutting down consumer")
}
