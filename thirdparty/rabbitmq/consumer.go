package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/muhammadheryan/marketplace/utils/logger"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// OrderCanceller is whatever can cancel an expired order; the consumer process uses the internal HTTP API.
type OrderCanceller interface {
	CancelExpiredOrder(ctx context.Context, orderID uint64) error
}

type Consumer struct {
	conn      *amqp091.Connection
	channel   *amqp091.Channel
	canceller OrderCanceller
}

func NewConsumer(host string, port int, user, password string, canceller OrderCanceller) (*Consumer, error) {
	conn, channel, err := dial(host, port, user, password)
	if err != nil {
		return nil, err
	}

	return &Consumer{
		conn:      conn,
		channel:   channel,
		canceller: canceller,
	}, nil
}

func (c *Consumer) Start(ctx context.Context) error {
	// one message at a time
	if err := c.channel.Qos(1, 0, false); err != nil {
		return err
	}

	msgs, err := c.channel.Consume(
		expirationQueue,
		"",    // consumer tag
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return err
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				c.handle(ctx, msg)
			}
		}
	}()

	return nil
}

func (c *Consumer) handle(ctx context.Context, msg amqp091.Delivery) {
	var orderMsg OrderExpirationMessage
	if err := json.Unmarshal(msg.Body, &orderMsg); err != nil {
		logger.Error("[Consumer] unmarshal message", zap.String("error", err.Error()))
		_ = msg.Ack(false)
		return
	}

	if err := c.canceller.CancelExpiredOrder(ctx, orderMsg.OrderID); err != nil {
		logger.Error("[Consumer] cancel order", zap.Uint64("order_id", orderMsg.OrderID), zap.String("error", err.Error()))
		_ = msg.Nack(false, true)
		return
	}

	_ = msg.Ack(false)
	logger.Info("[Consumer] order expiration handled", zap.Uint64("order_id", orderMsg.OrderID))
}

func (c *Consumer) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		c.conn.Close()
	}
	return nil
}

// InternalAPICanceller cancels orders through the API's internal endpoint.
type InternalAPICanceller struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewInternalAPICanceller(baseURL, apiKey string) *InternalAPICanceller {
	return &InternalAPICanceller{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (a *InternalAPICanceller) CancelExpiredOrder(ctx context.Context, orderID uint64) error {
	url := fmt.Sprintf("%s/internal/v1/order/%d/cancel", a.baseURL, orderID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, nil)
	if err != nil {
		return err
	}

	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", a.apiKey))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Internal-Service", "order-expiration-consumer")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	// 4xx means the order is gone or no longer cancellable; retrying will not help
	if resp.StatusCode < 200 || resp.StatusCode >= 500 {
		return fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(body))
	}

	return nil
}
