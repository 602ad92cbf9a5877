package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rabbitmq/amqp091-go"
)

const (
	expirationExchange   = "order_expiration_exchange"
	expirationQueue      = "order_expiration_queue"
	expirationRoutingKey = "order_expiration"
)

// OrderExpirationPublisher schedules the cancellation of an unpaid order.
type OrderExpirationPublisher interface {
	PublishOrderExpiration(ctx context.Context, msg OrderExpirationMessage) error
}

type Publisher struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
}

type OrderExpirationMessage struct {
	OrderID   uint64    `json:"order_id"`
	UserID    uint64    `json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
}

func dial(host string, port int, user, password string) (*amqp091.Connection, *amqp091.Channel, error) {
	dsn := fmt.Sprintf("amqp://%s:%s@%s:%d/", user, password, host, port)
	conn, err := amqp091.Dial(dsn)
	if err != nil {
		return nil, nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, nil, err
	}

	if err := declareTopology(channel); err != nil {
		channel.Close()
		conn.Close()
		return nil, nil, err
	}
	return conn, channel, nil
}

// declareTopology sets up the delayed exchange, the queue, and their binding.
// The exchange type requires the rabbitmq_delayed_message_exchange plugin.
func declareTopology(channel *amqp091.Channel) error {
	err := channel.ExchangeDeclare(
		expirationExchange,  // name
		"x-delayed-message", // type
		true,                // durable
		false,               // auto-delete
		false,               // internal
		false,               // no-wait
		amqp091.Table{"x-delayed-type": "direct"}, // arguments
	)
	if err != nil {
		return fmt.Errorf("declare exchange: %w", err)
	}

	_, err = channel.QueueDeclare(
		expirationQueue, // name
		true,            // durable
		false,           // auto-delete
		false,           // exclusive
		false,           // no-wait
		nil,             // arguments
	)
	if err != nil {
		return fmt.Errorf("declare queue: %w", err)
	}

	if err := channel.QueueBind(expirationQueue, expirationRoutingKey, expirationExchange, false, nil); err != nil {
		return fmt.Errorf("bind queue: %w", err)
	}
	return nil
}

func NewPublisher(host string, port int, user, password string) (*Publisher, error) {
	conn, channel, err := dial(host, port, user, password)
	if err != nil {
		return nil, err
	}
	return &Publisher{conn: conn, channel: channel}, nil
}

// expirationDelay is the x-delay header value in milliseconds, never negative.
func expirationDelay(expiresAt, now time.Time) int64 {
	delayMs := expiresAt.Sub(now).Milliseconds()
	if delayMs < 0 {
		return 0
	}
	return delayMs
}

func (p *Publisher) PublishOrderExpiration(ctx context.Context, msg OrderExpirationMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	return p.channel.PublishWithContext(
		ctx,
		expirationExchange,   // exchange
		expirationRoutingKey, // routing key
		false,                // mandatory
		false,                // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Body:         body,
			Headers: amqp091.Table{
				"x-delay": expirationDelay(msg.ExpiresAt, time.Now()),
			},
		},
	)
}

func (p *Publisher) Close() error {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
	return nil
}
