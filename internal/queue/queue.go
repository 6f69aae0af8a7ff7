package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"engistore/internal/config"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Event types carried on the queues.
const (
	EventQuoteRequestCreated  = "quote_request.created"
	EventContactCreated       = "contact.created"
	EventNewsletterSubscribed = "newsletter.subscribed"
	EventOrderCreated         = "order.created"
	EventOrderPaymentCheck    = "order.payment_check"
)

type Event struct {
	Type string `json:"type"`
	ID   uint   `json:"id"`
}

// Publisher is the slice of the queue the services depend on.
type Publisher interface {
	PublishNotification(ctx context.Context, evt Event) error
	PublishPaymentCheck(ctx context.Context, orderID uint) error
}

type Queue struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	cfg     *config.RabbitMQ
	logger  *zap.Logger
}

func New(cfg *config.RabbitMQ, logger *zap.Logger) (*Queue, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("amqp dial: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("amqp channel: %w", err)
	}

	return &Queue{
		conn:    conn,
		channel: ch,
		cfg:     cfg,
		logger:  logger,
	}, nil
}

func (q *Queue) SetupQueues() error {
	if _, err := q.channel.QueueDeclare(
		q.cfg.NotificationQueue,
		true,  // durable
		false, // auto-delete
		false, // exclusive
		false, // no-wait
		nil,
	); err != nil {
		return err
	}

	if _, err := q.channel.QueueDeclare(
		q.cfg.PaymentCheckQueue,
		true,  // durable
		false, // auto-delete
		false, // exclusive
		false, // no-wait
		nil,
	); err != nil {
		return err
	}

	// Delayed exchange needs the RabbitMQ delayed-message plugin.
	if err := q.channel.ExchangeDeclare(
		q.cfg.DelayExchange,
		"x-delayed-message",
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		amqp.Table{"x-delayed-type": "direct"},
	); err != nil {
		q.logger.Warn("delayed exchange not supported", zap.Error(err))
		return nil
	}

	return q.channel.QueueBind(
		q.cfg.PaymentCheckQueue,
		q.cfg.PaymentCheckQueue,
		q.cfg.DelayExchange,
		false,
		nil,
	)
}

func (q *Queue) PublishNotification(ctx context.Context, evt Event) error {
	body, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	return q.channel.PublishWithContext(ctx,
		"", // default exchange
		q.cfg.NotificationQueue,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
			ContentType:  "application/json",
			Body:         body,
		},
	)
}

func (q *Queue) PublishPaymentCheck(ctx context.Context, orderID uint) error {
	body, err := json.Marshal(Event{Type: EventOrderPaymentCheck, ID: orderID})
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	delay := time.Duration(q.cfg.PaymentCheckDelayS) * time.Second

	return q.channel.PublishWithContext(ctx,
		q.cfg.DelayExchange,
		q.cfg.PaymentCheckQueue,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
			ContentType:  "application/json",
			Body:         body,
			Headers: amqp.Table{
				"x-delay": delay.Milliseconds(),
			},
		},
	)
}

func (q *Queue) Close() {
	if q.channel != nil {
		q.channel.Close()
	}
	if q.conn != nil {
		q.conn.Close()
	}
}
