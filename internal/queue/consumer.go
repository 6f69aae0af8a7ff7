package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"engistore/internal/client"
	"engistore/internal/repository"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Notifier consumes submission and order events: notification events become
// administrator emails, payment-check events auto-cancel unpaid orders.
type Notifier struct {
	mailer      client.Mailer
	orderRepo   repository.OrderRepository
	quoteRepo   repository.QuoteRequestRepository
	contactRepo repository.ContactRepository
	logger      *zap.Logger
}

func NewNotifier(
	mailer client.Mailer,
	orderRepo repository.OrderRepository,
	quoteRepo repository.QuoteRequestRepository,
	contactRepo repository.ContactRepository,
	logger *zap.Logger,
) *Notifier {
	return &Notifier{
		mailer:      mailer,
		orderRepo:   orderRepo,
		quoteRepo:   quoteRepo,
		contactRepo: contactRepo,
		logger:      logger,
	}
}

// StartConsumers registers the notification and payment-check consumers.
// Each runs on its own goroutine until the channel closes.
func (q *Queue) StartConsumers(n *Notifier) error {
	msgs, err := q.channel.Consume(
		q.cfg.NotificationQueue,
		"engistore-notifier", // consumer tag
		false,                // auto-ack
		false,                // exclusive
		false,                // no-local
		false,                // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("register notification consumer: %w", err)
	}

	go func() {
		for msg := range msgs {
			n.handleNotification(msg)
		}
	}()

	checks, err := q.channel.Consume(
		q.cfg.PaymentCheckQueue,
		"engistore-payment-check", // consumer tag
		false,                     // auto-ack
		false,                     // exclusive
		false,                     // no-local
		false,                     // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("register payment-check consumer: %w", err)
	}

	go func() {
		for msg := range checks {
			n.handlePaymentCheck(msg)
		}
	}()

	return nil
}

func (n *Notifier) handleNotification(msg amqp.Delivery) {
	defer func() {
		if r := recover(); r != nil {
			n.logger.Error("recovered from panic in notification processing", zap.Any("panic", r))
		}
	}()

	var evt Event
	if err := json.Unmarshal(msg.Body, &evt); err != nil {
		n.logger.Error("invalid notification payload", zap.Error(err))
		msg.Nack(false, false)
		return
	}

	ctx := context.Background()

	subject, body, err := n.composeMail(ctx, evt)
	if err != nil {
		n.logger.Error("compose notification mail",
			zap.String("event_type", evt.Type), zap.Uint("id", evt.ID), zap.Error(err))
		msg.Nack(false, false)
		return
	}

	// Mail failure must never bounce back to the submitter; log and move on.
	if err := n.mailer.Send(ctx, subject, body); err != nil {
		n.logger.Error("send admin notification mail",
			zap.String("event_type", evt.Type), zap.Uint("id", evt.ID), zap.Error(err))
	}

	msg.Ack(false)
}

func (n *Notifier) composeMail(ctx context.Context, evt Event) (string, string, error) {
	switch evt.Type {
	case EventQuoteRequestCreated:
		quote, err := n.quoteRepo.FindByID(ctx, evt.ID)
		if err != nil {
			return "", "", fmt.Errorf("load quote request: %w", err)
		}
		subject := fmt.Sprintf("New quote request #%d from %s", quote.ID, quote.Name)
		body := fmt.Sprintf("Name: %s\nEmail: %s\nPhone: %s\nCompany: %s\nService: %s\n\n%s",
			quote.Name, quote.Email, quote.Phone, quote.Company,
			quote.ServiceOfInterest, quote.ProjectDescription)
		return subject, body, nil

	case EventContactCreated:
		contact, err := n.contactRepo.FindByID(ctx, evt.ID)
		if err != nil {
			return "", "", fmt.Errorf("load contact submission: %w", err)
		}
		subject := fmt.Sprintf("New contact submission #%d from %s", contact.ID, contact.Name)
		body := fmt.Sprintf("Name: %s\nEmail: %s\nSubject: %s\n\n%s",
			contact.Name, contact.Email, contact.Subject, contact.Message)
		return subject, body, nil

	case EventNewsletterSubscribed:
		return "New newsletter subscription",
			fmt.Sprintf("Subscription id: %d", evt.ID), nil

	case EventOrderCreated:
		order, err := n.orderRepo.FindByID(ctx, evt.ID)
		if err != nil {
			return "", "", fmt.Errorf("load order: %w", err)
		}
		subject := fmt.Sprintf("New order #%d", order.ID)
		body := fmt.Sprintf("Total: %s\nStatus: %s\nPayment: %s",
			order.TotalAmount.StringFixed(2), order.Status, order.PaymentStatus)
		return subject, body, nil
	}

	return "", "", fmt.Errorf("unknown event type %q", evt.Type)
}

func (n *Notifier) handlePaymentCheck(msg amqp.Delivery) {
	var evt Event
	if err := json.Unmarshal(msg.Body, &evt); err != nil {
		n.logger.Error("invalid payment-check payload", zap.Error(err))
		msg.Nack(false, false)
		return
	}

	cancelled, err := n.orderRepo.CancelIfUnpaid(context.Background(), evt.ID)
	if err != nil {
		n.logger.Error("payment check failed", zap.Uint("order_id", evt.ID), zap.Error(err))
		msg.Nack(false, true) // retry later
		return
	}
	if cancelled {
		n.logger.Info("auto-cancelled unpaid order", zap.Uint("order_id", evt.ID))
	}

	msg.Ack(false)
}
