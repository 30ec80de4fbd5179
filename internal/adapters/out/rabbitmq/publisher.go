package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"logistics/internal/core/ports"

	amqp "github.com/rabbitmq/amqp091-go"
)

const publishTimeout = 5 * time.Second

// OrderEventPublisher publishes with confirms; Publish returns once the broker acked.
type OrderEventPublisher struct {
	mu       sync.Mutex
	ch       *amqp.Channel
	exchange string
	logger   *slog.Logger
}

var _ ports.EventPublisher = (*OrderEventPublisher)(nil)

func NewOrderEventPublisher(client *Client, logger *slog.Logger) (*OrderEventPublisher, error) {
	ch, err := client.channel()
	if err != nil {
		return nil, err
	}
	if err = ch.Confirm(false); err != nil {
		_ = ch.Close()
		return nil, fmt.Errorf("rabbitmq: failed to enable confirms: %w", err)
	}
	return &OrderEventPublisher{
		ch:       ch,
		exchange: client.Exchange(),
		logger:   logger.With("component", "rabbitmq-publisher"),
	}, nil
}

// Publish routes event by its type, e.g. "order.status_changed".
func (p *OrderEventPublisher) Publish(ctx context.Context, event ports.OrderEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	p.mu.Lock()
	defer p.mu.Unlock()

	confirm, err := p.ch.PublishWithDeferredConfirmWithContext(ctx, p.exchange, string(event.Type), false, false,
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			MessageId:    event.OrderID,
			Timestamp:    event.OccurredAt,
			Body:         body,
		},
	)
	if err != nil {
		p.logger.ErrorContext(ctx, "failed to publish order event", "order_id", event.OrderID, "error", err)
		return err
	}

	acked, err := confirm.WaitContext(ctx)
	if err != nil {
		return err
	}
	if !acked {
		return fmt.Errorf("rabbitmq: publish not acknowledged")
	}
	return nil
}

func (p *OrderEventPublisher) Close() error {
	return p.ch.Close()
}
