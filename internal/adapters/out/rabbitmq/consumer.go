package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"logistics/internal/core/ports"

	amqp "github.com/rabbitmq/amqp091-go"
)

// orderEventsPattern matches every routing key the publisher uses.
const orderEventsPattern = "order.#"

// OrderEventConsumer reads order events through an exclusive queue, so every
// instance sees every event, and requests a coverage refresh for each.
type OrderEventConsumer struct {
	client   *Client
	trigger  ports.RefreshTrigger
	prefetch int
	logger   *slog.Logger
}

func NewOrderEventConsumer(client *Client, trigger ports.RefreshTrigger, logger *slog.Logger) *OrderEventConsumer {
	return &OrderEventConsumer{
		client:   client,
		trigger:  trigger,
		prefetch: 16,
		logger:   logger.With("component", "rabbitmq-consumer"),
	}
}

// Run consumes until ctx is done or the channel closes.
func (c *OrderEventConsumer) Run(ctx context.Context) error {
	ch, err := c.client.channel()
	if err != nil {
		return err
	}
	defer ch.Close()

	if err = ch.Qos(c.prefetch, 0, false); err != nil {
		return fmt.Errorf("rabbitmq: set QoS (prefetch=%d): %w", c.prefetch, err)
	}

	q, err := ch.QueueDeclare("", false, true, true, false, nil)
	if err != nil {
		return fmt.Errorf("rabbitmq: declare queue: %w", err)
	}
	if err = ch.QueueBind(q.Name, orderEventsPattern, c.client.Exchange(), false, nil); err != nil {
		return fmt.Errorf("rabbitmq: bind queue: %w", err)
	}

	deliveries, err := ch.Consume(q.Name, "", false, true, false, false, nil)
	if err != nil {
		return fmt.Errorf("rabbitmq: consume(%s): %w", q.Name, err)
	}
	chClosed := ch.NotifyClose(make(chan *amqp.Error, 1))

	c.logger.InfoContext(ctx, "consuming order events", "queue", q.Name, "exchange", c.client.Exchange())

	for {
		select {
		case <-ctx.Done():
			return nil

		case cerr := <-chClosed:
			if cerr != nil {
				return fmt.Errorf("rabbitmq: channel closed while consuming: %w", cerr)
			}
			return nil

		case d, ok := <-deliveries:
			if !ok {
				return nil
			}
			if err := c.handle(ctx, d); err != nil {
				c.logger.WarnContext(ctx, "dropping malformed order event", "routing_key", d.RoutingKey, "error", err)
				_ = d.Nack(false, false)
				continue
			}
			_ = d.Ack(false)
		}
	}
}

func (c *OrderEventConsumer) handle(ctx context.Context, d amqp.Delivery) error {
	var event ports.OrderEvent
	if err := json.Unmarshal(d.Body, &event); err != nil {
		return err
	}
	c.logger.DebugContext(ctx, "order event consumed", "type", event.Type, "order_id", event.OrderID)
	c.trigger.Trigger(ports.RefreshOrderChanged)
	return nil
}
