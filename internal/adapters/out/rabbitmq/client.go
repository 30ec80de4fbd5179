// Package rabbitmq is the RabbitMQ event bus: order events are published to a
// durable topic exchange keyed by event type, and every instance consumes them
// through its own queue to refresh coverage.
package rabbitmq

import (
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Client owns one AMQP connection and the exchange order events travel on.
type Client struct {
	conn     *amqp.Connection
	exchange string
}

// Dial connects to url and declares exchange as a durable topic exchange.
func Dial(url, exchange string) (*Client, error) {
	conn, err := amqp.DialConfig(url, amqp.Config{
		Heartbeat: 10 * time.Second,
		Locale:    "en_US",
		Dial:      amqp.DefaultDial(30 * time.Second),
	})
	if err != nil {
		return nil, fmt.Errorf("rabbitmq dial failed: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("rabbitmq: failed to open channel: %w", err)
	}
	defer ch.Close()

	if err = ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("rabbitmq: declare exchange %s: %w", exchange, err)
	}

	return &Client{conn: conn, exchange: exchange}, nil
}

func (c *Client) Exchange() string {
	return c.exchange
}

func (c *Client) channel() (*amqp.Channel, error) {
	if c.conn == nil || c.conn.IsClosed() {
		return nil, fmt.Errorf("rabbitmq: connection is not open")
	}
	return c.conn.Channel()
}

func (c *Client) Close() error {
	if c.conn == nil || c.conn.IsClosed() {
		return nil
	}
	return c.conn.Close()
}
