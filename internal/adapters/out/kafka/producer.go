// Package kafka carries order events over Kafka: the publisher announces
// committed order changes, the consumer turns events from any instance into
// coverage refresh triggers.
package kafka

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"logistics/internal/core/ports"

	"github.com/IBM/sarama"
)

const eventTypeHeader = "event-type"

type OrderEventPublisher struct {
	producer sarama.SyncProducer
	topic    string
	logger   *slog.Logger
}

var _ ports.EventPublisher = (*OrderEventPublisher)(nil)

// NewOrderEventPublisher connects a synchronous producer to brokers.
func NewOrderEventPublisher(brokers []string, topic string, logger *slog.Logger) (*OrderEventPublisher, error) {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.Timeout = 5 * time.Second
	config.Producer.RequiredAcks = sarama.WaitForAll
	prod, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, err
	}
	return NewOrderEventPublisherWithProducer(prod, topic, logger), nil
}

func NewOrderEventPublisherWithProducer(producer sarama.SyncProducer, topic string, logger *slog.Logger) *OrderEventPublisher {
	return &OrderEventPublisher{
		producer: producer,
		topic:    topic,
		logger:   logger.With("component", "kafka-publisher"),
	}
}

// Publish sends event keyed by order id, so events of one order stay in one partition.
func (p *OrderEventPublisher) Publish(ctx context.Context, event ports.OrderEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(event.OrderID),
		Value: sarama.ByteEncoder(payload),
		Headers: []sarama.RecordHeader{
			{Key: []byte(eventTypeHeader), Value: []byte(event.Type)},
		},
	}
	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		p.logger.ErrorContext(ctx, "failed to send order event", "topic", p.topic, "order_id", event.OrderID, "error", err)
		return err
	}
	p.logger.DebugContext(ctx, "order event stored",
		"topic", p.topic, "partition", partition, "offset", offset, "type", event.Type)
	return nil
}

func (p *OrderEventPublisher) Close() error {
	return p.producer.Close()
}
