package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"logistics/internal/core/ports"

	"github.com/IBM/sarama"
)

// OrderEventConsumer joins a consumer group and requests a coverage refresh
// for every order event it reads.
type OrderEventConsumer struct {
	group   sarama.ConsumerGroup
	topics  []string
	handler orderEventHandler
	logger  *slog.Logger
}

func NewOrderEventConsumer(
	brokers []string,
	groupID string,
	topic string,
	trigger ports.RefreshTrigger,
	logger *slog.Logger,
) (*OrderEventConsumer, error) {
	config := sarama.NewConfig()
	config.Consumer.Offsets.Initial = sarama.OffsetNewest
	config.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.NewBalanceStrategyRoundRobin()}

	group, err := sarama.NewConsumerGroup(brokers, groupID, config)
	if err != nil {
		return nil, err
	}

	logger = logger.With("component", "kafka-consumer")
	return &OrderEventConsumer{
		group:   group,
		topics:  []string{topic},
		handler: orderEventHandler{trigger: trigger, logger: logger},
		logger:  logger,
	}, nil
}

// Run consumes until ctx is done, then closes the group.
func (c *OrderEventConsumer) Run(ctx context.Context) error {
	defer func() {
		if err := c.group.Close(); err != nil {
			c.logger.Error("error closing consumer group", "error", err)
		}
	}()

	for {
		if err := c.group.Consume(ctx, c.topics, c.handler); err != nil {
			if errors.Is(err, sarama.ErrClosedConsumerGroup) {
				return nil
			}
			c.logger.ErrorContext(ctx, "error from consumer", "error", err)
			select {
			case <-ctx.Done():
			case <-time.After(time.Second):
			}
		}
		if ctx.Err() != nil {
			return nil
		}
	}
}

type orderEventHandler struct {
	trigger ports.RefreshTrigger
	logger  *slog.Logger
}

func (orderEventHandler) Setup(sarama.ConsumerGroupSession) error   { return nil }
func (orderEventHandler) Cleanup(sarama.ConsumerGroupSession) error { return nil }

func (h orderEventHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for msg := range claim.Messages() {
		h.handle(session.Context(), msg)
		session.MarkMessage(msg, "")
	}
	return nil
}

// handle never fails: a malformed event is logged and skipped.
func (h orderEventHandler) handle(ctx context.Context, msg *sarama.ConsumerMessage) {
	var event ports.OrderEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		h.logger.WarnContext(ctx, "skipping malformed order event",
			"topic", msg.Topic, "partition", msg.Partition, "offset", msg.Offset, "error", err)
		return
	}
	h.logger.DebugContext(ctx, "order event consumed",
		"type", event.Type, "order_id", event.OrderID, "status", event.Status)
	h.trigger.Trigger(ports.RefreshOrderChanged)
}
