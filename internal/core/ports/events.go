package ports

import (
	"context"
	"time"
)

// OrderEventType names what happened to an order.
type OrderEventType string

const (
	OrderCreated       OrderEventType = "order.created"
	OrderStatusChanged OrderEventType = "order.status_changed"
	OrderItemsChanged  OrderEventType = "order.items_changed"
)

// OrderEvent is published after an order change is committed.
type OrderEvent struct {
	Type        OrderEventType `json:"type"`
	OrderID     string         `json:"orderId"`
	BusinessID  string         `json:"businessId"`
	Status      string         `json:"status"`
	ZoneID      string         `json:"zoneId,omitempty"`
	DriverID    string         `json:"driverId,omitempty"`
	PerformedBy string         `json:"performedBy"`
	OccurredAt  time.Time      `json:"occurredAt"`
}

// EventPublisher delivers order events to other services.
type EventPublisher interface {
	Publish(ctx context.Context, event OrderEvent) error
}

// RefreshReason tells the coverage loop why a recompute was requested.
type RefreshReason string

const (
	RefreshManual        RefreshReason = "manual"
	RefreshPoll          RefreshReason = "poll"
	RefreshOrderChanged  RefreshReason = "order_changed"
	RefreshDriverChanged RefreshReason = "driver_changed"
)

// RefreshTrigger requests a coverage recompute. Trigger never blocks.
type RefreshTrigger interface {
	Trigger(reason RefreshReason)
}
