package commands

import (
	"context"
	"log/slog"

	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/ports"
)

// Notifier tells the rest of the system about committed changes: it publishes
// order events and asks the coverage loop to refresh. Both collaborators are
// optional. Failures are logged and never undo the committed change.
type Notifier struct {
	publisher ports.EventPublisher
	trigger   ports.RefreshTrigger
	logger    *slog.Logger
}

// NewNotifier creates a Notifier. publisher and trigger may be nil.
func NewNotifier(publisher ports.EventPublisher, trigger ports.RefreshTrigger, logger *slog.Logger) Notifier {
	if logger == nil {
		logger = slog.Default()
	}
	return Notifier{
		publisher: publisher,
		trigger:   trigger,
		logger:    logger.With("component", "command-notifier"),
	}
}

// OrderChanged publishes an event for o and requests a coverage refresh.
func (n Notifier) OrderChanged(ctx context.Context, eventType ports.OrderEventType, o order.Order) {
	if n.publisher != nil {
		d := o.Delivery()
		event := ports.OrderEvent{
			Type:        eventType,
			OrderID:     o.ID(),
			BusinessID:  o.BusinessID(),
			Status:      o.Status().String(),
			ZoneID:      d.ZoneID,
			DriverID:    d.DriverID,
			PerformedBy: o.UpdatedBy(),
			OccurredAt:  o.UpdatedAt(),
		}
		if err := n.publisher.Publish(ctx, event); err != nil {
			n.logger.ErrorContext(ctx, "failed to publish order event",
				"type", eventType, "order_id", o.ID(), "error", err)
		}
	}
	n.refresh(ports.RefreshOrderChanged)
}

// DriverChanged requests a coverage refresh.
func (n Notifier) DriverChanged() {
	n.refresh(ports.RefreshDriverChanged)
}

func (n Notifier) refresh(reason ports.RefreshReason) {
	if n.trigger != nil {
		n.trigger.Trigger(reason)
	}
}
