package queries

import (
	"context"
	"database/sql"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/services"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetEscalatedOrdersQueryHandler loads the fields escalation depends on and runs
// the EscalationEvaluator over them at the clock's current time.
type GetEscalatedOrdersQueryHandler struct {
	db        *gorm.DB
	clock     kernel.Clock
	evaluator services.EscalationEvaluator
}

// NewGetEscalatedOrdersQueryHandler creates the handler.
func NewGetEscalatedOrdersQueryHandler(db *gorm.DB, clock kernel.Clock) GetEscalatedOrdersQueryHandler {
	return GetEscalatedOrdersQueryHandler{
		db:        db,
		clock:     clock,
		evaluator: services.NewEscalationEvaluator(),
	}
}

// Handle returns escalated orders oldest first. The result is never nil.
func (h GetEscalatedOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetEscalatedOrdersQuery,
) ([]EscalatedOrder, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	now := h.clock.Now()
	escalated := make([]EscalatedOrder, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_number,
			status,
			priority,
			zone_id,
			created_at
		FROM orders
		WHERE status NOT IN (?, ?)
			AND (CAST(? AS TEXT) = '' OR business_id = ?)
		ORDER BY created_at, id
	`,
		order.Delivered.String(), order.Cancelled.String(),
		query.BusinessID(), query.BusinessID(),
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id          uuid.UUID
			orderNumber string
			status      string
			priority    string
			zoneID      sql.NullString
			createdAt   time.Time
		)
		if err = rows.Scan(&id, &orderNumber, &status, &priority, &zoneID, &createdAt); err != nil {
			return nil, err
		}

		st, parseErr := order.ParseStatus(status)
		if parseErr != nil {
			return nil, parseErr
		}
		o, restoreErr := order.Restore(order.RestoreParams{
			ID:          id.String(),
			OrderNumber: orderNumber,
			Status:      st,
			Priority:    order.Priority(priority),
			Delivery:    order.Delivery{ZoneID: zoneID.String},
			CreatedAt:   createdAt.UTC(),
		})
		if restoreErr != nil {
			return nil, restoreErr
		}

		if !h.evaluator.ShouldEscalate(o, now) {
			continue
		}
		escalated = append(escalated, EscalatedOrder{
			ID:          o.ID(),
			OrderNumber: o.OrderNumber(),
			Status:      o.Status().String(),
			Priority:    string(o.Priority()),
			ZoneID:      zoneID.String,
			AgeMinutes:  h.evaluator.AgeMinutes(o, now),
			Reasons:     h.evaluator.Reasons(o, now),
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return escalated, nil
}
