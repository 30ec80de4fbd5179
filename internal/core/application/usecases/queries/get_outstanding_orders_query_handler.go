package queries

import (
	"context"
	"database/sql"

	"logistics/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOutstandingOrdersQueryHandler reads order summaries straight from the orders table.
//
// Example:
//
//	handler := NewGetOutstandingOrdersQueryHandler(db)
//	orders, err := handler.Handle(ctx, NewGetOutstandingOrdersQuery("", ""))
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%d orders awaiting delivery\n", len(orders))
type GetOutstandingOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOutstandingOrdersQueryHandler creates a handler for outstanding order queries.
func NewGetOutstandingOrdersQueryHandler(db *gorm.DB) GetOutstandingOrdersQueryHandler {
	return GetOutstandingOrdersQueryHandler{db: db}
}

// Handle returns outstanding orders oldest first. The result is never nil.
func (h GetOutstandingOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOutstandingOrdersQuery,
) ([]OrderSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]OrderSummary, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_number,
			status,
			priority,
			zone_id,
			driver_id,
			driver_name,
			total,
			created_at
		FROM orders
		WHERE status NOT IN (?, ?)
			AND (CAST(? AS TEXT) = '' OR business_id = ?)
			AND (CAST(? AS TEXT) = '' OR zone_id = ?)
		ORDER BY created_at, id
	`,
		order.Delivered.String(), order.Cancelled.String(),
		query.BusinessID(), query.BusinessID(),
		query.ZoneID(), query.ZoneID(),
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var summary OrderSummary
		var id uuid.UUID
		var zoneID, driverID sql.NullString

		err = rows.Scan(
			&id,
			&summary.OrderNumber,
			&summary.Status,
			&summary.Priority,
			&zoneID,
			&driverID,
			&summary.DriverName,
			&summary.Total,
			&summary.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		summary.ID = id.String()
		summary.ZoneID = zoneID.String
		summary.DriverID = driverID.String
		summary.CreatedAt = summary.CreatedAt.UTC()
		orders = append(orders, summary)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
