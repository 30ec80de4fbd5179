// Package ports defines the contracts between the dispatch core and its
// infrastructure: repositories, the unit of work, the optional capability
// store read by the coverage orchestrator, event publishing and refresh triggers.
package ports

import (
	"context"

	"logistics/internal/core/domain/model/order"
)

// OrderFilter narrows ListOrders. Zero fields do not filter.
type OrderFilter struct {
	// Statuses keeps only orders in one of the listed statuses.
	Statuses []order.Status

	// OutstandingOnly drops delivered and cancelled orders.
	OutstandingOnly bool

	BusinessID string
	ZoneID     string

	// Limit caps the number of returned orders. 0 means no limit.
	Limit int
}

// OrderRepository defines the persistence contract for order aggregates.
// Orders are values: Update stores the value returned by a lifecycle method.
type OrderRepository interface {
	// Add persists a new order. The id must not exist yet.
	Add(ctx context.Context, o order.Order) error

	// Update replaces the stored state of an existing order, timeline included.
	// Returns ObjectNotFoundError when the order does not exist.
	Update(ctx context.Context, o order.Order) error

	// Get retrieves an order by id.
	// Returns ObjectNotFoundError when the order does not exist.
	Get(ctx context.Context, id string) (order.Order, error)

	// List returns orders matching filter, oldest first.
	//
	// Example:
	//   outstanding, err := repo.List(ctx, ports.OrderFilter{OutstandingOnly: true})
	//   if err != nil {
	//       return fmt.Errorf("failed to list outstanding orders: %w", err)
	//   }
	List(ctx context.Context, filter OrderFilter) ([]order.Order, error)
}
