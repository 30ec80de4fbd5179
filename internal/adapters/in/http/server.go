// Package http exposes the dispatch use cases over the REST API described by
// the embedded OpenAPI document.
package http

import (
	"context"
	"log/slog"

	"logistics/internal/adapters/in/http/servers"
	"logistics/internal/core/application/dispatch"
	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/zone"
	"logistics/internal/core/ports"
)

type (
	CreateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) (commands.CreateOrderResult, error)
	}

	PerformOrderActionHandler interface {
		Handle(ctx context.Context, cmd commands.PerformOrderActionCommand) (order.Order, error)
	}

	TransitionOrderHandler interface {
		Handle(ctx context.Context, cmd commands.TransitionOrderCommand) (order.Order, error)
	}

	UpdateOrderItemsHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateOrderItemsCommand) (order.Order, error)
	}

	SetDriverStatusHandler interface {
		Handle(ctx context.Context, cmd commands.SetDriverStatusCommand) (driver.StatusRecord, error)
	}

	GetCoverageHandler interface {
		Handle(ctx context.Context, query queries.GetCoverageQuery) (dispatch.CoverageResult, error)
	}

	GetOutstandingOrdersHandler interface {
		Handle(ctx context.Context, query queries.GetOutstandingOrdersQuery) ([]queries.OrderSummary, error)
	}

	GetEscalatedOrdersHandler interface {
		Handle(ctx context.Context, query queries.GetEscalatedOrdersQuery) ([]queries.EscalatedOrder, error)
	}

	GetOrderHandler interface {
		Handle(ctx context.Context, query queries.GetOrderQuery) (queries.GetOrderQueryResponse, error)
	}

	// RefreshLoop is the coverage refresh loop as seen by the API.
	RefreshLoop interface {
		ports.RefreshTrigger
		Stats() dispatch.Stats
	}

	// DashboardReader returns the newest refresh the loop delivered.
	DashboardReader interface {
		Latest() (dispatch.Refresh, bool)
	}

	// SetupStore writes the reference data coverage is computed from.
	SetupStore interface {
		SaveZone(ctx context.Context, z zone.Zone) error
		AssignZone(ctx context.Context, a driver.ZoneAssignment) error
		SetInventory(ctx context.Context, rec driver.InventoryRecord) error
	}
)

// Handlers bundles the use cases served by the API.
type Handlers struct {
	// Command handlers
	CreateOrder        CreateOrderHandler
	PerformOrderAction PerformOrderActionHandler
	TransitionOrder    TransitionOrderHandler
	UpdateOrderItems   UpdateOrderItemsHandler
	SetDriverStatus    SetDriverStatusHandler

	// Query handlers
	GetCoverage          GetCoverageHandler
	GetOutstandingOrders GetOutstandingOrdersHandler
	GetEscalatedOrders   GetEscalatedOrdersHandler
	GetOrder             GetOrderHandler

	Loop      RefreshLoop
	Dashboard DashboardReader
	Setup     SetupStore
}

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	h      Handlers
	logger *slog.Logger
}

var _ servers.ServerInterface = (*Server)(nil)

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(h Handlers, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		h:      h,
		logger: logger.With("component", "http-server"),
	}
}
