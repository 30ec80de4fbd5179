// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return read models shaped for one screen or endpoint.
package queries

import (
	"errors"
	"strings"
	"time"

	"logistics/internal/pkg/guard"
)

var (
	ErrGetOutstandingOrdersQueryIsNotConstructed = errors.New(
		"GetOutstandingOrdersQuery must be created via NewGetOutstandingOrdersQuery constructor",
	)
)

// GetOutstandingOrdersQuery lists orders that are neither delivered nor cancelled.
// Empty filters match every order.
//
// Example:
//
//	query := NewGetOutstandingOrdersQuery("biz-1", "north")
//	handler := NewGetOutstandingOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list outstanding orders: %w", err)
//	}
type GetOutstandingOrdersQuery struct {
	businessID string
	zoneID     string

	guard guard.ConstructorGuard
}

// NewGetOutstandingOrdersQuery creates the query with optional business and zone filters.
func NewGetOutstandingOrdersQuery(businessID, zoneID string) GetOutstandingOrdersQuery {
	return GetOutstandingOrdersQuery{
		businessID: strings.TrimSpace(businessID),
		zoneID:     strings.TrimSpace(zoneID),
		guard:      guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOutstandingOrdersQueryIsNotConstructed if validation fails.
func (q GetOutstandingOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOutstandingOrdersQueryIsNotConstructed)
}

func (q GetOutstandingOrdersQuery) BusinessID() string { return q.businessID }
func (q GetOutstandingOrdersQuery) ZoneID() string     { return q.zoneID }

// OrderSummary is the list row of an order.
type OrderSummary struct {
	ID          string
	OrderNumber string
	Status      string
	Priority    string
	ZoneID      string
	DriverID    string
	DriverName  string
	Total       int64
	CreatedAt   time.Time
}
