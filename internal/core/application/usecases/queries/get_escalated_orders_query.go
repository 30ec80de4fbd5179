package queries

import (
	"errors"
	"strings"

	"logistics/internal/core/domain/services"
	"logistics/internal/pkg/guard"
)

var (
	ErrGetEscalatedOrdersQueryIsNotConstructed = errors.New(
		"GetEscalatedOrdersQuery must be created via NewGetEscalatedOrdersQuery constructor",
	)
)

// GetEscalatedOrdersQuery finds outstanding orders that waited past their escalation threshold.
type GetEscalatedOrdersQuery struct {
	businessID string

	guard guard.ConstructorGuard
}

// NewGetEscalatedOrdersQuery creates the query. An empty businessID covers every business.
func NewGetEscalatedOrdersQuery(businessID string) GetEscalatedOrdersQuery {
	return GetEscalatedOrdersQuery{
		businessID: strings.TrimSpace(businessID),
		guard:      guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetEscalatedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetEscalatedOrdersQueryIsNotConstructed)
}

func (q GetEscalatedOrdersQuery) BusinessID() string { return q.businessID }

// EscalatedOrder is one order that needs attention and why.
type EscalatedOrder struct {
	ID          string
	OrderNumber string
	Status      string
	Priority    string
	ZoneID      string
	AgeMinutes  int64
	Reasons     []services.EscalationReason
}
