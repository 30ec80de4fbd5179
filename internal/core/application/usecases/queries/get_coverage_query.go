package queries

import (
	"context"
	"errors"

	"logistics/internal/core/application/dispatch"
	"logistics/internal/pkg/guard"
)

var (
	ErrGetCoverageQueryIsNotConstructed = errors.New(
		"GetCoverageQuery must be created via NewGetCoverageQuery constructor",
	)
)

// GetCoverageQuery computes the zone coverage picture on demand.
type GetCoverageQuery struct {
	guard guard.ConstructorGuard
}

// NewGetCoverageQuery creates the parameterless coverage query.
func NewGetCoverageQuery() GetCoverageQuery {
	return GetCoverageQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetCoverageQuery) Validate() error {
	return q.guard.Validate(ErrGetCoverageQueryIsNotConstructed)
}

type coverageSource interface {
	GetCoverage(ctx context.Context) (dispatch.CoverageResult, error)
}

// GetCoverageQueryHandler fetches fresh inputs and aggregates them synchronously,
// bypassing the refresh loop.
type GetCoverageQueryHandler struct {
	source coverageSource
}

// NewGetCoverageQueryHandler creates the handler, usually over the dispatch Orchestrator.
func NewGetCoverageQueryHandler(source coverageSource) GetCoverageQueryHandler {
	return GetCoverageQueryHandler{source: source}
}

// Handle returns the coverage result or the store error, which wraps
// errs.ErrCapabilityUnavailable when a required capability is missing.
func (h GetCoverageQueryHandler) Handle(ctx context.Context, query GetCoverageQuery) (dispatch.CoverageResult, error) {
	if err := query.Validate(); err != nil {
		return dispatch.CoverageResult{}, err
	}
	return h.source.GetCoverage(ctx)
}
