package http

import (
	"net/http"

	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/ports"

	"github.com/labstack/echo/v4"
)

// GetCoverage handles GET /api/v1/coverage - computes coverage on demand.
func (s *Server) GetCoverage(ctx echo.Context) error {
	res, err := s.h.GetCoverage.Handle(ctx.Request().Context(), queries.NewGetCoverageQuery())
	if err != nil {
		return s.fail(ctx, err, "Failed to compute coverage")
	}
	return ctx.JSON(http.StatusOK, toCoverage(res))
}

// RefreshCoverage handles POST /api/v1/coverage/refresh. The recompute runs
// on the refresh loop and lands on the dashboard.
func (s *Server) RefreshCoverage(ctx echo.Context) error {
	s.h.Loop.Trigger(ports.RefreshManual)
	return ctx.NoContent(http.StatusAccepted)
}

// GetDashboard handles GET /api/v1/dashboard.
func (s *Server) GetDashboard(ctx echo.Context) error {
	latest, ok := s.h.Dashboard.Latest()
	return ctx.JSON(http.StatusOK, toDashboard(latest, ok, s.h.Loop.Stats()))
}
