package http

import (
	"math"
	"net/http"

	"logistics/internal/adapters/in/http/servers"
	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/zone"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// SetDriverStatus handles PUT /api/v1/drivers/{id}/status.
func (s *Server) SetDriverStatus(ctx echo.Context, id string) error {
	var body servers.SetDriverStatusJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return invalidBody(ctx)
	}

	cmd, err := commands.NewSetDriverStatusCommand(id, body.DriverName, body.IsOnline, string(body.Status), body.CurrentZoneId)
	if err != nil {
		return s.fail(ctx, err, "Invalid driver status")
	}

	rec, err := s.h.SetDriverStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err, "Failed to store driver status")
	}

	return ctx.JSON(http.StatusOK, toDriverStatus(rec))
}

// AssignDriverZone handles PUT /api/v1/drivers/{id}/zones/{zoneId}.
func (s *Server) AssignDriverZone(ctx echo.Context, id string, zoneId string) error {
	var body servers.AssignDriverZoneJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return invalidBody(ctx)
	}

	err := s.h.Setup.AssignZone(ctx.Request().Context(), driver.ZoneAssignment{
		DriverID: id,
		ZoneID:   zoneId,
		Active:   body.Active,
	})
	if err != nil {
		return s.fail(ctx, err, "Failed to store zone assignment")
	}

	s.h.Loop.Trigger(ports.RefreshDriverChanged)
	return ctx.NoContent(http.StatusNoContent)
}

// SetDriverInventory handles PUT /api/v1/drivers/{id}/inventory/{productId}.
func (s *Server) SetDriverInventory(ctx echo.Context, id string, productId string) error {
	var body servers.SetDriverInventoryJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return invalidBody(ctx)
	}
	if body.Quantity < 0 {
		return s.fail(ctx, errs.NewValueIsOutOfRangeError("quantity", body.Quantity, 0, math.MaxInt32), "Invalid inventory")
	}

	err := s.h.Setup.SetInventory(ctx.Request().Context(), driver.InventoryRecord{
		DriverID:  id,
		ProductID: productId,
		Quantity:  body.Quantity,
	})
	if err != nil {
		return s.fail(ctx, err, "Failed to store inventory")
	}

	s.h.Loop.Trigger(ports.RefreshDriverChanged)
	return ctx.NoContent(http.StatusNoContent)
}

// PutZone handles PUT /api/v1/zones/{id}.
func (s *Server) PutZone(ctx echo.Context, id string) error {
	var body servers.PutZoneJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return invalidBody(ctx)
	}

	z, err := zone.NewZone(id, body.Name, deref(body.Description))
	if err != nil {
		return s.fail(ctx, err, "Invalid zone")
	}

	if err = s.h.Setup.SaveZone(ctx.Request().Context(), z); err != nil {
		return s.fail(ctx, err, "Failed to store zone")
	}

	s.h.Loop.Trigger(ports.RefreshManual)
	return ctx.JSON(http.StatusOK, toZone(z))
}
