package commands

import (
	"context"
	"log/slog"

	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"
)

// SetDriverStatusCommandHandler stores a driver status durably, mirrors it into
// the live cache when one is configured and requests a coverage refresh.
// A failed cache write invalidates the cache instead of failing the command.
type SetDriverStatusCommandHandler struct {
	uowFactory DriverUoWFactory
	cache      driverStatusCache
	clock      kernel.Clock
	notifier   Notifier
	logger     *slog.Logger
}

type driverStatusCache interface {
	Save(ctx context.Context, rec driver.StatusRecord) error
	Invalidate(ctx context.Context) error
}

// NewSetDriverStatusCommandHandler creates the handler. cache may be nil.
func NewSetDriverStatusCommandHandler(
	uowFactory DriverUoWFactory,
	cache driverStatusCache,
	clock kernel.Clock,
	notifier Notifier,
	logger *slog.Logger,
) SetDriverStatusCommandHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return SetDriverStatusCommandHandler{
		uowFactory: uowFactory,
		cache:      cache,
		clock:      clock,
		notifier:   notifier,
		logger:     logger.With("component", "set-driver-status"),
	}
}

// Handle returns the stored record.
func (h SetDriverStatusCommandHandler) Handle(ctx context.Context, cmd SetDriverStatusCommand) (driver.StatusRecord, error) {
	if err := cmd.Validate(); err != nil {
		return driver.StatusRecord{}, err
	}

	rec, err := driver.NewStatusRecord(cmd.DriverID(), cmd.Online(), cmd.Status(), cmd.ZoneID(), h.clock.Now())
	if err != nil {
		return driver.StatusRecord{}, err
	}
	rec.DriverName = cmd.driverName

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return driver.StatusRecord{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.DriverRepository().SaveStatus(ctx, rec); err != nil {
		return driver.StatusRecord{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return driver.StatusRecord{}, err
	}

	if h.cache != nil {
		if cacheErr := h.cache.Save(ctx, rec); cacheErr != nil {
			h.logger.WarnContext(ctx, "failed to cache driver status", "driver_id", rec.DriverID, "error", cacheErr)
			// the cache now disagrees with the store; make the next read reload it
			if invErr := h.cache.Invalidate(ctx); invErr != nil {
				h.logger.ErrorContext(ctx, "failed to invalidate driver status cache", "error", invErr)
			}
		}
	}

	h.notifier.DriverChanged()

	return rec, nil
}
