package ports

import (
	"context"

	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/zone"
)

// ZoneRepository reads the configured delivery zones.
type ZoneRepository interface {
	// List returns every zone ordered by name.
	List(ctx context.Context) ([]zone.Zone, error)
}

// DriverRepository reads and writes the driver-side records dispatch works with.
type DriverRepository interface {
	// ListStatuses returns the latest status of every known driver.
	ListStatuses(ctx context.Context) ([]driver.StatusRecord, error)

	// SaveStatus inserts or replaces the status of one driver.
	SaveStatus(ctx context.Context, rec driver.StatusRecord) error

	// ListZoneAssignments returns driver to zone links, only active ones when activeOnly is set.
	ListZoneAssignments(ctx context.Context, activeOnly bool) ([]driver.ZoneAssignment, error)

	// ListInventory returns on-vehicle stock. An empty driverIDs returns stock of every driver.
	ListInventory(ctx context.Context, driverIDs []string) ([]driver.InventoryRecord, error)
}

// DriverStatusCache holds live driver statuses next to the durable store.
// It is optional; writes to it are best effort. Invalidate forces the next
// read to reload from the durable store.
type DriverStatusCache interface {
	Save(ctx context.Context, rec driver.StatusRecord) error
	List(ctx context.Context) ([]driver.StatusRecord, error)
	Invalidate(ctx context.Context) error
}
