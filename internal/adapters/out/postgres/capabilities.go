package postgres

import (
	"context"

	"logistics/internal/adapters/out/postgres/driverrepo"
	"logistics/internal/adapters/out/postgres/orderrepo"
	"logistics/internal/adapters/out/postgres/zonerepo"
	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/zone"
	"logistics/internal/core/ports"

	"gorm.io/gorm"
)

// NewCapabilities fills every slot of the capability store from PostgreSQL.
// Reads run outside any unit of work.
func NewCapabilities(db *gorm.DB) ports.Capabilities {
	zones := zonerepo.NewGormZoneRepository(db)
	drivers := driverrepo.NewGormDriverRepository(db)
	orders := orderrepo.NewGormOrderRepository(db)

	return ports.Capabilities{
		ListZonesFunc:           zones.List,
		ListDriverStatusesFunc:  drivers.ListStatuses,
		ListDriverZonesFunc:     drivers.ListZoneAssignments,
		ListDriverInventoryFunc: drivers.ListInventory,
		ListOrdersFunc:          orders.List,
		GetOrderFunc:            orders.Get,
		CreateOrderFunc:         orders.Add,
		UpdateOrderFunc:         orders.Update,
	}
}

// SetupStore maintains the reference data coverage is computed from:
// zones, driver zone assignments and on-vehicle stock.
type SetupStore struct {
	zones   *zonerepo.GormZoneRepository
	drivers *driverrepo.GormDriverRepository
}

func NewSetupStore(db *gorm.DB) *SetupStore {
	return &SetupStore{
		zones:   zonerepo.NewGormZoneRepository(db),
		drivers: driverrepo.NewGormDriverRepository(db),
	}
}

func (s *SetupStore) SaveZone(ctx context.Context, z zone.Zone) error {
	return s.zones.Save(ctx, z)
}

func (s *SetupStore) AssignZone(ctx context.Context, a driver.ZoneAssignment) error {
	return s.drivers.AssignZone(ctx, a)
}

func (s *SetupStore) SetInventory(ctx context.Context, rec driver.InventoryRecord) error {
	return s.drivers.SetInventory(ctx, rec)
}
