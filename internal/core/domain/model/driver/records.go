package driver

import (
	"time"

	"logistics/internal/pkg/errs"
)

// StatusRecord is the live state of one driver.
// CurrentZoneID is nil while the driver is not inside any zone.
type StatusRecord struct {
	DriverID      string
	DriverName    string
	IsOnline      bool
	Status        Status
	CurrentZoneID *string
	UpdatedAt     time.Time
}

// NewStatusRecord validates the driver id and status and copies the zone id.
func NewStatusRecord(driverID string, online bool, status Status, zoneID *string, at time.Time) (StatusRecord, error) {
	if driverID == "" {
		return StatusRecord{}, errs.NewValueIsRequiredError("driver id")
	}
	if err := status.Validate(); err != nil {
		return StatusRecord{}, err
	}

	rec := StatusRecord{
		DriverID:  driverID,
		IsOnline:  online,
		Status:    status,
		UpdatedAt: at,
	}
	if zoneID != nil && *zoneID != "" {
		z := *zoneID
		rec.CurrentZoneID = &z
	}
	return rec, nil
}

// InZone reports whether the driver currently stands in the given zone.
func (r StatusRecord) InZone(zoneID string) bool {
	return r.CurrentZoneID != nil && *r.CurrentZoneID == zoneID
}

// HasZone reports whether the driver is inside any zone.
func (r StatusRecord) HasZone() bool {
	return r.CurrentZoneID != nil
}

// IsIdle reports an online driver ready for a new order.
func (r StatusRecord) IsIdle() bool {
	return r.IsOnline && r.Status == StatusAvailable
}

// ZoneAssignment links a driver to a zone they may work in.
type ZoneAssignment struct {
	DriverID string
	ZoneID   string
	Active   bool
}

// InventoryRecord is the quantity of one product loaded on a driver's vehicle.
type InventoryRecord struct {
	DriverID  string
	ProductID string
	Quantity  int
}
