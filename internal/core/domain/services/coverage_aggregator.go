package services

import (
	"slices"
	"strings"

	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/zone"
)

// CoverageInput is everything the aggregator joins. All collections are owned by
// the data store and are read, never modified.
type CoverageInput struct {
	Zones             []zone.Zone
	DriverStatuses    []driver.StatusRecord
	Assignments       []driver.ZoneAssignment
	Inventory         []driver.InventoryRecord
	OutstandingOrders []order.Order
}

// InventoryTotal is the summed quantity of one product across a zone's online drivers.
type InventoryTotal struct {
	ProductID string
	Quantity  int
}

// ZoneCoverage is the operational picture of a single zone.
type ZoneCoverage struct {
	Zone              zone.Zone
	OnlineDrivers     []driver.StatusRecord
	IdleDrivers       []driver.StatusRecord
	Assignments       []driver.ZoneAssignment
	OutstandingOrders []order.Order
	Inventory         []driver.InventoryRecord
	InventoryTotals   []InventoryTotal
}

// Covered reports whether at least one online driver is inside the zone.
func (z ZoneCoverage) Covered() bool {
	return len(z.OnlineDrivers) > 0
}

// CoverageSnapshot is the derived, never persisted, view of all zones at one instant.
type CoverageSnapshot struct {
	Zones []ZoneCoverage

	// UnassignedDrivers are online drivers without a current zone.
	UnassignedDrivers []driver.StatusRecord

	// UnzonedOrders are outstanding orders that resolve to no known zone.
	UnzonedOrders []order.Order

	TotalOnline        int
	ActiveDeliveries   int
	PendingAssignments int
}

// Zone returns the coverage of the zone with the given id.
func (s CoverageSnapshot) Zone(id string) (ZoneCoverage, bool) {
	for _, z := range s.Zones {
		if z.Zone.ID == id {
			return z, true
		}
	}
	return ZoneCoverage{}, false
}

// CoverageAggregator joins zones, drivers and outstanding orders into per-zone coverage.
//
// Business rules:
//   - Only online drivers count. A driver without a current zone is never listed
//     under a zone; it appears in UnassignedDrivers only
//   - Every input zone is present in the output, covered or not, in input order
//   - Only active zone assignments are listed
//   - Inventory of a zone is the inventory carried by that zone's online drivers
//   - An outstanding order belongs to the zone named by its delivery zone id. When
//     that is empty the zone of its assigned driver is used. It is listed under at
//     most one zone
//   - Orders on the road (picked up, in transit) are active deliveries; every
//     other outstanding order is awaiting assignment
//
// Aggregate is a pure projection: each call recomputes everything from its input.
type CoverageAggregator struct{}

// NewCoverageAggregator creates a new CoverageAggregator instance.
func NewCoverageAggregator() CoverageAggregator {
	return CoverageAggregator{}
}

// Aggregate builds a CoverageSnapshot from in.
//
// Parameters:
//   - in: zones, driver statuses, assignments, inventory and outstanding orders.
//     Delivered or cancelled orders passed by mistake are ignored
//
// Returns:
//   - CoverageSnapshot: one ZoneCoverage per input zone plus roll-ups
//
// Example:
//
//	snap := services.NewCoverageAggregator().Aggregate(services.CoverageInput{
//	    Zones:          zones,
//	    DriverStatuses: statuses,
//	})
//	north, _ := snap.Zone("north")
//	fmt.Println(north.Covered(), len(snap.UnassignedDrivers))
func (CoverageAggregator) Aggregate(in CoverageInput) CoverageSnapshot {
	online := make([]driver.StatusRecord, 0, len(in.DriverStatuses))
	driverZone := make(map[string]string, len(in.DriverStatuses))
	for _, d := range in.DriverStatuses {
		if d.HasZone() {
			driverZone[d.DriverID] = *d.CurrentZoneID
		}
		if d.IsOnline {
			online = append(online, d)
		}
	}

	snap := CoverageSnapshot{
		Zones:             make([]ZoneCoverage, 0, len(in.Zones)),
		UnassignedDrivers: []driver.StatusRecord{},
		UnzonedOrders:     []order.Order{},
	}

	index := make(map[string]int, len(in.Zones))
	for _, z := range in.Zones {
		index[z.ID] = len(snap.Zones)
		snap.Zones = append(snap.Zones, ZoneCoverage{
			Zone:              z,
			OnlineDrivers:     []driver.StatusRecord{},
			IdleDrivers:       []driver.StatusRecord{},
			Assignments:       []driver.ZoneAssignment{},
			OutstandingOrders: []order.Order{},
			Inventory:         []driver.InventoryRecord{},
			InventoryTotals:   []InventoryTotal{},
		})
	}

	onlineZone := make(map[string]int, len(online))
	for _, d := range online {
		if !d.HasZone() {
			snap.UnassignedDrivers = append(snap.UnassignedDrivers, d)
			continue
		}
		i, ok := index[*d.CurrentZoneID]
		if !ok {
			continue
		}
		zc := &snap.Zones[i]
		zc.OnlineDrivers = append(zc.OnlineDrivers, d)
		if d.Status == driver.StatusAvailable {
			zc.IdleDrivers = append(zc.IdleDrivers, d)
		}
		onlineZone[d.DriverID] = i
	}

	for _, a := range in.Assignments {
		if !a.Active {
			continue
		}
		if i, ok := index[a.ZoneID]; ok {
			snap.Zones[i].Assignments = append(snap.Zones[i].Assignments, a)
		}
	}

	for _, rec := range in.Inventory {
		if i, ok := onlineZone[rec.DriverID]; ok {
			snap.Zones[i].Inventory = append(snap.Zones[i].Inventory, rec)
		}
	}
	for i := range snap.Zones {
		snap.Zones[i].InventoryTotals = sumInventory(snap.Zones[i].Inventory)
	}

	outstanding := 0
	for _, o := range in.OutstandingOrders {
		if !o.IsOutstanding() {
			continue
		}
		outstanding++
		if o.Status().IsOnTheRoad() {
			snap.ActiveDeliveries++
		}

		i, ok := index[orderZone(o, driverZone)]
		if !ok {
			snap.UnzonedOrders = append(snap.UnzonedOrders, o)
			continue
		}
		snap.Zones[i].OutstandingOrders = append(snap.Zones[i].OutstandingOrders, o)
	}

	for _, zc := range snap.Zones {
		snap.TotalOnline += len(zc.OnlineDrivers)
	}
	snap.PendingAssignments = outstanding - snap.ActiveDeliveries

	return snap
}

// orderZone resolves the zone key of an order: its own delivery zone, else the
// current zone of its assigned driver, else "".
func orderZone(o order.Order, driverZone map[string]string) string {
	d := o.Delivery()
	if z := strings.TrimSpace(d.ZoneID); z != "" {
		return z
	}
	if d.HasDriver() {
		return driverZone[d.DriverID]
	}
	return ""
}

func sumInventory(records []driver.InventoryRecord) []InventoryTotal {
	totals := make(map[string]int, len(records))
	for _, r := range records {
		totals[r.ProductID] += r.Quantity
	}

	out := make([]InventoryTotal, 0, len(totals))
	for product, qty := range totals {
		out = append(out, InventoryTotal{ProductID: product, Quantity: qty})
	}
	slices.SortFunc(out, func(a, b InventoryTotal) int {
		return strings.Compare(a.ProductID, b.ProductID)
	})
	return out
}
