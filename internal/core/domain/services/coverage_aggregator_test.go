package services_test

import (
	"testing"

	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/zone"
	"logistics/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDriver(t *testing.T, id string, online bool, status driver.Status, zoneID string) driver.StatusRecord {
	t.Helper()
	var z *string
	if zoneID != "" {
		z = &zoneID
	}
	rec, err := driver.NewStatusRecord(id, online, status, z, t0)
	require.NoError(t, err)
	return rec
}

func driverIDs(records []driver.StatusRecord) []string {
	ids := make([]string, 0, len(records))
	for _, r := range records {
		ids = append(ids, r.DriverID)
	}
	return ids
}

func orderIDs(orders []order.Order) []string {
	ids := make([]string, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID())
	}
	return ids
}

func TestCoverageAggregator_Aggregate(t *testing.T) {
	aggregator := services.NewCoverageAggregator()
	zoneA := zone.Zone{ID: "A", Name: "North"}
	zoneB := zone.Zone{ID: "B", Name: "South"}

	t.Run("two zones and three online drivers", func(t *testing.T) {
		snap := aggregator.Aggregate(services.CoverageInput{
			Zones: []zone.Zone{zoneA, zoneB},
			DriverStatuses: []driver.StatusRecord{
				newDriver(t, "d1", true, driver.StatusAvailable, "A"),
				newDriver(t, "d2", true, driver.StatusDelivering, "A"),
				newDriver(t, "d3", true, driver.StatusAvailable, ""),
			},
		})

		require.Len(t, snap.Zones, 2)
		assert.Len(t, snap.UnassignedDrivers, 1)
		assert.Equal(t, "d3", snap.UnassignedDrivers[0].DriverID)

		a, ok := snap.Zone("A")
		require.True(t, ok)
		assert.Len(t, a.OnlineDrivers, 2)
		assert.Equal(t, []string{"d1"}, driverIDs(a.IdleDrivers))
		assert.True(t, a.Covered())

		b, ok := snap.Zone("B")
		require.True(t, ok)
		assert.Empty(t, b.OnlineDrivers)
		assert.NotNil(t, b.OnlineDrivers)
		assert.False(t, b.Covered())

		assert.Equal(t, 2, snap.TotalOnline)
	})

	t.Run("offline drivers are ignored", func(t *testing.T) {
		snap := aggregator.Aggregate(services.CoverageInput{
			Zones: []zone.Zone{zoneA},
			DriverStatuses: []driver.StatusRecord{
				newDriver(t, "d1", false, driver.StatusAvailable, "A"),
				newDriver(t, "d2", false, driver.StatusOffShift, ""),
			},
		})

		a, _ := snap.Zone("A")
		assert.Empty(t, a.OnlineDrivers)
		assert.Empty(t, snap.UnassignedDrivers)
		assert.Zero(t, snap.TotalOnline)
	})

	t.Run("zones keep input order", func(t *testing.T) {
		snap := aggregator.Aggregate(services.CoverageInput{Zones: []zone.Zone{zoneB, zoneA}})

		require.Len(t, snap.Zones, 2)
		assert.Equal(t, "B", snap.Zones[0].Zone.ID)
		assert.Equal(t, "A", snap.Zones[1].Zone.ID)
	})

	t.Run("only active assignments are listed", func(t *testing.T) {
		snap := aggregator.Aggregate(services.CoverageInput{
			Zones: []zone.Zone{zoneA, zoneB},
			Assignments: []driver.ZoneAssignment{
				{DriverID: "d1", ZoneID: "A", Active: true},
				{DriverID: "d2", ZoneID: "A", Active: false},
				{DriverID: "d3", ZoneID: "B", Active: true},
				{DriverID: "d4", ZoneID: "Z", Active: true},
			},
		})

		a, _ := snap.Zone("A")
		b, _ := snap.Zone("B")
		assert.Equal(t, []driver.ZoneAssignment{{DriverID: "d1", ZoneID: "A", Active: true}}, a.Assignments)
		assert.Len(t, b.Assignments, 1)
	})

	t.Run("inventory follows online drivers in the zone", func(t *testing.T) {
		snap := aggregator.Aggregate(services.CoverageInput{
			Zones: []zone.Zone{zoneA},
			DriverStatuses: []driver.StatusRecord{
				newDriver(t, "d1", true, driver.StatusAvailable, "A"),
				newDriver(t, "d2", true, driver.StatusDelivering, "A"),
				newDriver(t, "d3", false, driver.StatusAvailable, "A"),
				newDriver(t, "d4", true, driver.StatusAvailable, ""),
			},
			Inventory: []driver.InventoryRecord{
				{DriverID: "d1", ProductID: "water", Quantity: 4},
				{DriverID: "d2", ProductID: "water", Quantity: 6},
				{DriverID: "d2", ProductID: "bread", Quantity: 1},
				{DriverID: "d3", ProductID: "water", Quantity: 100},
				{DriverID: "d4", ProductID: "water", Quantity: 100},
			},
		})

		a, _ := snap.Zone("A")
		assert.Len(t, a.Inventory, 3)
		assert.Equal(t, []services.InventoryTotal{
			{ProductID: "bread", Quantity: 1},
			{ProductID: "water", Quantity: 10},
		}, a.InventoryTotals)
	})

	t.Run("orders join by delivery zone then by driver zone", func(t *testing.T) {
		zoned := newTestOrder(t, withID("o-zoned"), withZone("B"))
		byDriver := moveTo(t, newTestOrder(t, withID("o-driver")), order.Assigned, "d1")
		lost := newTestOrder(t, withID("o-lost"))
		unknownZone := newTestOrder(t, withID("o-unknown"), withZone("Z"))
		// explicit zone wins over the driver zone
		zonedWithDriver := moveTo(t, newTestOrder(t, withID("o-both"), withZone("B")), order.InTransit, "d1")

		snap := aggregator.Aggregate(services.CoverageInput{
			Zones: []zone.Zone{zoneA, zoneB},
			DriverStatuses: []driver.StatusRecord{
				newDriver(t, "d1", true, driver.StatusDelivering, "A"),
			},
			OutstandingOrders: []order.Order{zoned, byDriver, lost, unknownZone, zonedWithDriver},
		})

		a, _ := snap.Zone("A")
		b, _ := snap.Zone("B")
		assert.Equal(t, []string{"o-driver"}, orderIDs(a.OutstandingOrders))
		assert.Equal(t, []string{"o-zoned", "o-both"}, orderIDs(b.OutstandingOrders))
		assert.Equal(t, []string{"o-lost", "o-unknown"}, orderIDs(snap.UnzonedOrders))
	})

	t.Run("roll-ups count deliveries on the road", func(t *testing.T) {
		orders := []order.Order{
			newTestOrder(t, withID("o1"), withZone("A")),
			moveTo(t, newTestOrder(t, withID("o2"), withZone("A")), order.Assigned, "d1"),
			moveTo(t, newTestOrder(t, withID("o3"), withZone("A")), order.PickedUp, "d1"),
			moveTo(t, newTestOrder(t, withID("o4"), withZone("A")), order.InTransit, "d1"),
			moveTo(t, newTestOrder(t, withID("o5"), withZone("A")), order.Delivered, "d1"),
		}

		snap := aggregator.Aggregate(services.CoverageInput{
			Zones:             []zone.Zone{zoneA},
			OutstandingOrders: orders,
		})

		a, _ := snap.Zone("A")
		assert.Len(t, a.OutstandingOrders, 4, "delivered orders are filtered out")
		assert.Equal(t, 2, snap.ActiveDeliveries)
		assert.Equal(t, 2, snap.PendingAssignments)
	})

	t.Run("empty input gives an empty snapshot", func(t *testing.T) {
		snap := aggregator.Aggregate(services.CoverageInput{})

		assert.Empty(t, snap.Zones)
		assert.NotNil(t, snap.UnassignedDrivers)
		assert.Zero(t, snap.TotalOnline)
		assert.Zero(t, snap.PendingAssignments)
	})
}
