package services_test

import (
	"testing"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

const (
	second = time.Second
	minute = time.Minute
)

var t0 = time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)

type orderOption func(*order.NewOrderParams)

func withPriority(p order.Priority) orderOption {
	return func(op *order.NewOrderParams) { op.Priority = p }
}

func withZone(zoneID string) orderOption {
	return func(op *order.NewOrderParams) { op.ZoneID = zoneID }
}

func withID(id string) orderOption {
	return func(op *order.NewOrderParams) { op.ID = id }
}

func newTestOrder(t *testing.T, opts ...orderOption) order.Order {
	t.Helper()
	p := order.NewOrderParams{
		ID:         "order-1",
		BusinessID: "biz-1",
		Customer: order.Customer{
			Name:    "Yael",
			Phone:   "050",
			Address: kernel.NewAddress("5 Hanamal", "Haifa", nil),
		},
		Items:     []order.Item{{ProductID: "gas-12kg", Quantity: 1, UnitPrice: 9000}},
		CreatedBy: "manager-1",
		CreatedAt: t0,
	}
	for _, opt := range opts {
		opt(&p)
	}
	o, err := order.NewOrder(p)
	require.NoError(t, err)
	return o
}

// moveTo drives o along the happy path until it reaches target.
// Assigned is reached through AssignDriver with driverID.
func moveTo(t *testing.T, o order.Order, target order.Status, driverID string) order.Order {
	t.Helper()
	path := []order.Status{
		order.Confirmed, order.Preparing, order.ReadyForPickup,
		order.Assigned, order.PickedUp, order.InTransit, order.Delivered,
	}
	at := o.UpdatedAt()
	for _, st := range path {
		if o.Status() == target {
			return o
		}
		at = at.Add(time.Minute)
		var err error
		if st == order.Assigned {
			o, err = o.AssignDriver(driverID, "Driver "+driverID, "dispatcher-1", at)
		} else {
			o, err = o.UpdateStatus(st, "staff-1", "", at)
		}
		require.NoError(t, err)
	}
	require.Equal(t, target, o.Status())
	return o
}
