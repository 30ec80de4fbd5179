package ports

import (
	"context"

	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/zone"
	"logistics/internal/pkg/errs"
)

// Capability names one optional data store operation.
type Capability string

const (
	CapListZones           Capability = "list_zones"
	CapListDriverStatuses  Capability = "list_driver_statuses"
	CapListDriverZones     Capability = "list_driver_zones"
	CapListDriverInventory Capability = "list_driver_inventory"
	CapListOrders          Capability = "list_orders"
	CapGetOrder            Capability = "get_order"
	CapCreateOrder         Capability = "create_order"
	CapUpdateOrder         Capability = "update_order"
)

// AllCapabilities returns every capability in declaration order.
func AllCapabilities() []Capability {
	return []Capability{
		CapListZones, CapListDriverStatuses, CapListDriverZones, CapListDriverInventory,
		CapListOrders, CapGetOrder, CapCreateOrder, CapUpdateOrder,
	}
}

// Capabilities is the data store as seen by dispatch: a fixed set of optional slots.
// A deployment fills the slots it implements and leaves the rest nil.
//
// Callers either check Supports before use or call the method and handle
// errs.ErrCapabilityUnavailable. A nil slot never panics.
//
// Example:
//
//	caps := ports.Capabilities{
//	    ListZonesFunc:          zoneRepo.List,
//	    ListDriverStatusesFunc: driverRepo.ListStatuses,
//	}
//	zones, err := caps.ListZones(ctx)
//	if errors.Is(err, errs.ErrCapabilityUnavailable) {
//	    // show "not supported"
//	}
type Capabilities struct {
	ListZonesFunc           func(ctx context.Context) ([]zone.Zone, error)
	ListDriverStatusesFunc  func(ctx context.Context) ([]driver.StatusRecord, error)
	ListDriverZonesFunc     func(ctx context.Context, activeOnly bool) ([]driver.ZoneAssignment, error)
	ListDriverInventoryFunc func(ctx context.Context, driverIDs []string) ([]driver.InventoryRecord, error)
	ListOrdersFunc          func(ctx context.Context, filter OrderFilter) ([]order.Order, error)
	GetOrderFunc            func(ctx context.Context, id string) (order.Order, error)
	CreateOrderFunc         func(ctx context.Context, o order.Order) error
	UpdateOrderFunc         func(ctx context.Context, o order.Order) error
}

// Supports reports whether the slot for c is filled.
func (c Capabilities) Supports(capability Capability) bool {
	switch capability {
	case CapListZones:
		return c.ListZonesFunc != nil
	case CapListDriverStatuses:
		return c.ListDriverStatusesFunc != nil
	case CapListDriverZones:
		return c.ListDriverZonesFunc != nil
	case CapListDriverInventory:
		return c.ListDriverInventoryFunc != nil
	case CapListOrders:
		return c.ListOrdersFunc != nil
	case CapGetOrder:
		return c.GetOrderFunc != nil
	case CapCreateOrder:
		return c.CreateOrderFunc != nil
	case CapUpdateOrder:
		return c.UpdateOrderFunc != nil
	default:
		return false
	}
}

// Supported returns the filled slots in declaration order.
func (c Capabilities) Supported() []Capability {
	var out []Capability
	for _, capability := range AllCapabilities() {
		if c.Supports(capability) {
			out = append(out, capability)
		}
	}
	return out
}

// Merge returns c with every slot that is filled in overlay replaced by overlay's.
func (c Capabilities) Merge(overlay Capabilities) Capabilities {
	out := c
	if overlay.ListZonesFunc != nil {
		out.ListZonesFunc = overlay.ListZonesFunc
	}
	if overlay.ListDriverStatusesFunc != nil {
		out.ListDriverStatusesFunc = overlay.ListDriverStatusesFunc
	}
	if overlay.ListDriverZonesFunc != nil {
		out.ListDriverZonesFunc = overlay.ListDriverZonesFunc
	}
	if overlay.ListDriverInventoryFunc != nil {
		out.ListDriverInventoryFunc = overlay.ListDriverInventoryFunc
	}
	if overlay.ListOrdersFunc != nil {
		out.ListOrdersFunc = overlay.ListOrdersFunc
	}
	if overlay.GetOrderFunc != nil {
		out.GetOrderFunc = overlay.GetOrderFunc
	}
	if overlay.CreateOrderFunc != nil {
		out.CreateOrderFunc = overlay.CreateOrderFunc
	}
	if overlay.UpdateOrderFunc != nil {
		out.UpdateOrderFunc = overlay.UpdateOrderFunc
	}
	return out
}

func (c Capabilities) ListZones(ctx context.Context) ([]zone.Zone, error) {
	if c.ListZonesFunc == nil {
		return nil, unavailable(CapListZones)
	}
	return c.ListZonesFunc(ctx)
}

func (c Capabilities) ListDriverStatuses(ctx context.Context) ([]driver.StatusRecord, error) {
	if c.ListDriverStatusesFunc == nil {
		return nil, unavailable(CapListDriverStatuses)
	}
	return c.ListDriverStatusesFunc(ctx)
}

func (c Capabilities) ListDriverZones(ctx context.Context, activeOnly bool) ([]driver.ZoneAssignment, error) {
	if c.ListDriverZonesFunc == nil {
		return nil, unavailable(CapListDriverZones)
	}
	return c.ListDriverZonesFunc(ctx, activeOnly)
}

func (c Capabilities) ListDriverInventory(ctx context.Context, driverIDs []string) ([]driver.InventoryRecord, error) {
	if c.ListDriverInventoryFunc == nil {
		return nil, unavailable(CapListDriverInventory)
	}
	return c.ListDriverInventoryFunc(ctx, driverIDs)
}

func (c Capabilities) ListOrders(ctx context.Context, filter OrderFilter) ([]order.Order, error) {
	if c.ListOrdersFunc == nil {
		return nil, unavailable(CapListOrders)
	}
	return c.ListOrdersFunc(ctx, filter)
}

func (c Capabilities) GetOrder(ctx context.Context, id string) (order.Order, error) {
	if c.GetOrderFunc == nil {
		return order.Order{}, unavailable(CapGetOrder)
	}
	return c.GetOrderFunc(ctx, id)
}

func (c Capabilities) CreateOrder(ctx context.Context, o order.Order) error {
	if c.CreateOrderFunc == nil {
		return unavailable(CapCreateOrder)
	}
	return c.CreateOrderFunc(ctx, o)
}

func (c Capabilities) UpdateOrder(ctx context.Context, o order.Order) error {
	if c.UpdateOrderFunc == nil {
		return unavailable(CapUpdateOrder)
	}
	return c.UpdateOrderFunc(ctx, o)
}

func unavailable(capability Capability) error {
	return errs.NewCapabilityUnavailableError(string(capability))
}
