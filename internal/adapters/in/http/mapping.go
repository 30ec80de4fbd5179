package http

import (
	"logistics/internal/adapters/in/http/servers"
	"logistics/internal/core/application/dispatch"
	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/zone"
	"logistics/internal/core/domain/services"
	"logistics/internal/pkg/errs"
)

func toOrder(o order.Order) servers.Order {
	d := o.Delivery()
	p := o.Payment()
	return servers.Order{
		BusinessId: o.BusinessID(),
		CreatedAt:  o.CreatedAt(),
		CreatedBy:  o.CreatedBy(),
		Customer:   toCustomer(o.Customer()),
		Delivery: servers.Delivery{
			DeliveredAt: d.DeliveredAt,
			DriverId:    optional(d.DriverID),
			DriverName:  optional(d.DriverName),
			PickedUpAt:  d.PickedUpAt,
			Proof:       toProof(d.Proof),
			ZoneId:      optional(d.ZoneID),
		},
		DeliveryFee: o.DeliveryFee(),
		Discount:    o.Discount(),
		Id:          o.ID(),
		Items:       toItems(o.Items()),
		OrderNumber: o.OrderNumber(),
		Payment: servers.Payment{
			Amount: p.Amount,
			Method: servers.PaymentMethod(p.Method),
			Status: string(p.Status),
		},
		Priority:  servers.Priority(o.Priority()),
		Status:    servers.OrderStatus(o.Status().String()),
		Subtotal:  o.Subtotal(),
		Tax:       o.Tax(),
		Timeline:  toTimeline(o.Timeline()),
		Total:     o.Total(),
		UpdatedAt: o.UpdatedAt(),
		UpdatedBy: o.UpdatedBy(),
	}
}

func toSummary(o order.Order) servers.OrderSummary {
	d := o.Delivery()
	return servers.OrderSummary{
		CreatedAt:   o.CreatedAt(),
		DriverId:    optional(d.DriverID),
		DriverName:  optional(d.DriverName),
		Id:          o.ID(),
		OrderNumber: o.OrderNumber(),
		Priority:    servers.Priority(o.Priority()),
		Status:      servers.OrderStatus(o.Status().String()),
		Total:       o.Total(),
		ZoneId:      optional(d.ZoneID),
	}
}

func toSummaries(orders []order.Order) []servers.OrderSummary {
	out := make([]servers.OrderSummary, len(orders))
	for i, o := range orders {
		out[i] = toSummary(o)
	}
	return out
}

func toCustomer(c order.Customer) servers.Customer {
	address := servers.Address{
		City: optional(c.Address.City()),
		Line: c.Address.Line(),
	}
	if coords := c.Address.Coordinates(); coords != nil {
		lat, lng := coords.Lat(), coords.Lng()
		address.Lat = &lat
		address.Lng = &lng
	}
	return servers.Customer{
		Address: address,
		Name:    c.Name,
		Phone:   c.Phone,
	}
}

// fromCustomer requires lat and lng together.
func fromCustomer(c servers.Customer) (order.Customer, error) {
	var coords *kernel.Coordinates
	switch {
	case c.Address.Lat != nil && c.Address.Lng != nil:
		parsed, err := kernel.NewCoordinates(*c.Address.Lat, *c.Address.Lng)
		if err != nil {
			return order.Customer{}, err
		}
		coords = &parsed
	case c.Address.Lat != nil || c.Address.Lng != nil:
		return order.Customer{}, errs.NewValueIsRequiredError("lat and lng")
	}
	return order.Customer{
		Name:    c.Name,
		Phone:   c.Phone,
		Address: kernel.NewAddress(c.Address.Line, deref(c.Address.City), coords),
	}, nil
}

func toItems(items []order.Item) []servers.Item {
	out := make([]servers.Item, len(items))
	for i, it := range items {
		discount, tax := it.Discount, it.Tax
		out[i] = servers.Item{
			Discount:    &discount,
			ProductId:   it.ProductID,
			ProductName: optional(it.ProductName),
			Quantity:    it.Quantity,
			Tax:         &tax,
			UnitPrice:   it.UnitPrice,
		}
	}
	return out
}

func fromItems(items []servers.Item) []order.Item {
	out := make([]order.Item, len(items))
	for i, it := range items {
		out[i] = order.Item{
			ProductID:   it.ProductId,
			ProductName: deref(it.ProductName),
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Discount:    derefInt(it.Discount),
			Tax:         derefInt(it.Tax),
		}
	}
	return out
}

func toProof(p *order.ProofOfDelivery) *servers.ProofOfDelivery {
	if p == nil {
		return nil
	}
	return &servers.ProofOfDelivery{
		Notes:      optional(p.Notes),
		ReceivedBy: p.ReceivedBy,
		Reference:  optional(p.Reference),
	}
}

func fromProof(p *servers.ProofOfDelivery) *order.ProofOfDelivery {
	if p == nil {
		return nil
	}
	return &order.ProofOfDelivery{
		ReceivedBy: p.ReceivedBy,
		Reference:  deref(p.Reference),
		Notes:      deref(p.Notes),
	}
}

func toTimeline(entries []order.TimelineEntry) []servers.TimelineEntry {
	out := make([]servers.TimelineEntry, len(entries))
	for i, e := range entries {
		out[i] = servers.TimelineEntry{
			Notes:       optional(e.Notes),
			PerformedBy: e.PerformedBy,
			Status:      servers.OrderStatus(e.Status.String()),
			Timestamp:   e.At,
		}
	}
	return out
}

func toActions(actions []services.Action) []servers.Action {
	out := make([]servers.Action, len(actions))
	for i, a := range actions {
		out[i] = servers.Action(a)
	}
	return out
}

func toDriverStatus(rec driver.StatusRecord) servers.DriverStatus {
	return servers.DriverStatus{
		CurrentZoneId: rec.CurrentZoneID,
		DriverId:      rec.DriverID,
		DriverName:    rec.DriverName,
		IsOnline:      rec.IsOnline,
		Status:        servers.DriverState(rec.Status),
		UpdatedAt:     rec.UpdatedAt,
	}
}

func toDriverStatuses(recs []driver.StatusRecord) []servers.DriverStatus {
	out := make([]servers.DriverStatus, len(recs))
	for i, rec := range recs {
		out[i] = toDriverStatus(rec)
	}
	return out
}

func toZone(z zone.Zone) servers.Zone {
	return servers.Zone{
		Description: optional(z.Description),
		Id:          z.ID,
		Name:        z.Name,
	}
}

func toZoneCoverage(zc services.ZoneCoverage) servers.ZoneCoverage {
	assignments := make([]servers.ZoneAssignment, len(zc.Assignments))
	for i, a := range zc.Assignments {
		assignments[i] = servers.ZoneAssignment{Active: a.Active, DriverId: a.DriverID, ZoneId: a.ZoneID}
	}
	inventory := make([]servers.InventoryRecord, len(zc.Inventory))
	for i, rec := range zc.Inventory {
		inventory[i] = servers.InventoryRecord{DriverId: rec.DriverID, ProductId: rec.ProductID, Quantity: rec.Quantity}
	}
	totals := make([]servers.InventoryTotal, len(zc.InventoryTotals))
	for i, t := range zc.InventoryTotals {
		totals[i] = servers.InventoryTotal{ProductId: t.ProductID, Quantity: t.Quantity}
	}
	return servers.ZoneCoverage{
		Assignments:       assignments,
		Covered:           zc.Covered(),
		IdleDrivers:       toDriverStatuses(zc.IdleDrivers),
		Inventory:         inventory,
		InventoryTotals:   totals,
		OnlineDrivers:     toDriverStatuses(zc.OnlineDrivers),
		OutstandingOrders: toSummaries(zc.OutstandingOrders),
		Zone:              toZone(zc.Zone),
	}
}

func toCoverage(res dispatch.CoverageResult) servers.Coverage {
	snap := res.Snapshot
	zones := make([]servers.ZoneCoverage, len(snap.Zones))
	for i, zc := range snap.Zones {
		zones[i] = toZoneCoverage(zc)
	}
	unsupported := make([]string, len(res.Unsupported))
	for i, c := range res.Unsupported {
		unsupported[i] = string(c)
	}
	return servers.Coverage{
		ActiveDeliveries:   snap.ActiveDeliveries,
		ComputedAt:         res.ComputedAt,
		OutstandingOrders:  toSummaries(res.OutstandingOrders),
		PendingAssignments: snap.PendingAssignments,
		TotalOnline:        snap.TotalOnline,
		UnassignedDrivers:  toDriverStatuses(res.UnassignedDrivers),
		UnzonedOrders:      toSummaries(snap.UnzonedOrders),
		Unsupported:        unsupported,
		Zones:              zones,
	}
}

func toDashboard(r dispatch.Refresh, ok bool, stats dispatch.Stats) servers.Dashboard {
	out := servers.Dashboard{
		Ready: ok,
		Stats: servers.RefreshStats{
			Delivered: int64(stats.Delivered),
			Discarded: int64(stats.Discarded),
			Dropped:   int64(stats.Dropped),
			Started:   int64(stats.Started),
			Triggered: int64(stats.Triggered),
		},
	}
	if !ok {
		return out
	}

	seq := int64(r.Seq)
	reason := string(r.Reason)
	triggeredAt := r.TriggeredAt
	out.Seq = &seq
	out.Reason = &reason
	out.TriggeredAt = &triggeredAt

	if r.Err != nil {
		msg := r.Err.Error()
		out.Error = &msg
		return out
	}
	coverage := toCoverage(r.Result)
	out.Coverage = &coverage
	return out
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefInt(v *int64) int64 {
	if v == nil {
		return 0
	}
	return *v
}
