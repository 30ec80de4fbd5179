// Package dispatch keeps the zone coverage picture current. The Orchestrator
// fetches inputs through the capability store, runs the aggregator and funnels
// every refresh request (manual, poll, change events) through one loop in which
// the most recently started computation wins.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/services"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

// DefaultTriggerBuffer bounds the number of queued refresh requests.
const DefaultTriggerBuffer = 16

// CoverageResult is the snapshot plus the flattened lists dashboards render directly.
type CoverageResult struct {
	Snapshot          services.CoverageSnapshot
	UnassignedDrivers []driver.StatusRecord
	OutstandingOrders []order.Order

	// Unsupported lists optional capabilities the store lacks. Their inputs were treated as empty.
	Unsupported []ports.Capability

	ComputedAt time.Time
}

// Refresh is one completed recompute delivered to the dashboard.
type Refresh struct {
	Seq         uint64
	Reason      ports.RefreshReason
	TriggeredAt time.Time
	Result      CoverageResult
	Err         error
}

// Dashboard consumes accepted refreshes. Publish is called from the loop goroutine only.
type Dashboard interface {
	Publish(r Refresh)
}

// Stats counts loop activity.
type Stats struct {
	Triggered uint64
	Dropped   uint64
	Started   uint64
	Delivered uint64
	Discarded uint64
}

type trigger struct {
	reason ports.RefreshReason
	at     time.Time
}

// Orchestrator wraps the CoverageAggregator behind GetCoverage and runs the refresh loop.
type Orchestrator struct {
	caps       ports.Capabilities
	aggregator services.CoverageAggregator
	dashboard  Dashboard
	clock      kernel.Clock
	logger     *slog.Logger

	triggers chan trigger

	triggered atomic.Uint64
	dropped   atomic.Uint64
	started   atomic.Uint64
	delivered atomic.Uint64
	discarded atomic.Uint64
}

// NewOrchestrator creates an orchestrator reading through caps and publishing to dashboard.
//
// Returns:
//   - *Orchestrator: ready for GetCoverage; call Run to process triggers
//   - error: ValueIsRequiredError when dashboard, clock or logger is nil
func NewOrchestrator(caps ports.Capabilities, dashboard Dashboard, clock kernel.Clock, logger *slog.Logger) (*Orchestrator, error) {
	if dashboard == nil {
		return nil, errs.NewValueIsRequiredError("dashboard")
	}
	if clock == nil {
		return nil, errs.NewValueIsRequiredError("clock")
	}
	if logger == nil {
		return nil, errs.NewValueIsRequiredError("logger")
	}
	return &Orchestrator{
		caps:       caps,
		aggregator: services.NewCoverageAggregator(),
		dashboard:  dashboard,
		clock:      clock,
		logger:     logger.With("component", "dispatch-orchestrator"),
		triggers:   make(chan trigger, DefaultTriggerBuffer),
	}, nil
}

// GetCoverage fetches all inputs and aggregates them.
//
// Zones and driver statuses are required: when the store lacks either, the
// returned error wraps errs.ErrCapabilityUnavailable and no snapshot is built.
// Assignments, inventory and orders are optional and degrade to empty inputs
// listed in CoverageResult.Unsupported.
func (o *Orchestrator) GetCoverage(ctx context.Context) (CoverageResult, error) {
	var result CoverageResult

	zones, err := o.caps.ListZones(ctx)
	if err != nil {
		return CoverageResult{}, fmt.Errorf("list zones: %w", err)
	}

	statuses, err := o.caps.ListDriverStatuses(ctx)
	if err != nil {
		return CoverageResult{}, fmt.Errorf("list driver statuses: %w", err)
	}

	assignments, err := o.caps.ListDriverZones(ctx, true)
	if err = o.optional(ctx, &result, ports.CapListDriverZones, err); err != nil {
		return CoverageResult{}, fmt.Errorf("list driver zones: %w", err)
	}

	outstanding, err := o.caps.ListOrders(ctx, ports.OrderFilter{OutstandingOnly: true})
	if err = o.optional(ctx, &result, ports.CapListOrders, err); err != nil {
		return CoverageResult{}, fmt.Errorf("list orders: %w", err)
	}

	onlineIDs := make([]string, 0, len(statuses))
	for _, d := range statuses {
		if d.IsOnline {
			onlineIDs = append(onlineIDs, d.DriverID)
		}
	}

	var inventory []driver.InventoryRecord
	switch {
	case !o.caps.Supports(ports.CapListDriverInventory):
		o.unsupported(ctx, &result, ports.CapListDriverInventory)
	case len(onlineIDs) > 0:
		inventory, err = o.caps.ListDriverInventory(ctx, onlineIDs)
		if err = o.optional(ctx, &result, ports.CapListDriverInventory, err); err != nil {
			return CoverageResult{}, fmt.Errorf("list driver inventory: %w", err)
		}
	}

	snap := o.aggregator.Aggregate(services.CoverageInput{
		Zones:             zones,
		DriverStatuses:    statuses,
		Assignments:       assignments,
		Inventory:         inventory,
		OutstandingOrders: outstanding,
	})

	result.Snapshot = snap
	result.UnassignedDrivers = snap.UnassignedDrivers
	result.OutstandingOrders = flattenOrders(snap)
	result.ComputedAt = o.clock.Now()

	return result, nil
}

// optional swallows a missing optional capability and records it.
func (o *Orchestrator) optional(ctx context.Context, result *CoverageResult, capability ports.Capability, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, errs.ErrCapabilityUnavailable) {
		o.unsupported(ctx, result, capability)
		return nil
	}
	return err
}

func (o *Orchestrator) unsupported(ctx context.Context, result *CoverageResult, capability ports.Capability) {
	result.Unsupported = append(result.Unsupported, capability)
	o.logger.DebugContext(ctx, "optional capability missing", "capability", capability)
}

func flattenOrders(snap services.CoverageSnapshot) []order.Order {
	out := make([]order.Order, 0)
	for _, z := range snap.Zones {
		out = append(out, z.OutstandingOrders...)
	}
	return append(out, snap.UnzonedOrders...)
}

// Trigger queues a recompute. It never blocks: when the queue is full the request
// is dropped, since a queued recompute will fetch fresh inputs anyway.
func (o *Orchestrator) Trigger(reason ports.RefreshReason) {
	o.triggered.Add(1)
	select {
	case o.triggers <- trigger{reason: reason, at: o.clock.Now()}:
	default:
		o.dropped.Add(1)
		o.logger.Warn("refresh queue full, trigger dropped", "reason", reason)
	}
}

// Stats returns a snapshot of the loop counters.
func (o *Orchestrator) Stats() Stats {
	return Stats{
		Triggered: o.triggered.Load(),
		Dropped:   o.dropped.Load(),
		Started:   o.started.Load(),
		Delivered: o.delivered.Load(),
		Discarded: o.discarded.Load(),
	}
}

// Run processes triggers until ctx is done.
//
// Each dequeued trigger starts a recompute and cancels the one in flight.
// Sequence numbers are assigned here, at dequeue, so they follow start order
// no matter how concurrent Trigger calls interleave. A result is handed to the
// dashboard only when no newer recompute started after it; a late result from
// a superseded recompute is discarded, even when its fetches ignored
// cancellation and completed successfully.
func (o *Orchestrator) Run(ctx context.Context) error {
	o.logger.InfoContext(ctx, "dispatch refresh loop started")

	var (
		wg       sync.WaitGroup
		results  = make(chan Refresh)
		latest   uint64
		cancelFn context.CancelFunc = func() {}
	)
	defer func() {
		cancelFn()
		wg.Wait()
		o.logger.Info("dispatch refresh loop stopped")
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case t := <-o.triggers:
			t = o.newestQueued(t)
			cancelFn()

			runCtx, cancel := context.WithCancel(ctx)
			cancelFn = cancel
			latest++
			seq := latest
			o.started.Add(1)

			wg.Add(1)
			go func() {
				defer wg.Done()
				res, err := o.GetCoverage(runCtx)
				r := Refresh{Seq: seq, Reason: t.reason, TriggeredAt: t.at, Result: res, Err: err}
				select {
				case results <- r:
				case <-ctx.Done():
				}
			}()

		case r := <-results:
			if r.Seq < latest || errors.Is(r.Err, context.Canceled) {
				o.discarded.Add(1)
				o.logger.DebugContext(ctx, "stale coverage discarded", "seq", r.Seq, "latest", latest)
				continue
			}
			if r.Err != nil {
				o.logger.ErrorContext(ctx, "coverage refresh failed", "reason", r.Reason, "seq", r.Seq, "error", r.Err)
			}
			o.delivered.Add(1)
			o.dashboard.Publish(r)
		}
	}
}

// newestQueued drains already queued triggers and keeps the last one.
func (o *Orchestrator) newestQueued(t trigger) trigger {
	for {
		select {
		case next := <-o.triggers:
			t = next
		default:
			return t
		}
	}
}
