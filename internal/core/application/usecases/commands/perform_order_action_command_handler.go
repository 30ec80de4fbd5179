package commands

import (
	"context"
	"fmt"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/role"
	"logistics/internal/core/domain/services"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

// PerformOrderActionCommandHandler loads an order, checks that the action is on
// offer for the role and applies it inside one transaction.
//
// Business rules:
//   - An action the ActionResolver does not offer is refused with InvalidPrecondition
//   - A driver may only act on orders assigned to them
//   - assign_driver goes through Order.AssignDriver, complete attaches the proof of delivery
type PerformOrderActionCommandHandler struct {
	uowFactory OrderUoWFactory
	resolver   services.ActionResolver
	clock      kernel.Clock
	notifier   Notifier
}

// NewPerformOrderActionCommandHandler creates a handler for role actions on orders.
func NewPerformOrderActionCommandHandler(
	uowFactory OrderUoWFactory,
	clock kernel.Clock,
	notifier Notifier,
) PerformOrderActionCommandHandler {
	return PerformOrderActionCommandHandler{
		uowFactory: uowFactory,
		resolver:   services.NewActionResolver(),
		clock:      clock,
		notifier:   notifier,
	}
}

// Handle applies the action and returns the updated order.
func (h PerformOrderActionCommandHandler) Handle(ctx context.Context, cmd PerformOrderActionCommand) (order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return order.Order{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return order.Order{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()

	current, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return order.Order{}, err
	}

	if !h.resolver.Allows(current, cmd.Role(), cmd.Action()) {
		return order.Order{}, errs.NewInvalidPreconditionError(
			cmd.Action().String(),
			fmt.Sprintf("not available to %s while order is %s", cmd.Role(), current.Status()),
		)
	}
	if cmd.Role() == role.Driver && current.Delivery().DriverID != cmd.ActorID() {
		return order.Order{}, errs.NewInvalidPreconditionError(
			cmd.Action().String(),
			"order is assigned to another driver",
		)
	}

	next, err := h.apply(current, cmd)
	if err != nil {
		return order.Order{}, err
	}

	if err = repo.Update(ctx, next); err != nil {
		return order.Order{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return order.Order{}, err
	}

	h.notifier.OrderChanged(ctx, ports.OrderStatusChanged, next)

	return next, nil
}

func (h PerformOrderActionCommandHandler) apply(o order.Order, cmd PerformOrderActionCommand) (order.Order, error) {
	at := h.clock.Now()
	switch cmd.Action() {
	case services.ActionAssignDriver:
		return o.AssignDriver(cmd.driverID, cmd.driverName, cmd.ActorID(), at)
	case services.ActionComplete:
		proof := cmd.proof
		if proof == nil && cmd.notes != "" {
			proof = &order.ProofOfDelivery{Notes: cmd.notes}
		}
		return o.Complete(proof, cmd.ActorID(), at)
	default:
		return o.UpdateStatus(cmd.Action().TargetStatus(), cmd.ActorID(), cmd.notes, at)
	}
}
