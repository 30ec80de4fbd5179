package commands

import (
	"context"
	"fmt"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/role"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

type statusStep struct {
	from order.Status
	to   order.Status
}

// staffSteps lists the direct transitions open to roles outside management.
// Manager-class roles may take any transition the lifecycle allows.
var staffSteps = map[role.Role][]statusStep{
	role.Warehouse: {
		{order.Confirmed, order.Preparing},
		{order.Preparing, order.ReadyForPickup},
	},
	role.Dispatcher: {
		{order.Assigned, order.ReadyForPickup},
		{order.Failed, order.Pending},
	},
	role.Driver: {
		{order.InTransit, order.Failed},
		{order.PickedUp, order.Assigned},
	},
}

// CanTransitionDirectly reports whether r may move an order from one status to
// another through TransitionOrderCommand. Entering Assigned from ReadyForPickup
// needs a driver and is only possible through the assign_driver action.
func CanTransitionDirectly(r role.Role, from, to order.Status) bool {
	if !from.CanTransitionTo(to) {
		return false
	}
	if from == order.ReadyForPickup && to == order.Assigned {
		return false
	}
	if r.IsManagerClass() {
		return true
	}
	for _, step := range staffSteps[r] {
		if step.from == from && step.to == to {
			return true
		}
	}
	return false
}

// TransitionOrderCommandHandler applies a direct status change.
type TransitionOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      kernel.Clock
	notifier   Notifier
}

// NewTransitionOrderCommandHandler creates a handler for direct transitions.
func NewTransitionOrderCommandHandler(uowFactory OrderUoWFactory, clock kernel.Clock, notifier Notifier) TransitionOrderCommandHandler {
	return TransitionOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
		notifier:   notifier,
	}
}

// Handle returns InvalidTransitionError for moves the lifecycle forbids and
// InvalidPreconditionError for moves the role may not make.
func (h TransitionOrderCommandHandler) Handle(ctx context.Context, cmd TransitionOrderCommand) (order.Order, error) {
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

	if !current.CanTransitionTo(cmd.Target()) {
		return order.Order{}, errs.NewInvalidTransitionError(current.Status(), cmd.Target())
	}
	if !CanTransitionDirectly(cmd.Role(), current.Status(), cmd.Target()) {
		return order.Order{}, errs.NewInvalidPreconditionError(
			"transition order",
			fmt.Sprintf("%s may not move an order from %s to %s", cmd.Role(), current.Status(), cmd.Target()),
		)
	}
	if cmd.Role() == role.Driver && current.Delivery().DriverID != cmd.ActorID() {
		return order.Order{}, errs.NewInvalidPreconditionError("transition order", "order is assigned to another driver")
	}

	next, err := current.UpdateStatus(cmd.Target(), cmd.ActorID(), cmd.Notes(), h.clock.Now())
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
