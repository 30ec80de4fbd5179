package commands

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/ports"
)

// UpdateOrderItemsCommandHandler replaces items, recomputes totals and stores
// the order when it still passes the submission check.
type UpdateOrderItemsCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      kernel.Clock
	notifier   Notifier
}

// NewUpdateOrderItemsCommandHandler creates a handler for item edits.
func NewUpdateOrderItemsCommandHandler(uowFactory OrderUoWFactory, clock kernel.Clock, notifier Notifier) UpdateOrderItemsCommandHandler {
	return UpdateOrderItemsCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
		notifier:   notifier,
	}
}

// Handle returns the updated order. Orders past Confirmed are refused with InvalidPrecondition.
func (h UpdateOrderItemsCommandHandler) Handle(ctx context.Context, cmd UpdateOrderItemsCommand) (order.Order, error) {
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

	at := h.clock.Now()
	next, err := current.ReplaceItems(cmd.Items(), cmd.ActorID(), at)
	if err != nil {
		return order.Order{}, err
	}
	if cmd.charges != nil {
		next, err = next.AdjustCharges(cmd.charges.Discount, cmd.charges.Tax, cmd.charges.DeliveryFee, cmd.ActorID(), at)
		if err != nil {
			return order.Order{}, err
		}
	}
	next = next.CalculateTotals()

	if check := next.CheckForSubmission(); !check.IsValid {
		return order.Order{}, &SubmissionRejectedError{Result: check}
	}

	if err = repo.Update(ctx, next); err != nil {
		return order.Order{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return order.Order{}, err
	}

	h.notifier.OrderChanged(ctx, ports.OrderItemsChanged, next)

	return next, nil
}
