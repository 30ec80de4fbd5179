package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

// ErrOrderIsNotSubmittable is matched by SubmissionRejectedError.
var ErrOrderIsNotSubmittable = errors.New("order is not submittable")

// SubmissionRejectedError carries the validation result of a rejected order.
// It matches both ErrOrderIsNotSubmittable and errs.ErrValueIsInvalid.
type SubmissionRejectedError struct {
	Result order.ValidationResult
}

func (e *SubmissionRejectedError) Error() string {
	return fmt.Sprintf("%s: %s", ErrOrderIsNotSubmittable, strings.Join(e.Result.Errors, "; "))
}

func (e *SubmissionRejectedError) Unwrap() []error {
	return []error{ErrOrderIsNotSubmittable, errs.ErrValueIsInvalid}
}

// CreateOrderResult is the stored order and the warnings it was accepted with.
type CreateOrderResult struct {
	Order    order.Order
	Warnings []string
}

// CreateOrderCommandHandler handles the business logic for order creation.
// Builds a pending order, computes totals and refuses orders whose
// submission check reports errors. Warnings are returned to the caller.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, kernel.SystemClock{}, notifier)
//	res, err := handler.Handle(ctx, cmd)
//	var rejected *SubmissionRejectedError
//	if errors.As(err, &rejected) {
//	    // show rejected.Result.Errors
//	}
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      kernel.Clock
	notifier   Notifier
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, clock kernel.Clock, notifier Notifier) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
		notifier:   notifier,
	}
}

// Handle validates, stores and announces a new order.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (CreateOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreateOrderResult{}, err
	}

	params := cmd.params()
	params.CreatedAt = h.clock.Now()

	o, err := order.NewOrder(params)
	if err != nil {
		return CreateOrderResult{}, err
	}

	check := o.CheckForSubmission()
	if !check.IsValid {
		return CreateOrderResult{}, &SubmissionRejectedError{Result: check}
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return CreateOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	h.notifier.OrderChanged(ctx, ports.OrderCreated, o)

	return CreateOrderResult{Order: o, Warnings: check.Warnings}, nil
}
