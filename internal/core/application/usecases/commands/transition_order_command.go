package commands

import (
	"errors"
	"strings"

	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/role"
	"logistics/internal/pkg/guard"
)

var (
	ErrTransitionOrderCommandIsNotConstructed = errors.New(
		"TransitionOrderCommand must be created via NewTransitionOrderCommand constructor",
	)
)

// TransitionOrderCommand moves an order to a status directly. It covers the
// staff steps that are not user-facing actions: preparing, ready for pickup,
// unassigning a driver and retrying a failed delivery.
type TransitionOrderCommand struct {
	orderID string
	role    role.Role
	target  order.Status
	actorID string
	notes   string

	guard guard.ConstructorGuard
}

// NewTransitionOrderCommand parses role and target status.
func NewTransitionOrderCommand(orderID, roleName, target, actorID, notes string) (TransitionOrderCommand, error) {
	c := TransitionOrderCommand{
		orderID: strings.TrimSpace(orderID),
		actorID: strings.TrimSpace(actorID),
		notes:   notes,
		guard:   guard.NewConstructorGuard(),
	}

	r, roleErr := role.Parse(roleName)
	st, statusErr := order.ParseStatus(target)
	c.role, c.target = r, st

	if err := errors.Join(
		requireField("order id", c.orderID),
		requireField("actor id", c.actorID),
		roleErr,
		statusErr,
	); err != nil {
		return TransitionOrderCommand{}, err
	}
	return c, nil
}

// Validate ensures the command was created through the constructor.
func (c TransitionOrderCommand) Validate() error {
	return c.guard.Validate(ErrTransitionOrderCommandIsNotConstructed)
}

func (c TransitionOrderCommand) OrderID() string      { return c.orderID }
func (c TransitionOrderCommand) Role() role.Role      { return c.role }
func (c TransitionOrderCommand) Target() order.Status { return c.target }
func (c TransitionOrderCommand) ActorID() string      { return c.actorID }
func (c TransitionOrderCommand) Notes() string        { return c.notes }
