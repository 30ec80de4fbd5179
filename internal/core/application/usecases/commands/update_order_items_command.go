package commands

import (
	"errors"
	"strings"

	"logistics/internal/core/domain/model/order"
	"logistics/internal/pkg/guard"
)

var (
	ErrUpdateOrderItemsCommandIsNotConstructed = errors.New(
		"UpdateOrderItemsCommand must be created via NewUpdateOrderItemsCommand constructor",
	)
)

// Charges are order-level amounts in minor units.
type Charges struct {
	Discount    int64
	Tax         int64
	DeliveryFee int64
}

// UpdateOrderItemsCommand replaces the lines of an order and optionally its charges.
type UpdateOrderItemsCommand struct {
	orderID string
	items   []order.Item
	charges *Charges
	actorID string

	guard guard.ConstructorGuard
}

// NewUpdateOrderItemsCommand creates the command. charges may be nil to keep the current ones.
func NewUpdateOrderItemsCommand(orderID string, items []order.Item, charges *Charges, actorID string) (UpdateOrderItemsCommand, error) {
	c := UpdateOrderItemsCommand{
		orderID: strings.TrimSpace(orderID),
		items:   append([]order.Item(nil), items...),
		actorID: strings.TrimSpace(actorID),
		guard:   guard.NewConstructorGuard(),
	}
	if charges != nil {
		ch := *charges
		c.charges = &ch
	}

	if err := errors.Join(
		requireField("order id", c.orderID),
		requireField("actor id", c.actorID),
	); err != nil {
		return UpdateOrderItemsCommand{}, err
	}
	return c, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderItemsCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderItemsCommandIsNotConstructed)
}

func (c UpdateOrderItemsCommand) OrderID() string { return c.orderID }
func (c UpdateOrderItemsCommand) ActorID() string { return c.actorID }

// Items returns a copy of the new lines.
func (c UpdateOrderItemsCommand) Items() []order.Item {
	return append([]order.Item(nil), c.items...)
}
