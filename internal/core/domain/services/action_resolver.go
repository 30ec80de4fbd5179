package services

import (
	"fmt"

	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/role"
	"logistics/internal/pkg/errs"
)

// Action is a user-facing operation offered on an order.
type Action string

const (
	ActionConfirm       Action = "confirm"
	ActionAssignDriver  Action = "assign_driver"
	ActionPickup        Action = "pickup"
	ActionStartDelivery Action = "start_delivery"
	ActionComplete      Action = "complete"
	ActionCancel        Action = "cancel"
)

var actionTargets = map[Action]order.Status{
	ActionConfirm:       order.Confirmed,
	ActionAssignDriver:  order.Assigned,
	ActionPickup:        order.PickedUp,
	ActionStartDelivery: order.InTransit,
	ActionComplete:      order.Delivered,
	ActionCancel:        order.Cancelled,
}

// ParseAction converts a wire name such as "start_delivery" into an Action.
func ParseAction(s string) (Action, error) {
	a := Action(s)
	if _, ok := actionTargets[a]; !ok {
		return "", errs.NewValueIsInvalidErrorWithCause("action", fmt.Errorf("%q is not a known action", s))
	}
	return a, nil
}

// TargetStatus returns the status an order moves to when the action is performed.
// Unknown actions return order.Unknown.
func (a Action) TargetStatus() order.Status {
	return actionTargets[a]
}

func (a Action) String() string {
	return string(a)
}

// actionRule grants one action when its predicate holds for the actor and the order.
type actionRule struct {
	action  Action
	applies func(r role.Role, o order.Order) bool
}

// actionPolicy is evaluated top to bottom. Its order is the order in which
// actions are presented to the user.
var actionPolicy = []actionRule{
	{
		action: ActionCancel,
		applies: func(r role.Role, o order.Order) bool {
			return r.IsManagerClass() && o.CanTransitionTo(order.Cancelled)
		},
	},
	{
		action: ActionAssignDriver,
		applies: func(r role.Role, o order.Order) bool {
			return r.CanDispatch() && o.Status() == order.ReadyForPickup
		},
	},
	{
		action: ActionPickup,
		applies: func(r role.Role, o order.Order) bool {
			return isDriverOf(r, o) && o.Status() == order.Assigned
		},
	},
	{
		action: ActionStartDelivery,
		applies: func(r role.Role, o order.Order) bool {
			return isDriverOf(r, o) && o.Status() == order.PickedUp
		},
	},
	{
		action: ActionComplete,
		applies: func(r role.Role, o order.Order) bool {
			return isDriverOf(r, o) && o.Status() == order.InTransit
		},
	},
	{
		action: ActionConfirm,
		applies: func(r role.Role, o order.Order) bool {
			return r.IsManagerClass() && o.Status() == order.Pending
		},
	},
}

func isDriverOf(r role.Role, o order.Order) bool {
	return r == role.Driver && o.Delivery().HasDriver()
}

// ActionResolver projects the lifecycle onto what a given role may do next.
//
// Business rules:
//   - Terminal orders (delivered, cancelled) offer nothing
//   - Manager-class roles cancel wherever the lifecycle allows it
//   - Manager-class roles and dispatchers assign drivers to orders ready for pickup
//   - Drivers pick up, start and complete orders that carry a driver
//   - Manager-class roles confirm pending orders
//
// The resolver never mutates the order.
type ActionResolver struct{}

// NewActionResolver creates a new ActionResolver instance.
func NewActionResolver() ActionResolver {
	return ActionResolver{}
}

// AvailableActions returns the actions r may perform on o, in presentation order.
//
// Parameters:
//   - o: the order being viewed
//   - r: the role of the viewer
//
// Returns:
//   - []Action: never nil; empty for terminal orders and for roles without rights
//
// Example:
//
//	actions := services.NewActionResolver().AvailableActions(o, role.Dispatcher)
//	// o in ready_for_pickup -> [assign_driver]
func (ActionResolver) AvailableActions(o order.Order, r role.Role) []Action {
	actions := make([]Action, 0, 2)
	if o.Status().IsTerminal() {
		return actions
	}
	for _, rule := range actionPolicy {
		if rule.applies(r, o) {
			actions = append(actions, rule.action)
		}
	}
	return actions
}

// Allows reports whether a is among the actions r may perform on o.
func (res ActionResolver) Allows(o order.Order, r role.Role, a Action) bool {
	for _, available := range res.AvailableActions(o, r) {
		if available == a {
			return true
		}
	}
	return false
}
