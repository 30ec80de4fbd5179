package commands

import (
	"errors"
	"strings"

	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/role"
	"logistics/internal/core/domain/services"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var (
	ErrPerformOrderActionCommandIsNotConstructed = errors.New(
		"PerformOrderActionCommand must be created via NewPerformOrderActionCommand constructor",
	)
)

// PerformOrderActionParams is the raw input of an action request.
type PerformOrderActionParams struct {
	OrderID string
	Role    string
	Action  string
	ActorID string
	Notes   string

	// DriverID and DriverName are required for assign_driver.
	DriverID   string
	DriverName string

	// Proof is attached by complete.
	Proof *order.ProofOfDelivery
}

// PerformOrderActionCommand applies one of the actions the resolver offers to a role.
//
// Example:
//
//	cmd, err := NewPerformOrderActionCommand(PerformOrderActionParams{
//	    OrderID:    id,
//	    Role:       "dispatcher",
//	    Action:     "assign_driver",
//	    ActorID:    "dispatcher-3",
//	    DriverID:   "D1",
//	    DriverName: "Avi",
//	})
type PerformOrderActionCommand struct {
	orderID    string
	role       role.Role
	action     services.Action
	actorID    string
	notes      string
	driverID   string
	driverName string
	proof      *order.ProofOfDelivery

	guard guard.ConstructorGuard
}

// NewPerformOrderActionCommand parses the role and the action and checks the
// fields the action needs.
func NewPerformOrderActionCommand(p PerformOrderActionParams) (PerformOrderActionCommand, error) {
	c := PerformOrderActionCommand{
		orderID:    strings.TrimSpace(p.OrderID),
		actorID:    strings.TrimSpace(p.ActorID),
		notes:      p.Notes,
		driverID:   strings.TrimSpace(p.DriverID),
		driverName: strings.TrimSpace(p.DriverName),
		guard:      guard.NewConstructorGuard(),
	}
	if p.Proof != nil {
		proof := *p.Proof
		c.proof = &proof
	}

	r, roleErr := role.Parse(p.Role)
	a, actionErr := services.ParseAction(p.Action)
	c.role, c.action = r, a

	var driverErr error
	if a == services.ActionAssignDriver && c.driverID == "" {
		driverErr = errs.NewValueIsRequiredError("driver id")
	}

	if err := errors.Join(
		requireField("order id", c.orderID),
		requireField("actor id", c.actorID),
		roleErr,
		actionErr,
		driverErr,
	); err != nil {
		return PerformOrderActionCommand{}, err
	}

	return c, nil
}

// Validate ensures the command was created through the constructor.
func (c PerformOrderActionCommand) Validate() error {
	return c.guard.Validate(ErrPerformOrderActionCommandIsNotConstructed)
}

func (c PerformOrderActionCommand) OrderID() string         { return c.orderID }
func (c PerformOrderActionCommand) Role() role.Role         { return c.role }
func (c PerformOrderActionCommand) Action() services.Action { return c.action }
func (c PerformOrderActionCommand) ActorID() string         { return c.actorID }

func requireField(name, value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(name)
	}
	return nil
}
