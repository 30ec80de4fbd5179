package order

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	Pending ──> Confirmed ──> Preparing ──> ReadyForPickup ──> Assigned ──> PickedUp ──> InTransit ──> Delivered
//	                                              ^                │  ^           │            │
//	                                              └── (unassign) ──┘  └─(handback)┘            └──> Failed ──> Pending
//
// Every state before PickedUp may also move to Cancelled. Delivered and
// Cancelled are terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota
	Pending
	Confirmed
	Preparing
	ReadyForPickup
	Assigned
	PickedUp
	InTransit
	Delivered
	Cancelled
	Failed
)

var statusNames = map[Status]string{
	Pending:        "pending",
	Confirmed:      "confirmed",
	Preparing:      "preparing",
	ReadyForPickup: "ready_for_pickup",
	Assigned:       "assigned",
	PickedUp:       "picked_up",
	InTransit:      "in_transit",
	Delivered:      "delivered",
	Cancelled:      "cancelled",
	Failed:         "failed",
}

// transitions is the complete lifecycle table. A status missing from the map has no outgoing transitions.
var transitions = map[Status][]Status{
	Pending:        {Confirmed, Cancelled},
	Confirmed:      {Preparing, Cancelled},
	Preparing:      {ReadyForPickup, Cancelled},
	ReadyForPickup: {Assigned, Cancelled},
	Assigned:       {PickedUp, ReadyForPickup, Cancelled},
	PickedUp:       {InTransit, Assigned},
	InTransit:      {Delivered, Failed},
	Failed:         {Pending},
}

// AllStatuses returns every valid status in lifecycle order.
func AllStatuses() []Status {
	return []Status{Pending, Confirmed, Preparing, ReadyForPickup, Assigned, PickedUp, InTransit, Delivered, Cancelled, Failed}
}

// ParseStatus converts a wire name such as "ready_for_pickup" into a Status.
func ParseStatus(s string) (Status, error) {
	for st, name := range statusNames {
		if name == s {
			return st, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
//
// Returns:
//   - nil if the status is valid
//   - ValueIsInvalidError if the status is Unknown or out of range
func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status, or "unknown".
func (s Status) String() string {
	if str, ok := statusNames[s]; ok {
		return str
	}
	return "unknown"
}

// AllowedTargets returns a copy of the statuses reachable from s in one step.
// Terminal and invalid statuses return an empty slice.
func (s Status) AllowedTargets() []Status {
	targets := transitions[s]
	out := make([]Status, len(targets))
	copy(out, targets)
	return out
}

// CanTransitionTo reports whether target is in the transition table for s.
// It is a pure lookup and never errors.
func (s Status) CanTransitionTo(target Status) bool {
	for _, t := range transitions[s] {
		if t == target {
			return true
		}
	}
	return false
}

// IsTerminal reports Delivered and Cancelled.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// IsOutstanding reports a valid, non-terminal status.
func (s Status) IsOutstanding() bool {
	return s.Validate() == nil && !s.IsTerminal()
}

// IsOnTheRoad reports statuses in which the goods are with the driver.
func (s Status) IsOnTheRoad() bool {
	return s == PickedUp || s == InTransit
}
