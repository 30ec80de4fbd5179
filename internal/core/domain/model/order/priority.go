package order

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// Priority is the handling urgency of an order.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityNormal Priority = "normal"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// ParsePriority validates a wire value. An empty string defaults to normal.
func ParsePriority(s string) (Priority, error) {
	if s == "" {
		return PriorityNormal, nil
	}
	p := Priority(s)
	if err := p.Validate(); err != nil {
		return "", err
	}
	return p, nil
}

// Validate rejects values outside the known set.
func (p Priority) Validate() error {
	switch p {
	case PriorityLow, PriorityNormal, PriorityHigh, PriorityUrgent:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("priority", fmt.Errorf("%q is not a valid priority", string(p)))
	}
}

func (p Priority) String() string {
	return string(p)
}
