package services

import (
	"math"
	"time"

	"logistics/internal/core/domain/model/order"
)

// Escalation thresholds in whole minutes. An order escalates only when its age is
// strictly greater than the threshold.
const (
	UrgentEscalationMinutes  = 15
	HighEscalationMinutes    = 30
	PendingEscalationMinutes = 60
)

// EscalationReason names the rule that flagged an order.
type EscalationReason string

const (
	ReasonUrgentAge  EscalationReason = "urgent_order_age"
	ReasonHighAge    EscalationReason = "high_priority_order_age"
	ReasonPendingAge EscalationReason = "pending_order_age"
)

// EscalationEvaluator decides whether an order has waited too long for its priority.
//
// Business rules:
//   - urgent orders older than 15 minutes escalate
//   - high priority orders older than 30 minutes escalate
//   - orders still pending after 60 minutes escalate regardless of priority
//
// The evaluator is pure: the same order and instant always give the same answer.
type EscalationEvaluator struct{}

// NewEscalationEvaluator creates a new EscalationEvaluator instance.
func NewEscalationEvaluator() EscalationEvaluator {
	return EscalationEvaluator{}
}

// AgeMinutes returns floor((now - createdAt) / 1 minute).
func (EscalationEvaluator) AgeMinutes(o order.Order, now time.Time) int64 {
	return int64(math.Floor(now.Sub(o.CreatedAt()).Minutes()))
}

// ShouldEscalate reports whether any escalation rule fires for o at now.
//
// Example:
//
//	// urgent order created 16 minutes ago
//	services.NewEscalationEvaluator().ShouldEscalate(o, now) // true
//	// created 15 minutes ago
//	services.NewEscalationEvaluator().ShouldEscalate(o, now) // false
func (e EscalationEvaluator) ShouldEscalate(o order.Order, now time.Time) bool {
	return len(e.Reasons(o, now)) > 0
}

// Reasons returns every rule that fires for o at now, in rule order.
func (e EscalationEvaluator) Reasons(o order.Order, now time.Time) []EscalationReason {
	age := e.AgeMinutes(o, now)

	var reasons []EscalationReason
	if o.Priority() == order.PriorityUrgent && age > UrgentEscalationMinutes {
		reasons = append(reasons, ReasonUrgentAge)
	}
	if o.Priority() == order.PriorityHigh && age > HighEscalationMinutes {
		reasons = append(reasons, ReasonHighAge)
	}
	if o.Status() == order.Pending && age > PendingEscalationMinutes {
		reasons = append(reasons, ReasonPendingAge)
	}
	return reasons
}
