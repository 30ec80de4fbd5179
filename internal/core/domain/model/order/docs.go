// Package order provides the order aggregate of the logistics platform and the
// state machine that governs its lifecycle.
//
// The package includes:
//   - Order: an immutable aggregate; every change returns a new Order value
//   - Status: the lifecycle states and the fixed transition table
//   - TimelineEntry: the append-only audit trail of status changes
//   - ValidationResult: advisory submission checks (never returned as an error)
//
// Key business rules:
//   - Only transitions listed in the transition table are legal; Delivered and
//     Cancelled are terminal
//   - Every status change appends exactly one timeline entry
//   - A driver can only be assigned while the order is ReadyForPickup
//   - total = subtotal - discount + tax + deliveryFee, recomputed by CalculateTotals
package order
