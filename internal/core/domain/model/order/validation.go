package order

import (
	"fmt"
	"strings"
)

// ValidationResult reports whether an order is complete enough to submit.
// It is a value, not an error: Errors block submission, Warnings do not.
type ValidationResult struct {
	IsValid  bool
	Errors   []string
	Warnings []string
}

// CheckForSubmission inspects customer, items and charges.
//
// Errors:
//   - missing customer name or address
//   - no items, an item with quantity <= 0 or a negative unit price
//   - a negative discount, tax or delivery fee
//   - a negative total
//
// Warnings:
//   - missing customer phone
//   - address without coordinates
//   - order discount larger than the items subtotal
//   - urgent order without a delivery zone
func (o Order) CheckForSubmission() ValidationResult {
	var res ValidationResult

	if strings.TrimSpace(o.customer.Name) == "" {
		res.Errors = append(res.Errors, "customer name is required")
	}
	if o.customer.Address.IsEmpty() {
		res.Errors = append(res.Errors, "customer address is required")
	}
	if strings.TrimSpace(o.customer.Phone) == "" {
		res.Warnings = append(res.Warnings, "customer phone is missing")
	}
	if !o.customer.Address.IsEmpty() && o.customer.Address.Coordinates() == nil {
		res.Warnings = append(res.Warnings, "customer address has no coordinates")
	}

	if len(o.items) == 0 {
		res.Errors = append(res.Errors, "order must contain at least one item")
	}
	for i, item := range o.items {
		if item.Quantity <= 0 {
			res.Errors = append(res.Errors, fmt.Sprintf("item %d: quantity must be positive", i+1))
		}
		if item.UnitPrice < 0 {
			res.Errors = append(res.Errors, fmt.Sprintf("item %d: unit price must not be negative", i+1))
		}
	}

	if o.discount < 0 {
		res.Errors = append(res.Errors, "discount must not be negative")
	}
	if o.tax < 0 {
		res.Errors = append(res.Errors, "tax must not be negative")
	}
	if o.deliveryFee < 0 {
		res.Errors = append(res.Errors, "delivery fee must not be negative")
	}
	if o.total < 0 {
		res.Errors = append(res.Errors, "total must not be negative")
	}
	if o.discount > o.subtotal && o.subtotal > 0 {
		res.Warnings = append(res.Warnings, "discount exceeds items subtotal")
	}

	if o.priority == PriorityUrgent && o.delivery.ZoneID == "" {
		res.Warnings = append(res.Warnings, "urgent order has no delivery zone")
	}

	res.IsValid = len(res.Errors) == 0
	return res
}
