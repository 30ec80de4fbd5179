// Package role defines the closed set of staff roles that act on orders.
package role

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// Role is a staff role. The zero value Unknown is never a valid actor.
type Role int

const (
	Unknown Role = iota
	SuperAdmin
	Admin
	BusinessOwner
	Manager
	Dispatcher
	Driver
	Warehouse
	Sales
	CustomerService
)

var roleNames = map[Role]string{
	SuperAdmin:      "superadmin",
	Admin:           "admin",
	BusinessOwner:   "business_owner",
	Manager:         "manager",
	Dispatcher:      "dispatcher",
	Driver:          "driver",
	Warehouse:       "warehouse",
	Sales:           "sales",
	CustomerService: "customer_service",
}

// All returns every valid role in declaration order.
func All() []Role {
	return []Role{SuperAdmin, Admin, BusinessOwner, Manager, Dispatcher, Driver, Warehouse, Sales, CustomerService}
}

// Parse converts the wire name of a role ("business_owner") into a Role.
func Parse(s string) (Role, error) {
	for r, name := range roleNames {
		if name == s {
			return r, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a known role", s))
}

// Validate rejects Unknown and out-of-range values.
func (r Role) Validate() error {
	if _, ok := roleNames[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return "unknown"
}

// IsManagerClass reports whether the role manages the business: superadmin,
// admin, business owner or manager.
func (r Role) IsManagerClass() bool {
	switch r {
	case SuperAdmin, Admin, BusinessOwner, Manager:
		return true
	default:
		return false
	}
}

// CanDispatch reports whether the role may hand orders to drivers.
func (r Role) CanDispatch() bool {
	return r.IsManagerClass() || r == Dispatcher
}
