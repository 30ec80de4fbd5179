// Package guard provides ConstructorGuard, a marker embedded in value objects,
// commands and queries so that zero values created without their constructor
// can be detected and rejected.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as built through its constructor.
//
// Example:
//
//	type AssignDriverCommand struct {
//	    orderID string
//	    guard   guard.ConstructorGuard
//	}
//
//	func (c AssignDriverCommand) Validate() error {
//	    return c.guard.Validate(ErrAssignDriverCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard that passes validation.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
