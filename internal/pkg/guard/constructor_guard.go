// Package guard holds the constructor guard shared by domain objects and
// application commands.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate on a zero-value guard when
// the caller does not supply its own error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks a value as built by its constructor. Embed it in a
// struct, set it with NewConstructorGuard inside the constructor and check it
// with Validate before the value is used:
//
//	type CreateMenuItemCommand struct {
//	    name  string
//	    guard guard.ConstructorGuard
//	}
//
//	func (c CreateMenuItemCommand) Validate() error {
//	    return c.guard.Validate(ErrCreateMenuItemCommandIsNotConstructed)
//	}
//
// A zero-value struct carries a zero-value guard and fails validation.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard in the constructed state.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. Otherwise it returns
// validationError, or ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
