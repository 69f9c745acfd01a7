// Package guard provides a defensive construction pattern for domain objects.
// Embedding a ConstructorGuard in a struct makes zero-value instances
// detectable, so commands and aggregates can reject values that bypassed
// their constructors.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes
// a nil validation error for an unconstructed object.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as created through its designated
// constructor. The zero value fails Validate, which is the whole point:
// a struct literal that skipped the constructor is detectable.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the owning object as properly
// constructed. Call it inside the object's constructor only.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the owning object was built via its constructor.
// Otherwise it returns validationError, or ErrDefaultConstructorGuard when
// validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
