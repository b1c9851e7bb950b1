// Package guard provides the constructor-guard pattern used by domain
// objects, commands, and queries to detect zero-value instances that were
// not created through their designated constructor functions.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when a nil error is
// passed as the validation error. This ensures validation always fails with
// a meaningful message even if no specific error is provided.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard ensures value objects and entities are only created
// through their designated constructor functions. By embedding a
// ConstructorGuard in a struct you can detect whether the struct was
// properly initialized through its constructor or created as a zero value.
//
// Example usage:
//
//	type Quantity struct {
//	    value int
//	    guard ConstructorGuard
//	}
//
//	func NewQuantity(value int) (Quantity, error) {
//	    if value <= 0 {
//	        return Quantity{}, errors.New("value must be positive")
//	    }
//	    return Quantity{value: value, guard: NewConstructorGuard()}, nil
//	}
//
//	func (q Quantity) Validate() error {
//	    return q.guard.Validate(ErrQuantityIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a ConstructorGuard that marks an object as
// properly constructed. Call it in the constructor of domain objects so
// they can be distinguished from zero-value instances.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate checks whether the guarded object was created through its
// constructor. Returns the provided validationError for zero-value objects,
// or ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
