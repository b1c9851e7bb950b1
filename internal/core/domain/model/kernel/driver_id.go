package kernel

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// driverIDLength is the exact length every driver identifier must have.
const driverIDLength = 4

// ErrDriverIDIsNotConstructed indicates that a DriverID was not properly
// initialized through NewDriverID. This error is returned when validating
// a zero-value DriverID.
var ErrDriverIDIsNotConstructed = errs.NewValueIsRequiredError(
	"DriverID must be created via NewDriverID",
)

// DriverID is a value object that represents the opaque driver identifier.
// The identifier format is fixed upstream: exactly four characters. Beyond
// the length check the core treats it as opaque.
//
// The zero value of DriverID is invalid and must be constructed via
// NewDriverID. DriverID is immutable and thread-safe.
//
// Example usage:
//
//	id, err := kernel.NewDriverID("D001")
//	if err != nil {
//	    // handle error
//	}
type DriverID struct {
	value string
}

// NewDriverID creates a DriverID from its string representation.
// Returns an error if the string is empty or not exactly four characters.
func NewDriverID(value string) (DriverID, error) {
	if value == "" {
		return DriverID{}, errs.NewValueIsRequiredError("driverID")
	}
	if len(value) != driverIDLength {
		return DriverID{}, errs.NewValueIsInvalidErrorWithCause(
			"driverID",
			fmt.Errorf("%q is not exactly %d characters", value, driverIDLength),
		)
	}

	return DriverID{value: value}, nil
}

// String returns the identifier as a string.
func (d DriverID) String() string {
	return d.value
}

// IsEqual compares two driver identifiers for equality.
func (d DriverID) IsEqual(other DriverID) bool {
	return d.value == other.value
}

// Validate checks if the DriverID is properly constructed.
// Returns ErrDriverIDIsNotConstructed for the zero value.
func (d DriverID) Validate() error {
	if d.value == "" {
		return ErrDriverIDIsNotConstructed
	}
	return nil
}
