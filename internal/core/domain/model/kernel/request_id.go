package kernel

import (
	"fmt"
	"strconv"

	"dispatch/internal/pkg/errs"
)

// ErrRequestIDIsNotConstructed indicates that a RequestID was not properly
// initialized through NewRequestID.
var ErrRequestIDIsNotConstructed = errs.NewValueIsRequiredError(
	"RequestID must be created via NewRequestID",
)

// RequestID is a value object that represents the opaque integer identifier
// of a delivery request. Identifiers are assigned by the durable store at
// intake; the zero value means "not yet persisted" and is invalid.
//
// RequestID is immutable and thread-safe.
type RequestID struct {
	value int
}

// NewRequestID creates a RequestID from its integer representation.
// Returns an error if the value is not positive.
func NewRequestID(value int) (RequestID, error) {
	if value <= 0 {
		return RequestID{}, errs.NewValueIsInvalidErrorWithCause(
			"requestID",
			fmt.Errorf("%d is not greater than 0", value),
		)
	}

	return RequestID{value: value}, nil
}

// Int returns the identifier as an integer.
func (r RequestID) Int() int {
	return r.value
}

// String returns the decimal representation of the identifier.
func (r RequestID) String() string {
	return strconv.Itoa(r.value)
}

// IsEqual compares two request identifiers for equality.
func (r RequestID) IsEqual(other RequestID) bool {
	return r.value == other.value
}

// Validate checks if the RequestID is properly constructed.
// Returns ErrRequestIDIsNotConstructed for the zero value.
func (r RequestID) Validate() error {
	if r.value == 0 {
		return ErrRequestIDIsNotConstructed
	}
	return nil
}
