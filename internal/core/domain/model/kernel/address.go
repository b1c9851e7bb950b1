package kernel

import (
	"fmt"
	"strings"

	"dispatch/internal/pkg/errs"
)

// ErrAddressIsNotConstructed indicates that an Address was not properly
// initialized through NewAddress.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError(
	"Address must be created via NewAddress",
)

// ServiceAreas lists the city prefixes a dropoff address must belong to.
// Deliveries outside these areas are rejected at intake.
func ServiceAreas() []string {
	return []string{"三鷹市", "武蔵野市"}
}

// Address is a value object that represents a dropoff address.
// An address is valid only when it lies within one of the fixed service
// areas returned by ServiceAreas.
//
// The zero value of Address is invalid and must be constructed via
// NewAddress. Address is immutable and thread-safe.
//
// Example usage:
//
//	addr, err := kernel.NewAddress("三鷹市下連雀1-1-1")
//	if err != nil {
//	    // handle error
//	}
type Address struct {
	value string
}

// NewAddress creates an Address from its string representation.
// Returns an error if the string is empty or lies outside every allowed
// service area.
func NewAddress(value string) (Address, error) {
	if value == "" {
		return Address{}, errs.NewValueIsRequiredError("address")
	}

	for _, area := range ServiceAreas() {
		if strings.Contains(value, area) {
			return Address{value: value}, nil
		}
	}

	return Address{}, errs.NewValueIsInvalidErrorWithCause(
		"address",
		fmt.Errorf("%q is outside the allowed service areas", value),
	)
}

// String returns the address as a string.
func (a Address) String() string {
	return a.value
}

// IsEqual compares two addresses for equality.
func (a Address) IsEqual(other Address) bool {
	return a.value == other.value
}

// Validate checks if the Address is properly constructed.
// Returns ErrAddressIsNotConstructed for the zero value.
func (a Address) Validate() error {
	if a.value == "" {
		return ErrAddressIsNotConstructed
	}
	return nil
}
