package tracking

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Status classifies a ledger entry.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// ResignedPending marks a request whose driver resigned; the request is
	// back in the pool and this marker is removed on the next accept.
	ResignedPending

	// Completed marks a finished delivery. Permanent.
	Completed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:         "Unknown",
		ResignedPending: "ResignedPending",
		Completed:       "Completed",
	}
}

// Validate checks if the Status value is valid.
// Used to vet values coming from the database.
func (s Status) Validate() error {
	if s != ResignedPending && s != Completed {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%d is not a valid ledger status", s),
		)
	}
	return nil
}

// String returns the human-readable name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}
