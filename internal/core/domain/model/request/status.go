package request

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Status represents the lifecycle state of a delivery request.
// It implements a state machine with defined transitions to ensure
// requests follow the correct business workflow.
//
// State transitions:
//
//	Pending ──> InProgress ──> (completed: removed from the queue)
//	    ^            │
//	    └────────────┘
//	       (resign)
//
// Completion is not a Status value: a completed request leaves the active
// queue and its terminal record is a tracking ledger entry. Status is a
// tagged variant type with no string sentinels; resignation history is
// carried by the ledger instead.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when a request enters the queue, and
	// the status a request returns to when its driver resigns.
	// Pending requests are visible to all drivers.
	Pending

	// InProgress indicates the request has been claimed by a driver.
	InProgress
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Pending:    "Pending",
		InProgress: "InProgress",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "Pending",
		InProgress: "InProgress",
	}
}

// Validate checks if the Status value is valid.
// Valid statuses are Pending and InProgress; Unknown (0) and any other
// values are invalid. Used to vet Status values from external sources
// (e.g., database) before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ValidateAssign checks if the status allows a driver to claim the request
// without performing the transition. Only Pending requests can be claimed;
// a request already InProgress fails, which is exactly what the loser of a
// claim race observes.
func (s Status) ValidateAssign() error {
	if s != Pending {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to assign", s.String()),
		)
	}
	return nil
}

// ValidateCanHaveDriver validates the consistency between request status and
// driver assignment.
//
// Business Rules:
//   - Pending requests must not have a driver assigned
//   - InProgress requests must have a driver assigned
func (s Status) ValidateCanHaveDriver(hasDriver bool) error {
	if hasDriver && s != InProgress {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have a driver", s.String()),
		)
	}

	if !hasDriver && s == InProgress {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no driver", s.String()),
		)
	}

	return nil
}

// Assign transitions the status to InProgress.
//
// Valid transitions:
//   - Pending -> InProgress
//
// Returns (0, error) if the transition is not allowed from the current
// status. Used by DeliveryRequest.Assign to enforce state transitions.
func (s Status) Assign() (Status, error) {
	if err := s.ValidateAssign(); err != nil {
		return 0, err
	}

	return InProgress, nil
}

// Release transitions the status back to Pending.
//
// Valid transitions:
//   - InProgress -> Pending (driver resigned)
//
// Returns (0, error) if the transition is not allowed from the current
// status. Used by DeliveryRequest.Release to enforce state transitions.
func (s Status) Release() (Status, error) {
	if s != InProgress {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to release", s.String()),
		)
	}

	return Pending, nil
}
