package tracking

import (
	"errors"
	"fmt"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

// Domain errors for ledger entry operations.
var (
	// ErrEntryIsNotConstructed is returned when a LedgerEntry instance was not
	// created through one of the constructor functions.
	ErrEntryIsNotConstructed = errors.New(
		"LedgerEntry must be created via NewResignedEntry, NewCompletedEntry or RestoreLedgerEntry",
	)
	// ErrOrderedAtIsRequired is returned when the original intake timestamp
	// is missing.
	ErrOrderedAtIsRequired = errs.NewValueIsRequiredError("orderedAt")
	// ErrCompletedAtIsRequired is returned when a completed entry lacks its
	// completion timestamp.
	ErrCompletedAtIsRequired = errs.NewValueIsRequiredError("completedAt")
)

// LedgerEntry is one record in the tracking ledger. It snapshots the
// request's dropoff, quantity and intake time at the moment the event
// happened, so the ledger stays meaningful after the request row is gone.
type LedgerEntry struct {
	// id is the entry's own identity
	id kernel.UUID

	// requestID identifies the delivery request the entry refers to
	requestID kernel.RequestID

	// driverID is the driver who resigned or completed
	driverID kernel.DriverID

	// dropoff is the request's destination at the time of the event
	dropoff kernel.Address

	// quantity is the request's stock cost at the time of the event
	quantity int

	// status distinguishes resignation markers from completion records
	status Status

	// orderedAt is the request's original intake timestamp
	orderedAt time.Time

	// completedAt is set only on Completed entries
	completedAt *time.Time

	// isConstructed ensures the entry was created via a constructor
	isConstructed bool
}

// NewResignedEntry creates a reclaimable marker for a request whose driver
// just resigned.
func NewResignedEntry(
	requestID kernel.RequestID,
	driverID kernel.DriverID,
	dropoff kernel.Address,
	quantity int,
	orderedAt time.Time,
) (*LedgerEntry, error) {
	return newEntry(kernel.NewUUID(), requestID, driverID, dropoff, quantity, ResignedPending, orderedAt, nil)
}

// NewCompletedEntry creates the permanent record of a finished delivery.
func NewCompletedEntry(
	requestID kernel.RequestID,
	driverID kernel.DriverID,
	dropoff kernel.Address,
	quantity int,
	orderedAt time.Time,
	completedAt time.Time,
) (*LedgerEntry, error) {
	return newEntry(kernel.NewUUID(), requestID, driverID, dropoff, quantity, Completed, orderedAt, &completedAt)
}

// RestoreLedgerEntry reconstructs a LedgerEntry from persistent storage.
func RestoreLedgerEntry(
	id kernel.UUID,
	requestID kernel.RequestID,
	driverID kernel.DriverID,
	dropoff kernel.Address,
	quantity int,
	status Status,
	orderedAt time.Time,
	completedAt *time.Time,
) (*LedgerEntry, error) {
	return newEntry(id, requestID, driverID, dropoff, quantity, status, orderedAt, completedAt)
}

func newEntry(
	id kernel.UUID,
	requestID kernel.RequestID,
	driverID kernel.DriverID,
	dropoff kernel.Address,
	quantity int,
	status Status,
	orderedAt time.Time,
	completedAt *time.Time,
) (*LedgerEntry, error) {
	e := &LedgerEntry{
		isConstructed: true,
	}

	if err := errors.Join(
		e.setID(id),
		e.setRequestID(requestID),
		e.setDriverID(driverID),
		e.setDropoff(dropoff),
		e.setQuantity(quantity),
		e.setStatus(status),
		e.setOrderedAt(orderedAt),
	); err != nil {
		return nil, err
	}

	if err := e.setCompletedAt(completedAt); err != nil {
		return nil, err
	}

	return e, nil
}

// Validate checks if the LedgerEntry was properly constructed.
func (e *LedgerEntry) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEntryIsNotConstructed
	}

	return nil
}

// IsEqual compares two entries for equality based on their identifiers.
func (e *LedgerEntry) IsEqual(other *LedgerEntry) bool {
	return other != nil && e.id.IsEqual(other.id)
}

// ID returns the entry's identity.
func (e *LedgerEntry) ID() kernel.UUID {
	return e.id
}

// RequestID returns the delivery request this entry refers to.
func (e *LedgerEntry) RequestID() kernel.RequestID {
	return e.requestID
}

// DriverID returns the driver who resigned or completed.
func (e *LedgerEntry) DriverID() kernel.DriverID {
	return e.driverID
}

// Dropoff returns the request's destination at the time of the event.
func (e *LedgerEntry) Dropoff() kernel.Address {
	return e.dropoff
}

// Quantity returns the request's stock cost at the time of the event.
func (e *LedgerEntry) Quantity() int {
	return e.quantity
}

// Status returns the entry classification.
func (e *LedgerEntry) Status() Status {
	return e.status
}

// OrderedAt returns the request's original intake timestamp.
func (e *LedgerEntry) OrderedAt() time.Time {
	return e.orderedAt
}

// CompletedAt returns the completion timestamp, nil for resignation markers.
func (e *LedgerEntry) CompletedAt() *time.Time {
	return e.completedAt
}

// IsReclaimable reports whether this entry marks a resigned request that is
// open to be claimed again.
func (e *LedgerEntry) IsReclaimable() bool {
	return e.status == ResignedPending
}

func (e *LedgerEntry) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.id = id
	return nil
}

func (e *LedgerEntry) setRequestID(requestID kernel.RequestID) error {
	if err := requestID.Validate(); err != nil {
		return err
	}
	e.requestID = requestID
	return nil
}

func (e *LedgerEntry) setDriverID(driverID kernel.DriverID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	e.driverID = driverID
	return nil
}

func (e *LedgerEntry) setDropoff(dropoff kernel.Address) error {
	if err := dropoff.Validate(); err != nil {
		return err
	}
	e.dropoff = dropoff
	return nil
}

func (e *LedgerEntry) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	e.quantity = quantity
	return nil
}

func (e *LedgerEntry) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	e.status = status
	return nil
}

func (e *LedgerEntry) setOrderedAt(orderedAt time.Time) error {
	if orderedAt.IsZero() {
		return ErrOrderedAtIsRequired
	}
	e.orderedAt = orderedAt
	return nil
}

// setCompletedAt enforces consistency between the entry status and the
// completion timestamp: Completed entries carry one, markers must not.
func (e *LedgerEntry) setCompletedAt(completedAt *time.Time) error {
	switch e.status {
	case Completed:
		if completedAt == nil || completedAt.IsZero() {
			return ErrCompletedAtIsRequired
		}
		t := *completedAt
		e.completedAt = &t
	case ResignedPending:
		if completedAt != nil {
			return errs.NewValueIsInvalidErrorWithCause(
				"completedAt is invalid",
				errors.New("resignation markers must not carry a completion time"),
			)
		}
	}
	return nil
}
