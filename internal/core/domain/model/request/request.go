package request

import (
	"errors"
	"fmt"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

// Domain errors for delivery request operations.
var (
	// ErrRequestIsNotConstructed is returned when a DeliveryRequest instance was not
	// created through one of the constructor functions.
	ErrRequestIsNotConstructed = errors.New(
		"DeliveryRequest must be created via NewDeliveryRequest or RestoreDeliveryRequest",
	)
	// ErrRequestAlreadyPersisted is returned when assigning a persistent
	// identifier to a request that already has one.
	ErrRequestAlreadyPersisted = errors.New("request already has a persistent identifier")
	// ErrOrderedAtIsRequired is returned when the intake timestamp is missing.
	ErrOrderedAtIsRequired = errs.NewValueIsRequiredError("orderedAt")
)

// DeliveryRequest represents a unit of delivery work in the shared queue.
// It is an aggregate root managing the request's identity, dropoff, quantity
// cost, and the claim lifecycle.
//
// State model:
//   - Pending, no assigned driver: available to every driver
//   - InProgress, assigned driver set, start time set: claimed
//   - Completed requests leave the queue; their record moves to the ledger
//
// A brand-new request carries a zero RequestID until the durable store
// assigns one at insert time (see MarkPersisted).
type DeliveryRequest struct {
	// id is the store-assigned identifier; zero until persisted
	id kernel.RequestID

	// dropoff is the delivery destination inside the service areas
	dropoff kernel.Address

	// quantity is the stock units this request consumes (must be positive)
	quantity int

	// status represents the current state in the request lifecycle
	status Status

	// assignedDriverID is the claiming driver's ID (nil iff not InProgress)
	assignedDriverID *kernel.DriverID

	// orderedAt is the intake timestamp
	orderedAt time.Time

	// startTime is when the current driver accepted the request (nil if unclaimed)
	startTime *time.Time

	// isConstructed ensures the request was created via a constructor
	isConstructed bool
}

// NewDeliveryRequest creates a new pending request entering the queue.
// The identifier stays zero until the durable store assigns one.
func NewDeliveryRequest(dropoff kernel.Address, quantity int, orderedAt time.Time) (*DeliveryRequest, error) {
	r := &DeliveryRequest{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		r.setDropoff(dropoff),
		r.setQuantity(quantity),
		r.setOrderedAt(orderedAt),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreDeliveryRequest reconstructs a DeliveryRequest from persistent
// storage, including its claim state. The status/driver combination must be
// consistent: InProgress requires an assigned driver, Pending forbids one.
func RestoreDeliveryRequest(
	id kernel.RequestID,
	dropoff kernel.Address,
	quantity int,
	status Status,
	assignedDriverID *kernel.DriverID,
	orderedAt time.Time,
	startTime *time.Time,
) (*DeliveryRequest, error) {
	r := &DeliveryRequest{
		isConstructed: true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setDropoff(dropoff),
		r.setQuantity(quantity),
		r.setStatus(status),
		r.setAssignedDriverID(assignedDriverID),
		r.setOrderedAt(orderedAt),
	); err != nil {
		return nil, err
	}

	if startTime != nil {
		st := *startTime
		r.startTime = &st
	}

	return r, nil
}

// Validate checks if the DeliveryRequest was properly constructed.
func (r *DeliveryRequest) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRequestIsNotConstructed
	}

	return nil
}

// IsEqual compares two requests for equality based on their identifiers.
func (r *DeliveryRequest) IsEqual(other *DeliveryRequest) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the store-assigned identifier (zero if not yet persisted).
func (r *DeliveryRequest) ID() kernel.RequestID {
	return r.id
}

// Dropoff returns the delivery destination.
func (r *DeliveryRequest) Dropoff() kernel.Address {
	return r.dropoff
}

// Quantity returns the stock units this request consumes.
func (r *DeliveryRequest) Quantity() int {
	return r.quantity
}

// Status returns the current lifecycle state.
func (r *DeliveryRequest) Status() Status {
	return r.status
}

// AssignedDriver returns the claiming driver's ID, nil when unclaimed.
func (r *DeliveryRequest) AssignedDriver() *kernel.DriverID {
	return r.assignedDriverID
}

// OrderedAt returns the intake timestamp.
func (r *DeliveryRequest) OrderedAt() time.Time {
	return r.orderedAt
}

// StartTime returns when the current driver accepted the request, nil when
// unclaimed.
func (r *DeliveryRequest) StartTime() *time.Time {
	return r.startTime
}

// IsAssignedTo reports whether the request is in progress and assigned to
// the given driver.
func (r *DeliveryRequest) IsAssignedTo(driverID kernel.DriverID) bool {
	return r.status == InProgress && r.assignedDriverID != nil && r.assignedDriverID.IsEqual(driverID)
}

// MarkPersisted records the identifier assigned by the durable store.
// Valid only once, on a request that was created via NewDeliveryRequest and
// has not been persisted before.
func (r *DeliveryRequest) MarkPersisted(id kernel.RequestID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if r.id.Validate() == nil {
		return ErrRequestAlreadyPersisted
	}

	r.id = id
	return nil
}

// Assign claims the request for the given driver at the given time.
// Only Pending requests can be claimed; the loser of a concurrent claim
// race observes the status validation failure.
func (r *DeliveryRequest) Assign(driverID kernel.DriverID, at time.Time) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	if at.IsZero() {
		return errs.NewValueIsRequiredError("startTime")
	}

	newStatus, err := r.status.Assign()
	if err != nil {
		return err
	}

	r.status = newStatus
	r.assignedDriverID = &driverID
	r.startTime = &at
	return nil
}

// Release returns a claimed request to the pool, clearing the assignment
// and start time. Only InProgress requests can be released.
func (r *DeliveryRequest) Release() error {
	newStatus, err := r.status.Release()
	if err != nil {
		return err
	}

	r.status = newStatus
	r.assignedDriverID = nil
	r.startTime = nil
	return nil
}

// setID sets the request identifier with validation.
// This is an internal setter used during restoration.
func (r *DeliveryRequest) setID(id kernel.RequestID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *DeliveryRequest) setDropoff(dropoff kernel.Address) error {
	if err := dropoff.Validate(); err != nil {
		return err
	}
	r.dropoff = dropoff
	return nil
}

func (r *DeliveryRequest) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	r.quantity = quantity
	return nil
}

func (r *DeliveryRequest) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	r.status = status
	return nil
}

// setAssignedDriverID sets the claiming driver with status consistency
// validation. Used during restoration.
func (r *DeliveryRequest) setAssignedDriverID(driverID *kernel.DriverID) error {
	if driverID != nil {
		if err := driverID.Validate(); err != nil {
			return err
		}
	}

	if err := r.status.ValidateCanHaveDriver(driverID != nil); err != nil {
		return err
	}

	if driverID != nil {
		id := *driverID
		r.assignedDriverID = &id
	}
	return nil
}

func (r *DeliveryRequest) setOrderedAt(orderedAt time.Time) error {
	if orderedAt.IsZero() {
		return ErrOrderedAtIsRequired
	}
	r.orderedAt = orderedAt
	return nil
}
