// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrGetUnassignedRequestsQueryIsNotConstructed = errors.New(
	"GetUnassignedRequestsQuery must be created via NewGetUnassignedRequestsQuery constructor",
)

// GetUnassignedRequestsQuery retrieves the pending requests a driver may
// claim: never-claimed requests plus requests other drivers resigned from.
// Whether the driver also sees requests they resigned from themselves is a
// handler policy, not part of the query.
//
// Example:
//
//	query, _ := NewGetUnassignedRequestsQuery(driverID)
//	handler := NewGetUnassignedRequestsQueryHandler(db, false)
//
//	available, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list available requests: %w", err)
//	}
type GetUnassignedRequestsQuery struct { //nolint:recvcheck //using for validation
	driverID kernel.DriverID

	guard guard.ConstructorGuard
}

// NewGetUnassignedRequestsQuery creates a query listing claimable requests
// from the given driver's point of view.
func NewGetUnassignedRequestsQuery(driverID kernel.DriverID) (GetUnassignedRequestsQuery, error) {
	if err := driverID.Validate(); err != nil {
		return GetUnassignedRequestsQuery{}, err
	}

	return GetUnassignedRequestsQuery{
		driverID: driverID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetUnassignedRequestsQueryIsNotConstructed if validation fails.
func (q GetUnassignedRequestsQuery) Validate() error {
	return q.guard.Validate(ErrGetUnassignedRequestsQueryIsNotConstructed)
}

// DriverID returns the viewing driver's ID from the query.
func (q GetUnassignedRequestsQuery) DriverID() kernel.DriverID {
	return q.driverID
}

// GetUnassignedRequestsQueryResponse represents one claimable request.
// Reclaimable is true when the request was previously resigned by some
// driver and carries an active marker in the tracking ledger.
type GetUnassignedRequestsQueryResponse struct {
	RequestID   kernel.RequestID
	Dropoff     kernel.Address
	Quantity    int
	OrderedAt   time.Time
	Reclaimable bool
}
