package queries

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrGetMyDeliveriesQueryIsNotConstructed = errors.New(
	"GetMyDeliveriesQuery must be created via NewGetMyDeliveriesQuery constructor",
)

// GetMyDeliveriesQuery retrieves the deliveries one driver currently has in
// progress.
type GetMyDeliveriesQuery struct { //nolint:recvcheck //using for validation
	driverID kernel.DriverID

	guard guard.ConstructorGuard
}

// NewGetMyDeliveriesQuery creates a query for the driver's own active deliveries.
func NewGetMyDeliveriesQuery(driverID kernel.DriverID) (GetMyDeliveriesQuery, error) {
	if err := driverID.Validate(); err != nil {
		return GetMyDeliveriesQuery{}, err
	}

	return GetMyDeliveriesQuery{
		driverID: driverID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetMyDeliveriesQueryIsNotConstructed if validation fails.
func (q GetMyDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetMyDeliveriesQueryIsNotConstructed)
}

// DriverID returns the driver's ID from the query.
func (q GetMyDeliveriesQuery) DriverID() kernel.DriverID {
	return q.driverID
}

// GetMyDeliveriesQueryResponse represents one of the driver's active deliveries.
type GetMyDeliveriesQueryResponse struct {
	RequestID kernel.RequestID
	Dropoff   kernel.Address
	Quantity  int
	OrderedAt time.Time
	StartTime time.Time
}
