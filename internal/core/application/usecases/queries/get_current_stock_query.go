package queries

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrGetCurrentStockQueryIsNotConstructed = errors.New(
	"GetCurrentStockQuery must be created via NewGetCurrentStockQuery constructor",
)

// GetCurrentStockQuery retrieves a driver's current stock level.
type GetCurrentStockQuery struct { //nolint:recvcheck //using for validation
	driverID kernel.DriverID

	guard guard.ConstructorGuard
}

// NewGetCurrentStockQuery creates a query for the driver's stock level.
func NewGetCurrentStockQuery(driverID kernel.DriverID) (GetCurrentStockQuery, error) {
	if err := driverID.Validate(); err != nil {
		return GetCurrentStockQuery{}, err
	}

	return GetCurrentStockQuery{
		driverID: driverID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetCurrentStockQueryIsNotConstructed if validation fails.
func (q GetCurrentStockQuery) Validate() error {
	return q.guard.Validate(ErrGetCurrentStockQueryIsNotConstructed)
}

// DriverID returns the driver's ID from the query.
func (q GetCurrentStockQuery) DriverID() kernel.DriverID {
	return q.driverID
}

// GetCurrentStockQueryResponse carries the driver's stock level.
// Unknown drivers report zero stock rather than an error.
type GetCurrentStockQueryResponse struct {
	Stock int
}
