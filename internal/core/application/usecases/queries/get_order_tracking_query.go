package queries

import (
	"errors"
	"time"

	"dispatch/internal/pkg/guard"
)

var ErrGetOrderTrackingQueryIsNotConstructed = errors.New(
	"GetOrderTrackingQuery must be created via NewGetOrderTrackingQuery constructor",
)

// GetOrderTrackingQuery retrieves the full tracking board: the live queue
// (pending and in-progress requests) combined with the tracking ledger
// (resignation markers and completed deliveries).
type GetOrderTrackingQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOrderTrackingQuery creates a query for the tracking board.
// This is a parameterless query used for monitoring.
func NewGetOrderTrackingQuery() GetOrderTrackingQuery {
	return GetOrderTrackingQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderTrackingQueryIsNotConstructed if validation fails.
func (q GetOrderTrackingQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderTrackingQueryIsNotConstructed)
}

// GetOrderTrackingQueryResponse represents one row of the tracking board.
// Status is the human-readable state name: Pending, InProgress,
// ResignedPending or Completed. DriverID is nil for rows with no driver
// involved; CompletedAt is set only on completed rows.
type GetOrderTrackingQueryResponse struct {
	RequestID   int
	Dropoff     string
	Quantity    int
	Status      string
	DriverID    *string
	OrderedAt   time.Time
	CompletedAt *time.Time
}
