package ports

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/request"
)

// RequestRepository defines the persistence contract for delivery request
// aggregates. The claim methods are compare-and-swap operations: they apply
// only when the stored row is still in the expected state and report
// whether they took effect, which is how concurrent claims on the same
// request are decided.
type RequestRepository interface {
	// Add persists a new request aggregate. The store assigns the
	// identifier and the aggregate is updated with it via MarkPersisted.
	Add(ctx context.Context, aggregate *request.DeliveryRequest) error

	// Get retrieves a request aggregate by its identifier.
	// Returns errs.ObjectNotFoundError when no such request exists.
	Get(ctx context.Context, id kernel.RequestID) (*request.DeliveryRequest, error)

	// Claim atomically moves a pending request to in progress for the given
	// driver. Returns (false, nil) when the request is no longer pending,
	// which is what the loser of a concurrent claim observes.
	Claim(ctx context.Context, id kernel.RequestID, driverID kernel.DriverID, startTime time.Time) (bool, error)

	// Release atomically returns an in-progress request claimed by the
	// given driver back to pending, clearing assignment and start time.
	// Returns (false, nil) when the request is not held by that driver.
	Release(ctx context.Context, id kernel.RequestID, driverID kernel.DriverID) (bool, error)

	// Delete removes an in-progress request held by the given driver.
	// Used on completion. Returns (false, nil) when the request is not
	// held by that driver.
	Delete(ctx context.Context, id kernel.RequestID, driverID kernel.DriverID) (bool, error)

	// CountInProgressByDriver returns how many requests the driver
	// currently has in progress. Read inside the command's transaction
	// so the concurrent-delivery cap is checked against a consistent view.
	CountInProgressByDriver(ctx context.Context, driverID kernel.DriverID) (int, error)
}
