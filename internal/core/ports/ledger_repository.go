package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/tracking"
)

// LedgerRepository defines the persistence contract for the order tracking
// ledger.
type LedgerRepository interface {
	// Add appends a ledger entry.
	Add(ctx context.Context, entry *tracking.LedgerEntry) error

	// RemoveResignedMarker deletes the reclaimable marker for the given
	// request, if one exists. Called when a driver accepts a previously
	// resigned request. Completed entries are never touched.
	RemoveResignedMarker(ctx context.Context, requestID kernel.RequestID) error

	// HasResignedMarker reports whether a reclaimable marker exists for
	// the given request.
	HasResignedMarker(ctx context.Context, requestID kernel.RequestID) (bool, error)
}
