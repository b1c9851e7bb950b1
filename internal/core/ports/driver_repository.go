// Package ports defines repository interfaces for the dispatch domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
)

// DriverRepository defines the persistence contract for driver aggregates.
type DriverRepository interface {
	// Add persists a new driver aggregate to storage.
	// Returns driver.ErrDriverAlreadyExists when the identifier is taken.
	Add(ctx context.Context, aggregate *driver.Driver) error

	// Update persists changes to an existing driver aggregate.
	// The driver must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *driver.Driver) error

	// Get retrieves a driver aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.DriverID) (*driver.Driver, error)

	// GetForUpdate retrieves a driver aggregate and locks its row for the
	// duration of the current transaction. Commands that change stock or
	// count active deliveries must load the driver through this method so
	// concurrent commands for the same driver serialize on the lock.
	GetForUpdate(ctx context.Context, id kernel.DriverID) (*driver.Driver, error)
}
