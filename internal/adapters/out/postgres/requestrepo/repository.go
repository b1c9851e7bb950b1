package requestrepo

import (
	"context"
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/request"
	"dispatch/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormRequestRepository implements RequestRepository using GORM.
//
// The claim lifecycle methods (Claim, Release, Delete) are implemented as
// conditional updates: the WHERE clause encodes the expected current state
// and the affected row count tells whether the transition took effect.
// Under concurrent commands the database decides who wins.
type GormRequestRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

// NewGormRequestRepository creates a new GORM request repository.
func NewGormRequestRepository(db *gorm.DB, tracker aggregateTracker) *GormRequestRepository {
	return &GormRequestRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new request to the database.
// The database assigns the identifier, which is written back into the
// aggregate via MarkPersisted.
func (r *GormRequestRepository) Add(ctx context.Context, aggregate *request.DeliveryRequest) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	id, err := kernel.NewRequestID(dto.ID)
	if err != nil {
		return err
	}
	if err = aggregate.MarkPersisted(id); err != nil {
		return err
	}

	r.tracker.TrackAggregate(id.String(), aggregate)
	return nil
}

// Get retrieves a request by ID.
func (r *GormRequestRepository) Get(ctx context.Context, id kernel.RequestID) (*request.DeliveryRequest, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RequestDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Int()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("request", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Claim atomically moves a pending request to in progress for the driver.
// Returns false when the row is no longer pending, without error: that is
// the normal outcome for the loser of a claim race.
func (r *GormRequestRepository) Claim(
	ctx context.Context,
	id kernel.RequestID,
	driverID kernel.DriverID,
	startTime time.Time,
) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&RequestDTO{}).
		Where("id = ? AND status = ?", id.Int(), int(request.Pending)).
		Updates(map[string]any{
			"status":             int(request.InProgress),
			"assigned_driver_id": driverID.String(),
			"start_time":         startTime,
		})
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}

// Release atomically returns an in-progress request held by the driver
// back to pending, clearing assignment and start time.
func (r *GormRequestRepository) Release(
	ctx context.Context,
	id kernel.RequestID,
	driverID kernel.DriverID,
) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&RequestDTO{}).
		Where("id = ? AND status = ? AND assigned_driver_id = ?",
			id.Int(), int(request.InProgress), driverID.String()).
		Updates(map[string]any{
			"status":             int(request.Pending),
			"assigned_driver_id": nil,
			"start_time":         nil,
		})
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}

// Delete removes an in-progress request held by the driver.
// Used on completion; the ledger keeps the permanent record.
func (r *GormRequestRepository) Delete(
	ctx context.Context,
	id kernel.RequestID,
	driverID kernel.DriverID,
) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("id = ? AND status = ? AND assigned_driver_id = ?",
			id.Int(), int(request.InProgress), driverID.String()).
		Delete(&RequestDTO{})
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}

// CountInProgressByDriver returns how many requests the driver currently
// has in progress.
func (r *GormRequestRepository) CountInProgressByDriver(
	ctx context.Context,
	driverID kernel.DriverID,
) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&RequestDTO{}).
		Where("status = ? AND assigned_driver_id = ?", int(request.InProgress), driverID.String()).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return int(count), nil
}
