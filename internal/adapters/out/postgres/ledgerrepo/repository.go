package ledgerrepo

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/tracking"

	"gorm.io/gorm"
)

// GormLedgerRepository implements LedgerRepository using GORM.
// Completed entries are append-only; the only deletion the repository
// performs is removing a reclaimable marker when its request is accepted
// again.
type GormLedgerRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

// NewGormLedgerRepository creates a new GORM ledger repository.
func NewGormLedgerRepository(db *gorm.DB, tracker aggregateTracker) *GormLedgerRepository {
	return &GormLedgerRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add appends a ledger entry.
func (r *GormLedgerRepository) Add(ctx context.Context, entry *tracking.LedgerEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entry)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(entry.ID().String(), entry)
	return nil
}

// RemoveResignedMarker deletes the reclaimable marker for the request, if
// one exists. Completed entries are never touched.
func (r *GormLedgerRepository) RemoveResignedMarker(ctx context.Context, requestID kernel.RequestID) error {
	return r.db.WithContext(ctx).
		Where("request_id = ? AND status = ?", requestID.Int(), int(tracking.ResignedPending)).
		Delete(&LedgerEntryDTO{}).Error
}

// HasResignedMarker reports whether a reclaimable marker exists for the request.
func (r *GormLedgerRepository) HasResignedMarker(ctx context.Context, requestID kernel.RequestID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&LedgerEntryDTO{}).
		Where("request_id = ? AND status = ?", requestID.Int(), int(tracking.ResignedPending)).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}
