package queries

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/request"
	"dispatch/internal/core/domain/model/tracking"

	"gorm.io/gorm"
)

// GetUnassignedRequestsQueryHandler lists the requests a driver may claim.
//
// The projection joins pending requests against active reclaimable markers
// in the tracking ledger. At most one marker is active per request, so each
// request yields exactly one row; a request with another driver's marker is
// shown as reclaimable. When offerOwnResignations is false (the default
// policy), requests the viewing driver resigned from themselves are filtered
// out; when true they reappear as ordinary pending items, not reclaimable
// ones.
type GetUnassignedRequestsQueryHandler struct {
	db                   *gorm.DB
	offerOwnResignations bool
}

// NewGetUnassignedRequestsQueryHandler creates a handler for the claimable
// request listing. The policy flag controls whether drivers are re-offered
// their own resignations.
func NewGetUnassignedRequestsQueryHandler(db *gorm.DB, offerOwnResignations bool) GetUnassignedRequestsQueryHandler {
	return GetUnassignedRequestsQueryHandler{
		db:                   db,
		offerOwnResignations: offerOwnResignations,
	}
}

// Handle executes the query.
// Results are ordered by intake time, oldest first.
func (h GetUnassignedRequestsQueryHandler) Handle(
	ctx context.Context,
	query GetUnassignedRequestsQuery,
) ([]GetUnassignedRequestsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	responses := make([]GetUnassignedRequestsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			r.id,
			r.dropoff_address,
			r.quantity,
			r.ordered_at,
			(t.request_id IS NOT NULL AND t.driver_id <> ?) AS reclaimable
		FROM delivery_requests r
		LEFT JOIN order_tracking t
			ON t.request_id = r.id AND t.status = ?
		WHERE r.status = ?
			AND (t.driver_id IS NULL OR t.driver_id <> ? OR ?)
		ORDER BY r.ordered_at, r.id
	`, query.DriverID().String(), tracking.ResignedPending, request.Pending,
		query.DriverID().String(), h.offerOwnResignations).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id          int
			dropoff     string
			quantity    int
			orderedAt   time.Time
			reclaimable bool
		)

		if err = rows.Scan(&id, &dropoff, &quantity, &orderedAt, &reclaimable); err != nil {
			return nil, err
		}

		requestID, idErr := kernel.NewRequestID(id)
		if idErr != nil {
			return nil, idErr
		}

		address, addrErr := kernel.NewAddress(dropoff)
		if addrErr != nil {
			return nil, addrErr
		}

		responses = append(responses, GetUnassignedRequestsQueryResponse{
			RequestID:   requestID,
			Dropoff:     address,
			Quantity:    quantity,
			OrderedAt:   orderedAt,
			Reclaimable: reclaimable,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return responses, nil
}
