package queries

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/request"

	"gorm.io/gorm"
)

// GetMyDeliveriesQueryHandler retrieves one driver's in-progress deliveries.
type GetMyDeliveriesQueryHandler struct {
	db *gorm.DB
}

// NewGetMyDeliveriesQueryHandler creates a handler for a driver's own
// delivery listing. Requires a GORM database connection.
func NewGetMyDeliveriesQueryHandler(db *gorm.DB) GetMyDeliveriesQueryHandler {
	return GetMyDeliveriesQueryHandler{db: db}
}

// Handle executes the query.
// Results are ordered by intake time, oldest first. Unknown drivers simply
// get an empty list.
func (h GetMyDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetMyDeliveriesQuery,
) ([]GetMyDeliveriesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	responses := make([]GetMyDeliveriesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			dropoff_address,
			quantity,
			ordered_at,
			start_time
		FROM delivery_requests
		WHERE status = ? AND assigned_driver_id = ?
		ORDER BY ordered_at, id
	`, request.InProgress, query.DriverID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id        int
			dropoff   string
			quantity  int
			orderedAt time.Time
			startTime time.Time
		)

		if err = rows.Scan(&id, &dropoff, &quantity, &orderedAt, &startTime); err != nil {
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

		responses = append(responses, GetMyDeliveriesQueryResponse{
			RequestID: requestID,
			Dropoff:   address,
			Quantity:  quantity,
			OrderedAt: orderedAt,
			StartTime: startTime,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return responses, nil
}
