package queries

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/request"

	"gorm.io/gorm"
)

// GetActiveDeliveriesQueryHandler retrieves all in-progress deliveries
// joined with the carrying driver's name.
type GetActiveDeliveriesQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveDeliveriesQueryHandler creates a handler for the fleet-wide
// active delivery listing. Requires a GORM database connection.
func NewGetActiveDeliveriesQueryHandler(db *gorm.DB) GetActiveDeliveriesQueryHandler {
	return GetActiveDeliveriesQueryHandler{db: db}
}

// Handle executes the query.
// Results are ordered by intake time, oldest first.
func (h GetActiveDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetActiveDeliveriesQuery,
) ([]GetActiveDeliveriesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	responses := make([]GetActiveDeliveriesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			r.id,
			r.dropoff_address,
			r.quantity,
			r.assigned_driver_id,
			d.name,
			r.ordered_at,
			r.start_time
		FROM delivery_requests r
		JOIN drivers d ON d.id = r.assigned_driver_id
		WHERE r.status = ?
		ORDER BY r.ordered_at, r.id
	`, request.InProgress).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id         int
			dropoff    string
			quantity   int
			driverID   string
			driverName string
			orderedAt  time.Time
			startTime  time.Time
		)

		if err = rows.Scan(&id, &dropoff, &quantity, &driverID, &driverName, &orderedAt, &startTime); err != nil {
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

		driver, drvErr := kernel.NewDriverID(driverID)
		if drvErr != nil {
			return nil, drvErr
		}

		responses = append(responses, GetActiveDeliveriesQueryResponse{
			RequestID:  requestID,
			Dropoff:    address,
			Quantity:   quantity,
			DriverID:   driver,
			DriverName: driverName,
			OrderedAt:  orderedAt,
			StartTime:  startTime,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return responses, nil
}
