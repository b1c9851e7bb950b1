package queries

import (
	"context"
	"database/sql"
	"time"

	"dispatch/internal/core/domain/model/request"
	"dispatch/internal/core/domain/model/tracking"

	"gorm.io/gorm"
)

// GetOrderTrackingQueryHandler builds the tracking board from the live
// queue and the ledger. Each request appears once per state it has been
// observed in: a resigned-then-pending request contributes both its
// reclaimable marker row and its live pending row.
type GetOrderTrackingQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderTrackingQueryHandler creates a handler for the tracking board.
// Requires a GORM database connection.
func NewGetOrderTrackingQueryHandler(db *gorm.DB) GetOrderTrackingQueryHandler {
	return GetOrderTrackingQueryHandler{db: db}
}

// Handle executes the query.
// Rows are ordered by intake time, then request ID.
func (h GetOrderTrackingQueryHandler) Handle(
	ctx context.Context,
	query GetOrderTrackingQuery,
) ([]GetOrderTrackingQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	responses := make([]GetOrderTrackingQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			r.id,
			r.dropoff_address,
			r.quantity,
			CASE r.status WHEN ? THEN 'Pending' ELSE 'InProgress' END AS status,
			r.assigned_driver_id,
			r.ordered_at,
			NULL::timestamptz AS completed_at
		FROM delivery_requests r
		UNION ALL
		SELECT
			t.request_id,
			t.dropoff_address,
			t.quantity,
			CASE t.status WHEN ? THEN 'ResignedPending' ELSE 'Completed' END AS status,
			t.driver_id,
			t.ordered_at,
			t.completed_at
		FROM order_tracking t
		ORDER BY ordered_at, id
	`, request.Pending, tracking.ResignedPending).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id          int
			dropoff     string
			quantity    int
			status      string
			driverID    sql.NullString
			orderedAt   time.Time
			completedAt sql.NullTime
		)

		if err = rows.Scan(&id, &dropoff, &quantity, &status, &driverID, &orderedAt, &completedAt); err != nil {
			return nil, err
		}

		resp := GetOrderTrackingQueryResponse{
			RequestID: id,
			Dropoff:   dropoff,
			Quantity:  quantity,
			Status:    status,
			OrderedAt: orderedAt,
		}
		if driverID.Valid {
			resp.DriverID = &driverID.String
		}
		if completedAt.Valid {
			resp.CompletedAt = &completedAt.Time
		}

		responses = append(responses, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return responses, nil
}
