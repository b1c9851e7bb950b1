package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetCurrentStockQueryHandler retrieves a driver's stock level.
type GetCurrentStockQueryHandler struct {
	db *gorm.DB
}

// NewGetCurrentStockQueryHandler creates a handler for stock lookups.
// Requires a GORM database connection.
func NewGetCurrentStockQueryHandler(db *gorm.DB) GetCurrentStockQueryHandler {
	return GetCurrentStockQueryHandler{db: db}
}

// Handle executes the query.
// Returns zero stock for unknown drivers.
func (h GetCurrentStockQueryHandler) Handle(
	ctx context.Context,
	query GetCurrentStockQuery,
) (GetCurrentStockQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCurrentStockQueryResponse{}, err
	}

	var stock int

	err := h.db.WithContext(ctx).Raw(`
		SELECT COALESCE(
			(SELECT stock FROM drivers WHERE id = ?),
			0
		)
	`, query.DriverID().String()).Scan(&stock).Error
	if err != nil {
		return GetCurrentStockQueryResponse{}, err
	}

	return GetCurrentStockQueryResponse{Stock: stock}, nil
}
