package commands

import (
	"context"
)

// UpdateStockCommandHandler handles the business logic for restocking.
// Loads the driver with its row locked so concurrent stock changes for the
// same driver serialize, applies the increase through the aggregate (which
// enforces the stock cap), and persists the result.
type UpdateStockCommandHandler struct {
	uowFactory DriverUoWFactory
}

// NewUpdateStockCommandHandler creates a handler for stock updates.
// Requires a DriverUoWFactory for transactional persistence operations.
func NewUpdateStockCommandHandler(uowFactory DriverUoWFactory) UpdateStockCommandHandler {
	return UpdateStockCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the stock update command.
// Returns an errs.ValueIsOutOfRangeError when the increase would push the
// stock over its cap, and errs.ObjectNotFoundError for unknown drivers.
func (h *UpdateStockCommandHandler) Handle(ctx context.Context, cmd UpdateStockCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	driverRepo := uow.DriverRepository()

	driverEntity, err := driverRepo.GetForUpdate(ctx, cmd.DriverID())
	if err != nil {
		return err
	}

	if err = driverEntity.Restock(cmd.Amount()); err != nil {
		return err
	}

	if err = driverRepo.Update(ctx, driverEntity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
