package commands

import (
	"context"

	"dispatch/internal/core/domain/model/driver"
)

// RegisterDriverCommandHandler handles the business logic for driver
// registration. New drivers always start with zero stock.
//
// Example:
//
//	handler := NewRegisterDriverCommandHandler(uowFactory)
//	cmd, _ := NewRegisterDriverCommand(id, "Tanaka", hash)
//	err := handler.Handle(ctx, cmd)
//	if errors.Is(err, driver.ErrDriverAlreadyExists) {
//	    // identifier is taken
//	}
type RegisterDriverCommandHandler struct {
	uowFactory DriverUoWFactory
}

// NewRegisterDriverCommandHandler creates a handler for driver registration.
// Requires a DriverUoWFactory for transactional persistence operations.
func NewRegisterDriverCommandHandler(uowFactory DriverUoWFactory) RegisterDriverCommandHandler {
	return RegisterDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the driver registration command.
// Creates a new driver aggregate and persists it within a transaction.
// Returns driver.ErrDriverAlreadyExists when the identifier is taken.
func (h *RegisterDriverCommandHandler) Handle(ctx context.Context, cmd RegisterDriverCommand) error {
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
	driverEntity, err := driver.NewDriver(cmd.DriverID(), cmd.Name(), cmd.PasswordHash())
	if err != nil {
		return err
	}

	if err = driverRepo.Add(ctx, driverEntity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
