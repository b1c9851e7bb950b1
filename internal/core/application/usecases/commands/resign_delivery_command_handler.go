package commands

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/tracking"
	"dispatch/internal/pkg/errs"
)

// ErrNotAssignedToDriver is returned when the request is not currently
// held by the driver issuing the command.
var ErrNotAssignedToDriver = errors.New("request is not assigned to this driver")

// ResignDeliveryCommandHandler orchestrates a driver resigning a claimed
// delivery. Inside one transaction with the driver row locked:
//   - the request must be in progress and assigned to this driver
//   - the driver's stock is credited back by the request quantity
//   - a reclaimable marker goes into the tracking ledger, snapshotting the
//     request's dropoff, quantity and intake time
//   - the request returns to pending, unassigned
type ResignDeliveryCommandHandler struct {
	uowFactory UoWFactory
}

// NewResignDeliveryCommandHandler creates a handler for resigning deliveries.
// Requires a UoWFactory coordinating drivers, requests and the ledger.
func NewResignDeliveryCommandHandler(uowFactory UoWFactory) ResignDeliveryCommandHandler {
	return ResignDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the resign command.
// Returns ErrNotAssignedToDriver when the request does not exist, is not
// in progress, or is held by a different driver.
func (h ResignDeliveryCommandHandler) Handle(ctx context.Context, cmd ResignDeliveryCommand) error {
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
	requestRepo := uow.RequestRepository()
	ledgerRepo := uow.LedgerRepository()

	driverEntity, err := driverRepo.GetForUpdate(ctx, cmd.DriverID())
	if err != nil {
		return err
	}

	requestEntity, err := requestRepo.Get(ctx, cmd.RequestID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrNotAssignedToDriver
	}
	if err != nil {
		return err
	}

	if !requestEntity.IsAssignedTo(cmd.DriverID()) {
		return ErrNotAssignedToDriver
	}

	if err = driverEntity.Credit(requestEntity.Quantity()); err != nil {
		return err
	}

	released, err := requestRepo.Release(ctx, cmd.RequestID(), cmd.DriverID())
	if err != nil {
		return err
	}
	if !released {
		return ErrNotAssignedToDriver
	}

	entry, err := tracking.NewResignedEntry(
		cmd.RequestID(),
		cmd.DriverID(),
		requestEntity.Dropoff(),
		requestEntity.Quantity(),
		requestEntity.OrderedAt(),
	)
	if err != nil {
		return err
	}

	if err = ledgerRepo.Add(ctx, entry); err != nil {
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
