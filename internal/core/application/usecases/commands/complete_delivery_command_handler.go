package commands

import (
	"context"
	"errors"
	"time"

	"dispatch/internal/core/domain/model/tracking"
	"dispatch/internal/pkg/errs"
)

// CompleteDeliveryCommandHandler orchestrates the completion of a claimed
// delivery. Inside one transaction:
//   - the request must be in progress and assigned to this driver
//   - a permanent completion entry goes into the tracking ledger with the
//     completion timestamp
//   - the request row is deleted from the active queue
//
// Stock is not credited back: completing a delivery consumes it.
type CompleteDeliveryCommandHandler struct {
	uowFactory UoWFactory
}

// NewCompleteDeliveryCommandHandler creates a handler for completing deliveries.
// Requires a UoWFactory coordinating requests and the ledger.
func NewCompleteDeliveryCommandHandler(uowFactory UoWFactory) CompleteDeliveryCommandHandler {
	return CompleteDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the complete command.
// Returns ErrNotAssignedToDriver when the request does not exist, is not
// in progress, or is held by a different driver.
func (h CompleteDeliveryCommandHandler) Handle(ctx context.Context, cmd CompleteDeliveryCommand) error {
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

	requestRepo := uow.RequestRepository()
	ledgerRepo := uow.LedgerRepository()

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

	entry, err := tracking.NewCompletedEntry(
		cmd.RequestID(),
		cmd.DriverID(),
		requestEntity.Dropoff(),
		requestEntity.Quantity(),
		requestEntity.OrderedAt(),
		time.Now(),
	)
	if err != nil {
		return err
	}

	if err = ledgerRepo.Add(ctx, entry); err != nil {
		return err
	}

	deleted, err := requestRepo.Delete(ctx, cmd.RequestID(), cmd.DriverID())
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotAssignedToDriver
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
