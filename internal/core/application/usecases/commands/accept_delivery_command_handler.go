package commands

import (
	"context"
	"errors"
	"time"

	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/request"
	"dispatch/internal/pkg/errs"
)

var (
	// ErrRequestNotAvailable is returned when the request does not exist or
	// is no longer pending. The loser of a concurrent claim race gets this.
	ErrRequestNotAvailable = errors.New("request is not available")

	// ErrDeliveryLimitReached is returned when the driver already carries
	// the maximum number of concurrent deliveries.
	ErrDeliveryLimitReached = errors.New("concurrent delivery limit reached")
)

// AcceptDeliveryCommandHandler orchestrates a driver claiming a request.
//
// All preconditions are checked and all effects applied inside one
// transaction with the driver row locked:
//   - the request must still be pending (decided by a compare-and-swap on
//     the request row, so of two concurrent accepts exactly one commits)
//   - the driver must have fewer than driver.MaxActiveDeliveries in
//     progress, counted inside the same transaction
//   - the driver's stock must cover the request quantity
//
// On success the stock is debited, the request moves to in progress with
// the driver and start time recorded, and any reclaimable marker left by a
// previous resignation is removed from the ledger.
type AcceptDeliveryCommandHandler struct {
	uowFactory UoWFactory
}

// NewAcceptDeliveryCommandHandler creates a handler for accepting deliveries.
// Requires a UoWFactory coordinating drivers, requests and the ledger.
func NewAcceptDeliveryCommandHandler(uowFactory UoWFactory) AcceptDeliveryCommandHandler {
	return AcceptDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the accept command.
// Returns ErrRequestNotAvailable, ErrDeliveryLimitReached or
// driver.ErrInsufficientStock for the respective business failures; any
// failure rolls the whole transaction back.
func (h AcceptDeliveryCommandHandler) Handle(ctx context.Context, cmd AcceptDeliveryCommand) error {
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
		return ErrRequestNotAvailable
	}
	if err != nil {
		return err
	}

	if requestEntity.Status() != request.Pending {
		return ErrRequestNotAvailable
	}

	inProgress, err := requestRepo.CountInProgressByDriver(ctx, cmd.DriverID())
	if err != nil {
		return err
	}
	if inProgress >= driver.MaxActiveDeliveries {
		return ErrDeliveryLimitReached
	}

	if err = driverEntity.Debit(requestEntity.Quantity()); err != nil {
		return err
	}

	claimed, err := requestRepo.Claim(ctx, cmd.RequestID(), cmd.DriverID(), time.Now())
	if err != nil {
		return err
	}
	if !claimed {
		return ErrRequestNotAvailable
	}

	if err = ledgerRepo.RemoveResignedMarker(ctx, cmd.RequestID()); err != nil {
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
