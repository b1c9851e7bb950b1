package commands

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/request"
)

// CreateRequestCommandHandler handles order intake.
// Creates a pending request with the current time as its intake timestamp
// and persists it; the store assigns the request identifier.
type CreateRequestCommandHandler struct {
	uowFactory RequestUoWFactory
}

// NewCreateRequestCommandHandler creates a handler for order intake.
// Requires a RequestUoWFactory for transactional persistence operations.
func NewCreateRequestCommandHandler(uowFactory RequestUoWFactory) CreateRequestCommandHandler {
	return CreateRequestCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the intake command.
// Creates a new pending request and persists it within a transaction.
func (h *CreateRequestCommandHandler) Handle(ctx context.Context, cmd CreateRequestCommand) error {
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
	requestEntity, err := request.NewDeliveryRequest(cmd.Dropoff(), cmd.Quantity(), time.Now())
	if err != nil {
		return err
	}

	if err = requestRepo.Add(ctx, requestEntity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
