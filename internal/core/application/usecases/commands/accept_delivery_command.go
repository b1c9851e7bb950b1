package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrAcceptDeliveryCommandIsNotConstructed = errors.New(
	"AcceptDeliveryCommand must be created via NewAcceptDeliveryCommand constructor",
)

// AcceptDeliveryCommand represents a driver claiming a pending delivery
// request from the shared queue.
//
// Example:
//
//	cmd, err := NewAcceptDeliveryCommand(driverID, requestID)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewAcceptDeliveryCommandHandler(uowFactory)
//	err = handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrRequestNotAvailable):
//	    // someone else got there first or the request is gone
//	case errors.Is(err, ErrDeliveryLimitReached):
//	    // driver already carries the maximum concurrent deliveries
//	case errors.Is(err, driver.ErrInsufficientStock):
//	    // driver needs to restock first
//	}
type AcceptDeliveryCommand struct { //nolint:recvcheck //using for validation
	driverID  kernel.DriverID
	requestID kernel.RequestID

	guard guard.ConstructorGuard
}

// NewAcceptDeliveryCommand creates a command for a driver to claim a request.
func NewAcceptDeliveryCommand(driverID kernel.DriverID, requestID kernel.RequestID) (AcceptDeliveryCommand, error) {
	command := AcceptDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDriverID(driverID),
		command.setRequestID(requestID),
	); err != nil {
		return AcceptDeliveryCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAcceptDeliveryCommandIsNotConstructed if validation fails.
func (c AcceptDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrAcceptDeliveryCommandIsNotConstructed)
}

// DriverID returns the claiming driver's ID from the command.
func (c AcceptDeliveryCommand) DriverID() kernel.DriverID {
	return c.driverID
}

// RequestID returns the delivery request ID from the command.
func (c AcceptDeliveryCommand) RequestID() kernel.RequestID {
	return c.requestID
}

func (c *AcceptDeliveryCommand) setDriverID(driverID kernel.DriverID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}

func (c *AcceptDeliveryCommand) setRequestID(requestID kernel.RequestID) error {
	if err := requestID.Validate(); err != nil {
		return err
	}

	c.requestID = requestID
	return nil
}
