package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrResignDeliveryCommandIsNotConstructed = errors.New(
	"ResignDeliveryCommand must be created via NewResignDeliveryCommand constructor",
)

// ResignDeliveryCommand represents a driver giving up a claimed delivery.
// The request returns to the pool and the driver's stock is restored.
type ResignDeliveryCommand struct { //nolint:recvcheck //using for validation
	driverID  kernel.DriverID
	requestID kernel.RequestID

	guard guard.ConstructorGuard
}

// NewResignDeliveryCommand creates a command for a driver to resign a claimed request.
func NewResignDeliveryCommand(driverID kernel.DriverID, requestID kernel.RequestID) (ResignDeliveryCommand, error) {
	command := ResignDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDriverID(driverID),
		command.setRequestID(requestID),
	); err != nil {
		return ResignDeliveryCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrResignDeliveryCommandIsNotConstructed if validation fails.
func (c ResignDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrResignDeliveryCommandIsNotConstructed)
}

// DriverID returns the resigning driver's ID from the command.
func (c ResignDeliveryCommand) DriverID() kernel.DriverID {
	return c.driverID
}

// RequestID returns the delivery request ID from the command.
func (c ResignDeliveryCommand) RequestID() kernel.RequestID {
	return c.requestID
}

func (c *ResignDeliveryCommand) setDriverID(driverID kernel.DriverID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}

func (c *ResignDeliveryCommand) setRequestID(requestID kernel.RequestID) error {
	if err := requestID.Validate(); err != nil {
		return err
	}

	c.requestID = requestID
	return nil
}
