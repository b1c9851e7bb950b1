package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrCompleteDeliveryCommandIsNotConstructed = errors.New(
	"CompleteDeliveryCommand must be created via NewCompleteDeliveryCommand constructor",
)

// CompleteDeliveryCommand represents a driver finishing a claimed delivery.
// The request leaves the queue for good; its record lives on in the
// tracking ledger. Stock spent on the delivery is not restored.
type CompleteDeliveryCommand struct { //nolint:recvcheck //using for validation
	driverID  kernel.DriverID
	requestID kernel.RequestID

	guard guard.ConstructorGuard
}

// NewCompleteDeliveryCommand creates a command for a driver to complete a claimed request.
func NewCompleteDeliveryCommand(driverID kernel.DriverID, requestID kernel.RequestID) (CompleteDeliveryCommand, error) {
	command := CompleteDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDriverID(driverID),
		command.setRequestID(requestID),
	); err != nil {
		return CompleteDeliveryCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCompleteDeliveryCommandIsNotConstructed if validation fails.
func (c CompleteDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCompleteDeliveryCommandIsNotConstructed)
}

// DriverID returns the completing driver's ID from the command.
func (c CompleteDeliveryCommand) DriverID() kernel.DriverID {
	return c.driverID
}

// RequestID returns the delivery request ID from the command.
func (c CompleteDeliveryCommand) RequestID() kernel.RequestID {
	return c.requestID
}

func (c *CompleteDeliveryCommand) setDriverID(driverID kernel.DriverID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}

func (c *CompleteDeliveryCommand) setRequestID(requestID kernel.RequestID) error {
	if err := requestID.Validate(); err != nil {
		return err
	}

	c.requestID = requestID
	return nil
}
