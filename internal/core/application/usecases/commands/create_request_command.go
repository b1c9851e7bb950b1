package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var (
	ErrCreateRequestCommandIsNotConstructed = errors.New(
		"CreateRequestCommand must be created via NewCreateRequestCommand constructor",
	)
	ErrQuantityIsInvalid = errors.New("quantity must be greater than 0")
)

// CreateRequestCommand represents order intake: a new delivery request
// entering the shared queue. Used by the scheduled intake job and the API.
type CreateRequestCommand struct { //nolint:recvcheck //using for validation
	dropoff  kernel.Address
	quantity int

	guard guard.ConstructorGuard
}

// NewCreateRequestCommand creates a command to add a pending request.
// Validates that the dropoff lies in a service area and the quantity is
// positive.
func NewCreateRequestCommand(dropoff kernel.Address, quantity int) (CreateRequestCommand, error) {
	command := CreateRequestCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDropoff(dropoff),
		command.setQuantity(quantity),
	); err != nil {
		return CreateRequestCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateRequestCommandIsNotConstructed if validation fails.
func (c CreateRequestCommand) Validate() error {
	return c.guard.Validate(ErrCreateRequestCommandIsNotConstructed)
}

// Dropoff returns the delivery destination from the command.
func (c CreateRequestCommand) Dropoff() kernel.Address {
	return c.dropoff
}

// Quantity returns the stock cost from the command.
func (c CreateRequestCommand) Quantity() int {
	return c.quantity
}

func (c *CreateRequestCommand) setDropoff(dropoff kernel.Address) error {
	if err := dropoff.Validate(); err != nil {
		return err
	}

	c.dropoff = dropoff
	return nil
}

func (c *CreateRequestCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrQuantityIsInvalid
	}

	c.quantity = quantity
	return nil
}
