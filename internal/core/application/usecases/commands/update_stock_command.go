package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var (
	ErrUpdateStockCommandIsNotConstructed = errors.New(
		"UpdateStockCommand must be created via NewUpdateStockCommand constructor",
	)
	ErrAmountIsInvalid = errors.New("amount must be greater than 0")
)

// UpdateStockCommand represents a driver topping up their carrying stock.
// The amount is strictly positive; the driver aggregate enforces the cap.
type UpdateStockCommand struct { //nolint:recvcheck //using for validation
	driverID kernel.DriverID
	amount   int

	guard guard.ConstructorGuard
}

// NewUpdateStockCommand creates a command to increase a driver's stock.
// Validates that the identifier is valid and the amount is positive; the
// upper bound is checked against the driver's current stock in the handler.
func NewUpdateStockCommand(driverID kernel.DriverID, amount int) (UpdateStockCommand, error) {
	command := UpdateStockCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDriverID(driverID),
		command.setAmount(amount),
	); err != nil {
		return UpdateStockCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateStockCommandIsNotConstructed if validation fails.
func (c UpdateStockCommand) Validate() error {
	return c.guard.Validate(ErrUpdateStockCommandIsNotConstructed)
}

// DriverID returns the driver ID from the command.
func (c UpdateStockCommand) DriverID() kernel.DriverID {
	return c.driverID
}

// Amount returns the stock increase from the command.
func (c UpdateStockCommand) Amount() int {
	return c.amount
}

func (c *UpdateStockCommand) setDriverID(driverID kernel.DriverID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}

func (c *UpdateStockCommand) setAmount(amount int) error {
	if amount <= 0 {
		return ErrAmountIsInvalid
	}

	c.amount = amount
	return nil
}
