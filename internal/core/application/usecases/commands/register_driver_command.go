package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var (
	ErrRegisterDriverCommandIsNotConstructed = errors.New(
		"RegisterDriverCommand must be created via NewRegisterDriverCommand constructor",
	)
	ErrNameIsRequired         = errors.New("name is required")
	ErrPasswordHashIsRequired = errors.New("password hash is required")
)

// RegisterDriverCommand represents a request to register a new driver.
// The password hash is produced upstream and stored opaquely; the core never
// inspects it.
//
// Example:
//
//	id, _ := kernel.NewDriverID("D001")
//	cmd, err := NewRegisterDriverCommand(id, "Tanaka", passwordHash)
//	if err != nil {
//	    return fmt.Errorf("invalid driver data: %w", err)
//	}
//
//	handler := NewRegisterDriverCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to register driver: %w", err)
//	}
type RegisterDriverCommand struct { //nolint:recvcheck //using for validation
	driverID     kernel.DriverID
	name         string
	passwordHash []byte

	guard guard.ConstructorGuard
}

// NewRegisterDriverCommand creates a command to register a new driver.
// Validates that the identifier is valid, the name is not empty and the
// password hash is present.
func NewRegisterDriverCommand(driverID kernel.DriverID, name string, passwordHash []byte) (RegisterDriverCommand, error) {
	command := RegisterDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDriverID(driverID),
		command.setName(name),
		command.setPasswordHash(passwordHash),
	); err != nil {
		return RegisterDriverCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRegisterDriverCommandIsNotConstructed if validation fails.
func (c RegisterDriverCommand) Validate() error {
	return c.guard.Validate(ErrRegisterDriverCommandIsNotConstructed)
}

// DriverID returns the driver ID from the command.
func (c RegisterDriverCommand) DriverID() kernel.DriverID {
	return c.driverID
}

// Name returns the driver name from the command.
func (c RegisterDriverCommand) Name() string {
	return c.name
}

// PasswordHash returns the credential hash from the command.
func (c RegisterDriverCommand) PasswordHash() []byte {
	return c.passwordHash
}

func (c *RegisterDriverCommand) setDriverID(driverID kernel.DriverID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}

func (c *RegisterDriverCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *RegisterDriverCommand) setPasswordHash(passwordHash []byte) error {
	if len(passwordHash) == 0 {
		return ErrPasswordHashIsRequired
	}

	c.passwordHash = passwordHash
	return nil
}
