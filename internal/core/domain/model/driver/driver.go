package driver

import (
	"errors"
	"fmt"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

const (
	// MaxStock is the upper bound on a driver's carrying capacity.
	MaxStock = 9
	// MaxActiveDeliveries is the number of deliveries a driver may have
	// in progress at the same time.
	MaxActiveDeliveries = 3
)

// Domain errors for driver operations.
var (
	// ErrNameIsRequired is returned when attempting to create a driver without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrPasswordHashIsRequired is returned when attempting to create a driver without a password hash.
	ErrPasswordHashIsRequired = errs.NewValueIsRequiredError("passwordHash")
	// ErrDriverIsNotConstructed is returned when using an improperly initialized Driver.
	ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver constructor")
	// ErrInsufficientStock is returned when a debit would exceed the driver's current stock.
	ErrInsufficientStock = errors.New("insufficient stock for this delivery")
	// ErrDriverAlreadyExists is returned when registering a driver whose identifier is taken.
	ErrDriverAlreadyExists = errors.New("driver already exists")
)

// Driver represents a delivery driver in the system.
// It is an aggregate root that manages driver identity and the bounded
// carrying capacity consumed by deliveries.
//
// Key responsibilities:
//   - Managing driver identity (ID, name, password hash)
//   - Enforcing the stock invariant 0 <= stock <= MaxStock
//   - Debiting stock when a delivery is accepted
//   - Crediting stock back when a delivery is resigned
//
// Example usage:
//
//	id, _ := kernel.NewDriverID("D001")
//	driver, err := NewDriver(id, "Tanaka", passwordHash)
//	if err != nil {
//	    // Handle construction error
//	}
//	// New drivers start with zero stock and must restock before accepting.
type Driver struct {
	// id uniquely identifies the driver
	id kernel.DriverID
	// name is the human-readable name of the driver
	name string
	// passwordHash is the upstream-produced credential hash; the core
	// stores it opaquely and never inspects it
	passwordHash []byte
	// stock is the remaining carrying capacity
	stock int
	// guard ensures the driver was properly constructed
	guard guard.ConstructorGuard
}

// NewDriver creates a new Driver with the specified parameters.
// This is the only way to create a valid Driver instance for registration.
// New drivers always start with zero stock.
//
// Returns a validation error if the identifier, name, or password hash is
// missing or invalid (aggregated errors for multiple issues).
func NewDriver(id kernel.DriverID, name string, passwordHash []byte) (*Driver, error) {
	driver := &Driver{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		driver.setID(id),
		driver.setName(name),
		driver.setPasswordHash(passwordHash),
	); err != nil {
		return nil, err
	}

	return driver, nil
}

// RestoreDriver reconstructs a Driver aggregate from persistent storage.
// Unlike NewDriver, which creates fresh drivers with zero stock, this
// constructor restores a driver to its previously persisted state.
func RestoreDriver(id kernel.DriverID, name string, passwordHash []byte, stock int) (*Driver, error) {
	driver := &Driver{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		driver.setID(id),
		driver.setName(name),
		driver.setPasswordHash(passwordHash),
		driver.setStock(stock),
	); err != nil {
		return nil, err
	}

	return driver, nil
}

// IsEqual compares two drivers for equality based on their identifiers.
func (d *Driver) IsEqual(other *Driver) bool {
	if other == nil {
		return false
	}
	return d.id.IsEqual(other.id)
}

// Validate checks if the Driver was properly constructed via NewDriver or
// RestoreDriver. The zero value of Driver is invalid.
func (d *Driver) Validate() error {
	if d == nil {
		return ErrDriverIsNotConstructed
	}
	return d.guard.Validate(ErrDriverIsNotConstructed)
}

// ID returns the unique identifier of the driver.
func (d *Driver) ID() kernel.DriverID {
	return d.id
}

// Name returns the human-readable name of the driver.
func (d *Driver) Name() string {
	return d.name
}

// PasswordHash returns a copy of the stored credential hash.
// The copy prevents external mutation of aggregate state.
func (d *Driver) PasswordHash() []byte {
	out := make([]byte, len(d.passwordHash))
	copy(out, d.passwordHash)
	return out
}

// Stock returns the driver's remaining carrying capacity.
func (d *Driver) Stock() int {
	return d.stock
}

// CanCarry reports whether the driver's current stock covers the given
// quantity. It validates capacity without actually debiting.
func (d *Driver) CanCarry(quantity int) (bool, error) {
	if quantity <= 0 {
		return false, errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}

	return d.stock >= quantity, nil
}

// Restock increases the driver's stock by the requested increment.
// This is the only path by which stock increases outside of a resigned
// delivery.
//
// Fails when the increment is not positive or when the resulting stock
// would exceed MaxStock; the aggregate is left unchanged on failure.
func (d *Driver) Restock(increment int) error {
	if increment <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"increment",
			fmt.Errorf("%d is not greater than 0", increment),
		)
	}

	if d.stock+increment > MaxStock {
		return errs.NewValueIsOutOfRangeError("stock", d.stock+increment, 0, MaxStock)
	}

	d.stock += increment
	return nil
}

// Debit consumes stock for an accepted delivery.
// Returns ErrInsufficientStock when the quantity exceeds the current stock;
// the aggregate is left unchanged on failure.
func (d *Driver) Debit(quantity int) error {
	canCarry, err := d.CanCarry(quantity)
	if err != nil {
		return err
	}
	if !canCarry {
		return ErrInsufficientStock
	}

	d.stock -= quantity
	return nil
}

// Credit restores stock for a resigned delivery.
// Under conserved stock the result can never exceed MaxStock, but the
// aggregate refuses rather than silently clamping if it would.
func (d *Driver) Credit(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}

	if d.stock+quantity > MaxStock {
		return errs.NewValueIsOutOfRangeError("stock", d.stock+quantity, 0, MaxStock)
	}

	d.stock += quantity
	return nil
}

// setID sets the driver's identifier with validation.
// This is an internal setter used during construction.
func (d *Driver) setID(id kernel.DriverID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	d.id = id
	return nil
}

// setName sets the driver's name with validation.
// This is an internal setter used during construction.
func (d *Driver) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	d.name = name
	return nil
}

// setPasswordHash sets the stored credential hash with validation.
// This is an internal setter used during construction.
func (d *Driver) setPasswordHash(passwordHash []byte) error {
	if len(passwordHash) == 0 {
		return ErrPasswordHashIsRequired
	}

	d.passwordHash = make([]byte, len(passwordHash))
	copy(d.passwordHash, passwordHash)
	return nil
}

// setStock sets the driver's stock level with validation.
// Used during restoration from persistent state.
func (d *Driver) setStock(stock int) error {
	if stock < 0 || stock > MaxStock {
		return errs.NewValueIsOutOfRangeError("stock", stock, 0, MaxStock)
	}

	d.stock = stock
	return nil
}
