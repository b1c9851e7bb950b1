// Package driverrepo provides data transfer objects and mapping functions for driver persistence.
// This package implements the repository pattern for the driver aggregate, handling
// the conversion between domain entities and database representations.
package driverrepo

import (
	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
)

// DriverDTO represents the database structure for persisting driver aggregates.
type DriverDTO struct {
	ID           string `gorm:"type:varchar(4);primaryKey"`
	Name         string `gorm:"type:varchar(255);not null"`
	PasswordHash []byte `gorm:"type:bytea;not null"`
	Stock        int    `gorm:"type:int;not null"`
}

// TableName specifies the database table name for driver entities.
// Overrides GORM's default naming convention to use "drivers" instead of "driver_dtos".
func (DriverDTO) TableName() string {
	return "drivers"
}

// fromDomain converts a driver domain aggregate to its database representation.
func fromDomain(aggregate *driver.Driver) DriverDTO {
	return DriverDTO{
		ID:           aggregate.ID().String(),
		Name:         aggregate.Name(),
		PasswordHash: aggregate.PasswordHash(),
		Stock:        aggregate.Stock(),
	}
}

// toDomain converts a database DTO to a driver domain aggregate.
func toDomain(dto DriverDTO) (*driver.Driver, error) {
	id, err := kernel.NewDriverID(dto.ID)
	if err != nil {
		return nil, err
	}

	return driver.RestoreDriver(id, dto.Name, dto.PasswordHash, dto.Stock)
}
