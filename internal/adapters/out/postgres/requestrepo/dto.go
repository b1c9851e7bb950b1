// Package requestrepo provides data transfer objects and mapping functions
// for delivery request persistence. The request identifier is assigned by
// the database on insert and written back into the aggregate.
package requestrepo

import (
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/request"
)

// RequestDTO represents the database structure for persisting delivery requests.
type RequestDTO struct {
	ID               int        `gorm:"primaryKey;autoIncrement"`
	DropoffAddress   string     `gorm:"type:varchar(255);not null"`
	Quantity         int        `gorm:"type:int;not null"`
	Status           int        `gorm:"type:int;not null;index"`
	AssignedDriverID *string    `gorm:"type:varchar(4);index"`
	OrderedAt        time.Time  `gorm:"not null"`
	StartTime        *time.Time `gorm:""`
}

// TableName specifies the database table name for request entities.
// Overrides GORM's default naming convention to use "delivery_requests".
func (RequestDTO) TableName() string {
	return "delivery_requests"
}

// fromDomain converts a request domain aggregate to its database representation.
// A not-yet-persisted aggregate maps to a zero ID, which lets the database
// assign one on insert.
func fromDomain(aggregate *request.DeliveryRequest) RequestDTO {
	var assignedDriverID *string
	if aggregate.AssignedDriver() != nil {
		id := aggregate.AssignedDriver().String()
		assignedDriverID = &id
	}

	return RequestDTO{
		ID:               aggregate.ID().Int(),
		DropoffAddress:   aggregate.Dropoff().String(),
		Quantity:         aggregate.Quantity(),
		Status:           int(aggregate.Status()),
		AssignedDriverID: assignedDriverID,
		OrderedAt:        aggregate.OrderedAt(),
		StartTime:        aggregate.StartTime(),
	}
}

// toDomain converts a database DTO to a request domain aggregate.
func toDomain(dto RequestDTO) (*request.DeliveryRequest, error) {
	id, err := kernel.NewRequestID(dto.ID)
	if err != nil {
		return nil, err
	}

	dropoff, err := kernel.NewAddress(dto.DropoffAddress)
	if err != nil {
		return nil, err
	}

	var assignedDriverID *kernel.DriverID
	if dto.AssignedDriverID != nil {
		driverID, drvErr := kernel.NewDriverID(*dto.AssignedDriverID)
		if drvErr != nil {
			return nil, drvErr
		}
		assignedDriverID = &driverID
	}

	return request.RestoreDeliveryRequest(
		id,
		dropoff,
		dto.Quantity,
		request.Status(dto.Status),
		assignedDriverID,
		dto.OrderedAt,
		dto.StartTime,
	)
}
