// Package ledgerrepo provides data transfer objects and mapping functions
// for the order tracking ledger. The ledger is written through the domain
// model but read only through SQL projections, so no reverse mapping to the
// aggregate exists here.
package ledgerrepo

import (
	"time"

	"dispatch/internal/core/domain/model/tracking"

	"github.com/google/uuid"
)

// LedgerEntryDTO represents the database structure for persisting ledger entries.
type LedgerEntryDTO struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	RequestID      int        `gorm:"type:int;not null;index"`
	DriverID       string     `gorm:"type:varchar(4);not null;index"`
	DropoffAddress string     `gorm:"type:varchar(255);not null"`
	Quantity       int        `gorm:"type:int;not null"`
	Status         int        `gorm:"type:int;not null;index"`
	OrderedAt      time.Time  `gorm:"not null"`
	CompletedAt    *time.Time `gorm:""`
}

// TableName specifies the database table name for ledger entries.
// Overrides GORM's default naming convention to use "order_tracking".
func (LedgerEntryDTO) TableName() string {
	return "order_tracking"
}

// fromDomain converts a ledger entry to its database representation.
func fromDomain(entry *tracking.LedgerEntry) LedgerEntryDTO {
	return LedgerEntryDTO{
		ID:             entry.ID().Bytes(),
		RequestID:      entry.RequestID().Int(),
		DriverID:       entry.DriverID().String(),
		DropoffAddress: entry.Dropoff().String(),
		Quantity:       entry.Quantity(),
		Status:         int(entry.Status()),
		OrderedAt:      entry.OrderedAt(),
		CompletedAt:    entry.CompletedAt(),
	}
}
