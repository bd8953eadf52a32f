// Package shipmentrepo provides data transfer objects and mapping functions
// for shipment persistence. This package implements the repository pattern
// for the shipment aggregate, handling the conversion between domain
// entities and database representations.
package shipmentrepo

import (
	"time"

	"freightquote/internal/core/domain/model/kernel"
	"freightquote/internal/core/domain/model/shipment"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ShipmentDTO represents the database structure for persisting shipment
// aggregates. The unique index on QuoteRequestID is the at-most-once
// conversion guarantee: a second insert for the same quote request fails at
// the database, whatever the callers are doing concurrently.
type ShipmentDTO struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	QuoteRequestID uuid.UUID       `gorm:"type:uuid;uniqueIndex"`
	Carrier        string          `gorm:"not null"`
	TransportMode  string
	Total          decimal.Decimal `gorm:"type:numeric(12,2)"`
	CarrierRateRef string
	IsPaid         bool
	CreatedAt      time.Time
}

// TableName specifies the database table name for shipment entities.
func (ShipmentDTO) TableName() string {
	return "shipments"
}

// fromDomain converts a shipment aggregate to its database representation.
func fromDomain(aggregate *shipment.Shipment) ShipmentDTO {
	return ShipmentDTO{
		ID:             aggregate.ID().Bytes(),
		QuoteRequestID: aggregate.QuoteRequestID().Bytes(),
		Carrier:        aggregate.Carrier(),
		TransportMode:  aggregate.TransportMode(),
		Total:          aggregate.Total(),
		CarrierRateRef: aggregate.CarrierRateRef(),
		IsPaid:         aggregate.IsPaid(),
	}
}

// toDomain converts a database DTO to a shipment aggregate.
func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	quoteRequestID, err := kernel.UUIDFromBytes(dto.QuoteRequestID[:])
	if err != nil {
		return nil, err
	}

	return shipment.RestoreShipment(
		id,
		quoteRequestID,
		dto.Carrier,
		dto.TransportMode,
		dto.Total,
		dto.CarrierRateRef,
		dto.IsPaid,
	)
}
