// Package ports defines the outbound contracts of the quote engine: the
// persistence interfaces for shipment aggregates and the gateways to the
// external carrier platform. These interfaces establish contracts between
// the core and infrastructure, enabling dependency inversion and
// testability.
package ports

import (
	"context"

	"freightquote/internal/core/domain/model/kernel"
	"freightquote/internal/core/domain/model/shipment"
)

// ShipmentRepository defines the persistence contract for shipment
// aggregates. The storage layer enforces at most one shipment per quote
// request with a uniqueness constraint on the quote request ID; Add on a
// duplicate surfaces that violation as an error the caller inspects.
type ShipmentRepository interface {
	// Add persists a new shipment aggregate to storage.
	// Fails when a shipment for the same quote request already exists.
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	// Update persists changes to an existing shipment aggregate.
	Update(ctx context.Context, aggregate *shipment.Shipment) error

	// Get retrieves a shipment aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error)

	// GetByQuoteRequestID retrieves the shipment converted from a quote
	// request, if any. Returns an errs.ObjectNotFoundError when the
	// request was never converted.
	GetByQuoteRequestID(ctx context.Context, quoteRequestID kernel.UUID) (*shipment.Shipment, error)
}
