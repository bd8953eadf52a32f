package queries

import (
	"errors"

	"freightquote/internal/core/domain/model/kernel"
	"freightquote/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetConvertedShipmentQueryIsNotConstructed = errors.New(
	"GetConvertedShipmentQuery must be created via NewGetConvertedShipmentQuery constructor",
)

// GetConvertedShipmentQuery looks up the shipment a quote request was
// converted into, if any. Used by the checkout flow to decide whether a
// request may still be converted or should redirect to payment/tracking.
type GetConvertedShipmentQuery struct {
	quoteRequestID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetConvertedShipmentQuery creates a query for one quote request's
// shipment.
func NewGetConvertedShipmentQuery(quoteRequestID kernel.UUID) (GetConvertedShipmentQuery, error) {
	if err := quoteRequestID.Validate(); err != nil {
		return GetConvertedShipmentQuery{}, err
	}

	return GetConvertedShipmentQuery{
		quoteRequestID: quoteRequestID,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetConvertedShipmentQuery) Validate() error {
	return q.guard.Validate(ErrGetConvertedShipmentQueryIsNotConstructed)
}

// QuoteRequestID returns the quote request to look up.
func (q GetConvertedShipmentQuery) QuoteRequestID() kernel.UUID {
	return q.quoteRequestID
}

// GetConvertedShipmentQueryResponse is the shipment read model.
type GetConvertedShipmentQueryResponse struct {
	ShipmentID     kernel.UUID
	QuoteRequestID kernel.UUID
	Carrier        string
	TransportMode  string
	Total          decimal.Decimal
	IsPaid         bool
}
