// Package shipment models the converted shipment aggregate and the
// three-way result of a conversion attempt.
package shipment

import (
	"errors"

	"freightquote/internal/core/domain/model/kernel"
	"freightquote/internal/core/domain/model/quote"
	"freightquote/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrShipmentIsNotConstructed is returned when a Shipment instance was not
// created through the NewShipment factory method.
var ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment constructor")

// Shipment is the aggregate created when a quote request is converted. Each
// quote request converts into at most one shipment; the persistence layer
// enforces that with a uniqueness constraint on the quote request ID.
type Shipment struct {
	id             kernel.UUID
	quoteRequestID kernel.UUID
	carrier        string
	transportMode  string
	total          decimal.Decimal
	carrierRateRef string
	isPaid         bool

	isConstructed bool
}

// NewShipment creates a shipment from a selected quote. The shipment
// snapshots the quote's commercial fields so later rate changes never affect
// an already converted request.
func NewShipment(id, quoteRequestID kernel.UUID, selected *quote.Quote) (*Shipment, error) {
	if err := errors.Join(id.Validate(), quoteRequestID.Validate()); err != nil {
		return nil, err
	}
	if err := selected.Validate(); err != nil {
		return nil, err
	}

	return &Shipment{
		id:             id,
		quoteRequestID: quoteRequestID,
		carrier:        selected.Carrier(),
		transportMode:  selected.TransportMode(),
		total:          selected.Total(),
		carrierRateRef: selected.CarrierRateRef(),
		isConstructed:  true,
	}, nil
}

// RestoreShipment rebuilds a shipment from persistence without re-deriving
// it from a quote.
func RestoreShipment(
	id, quoteRequestID kernel.UUID,
	carrier, transportMode string,
	total decimal.Decimal,
	carrierRateRef string,
	isPaid bool,
) (*Shipment, error) {
	if err := errors.Join(id.Validate(), quoteRequestID.Validate()); err != nil {
		return nil, err
	}
	if carrier == "" {
		return nil, errs.NewValueIsRequiredError("carrier")
	}

	return &Shipment{
		id:             id,
		quoteRequestID: quoteRequestID,
		carrier:        carrier,
		transportMode:  transportMode,
		total:          total,
		carrierRateRef: carrierRateRef,
		isPaid:         isPaid,
		isConstructed:  true,
	}, nil
}

// Validate ensures the Shipment instance was properly constructed.
func (s *Shipment) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShipmentIsNotConstructed
	}
	return nil
}

// IsEqual compares two shipments by their unique identifiers.
func (s *Shipment) IsEqual(other *Shipment) bool {
	return other != nil && s.id.IsEqual(other.id)
}

func (s *Shipment) ID() kernel.UUID             { return s.id }
func (s *Shipment) QuoteRequestID() kernel.UUID { return s.quoteRequestID }
func (s *Shipment) Carrier() string             { return s.carrier }
func (s *Shipment) TransportMode() string       { return s.transportMode }
func (s *Shipment) Total() decimal.Decimal      { return s.total }
func (s *Shipment) CarrierRateRef() string      { return s.carrierRateRef }
func (s *Shipment) IsPaid() bool                { return s.isPaid }

// MarkPaid records that payment completed for the shipment.
func (s *Shipment) MarkPaid() error {
	if err := s.Validate(); err != nil {
		return err
	}

	s.isPaid = true
	return nil
}
