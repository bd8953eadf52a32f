// Package quote models priced shipping options and the request that produces
// them. Quotes are immutable snapshots of what the rating service returned;
// the engine never recomputes prices, it only ranks, guards selection and
// derives total transit estimates.
package quote

import (
	"errors"
	"fmt"

	"freightquote/internal/pkg/errs"
	"freightquote/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	// ErrQuoteIsNotConstructed is returned when a Quote instance was not
	// created through the NewQuote factory method.
	ErrQuoteIsNotConstructed = errors.New("Quote must be created via NewQuote constructor")

	// ErrQuoteIsNotSelectable is returned by EnsureSelectable for local
	// quotes that carry no carrier rate reference. Such quotes are display
	// estimates; converting them would create a shipment with no bookable
	// rate behind it.
	ErrQuoteIsNotSelectable = errors.New("quote has no carrier rate reference and cannot be selected")
)

// TransitWindow is an estimated delivery window in days.
type TransitWindow struct {
	MinDays int
	MaxDays int
}

// IsZero reports whether no window was reported.
func (w TransitWindow) IsZero() bool {
	return w.MinDays == 0 && w.MaxDays == 0
}

// Add returns the window covering both legs back to back.
func (w TransitWindow) Add(other TransitWindow) TransitWindow {
	return TransitWindow{
		MinDays: w.MinDays + other.MinDays,
		MaxDays: w.MaxDays + other.MaxDays,
	}
}

// Doubled returns the window with both bounds doubled. Used as the coarse
// door-to-door estimate for drop-off quotes that report only the carrier's
// own leg (see Quote.TotalTransit).
func (w TransitWindow) Doubled() TransitWindow {
	return TransitWindow{MinDays: w.MinDays * 2, MaxDays: w.MaxDays * 2}
}

// Flags carries the rating service's routing markers for one quote.
type Flags struct {
	PickupRequired        bool
	IsLocalShipping       bool
	IsInternationalParcel bool
	RequiresDropOff       bool
}

// Leg is one segment of a two-leg international parcel route. Leg one runs
// origin to warehouse under a named carrier; leg two runs warehouse to
// destination under a transport mode.
type Leg struct {
	Carrier       string
	TransportMode string
	Cost          decimal.Decimal
	Transit       TransitWindow
}

// Quote is an immutable priced shipping option returned by the rating
// service.
type Quote struct {
	carrier        string
	transportMode  string
	total          decimal.Decimal
	baseRate       decimal.Decimal
	surcharges     decimal.Decimal
	transit        TransitWindow
	flags          Flags
	legs           []Leg
	carrierRateRef string

	guard guard.ConstructorGuard
}

// QuoteParams collects the NewQuote inputs. Legs is either empty or exactly
// two entries; CarrierRateRef is empty for display-only local estimates.
type QuoteParams struct {
	Carrier        string
	TransportMode  string
	Total          decimal.Decimal
	BaseRate       decimal.Decimal
	Surcharges     decimal.Decimal
	Transit        TransitWindow
	Flags          Flags
	Legs           []Leg
	CarrierRateRef string
}

// NewQuote creates a validated Quote from a rating service row.
func NewQuote(params QuoteParams) (*Quote, error) {
	quote := &Quote{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		quote.setCarrier(params.Carrier),
		quote.setTotal(params.Total),
		quote.setLegs(params.Legs),
	); err != nil {
		return nil, err
	}

	quote.transportMode = params.TransportMode
	quote.baseRate = params.BaseRate
	quote.surcharges = params.Surcharges
	quote.transit = params.Transit
	quote.flags = params.Flags
	quote.carrierRateRef = params.CarrierRateRef

	return quote, nil
}

// Validate ensures the Quote instance was properly constructed through
// NewQuote.
func (q *Quote) Validate() error {
	if q == nil {
		return ErrQuoteIsNotConstructed
	}
	return q.guard.Validate(ErrQuoteIsNotConstructed)
}

func (q *Quote) Carrier() string             { return q.carrier }
func (q *Quote) TransportMode() string       { return q.transportMode }
func (q *Quote) Total() decimal.Decimal      { return q.total }
func (q *Quote) BaseRate() decimal.Decimal   { return q.baseRate }
func (q *Quote) Surcharges() decimal.Decimal { return q.surcharges }
func (q *Quote) Transit() TransitWindow      { return q.transit }
func (q *Quote) Flags() Flags                { return q.flags }
func (q *Quote) CarrierRateRef() string      { return q.carrierRateRef }

// Legs returns a copy of the two-leg breakdown, or nil when the quote is a
// single-leg route.
func (q *Quote) Legs() []Leg {
	if q.legs == nil {
		return nil
	}
	legs := make([]Leg, len(q.legs))
	copy(legs, q.legs)
	return legs
}

// TotalTransit derives the door-to-door delivery window:
//   - a two-leg international parcel sums both legs' windows;
//   - a drop-off quote without a leg breakdown reports only the carrier's
//     own window, so it is doubled as a coarse estimate of the full journey;
//   - everything else uses the reported window as is.
func (q *Quote) TotalTransit() TransitWindow {
	if q.flags.IsInternationalParcel && len(q.legs) == 2 {
		return q.legs[0].Transit.Add(q.legs[1].Transit)
	}
	if q.flags.RequiresDropOff && len(q.legs) == 0 {
		return q.transit.Doubled()
	}
	return q.transit
}

// EnsureSelectable rejects quotes that must not reach conversion: a local
// shipping quote without a carrier rate reference is a display-only estimate.
// Callers check this before any conversion call goes out.
func (q *Quote) EnsureSelectable() error {
	if err := q.Validate(); err != nil {
		return err
	}
	if q.flags.IsLocalShipping && q.carrierRateRef == "" {
		return ErrQuoteIsNotSelectable
	}
	return nil
}

func (q *Quote) setCarrier(carrier string) error {
	if carrier == "" {
		return errs.NewValueIsRequiredError("carrier")
	}
	q.carrier = carrier
	return nil
}

func (q *Quote) setTotal(total decimal.Decimal) error {
	if total.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause(
			"total",
			fmt.Errorf("%s is negative", total),
		)
	}
	q.total = total
	return nil
}

func (q *Quote) setLegs(legs []Leg) error {
	if len(legs) == 0 {
		return nil
	}
	if len(legs) != 2 {
		return errs.NewValueIsInvalidErrorWithCause(
			"legs",
			fmt.Errorf("expected 0 or 2 legs, got %d", len(legs)),
		)
	}
	q.legs = make([]Leg, len(legs))
	copy(q.legs, legs)
	return nil
}
