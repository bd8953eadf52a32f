package ports

import (
	"context"
	"errors"

	"freightquote/internal/core/domain/model/address"
	"freightquote/internal/core/domain/model/category"
	"freightquote/internal/core/domain/model/kernel"
	"freightquote/internal/core/domain/model/quote"
)

// ErrNoRatesForRoute is returned by RatingPort when the carrier platform has
// no rates for the requested route, as opposed to a transport or platform
// failure. For local routes this maps to the carrier-unavailable outcome.
var ErrNoRatesForRoute = errors.New("no rates available for this route")

// Country is one reference-data entry from the carrier platform.
type Country struct {
	Code kernel.CountryCode
	Name string
}

// ReferenceDataPort serves read-only reference data. Results are stable
// within a session and safe to cache by the caller.
type ReferenceDataPort interface {
	// ListCountries returns the shippable countries.
	ListCountries(ctx context.Context) ([]Country, error)
}

// AvailableModes is the availability check result for one route.
type AvailableModes struct {
	Modes             []string
	DeliveryAvailable bool
}

// AvailabilityPort checks whether delivery is offered for a route before any
// rating request goes out.
type AvailabilityPort interface {
	// CheckAvailableModes returns the transport modes offered for the
	// route and whether delivery is available at all. The category may be
	// Auto when classification has not happened yet.
	CheckAvailableModes(
		ctx context.Context,
		origin, destination kernel.CountryCode,
		cat category.Category,
	) (AvailableModes, error)
}

// ValidationResult is the address validation response. When Success is
// false the service could not validate the address; the flow proceeds with
// the original (fail open).
type ValidationResult struct {
	Success   bool
	Validated address.Address
}

// ValidationPort validates addresses against the carrier platform's address
// validation service.
type ValidationPort interface {
	ValidateAddress(ctx context.Context, addr address.Address) (ValidationResult, error)
}

// RatingResponse is the rating service's answer to one quote request.
// Quotes keep the service's original order; ranking happens in the core.
type RatingResponse struct {
	QuoteRequestID   kernel.UUID
	Quotes           []*quote.Quote
	PickupRequired   bool
	IsLocalShipping  bool
	IsYuusellHandled bool
}

// RatingPort prices quote requests with the carrier platform.
type RatingPort interface {
	// CalculateQuotes submits the request for pricing. Returns
	// ErrNoRatesForRoute (possibly wrapped) when the platform reports no
	// rates rather than failing outright.
	CalculateQuotes(ctx context.Context, request *quote.Request) (*RatingResponse, error)
}
