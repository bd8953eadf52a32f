package services

import (
	"freightquote/internal/core/domain/model/category"
	"freightquote/internal/core/domain/model/kernel"
	"freightquote/internal/core/domain/model/rules"
)

// RequirementResolver is a domain service that decides which inputs are
// mandatory for a quote attempt: whether a scheduled pickup is forced,
// whether full addresses must be collected before rating, and which address
// fields each country demands.
//
// Business rules:
//   - Pickup is forced at 100kg and above, and always for vehicles and
//     super-heavy cargo.
//   - Addresses are collected up front for local shipments, pickup
//     shipments, and origins whose country needs structured address data.
//   - City and email are always required; postal code and state/province
//     follow the per-country tables.
type RequirementResolver struct{}

// NewRequirementResolver creates a new RequirementResolver instance.
func NewRequirementResolver() RequirementResolver {
	return RequirementResolver{}
}

// FieldRequirements lists which address fields are mandatory for one
// country. It applies to the origin always, and to the destination only on
// local shipments.
type FieldRequirements struct {
	CityRequired       bool
	PostalCodeRequired bool
	StateRequired      bool
	EmailRequired      bool
}

// ResolvePickup reports whether the shipment forces a scheduled pickup:
// at or above 100kg, or for the explicit-payload categories that cannot go
// through a drop-off location.
//
// The weight comparison is inclusive while the classifier's heavy/ltl
// boundary is exclusive, so a shipment at exactly 100kg is a heavy parcel
// that is nonetheless pickup-required. That asymmetry is long-standing
// carrier-facing behavior and is kept.
func (r RequirementResolver) ResolvePickup(weightKg float64, cat category.Category) bool {
	return weightKg >= rules.PickupWeightKg ||
		cat == category.Vehicle ||
		cat == category.SuperHeavy
}

// ResolveAddressRequirement reports whether full addresses must be collected
// before rating. True for local shipments, pickup shipments, and whenever
// the origin country needs structured address data regardless of locality.
// Once true via locality or pickup it stays true; the country table can only
// add requirements, never remove them.
func (r RequirementResolver) ResolveAddressRequirement(
	origin, destination kernel.CountryCode,
	pickupRequired bool,
) bool {
	return origin.IsEqual(destination) ||
		pickupRequired ||
		rules.NeedsStructuredAddress(origin)
}

// ResolveFieldRequirements returns the per-field requirements for one
// country. City and email are unconditionally required; postal code and
// state follow the country tables.
func (r RequirementResolver) ResolveFieldRequirements(country kernel.CountryCode) FieldRequirements {
	return FieldRequirements{
		CityRequired:       true,
		PostalCodeRequired: rules.PostalCodeRequired(country),
		StateRequired:      rules.StateRequired(country),
		EmailRequired:      true,
	}
}
