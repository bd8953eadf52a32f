// Package category defines the shipping category enumeration and the weight
// based classifier that resolves the transient Auto category into a concrete
// one before any request leaves the engine.
package category

import (
	"fmt"

	"freightquote/internal/core/domain/model/rules"
	"freightquote/internal/pkg/errs"
)

// Category represents the shipping category of a quote request.
//
// Auto is a transient input state only: the UI may submit it, but Classify
// always resolves it to a concrete category before a rating request is built.
// Vehicle and SuperHeavy are never derived from weight; they are explicit
// user selections carrying their own payloads.
type Category int

const (
	// Unknown represents an invalid or undefined category.
	// This value (0) helps catch uninitialized Category values.
	Unknown Category = iota

	// Auto means "derive from weight". It never reaches a port.
	Auto

	// SmallParcel covers shipments up to 30kg handled by courier networks.
	SmallParcel

	// HeavyParcel covers 30-100kg shipments handled by freight carriers.
	HeavyParcel

	// LTLFreight covers 100-4000kg palletized freight.
	LTLFreight

	// FTLFreight covers full-truckload shipments above 4000kg.
	FTLFreight

	// Vehicle covers cars, motorcycles and boats (RoRo/container).
	Vehicle

	// SuperHeavy covers oversized cargo requiring permits.
	SuperHeavy
)

// ErrWeightIsRequired is returned by Classify when the category is Auto and
// no positive weight was supplied; the caller must block submission.
var ErrWeightIsRequired = errs.NewValueIsRequiredError("weight is required to classify a shipment")

func getCategoryStrings() map[Category]string {
	return map[Category]string{
		Unknown:     "unknown",
		Auto:        "auto",
		SmallParcel: "small_parcel",
		HeavyParcel: "heavy_parcel",
		LTLFreight:  "ltl_freight",
		FTLFreight:  "ftl_freight",
		Vehicle:     "vehicle",
		SuperHeavy:  "super_heavy",
	}
}

func getValidCategoryStrings() map[Category]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Category]string{
		Auto:        "auto",
		SmallParcel: "small_parcel",
		HeavyParcel: "heavy_parcel",
		LTLFreight:  "ltl_freight",
		FTLFreight:  "ftl_freight",
		Vehicle:     "vehicle",
		SuperHeavy:  "super_heavy",
	}
}

// FromString parses the wire representation of a category.
// An empty string maps to Auto, matching the original form payloads where a
// null category means "derive from weight".
func FromString(s string) (Category, error) {
	if s == "" {
		return Auto, nil
	}
	for cat, str := range getValidCategoryStrings() {
		if str == s {
			return cat, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"shipping category",
		fmt.Errorf("%q is not a valid category", s),
	)
}

// Validate checks if the Category value is valid.
// Auto is valid as an input state; Unknown and out-of-range values are not.
func (c Category) Validate() error {
	if _, ok := getValidCategoryStrings()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"shipping category",
			fmt.Errorf("%d is not a valid category", c),
		)
	}
	return nil
}

// String returns the wire name of the category.
// This method implements the fmt.Stringer interface and is safe to call on
// any Category value, including invalid ones.
func (c Category) String() string {
	if str, ok := getCategoryStrings()[c]; ok {
		return str
	}
	return "unknown"
}

// IsConcrete reports whether the category is a resolved, sendable category
// (anything valid except Auto).
func (c Category) IsConcrete() bool {
	return c.Validate() == nil && c != Auto
}

// IsFreight reports whether the category requires freight details
// (freight class, pallet count).
func (c Category) IsFreight() bool {
	return c == LTLFreight || c == FTLFreight
}

// Classify resolves a category from weight and an explicit user selection.
//
// A non-Auto explicit category always wins: once the user has overridden the
// category the engine must stop recomputing it from weight. Otherwise the
// weight tiers apply with exclusive comparisons on each upper bound, so
// boundary values belong to the lower tier (100kg is heavy_parcel, 4000kg is
// ltl_freight). A non-positive weight with Auto returns ErrWeightIsRequired.
func Classify(weightKg float64, explicit Category) (Category, error) {
	if err := explicit.Validate(); err != nil {
		return Unknown, err
	}
	if explicit != Auto {
		return explicit, nil
	}

	switch {
	case weightKg > rules.LTLFreightMaxKg:
		return FTLFreight, nil
	case weightKg > rules.HeavyParcelMaxKg:
		return LTLFreight, nil
	case weightKg > rules.SmallParcelMaxKg:
		return HeavyParcel, nil
	case weightKg > 0:
		return SmallParcel, nil
	default:
		return Unknown, ErrWeightIsRequired
	}
}
