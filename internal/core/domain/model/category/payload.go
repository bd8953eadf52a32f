package category

import (
	"errors"

	"freightquote/internal/pkg/errs"
)

// VehicleDetails carries the payload required for Vehicle shipments.
// Type, make and model are mandatory; the rest is informational.
type VehicleDetails struct {
	Type      string
	Make      string
	Model     string
	Year      string
	VIN       string
	Condition string
}

// Validate checks the mandatory vehicle fields.
func (v VehicleDetails) Validate() error {
	var errList []error
	if v.Type == "" {
		errList = append(errList, errs.NewValueIsRequiredError("vehicle type"))
	}
	if v.Make == "" {
		errList = append(errList, errs.NewValueIsRequiredError("vehicle make"))
	}
	if v.Model == "" {
		errList = append(errList, errs.NewValueIsRequiredError("vehicle model"))
	}
	return errors.Join(errList...)
}

// FreightDetails carries the payload required for LTL/FTL freight shipments.
type FreightDetails struct {
	FreightClass int
	PalletCount  int
}

// Normalize applies defaults: a missing pallet count becomes 1.
func (f FreightDetails) Normalize() FreightDetails {
	if f.PalletCount <= 0 {
		f.PalletCount = 1
	}
	return f
}

// Validate checks that a freight class was selected.
func (f FreightDetails) Validate() error {
	if f.FreightClass <= 0 {
		return errs.NewValueIsRequiredError("freight class")
	}
	return nil
}

// SuperHeavyDetails carries the payload for SuperHeavy shipments.
// Both fields are optional; permits default to not required.
type SuperHeavyDetails struct {
	PermitsRequired bool
	SpecialHandling string
}
