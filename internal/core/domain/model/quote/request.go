package quote

import (
	"errors"
	"fmt"

	"freightquote/internal/core/domain/model/address"
	"freightquote/internal/core/domain/model/category"
	"freightquote/internal/core/domain/model/kernel"
	"freightquote/internal/pkg/errs"
	"freightquote/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrQuoteRequestIsNotConstructed is returned when a QuoteRequest instance
// was not created through the NewQuoteRequest factory method.
var ErrQuoteRequestIsNotConstructed = errors.New("QuoteRequest must be created via NewQuoteRequest constructor")

// Dimensions are package dimensions in centimeters.
type Dimensions struct {
	LengthCm float64
	WidthCm  float64
	HeightCm float64
}

// Validate checks that all three dimensions are positive.
func (d Dimensions) Validate() error {
	var errList []error
	if d.LengthCm <= 0 {
		errList = append(errList, errs.NewValueIsRequiredError("length"))
	}
	if d.WidthCm <= 0 {
		errList = append(errList, errs.NewValueIsRequiredError("width"))
	}
	if d.HeightCm <= 0 {
		errList = append(errList, errs.NewValueIsRequiredError("height"))
	}
	return errors.Join(errList...)
}

// QuoteRequest is one rating submission, built fresh per attempt and never
// persisted by the engine. Its category is always concrete: classification
// happens before construction, so Auto never reaches a port.
//
// The category payloads are mutually exclusive and must match the category:
// Vehicle requires VehicleDetails, the freight categories require
// FreightDetails, SuperHeavy may carry SuperHeavyDetails.
type Request struct {
	originCountry      kernel.CountryCode
	destinationCountry kernel.CountryCode
	weightKg           float64
	dimensions         Dimensions
	declaredValue      decimal.Decimal
	category           category.Category
	vehicleDetails     *category.VehicleDetails
	freightDetails     *category.FreightDetails
	superHeavyDetails  *category.SuperHeavyDetails
	originAddress      *address.Address
	destinationAddress *address.Address

	guard guard.ConstructorGuard
}

// RequestParams collects the NewQuoteRequest inputs.
type RequestParams struct {
	OriginCountry      kernel.CountryCode
	DestinationCountry kernel.CountryCode
	WeightKg           float64
	Dimensions         Dimensions
	DeclaredValue      decimal.Decimal
	Category           category.Category
	VehicleDetails     *category.VehicleDetails
	FreightDetails     *category.FreightDetails
	SuperHeavyDetails  *category.SuperHeavyDetails
	OriginAddress      *address.Address
	DestinationAddress *address.Address
}

// NewQuoteRequest creates a validated rating request. It enforces the
// payload completeness rules: a vehicle shipment needs type, make and model;
// freight shipments need a freight class, with the pallet count defaulting
// to one.
func NewQuoteRequest(params RequestParams) (*Request, error) {
	request := &Request{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		request.setCountries(params.OriginCountry, params.DestinationCountry),
		request.setCategory(params.Category),
		request.setWeight(params.WeightKg, params.Category),
		request.setPayload(params),
	); err != nil {
		return nil, err
	}

	request.dimensions = params.Dimensions
	request.declaredValue = params.DeclaredValue
	request.originAddress = params.OriginAddress
	request.destinationAddress = params.DestinationAddress

	return request, nil
}

// Validate ensures the Request instance was properly constructed through
// NewQuoteRequest.
func (r *Request) Validate() error {
	if r == nil {
		return ErrQuoteRequestIsNotConstructed
	}
	return r.guard.Validate(ErrQuoteRequestIsNotConstructed)
}

func (r *Request) OriginCountry() kernel.CountryCode      { return r.originCountry }
func (r *Request) DestinationCountry() kernel.CountryCode { return r.destinationCountry }
func (r *Request) WeightKg() float64                      { return r.weightKg }
func (r *Request) Dimensions() Dimensions                 { return r.dimensions }
func (r *Request) DeclaredValue() decimal.Decimal         { return r.declaredValue }
func (r *Request) Category() category.Category            { return r.category }

func (r *Request) VehicleDetails() *category.VehicleDetails       { return r.vehicleDetails }
func (r *Request) FreightDetails() *category.FreightDetails       { return r.freightDetails }
func (r *Request) SuperHeavyDetails() *category.SuperHeavyDetails { return r.superHeavyDetails }

func (r *Request) OriginAddress() *address.Address      { return r.originAddress }
func (r *Request) DestinationAddress() *address.Address { return r.destinationAddress }

// IsLocal reports whether origin and destination are the same country.
func (r *Request) IsLocal() bool {
	return r.originCountry.IsEqual(r.destinationCountry)
}

func (r *Request) setCountries(origin, destination kernel.CountryCode) error {
	if origin.IsZero() {
		return errs.NewValueIsRequiredError("origin country")
	}
	if destination.IsZero() {
		return errs.NewValueIsRequiredError("destination country")
	}
	r.originCountry = origin
	r.destinationCountry = destination
	return nil
}

func (r *Request) setCategory(cat category.Category) error {
	if !cat.IsConcrete() {
		return errs.NewValueIsInvalidErrorWithCause(
			"category",
			fmt.Errorf("%s is not a concrete category", cat),
		)
	}
	r.category = cat
	return nil
}

func (r *Request) setWeight(weightKg float64, cat category.Category) error {
	// Vehicle shipments are priced from their details, not from weight.
	if weightKg <= 0 && cat != category.Vehicle {
		return errs.NewValueIsRequiredError("weight")
	}
	r.weightKg = weightKg
	return nil
}

func (r *Request) setPayload(params RequestParams) error {
	switch {
	case params.Category == category.Vehicle:
		if params.VehicleDetails == nil {
			return errs.NewValueIsRequiredError("vehicle details")
		}
		if err := params.VehicleDetails.Validate(); err != nil {
			return err
		}
		details := *params.VehicleDetails
		r.vehicleDetails = &details

	case params.Category.IsFreight():
		if params.FreightDetails == nil {
			return errs.NewValueIsRequiredError("freight details")
		}
		if err := params.FreightDetails.Validate(); err != nil {
			return err
		}
		details := params.FreightDetails.Normalize()
		r.freightDetails = &details

	case params.Category == category.SuperHeavy:
		if params.SuperHeavyDetails != nil {
			details := *params.SuperHeavyDetails
			r.superHeavyDetails = &details
		}
	}
	return nil
}
