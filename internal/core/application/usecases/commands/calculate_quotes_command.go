package commands

import (
	"errors"

	"freightquote/internal/core/domain/model/address"
	"freightquote/internal/core/domain/model/category"
	"freightquote/internal/core/domain/model/kernel"
	"freightquote/internal/core/domain/model/quote"
	"freightquote/internal/pkg/errs"
	"freightquote/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrCalculateQuotesCommandIsNotConstructed is returned when the command was
// not created via its constructor.
var ErrCalculateQuotesCommandIsNotConstructed = errors.New(
	"CalculateQuotesCommand must be created via NewCalculateQuotesCommand constructor",
)

// CalculateQuotesParams collects the NewCalculateQuotesCommand inputs, raw
// from the submission form. Category may be Auto; classification happens in
// the handler. RankBy zero value defaults to price ordering.
type CalculateQuotesParams struct {
	OriginCountry      kernel.CountryCode
	DestinationCountry kernel.CountryCode
	WeightKg           float64
	Dimensions         quote.Dimensions
	DeclaredValue      decimal.Decimal
	Category           category.Category
	VehicleDetails     *category.VehicleDetails
	FreightDetails     *category.FreightDetails
	SuperHeavyDetails  *category.SuperHeavyDetails
	OriginAddress      address.Address
	DestinationAddress address.Address
	RankBy             quote.RankBy
}

// CalculateQuotesCommand requests pricing for one shipment submission.
type CalculateQuotesCommand struct { //nolint:recvcheck //using for validation
	originCountry      kernel.CountryCode
	destinationCountry kernel.CountryCode
	weightKg           float64
	dimensions         quote.Dimensions
	declaredValue      decimal.Decimal
	category           category.Category
	vehicleDetails     *category.VehicleDetails
	freightDetails     *category.FreightDetails
	superHeavyDetails  *category.SuperHeavyDetails
	originAddress      address.Address
	destinationAddress address.Address
	rankBy             quote.RankBy

	guard guard.ConstructorGuard
}

// NewCalculateQuotesCommand creates a command to calculate quotes.
// Validates the route and ranking criterion up front; weight, category and
// payload rules are enforced by the handler where classification happens.
func NewCalculateQuotesCommand(params CalculateQuotesParams) (CalculateQuotesCommand, error) {
	cmd := CalculateQuotesCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCountries(params.OriginCountry, params.DestinationCountry),
		cmd.setRankBy(params.RankBy),
	); err != nil {
		return CalculateQuotesCommand{}, err
	}

	cmd.weightKg = params.WeightKg
	cmd.dimensions = params.Dimensions
	cmd.declaredValue = params.DeclaredValue
	cmd.category = params.Category
	cmd.vehicleDetails = params.VehicleDetails
	cmd.freightDetails = params.FreightDetails
	cmd.superHeavyDetails = params.SuperHeavyDetails
	cmd.originAddress = params.OriginAddress
	cmd.destinationAddress = params.DestinationAddress

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CalculateQuotesCommand) Validate() error {
	return c.guard.Validate(ErrCalculateQuotesCommandIsNotConstructed)
}

func (c CalculateQuotesCommand) OriginCountry() kernel.CountryCode      { return c.originCountry }
func (c CalculateQuotesCommand) DestinationCountry() kernel.CountryCode { return c.destinationCountry }
func (c CalculateQuotesCommand) WeightKg() float64                      { return c.weightKg }
func (c CalculateQuotesCommand) Dimensions() quote.Dimensions           { return c.dimensions }
func (c CalculateQuotesCommand) DeclaredValue() decimal.Decimal         { return c.declaredValue }
func (c CalculateQuotesCommand) Category() category.Category            { return c.category }
func (c CalculateQuotesCommand) OriginAddress() address.Address         { return c.originAddress }
func (c CalculateQuotesCommand) DestinationAddress() address.Address    { return c.destinationAddress }
func (c CalculateQuotesCommand) RankBy() quote.RankBy                   { return c.rankBy }

func (c CalculateQuotesCommand) VehicleDetails() *category.VehicleDetails {
	return c.vehicleDetails
}

func (c CalculateQuotesCommand) FreightDetails() *category.FreightDetails {
	return c.freightDetails
}

func (c CalculateQuotesCommand) SuperHeavyDetails() *category.SuperHeavyDetails {
	return c.superHeavyDetails
}

func (c *CalculateQuotesCommand) setCountries(origin, destination kernel.CountryCode) error {
	if origin.IsZero() {
		return errs.NewValueIsRequiredError("origin country")
	}
	if destination.IsZero() {
		return errs.NewValueIsRequiredError("destination country")
	}
	c.originCountry = origin
	c.destinationCountry = destination
	return nil
}

func (c *CalculateQuotesCommand) setRankBy(rankBy quote.RankBy) error {
	if rankBy == 0 {
		rankBy = quote.RankByPrice
	}
	if err := rankBy.Validate(); err != nil {
		return err
	}
	c.rankBy = rankBy
	return nil
}
