package commands

import (
	"context"
	"errors"
	"log/slog"

	"freightquote/internal/core/domain/model/address"
	"freightquote/internal/core/domain/model/category"
	"freightquote/internal/core/domain/model/kernel"
	"freightquote/internal/core/domain/model/quote"
	"freightquote/internal/core/domain/model/rules"
	"freightquote/internal/core/domain/services"
	"freightquote/internal/core/ports"
)

// ErrCarrierUnavailable is returned when the availability check refuses the
// route, or when rating returns no quotes for a local route. Terminal for
// the current attempt: the user must change inputs.
var ErrCarrierUnavailable = errors.New("carrier is not available for this route")

// QuotesResult is the aggregated, ranked answer to one quote calculation.
type QuotesResult struct {
	QuoteRequestID    kernel.UUID
	Quotes            []*quote.Quote
	Category          category.Category
	PickupRequired    bool
	IsLocalShipping   bool
	AddressesRequired bool
}

// CalculateQuotesCommandHandler orchestrates a quote calculation: classify
// the shipment, resolve pickup and address requirements, gate on carrier
// availability, price through the rating service and rank the result.
type CalculateQuotesCommandHandler struct {
	availabilityPort ports.AvailabilityPort
	ratingPort       ports.RatingPort
	resolver         services.RequirementResolver
	logger           *slog.Logger
}

// NewCalculateQuotesCommandHandler creates a handler for quote calculation.
func NewCalculateQuotesCommandHandler(
	availabilityPort ports.AvailabilityPort,
	ratingPort ports.RatingPort,
	resolver services.RequirementResolver,
	logger *slog.Logger,
) CalculateQuotesCommandHandler {
	return CalculateQuotesCommandHandler{
		availabilityPort: availabilityPort,
		ratingPort:       ratingPort,
		resolver:         resolver,
		logger:           logger,
	}
}

// Handle runs one quote calculation.
//
// Pre-rating checks run in order: classification (weight is required when
// the category is Auto), payload completeness via the request constructor,
// and the availability gate, which refuses the whole attempt with
// ErrCarrierUnavailable when delivery is not offered on the route.
//
// Rating failures fail closed, with one distinction: a no-rates answer on a
// local route also maps to ErrCarrierUnavailable, as does an empty quote
// list there. Returned quotes are ranked stably from the rating service's
// original order.
func (h *CalculateQuotesCommandHandler) Handle(
	ctx context.Context,
	cmd CalculateQuotesCommand,
) (QuotesResult, error) {
	if err := cmd.Validate(); err != nil {
		return QuotesResult{}, err
	}

	resolved, err := category.Classify(cmd.WeightKg(), cmd.Category())
	if err != nil {
		return QuotesResult{}, err
	}

	pickupRequired := h.resolver.ResolvePickup(cmd.WeightKg(), resolved)
	addressesRequired := h.resolver.ResolveAddressRequirement(
		cmd.OriginCountry(), cmd.DestinationCountry(), pickupRequired)

	modes, err := h.availabilityPort.CheckAvailableModes(
		ctx, cmd.OriginCountry(), cmd.DestinationCountry(), resolved)
	if err != nil {
		return QuotesResult{}, err
	}
	if !modes.DeliveryAvailable {
		return QuotesResult{}, ErrCarrierUnavailable
	}

	request, err := h.buildRequest(cmd, resolved, addressesRequired)
	if err != nil {
		return QuotesResult{}, err
	}

	response, err := h.ratingPort.CalculateQuotes(ctx, request)
	if err != nil {
		if errors.Is(err, ports.ErrNoRatesForRoute) && request.IsLocal() {
			return QuotesResult{}, ErrCarrierUnavailable
		}
		return QuotesResult{}, err
	}

	if len(response.Quotes) == 0 && response.IsLocalShipping {
		return QuotesResult{}, ErrCarrierUnavailable
	}

	ranked, err := quote.Rank(response.Quotes, cmd.RankBy())
	if err != nil {
		return QuotesResult{}, err
	}

	h.logger.InfoContext(ctx, "quotes calculated",
		"quote_request_id", response.QuoteRequestID.String(),
		"category", resolved.String(),
		"quotes", len(ranked),
		"pickup_required", response.PickupRequired)

	return QuotesResult{
		QuoteRequestID:    response.QuoteRequestID,
		Quotes:            ranked,
		Category:          resolved,
		PickupRequired:    response.PickupRequired || pickupRequired,
		IsLocalShipping:   response.IsLocalShipping,
		AddressesRequired: addressesRequired,
	}, nil
}

// buildRequest assembles the rating request, applying the address inclusion
// rule: the origin address travels with the request only when addresses are
// required and a street address exists; a structured-address country without
// a street still contributes its city/state/postal/country. The destination
// address is attached only for local shipments.
func (h *CalculateQuotesCommandHandler) buildRequest(
	cmd CalculateQuotesCommand,
	resolved category.Category,
	addressesRequired bool,
) (*quote.Request, error) {
	var originAddress *address.Address
	origin := cmd.OriginAddress()
	switch {
	case addressesRequired && origin.HasStreetAddress():
		originAddress = &origin
	case rules.NeedsStructuredAddress(cmd.OriginCountry()) && !origin.HasStreetAddress():
		structural := origin.Structural()
		if structural.Country().IsZero() {
			structural = structural.WithCountry(cmd.OriginCountry())
		}
		originAddress = &structural
	}

	var destinationAddress *address.Address
	if cmd.OriginCountry().IsEqual(cmd.DestinationCountry()) {
		destination := cmd.DestinationAddress()
		if !destination.IsEmpty() {
			destinationAddress = &destination
		}
	}

	return quote.NewQuoteRequest(quote.RequestParams{
		OriginCountry:      cmd.OriginCountry(),
		DestinationCountry: cmd.DestinationCountry(),
		WeightKg:           cmd.WeightKg(),
		Dimensions:         cmd.Dimensions(),
		DeclaredValue:      cmd.DeclaredValue(),
		Category:           resolved,
		VehicleDetails:     cmd.VehicleDetails(),
		FreightDetails:     cmd.FreightDetails(),
		SuperHeavyDetails:  cmd.SuperHeavyDetails(),
		OriginAddress:      originAddress,
		DestinationAddress: destinationAddress,
	})
}
