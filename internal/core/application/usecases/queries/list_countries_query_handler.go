package queries

import (
	"context"

	"freightquote/internal/core/ports"
)

// ListCountriesQueryHandler serves the country list from the carrier
// platform's reference data.
type ListCountriesQueryHandler struct {
	referenceDataPort ports.ReferenceDataPort
}

// NewListCountriesQueryHandler creates a handler for country list queries.
func NewListCountriesQueryHandler(referenceDataPort ports.ReferenceDataPort) ListCountriesQueryHandler {
	return ListCountriesQueryHandler{referenceDataPort: referenceDataPort}
}

// Handle fetches the shippable countries in the platform's order.
func (h ListCountriesQueryHandler) Handle(
	ctx context.Context,
	query ListCountriesQuery,
) ([]ListCountriesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	countries, err := h.referenceDataPort.ListCountries(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]ListCountriesQueryResponse, 0, len(countries))
	for _, country := range countries {
		responses = append(responses, ListCountriesQueryResponse{
			Code: country.Code.String(),
			Name: country.Name,
		})
	}

	return responses, nil
}
