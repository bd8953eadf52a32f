// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"freightquote/internal/pkg/guard"
)

var ErrListCountriesQueryIsNotConstructed = errors.New(
	"ListCountriesQuery must be created via NewListCountriesQuery constructor",
)

// ListCountriesQuery retrieves the shippable countries for the quote form.
// Results are stable within a session; callers cache them.
type ListCountriesQuery struct {
	guard guard.ConstructorGuard
}

// NewListCountriesQuery creates a query to retrieve all shippable countries.
func NewListCountriesQuery() ListCountriesQuery {
	return ListCountriesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListCountriesQuery) Validate() error {
	return q.guard.Validate(ErrListCountriesQueryIsNotConstructed)
}

// ListCountriesQueryResponse is one country entry in the read model.
type ListCountriesQueryResponse struct {
	Code string
	Name string
}
