package queries_test

import (
	"testing"

	"freightquote/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewListCountriesQuery_Valid(t *testing.T) {
	query := queries.NewListCountriesQuery()
	err := query.Validate()
	require.NoError(t, err)
}

func TestListCountriesQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.ListCountriesQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrListCountriesQueryIsNotConstructed)
}
