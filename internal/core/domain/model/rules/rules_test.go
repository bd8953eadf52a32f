package rules_test

import (
	"testing"

	"freightquote/internal/core/domain/model/kernel"
	"freightquote/internal/core/domain/model/rules"

	"github.com/stretchr/testify/assert"
)

func country(t *testing.T, code string) kernel.CountryCode {
	t.Helper()
	c, err := kernel.NewCountryCode(code)
	assert.NoError(t, err)
	return c
}

func TestPostalCodeRequired(t *testing.T) {
	testCases := []struct {
		code     string
		expected bool
	}{
		{"US", true},
		{"DE", true},
		{"JP", true},
		{"GB", true},
		{"AE", false}, // UAE has no postal codes
		{"HK", false},
		{"NG", true},
	}

	for _, tc := range testCases {
		t.Run(tc.code, func(t *testing.T) {
			assert.Equal(t, tc.expected, rules.PostalCodeRequired(country(t, tc.code)))
		})
	}
}

func TestStateRequired(t *testing.T) {
	for _, code := range []string{"AU", "CA", "CN", "ID", "MX", "MY", "TH", "US", "VN"} {
		t.Run(code, func(t *testing.T) {
			assert.True(t, rules.StateRequired(country(t, code)))
		})
	}

	for _, code := range []string{"DE", "GB", "FR", "JP"} {
		t.Run(code+"_not_required", func(t *testing.T) {
			assert.False(t, rules.StateRequired(country(t, code)))
		})
	}
}

func TestNeedsStructuredAddress(t *testing.T) {
	// State-required implies structured even if it also needs a postal code.
	assert.True(t, rules.NeedsStructuredAddress(country(t, "US")))
	// Postal-only country.
	assert.True(t, rules.NeedsStructuredAddress(country(t, "DE")))
	// Neither set.
	assert.False(t, rules.NeedsStructuredAddress(country(t, "HK")))
}

func TestThresholds(t *testing.T) {
	// The pickup threshold intentionally coincides with the heavy parcel
	// upper bound; both rules key off 100kg but compare differently.
	assert.InEpsilon(t, rules.HeavyParcelMaxKg, rules.PickupWeightKg, 1e-9)
	assert.Less(t, rules.SmallParcelMaxKg, rules.HeavyParcelMaxKg)
	assert.Less(t, rules.HeavyParcelMaxKg, rules.LTLFreightMaxKg)
}
