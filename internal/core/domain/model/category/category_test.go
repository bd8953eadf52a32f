package category_test

import (
	"testing"

	"freightquote/internal/core/domain/model/category"
	"freightquote/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify_AutoThresholds(t *testing.T) {
	testCases := []struct {
		name     string
		weightKg float64
		expected category.Category
	}{
		{"just_above_ftl_boundary", 4000.01, category.FTLFreight},
		{"ftl_boundary_belongs_to_ltl", 4000, category.LTLFreight},
		{"ltl_midrange", 150, category.LTLFreight},
		{"just_above_heavy_boundary", 100.01, category.LTLFreight},
		{"heavy_boundary_belongs_to_heavy", 100, category.HeavyParcel},
		{"just_above_small_boundary", 30.01, category.HeavyParcel},
		{"small_boundary_belongs_to_small", 30, category.SmallParcel},
		{"small_parcel", 1, category.SmallParcel},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := category.Classify(tc.weightKg, category.Auto)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestClassify_ZeroWeightRequiresInput(t *testing.T) {
	_, err := category.Classify(0, category.Auto)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = category.Classify(-5, category.Auto)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestClassify_ExplicitOverrideWins(t *testing.T) {
	// A user override is never recomputed from weight, even when the weight
	// would classify differently.
	got, err := category.Classify(5000, category.SmallParcel)
	require.NoError(t, err)
	assert.Equal(t, category.SmallParcel, got)

	// Vehicle needs no weight at all.
	got, err = category.Classify(0, category.Vehicle)
	require.NoError(t, err)
	assert.Equal(t, category.Vehicle, got)
}

func TestClassify_InvalidExplicitCategory(t *testing.T) {
	_, err := category.Classify(10, category.Unknown)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = category.Classify(10, category.Category(99))
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestFromString(t *testing.T) {
	testCases := []struct {
		input    string
		expected category.Category
	}{
		{"", category.Auto},
		{"auto", category.Auto},
		{"small_parcel", category.SmallParcel},
		{"heavy_parcel", category.HeavyParcel},
		{"ltl_freight", category.LTLFreight},
		{"ftl_freight", category.FTLFreight},
		{"vehicle", category.Vehicle},
		{"super_heavy", category.SuperHeavy},
	}

	for _, tc := range testCases {
		t.Run("parses_"+tc.expected.String(), func(t *testing.T) {
			got, err := category.FromString(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}

	_, err := category.FromString("hoverboard")
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestCategory_String(t *testing.T) {
	assert.Equal(t, "ltl_freight", category.LTLFreight.String())
	assert.Equal(t, "unknown", category.Unknown.String())
	assert.Equal(t, "unknown", category.Category(42).String())
}

func TestCategory_IsConcrete(t *testing.T) {
	assert.False(t, category.Auto.IsConcrete())
	assert.False(t, category.Unknown.IsConcrete())
	assert.True(t, category.SmallParcel.IsConcrete())
	assert.True(t, category.SuperHeavy.IsConcrete())
}

func TestCategory_IsFreight(t *testing.T) {
	assert.True(t, category.LTLFreight.IsFreight())
	assert.True(t, category.FTLFreight.IsFreight())
	assert.False(t, category.HeavyParcel.IsFreight())
	assert.False(t, category.Vehicle.IsFreight())
}

func TestVehicleDetails_Validate(t *testing.T) {
	t.Run("complete_details_pass", func(t *testing.T) {
		details := category.VehicleDetails{Type: "car", Make: "Toyota", Model: "Corolla"}
		require.NoError(t, details.Validate())
	})

	t.Run("missing_fields_are_joined", func(t *testing.T) {
		err := category.VehicleDetails{Make: "Toyota"}.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "vehicle type")
		assert.Contains(t, err.Error(), "vehicle model")
		assert.NotContains(t, err.Error(), "vehicle make")
	})
}

func TestFreightDetails(t *testing.T) {
	t.Run("pallet_count_defaults_to_one", func(t *testing.T) {
		normalized := category.FreightDetails{FreightClass: 70}.Normalize()
		assert.Equal(t, 1, normalized.PalletCount)

		normalized = category.FreightDetails{FreightClass: 70, PalletCount: 4}.Normalize()
		assert.Equal(t, 4, normalized.PalletCount)
	})

	t.Run("freight_class_is_required", func(t *testing.T) {
		err := category.FreightDetails{}.Validate()
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		require.NoError(t, category.FreightDetails{FreightClass: 125}.Validate())
	})
}
