// Package rules holds the static reference data shared by every component of
// the quote engine: which countries require a postal code, which require a
// state/province, and the weight thresholds that drive category
// classification and pickup requirements. It is defined exactly once here;
// consumers receive it by import rather than carrying their own copies.
package rules

import "freightquote/internal/core/domain/model/kernel"

// Weight thresholds in kilograms.
//
// The classification tiers use exclusive upper bounds (weight must exceed the
// threshold to move up a tier), while pickup becomes mandatory at exactly
// PickupWeightKg. At 100kg a shipment is therefore classified heavy_parcel
// yet already pickup-required; carriers rely on this combination, so both
// constants are kept side by side instead of being unified.
const (
	// SmallParcelMaxKg is the inclusive upper bound of the small parcel tier.
	SmallParcelMaxKg = 30.0
	// HeavyParcelMaxKg is the inclusive upper bound of the heavy parcel tier.
	HeavyParcelMaxKg = 100.0
	// LTLFreightMaxKg is the inclusive upper bound of the LTL freight tier.
	LTLFreightMaxKg = 4000.0
	// PickupWeightKg is the weight at and above which pickup is mandatory.
	PickupWeightKg = 100.0
)

// postalCodeRequired lists the countries whose carriers reject shipments
// without a postal code.
var postalCodeRequired = countrySet(
	"AD", "AF", "AI", "AL", "AM", "AQ", "AR", "AS", "AT", "AU",
	"AX", "AZ", "BA", "BB", "BD", "BE", "BG", "BL", "BM", "BN",
	"BQ", "BR", "BT", "BV", "BY", "CA", "CC", "CH", "CL", "CN",
	"CO", "CR", "CU", "CV", "CX", "CY", "CZ", "DE", "DK", "DO",
	"DZ", "EC", "EE", "EG", "EH", "ES", "ET", "FI", "FK", "FM",
	"FO", "FR", "GA", "GB", "GE", "GF", "GG", "GI", "GL", "GP",
	"GR", "GS", "GT", "GU", "GW", "HM", "HN", "HR", "HT", "HU",
	"ID", "IE", "IL", "IM", "IN", "IO", "IQ", "IR", "IS", "IT",
	"JE", "JO", "JP", "KG", "KH", "KR", "KW", "KY", "KZ", "LA",
	"LB", "LI", "LK", "LR", "LS", "LT", "LU", "LV", "MA", "MC",
	"MD", "ME", "MF", "MG", "MH", "MK", "MM", "MN", "MP", "MQ",
	"MT", "MV", "MX", "MY", "MZ", "NA", "NC", "NE", "NF", "NG",
	"NI", "NL", "NO", "NP", "NZ", "OM", "PE", "PF", "PG", "PH",
	"PK", "PL", "PM", "PN", "PR", "PS", "PT", "PW", "PY", "RE",
	"RO", "RS", "RU", "SD", "SE", "SG", "SH", "SI", "SJ", "SK",
	"SM", "SN", "SS", "SV", "SX", "SZ", "TC", "TD", "TH", "TJ",
	"TM", "TN", "TR", "TW", "UA", "UM", "US", "UY", "UZ", "VA",
	"VC", "VE", "VG", "VI", "VN", "WF", "WS", "YT", "ZA", "ZM",
)

// stateRequired lists the countries whose carriers require a state or
// province on the address.
var stateRequired = countrySet(
	"AU", "CA", "CN", "ID", "MX", "MY", "TH", "US", "VN",
)

func countrySet(codes ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(codes))
	for _, code := range codes {
		set[code] = struct{}{}
	}
	return set
}

// PostalCodeRequired reports whether the country requires a postal code.
func PostalCodeRequired(country kernel.CountryCode) bool {
	_, ok := postalCodeRequired[country.String()]
	return ok
}

// StateRequired reports whether the country requires a state/province.
func StateRequired(country kernel.CountryCode) bool {
	_, ok := stateRequired[country.String()]
	return ok
}

// NeedsStructuredAddress reports whether the country requires structured
// address data (postal code or state) regardless of shipment locality.
func NeedsStructuredAddress(country kernel.CountryCode) bool {
	return PostalCodeRequired(country) || StateRequired(country)
}
