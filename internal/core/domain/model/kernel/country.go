package kernel

import (
	"fmt"
	"strings"

	"freightquote/internal/pkg/errs"
)

// CountryCode is a value object holding an ISO 3166-1 alpha-2 country code.
// The code is always stored uppercase; the zero value is invalid and fails
// validation. Construct instances with NewCountryCode.
//
// Example:
//
//	origin, err := kernel.NewCountryCode("us")
//	if err != nil {
//	    // handle validation error
//	}
//	fmt.Println(origin.String()) // Output: US
type CountryCode struct {
	code string
}

// NewCountryCode creates a CountryCode from a raw string.
// Leading/trailing whitespace is trimmed and the code is uppercased, so
// "us", " US " and "US" all produce the same value. Returns an error when
// the input is empty or not exactly two letters.
func NewCountryCode(raw string) (CountryCode, error) {
	code := strings.ToUpper(strings.TrimSpace(raw))
	if code == "" {
		return CountryCode{}, errs.NewValueIsRequiredError("country code")
	}
	if len(code) != 2 || code[0] < 'A' || code[0] > 'Z' || code[1] < 'A' || code[1] > 'Z' {
		return CountryCode{}, errs.NewValueIsInvalidErrorWithCause(
			"country code",
			fmt.Errorf("%q is not an ISO alpha-2 code", raw),
		)
	}
	return CountryCode{code: code}, nil
}

// Validate checks that the CountryCode was created via NewCountryCode.
func (c CountryCode) Validate() error {
	if c.code == "" {
		return errs.NewValueIsRequiredError("country code must be created via NewCountryCode")
	}
	return nil
}

// String returns the uppercase alpha-2 code.
func (c CountryCode) String() string {
	return c.code
}

// IsZero reports whether the code is unset.
func (c CountryCode) IsZero() bool {
	return c.code == ""
}

// IsEqual compares two country codes for equality.
func (c CountryCode) IsEqual(other CountryCode) bool {
	return c.code == other.code
}
