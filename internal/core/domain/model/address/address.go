// Package address models postal addresses as immutable value objects.
//
// Addresses in the quote flow are built up field by field from user input, so
// unlike most value objects in this codebase they permit partial state: an
// address with only a city is legal to hold, it just is not materially
// complete enough to verify or to attach to a rating request. All mutation
// goes through With, which returns a copy; the tracked-field set drives
// verification-cache invalidation (see State).
package address

import (
	"fmt"
	"regexp"
	"strings"

	"freightquote/internal/core/domain/model/kernel"
	"freightquote/internal/pkg/errs"
)

// emailPattern matches the address form's email check: something@something.tld
// with no whitespace. It is deliberately loose; the carrier does the real
// deliverability check.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Field identifies one address field for With edits and change tracking.
type Field int

const (
	FieldFullName Field = iota + 1
	FieldCompany
	FieldStreetAddress
	FieldStreetAddress2
	FieldCity
	FieldStateProvince
	FieldPostalCode
	FieldCountry
	FieldPhone
	FieldEmail
)

// IsTracked reports whether editing the field invalidates a previously
// cached verification result. Contact fields (name, phone, email, company)
// are not part of what the validation service checks, so editing them leaves
// an existing verification intact.
func (f Field) IsTracked() bool {
	switch f {
	case FieldStreetAddress, FieldStreetAddress2, FieldCity,
		FieldStateProvince, FieldPostalCode, FieldCountry:
		return true
	default:
		return false
	}
}

// Address is an immutable postal address. The zero value is an empty address;
// use With to derive edited copies.
type Address struct {
	fullName       string
	company        string
	streetAddress  string
	streetAddress2 string
	city           string
	stateProvince  string
	postalCode     string
	country        kernel.CountryCode
	phone          string
	email          string
}

// New returns an empty address.
func New() Address {
	return Address{}
}

// With returns a copy of the address with one field replaced. String values
// are trimmed; the country field is normalized to uppercase alpha-2 and
// rejected when malformed (an empty string clears it).
func (a Address) With(field Field, value string) (Address, error) {
	value = strings.TrimSpace(value)

	switch field {
	case FieldFullName:
		a.fullName = value
	case FieldCompany:
		a.company = value
	case FieldStreetAddress:
		a.streetAddress = value
	case FieldStreetAddress2:
		a.streetAddress2 = value
	case FieldCity:
		a.city = value
	case FieldStateProvince:
		a.stateProvince = value
	case FieldPostalCode:
		a.postalCode = value
	case FieldCountry:
		if value == "" {
			a.country = kernel.CountryCode{}
			return a, nil
		}
		country, err := kernel.NewCountryCode(value)
		if err != nil {
			return Address{}, err
		}
		a.country = country
	case FieldPhone:
		a.phone = value
	case FieldEmail:
		a.email = value
	default:
		return Address{}, errs.NewValueIsInvalidErrorWithCause(
			"address field",
			fmt.Errorf("%d is not a valid address field", field),
		)
	}

	return a, nil
}

// WithCountry returns a copy of the address with the country replaced.
func (a Address) WithCountry(country kernel.CountryCode) Address {
	a.country = country
	return a
}

func (a Address) FullName() string       { return a.fullName }
func (a Address) Company() string        { return a.company }
func (a Address) StreetAddress() string  { return a.streetAddress }
func (a Address) StreetAddress2() string { return a.streetAddress2 }
func (a Address) City() string           { return a.city }
func (a Address) StateProvince() string  { return a.stateProvince }
func (a Address) PostalCode() string     { return a.postalCode }
func (a Address) Country() kernel.CountryCode {
	return a.country
}
func (a Address) Phone() string { return a.phone }
func (a Address) Email() string { return a.email }

// IsEmpty reports whether no field is set at all.
func (a Address) IsEmpty() bool {
	return a == Address{}
}

// IsMateriallyComplete reports whether the address carries enough data for
// verification: street address, city, postal code and country all present.
// Verification is only attempted on materially complete addresses.
func (a Address) IsMateriallyComplete() bool {
	return a.streetAddress != "" && a.city != "" && a.postalCode != "" && !a.country.IsZero()
}

// HasStreetAddress reports whether a street address was entered.
func (a Address) HasStreetAddress() bool {
	return a.streetAddress != ""
}

// ValidateEmail checks that the email field is present and well-formed.
func (a Address) ValidateEmail() error {
	if a.email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if !emailPattern.MatchString(a.email) {
		return errs.NewValueIsInvalidErrorWithCause(
			"email",
			fmt.Errorf("%q does not look like an email address", a.email),
		)
	}
	return nil
}

// Structural returns a copy carrying only the structured locality fields
// (city, state, postal code, country). Used when a country requires
// structured address data but the user entered no street address.
func (a Address) Structural() Address {
	return Address{
		city:          a.city,
		stateProvince: a.stateProvince,
		postalCode:    a.postalCode,
		country:       a.country,
	}
}

// Differs reports whether the validated address changed any of the four
// fields the validation service normalizes: street address, city, postal
// code, state/province. Contact fields never count as a difference.
func Differs(original, validated Address) bool {
	return original.streetAddress != validated.streetAddress ||
		original.city != validated.city ||
		original.postalCode != validated.postalCode ||
		original.stateProvince != validated.stateProvince
}

// Merge applies a validated address onto the original, always preserving the
// original's full name, phone and email: the validation service never
// produces those, so the validated copy must not blank them out.
func Merge(original, validated Address) Address {
	merged := validated
	merged.fullName = original.fullName
	merged.phone = original.phone
	merged.email = original.email
	if merged.company == "" {
		merged.company = original.company
	}
	return merged
}
