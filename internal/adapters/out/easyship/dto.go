package easyship

import (
	"freightquote/internal/core/domain/model/address"
	"freightquote/internal/core/domain/model/kernel"
	"freightquote/internal/core/domain/model/quote"
	"freightquote/internal/core/ports"

	"github.com/shopspring/decimal"
)

// countryDTO is one entry of the platform's country list.
type countryDTO struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// availableModesDTO is the availability check response.
type availableModesDTO struct {
	TransportModes    []string `json:"transport_modes"`
	DeliveryAvailable bool     `json:"delivery_available"`
}

// addressDTO is the platform's address shape, shared by the validation
// request and response.
type addressDTO struct {
	ContactName   string `json:"contact_name,omitempty"`
	CompanyName   string `json:"company_name,omitempty"`
	Line1         string `json:"line_1,omitempty"`
	Line2         string `json:"line_2,omitempty"`
	City          string `json:"city,omitempty"`
	State         string `json:"state,omitempty"`
	PostalCode    string `json:"postal_code,omitempty"`
	CountryAlpha2 string `json:"country_alpha2,omitempty"`
	ContactPhone  string `json:"contact_phone,omitempty"`
	ContactEmail  string `json:"contact_email,omitempty"`
}

func toAddressDTO(addr address.Address) addressDTO {
	return addressDTO{
		ContactName:   addr.FullName(),
		CompanyName:   addr.Company(),
		Line1:         addr.StreetAddress(),
		Line2:         addr.StreetAddress2(),
		City:          addr.City(),
		State:         addr.StateProvince(),
		PostalCode:    addr.PostalCode(),
		CountryAlpha2: addr.Country().String(),
		ContactPhone:  addr.Phone(),
		ContactEmail:  addr.Email(),
	}
}

func (d addressDTO) toDomain() (address.Address, error) {
	addr := address.New()

	fields := map[address.Field]string{
		address.FieldFullName:       d.ContactName,
		address.FieldCompany:        d.CompanyName,
		address.FieldStreetAddress:  d.Line1,
		address.FieldStreetAddress2: d.Line2,
		address.FieldCity:           d.City,
		address.FieldStateProvince:  d.State,
		address.FieldPostalCode:     d.PostalCode,
		address.FieldCountry:        d.CountryAlpha2,
		address.FieldPhone:          d.ContactPhone,
		address.FieldEmail:          d.ContactEmail,
	}
	for field, value := range fields {
		if value == "" {
			continue
		}
		next, err := addr.With(field, value)
		if err != nil {
			return address.Address{}, err
		}
		addr = next
	}

	return addr, nil
}

// validateAddressRequestDTO is the address validation request body.
type validateAddressRequestDTO struct {
	Address addressDTO `json:"address"`
}

// validateAddressResponseDTO is the address validation response body.
type validateAddressResponseDTO struct {
	Success          bool        `json:"success"`
	ValidatedAddress *addressDTO `json:"validated_address"`
}

// dimensionsDTO is the package dimensions block of a rating request.
type dimensionsDTO struct {
	Length float64 `json:"length,omitempty"`
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`
}

// vehicleDetailsDTO is the vehicle payload of a rating request.
type vehicleDetailsDTO struct {
	Type      string `json:"type"`
	Make      string `json:"make"`
	Model     string `json:"model"`
	Year      string `json:"year,omitempty"`
	VIN       string `json:"vin,omitempty"`
	Condition string `json:"condition,omitempty"`
}

// freightDetailsDTO is the freight payload of a rating request.
type freightDetailsDTO struct {
	FreightClass int `json:"freight_class"`
	PalletCount  int `json:"pallet_count"`
}

// superHeavyDetailsDTO is the super-heavy payload of a rating request.
type superHeavyDetailsDTO struct {
	PermitsRequired bool   `json:"permits_required"`
	SpecialHandling string `json:"special_handling,omitempty"`
}

// ratingRequestDTO is the rating request body.
type ratingRequestDTO struct {
	OriginCountry      string                `json:"origin_country"`
	DestinationCountry string                `json:"destination_country"`
	Weight             float64               `json:"weight"`
	Dimensions         *dimensionsDTO        `json:"dimensions,omitempty"`
	DeclaredValue      decimal.Decimal       `json:"declared_value"`
	ShippingCategory   string                `json:"shipping_category"`
	VehicleDetails     *vehicleDetailsDTO    `json:"vehicle_details,omitempty"`
	FreightDetails     *freightDetailsDTO    `json:"freight_details,omitempty"`
	SuperHeavyDetails  *superHeavyDetailsDTO `json:"super_heavy_details,omitempty"`
	OriginAddress      *addressDTO           `json:"origin_address,omitempty"`
	DestinationAddress *addressDTO           `json:"destination_address,omitempty"`
}

func toRatingRequestDTO(request *quote.Request) ratingRequestDTO {
	dto := ratingRequestDTO{
		OriginCountry:      request.OriginCountry().String(),
		DestinationCountry: request.DestinationCountry().String(),
		Weight:             request.WeightKg(),
		DeclaredValue:      request.DeclaredValue(),
		ShippingCategory:   request.Category().String(),
	}

	if dims := request.Dimensions(); dims.Validate() == nil {
		dto.Dimensions = &dimensionsDTO{
			Length: dims.LengthCm,
			Width:  dims.WidthCm,
			Height: dims.HeightCm,
		}
	}

	if details := request.VehicleDetails(); details != nil {
		dto.VehicleDetails = &vehicleDetailsDTO{
			Type:      details.Type,
			Make:      details.Make,
			Model:     details.Model,
			Year:      details.Year,
			VIN:       details.VIN,
			Condition: details.Condition,
		}
	}
	if details := request.FreightDetails(); details != nil {
		dto.FreightDetails = &freightDetailsDTO{
			FreightClass: details.FreightClass,
			PalletCount:  details.PalletCount,
		}
	}
	if details := request.SuperHeavyDetails(); details != nil {
		dto.SuperHeavyDetails = &superHeavyDetailsDTO{
			PermitsRequired: details.PermitsRequired,
			SpecialHandling: details.SpecialHandling,
		}
	}

	if addr := request.OriginAddress(); addr != nil {
		origin := toAddressDTO(*addr)
		dto.OriginAddress = &origin
	}
	if addr := request.DestinationAddress(); addr != nil {
		destination := toAddressDTO(*addr)
		dto.DestinationAddress = &destination
	}

	return dto
}

// legDTO is one segment of a two-leg quote breakdown.
type legDTO struct {
	Carrier        string          `json:"carrier,omitempty"`
	TransportMode  string          `json:"transport_mode,omitempty"`
	Cost           decimal.Decimal `json:"cost"`
	TransitDaysMin int             `json:"transit_days_min"`
	TransitDaysMax int             `json:"transit_days_max"`
}

func (d legDTO) toDomain() quote.Leg {
	return quote.Leg{
		Carrier:       d.Carrier,
		TransportMode: d.TransportMode,
		Cost:          d.Cost,
		Transit:       quote.TransitWindow{MinDays: d.TransitDaysMin, MaxDays: d.TransitDaysMax},
	}
}

// quoteDTO is one priced option in the rating response.
type quoteDTO struct {
	Carrier               string          `json:"carrier"`
	TransportMode         string          `json:"transport_mode"`
	Total                 decimal.Decimal `json:"total"`
	BaseRate              decimal.Decimal `json:"base_rate"`
	Surcharges            decimal.Decimal `json:"surcharges"`
	RateID                string          `json:"rate_id"`
	TransitDaysMin        int             `json:"transit_days_min"`
	TransitDaysMax        int             `json:"transit_days_max"`
	PickupRequired        bool            `json:"pickup_required"`
	IsLocalShipping       bool            `json:"is_local_shipping"`
	IsInternationalParcel bool            `json:"is_international_parcel"`
	RequiresDropOff       bool            `json:"requires_drop_off"`
	Leg1                  *legDTO         `json:"leg1_easyship,omitempty"`
	Leg2                  *legDTO         `json:"leg2_route,omitempty"`
}

func (d quoteDTO) toDomain() (*quote.Quote, error) {
	var legs []quote.Leg
	if d.Leg1 != nil && d.Leg2 != nil {
		legs = []quote.Leg{d.Leg1.toDomain(), d.Leg2.toDomain()}
	}

	return quote.NewQuote(quote.QuoteParams{
		Carrier:       d.Carrier,
		TransportMode: d.TransportMode,
		Total:         d.Total,
		BaseRate:      d.BaseRate,
		Surcharges:    d.Surcharges,
		Transit:       quote.TransitWindow{MinDays: d.TransitDaysMin, MaxDays: d.TransitDaysMax},
		Flags: quote.Flags{
			PickupRequired:        d.PickupRequired,
			IsLocalShipping:       d.IsLocalShipping,
			IsInternationalParcel: d.IsInternationalParcel,
			RequiresDropOff:       d.RequiresDropOff,
		},
		Legs:           legs,
		CarrierRateRef: d.RateID,
	})
}

// ratingResponseDTO is the successful rating response body.
type ratingResponseDTO struct {
	QuoteRequestID   string     `json:"quote_request_id"`
	Quotes           []quoteDTO `json:"quotes"`
	PickupRequired   bool       `json:"pickup_required"`
	IsLocalShipping  bool       `json:"is_local_shipping"`
	IsYuusellHandled bool       `json:"is_yuusell_handled"`
}

func (d ratingResponseDTO) toDomain() (*ports.RatingResponse, error) {
	quoteRequestID, err := kernel.UUIDFromString(d.QuoteRequestID)
	if err != nil {
		return nil, err
	}

	quotes := make([]*quote.Quote, 0, len(d.Quotes))
	for _, dto := range d.Quotes {
		domainQuote, err := dto.toDomain()
		if err != nil {
			return nil, err
		}
		quotes = append(quotes, domainQuote)
	}

	return &ports.RatingResponse{
		QuoteRequestID:   quoteRequestID,
		Quotes:           quotes,
		PickupRequired:   d.PickupRequired,
		IsLocalShipping:  d.IsLocalShipping,
		IsYuusellHandled: d.IsYuusellHandled,
	}, nil
}

// ratingErrorDTO is the non-2xx rating response body.
type ratingErrorDTO struct {
	Error           string `json:"error"`
	IsLocalShipping bool   `json:"is_local_shipping"`
}
