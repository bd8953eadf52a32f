package http

import (
	"freightquote/internal/core/application/usecases/commands"
	"freightquote/internal/core/domain/model/address"
	"freightquote/internal/core/domain/model/category"
	"freightquote/internal/core/domain/model/quote"
	"freightquote/internal/core/domain/model/shipment"

	"github.com/shopspring/decimal"
)

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// AddressDTO is the JSON shape of an address on all routes.
type AddressDTO struct {
	FullName       string `json:"full_name,omitempty"`
	Company        string `json:"company,omitempty"`
	StreetAddress  string `json:"street_address,omitempty"`
	StreetAddress2 string `json:"street_address_2,omitempty"`
	City           string `json:"city,omitempty"`
	StateProvince  string `json:"state_province,omitempty"`
	PostalCode     string `json:"postal_code,omitempty"`
	Country        string `json:"country,omitempty"`
	Phone          string `json:"phone,omitempty"`
	Email          string `json:"email,omitempty"`
}

func (d AddressDTO) toDomain() (address.Address, error) {
	addr := address.New()

	fields := map[address.Field]string{
		address.FieldFullName:       d.FullName,
		address.FieldCompany:        d.Company,
		address.FieldStreetAddress:  d.StreetAddress,
		address.FieldStreetAddress2: d.StreetAddress2,
		address.FieldCity:           d.City,
		address.FieldStateProvince:  d.StateProvince,
		address.FieldPostalCode:     d.PostalCode,
		address.FieldCountry:        d.Country,
		address.FieldPhone:          d.Phone,
		address.FieldEmail:          d.Email,
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

func addressToDTO(addr address.Address) AddressDTO {
	return AddressDTO{
		FullName:       addr.FullName(),
		Company:        addr.Company(),
		StreetAddress:  addr.StreetAddress(),
		StreetAddress2: addr.StreetAddress2(),
		City:           addr.City(),
		StateProvince:  addr.StateProvince(),
		PostalCode:     addr.PostalCode(),
		Country:        addr.Country().String(),
		Phone:          addr.Phone(),
		Email:          addr.Email(),
	}
}

// VehicleDetailsDTO is the vehicle payload of a calculate request.
type VehicleDetailsDTO struct {
	Type      string `json:"type"`
	Make      string `json:"make"`
	Model     string `json:"model"`
	Year      string `json:"year,omitempty"`
	VIN       string `json:"vin,omitempty"`
	Condition string `json:"condition,omitempty"`
}

// FreightDetailsDTO is the freight payload of a calculate request.
type FreightDetailsDTO struct {
	FreightClass int `json:"freight_class"`
	PalletCount  int `json:"pallet_count"`
}

// SuperHeavyDetailsDTO is the super-heavy payload of a calculate request.
type SuperHeavyDetailsDTO struct {
	PermitsRequired bool   `json:"permits_required"`
	SpecialHandling string `json:"special_handling,omitempty"`
}

// DimensionsDTO is the package dimensions block of a calculate request.
type DimensionsDTO struct {
	LengthCm float64 `json:"length_cm"`
	WidthCm  float64 `json:"width_cm"`
	HeightCm float64 `json:"height_cm"`
}

// CalculateQuotesRequest is the quote form submission.
type CalculateQuotesRequest struct {
	OriginCountry      string                `json:"origin_country"`
	DestinationCountry string                `json:"destination_country"`
	WeightKg           float64               `json:"weight_kg"`
	Dimensions         DimensionsDTO         `json:"dimensions"`
	DeclaredValue      decimal.Decimal       `json:"declared_value"`
	Category           string                `json:"shipping_category"`
	VehicleDetails     *VehicleDetailsDTO    `json:"vehicle_details,omitempty"`
	FreightDetails     *FreightDetailsDTO    `json:"freight_details,omitempty"`
	SuperHeavyDetails  *SuperHeavyDetailsDTO `json:"super_heavy_details,omitempty"`
	OriginAddress      *AddressDTO           `json:"origin_address,omitempty"`
	DestinationAddress *AddressDTO           `json:"destination_address,omitempty"`
	RankBy             string                `json:"rank_by,omitempty"`
}

// TransitWindowDTO is a delivery window in days.
type TransitWindowDTO struct {
	MinDays int `json:"min_days"`
	MaxDays int `json:"max_days"`
}

// LegDTO is one segment of a two-leg quote breakdown.
type LegDTO struct {
	Carrier       string           `json:"carrier,omitempty"`
	TransportMode string           `json:"transport_mode,omitempty"`
	Cost          decimal.Decimal  `json:"cost"`
	Transit       TransitWindowDTO `json:"transit"`
}

// QuoteDTO is one priced option. The same shape is returned from calculate
// and submitted back on select.
type QuoteDTO struct {
	Carrier               string           `json:"carrier"`
	TransportMode         string           `json:"transport_mode"`
	Total                 decimal.Decimal  `json:"total"`
	BaseRate              decimal.Decimal  `json:"base_rate"`
	Surcharges            decimal.Decimal  `json:"surcharges"`
	CarrierRateRef        string           `json:"carrier_rate_ref,omitempty"`
	Transit               TransitWindowDTO `json:"transit"`
	TotalTransit          TransitWindowDTO `json:"total_transit"`
	PickupRequired        bool             `json:"pickup_required"`
	IsLocalShipping       bool             `json:"is_local_shipping"`
	IsInternationalParcel bool             `json:"is_international_parcel"`
	RequiresDropOff       bool             `json:"requires_drop_off"`
	Legs                  []LegDTO         `json:"legs,omitempty"`
}

func quoteToDTO(q *quote.Quote) QuoteDTO {
	dto := QuoteDTO{
		Carrier:               q.Carrier(),
		TransportMode:         q.TransportMode(),
		Total:                 q.Total(),
		BaseRate:              q.BaseRate(),
		Surcharges:            q.Surcharges(),
		CarrierRateRef:        q.CarrierRateRef(),
		Transit:               TransitWindowDTO{MinDays: q.Transit().MinDays, MaxDays: q.Transit().MaxDays},
		TotalTransit:          TransitWindowDTO{MinDays: q.TotalTransit().MinDays, MaxDays: q.TotalTransit().MaxDays},
		PickupRequired:        q.Flags().PickupRequired,
		IsLocalShipping:       q.Flags().IsLocalShipping,
		IsInternationalParcel: q.Flags().IsInternationalParcel,
		RequiresDropOff:       q.Flags().RequiresDropOff,
	}

	for _, leg := range q.Legs() {
		dto.Legs = append(dto.Legs, LegDTO{
			Carrier:       leg.Carrier,
			TransportMode: leg.TransportMode,
			Cost:          leg.Cost,
			Transit:       TransitWindowDTO{MinDays: leg.Transit.MinDays, MaxDays: leg.Transit.MaxDays},
		})
	}

	return dto
}

func (d QuoteDTO) toDomain() (*quote.Quote, error) {
	var legs []quote.Leg
	for _, leg := range d.Legs {
		legs = append(legs, quote.Leg{
			Carrier:       leg.Carrier,
			TransportMode: leg.TransportMode,
			Cost:          leg.Cost,
			Transit:       quote.TransitWindow{MinDays: leg.Transit.MinDays, MaxDays: leg.Transit.MaxDays},
		})
	}

	return quote.NewQuote(quote.QuoteParams{
		Carrier:       d.Carrier,
		TransportMode: d.TransportMode,
		Total:         d.Total,
		BaseRate:      d.BaseRate,
		Surcharges:    d.Surcharges,
		Transit:       quote.TransitWindow{MinDays: d.Transit.MinDays, MaxDays: d.Transit.MaxDays},
		Flags: quote.Flags{
			PickupRequired:        d.PickupRequired,
			IsLocalShipping:       d.IsLocalShipping,
			IsInternationalParcel: d.IsInternationalParcel,
			RequiresDropOff:       d.RequiresDropOff,
		},
		Legs:           legs,
		CarrierRateRef: d.CarrierRateRef,
	})
}

// CalculateQuotesResponse is the ranked quote calculation answer.
type CalculateQuotesResponse struct {
	QuoteRequestID    string     `json:"quote_request_id"`
	Quotes            []QuoteDTO `json:"quotes"`
	ShippingCategory  string     `json:"shipping_category"`
	PickupRequired    bool       `json:"pickup_required"`
	IsLocalShipping   bool       `json:"is_local_shipping"`
	AddressesRequired bool       `json:"addresses_required"`
}

func quotesResultToDTO(result commands.QuotesResult) CalculateQuotesResponse {
	response := CalculateQuotesResponse{
		QuoteRequestID:    result.QuoteRequestID.String(),
		Quotes:            make([]QuoteDTO, 0, len(result.Quotes)),
		ShippingCategory:  result.Category.String(),
		PickupRequired:    result.PickupRequired,
		IsLocalShipping:   result.IsLocalShipping,
		AddressesRequired: result.AddressesRequired,
	}
	for _, q := range result.Quotes {
		response.Quotes = append(response.Quotes, quoteToDTO(q))
	}
	return response
}

// ValidateAddressRequest is the address verification submission. The caller
// echoes back the decision recorded for this address revision, if any, so a
// slot the user already settled is not verified again.
type ValidateAddressRequest struct {
	Address          AddressDTO `json:"address"`
	PreviousDecision string     `json:"previous_decision,omitempty"`
}

// ValidateAddressResponse reports how the verification round ended.
type ValidateAddressResponse struct {
	Status    string      `json:"status"`
	Original  AddressDTO  `json:"original"`
	Validated *AddressDTO `json:"validated,omitempty"`
}

func verificationStatusString(status commands.VerificationStatus) string {
	switch status {
	case commands.VerificationVerified:
		return "verified"
	case commands.VerificationNeedsConfirmation:
		return "needs_confirmation"
	default:
		return "skipped"
	}
}

// SelectQuoteRequest carries the chosen quote and address context.
type SelectQuoteRequest struct {
	QuoteRequestID     string      `json:"quote_request_id"`
	Quote              QuoteDTO    `json:"quote"`
	OriginAddress      *AddressDTO `json:"origin_address,omitempty"`
	DestinationAddress *AddressDTO `json:"destination_address,omitempty"`
}

// ProceedResponse is the normalized conversion outcome.
type ProceedResponse struct {
	Outcome    string `json:"outcome"`
	ShipmentID string `json:"shipment_id,omitempty"`
	IsPaid     bool   `json:"is_paid"`
	Redirect   string `json:"redirect,omitempty"`
	Reason     string `json:"reason,omitempty"`
}

func conversionResultToDTO(result shipment.ConversionResult) ProceedResponse {
	response := ProceedResponse{
		Outcome:  result.Outcome.String(),
		IsPaid:   result.IsPaid,
		Redirect: result.Redirect,
		Reason:   result.Reason,
	}
	if result.ShipmentID.Validate() == nil {
		response.ShipmentID = result.ShipmentID.String()
	}
	return response
}

// CountryResponse is one shippable country.
type CountryResponse struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// AvailableModesResponse is the availability check answer for one route.
type AvailableModesResponse struct {
	Modes             []string `json:"transport_modes"`
	DeliveryAvailable bool     `json:"delivery_available"`
}

// ConvertedShipmentResponse is the shipment a quote request converted into.
type ConvertedShipmentResponse struct {
	ShipmentID     string          `json:"shipment_id"`
	QuoteRequestID string          `json:"quote_request_id"`
	Carrier        string          `json:"carrier"`
	TransportMode  string          `json:"transport_mode"`
	Total          decimal.Decimal `json:"total"`
	IsPaid         bool            `json:"is_paid"`
}

func parseCalculateRequest(request CalculateQuotesRequest) (commands.CalculateQuotesParams, error) {
	var params commands.CalculateQuotesParams

	origin, err := parseCountry(request.OriginCountry)
	if err != nil {
		return params, err
	}
	destination, err := parseCountry(request.DestinationCountry)
	if err != nil {
		return params, err
	}

	cat, err := category.FromString(request.Category)
	if err != nil {
		return params, err
	}

	rankBy, err := quote.RankByFromString(request.RankBy)
	if err != nil {
		return params, err
	}

	params = commands.CalculateQuotesParams{
		OriginCountry:      origin,
		DestinationCountry: destination,
		WeightKg:           request.WeightKg,
		Dimensions: quote.Dimensions{
			LengthCm: request.Dimensions.LengthCm,
			WidthCm:  request.Dimensions.WidthCm,
			HeightCm: request.Dimensions.HeightCm,
		},
		DeclaredValue: request.DeclaredValue,
		Category:      cat,
		RankBy:        rankBy,
	}

	if request.VehicleDetails != nil {
		params.VehicleDetails = &category.VehicleDetails{
			Type:      request.VehicleDetails.Type,
			Make:      request.VehicleDetails.Make,
			Model:     request.VehicleDetails.Model,
			Year:      request.VehicleDetails.Year,
			VIN:       request.VehicleDetails.VIN,
			Condition: request.VehicleDetails.Condition,
		}
	}
	if request.FreightDetails != nil {
		params.FreightDetails = &category.FreightDetails{
			FreightClass: request.FreightDetails.FreightClass,
			PalletCount:  request.FreightDetails.PalletCount,
		}
	}
	if request.SuperHeavyDetails != nil {
		params.SuperHeavyDetails = &category.SuperHeavyDetails{
			PermitsRequired: request.SuperHeavyDetails.PermitsRequired,
			SpecialHandling: request.SuperHeavyDetails.SpecialHandling,
		}
	}

	if request.OriginAddress != nil {
		addr, addrErr := request.OriginAddress.toDomain()
		if addrErr != nil {
			return params, addrErr
		}
		params.OriginAddress = addr
	}
	if request.DestinationAddress != nil {
		addr, addrErr := request.DestinationAddress.toDomain()
		if addrErr != nil {
			return params, addrErr
		}
		params.DestinationAddress = addr
	}

	return params, nil
}
