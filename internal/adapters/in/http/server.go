// Package http is the inbound HTTP adapter. It binds JSON routes to the
// application's command and query handlers.
package http

import (
	"errors"
	"net/http"

	"freightquote/internal/core/application/usecases/commands"
	"freightquote/internal/core/application/usecases/queries"
	"freightquote/internal/core/domain/model/address"
	"freightquote/internal/core/domain/model/category"
	"freightquote/internal/core/domain/model/kernel"
	"freightquote/internal/core/domain/model/quote"
	"freightquote/internal/core/ports"
	"freightquote/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// SessionHeader carries the caller's session identifier for the selection
// slot routes.
const SessionHeader = "X-Session-ID"

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	verifyAddressHandler    commands.VerifyAddressCommandHandler
	calculateQuotesHandler  commands.CalculateQuotesCommandHandler
	selectQuoteHandler      commands.SelectQuoteCommandHandler
	proceedWithQuoteHandler commands.ProceedWithQuoteCommandHandler

	// Query handlers
	listCountriesHandler        queries.ListCountriesQueryHandler
	getConvertedShipmentHandler queries.GetConvertedShipmentQueryHandler

	// Availability is a pass-through read with no use case of its own.
	availabilityPort ports.AvailabilityPort
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	verifyAddressHandler commands.VerifyAddressCommandHandler,
	calculateQuotesHandler commands.CalculateQuotesCommandHandler,
	selectQuoteHandler commands.SelectQuoteCommandHandler,
	proceedWithQuoteHandler commands.ProceedWithQuoteCommandHandler,
	listCountriesHandler queries.ListCountriesQueryHandler,
	getConvertedShipmentHandler queries.GetConvertedShipmentQueryHandler,
	availabilityPort ports.AvailabilityPort,
) *Server {
	return &Server{
		verifyAddressHandler:        verifyAddressHandler,
		calculateQuotesHandler:      calculateQuotesHandler,
		selectQuoteHandler:          selectQuoteHandler,
		proceedWithQuoteHandler:     proceedWithQuoteHandler,
		listCountriesHandler:        listCountriesHandler,
		getConvertedShipmentHandler: getConvertedShipmentHandler,
		availabilityPort:            availabilityPort,
	}
}

// RegisterRoutes attaches all quote flow routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")
	api.GET("/countries", s.GetCountries)
	api.GET("/available-modes", s.GetAvailableModes)
	api.POST("/validate-address", s.ValidateAddress)
	api.POST("/calculate", s.CalculateQuotes)
	api.POST("/select", s.SelectQuote)
	api.POST("/proceed", s.ProceedWithQuote)
	api.GET("/quote-requests/:id/shipment", s.GetConvertedShipment)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
}

// GetCountries handles GET /api/v1/countries - lists shippable countries.
func (s *Server) GetCountries(ctx echo.Context) error {
	query := queries.NewListCountriesQuery()

	countries, err := s.listCountriesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, http.StatusBadGateway, "Failed to retrieve countries")
	}

	response := make([]CountryResponse, len(countries))
	for i, country := range countries {
		response[i] = CountryResponse{Code: country.Code, Name: country.Name}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetAvailableModes handles GET /api/v1/available-modes - checks whether
// delivery is offered for a route.
func (s *Server) GetAvailableModes(ctx echo.Context) error {
	origin, err := parseCountry(ctx.QueryParam("origin_country"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid origin country: "+err.Error())
	}
	destination, err := parseCountry(ctx.QueryParam("destination_country"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid destination country: "+err.Error())
	}
	cat, err := category.FromString(ctx.QueryParam("shipping_category"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid shipping category: "+err.Error())
	}

	modes, err := s.availabilityPort.CheckAvailableModes(ctx.Request().Context(), origin, destination, cat)
	if err != nil {
		return errorJSON(ctx, http.StatusBadGateway, "Failed to check route availability")
	}

	return ctx.JSON(http.StatusOK, AvailableModesResponse{
		Modes:             modes.Modes,
		DeliveryAvailable: modes.DeliveryAvailable,
	})
}

// ValidateAddress handles POST /api/v1/validate-address - reconciles one
// address with the validation service.
func (s *Server) ValidateAddress(ctx echo.Context) error {
	var request ValidateAddressRequest
	if err := ctx.Bind(&request); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	addr, err := request.Address.toDomain()
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid address: "+err.Error())
	}

	decision, err := address.DecisionFromString(request.PreviousDecision)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid previous decision: "+err.Error())
	}
	state, err := address.RestoreState(addr, decision)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid previous decision: "+err.Error())
	}

	cmd, err := commands.NewVerifyAddressCommand(state)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid address: "+err.Error())
	}

	verification, err := s.verifyAddressHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorJSON(ctx, http.StatusInternalServerError, "Address verification failed")
	}

	response := ValidateAddressResponse{
		Status:   verificationStatusString(verification.Status),
		Original: addressToDTO(verification.Original),
	}
	if verification.Status != commands.VerificationSkipped {
		validated := addressToDTO(verification.Validated)
		response.Validated = &validated
	}

	return ctx.JSON(http.StatusOK, response)
}

// CalculateQuotes handles POST /api/v1/calculate - prices a shipment.
func (s *Server) CalculateQuotes(ctx echo.Context) error {
	var request CalculateQuotesRequest
	if err := ctx.Bind(&request); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	params, err := parseCalculateRequest(request)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid quote request: "+err.Error())
	}

	cmd, err := commands.NewCalculateQuotesCommand(params)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid quote request: "+err.Error())
	}

	result, err := s.calculateQuotesHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		if errors.Is(err, commands.ErrCarrierUnavailable) {
			return errorJSON(ctx, http.StatusUnprocessableEntity, err.Error())
		}
		if isValidationError(err) {
			return errorJSON(ctx, http.StatusBadRequest, err.Error())
		}
		return errorJSON(ctx, http.StatusBadGateway, "Quote calculation failed")
	}

	return ctx.JSON(http.StatusOK, quotesResultToDTO(result))
}

// SelectQuote handles POST /api/v1/select - stores the chosen quote in the
// caller's session slot.
func (s *Server) SelectQuote(ctx echo.Context) error {
	sessionID := ctx.Request().Header.Get(SessionHeader)
	if sessionID == "" {
		return errorJSON(ctx, http.StatusBadRequest, "Missing "+SessionHeader+" header")
	}

	var request SelectQuoteRequest
	if err := ctx.Bind(&request); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	quoteRequestID, err := kernel.UUIDFromString(request.QuoteRequestID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid quote request ID")
	}

	selected, err := request.Quote.toDomain()
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid quote: "+err.Error())
	}

	originAddr, destinationAddr, err := parseSelectionAddresses(request)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid address: "+err.Error())
	}

	cmd, err := commands.NewSelectQuoteCommand(sessionID, quoteRequestID, selected, originAddr, destinationAddr)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid selection: "+err.Error())
	}

	if err = s.selectQuoteHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		if errors.Is(err, quote.ErrQuoteIsNotSelectable) {
			return errorJSON(ctx, http.StatusConflict, err.Error())
		}
		return errorJSON(ctx, http.StatusInternalServerError, "Failed to select quote")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ProceedWithQuote handles POST /api/v1/proceed - converts the session's
// selected quote into a shipment.
func (s *Server) ProceedWithQuote(ctx echo.Context) error {
	sessionID := ctx.Request().Header.Get(SessionHeader)
	if sessionID == "" {
		return errorJSON(ctx, http.StatusBadRequest, "Missing "+SessionHeader+" header")
	}

	cmd, err := commands.NewProceedWithQuoteCommand(sessionID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid session: "+err.Error())
	}

	result, err := s.proceedWithQuoteHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		if errors.Is(err, commands.ErrNoQuoteSelected) {
			return errorJSON(ctx, http.StatusConflict, err.Error())
		}
		if errors.Is(err, quote.ErrQuoteIsNotSelectable) {
			return errorJSON(ctx, http.StatusConflict, err.Error())
		}
		return errorJSON(ctx, http.StatusInternalServerError, "Conversion failed")
	}

	return ctx.JSON(http.StatusOK, conversionResultToDTO(result))
}

// GetConvertedShipment handles GET /api/v1/quote-requests/:id/shipment -
// looks up the shipment a quote request was converted into.
func (s *Server) GetConvertedShipment(ctx echo.Context) error {
	quoteRequestID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid quote request ID")
	}

	query, err := queries.NewGetConvertedShipmentQuery(quoteRequestID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid query: "+err.Error())
	}

	result, err := s.getConvertedShipmentHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		var notFound *errs.ObjectNotFoundError
		if errors.As(err, &notFound) {
			return errorJSON(ctx, http.StatusNotFound, "Quote request has not been converted")
		}
		return errorJSON(ctx, http.StatusInternalServerError, "Failed to retrieve shipment")
	}

	return ctx.JSON(http.StatusOK, ConvertedShipmentResponse{
		ShipmentID:     result.ShipmentID.String(),
		QuoteRequestID: result.QuoteRequestID.String(),
		Carrier:        result.Carrier,
		TransportMode:  result.TransportMode,
		Total:          result.Total,
		IsPaid:         result.IsPaid,
	})
}

func parseCountry(code string) (kernel.CountryCode, error) {
	return kernel.NewCountryCode(code)
}

func parseSelectionAddresses(request SelectQuoteRequest) (origin, destination address.Address, err error) {
	if request.OriginAddress != nil {
		origin, err = request.OriginAddress.toDomain()
		if err != nil {
			return origin, destination, err
		}
	}
	if request.DestinationAddress != nil {
		destination, err = request.DestinationAddress.toDomain()
	}
	return origin, destination, err
}

func errorJSON(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, ErrorResponse{Code: code, Message: message})
}

// isValidationError reports whether the error is an input problem rather
// than a downstream failure.
func isValidationError(err error) bool {
	var invalid *errs.ValueIsInvalidError
	var required *errs.ValueIsRequiredError
	var outOfRange *errs.ValueIsOutOfRangeError
	return errors.As(err, &invalid) ||
		errors.As(err, &required) ||
		errors.As(err, &outOfRange) ||
		errors.Is(err, category.ErrWeightIsRequired)
}
