package commands_test

import (
	"context"
	"errors"
	"testing"

	"freightquote/internal/core/application/usecases/commands"
	"freightquote/internal/core/domain/model/address"
	"freightquote/internal/core/domain/model/category"
	"freightquote/internal/core/domain/model/kernel"
	"freightquote/internal/core/domain/model/quote"
	"freightquote/internal/core/domain/services"
	"freightquote/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockAvailabilityPort struct{ mock.Mock }

func (m *MockAvailabilityPort) CheckAvailableModes(
	ctx context.Context,
	origin, destination kernel.CountryCode,
	cat category.Category,
) (ports.AvailableModes, error) {
	args := m.Called(ctx, origin, destination, cat)
	return args.Get(0).(ports.AvailableModes), args.Error(1)
}

type MockRatingPort struct{ mock.Mock }

func (m *MockRatingPort) CalculateQuotes(
	ctx context.Context,
	request *quote.Request,
) (*ports.RatingResponse, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ports.RatingResponse), args.Error(1)
}

func mustCountry(t *testing.T, code string) kernel.CountryCode {
	t.Helper()
	c, err := kernel.NewCountryCode(code)
	require.NoError(t, err)
	return c
}

func ratedQuote(t *testing.T, carrier string, total int64, minDays int, flags quote.Flags) *quote.Quote {
	t.Helper()
	q, err := quote.NewQuote(quote.QuoteParams{
		Carrier:        carrier,
		Total:          decimal.NewFromInt(total),
		Transit:        quote.TransitWindow{MinDays: minDays, MaxDays: minDays + 2},
		Flags:          flags,
		CarrierRateRef: "rate_" + carrier,
	})
	require.NoError(t, err)
	return q
}

func calcParams(t *testing.T) commands.CalculateQuotesParams {
	t.Helper()
	return commands.CalculateQuotesParams{
		OriginCountry:      mustCountry(t, "US"),
		DestinationCountry: mustCountry(t, "US"),
		WeightKg:           150,
		Dimensions:         quote.Dimensions{LengthCm: 100, WidthCm: 100, HeightCm: 100},
		DeclaredValue:      decimal.NewFromInt(2000),
		Category:           category.Auto,
		FreightDetails:     &category.FreightDetails{FreightClass: 70},
	}
}

func newCalcHandler(avail *MockAvailabilityPort, rating *MockRatingPort) commands.CalculateQuotesCommandHandler {
	return commands.NewCalculateQuotesCommandHandler(
		avail, rating, services.NewRequirementResolver(), discardLogger())
}

func TestCalculateQuotesCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCalculateQuotesCommand(calcParams(t))
	require.NoError(t, err)

	requestID := kernel.NewUUID()
	cheap := ratedQuote(t, "A", 10, 9, quote.Flags{IsLocalShipping: true})
	alsoTen := ratedQuote(t, "B", 10, 7, quote.Flags{IsLocalShipping: true})
	fast := ratedQuote(t, "C", 50, 1, quote.Flags{IsLocalShipping: true})

	avail := new(MockAvailabilityPort)
	rating := new(MockRatingPort)
	mock.InOrder(
		avail.On("CheckAvailableModes", ctx, mock.Anything, mock.Anything, category.LTLFreight).
			Return(ports.AvailableModes{DeliveryAvailable: true}, nil).Once(),
		rating.On("CalculateQuotes", ctx, mock.AnythingOfType("*quote.Request")).
			Return(&ports.RatingResponse{
				QuoteRequestID:  requestID,
				Quotes:          []*quote.Quote{fast, cheap, alsoTen},
				PickupRequired:  true,
				IsLocalShipping: true,
			}, nil).Once(),
	)

	h := newCalcHandler(avail, rating)
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	// weight=150, US->US: ltl_freight, pickup and addresses required.
	require.Equal(t, category.LTLFreight, result.Category)
	require.True(t, result.PickupRequired)
	require.True(t, result.AddressesRequired)
	require.True(t, result.IsLocalShipping)
	require.Equal(t, requestID, result.QuoteRequestID)

	// Default ranking is by price; the two ten-dollar quotes keep the
	// rating service's order (A before B arrived as "fast, cheap, alsoTen"
	// so cheap(A) precedes alsoTen(B)).
	require.Equal(t, []*quote.Quote{cheap, alsoTen, fast}, result.Quotes)

	avail.AssertExpectations(t)
	rating.AssertExpectations(t)
}

func TestCalculateQuotesCommandHandler_Handle_UnavailableRoute(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCalculateQuotesCommand(calcParams(t))
	require.NoError(t, err)

	avail := new(MockAvailabilityPort)
	rating := new(MockRatingPort)
	avail.On("CheckAvailableModes", ctx, mock.Anything, mock.Anything, mock.Anything).
		Return(ports.AvailableModes{DeliveryAvailable: false}, nil).Once()

	h := newCalcHandler(avail, rating)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrCarrierUnavailable)
	rating.AssertNotCalled(t, "CalculateQuotes", mock.Anything, mock.Anything)
}

func TestCalculateQuotesCommandHandler_Handle_MissingWeightBlocksBeforePorts(t *testing.T) {
	ctx := t.Context()
	params := calcParams(t)
	params.WeightKg = 0
	cmd, err := commands.NewCalculateQuotesCommand(params)
	require.NoError(t, err)

	avail := new(MockAvailabilityPort)
	rating := new(MockRatingPort)
	h := newCalcHandler(avail, rating)

	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, category.ErrWeightIsRequired)
	avail.AssertNotCalled(t, "CheckAvailableModes", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	rating.AssertNotCalled(t, "CalculateQuotes", mock.Anything, mock.Anything)
}

func TestCalculateQuotesCommandHandler_Handle_NoRatesOnLocalRoute(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCalculateQuotesCommand(calcParams(t))
	require.NoError(t, err)

	avail := new(MockAvailabilityPort)
	rating := new(MockRatingPort)
	mock.InOrder(
		avail.On("CheckAvailableModes", ctx, mock.Anything, mock.Anything, mock.Anything).
			Return(ports.AvailableModes{DeliveryAvailable: true}, nil).Once(),
		rating.On("CalculateQuotes", ctx, mock.Anything).
			Return(nil, ports.ErrNoRatesForRoute).Once(),
	)

	h := newCalcHandler(avail, rating)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrCarrierUnavailable)
}

func TestCalculateQuotesCommandHandler_Handle_ZeroQuotesOnLocalRoute(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCalculateQuotesCommand(calcParams(t))
	require.NoError(t, err)

	avail := new(MockAvailabilityPort)
	rating := new(MockRatingPort)
	mock.InOrder(
		avail.On("CheckAvailableModes", ctx, mock.Anything, mock.Anything, mock.Anything).
			Return(ports.AvailableModes{DeliveryAvailable: true}, nil).Once(),
		rating.On("CalculateQuotes", ctx, mock.Anything).
			Return(&ports.RatingResponse{
				QuoteRequestID:  kernel.NewUUID(),
				IsLocalShipping: true,
			}, nil).Once(),
	)

	h := newCalcHandler(avail, rating)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrCarrierUnavailable)
}

func TestCalculateQuotesCommandHandler_Handle_RatingFailureFailsClosed(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCalculateQuotesCommand(calcParams(t))
	require.NoError(t, err)

	ratingErr := errors.New("rating service exploded")
	avail := new(MockAvailabilityPort)
	rating := new(MockRatingPort)
	mock.InOrder(
		avail.On("CheckAvailableModes", ctx, mock.Anything, mock.Anything, mock.Anything).
			Return(ports.AvailableModes{DeliveryAvailable: true}, nil).Once(),
		rating.On("CalculateQuotes", ctx, mock.Anything).
			Return(nil, ratingErr).Once(),
	)

	h := newCalcHandler(avail, rating)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, ratingErr)
}

func TestCalculateQuotesCommandHandler_Handle_AddressInclusion(t *testing.T) {
	ctx := t.Context()

	handle := func(t *testing.T, params commands.CalculateQuotesParams) *quote.Request {
		t.Helper()
		cmd, err := commands.NewCalculateQuotesCommand(params)
		require.NoError(t, err)

		var captured *quote.Request
		avail := new(MockAvailabilityPort)
		rating := new(MockRatingPort)
		avail.On("CheckAvailableModes", ctx, mock.Anything, mock.Anything, mock.Anything).
			Return(ports.AvailableModes{DeliveryAvailable: true}, nil).Once()
		rating.On("CalculateQuotes", ctx, mock.Anything).
			Run(func(args mock.Arguments) {
				captured = args.Get(1).(*quote.Request)
			}).
			Return(&ports.RatingResponse{QuoteRequestID: kernel.NewUUID()}, nil).Once()

		h := newCalcHandler(avail, rating)
		_, err = h.Handle(ctx, cmd)
		require.NoError(t, err)
		require.NotNil(t, captured)
		return captured
	}

	t.Run("origin_with_street_is_attached_when_required", func(t *testing.T) {
		params := calcParams(t)
		params.OriginAddress = completeTestAddress(t)
		params.DestinationAddress = completeTestAddress(t)

		request := handle(t, params)
		require.NotNil(t, request.OriginAddress())
		require.Equal(t, "100 Dock St", request.OriginAddress().StreetAddress())
		// Local shipment, so the destination travels too.
		require.NotNil(t, request.DestinationAddress())
	})

	t.Run("structured_country_without_street_sends_minimal_address", func(t *testing.T) {
		params := calcParams(t)
		params.OriginAddress = testAddress(t, map[address.Field]string{
			address.FieldFullName:      "Jane Shipper",
			address.FieldCity:          "Portland",
			address.FieldStateProvince: "OR",
			address.FieldPostalCode:    "97201",
		})

		request := handle(t, params)
		require.NotNil(t, request.OriginAddress())
		require.Empty(t, request.OriginAddress().StreetAddress())
		require.Empty(t, request.OriginAddress().FullName())
		require.Equal(t, "Portland", request.OriginAddress().City())
		require.Equal(t, "US", request.OriginAddress().Country().String())
	})

	t.Run("international_destination_address_is_dropped", func(t *testing.T) {
		params := calcParams(t)
		params.DestinationCountry = mustCountry(t, "DE")
		params.OriginAddress = completeTestAddress(t)
		params.DestinationAddress = completeTestAddress(t)

		request := handle(t, params)
		require.Nil(t, request.DestinationAddress())
	})

	t.Run("unstructured_country_without_street_sends_nothing", func(t *testing.T) {
		params := calcParams(t)
		params.OriginCountry = mustCountry(t, "HK")
		params.DestinationCountry = mustCountry(t, "AE")
		params.WeightKg = 10
		params.FreightDetails = nil
		params.Category = category.Auto

		request := handle(t, params)
		require.Nil(t, request.OriginAddress())
	})
}
