package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"freightquote/internal/core/application/usecases/commands"
	"freightquote/internal/core/domain/model/kernel"
	"freightquote/internal/core/domain/model/quote"
	"freightquote/internal/core/domain/model/shipment"
	"freightquote/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockConversionPort struct{ mock.Mock }

func (m *MockConversionPort) ProceedWithQuote(
	ctx context.Context,
	request ports.ConversionRequest,
) (shipment.ConversionResult, error) {
	args := m.Called(ctx, request)
	return args.Get(0).(shipment.ConversionResult), args.Error(1)
}

func storedSelection(t *testing.T) ports.Selection {
	t.Helper()
	return ports.Selection{
		QuoteRequestID:     kernel.NewUUID(),
		Quote:              selectableQuote(t),
		OriginAddress:      completeTestAddress(t),
		DestinationAddress: completeTestAddress(t),
		StoredAt:           time.Now(),
	}
}

func TestProceedWithQuoteCommandHandler_Handle_Created(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewProceedWithQuoteCommand("session-1")
	require.NoError(t, err)

	selection := storedSelection(t)
	shipmentID := kernel.NewUUID()

	store := new(MockQuoteSessionStore)
	port := new(MockConversionPort)
	mock.InOrder(
		store.On("Take", "session-1").Return(selection, true).Once(),
		port.On("ProceedWithQuote", ctx, mock.MatchedBy(func(request ports.ConversionRequest) bool {
			return request.QuoteRequestID.IsEqual(selection.QuoteRequestID) &&
				request.SelectedQuote == selection.Quote
		})).Return(shipment.NewCreatedResult(shipmentID), nil).Once(),
	)

	h := commands.NewProceedWithQuoteCommandHandler(store, port, discardLogger())
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, shipment.OutcomeCreated, result.Outcome)
	require.Equal(t, shipmentID, result.ShipmentID)
	store.AssertExpectations(t)
	port.AssertExpectations(t)
}

func TestProceedWithQuoteCommandHandler_Handle_EmptySlot(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewProceedWithQuoteCommand("session-1")
	require.NoError(t, err)

	store := new(MockQuoteSessionStore)
	port := new(MockConversionPort)
	store.On("Take", "session-1").Return(ports.Selection{}, false).Once()

	h := commands.NewProceedWithQuoteCommandHandler(store, port, discardLogger())
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrNoQuoteSelected)
	port.AssertNotCalled(t, "ProceedWithQuote", mock.Anything, mock.Anything)
}

func TestProceedWithQuoteCommandHandler_Handle_AlreadyConvertedOnSuccessChannel(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewProceedWithQuoteCommand("session-1")
	require.NoError(t, err)

	selection := storedSelection(t)
	shipmentID := kernel.NewUUID()

	store := new(MockQuoteSessionStore)
	port := new(MockConversionPort)
	mock.InOrder(
		store.On("Take", "session-1").Return(selection, true).Once(),
		port.On("ProceedWithQuote", ctx, mock.Anything).
			Return(shipment.NewAlreadyConvertedResult(shipmentID, false), nil).Once(),
	)

	h := commands.NewProceedWithQuoteCommandHandler(store, port, discardLogger())
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, shipment.OutcomeAlreadyConverted, result.Outcome)
	require.False(t, result.IsPaid)
	require.Equal(t, shipment.PaymentPathPrefix+shipmentID.String(), result.Redirect)
}

func TestProceedWithQuoteCommandHandler_Handle_AlreadyConvertedOnErrorChannel(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewProceedWithQuoteCommand("session-1")
	require.NoError(t, err)

	selection := storedSelection(t)
	shipmentID := kernel.NewUUID()

	store := new(MockQuoteSessionStore)
	port := new(MockConversionPort)
	mock.InOrder(
		store.On("Take", "session-1").Return(selection, true).Once(),
		// The port may report the race as an error; the handler must
		// normalize it into the same successful duplicate result.
		port.On("ProceedWithQuote", ctx, mock.Anything).
			Return(shipment.ConversionResult{},
				&ports.AlreadyConvertedError{ShipmentID: shipmentID, IsPaid: true}).Once(),
	)

	h := commands.NewProceedWithQuoteCommandHandler(store, port, discardLogger())
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, shipment.OutcomeAlreadyConverted, result.Outcome)
	require.True(t, result.IsPaid)
	require.Equal(t, shipment.TrackingPathPrefix+shipmentID.String(), result.Redirect)
}

func TestProceedWithQuoteCommandHandler_Handle_OtherErrorsFailClosed(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewProceedWithQuoteCommand("session-1")
	require.NoError(t, err)

	portErr := errors.New("conversion service down")
	store := new(MockQuoteSessionStore)
	port := new(MockConversionPort)
	mock.InOrder(
		store.On("Take", "session-1").Return(storedSelection(t), true).Once(),
		port.On("ProceedWithQuote", ctx, mock.Anything).
			Return(shipment.ConversionResult{}, portErr).Once(),
	)

	h := commands.NewProceedWithQuoteCommandHandler(store, port, discardLogger())
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, portErr)
}

func TestProceedWithQuoteCommandHandler_Handle_UnselectableSlot(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewProceedWithQuoteCommand("session-1")
	require.NoError(t, err)

	selection := storedSelection(t)
	selection.Quote = unselectableQuote(t)

	store := new(MockQuoteSessionStore)
	port := new(MockConversionPort)
	store.On("Take", "session-1").Return(selection, true).Once()

	h := commands.NewProceedWithQuoteCommandHandler(store, port, discardLogger())
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, quote.ErrQuoteIsNotSelectable)
	port.AssertNotCalled(t, "ProceedWithQuote", mock.Anything, mock.Anything)
}

func TestNewProceedWithQuoteCommand_Validation(t *testing.T) {
	_, err := commands.NewProceedWithQuoteCommand("")
	require.Error(t, err)

	cmd := commands.ProceedWithQuoteCommand{} // not constructed properly
	h := commands.NewProceedWithQuoteCommandHandler(
		new(MockQuoteSessionStore), new(MockConversionPort), discardLogger())
	_, err = h.Handle(t.Context(), cmd)
	require.Error(t, err)
}
