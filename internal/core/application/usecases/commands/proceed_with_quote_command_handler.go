package commands

import (
	"context"
	"errors"
	"log/slog"

	"freightquote/internal/core/domain/model/shipment"
	"freightquote/internal/core/ports"
)

// ErrNoQuoteSelected is returned when the session slot holds no selection:
// it was never written, already consumed, or swept after expiring.
var ErrNoQuoteSelected = errors.New("no quote selected for this session")

// ProceedWithQuoteCommandHandler converts a selected quote into a shipment
// through the Conversion Port.
//
// The handler consumes the session slot as it reads it, so a repeated
// submit or a back-navigation cannot replay a stale selection. Idempotency
// across repeated conversions of the same quote request is the port's job;
// the handler only normalizes how the port reports the duplicate.
type ProceedWithQuoteCommandHandler struct {
	sessionStore   ports.QuoteSessionStore
	conversionPort ports.ConversionPort
	logger         *slog.Logger
}

// NewProceedWithQuoteCommandHandler creates a handler for quote conversion.
func NewProceedWithQuoteCommandHandler(
	sessionStore ports.QuoteSessionStore,
	conversionPort ports.ConversionPort,
	logger *slog.Logger,
) ProceedWithQuoteCommandHandler {
	return ProceedWithQuoteCommandHandler{
		sessionStore:   sessionStore,
		conversionPort: conversionPort,
		logger:         logger,
	}
}

// Handle takes the session's selection and converts it.
//
// The already-converted race is a successful branch regardless of which
// channel reports it: a ConversionResult with OutcomeAlreadyConverted passes
// through, and an error wrapping ports.AlreadyConvertedError is rewritten
// into the same result. All other errors fail closed.
func (h *ProceedWithQuoteCommandHandler) Handle(
	ctx context.Context,
	cmd ProceedWithQuoteCommand,
) (shipment.ConversionResult, error) {
	if err := cmd.Validate(); err != nil {
		return shipment.ConversionResult{}, err
	}

	selection, ok := h.sessionStore.Take(cmd.SessionID())
	if !ok {
		return shipment.ConversionResult{}, ErrNoQuoteSelected
	}

	// An unselectable quote must never reach the Conversion Port, even if
	// it somehow landed in the slot.
	if err := selection.Quote.EnsureSelectable(); err != nil {
		return shipment.ConversionResult{}, err
	}

	result, err := h.conversionPort.ProceedWithQuote(ctx, ports.ConversionRequest{
		QuoteRequestID:     selection.QuoteRequestID,
		SelectedQuote:      selection.Quote,
		OriginAddress:      selection.OriginAddress,
		DestinationAddress: selection.DestinationAddress,
	})
	if err != nil {
		var alreadyConverted *ports.AlreadyConvertedError
		if errors.As(err, &alreadyConverted) {
			h.logger.InfoContext(ctx, "quote request already converted",
				"quote_request_id", selection.QuoteRequestID.String(),
				"shipment_id", alreadyConverted.ShipmentID.String(),
				"is_paid", alreadyConverted.IsPaid)
			return shipment.NewAlreadyConvertedResult(
				alreadyConverted.ShipmentID, alreadyConverted.IsPaid), nil
		}
		return shipment.ConversionResult{}, err
	}

	if result.Outcome == shipment.OutcomeCreated {
		h.logger.InfoContext(ctx, "shipment created",
			"quote_request_id", selection.QuoteRequestID.String(),
			"shipment_id", result.ShipmentID.String())
	}

	return result, nil
}
