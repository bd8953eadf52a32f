package ports

import (
	"context"
	"fmt"

	"freightquote/internal/core/domain/model/address"
	"freightquote/internal/core/domain/model/kernel"
	"freightquote/internal/core/domain/model/quote"
	"freightquote/internal/core/domain/model/shipment"
)

// AlreadyConvertedError signals that the quote request was converted by an
// earlier call. Implementations may surface the race on the error channel;
// callers must unwrap it with errors.As and treat it as a successful
// duplicate, never as a failure.
type AlreadyConvertedError struct {
	ShipmentID kernel.UUID
	IsPaid     bool
}

func (e *AlreadyConvertedError) Error() string {
	return fmt.Sprintf("quote request already converted to shipment %s", e.ShipmentID)
}

// ConversionRequest is the payload for one conversion attempt.
type ConversionRequest struct {
	QuoteRequestID     kernel.UUID
	SelectedQuote      *quote.Quote
	OriginAddress      address.Address
	DestinationAddress address.Address
}

// ConversionPort converts a selected quote into a shipment. The port is the
// sole arbiter of idempotency: the core holds no deduplication state and
// relies on the port to guarantee at most one shipment per quote request.
//
// The already-converted race may come back on either channel: as a
// ConversionResult with OutcomeAlreadyConverted, or as an error wrapping
// AlreadyConvertedError. Callers normalize both into the same result.
type ConversionPort interface {
	ProceedWithQuote(ctx context.Context, request ConversionRequest) (shipment.ConversionResult, error)
}
