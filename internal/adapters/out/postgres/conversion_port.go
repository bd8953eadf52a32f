package postgres

import (
	"context"
	"errors"

	"freightquote/internal/adapters/out/postgres/shipmentrepo"
	"freightquote/internal/core/domain/model/kernel"
	"freightquote/internal/core/domain/model/shipment"
	"freightquote/internal/core/ports"
	"freightquote/internal/pkg/errs"
)

// GormConversionPort implements the Conversion Port against the local
// database. It is the arbiter of idempotency for quote conversion: the
// duplicate check and the insert run in one transaction, and the unique
// index on quote_request_id settles any race the check misses.
//
// The already-converted branch is reported on the error channel as
// *ports.AlreadyConvertedError; callers normalize it into a successful
// duplicate result.
type GormConversionPort struct {
	uowFactory ports.UnitOfWorkFactory
}

// NewGormConversionPort creates a database-backed Conversion Port.
func NewGormConversionPort(uowFactory ports.UnitOfWorkFactory) *GormConversionPort {
	return &GormConversionPort{uowFactory: uowFactory}
}

// ProceedWithQuote converts the selected quote into a shipment, at most once
// per quote request.
func (p *GormConversionPort) ProceedWithQuote(
	ctx context.Context,
	request ports.ConversionRequest,
) (shipment.ConversionResult, error) {
	uow := p.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return shipment.ConversionResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ShipmentRepository()

	existing, err := repo.GetByQuoteRequestID(ctx, request.QuoteRequestID)
	if err == nil {
		return shipment.ConversionResult{}, &ports.AlreadyConvertedError{
			ShipmentID: existing.ID(),
			IsPaid:     existing.IsPaid(),
		}
	}
	var notFound *errs.ObjectNotFoundError
	if !errors.As(err, &notFound) {
		return shipment.ConversionResult{}, err
	}

	created, err := shipment.NewShipment(kernel.NewUUID(), request.QuoteRequestID, request.SelectedQuote)
	if err != nil {
		return shipment.ConversionResult{}, err
	}

	if err = repo.Add(ctx, created); err != nil {
		if errors.Is(err, shipmentrepo.ErrQuoteRequestAlreadyConverted) {
			// Lost the race between the check and the insert; read the
			// winner outside the failed transaction.
			return p.resolveExisting(ctx, request.QuoteRequestID)
		}
		return shipment.ConversionResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return shipment.ConversionResult{}, err
	}

	return shipment.NewCreatedResult(created.ID()), nil
}

func (p *GormConversionPort) resolveExisting(
	ctx context.Context,
	quoteRequestID kernel.UUID,
) (shipment.ConversionResult, error) {
	uow := p.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return shipment.ConversionResult{}, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	existing, err := uow.ShipmentRepository().GetByQuoteRequestID(ctx, quoteRequestID)
	if err != nil {
		return shipment.ConversionResult{}, err
	}

	return shipment.ConversionResult{}, &ports.AlreadyConvertedError{
		ShipmentID: existing.ID(),
		IsPaid:     existing.IsPaid(),
	}
}
