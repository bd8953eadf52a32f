package queries

import (
	"context"

	"freightquote/internal/core/domain/model/kernel"
	"freightquote/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetConvertedShipmentQueryHandler reads converted shipments directly from
// the database. Uses direct SQL for optimal read performance in the CQRS
// pattern.
type GetConvertedShipmentQueryHandler struct {
	db *gorm.DB
}

// NewGetConvertedShipmentQueryHandler creates a handler for shipment lookup
// queries. Requires a GORM database connection for query execution.
func NewGetConvertedShipmentQueryHandler(db *gorm.DB) GetConvertedShipmentQueryHandler {
	return GetConvertedShipmentQueryHandler{db: db}
}

// Handle looks up the shipment for one quote request. Returns an
// errs.ObjectNotFoundError when the request was never converted.
func (h GetConvertedShipmentQueryHandler) Handle(
	ctx context.Context,
	query GetConvertedShipmentQuery,
) (GetConvertedShipmentQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetConvertedShipmentQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			quote_request_id,
			carrier,
			transport_mode,
			total,
			is_paid
		FROM shipments
		WHERE quote_request_id = ?
		LIMIT 1
	`, query.QuoteRequestID().String()).Rows()
	if err != nil {
		return GetConvertedShipmentQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return GetConvertedShipmentQueryResponse{}, err
		}
		return GetConvertedShipmentQueryResponse{}, errs.NewObjectNotFoundError(
			"quote_request_id", query.QuoteRequestID().String())
	}

	var (
		response      GetConvertedShipmentQueryResponse
		id, requestID uuid.UUID
		total         decimal.Decimal
	)

	err = rows.Scan(
		&id,
		&requestID,
		&response.Carrier,
		&response.TransportMode,
		&total,
		&response.IsPaid,
	)
	if err != nil {
		return GetConvertedShipmentQueryResponse{}, err
	}

	shipmentID, idErr := kernel.UUIDFromBytes(id[:])
	if idErr != nil {
		return GetConvertedShipmentQueryResponse{}, idErr
	}
	quoteRequestID, idErr := kernel.UUIDFromBytes(requestID[:])
	if idErr != nil {
		return GetConvertedShipmentQueryResponse{}, idErr
	}

	response.ShipmentID = shipmentID
	response.QuoteRequestID = quoteRequestID
	response.Total = total

	return response, nil
}
