package shipmentrepo

import (
	"context"
	"errors"

	"freightquote/internal/core/domain/model/kernel"
	"freightquote/internal/core/domain/model/shipment"
	"freightquote/internal/pkg/errs"

	"gorm.io/gorm"
)

// ErrQuoteRequestAlreadyConverted is returned by Add when a shipment for the
// same quote request already exists. It maps the unique-index violation into
// a domain-meaningful error so callers can resolve the race by reading the
// existing row.
var ErrQuoteRequestAlreadyConverted = errors.New("a shipment for this quote request already exists")

// GormShipmentRepository implements ShipmentRepository using GORM.
type GormShipmentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormShipmentRepository creates a new GORM shipment repository.
func NewGormShipmentRepository(db *gorm.DB, tracker aggregateTracker) *GormShipmentRepository {
	return &GormShipmentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new shipment to the database. Returns
// ErrQuoteRequestAlreadyConverted when the quote request was converted by a
// concurrent or earlier call.
func (r *GormShipmentRepository) Add(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrQuoteRequestAlreadyConverted
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing shipment to the database.
func (r *GormShipmentRepository) Update(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&ShipmentDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"carrier":          dto.Carrier,
			"transport_mode":   dto.TransportMode,
			"total":            dto.Total,
			"carrier_rate_ref": dto.CarrierRateRef,
			"is_paid":          dto.IsPaid,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a shipment by ID.
func (r *GormShipmentRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ShipmentDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shipment", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByQuoteRequestID retrieves the shipment converted from a quote request.
func (r *GormShipmentRepository) GetByQuoteRequestID(
	ctx context.Context,
	quoteRequestID kernel.UUID,
) (*shipment.Shipment, error) {
	if err := quoteRequestID.Validate(); err != nil {
		return nil, err
	}

	var dto ShipmentDTO
	err := r.db.WithContext(ctx).
		First(&dto, "quote_request_id = ?", quoteRequestID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("quote_request_id", quoteRequestID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
