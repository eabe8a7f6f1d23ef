package trackingrepo

import (
	"context"

	"exportflow/internal/core/domain/model/kernel"
	"exportflow/internal/core/domain/model/tracking"

	"gorm.io/gorm"
)

// GormTrackingRepository implements TrackingRepository using GORM.
type GormTrackingRepository struct {
	db *gorm.DB
}

// NewGormTrackingRepository creates a new GORM tracking repository.
func NewGormTrackingRepository(db *gorm.DB) *GormTrackingRepository {
	return &GormTrackingRepository{db: db}
}

// Append inserts a new tracking event.
func (r *GormTrackingRepository) Append(ctx context.Context, event *tracking.Event) error {
	if err := event.Validate(); err != nil {
		return err
	}

	dto := fromDomain(event)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetAllByShipment retrieves all events for one shipment, oldest first.
func (r *GormTrackingRepository) GetAllByShipment(ctx context.Context, shipmentID kernel.UUID) ([]*tracking.Event, error) {
	if err := shipmentID.Validate(); err != nil {
		return nil, err
	}

	var dtos []EventDTO
	err := r.db.WithContext(ctx).
		Order("occurred_at").
		Find(&dtos, "shipment_id = ?", shipmentID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	events := make([]*tracking.Event, 0, len(dtos))
	for _, dto := range dtos {
		e, toErr := toDomain(dto)
		if toErr != nil {
			return nil, toErr
		}
		events = append(events, e)
	}

	return events, nil
}
