// Package trackingrepo persists customer-visible tracking events.
package trackingrepo

import (
	"time"

	"exportflow/internal/core/domain/model/kernel"
	"exportflow/internal/core/domain/model/tracking"

	"github.com/google/uuid"
)

// EventDTO represents one tracking event row.
type EventDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	ShipmentID  uuid.UUID `gorm:"type:uuid;index"`
	Status      string
	Description string
	Location    string
	OccurredAt  time.Time
}

// TableName specifies the database table name for tracking events.
func (EventDTO) TableName() string {
	return "tracking_events"
}

func fromDomain(event *tracking.Event) EventDTO {
	return EventDTO{
		ID:          event.ID().Bytes(),
		ShipmentID:  event.ShipmentID().Bytes(),
		Status:      event.Status(),
		Description: event.Description(),
		Location:    event.Location(),
		OccurredAt:  event.OccurredAt(),
	}
}

func toDomain(dto EventDTO) (*tracking.Event, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	shipmentID, err := kernel.UUIDFromBytes(dto.ShipmentID[:])
	if err != nil {
		return nil, err
	}

	return tracking.RestoreEvent(
		id, shipmentID,
		dto.Status, dto.Description, dto.Location,
		dto.OccurredAt,
	)
}
