package ports

import (
	"context"

	"exportflow/internal/core/domain/model/kernel"
	"exportflow/internal/core/domain/model/tracking"
)

// TrackingRepository defines the append-only persistence contract for
// customer-visible tracking events.
type TrackingRepository interface {
	// Append persists a new tracking event.
	Append(ctx context.Context, event *tracking.Event) error

	// GetAllByShipment retrieves all events for one shipment, oldest first.
	GetAllByShipment(ctx context.Context, shipmentID kernel.UUID) ([]*tracking.Event, error)
}
