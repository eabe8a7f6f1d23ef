// Package ports defines repository and outbound interfaces for the export
// domain. These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"exportflow/internal/core/domain/model/kernel"
	"exportflow/internal/core/domain/model/shipment"
)

// ShipmentRepository defines the persistence contract for shipment aggregates.
type ShipmentRepository interface {
	// Add persists a new shipment aggregate to storage.
	// The shipment must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	// Update persists changes to an existing shipment aggregate.
	// Status changes are applied conditionally on the previously loaded
	// status so concurrent writers cannot double-apply a transition.
	Update(ctx context.Context, aggregate *shipment.Shipment) error

	// Get retrieves a shipment aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error)

	// GetByAWB retrieves a shipment aggregate by its air waybill number.
	GetByAWB(ctx context.Context, awb kernel.AWB) (*shipment.Shipment, error)

	// GetAllByBag retrieves all shipments assigned to the given bag,
	// in assignment order.
	GetAllByBag(ctx context.Context, bagID kernel.UUID) ([]*shipment.Shipment, error)

	// GetAllByManifest retrieves all shipments whose bags belong to the
	// given manifest. Used for the batch transitions on lock, handover
	// and departure.
	GetAllByManifest(ctx context.Context, manifestID kernel.UUID) ([]*shipment.Shipment, error)
}
