package ports

import (
	"context"

	"exportflow/internal/core/domain/model/bag"
	"exportflow/internal/core/domain/model/kernel"
)

// BagRepository defines the persistence contract for bag aggregates.
// Bag membership is stored with a uniqueness guarantee per shipment, so a
// shipment can never end up in two bags even under concurrent assignment.
type BagRepository interface {
	// Add persists a new bag aggregate to storage.
	Add(ctx context.Context, aggregate *bag.Bag) error

	// Update persists changes to an existing bag aggregate, including its
	// membership list and seal state.
	Update(ctx context.Context, aggregate *bag.Bag) error

	// Get retrieves a bag aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*bag.Bag, error)

	// GetAllByManifest retrieves all bags attached to the given manifest.
	GetAllByManifest(ctx context.Context, manifestID kernel.UUID) ([]*bag.Bag, error)
}
