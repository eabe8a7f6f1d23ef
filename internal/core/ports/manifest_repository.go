package ports

import (
	"context"
	"time"

	"exportflow/internal/core/domain/model/kernel"
	"exportflow/internal/core/domain/model/manifest"
)

// ManifestRepository defines the persistence contract for manifest aggregates.
type ManifestRepository interface {
	// Add persists a new manifest aggregate to storage.
	Add(ctx context.Context, aggregate *manifest.Manifest) error

	// Update persists changes to an existing manifest aggregate. Locking
	// is applied conditionally on the stored locked flag so two concurrent
	// lock requests cannot both win.
	Update(ctx context.Context, aggregate *manifest.Manifest) error

	// Get retrieves a manifest aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*manifest.Manifest, error)

	// GetAllLockedNotDeparted retrieves locked manifests whose scheduled
	// departure has passed but which have not been marked departed.
	// Used by the departure watch job.
	GetAllLockedNotDeparted(ctx context.Context, asOf time.Time) ([]*manifest.Manifest, error)
}
