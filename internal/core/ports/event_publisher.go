package ports

import (
	"context"

	"exportflow/internal/core/domain/model/tracking"
)

// TrackingEventPublisher publishes customer-visible tracking events to the
// message broker after the owning transaction committed. Publishing failures
// must not fail the command; implementations log and move on.
type TrackingEventPublisher interface {
	Publish(ctx context.Context, event *tracking.Event) error
}
