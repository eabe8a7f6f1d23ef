package commands

import (
	"context"
	"fmt"
	"time"

	"exportflow/internal/core/domain/model/kernel"
	"exportflow/internal/core/domain/model/shipment"
	"exportflow/internal/core/domain/model/tracking"
	"exportflow/internal/core/ports"
)

// Customer-visible milestones start once a shipment enters an export
// manifest; earlier statuses stay internal.
const (
	locationExportWarehouse = "Export warehouse"
	locationOriginAirport   = "Origin airport"
)

// appendTrackingEvent persists one tracking event within the current
// transaction and returns it for post-commit publication.
func appendTrackingEvent(
	ctx context.Context,
	uow TrackingRepoFactory,
	shipmentID kernel.UUID,
	status shipment.Status,
	description, location string,
	occurredAt time.Time,
) (*tracking.Event, error) {
	event, err := tracking.NewEvent(
		kernel.NewUUID(), shipmentID,
		status.String(), description, location,
		occurredAt,
	)
	if err != nil {
		return nil, err
	}
	if err := uow.TrackingRepository().Append(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

// publishAll hands committed tracking events to the publisher. A nil
// publisher is allowed; the events are already durable and downstream
// consumers recover through the tracking query.
func publishAll(ctx context.Context, publisher ports.TrackingEventPublisher, events []*tracking.Event) {
	if publisher == nil {
		return
	}
	for _, event := range events {
		_ = publisher.Publish(ctx, event)
	}
}

func departedDescription(flightNumber, destination string) string {
	return fmt.Sprintf("Departed on flight %s, en route to %s", flightNumber, destination)
}
