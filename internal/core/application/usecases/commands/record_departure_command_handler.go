package commands

import (
	"context"
	"errors"
	"time"

	"exportflow/internal/core/domain/model/audit"
	"exportflow/internal/core/domain/model/manifest"
	"exportflow/internal/core/domain/model/tracking"
	"exportflow/internal/core/ports"
)

// RecordDepartureCommandHandler confirms the flight departed and moves every
// member shipment to Departed in one transaction. A repeated departure is
// answered as the prior success with zero new writes.
type RecordDepartureCommandHandler struct {
	uowFactory ManifestUoWFactory
	publisher  ports.TrackingEventPublisher
}

// NewRecordDepartureCommandHandler creates a handler for departure
// confirmation.
func NewRecordDepartureCommandHandler(uowFactory ManifestUoWFactory, publisher ports.TrackingEventPublisher) RecordDepartureCommandHandler {
	return RecordDepartureCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the departure command.
func (h *RecordDepartureCommandHandler) Handle(ctx context.Context, cmd RecordDepartureCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	manifestAggregate, err := uow.ManifestRepository().Get(ctx, cmd.ManifestID())
	if err != nil {
		return err
	}

	before := manifestSnapshot(manifestAggregate)
	now := time.Now()
	if err = manifestAggregate.RecordDeparture(now); err != nil {
		if errors.Is(err, manifest.ErrAlreadyDeparted) {
			// Retry of a confirmed departure: report the prior success.
			return nil
		}
		return err
	}

	shipments, err := uow.ShipmentRepository().GetAllByManifest(ctx, manifestAggregate.ID())
	if err != nil {
		return err
	}

	events := make([]*tracking.Event, 0, len(shipments))
	for _, s := range shipments {
		if err = s.Depart(now); err != nil {
			return err
		}
		if err = uow.ShipmentRepository().Update(ctx, s); err != nil {
			return err
		}

		event, eventErr := appendTrackingEvent(ctx, uow, s.ID(), s.Status(),
			departedDescription(manifestAggregate.FlightNumber(), manifestAggregate.Destination()),
			locationOriginAirport, now)
		if eventErr != nil {
			return eventErr
		}
		events = append(events, event)
	}

	if err = uow.ManifestRepository().Update(ctx, manifestAggregate); err != nil {
		return err
	}

	if err = appendAudit(ctx, uow, audit.SubjectManifest, manifestAggregate.ID(),
		actionDepartureRecorded, cmd.Actor(), now,
		before, manifestSnapshot(manifestAggregate)); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishAll(ctx, h.publisher, events)
	return nil
}
