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

// RecordHandoverCommandHandler records the carrier handover and moves every
// member shipment to HandedOverToCarrier in one transaction. A repeated
// handover is answered as the prior success: the transaction rolls back with
// zero new writes and the handler returns nil.
type RecordHandoverCommandHandler struct {
	uowFactory ManifestUoWFactory
	publisher  ports.TrackingEventPublisher
}

// NewRecordHandoverCommandHandler creates a handler for carrier handover.
func NewRecordHandoverCommandHandler(uowFactory ManifestUoWFactory, publisher ports.TrackingEventPublisher) RecordHandoverCommandHandler {
	return RecordHandoverCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the handover command.
func (h *RecordHandoverCommandHandler) Handle(ctx context.Context, cmd RecordHandoverCommand) error {
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
	if err = manifestAggregate.RecordHandover(cmd.CarrierReference(), now); err != nil {
		if errors.Is(err, manifest.ErrAlreadyHandedOver) {
			// Retry of a completed handover: report the prior success.
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
		if err = s.HandOverToCarrier(now); err != nil {
			return err
		}
		if err = uow.ShipmentRepository().Update(ctx, s); err != nil {
			return err
		}

		event, eventErr := appendTrackingEvent(ctx, uow, s.ID(), s.Status(),
			"Handed over to carrier", locationExportWarehouse, now)
		if eventErr != nil {
			return eventErr
		}
		events = append(events, event)
	}

	if err = uow.ManifestRepository().Update(ctx, manifestAggregate); err != nil {
		return err
	}

	if err = appendAudit(ctx, uow, audit.SubjectManifest, manifestAggregate.ID(),
		actionHandoverRecorded, cmd.Actor(), now,
		before, manifestSnapshot(manifestAggregate)); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishAll(ctx, h.publisher, events)
	return nil
}
