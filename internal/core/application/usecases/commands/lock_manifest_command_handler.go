package commands

import (
	"context"
	"time"

	"exportflow/internal/core/domain/model/audit"
	"exportflow/internal/core/domain/model/tracking"
	"exportflow/internal/core/ports"
)

// LockManifestCommandHandler freezes a manifest and moves every member
// shipment to ReadyForHandover in one transaction. The manifest row is
// loaded under a row lock, so of two concurrent lock requests one wins and
// the other reloads an already-locked manifest and is rejected with
// manifest.ErrAlreadyLocked.
type LockManifestCommandHandler struct {
	uowFactory ManifestUoWFactory
	publisher  ports.TrackingEventPublisher
}

// NewLockManifestCommandHandler creates a handler for manifest locking.
func NewLockManifestCommandHandler(uowFactory ManifestUoWFactory, publisher ports.TrackingEventPublisher) LockManifestCommandHandler {
	return LockManifestCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the lock command. All member shipments transition or none
// do.
func (h *LockManifestCommandHandler) Handle(ctx context.Context, cmd LockManifestCommand) error {
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
	if err = manifestAggregate.Lock(cmd.Actor(), now); err != nil {
		return err
	}

	shipments, err := uow.ShipmentRepository().GetAllByManifest(ctx, manifestAggregate.ID())
	if err != nil {
		return err
	}

	events := make([]*tracking.Event, 0, len(shipments))
	for _, s := range shipments {
		if err = s.MarkReadyForHandover(now); err != nil {
			return err
		}
		if err = uow.ShipmentRepository().Update(ctx, s); err != nil {
			return err
		}

		event, eventErr := appendTrackingEvent(ctx, uow, s.ID(), s.Status(),
			"Awaiting carrier handover", locationExportWarehouse, now)
		if eventErr != nil {
			return eventErr
		}
		events = append(events, event)
	}

	if err = uow.ManifestRepository().Update(ctx, manifestAggregate); err != nil {
		return err
	}

	if err = appendAudit(ctx, uow, audit.SubjectManifest, manifestAggregate.ID(),
		actionManifestLocked, cmd.Actor(), now,
		before, manifestSnapshot(manifestAggregate)); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishAll(ctx, h.publisher, events)
	return nil
}
