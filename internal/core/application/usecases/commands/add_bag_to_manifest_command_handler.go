package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"exportflow/internal/core/domain/model/audit"
	"exportflow/internal/core/domain/model/tracking"
	"exportflow/internal/core/ports"
	"exportflow/internal/pkg/errs"
)

// ErrBagNotSealed rejects attaching an open bag while the sealed-bags policy
// is in force.
var ErrBagNotSealed = errors.New("bag must be sealed before manifest assembly")

// AddBagToManifestCommandHandler attaches a bag to a manifest and moves every
// member shipment into the manifest in the same transaction: the bag is in
// the manifest with all its shipments, or not at all.
type AddBagToManifestCommandHandler struct {
	uowFactory        ManifestUoWFactory
	publisher         ports.TrackingEventPublisher
	requireSealedBags bool
}

// NewAddBagToManifestCommandHandler creates a handler for manifest assembly.
// requireSealedBags controls whether open bags are rejected.
func NewAddBagToManifestCommandHandler(
	uowFactory ManifestUoWFactory,
	publisher ports.TrackingEventPublisher,
	requireSealedBags bool,
) AddBagToManifestCommandHandler {
	return AddBagToManifestCommandHandler{
		uowFactory:        uowFactory,
		publisher:         publisher,
		requireSealedBags: requireSealedBags,
	}
}

// Handle processes the attach command. The bag's destination must match the
// manifest's destination exactly, and every member shipment enters
// InExportManifest with a tracking event.
func (h *AddBagToManifestCommandHandler) Handle(ctx context.Context, cmd AddBagToManifestCommand) error {
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
	bagAggregate, err := uow.BagRepository().Get(ctx, cmd.BagID())
	if err != nil {
		return err
	}

	if bagAggregate.Destination() != manifestAggregate.Destination() {
		return errs.NewConflictErrorWithCause("destination", fmt.Errorf(
			"bag destination %q does not match manifest destination %q",
			bagAggregate.Destination(), manifestAggregate.Destination()))
	}
	if h.requireSealedBags && !bagAggregate.IsSealed() {
		return ErrBagNotSealed
	}

	before := manifestSnapshot(manifestAggregate)
	now := time.Now()
	if err = manifestAggregate.AddBag(bagAggregate.ID()); err != nil {
		return err
	}
	if err = bagAggregate.AttachToManifest(manifestAggregate.ID()); err != nil {
		return err
	}

	shipments, err := uow.ShipmentRepository().GetAllByBag(ctx, bagAggregate.ID())
	if err != nil {
		return err
	}

	events := make([]*tracking.Event, 0, len(shipments))
	for _, s := range shipments {
		if err = s.IncludeInManifest(manifestAggregate.ID(), now); err != nil {
			return err
		}
		if err = uow.ShipmentRepository().Update(ctx, s); err != nil {
			return err
		}

		event, eventErr := appendTrackingEvent(ctx, uow, s.ID(), s.Status(),
			"Shipment included in export manifest", locationExportWarehouse, now)
		if eventErr != nil {
			return eventErr
		}
		events = append(events, event)
	}

	if err = uow.ManifestRepository().Update(ctx, manifestAggregate); err != nil {
		return err
	}
	if err = uow.BagRepository().Update(ctx, bagAggregate); err != nil {
		return err
	}

	if err = appendAudit(ctx, uow, audit.SubjectManifest, manifestAggregate.ID(),
		actionBagAddedToManifest, cmd.Actor(), now,
		before, manifestSnapshot(manifestAggregate)); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishAll(ctx, h.publisher, events)
	return nil
}
