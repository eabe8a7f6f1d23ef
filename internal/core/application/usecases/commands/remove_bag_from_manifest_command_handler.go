package commands

import (
	"context"
	"time"

	"exportflow/internal/core/domain/model/audit"
)

// RemoveBagFromManifestCommandHandler detaches a bag from an unlocked
// manifest, reverting every member shipment to BaggedForExport in the same
// transaction. The regression is internal: no tracking events are emitted.
type RemoveBagFromManifestCommandHandler struct {
	uowFactory ManifestUoWFactory
}

// NewRemoveBagFromManifestCommandHandler creates a handler for manifest
// detachment.
func NewRemoveBagFromManifestCommandHandler(uowFactory ManifestUoWFactory) RemoveBagFromManifestCommandHandler {
	return RemoveBagFromManifestCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the detach command.
func (h *RemoveBagFromManifestCommandHandler) Handle(ctx context.Context, cmd RemoveBagFromManifestCommand) error {
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

	before := manifestSnapshot(manifestAggregate)
	now := time.Now()
	if err = manifestAggregate.RemoveBag(bagAggregate.ID()); err != nil {
		return err
	}
	bagAggregate.DetachFromManifest()

	shipments, err := uow.ShipmentRepository().GetAllByBag(ctx, bagAggregate.ID())
	if err != nil {
		return err
	}
	for _, s := range shipments {
		if err = s.RemoveFromManifest(now); err != nil {
			return err
		}
		if err = uow.ShipmentRepository().Update(ctx, s); err != nil {
			return err
		}
	}

	if err = uow.ManifestRepository().Update(ctx, manifestAggregate); err != nil {
		return err
	}
	if err = uow.BagRepository().Update(ctx, bagAggregate); err != nil {
		return err
	}

	if err = appendAudit(ctx, uow, audit.SubjectManifest, manifestAggregate.ID(),
		actionBagRemovedFromManifest, cmd.Actor(), now,
		before, manifestSnapshot(manifestAggregate)); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
