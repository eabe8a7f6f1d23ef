package commands

import (
	"context"
	"time"

	"exportflow/internal/core/domain/model/audit"
	"exportflow/internal/core/domain/model/shipment"
)

// RemoveFromBagCommandHandler handles bag removal. The bag side rejects the
// removal once the bag is sealed or manifested, so the shipment can only
// revert while the structure is still mutable.
type RemoveFromBagCommandHandler struct {
	uowFactory BagUoWFactory
}

// NewRemoveFromBagCommandHandler creates a handler for bag removal.
func NewRemoveFromBagCommandHandler(uowFactory BagUoWFactory) RemoveFromBagCommandHandler {
	return RemoveFromBagCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the removal command.
func (h *RemoveFromBagCommandHandler) Handle(ctx context.Context, cmd RemoveFromBagCommand) error {
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

	aggregate, err := uow.ShipmentRepository().Get(ctx, cmd.ShipmentID())
	if err != nil {
		return err
	}

	bagRef := aggregate.Bag()
	if bagRef == nil {
		return shipment.ErrNotBagged
	}

	bagAggregate, err := uow.BagRepository().Get(ctx, *bagRef)
	if err != nil {
		return err
	}

	before := shipmentSnapshot(aggregate)
	now := time.Now()
	if err = bagAggregate.RemoveShipment(aggregate.ID()); err != nil {
		return err
	}
	if err = aggregate.RemoveFromBag(now); err != nil {
		return err
	}

	if err = uow.ShipmentRepository().Update(ctx, aggregate); err != nil {
		return err
	}
	if err = uow.BagRepository().Update(ctx, bagAggregate); err != nil {
		return err
	}

	if err = appendAudit(ctx, uow, audit.SubjectShipment, aggregate.ID(),
		actionShipmentUnbagged, cmd.Actor(), now,
		before, shipmentSnapshot(aggregate)); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
