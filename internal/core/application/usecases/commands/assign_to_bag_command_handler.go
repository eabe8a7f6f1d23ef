package commands

import (
	"context"
	"fmt"
	"time"

	"exportflow/internal/core/domain/model/audit"
	"exportflow/internal/pkg/errs"
)

// AssignToBagCommandHandler handles bag assignment. Both aggregates are
// loaded with row locks, so when two operators scan the same parcel into
// different bags the transactions serialize: the loser reloads a shipment
// that already carries a bag reference and is rejected with
// shipment.ErrAlreadyBagged.
type AssignToBagCommandHandler struct {
	uowFactory BagUoWFactory
}

// NewAssignToBagCommandHandler creates a handler for bag assignment.
func NewAssignToBagCommandHandler(uowFactory BagUoWFactory) AssignToBagCommandHandler {
	return AssignToBagCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the assignment command. The shipment's destination must
// match the bag's destination exactly.
func (h *AssignToBagCommandHandler) Handle(ctx context.Context, cmd AssignToBagCommand) error {
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
	bagAggregate, err := uow.BagRepository().Get(ctx, cmd.BagID())
	if err != nil {
		return err
	}

	if aggregate.Destination() != bagAggregate.Destination() {
		return errs.NewConflictErrorWithCause("destination", fmt.Errorf(
			"shipment destination %q does not match bag destination %q",
			aggregate.Destination(), bagAggregate.Destination()))
	}

	before := shipmentSnapshot(aggregate)
	now := time.Now()
	if err = aggregate.AssignToBag(bagAggregate.ID(), now); err != nil {
		return err
	}
	if err = bagAggregate.AddShipment(aggregate.ID()); err != nil {
		return err
	}

	if err = uow.ShipmentRepository().Update(ctx, aggregate); err != nil {
		return err
	}
	if err = uow.BagRepository().Update(ctx, bagAggregate); err != nil {
		return err
	}

	if err = appendAudit(ctx, uow, audit.SubjectShipment, aggregate.ID(),
		actionShipmentBagged, cmd.Actor(), now,
		before, shipmentSnapshot(aggregate)); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
