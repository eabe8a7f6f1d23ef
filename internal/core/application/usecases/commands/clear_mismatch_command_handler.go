package commands

import (
	"context"
	"time"

	"exportflow/internal/core/domain/model/audit"
)

// ClearMismatchCommandHandler handles the mismatch override.
type ClearMismatchCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewClearMismatchCommandHandler creates a handler for the mismatch override.
func NewClearMismatchCommandHandler(uowFactory ShipmentUoWFactory) ClearMismatchCommandHandler {
	return ClearMismatchCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the override command. The operator's reason is stored in
// the audit entry's after snapshot.
func (h *ClearMismatchCommandHandler) Handle(ctx context.Context, cmd ClearMismatchCommand) error {
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

	before := shipmentSnapshot(aggregate)
	now := time.Now()
	if err = aggregate.ClearMismatch(now); err != nil {
		return err
	}

	if err = uow.ShipmentRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	if err = appendAudit(ctx, uow, audit.SubjectShipment, aggregate.ID(),
		actionMismatchCleared, cmd.Actor(), now,
		before, shipmentSnapshotWithNote(aggregate, cmd.Reason())); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
