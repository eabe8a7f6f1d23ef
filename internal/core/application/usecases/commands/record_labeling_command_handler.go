package commands

import (
	"context"
	"time"

	"exportflow/internal/core/domain/model/audit"
)

// RecordLabelingCommandHandler handles the labeling event.
type RecordLabelingCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewRecordLabelingCommandHandler creates a handler for labeling events.
func NewRecordLabelingCommandHandler(uowFactory ShipmentUoWFactory) RecordLabelingCommandHandler {
	return RecordLabelingCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the labeling command.
func (h *RecordLabelingCommandHandler) Handle(ctx context.Context, cmd RecordLabelingCommand) error {
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
	if err = aggregate.RecordLabeling(now); err != nil {
		return err
	}

	if err = uow.ShipmentRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	if err = appendAudit(ctx, uow, audit.SubjectShipment, aggregate.ID(),
		actionLabelingRecorded, cmd.Actor(), now,
		before, shipmentSnapshot(aggregate)); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
