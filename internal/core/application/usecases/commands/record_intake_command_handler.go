package commands

import (
	"context"
	"time"

	"exportflow/internal/core/domain/model/audit"
	"exportflow/internal/core/domain/services"
)

// RecordIntakeCommandHandler handles warehouse intake. It evaluates the
// measured values against the declared ones with the mismatch policy:
// within tolerance the shipment is received, outside it is flagged and
// blocked from forward progress until the override clears it.
type RecordIntakeCommandHandler struct {
	uowFactory ShipmentUoWFactory
	policy     services.MismatchPolicy
}

// NewRecordIntakeCommandHandler creates a handler for warehouse intake.
func NewRecordIntakeCommandHandler(uowFactory ShipmentUoWFactory, policy services.MismatchPolicy) RecordIntakeCommandHandler {
	return RecordIntakeCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle processes the intake command.
func (h *RecordIntakeCommandHandler) Handle(ctx context.Context, cmd RecordIntakeCommand) error {
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

	withinTolerance := h.policy.WithinTolerance(
		aggregate.DeclaredWeight(), cmd.MeasuredWeight(),
		aggregate.DeclaredDimensions(), cmd.MeasuredDimensions(),
	)

	before := shipmentSnapshot(aggregate)
	now := time.Now()
	if err = aggregate.RecordIntake(cmd.MeasuredWeight(), cmd.MeasuredDimensions(), withinTolerance, now); err != nil {
		return err
	}

	if err = uow.ShipmentRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	action := actionIntakeRecorded
	if !withinTolerance {
		action = actionMismatchFlagged
	}
	if err = appendAudit(ctx, uow, audit.SubjectShipment, aggregate.ID(),
		action, cmd.Actor(), now,
		before, shipmentSnapshot(aggregate)); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
