package commands

import (
	"context"
	"time"

	"exportflow/internal/core/domain/model/audit"
	"exportflow/internal/core/domain/model/kernel"
	"exportflow/internal/core/ports"
)

// BookShipmentCommandHandler confirms bookings. The AWB comes from the
// identifier generator, which guarantees global uniqueness; the shipment's
// unique AWB column is the database-level backstop.
type BookShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
	generator  ports.IdentifierGenerator
}

// NewBookShipmentCommandHandler creates a handler for booking confirmation.
func NewBookShipmentCommandHandler(uowFactory ShipmentUoWFactory, generator ports.IdentifierGenerator) BookShipmentCommandHandler {
	return BookShipmentCommandHandler{
		uowFactory: uowFactory,
		generator:  generator,
	}
}

// Handle processes the booking confirmation command.
func (h *BookShipmentCommandHandler) Handle(ctx context.Context, cmd BookShipmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	issued, err := h.generator.IssueAWB(ctx)
	if err != nil {
		return err
	}
	awb, err := kernel.AWBFromString(issued)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
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
	if err = aggregate.Book(awb, now); err != nil {
		return err
	}

	if err = uow.ShipmentRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	if err = appendAudit(ctx, uow, audit.SubjectShipment, aggregate.ID(),
		actionShipmentBooked, cmd.Actor(), now,
		before, shipmentSnapshot(aggregate)); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
