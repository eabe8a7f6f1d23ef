package commands

import (
	"context"
	"time"

	"exportflow/internal/core/domain/model/audit"
	"exportflow/internal/core/domain/model/shipment"
)

// CreateShipmentCommandHandler handles shipment registration. The new
// shipment and its creation audit entry commit in one transaction.
type CreateShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewCreateShipmentCommandHandler creates a handler for shipment registration.
func NewCreateShipmentCommandHandler(uowFactory ShipmentUoWFactory) CreateShipmentCommandHandler {
	return CreateShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the shipment creation command.
func (h *CreateShipmentCommandHandler) Handle(ctx context.Context, cmd CreateShipmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	now := time.Now()
	aggregate, err := shipment.NewShipment(
		cmd.ShipmentID(), cmd.Destination(),
		cmd.DeclaredWeight(), cmd.DeclaredDimensions(),
		now,
	)
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

	if err = uow.ShipmentRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = appendAudit(ctx, uow, audit.SubjectShipment, aggregate.ID(),
		actionShipmentCreated, cmd.Actor(), now,
		"", shipmentSnapshot(aggregate)); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
