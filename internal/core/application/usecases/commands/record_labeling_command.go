package commands

import (
	"errors"

	"exportflow/internal/core/domain/model/kernel"
	"exportflow/internal/pkg/guard"
)

var ErrRecordLabelingCommandIsNotConstructed = errors.New(
	"RecordLabelingCommand must be created via NewRecordLabelingCommand constructor",
)

// RecordLabelingCommand represents the labeling event that makes a received
// shipment ready for sorting.
type RecordLabelingCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	actor      string

	guard guard.ConstructorGuard
}

// NewRecordLabelingCommand creates a command to record a labeling event.
func NewRecordLabelingCommand(shipmentID kernel.UUID, actor string) (RecordLabelingCommand, error) {
	cmd := RecordLabelingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setActor(actor),
	); err != nil {
		return RecordLabelingCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordLabelingCommand) Validate() error {
	return c.guard.Validate(ErrRecordLabelingCommandIsNotConstructed)
}

// ShipmentID returns the labeled shipment.
func (c RecordLabelingCommand) ShipmentID() kernel.UUID { return c.shipmentID }

// Actor returns who recorded the labeling.
func (c RecordLabelingCommand) Actor() string { return c.actor }

func (c *RecordLabelingCommand) setShipmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.shipmentID = id
	return nil
}

func (c *RecordLabelingCommand) setActor(actor string) error {
	if actor == "" {
		return ErrActorIsRequired
	}
	c.actor = actor
	return nil
}
