package commands

import (
	"errors"

	"exportflow/internal/core/domain/model/kernel"
	"exportflow/internal/pkg/guard"
)

var ErrRemoveFromBagCommandIsNotConstructed = errors.New(
	"RemoveFromBagCommand must be created via NewRemoveFromBagCommand constructor",
)

// RemoveFromBagCommand represents pulling a parcel back out of an open,
// unmanifested bag.
type RemoveFromBagCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	actor      string

	guard guard.ConstructorGuard
}

// NewRemoveFromBagCommand creates a command to remove a shipment from its bag.
func NewRemoveFromBagCommand(shipmentID kernel.UUID, actor string) (RemoveFromBagCommand, error) {
	cmd := RemoveFromBagCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setActor(actor),
	); err != nil {
		return RemoveFromBagCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveFromBagCommand) Validate() error {
	return c.guard.Validate(ErrRemoveFromBagCommandIsNotConstructed)
}

// ShipmentID returns the shipment to pull out.
func (c RemoveFromBagCommand) ShipmentID() kernel.UUID { return c.shipmentID }

// Actor returns who removed the parcel.
func (c RemoveFromBagCommand) Actor() string { return c.actor }

func (c *RemoveFromBagCommand) setShipmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.shipmentID = id
	return nil
}

func (c *RemoveFromBagCommand) setActor(actor string) error {
	if actor == "" {
		return ErrActorIsRequired
	}
	c.actor = actor
	return nil
}
