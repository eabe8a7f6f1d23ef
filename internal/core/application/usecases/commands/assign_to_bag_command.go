package commands

import (
	"errors"

	"exportflow/internal/core/domain/model/kernel"
	"exportflow/internal/pkg/guard"
)

var ErrAssignToBagCommandIsNotConstructed = errors.New(
	"AssignToBagCommand must be created via NewAssignToBagCommand constructor",
)

// AssignToBagCommand represents scanning one parcel into one bag.
type AssignToBagCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	bagID      kernel.UUID
	actor      string

	guard guard.ConstructorGuard
}

// NewAssignToBagCommand creates a command to assign a shipment to a bag.
func NewAssignToBagCommand(shipmentID, bagID kernel.UUID, actor string) (AssignToBagCommand, error) {
	cmd := AssignToBagCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setBagID(bagID),
		cmd.setActor(actor),
	); err != nil {
		return AssignToBagCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignToBagCommand) Validate() error {
	return c.guard.Validate(ErrAssignToBagCommandIsNotConstructed)
}

// ShipmentID returns the scanned shipment.
func (c AssignToBagCommand) ShipmentID() kernel.UUID { return c.shipmentID }

// BagID returns the target bag.
func (c AssignToBagCommand) BagID() kernel.UUID { return c.bagID }

// Actor returns who scanned the parcel.
func (c AssignToBagCommand) Actor() string { return c.actor }

func (c *AssignToBagCommand) setShipmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.shipmentID = id
	return nil
}

func (c *AssignToBagCommand) setBagID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.bagID = id
	return nil
}

func (c *AssignToBagCommand) setActor(actor string) error {
	if actor == "" {
		return ErrActorIsRequired
	}
	c.actor = actor
	return nil
}
