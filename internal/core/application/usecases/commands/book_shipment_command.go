package commands

import (
	"errors"

	"exportflow/internal/core/domain/model/kernel"
	"exportflow/internal/pkg/guard"
)

var ErrBookShipmentCommandIsNotConstructed = errors.New(
	"BookShipmentCommand must be created via NewBookShipmentCommand constructor",
)

// BookShipmentCommand represents a booking confirmation: the shipment leaves
// Draft, and an AWB is issued and assigned exactly once.
type BookShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	actor      string

	guard guard.ConstructorGuard
}

// NewBookShipmentCommand creates a command to confirm a shipment booking.
func NewBookShipmentCommand(shipmentID kernel.UUID, actor string) (BookShipmentCommand, error) {
	cmd := BookShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setActor(actor),
	); err != nil {
		return BookShipmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c BookShipmentCommand) Validate() error {
	return c.guard.Validate(ErrBookShipmentCommandIsNotConstructed)
}

// ShipmentID returns the shipment to confirm.
func (c BookShipmentCommand) ShipmentID() kernel.UUID { return c.shipmentID }

// Actor returns who confirmed the booking.
func (c BookShipmentCommand) Actor() string { return c.actor }

func (c *BookShipmentCommand) setShipmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.shipmentID = id
	return nil
}

func (c *BookShipmentCommand) setActor(actor string) error {
	if actor == "" {
		return ErrActorIsRequired
	}
	c.actor = actor
	return nil
}
