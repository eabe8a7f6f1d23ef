package commands

import (
	"errors"

	"exportflow/internal/core/domain/model/kernel"
	"exportflow/internal/core/domain/model/shipment"
	"exportflow/internal/pkg/guard"
)

var (
	ErrCreateShipmentCommandIsNotConstructed = errors.New(
		"CreateShipmentCommand must be created via NewCreateShipmentCommand constructor",
	)
	ErrActorIsRequired = errors.New("actor is required")
)

// CreateShipmentCommand represents a request to register a new shipment in
// Draft status with its declared weight and dimensions. The AWB is not
// assigned yet; that happens at booking confirmation.
type CreateShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID     kernel.UUID
	destination    string
	declaredWeight shipment.Weight
	declaredDims   shipment.Dimensions
	actor          string

	guard guard.ConstructorGuard
}

// NewCreateShipmentCommand creates a command to register a new shipment.
// The destination tag, declared weight and dimensions must all be valid.
func NewCreateShipmentCommand(
	shipmentID kernel.UUID,
	destination string,
	declaredWeight shipment.Weight,
	declaredDims shipment.Dimensions,
	actor string,
) (CreateShipmentCommand, error) {
	cmd := CreateShipmentCommand{
		destination: destination,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setDeclared(declaredWeight, declaredDims),
		cmd.setActor(actor),
	); err != nil {
		return CreateShipmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
}

// ShipmentID returns the identifier for the new shipment.
func (c CreateShipmentCommand) ShipmentID() kernel.UUID { return c.shipmentID }

// Destination returns the export destination tag.
func (c CreateShipmentCommand) Destination() string { return c.destination }

// DeclaredWeight returns the declared weight.
func (c CreateShipmentCommand) DeclaredWeight() shipment.Weight { return c.declaredWeight }

// DeclaredDimensions returns the declared dimensions.
func (c CreateShipmentCommand) DeclaredDimensions() shipment.Dimensions { return c.declaredDims }

// Actor returns who requested the creation.
func (c CreateShipmentCommand) Actor() string { return c.actor }

func (c *CreateShipmentCommand) setShipmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.shipmentID = id
	return nil
}

func (c *CreateShipmentCommand) setDeclared(w shipment.Weight, d shipment.Dimensions) error {
	if err := errors.Join(w.Validate(), d.Validate()); err != nil {
		return err
	}
	c.declaredWeight = w
	c.declaredDims = d
	return nil
}

func (c *CreateShipmentCommand) setActor(actor string) error {
	if actor == "" {
		return ErrActorIsRequired
	}
	c.actor = actor
	return nil
}
