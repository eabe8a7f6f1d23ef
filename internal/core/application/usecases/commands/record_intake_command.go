package commands

import (
	"errors"

	"exportflow/internal/core/domain/model/kernel"
	"exportflow/internal/core/domain/model/shipment"
	"exportflow/internal/pkg/guard"
)

var ErrRecordIntakeCommandIsNotConstructed = errors.New(
	"RecordIntakeCommand must be created via NewRecordIntakeCommand constructor",
)

// RecordIntakeCommand represents the physical warehouse intake event: the
// parcel is weighed and measured. Whether the shipment proceeds or lands in
// the mismatch side-state depends on the tolerance policy.
type RecordIntakeCommand struct { //nolint:recvcheck //using for validation
	shipmentID     kernel.UUID
	measuredWeight shipment.Weight
	measuredDims   shipment.Dimensions
	actor          string

	guard guard.ConstructorGuard
}

// NewRecordIntakeCommand creates a command to record a warehouse intake.
func NewRecordIntakeCommand(
	shipmentID kernel.UUID,
	measuredWeight shipment.Weight,
	measuredDims shipment.Dimensions,
	actor string,
) (RecordIntakeCommand, error) {
	cmd := RecordIntakeCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setMeasured(measuredWeight, measuredDims),
		cmd.setActor(actor),
	); err != nil {
		return RecordIntakeCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordIntakeCommand) Validate() error {
	return c.guard.Validate(ErrRecordIntakeCommandIsNotConstructed)
}

// ShipmentID returns the shipment that arrived.
func (c RecordIntakeCommand) ShipmentID() kernel.UUID { return c.shipmentID }

// MeasuredWeight returns the warehouse-measured weight.
func (c RecordIntakeCommand) MeasuredWeight() shipment.Weight { return c.measuredWeight }

// MeasuredDimensions returns the warehouse-measured dimensions.
func (c RecordIntakeCommand) MeasuredDimensions() shipment.Dimensions { return c.measuredDims }

// Actor returns who recorded the intake.
func (c RecordIntakeCommand) Actor() string { return c.actor }

func (c *RecordIntakeCommand) setShipmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.shipmentID = id
	return nil
}

func (c *RecordIntakeCommand) setMeasured(w shipment.Weight, d shipment.Dimensions) error {
	if err := errors.Join(w.Validate(), d.Validate()); err != nil {
		return err
	}
	c.measuredWeight = w
	c.measuredDims = d
	return nil
}

func (c *RecordIntakeCommand) setActor(actor string) error {
	if actor == "" {
		return ErrActorIsRequired
	}
	c.actor = actor
	return nil
}
