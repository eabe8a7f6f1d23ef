package commands

import (
	"errors"

	"exportflow/internal/core/domain/model/kernel"
	"exportflow/internal/pkg/guard"
)

var (
	ErrClearMismatchCommandIsNotConstructed = errors.New(
		"ClearMismatchCommand must be created via NewClearMismatchCommand constructor",
	)
	ErrReasonIsRequired = errors.New("reason is required")
)

// ClearMismatchCommand represents the audited override returning a flagged
// shipment to the normal flow. The reason is mandatory and lands in the
// audit trail.
type ClearMismatchCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	reason     string
	actor      string

	guard guard.ConstructorGuard
}

// NewClearMismatchCommand creates a command to clear a mismatch flag.
func NewClearMismatchCommand(shipmentID kernel.UUID, reason, actor string) (ClearMismatchCommand, error) {
	cmd := ClearMismatchCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setReason(reason),
		cmd.setActor(actor),
	); err != nil {
		return ClearMismatchCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ClearMismatchCommand) Validate() error {
	return c.guard.Validate(ErrClearMismatchCommandIsNotConstructed)
}

// ShipmentID returns the flagged shipment.
func (c ClearMismatchCommand) ShipmentID() kernel.UUID { return c.shipmentID }

// Reason returns the operator's override justification.
func (c ClearMismatchCommand) Reason() string { return c.reason }

// Actor returns who performed the override.
func (c ClearMismatchCommand) Actor() string { return c.actor }

func (c *ClearMismatchCommand) setShipmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.shipmentID = id
	return nil
}

func (c *ClearMismatchCommand) setReason(reason string) error {
	if reason == "" {
		return ErrReasonIsRequired
	}
	c.reason = reason
	return nil
}

func (c *ClearMismatchCommand) setActor(actor string) error {
	if actor == "" {
		return ErrActorIsRequired
	}
	c.actor = actor
	return nil
}
