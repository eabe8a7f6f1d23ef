package commands

import (
	"errors"

	"exportflow/internal/core/domain/model/kernel"
	"exportflow/internal/pkg/guard"
)

var (
	ErrRecordHandoverCommandIsNotConstructed = errors.New(
		"RecordHandoverCommand must be created via NewRecordHandoverCommand constructor",
	)
	ErrCarrierReferenceIsRequired = errors.New("carrier reference is required")
)

// RecordHandoverCommand represents the physical handover of a locked
// manifest's bags to the carrier. Safe to retry: a repeat is answered with
// the prior result and no new side effects.
type RecordHandoverCommand struct { //nolint:recvcheck //using for validation
	manifestID       kernel.UUID
	carrierReference string
	actor            string

	guard guard.ConstructorGuard
}

// NewRecordHandoverCommand creates a command to record a carrier handover.
func NewRecordHandoverCommand(manifestID kernel.UUID, carrierReference, actor string) (RecordHandoverCommand, error) {
	cmd := RecordHandoverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setManifestID(manifestID),
		cmd.setCarrierReference(carrierReference),
		cmd.setActor(actor),
	); err != nil {
		return RecordHandoverCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordHandoverCommand) Validate() error {
	return c.guard.Validate(ErrRecordHandoverCommandIsNotConstructed)
}

// ManifestID returns the handed-over manifest.
func (c RecordHandoverCommand) ManifestID() kernel.UUID { return c.manifestID }

// CarrierReference returns the airline's acceptance reference.
func (c RecordHandoverCommand) CarrierReference() string { return c.carrierReference }

// Actor returns who recorded the handover.
func (c RecordHandoverCommand) Actor() string { return c.actor }

func (c *RecordHandoverCommand) setManifestID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.manifestID = id
	return nil
}

func (c *RecordHandoverCommand) setCarrierReference(ref string) error {
	if ref == "" {
		return ErrCarrierReferenceIsRequired
	}
	c.carrierReference = ref
	return nil
}

func (c *RecordHandoverCommand) setActor(actor string) error {
	if actor == "" {
		return ErrActorIsRequired
	}
	c.actor = actor
	return nil
}
