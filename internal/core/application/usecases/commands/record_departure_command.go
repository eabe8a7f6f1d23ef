package commands

import (
	"errors"

	"exportflow/internal/core/domain/model/kernel"
	"exportflow/internal/pkg/guard"
)

var ErrRecordDepartureCommandIsNotConstructed = errors.New(
	"RecordDepartureCommand must be created via NewRecordDepartureCommand constructor",
)

// RecordDepartureCommand represents the departure confirmation for a
// handed-over manifest. Safe to retry.
type RecordDepartureCommand struct { //nolint:recvcheck //using for validation
	manifestID kernel.UUID
	actor      string

	guard guard.ConstructorGuard
}

// NewRecordDepartureCommand creates a command to confirm departure.
func NewRecordDepartureCommand(manifestID kernel.UUID, actor string) (RecordDepartureCommand, error) {
	cmd := RecordDepartureCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setManifestID(manifestID),
		cmd.setActor(actor),
	); err != nil {
		return RecordDepartureCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordDepartureCommand) Validate() error {
	return c.guard.Validate(ErrRecordDepartureCommandIsNotConstructed)
}

// ManifestID returns the departed manifest.
func (c RecordDepartureCommand) ManifestID() kernel.UUID { return c.manifestID }

// Actor returns who confirmed the departure.
func (c RecordDepartureCommand) Actor() string { return c.actor }

func (c *RecordDepartureCommand) setManifestID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.manifestID = id
	return nil
}

func (c *RecordDepartureCommand) setActor(actor string) error {
	if actor == "" {
		return ErrActorIsRequired
	}
	c.actor = actor
	return nil
}
