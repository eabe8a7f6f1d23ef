package commands

import (
	"errors"

	"exportflow/internal/core/domain/model/kernel"
	"exportflow/internal/pkg/guard"
)

var ErrAddBagToManifestCommandIsNotConstructed = errors.New(
	"AddBagToManifestCommand must be created via NewAddBagToManifestCommand constructor",
)

// AddBagToManifestCommand represents attaching one bag, and with it every
// shipment inside, to an unlocked manifest.
type AddBagToManifestCommand struct { //nolint:recvcheck //using for validation
	manifestID kernel.UUID
	bagID      kernel.UUID
	actor      string

	guard guard.ConstructorGuard
}

// NewAddBagToManifestCommand creates a command to attach a bag to a manifest.
func NewAddBagToManifestCommand(manifestID, bagID kernel.UUID, actor string) (AddBagToManifestCommand, error) {
	cmd := AddBagToManifestCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setManifestID(manifestID),
		cmd.setBagID(bagID),
		cmd.setActor(actor),
	); err != nil {
		return AddBagToManifestCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddBagToManifestCommand) Validate() error {
	return c.guard.Validate(ErrAddBagToManifestCommandIsNotConstructed)
}

// ManifestID returns the target manifest.
func (c AddBagToManifestCommand) ManifestID() kernel.UUID { return c.manifestID }

// BagID returns the bag to attach.
func (c AddBagToManifestCommand) BagID() kernel.UUID { return c.bagID }

// Actor returns who attached the bag.
func (c AddBagToManifestCommand) Actor() string { return c.actor }

func (c *AddBagToManifestCommand) setManifestID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.manifestID = id
	return nil
}

func (c *AddBagToManifestCommand) setBagID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.bagID = id
	return nil
}

func (c *AddBagToManifestCommand) setActor(actor string) error {
	if actor == "" {
		return ErrActorIsRequired
	}
	c.actor = actor
	return nil
}
