package commands

import (
	"errors"

	"exportflow/internal/core/domain/model/kernel"
	"exportflow/internal/pkg/guard"
)

var ErrRemoveBagFromManifestCommandIsNotConstructed = errors.New(
	"RemoveBagFromManifestCommand must be created via NewRemoveBagFromManifestCommand constructor",
)

// RemoveBagFromManifestCommand represents detaching a bag, and its
// shipments, from a still-unlocked manifest.
type RemoveBagFromManifestCommand struct { //nolint:recvcheck //using for validation
	manifestID kernel.UUID
	bagID      kernel.UUID
	actor      string

	guard guard.ConstructorGuard
}

// NewRemoveBagFromManifestCommand creates a command to detach a bag from a
// manifest.
func NewRemoveBagFromManifestCommand(manifestID, bagID kernel.UUID, actor string) (RemoveBagFromManifestCommand, error) {
	cmd := RemoveBagFromManifestCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setManifestID(manifestID),
		cmd.setBagID(bagID),
		cmd.setActor(actor),
	); err != nil {
		return RemoveBagFromManifestCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveBagFromManifestCommand) Validate() error {
	return c.guard.Validate(ErrRemoveBagFromManifestCommandIsNotConstructed)
}

// ManifestID returns the manifest to detach from.
func (c RemoveBagFromManifestCommand) ManifestID() kernel.UUID { return c.manifestID }

// BagID returns the bag to detach.
func (c RemoveBagFromManifestCommand) BagID() kernel.UUID { return c.bagID }

// Actor returns who detached the bag.
func (c RemoveBagFromManifestCommand) Actor() string { return c.actor }

func (c *RemoveBagFromManifestCommand) setManifestID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.manifestID = id
	return nil
}

func (c *RemoveBagFromManifestCommand) setBagID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.bagID = id
	return nil
}

func (c *RemoveBagFromManifestCommand) setActor(actor string) error {
	if actor == "" {
		return ErrActorIsRequired
	}
	c.actor = actor
	return nil
}
