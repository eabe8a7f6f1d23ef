package commands

import (
	"errors"

	"exportflow/internal/core/domain/model/kernel"
	"exportflow/internal/pkg/guard"
)

var ErrLockManifestCommandIsNotConstructed = errors.New(
	"LockManifestCommand must be created via NewLockManifestCommand constructor",
)

// LockManifestCommand represents freezing a manifest's bag set ahead of
// carrier handover. Locking happens exactly once.
type LockManifestCommand struct { //nolint:recvcheck //using for validation
	manifestID kernel.UUID
	actor      string

	guard guard.ConstructorGuard
}

// NewLockManifestCommand creates a command to lock a manifest.
func NewLockManifestCommand(manifestID kernel.UUID, actor string) (LockManifestCommand, error) {
	cmd := LockManifestCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setManifestID(manifestID),
		cmd.setActor(actor),
	); err != nil {
		return LockManifestCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c LockManifestCommand) Validate() error {
	return c.guard.Validate(ErrLockManifestCommandIsNotConstructed)
}

// ManifestID returns the manifest to lock.
func (c LockManifestCommand) ManifestID() kernel.UUID { return c.manifestID }

// Actor returns who locked the manifest.
func (c LockManifestCommand) Actor() string { return c.actor }

func (c *LockManifestCommand) setManifestID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.manifestID = id
	return nil
}

func (c *LockManifestCommand) setActor(actor string) error {
	if actor == "" {
		return ErrActorIsRequired
	}
	c.actor = actor
	return nil
}
