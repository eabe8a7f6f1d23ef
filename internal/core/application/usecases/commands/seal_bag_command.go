package commands

import (
	"errors"

	"exportflow/internal/core/domain/model/kernel"
	"exportflow/internal/pkg/guard"
)

var ErrSealBagCommandIsNotConstructed = errors.New(
	"SealBagCommand must be created via NewSealBagCommand constructor",
)

// SealBagCommand represents physically sealing a bag ahead of manifest
// assembly. A sealed bag accepts no further parcels.
type SealBagCommand struct { //nolint:recvcheck //using for validation
	bagID kernel.UUID
	actor string

	guard guard.ConstructorGuard
}

// NewSealBagCommand creates a command to seal a bag.
func NewSealBagCommand(bagID kernel.UUID, actor string) (SealBagCommand, error) {
	cmd := SealBagCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setBagID(bagID),
		cmd.setActor(actor),
	); err != nil {
		return SealBagCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SealBagCommand) Validate() error {
	return c.guard.Validate(ErrSealBagCommandIsNotConstructed)
}

// BagID returns the bag to seal.
func (c SealBagCommand) BagID() kernel.UUID { return c.bagID }

// Actor returns who sealed the bag.
func (c SealBagCommand) Actor() string { return c.actor }

func (c *SealBagCommand) setBagID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.bagID = id
	return nil
}

func (c *SealBagCommand) setActor(actor string) error {
	if actor == "" {
		return ErrActorIsRequired
	}
	c.actor = actor
	return nil
}
