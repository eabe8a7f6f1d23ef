package commands

import (
	"errors"

	"exportflow/internal/core/domain/model/kernel"
	"exportflow/internal/pkg/guard"
)

var (
	ErrCreateBagCommandIsNotConstructed = errors.New(
		"CreateBagCommand must be created via NewCreateBagCommand constructor",
	)
	ErrDestinationIsRequired = errors.New("destination is required")
)

// CreateBagCommand represents a request to open a new empty bag for one
// export destination.
type CreateBagCommand struct { //nolint:recvcheck //using for validation
	bagID       kernel.UUID
	destination string
	actor       string

	guard guard.ConstructorGuard
}

// NewCreateBagCommand creates a command to open a new bag.
func NewCreateBagCommand(bagID kernel.UUID, destination, actor string) (CreateBagCommand, error) {
	cmd := CreateBagCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setBagID(bagID),
		cmd.setDestination(destination),
		cmd.setActor(actor),
	); err != nil {
		return CreateBagCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateBagCommand) Validate() error {
	return c.guard.Validate(ErrCreateBagCommandIsNotConstructed)
}

// BagID returns the identifier for the new bag.
func (c CreateBagCommand) BagID() kernel.UUID { return c.bagID }

// Destination returns the export destination tag.
func (c CreateBagCommand) Destination() string { return c.destination }

// Actor returns who opened the bag.
func (c CreateBagCommand) Actor() string { return c.actor }

func (c *CreateBagCommand) setBagID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.bagID = id
	return nil
}

func (c *CreateBagCommand) setDestination(destination string) error {
	if destination == "" {
		return ErrDestinationIsRequired
	}
	c.destination = destination
	return nil
}

func (c *CreateBagCommand) setActor(actor string) error {
	if actor == "" {
		return ErrActorIsRequired
	}
	c.actor = actor
	return nil
}
