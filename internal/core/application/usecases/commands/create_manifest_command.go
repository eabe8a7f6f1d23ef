package commands

import (
	"errors"
	"time"

	"exportflow/internal/core/domain/model/kernel"
	"exportflow/internal/pkg/guard"
)

var (
	ErrCreateManifestCommandIsNotConstructed = errors.New(
		"CreateManifestCommand must be created via NewCreateManifestCommand constructor",
	)
	ErrFlightNumberIsRequired = errors.New("flight number is required")
	ErrDepartureAtIsRequired  = errors.New("scheduled departure time is required")
)

// CreateManifestCommand represents opening a new export manifest for one
// flight.
type CreateManifestCommand struct { //nolint:recvcheck //using for validation
	manifestID   kernel.UUID
	flightNumber string
	destination  string
	departureAt  time.Time
	actor        string

	guard guard.ConstructorGuard
}

// NewCreateManifestCommand creates a command to open a new manifest.
func NewCreateManifestCommand(
	manifestID kernel.UUID,
	flightNumber, destination string,
	departureAt time.Time,
	actor string,
) (CreateManifestCommand, error) {
	cmd := CreateManifestCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setManifestID(manifestID),
		cmd.setFlightNumber(flightNumber),
		cmd.setDestination(destination),
		cmd.setDepartureAt(departureAt),
		cmd.setActor(actor),
	); err != nil {
		return CreateManifestCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateManifestCommand) Validate() error {
	return c.guard.Validate(ErrCreateManifestCommandIsNotConstructed)
}

// ManifestID returns the identifier for the new manifest.
func (c CreateManifestCommand) ManifestID() kernel.UUID { return c.manifestID }

// FlightNumber returns the flight the manifest is assembled for.
func (c CreateManifestCommand) FlightNumber() string { return c.flightNumber }

// Destination returns the export destination tag.
func (c CreateManifestCommand) Destination() string { return c.destination }

// DepartureAt returns the scheduled departure time.
func (c CreateManifestCommand) DepartureAt() time.Time { return c.departureAt }

// Actor returns who opened the manifest.
func (c CreateManifestCommand) Actor() string { return c.actor }

func (c *CreateManifestCommand) setManifestID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.manifestID = id
	return nil
}

func (c *CreateManifestCommand) setFlightNumber(flightNumber string) error {
	if flightNumber == "" {
		return ErrFlightNumberIsRequired
	}
	c.flightNumber = flightNumber
	return nil
}

func (c *CreateManifestCommand) setDestination(destination string) error {
	if destination == "" {
		return ErrDestinationIsRequired
	}
	c.destination = destination
	return nil
}

func (c *CreateManifestCommand) setDepartureAt(departureAt time.Time) error {
	if departureAt.IsZero() {
		return ErrDepartureAtIsRequired
	}
	c.departureAt = departureAt
	return nil
}

func (c *CreateManifestCommand) setActor(actor string) error {
	if actor == "" {
		return ErrActorIsRequired
	}
	c.actor = actor
	return nil
}
