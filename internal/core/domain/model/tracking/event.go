// Package tracking provides the customer-visible tracking event derived
// from internal status transitions.
package tracking

import (
	"errors"
	"time"

	"exportflow/internal/core/domain/model/kernel"
	"exportflow/internal/pkg/errs"
	"exportflow/internal/pkg/guard"
)

// ErrEventIsNotConstructed is returned when an Event was not created through
// NewEvent or RestoreEvent.
var ErrEventIsNotConstructed = errors.New("Event must be created via NewEvent or RestoreEvent")

// Event is one timestamped customer-visible milestone on a shipment's
// journey.
type Event struct {
	id          kernel.UUID
	shipmentID  kernel.UUID
	status      string
	description string
	location    string
	occurredAt  time.Time

	guard guard.ConstructorGuard
}

// NewEvent creates a tracking event for a shipment.
func NewEvent(
	id kernel.UUID,
	shipmentID kernel.UUID,
	status, description, location string,
	occurredAt time.Time,
) (*Event, error) {
	e := &Event{
		description: description,
		location:    location,
		occurredAt:  occurredAt,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		e.setID(id),
		e.setShipmentID(shipmentID),
		e.setStatus(status),
	); err != nil {
		return nil, err
	}

	return e, nil
}

// RestoreEvent reconstructs an event from persistence.
func RestoreEvent(
	id kernel.UUID,
	shipmentID kernel.UUID,
	status, description, location string,
	occurredAt time.Time,
) (*Event, error) {
	return NewEvent(id, shipmentID, status, description, location, occurredAt)
}

// Validate ensures the Event was constructed through a constructor.
func (e *Event) Validate() error {
	if e == nil {
		return ErrEventIsNotConstructed
	}
	return e.guard.Validate(ErrEventIsNotConstructed)
}

// ID returns the event identifier.
func (e *Event) ID() kernel.UUID { return e.id }

// ShipmentID returns the shipment this event belongs to.
func (e *Event) ShipmentID() kernel.UUID { return e.shipmentID }

// Status returns the wire-level status name at this milestone.
func (e *Event) Status() string { return e.status }

// Description returns the human-readable milestone text.
func (e *Event) Description() string { return e.description }

// Location returns where the milestone happened.
func (e *Event) Location() string { return e.location }

// OccurredAt returns the milestone timestamp.
func (e *Event) OccurredAt() time.Time { return e.occurredAt }

func (e *Event) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.id = id
	return nil
}

func (e *Event) setShipmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.shipmentID = id
	return nil
}

func (e *Event) setStatus(status string) error {
	if status == "" {
		return errs.NewValueIsRequiredError("status")
	}
	e.status = status
	return nil
}
