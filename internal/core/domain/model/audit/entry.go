// Package audit provides the append-only audit trail entry recorded for
// every accepted state-changing action. Entries are immutable: they are
// created once and never updated or deleted.
package audit

import (
	"errors"
	"time"

	"exportflow/internal/core/domain/model/kernel"
	"exportflow/internal/pkg/errs"
	"exportflow/internal/pkg/guard"
)

// ErrEntryIsNotConstructed is returned when an Entry was not created through
// NewEntry or RestoreEntry.
var ErrEntryIsNotConstructed = errors.New("Entry must be created via NewEntry or RestoreEntry")

// SubjectType identifies the aggregate kind an entry refers to.
type SubjectType string

const (
	SubjectShipment SubjectType = "SHIPMENT"
	SubjectBag      SubjectType = "BAG"
	SubjectManifest SubjectType = "MANIFEST"
)

// Entry records one accepted mutation: who did what to which aggregate,
// when, and the before/after snapshots.
type Entry struct {
	id          kernel.UUID
	subjectType SubjectType
	subjectID   kernel.UUID
	action      string
	actor       string
	occurredAt  time.Time
	before      string
	after       string

	guard guard.ConstructorGuard
}

// NewEntry creates an audit entry for one mutation. Snapshots are opaque
// serialized strings; before may be empty for creations.
func NewEntry(
	id kernel.UUID,
	subjectType SubjectType,
	subjectID kernel.UUID,
	action, actor string,
	occurredAt time.Time,
	before, after string,
) (*Entry, error) {
	e := &Entry{
		subjectType: subjectType,
		occurredAt:  occurredAt,
		before:      before,
		after:       after,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		e.setID(id),
		e.setSubjectID(subjectID),
		e.setAction(action),
		e.setActor(actor),
	); err != nil {
		return nil, err
	}

	return e, nil
}

// RestoreEntry reconstructs an entry from persistence.
func RestoreEntry(
	id kernel.UUID,
	subjectType SubjectType,
	subjectID kernel.UUID,
	action, actor string,
	occurredAt time.Time,
	before, after string,
) (*Entry, error) {
	return NewEntry(id, subjectType, subjectID, action, actor, occurredAt, before, after)
}

// Validate ensures the Entry was constructed through a constructor.
func (e *Entry) Validate() error {
	if e == nil {
		return ErrEntryIsNotConstructed
	}
	return e.guard.Validate(ErrEntryIsNotConstructed)
}

// ID returns the entry identifier.
func (e *Entry) ID() kernel.UUID { return e.id }

// SubjectType returns the aggregate kind this entry refers to.
func (e *Entry) SubjectType() SubjectType { return e.subjectType }

// SubjectID returns the mutated aggregate's identifier.
func (e *Entry) SubjectID() kernel.UUID { return e.subjectID }

// Action returns the action kind, e.g. "SHIPMENT_BOOKED".
func (e *Entry) Action() string { return e.action }

// Actor returns who performed the action.
func (e *Entry) Actor() string { return e.actor }

// OccurredAt returns when the action was accepted.
func (e *Entry) OccurredAt() time.Time { return e.occurredAt }

// Before returns the prior-state snapshot, empty for creations.
func (e *Entry) Before() string { return e.before }

// After returns the new-state snapshot.
func (e *Entry) After() string { return e.after }

func (e *Entry) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.id = id
	return nil
}

func (e *Entry) setSubjectID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.subjectID = id
	return nil
}

func (e *Entry) setAction(action string) error {
	if action == "" {
		return errs.NewValueIsRequiredError("action")
	}
	e.action = action
	return nil
}

func (e *Entry) setActor(actor string) error {
	if actor == "" {
		return errs.NewValueIsRequiredError("actor")
	}
	e.actor = actor
	return nil
}
