package manifest

import (
	"errors"
	"time"

	"exportflow/internal/core/domain/model/kernel"
	"exportflow/internal/pkg/errs"
	"exportflow/internal/pkg/guard"
)

var (
	// ErrManifestIsNotConstructed is returned when a Manifest instance was
	// not created through NewManifest or RestoreManifest.
	ErrManifestIsNotConstructed = errors.New("Manifest must be created via NewManifest or RestoreManifest")

	// ErrManifestLocked rejects structural edits (bag addition or removal)
	// after the manifest locks.
	ErrManifestLocked = errors.New("manifest is locked")

	// ErrAlreadyLocked is the idempotent-reject answer to a second Lock
	// call. No side effects accompany it.
	ErrAlreadyLocked = errors.New("manifest is already locked")

	// ErrManifestEmpty rejects locking a manifest with no bags.
	ErrManifestEmpty = errors.New("manifest contains no bags")

	// ErrNotLocked rejects handover on an unlocked manifest.
	ErrNotLocked = errors.New("manifest is not locked")

	// ErrHandoverRequired rejects departure before the handover event.
	ErrHandoverRequired = errors.New("manifest has not been handed over")

	// ErrAlreadyHandedOver marks a repeated handover; callers treat it as
	// the prior success and must not duplicate side effects.
	ErrAlreadyHandedOver = errors.New("handover already recorded")

	// ErrAlreadyDeparted marks a repeated departure; callers treat it as
	// the prior success and must not duplicate side effects.
	ErrAlreadyDeparted = errors.New("departure already recorded")

	// ErrBagAlreadyInManifest rejects adding the same bag twice.
	ErrBagAlreadyInManifest = errors.New("bag is already in this manifest")

	// ErrBagNotInManifest is returned when removing a bag the manifest does
	// not contain.
	ErrBagNotInManifest = errors.New("bag is not in this manifest")
)

// Manifest is the flight-scoped grouping of bags for export. While unlocked,
// bags may be added and removed freely; Lock freezes the structure exactly
// once, and from then on only the handover and departure events may be
// appended. Handover and departure are idempotent: the aggregate remembers
// both and reports repeats through ErrAlreadyHandedOver / ErrAlreadyDeparted
// so callers can return the prior result without new side effects.
type Manifest struct {
	id           kernel.UUID
	number       string
	flightNumber string
	destination  string
	departureAt  time.Time

	bagIDs []kernel.UUID

	locked   bool
	lockedAt *time.Time
	lockedBy string

	carrierReference string
	handedOverAt     *time.Time
	departedAt       *time.Time

	createdBy string
	createdAt time.Time

	guard guard.ConstructorGuard
}

// NewManifest creates an unlocked, empty manifest for one flight.
func NewManifest(
	id kernel.UUID,
	number, flightNumber, destination string,
	departureAt time.Time,
	createdBy string,
	now time.Time,
) (*Manifest, error) {
	m := &Manifest{
		departureAt: departureAt,
		createdBy:   createdBy,
		createdAt:   now,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		m.setID(id),
		m.setNumber(number),
		m.setFlightNumber(flightNumber),
		m.setDestination(destination),
	); err != nil {
		return nil, err
	}

	return m, nil
}

// RestoreManifest reconstructs a manifest from persistence.
func RestoreManifest(
	id kernel.UUID,
	number, flightNumber, destination string,
	departureAt time.Time,
	bagIDs []kernel.UUID,
	locked bool,
	lockedAt *time.Time,
	lockedBy string,
	carrierReference string,
	handedOverAt *time.Time,
	departedAt *time.Time,
	createdBy string,
	createdAt time.Time,
) (*Manifest, error) {
	m := &Manifest{
		departureAt:      departureAt,
		bagIDs:           bagIDs,
		locked:           locked,
		lockedAt:         lockedAt,
		lockedBy:         lockedBy,
		carrierReference: carrierReference,
		handedOverAt:     handedOverAt,
		departedAt:       departedAt,
		createdBy:        createdBy,
		createdAt:        createdAt,
		guard:            guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		m.setID(id),
		m.setNumber(number),
		m.setFlightNumber(flightNumber),
		m.setDestination(destination),
	); err != nil {
		return nil, err
	}

	return m, nil
}

// Validate ensures the Manifest was constructed through a constructor.
func (m *Manifest) Validate() error {
	if m == nil {
		return ErrManifestIsNotConstructed
	}
	return m.guard.Validate(ErrManifestIsNotConstructed)
}

// ID returns the internal manifest identifier.
func (m *Manifest) ID() kernel.UUID { return m.id }

// Number returns the human-readable manifest number.
func (m *Manifest) Number() string { return m.number }

// FlightNumber returns the flight this manifest is assembled for.
func (m *Manifest) FlightNumber() string { return m.flightNumber }

// Destination returns the destination tag every member bag must match.
func (m *Manifest) Destination() string { return m.destination }

// DepartureAt returns the scheduled departure time.
func (m *Manifest) DepartureAt() time.Time { return m.departureAt }

// BagIDs returns the member bags in insertion order.
func (m *Manifest) BagIDs() []kernel.UUID {
	out := make([]kernel.UUID, len(m.bagIDs))
	copy(out, m.bagIDs)
	return out
}

// IsLocked reports whether the manifest structure is frozen.
func (m *Manifest) IsLocked() bool { return m.locked }

// LockedAt returns the lock timestamp, nil while unlocked.
func (m *Manifest) LockedAt() *time.Time { return m.lockedAt }

// LockedBy returns the locking actor, empty while unlocked.
func (m *Manifest) LockedBy() string { return m.lockedBy }

// CarrierReference returns the airline reference stored at handover.
func (m *Manifest) CarrierReference() string { return m.carrierReference }

// IsHandedOver reports whether the physical handover was recorded.
func (m *Manifest) IsHandedOver() bool { return m.handedOverAt != nil }

// HandedOverAt returns the handover timestamp, nil before handover.
func (m *Manifest) HandedOverAt() *time.Time { return m.handedOverAt }

// IsDeparted reports whether departure was confirmed.
func (m *Manifest) IsDeparted() bool { return m.departedAt != nil }

// DepartedAt returns the departure timestamp, nil before departure.
func (m *Manifest) DepartedAt() *time.Time { return m.departedAt }

// CreatedBy returns the creating actor.
func (m *Manifest) CreatedBy() string { return m.createdBy }

// CreatedAt returns the creation timestamp.
func (m *Manifest) CreatedAt() time.Time { return m.createdAt }

// IsEmpty reports whether the manifest holds no bags.
func (m *Manifest) IsEmpty() bool { return len(m.bagIDs) == 0 }

// ContainsBag reports whether the bag is a member of this manifest.
func (m *Manifest) ContainsBag(bagID kernel.UUID) bool {
	for _, id := range m.bagIDs {
		if id.IsEqual(bagID) {
			return true
		}
	}
	return false
}

// AddBag appends a bag while the manifest is unlocked.
func (m *Manifest) AddBag(bagID kernel.UUID) error {
	if err := bagID.Validate(); err != nil {
		return err
	}
	if m.locked {
		return ErrManifestLocked
	}
	if m.ContainsBag(bagID) {
		return ErrBagAlreadyInManifest
	}

	m.bagIDs = append(m.bagIDs, bagID)
	return nil
}

// RemoveBag removes a member bag while the manifest is unlocked.
func (m *Manifest) RemoveBag(bagID kernel.UUID) error {
	if m.locked {
		return ErrManifestLocked
	}

	for i, id := range m.bagIDs {
		if id.IsEqual(bagID) {
			m.bagIDs = append(m.bagIDs[:i], m.bagIDs[i+1:]...)
			return nil
		}
	}
	return ErrBagNotInManifest
}

// Lock freezes the bag set exactly once, stamping actor and time. A second
// call returns ErrAlreadyLocked with zero side effects.
func (m *Manifest) Lock(actor string, now time.Time) error {
	if actor == "" {
		return errs.NewValueIsRequiredError("actor")
	}
	if m.locked {
		return ErrAlreadyLocked
	}
	if m.IsEmpty() {
		return ErrManifestEmpty
	}

	m.locked = true
	m.lockedAt = &now
	m.lockedBy = actor
	return nil
}

// RecordHandover stores the carrier reference and handover time. Requires a
// locked manifest; a repeat returns ErrAlreadyHandedOver.
func (m *Manifest) RecordHandover(carrierReference string, now time.Time) error {
	if carrierReference == "" {
		return errs.NewValueIsRequiredError("carrierReference")
	}
	if !m.locked {
		return ErrNotLocked
	}
	if m.handedOverAt != nil {
		return ErrAlreadyHandedOver
	}

	m.carrierReference = carrierReference
	m.handedOverAt = &now
	return nil
}

// RecordDeparture confirms the flight left. Requires a prior handover; a
// repeat returns ErrAlreadyDeparted.
func (m *Manifest) RecordDeparture(now time.Time) error {
	if m.handedOverAt == nil {
		return ErrHandoverRequired
	}
	if m.departedAt != nil {
		return ErrAlreadyDeparted
	}

	m.departedAt = &now
	return nil
}

func (m *Manifest) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *Manifest) setNumber(number string) error {
	if number == "" {
		return errs.NewValueIsRequiredError("manifestNumber")
	}
	m.number = number
	return nil
}

func (m *Manifest) setFlightNumber(flightNumber string) error {
	if flightNumber == "" {
		return errs.NewValueIsRequiredError("flightNumber")
	}
	m.flightNumber = flightNumber
	return nil
}

func (m *Manifest) setDestination(destination string) error {
	if destination == "" {
		return errs.NewValueIsRequiredError("destination")
	}
	m.destination = destination
	return nil
}
