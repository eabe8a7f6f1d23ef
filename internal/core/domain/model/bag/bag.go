package bag

import (
	"errors"
	"time"

	"exportflow/internal/core/domain/model/kernel"
	"exportflow/internal/pkg/errs"
	"exportflow/internal/pkg/guard"
)

var (
	// ErrBagIsNotConstructed is returned when a Bag instance was not created
	// through NewBag or RestoreBag.
	ErrBagIsNotConstructed = errors.New("Bag must be created via NewBag or RestoreBag")

	// ErrBagSealed rejects content mutations on a sealed bag.
	ErrBagSealed = errors.New("bag is sealed")

	// ErrBagAlreadySealed rejects a second seal.
	ErrBagAlreadySealed = errors.New("bag is already sealed")

	// ErrBagEmpty rejects sealing or manifesting a bag with no shipments.
	ErrBagEmpty = errors.New("bag contains no shipments")

	// ErrBagAlreadyManifested rejects attaching a bag that is already a
	// member of another manifest.
	ErrBagAlreadyManifested = errors.New("bag already belongs to a manifest")

	// ErrBagManifested rejects content mutations once the bag belongs to a
	// manifest.
	ErrBagManifested = errors.New("bag belongs to a manifest")

	// ErrShipmentAlreadyInBag rejects scanning the same shipment twice.
	ErrShipmentAlreadyInBag = errors.New("shipment is already in this bag")

	// ErrShipmentNotInBag is returned when removing a shipment the bag does
	// not contain.
	ErrShipmentNotInBag = errors.New("shipment is not in this bag")
)

// Bag is the physical aggregation unit grouping parcels for one export
// destination. Members are kept in scan order. A bag is open for intake
// until sealed; it can join at most one manifest and is never reopened once
// that manifest locks.
type Bag struct {
	id          kernel.UUID
	number      string
	destination string

	shipmentIDs []kernel.UUID
	sealed      bool
	sealedAt    *time.Time
	sealedBy    string

	manifestID *kernel.UUID
	createdAt  time.Time

	guard guard.ConstructorGuard
}

// NewBag creates an open, empty bag for the given destination tag.
func NewBag(id kernel.UUID, number, destination string, now time.Time) (*Bag, error) {
	b := &Bag{
		createdAt: now,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		b.setID(id),
		b.setNumber(number),
		b.setDestination(destination),
	); err != nil {
		return nil, err
	}

	return b, nil
}

// RestoreBag reconstructs a bag from persistence, including its ordered
// member list and seal/manifest state.
func RestoreBag(
	id kernel.UUID,
	number, destination string,
	shipmentIDs []kernel.UUID,
	sealed bool,
	sealedAt *time.Time,
	sealedBy string,
	manifestID *kernel.UUID,
	createdAt time.Time,
) (*Bag, error) {
	b := &Bag{
		shipmentIDs: shipmentIDs,
		sealed:      sealed,
		sealedAt:    sealedAt,
		sealedBy:    sealedBy,
		manifestID:  manifestID,
		createdAt:   createdAt,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		b.setID(id),
		b.setNumber(number),
		b.setDestination(destination),
	); err != nil {
		return nil, err
	}

	return b, nil
}

// Validate ensures the Bag was constructed through a constructor.
func (b *Bag) Validate() error {
	if b == nil {
		return ErrBagIsNotConstructed
	}
	return b.guard.Validate(ErrBagIsNotConstructed)
}

// ID returns the internal bag identifier.
func (b *Bag) ID() kernel.UUID { return b.id }

// Number returns the human-readable bag number.
func (b *Bag) Number() string { return b.number }

// Destination returns the destination tag all members share.
func (b *Bag) Destination() string { return b.destination }

// ShipmentIDs returns the member shipments in scan order.
func (b *Bag) ShipmentIDs() []kernel.UUID {
	out := make([]kernel.UUID, len(b.shipmentIDs))
	copy(out, b.shipmentIDs)
	return out
}

// IsSealed reports whether the bag was sealed for manifest assembly.
func (b *Bag) IsSealed() bool { return b.sealed }

// SealedAt returns the seal timestamp, nil while open.
func (b *Bag) SealedAt() *time.Time { return b.sealedAt }

// SealedBy returns the actor who sealed the bag, empty while open.
func (b *Bag) SealedBy() string { return b.sealedBy }

// ManifestRef returns the owning manifest, nil while unmanifested.
func (b *Bag) ManifestRef() *kernel.UUID { return b.manifestID }

// CreatedAt returns the creation timestamp.
func (b *Bag) CreatedAt() time.Time { return b.createdAt }

// IsEmpty reports whether the bag holds no shipments.
func (b *Bag) IsEmpty() bool { return len(b.shipmentIDs) == 0 }

// Contains reports whether the shipment is a member of this bag.
func (b *Bag) Contains(shipmentID kernel.UUID) bool {
	for _, id := range b.shipmentIDs {
		if id.IsEqual(shipmentID) {
			return true
		}
	}
	return false
}

// AddShipment appends a shipment in scan order. Rejected once the bag is
// sealed or manifested.
func (b *Bag) AddShipment(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}
	if b.sealed {
		return ErrBagSealed
	}
	if b.manifestID != nil {
		return ErrBagManifested
	}
	if b.Contains(shipmentID) {
		return ErrShipmentAlreadyInBag
	}

	b.shipmentIDs = append(b.shipmentIDs, shipmentID)
	return nil
}

// RemoveShipment removes a member. Only permitted while the bag is open and
// not yet part of a manifest.
func (b *Bag) RemoveShipment(shipmentID kernel.UUID) error {
	if b.sealed {
		return ErrBagSealed
	}
	if b.manifestID != nil {
		return ErrBagManifested
	}

	for i, id := range b.shipmentIDs {
		if id.IsEqual(shipmentID) {
			b.shipmentIDs = append(b.shipmentIDs[:i], b.shipmentIDs[i+1:]...)
			return nil
		}
	}
	return ErrShipmentNotInBag
}

// Seal closes the bag for intake ahead of manifest assembly.
func (b *Bag) Seal(actor string, now time.Time) error {
	if actor == "" {
		return errs.NewValueIsRequiredError("actor")
	}
	if b.sealed {
		return ErrBagAlreadySealed
	}
	if b.IsEmpty() {
		return ErrBagEmpty
	}

	b.sealed = true
	b.sealedAt = &now
	b.sealedBy = actor
	return nil
}

// AttachToManifest records manifest membership. A bag belongs to at most one
// manifest and must not be empty.
func (b *Bag) AttachToManifest(manifestID kernel.UUID) error {
	if err := manifestID.Validate(); err != nil {
		return err
	}
	if b.manifestID != nil {
		return ErrBagAlreadyManifested
	}
	if b.IsEmpty() {
		return ErrBagEmpty
	}

	b.manifestID = &manifestID
	return nil
}

// DetachFromManifest clears manifest membership while the manifest is still
// unlocked.
func (b *Bag) DetachFromManifest() {
	b.manifestID = nil
}

func (b *Bag) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	b.id = id
	return nil
}

func (b *Bag) setNumber(number string) error {
	if number == "" {
		return errs.NewValueIsRequiredError("bagNumber")
	}
	b.number = number
	return nil
}

func (b *Bag) setDestination(destination string) error {
	if destination == "" {
		return errs.NewValueIsRequiredError("destination")
	}
	b.destination = destination
	return nil
}
