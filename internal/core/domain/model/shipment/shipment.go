package shipment

import (
	"errors"
	"time"

	"exportflow/internal/core/domain/model/kernel"
	"exportflow/internal/pkg/errs"
	"exportflow/internal/pkg/guard"
)

var (
	// ErrShipmentIsNotConstructed is returned when a Shipment instance was
	// not created through NewShipment or RestoreShipment.
	ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment or RestoreShipment")

	// ErrAWBAlreadyAssigned guards the assigned-exactly-once AWB invariant.
	ErrAWBAlreadyAssigned = errors.New("AWB is already assigned and immutable")

	// ErrAlreadyBagged is returned when a shipment that already holds an
	// active bag reference is assigned to another bag. Under concurrent
	// assignment attempts exactly one caller wins and the rest receive this.
	ErrAlreadyBagged = errors.New("shipment is already assigned to a bag")

	// ErrAlreadyManifested guards the at-most-one-manifest invariant.
	ErrAlreadyManifested = errors.New("shipment already belongs to a manifest")

	// ErrNotBagged is returned when a bag or manifest operation expects an
	// active bag reference that is missing.
	ErrNotBagged = errors.New("shipment holds no bag reference")
)

// Shipment is the aggregate root for one parcel booking. It owns the
// shipment's lifecycle status and is the unit of customer-visible truth:
// bags and manifests reference shipments but never own their lifecycle.
//
// Invariants:
//   - The AWB is unique, assigned exactly once at booking confirmation, and
//     immutable thereafter.
//   - At most one active bag reference at any time.
//   - Membership in at most one non-void manifest.
//   - Status transitions follow the Status state machine only; a rejected
//     transition leaves the aggregate untouched.
type Shipment struct {
	id          kernel.UUID
	awb         *kernel.AWB
	destination string

	declaredWeight Weight
	declaredDims   Dimensions
	measuredWeight *Weight
	measuredDims   *Dimensions

	status     Status
	bagID      *kernel.UUID
	manifestID *kernel.UUID

	createdAt time.Time
	updatedAt time.Time

	guard guard.ConstructorGuard
}

// NewShipment creates a shipment in Draft status with its declared weight and
// dimensions. The AWB is assigned later, at booking confirmation.
func NewShipment(
	id kernel.UUID,
	destination string,
	declaredWeight Weight,
	declaredDims Dimensions,
	now time.Time,
) (*Shipment, error) {
	s := &Shipment{
		status:    Draft,
		createdAt: now,
		updatedAt: now,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setID(id),
		s.setDestination(destination),
		s.setDeclared(declaredWeight, declaredDims),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreShipment reconstructs a shipment from persistence, preserving its
// full lifecycle state.
func RestoreShipment(
	id kernel.UUID,
	awb *kernel.AWB,
	destination string,
	declaredWeight Weight,
	declaredDims Dimensions,
	measuredWeight *Weight,
	measuredDims *Dimensions,
	status Status,
	bagID *kernel.UUID,
	manifestID *kernel.UUID,
	createdAt time.Time,
	updatedAt time.Time,
) (*Shipment, error) {
	s := &Shipment{
		measuredWeight: measuredWeight,
		measuredDims:   measuredDims,
		bagID:          bagID,
		manifestID:     manifestID,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setID(id),
		s.setDestination(destination),
		s.setDeclared(declaredWeight, declaredDims),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	s.status = status

	if awb != nil {
		if err := awb.Validate(); err != nil {
			return nil, err
		}
		s.awb = awb
	}

	return s, nil
}

// Validate ensures the Shipment was constructed through a constructor.
func (s *Shipment) Validate() error {
	if s == nil {
		return ErrShipmentIsNotConstructed
	}
	return s.guard.Validate(ErrShipmentIsNotConstructed)
}

// ID returns the internal shipment identifier.
func (s *Shipment) ID() kernel.UUID { return s.id }

// AWB returns the assigned air-waybill number, nil while in Draft.
func (s *Shipment) AWB() *kernel.AWB { return s.awb }

// Destination returns the export destination tag.
func (s *Shipment) Destination() string { return s.destination }

// DeclaredWeight returns the weight declared at booking.
func (s *Shipment) DeclaredWeight() Weight { return s.declaredWeight }

// DeclaredDimensions returns the dimensions declared at booking.
func (s *Shipment) DeclaredDimensions() Dimensions { return s.declaredDims }

// MeasuredWeight returns the warehouse-measured weight, nil until intake.
func (s *Shipment) MeasuredWeight() *Weight { return s.measuredWeight }

// MeasuredDimensions returns the warehouse-measured dimensions, nil until
// intake.
func (s *Shipment) MeasuredDimensions() *Dimensions { return s.measuredDims }

// Status returns the current lifecycle status.
func (s *Shipment) Status() Status { return s.status }

// Bag returns the active bag reference, nil when unbagged.
func (s *Shipment) Bag() *kernel.UUID { return s.bagID }

// ManifestRef returns the owning manifest reference, nil when unmanifested.
func (s *Shipment) ManifestRef() *kernel.UUID { return s.manifestID }

// CreatedAt returns the creation timestamp.
func (s *Shipment) CreatedAt() time.Time { return s.createdAt }

// UpdatedAt returns the last-modified timestamp.
func (s *Shipment) UpdatedAt() time.Time { return s.updatedAt }

// Book confirms the booking: assigns the AWB exactly once and moves
// Draft → Booked. Irreversible.
func (s *Shipment) Book(awb kernel.AWB, now time.Time) error {
	if err := awb.Validate(); err != nil {
		return err
	}
	if s.awb != nil {
		return ErrAWBAlreadyAssigned
	}

	newStatus, err := s.status.Book()
	if err != nil {
		return err
	}

	s.status = newStatus
	s.awb = &awb
	s.touch(now)
	return nil
}

// RecordIntake stores the measured weight and dimensions from the physical
// intake event. withinTolerance carries the mismatch policy's verdict: when
// false the shipment lands in MismatchFlagged instead of
// ReceivedAtWarehouse and blocks forward progress.
func (s *Shipment) RecordIntake(measuredWeight Weight, measuredDims Dimensions, withinTolerance bool, now time.Time) error {
	if err := errors.Join(measuredWeight.Validate(), measuredDims.Validate()); err != nil {
		return err
	}

	var (
		newStatus Status
		err       error
	)
	if withinTolerance {
		newStatus, err = s.status.Receive()
	} else {
		newStatus, err = s.status.FlagMismatch()
	}
	if err != nil {
		return err
	}

	s.status = newStatus
	s.measuredWeight = &measuredWeight
	s.measuredDims = &measuredDims
	s.touch(now)
	return nil
}

// ClearMismatch performs the audited override returning a flagged shipment
// to ReceivedAtWarehouse.
func (s *Shipment) ClearMismatch(now time.Time) error {
	newStatus, err := s.status.ClearMismatch()
	if err != nil {
		return err
	}

	s.status = newStatus
	s.touch(now)
	return nil
}

// RecordLabeling records the labeling event, advancing to ReadyForSorting.
func (s *Shipment) RecordLabeling(now time.Time) error {
	newStatus, err := s.status.Label()
	if err != nil {
		return err
	}

	s.status = newStatus
	s.touch(now)
	return nil
}

// AssignToBag sets the active bag reference exactly once per export cycle
// and advances to BaggedForExport.
func (s *Shipment) AssignToBag(bagID kernel.UUID, now time.Time) error {
	if err := bagID.Validate(); err != nil {
		return err
	}
	if s.bagID != nil {
		return ErrAlreadyBagged
	}

	newStatus, err := s.status.Bag()
	if err != nil {
		return err
	}

	s.status = newStatus
	s.bagID = &bagID
	s.touch(now)
	return nil
}

// RemoveFromBag clears the bag reference and reverts to ReadyForSorting.
// Only valid while the owning bag is open and unmanifested; the caller
// checks the bag side of that rule.
func (s *Shipment) RemoveFromBag(now time.Time) error {
	if s.bagID == nil {
		return ErrNotBagged
	}

	newStatus, err := s.status.Unbag()
	if err != nil {
		return err
	}

	s.status = newStatus
	s.bagID = nil
	s.touch(now)
	return nil
}

// IncludeInManifest records manifest membership and advances to
// InExportManifest. A shipment belongs to at most one non-void manifest.
func (s *Shipment) IncludeInManifest(manifestID kernel.UUID, now time.Time) error {
	if err := manifestID.Validate(); err != nil {
		return err
	}
	if s.manifestID != nil {
		return ErrAlreadyManifested
	}
	if s.bagID == nil {
		return ErrNotBagged
	}

	newStatus, err := s.status.Manifest()
	if err != nil {
		return err
	}

	s.status = newStatus
	s.manifestID = &manifestID
	s.touch(now)
	return nil
}

// RemoveFromManifest clears manifest membership while the manifest is still
// unlocked, reverting to BaggedForExport.
func (s *Shipment) RemoveFromManifest(now time.Time) error {
	newStatus, err := s.status.Unmanifest()
	if err != nil {
		return err
	}

	s.status = newStatus
	s.manifestID = nil
	s.touch(now)
	return nil
}

// MarkReadyForHandover advances to ReadyForHandover when the owning manifest
// locks.
func (s *Shipment) MarkReadyForHandover(now time.Time) error {
	newStatus, err := s.status.ReadyHandover()
	if err != nil {
		return err
	}

	s.status = newStatus
	s.touch(now)
	return nil
}

// HandOverToCarrier advances to HandedOverToCarrier on the manifest's
// physical handover event.
func (s *Shipment) HandOverToCarrier(now time.Time) error {
	newStatus, err := s.status.HandOver()
	if err != nil {
		return err
	}

	s.status = newStatus
	s.touch(now)
	return nil
}

// Depart advances to Departed, terminal within this scope.
func (s *Shipment) Depart(now time.Time) error {
	newStatus, err := s.status.Depart()
	if err != nil {
		return err
	}

	s.status = newStatus
	s.touch(now)
	return nil
}

func (s *Shipment) touch(now time.Time) {
	s.updatedAt = now
}

func (s *Shipment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Shipment) setDestination(destination string) error {
	if destination == "" {
		return errs.NewValueIsRequiredError("destination")
	}
	s.destination = destination
	return nil
}

func (s *Shipment) setDeclared(w Weight, d Dimensions) error {
	if err := errors.Join(w.Validate(), d.Validate()); err != nil {
		return err
	}
	s.declaredWeight = w
	s.declaredDims = d
	return nil
}
