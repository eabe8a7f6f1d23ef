package shipment

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition is returned for any attempted status change that is
// not reachable from the shipment's current status. The attempt is rejected
// without mutation and must not be retried automatically.
var ErrInvalidTransition = errors.New("invalid status transition")

// Status represents the lifecycle state of a shipment within the export
// scope. It implements a state machine with defined transitions:
//
//	Draft → Booked → ReceivedAtWarehouse → ReadyForSorting →
//	BaggedForExport → InExportManifest → ReadyForHandover →
//	HandedOverToCarrier → Departed
//
// Intake may divert Booked into the MismatchFlagged side-state when the
// measured weight or dimensions deviate from the declared values beyond the
// configured tolerance. The flag blocks forward progress until explicitly
// cleared back to ReceivedAtWarehouse by an audited staff override.
type Status int

const (
	// Unknown represents an invalid or undefined status. This value (0)
	// helps catch uninitialized Status values.
	Unknown Status = iota

	// Draft is the initial unbooked state. The shipment has no AWB yet and
	// its details may still change.
	Draft

	// Booked means the booking is confirmed and the AWB is assigned; the
	// shipment identity is immutable from here on.
	Booked

	// ReceivedAtWarehouse means physical intake recorded measured weight
	// and dimensions within tolerance of the declared values.
	ReceivedAtWarehouse

	// MismatchFlagged means intake found measured values deviating from the
	// declared ones beyond tolerance. Forward progress is blocked until an
	// explicit audited clearance.
	MismatchFlagged

	// ReadyForSorting means the labeling event was recorded and the parcel
	// can be scanned into a bag.
	ReadyForSorting

	// BaggedForExport means the parcel sits in exactly one bag.
	BaggedForExport

	// InExportManifest means the parcel's bag belongs to an unlocked flight
	// manifest.
	InExportManifest

	// ReadyForHandover means the owning manifest is locked.
	ReadyForHandover

	// HandedOverToCarrier means the locked manifest was physically handed
	// to the airline.
	HandedOverToCarrier

	// Departed is terminal within this scope: the flight left.
	Departed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:             "UNKNOWN",
		Draft:               "DRAFT",
		Booked:              "BOOKED",
		ReceivedAtWarehouse: "RECEIVED_AT_WAREHOUSE",
		MismatchFlagged:     "MISMATCH_FLAGGED",
		ReadyForSorting:     "READY_FOR_SORTING",
		BaggedForExport:     "BAGGED_FOR_EXPORT",
		InExportManifest:    "IN_EXPORT_MANIFEST",
		ReadyForHandover:    "READY_FOR_HANDOVER",
		HandedOverToCarrier: "HANDED_OVER_TO_CARRIER",
		Departed:            "DEPARTED",
	}
}

// Validate checks that the Status holds one of the defined lifecycle values.
// Used when reconstructing shipments from persistence.
func (s Status) Validate() error {
	if s <= Unknown || s > Departed {
		return fmt.Errorf("%w: %d is not a valid status", ErrInvalidTransition, s)
	}
	return nil
}

// String returns the wire-level name of the status. It implements
// fmt.Stringer and is safe on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsCustomerVisible reports whether transitions into this status emit a
// customer-facing tracking event. Everything from InExportManifest onward is
// visible; booking and intake milestones are published separately.
func (s Status) IsCustomerVisible() bool {
	return s >= InExportManifest && s <= Departed
}

func (s Status) transition(to Status, allowedFrom ...Status) (Status, error) {
	for _, from := range allowedFrom {
		if s == from {
			return to, nil
		}
	}
	return 0, fmt.Errorf("%w: cannot move from %s to %s", ErrInvalidTransition, s, to)
}

// Book transitions Draft → Booked. Irreversible.
func (s Status) Book() (Status, error) {
	return s.transition(Booked, Draft)
}

// Receive transitions Booked → ReceivedAtWarehouse (intake within tolerance).
func (s Status) Receive() (Status, error) {
	return s.transition(ReceivedAtWarehouse, Booked)
}

// FlagMismatch transitions Booked → MismatchFlagged (intake out of
// tolerance).
func (s Status) FlagMismatch() (Status, error) {
	return s.transition(MismatchFlagged, Booked)
}

// ClearMismatch transitions MismatchFlagged → ReceivedAtWarehouse. Only an
// explicit audited override may call this; the flag is never auto-cleared.
func (s Status) ClearMismatch() (Status, error) {
	return s.transition(ReceivedAtWarehouse, MismatchFlagged)
}

// Label transitions ReceivedAtWarehouse → ReadyForSorting.
func (s Status) Label() (Status, error) {
	return s.transition(ReadyForSorting, ReceivedAtWarehouse)
}

// Bag transitions ReadyForSorting → BaggedForExport.
func (s Status) Bag() (Status, error) {
	return s.transition(BaggedForExport, ReadyForSorting)
}

// Unbag transitions BaggedForExport → ReadyForSorting (removal from an open,
// unmanifested bag).
func (s Status) Unbag() (Status, error) {
	return s.transition(ReadyForSorting, BaggedForExport)
}

// Manifest transitions BaggedForExport → InExportManifest.
func (s Status) Manifest() (Status, error) {
	return s.transition(InExportManifest, BaggedForExport)
}

// Unmanifest transitions InExportManifest → BaggedForExport (bag removed
// from a still-unlocked manifest).
func (s Status) Unmanifest() (Status, error) {
	return s.transition(BaggedForExport, InExportManifest)
}

// ReadyHandover transitions InExportManifest → ReadyForHandover (manifest
// locked).
func (s Status) ReadyHandover() (Status, error) {
	return s.transition(ReadyForHandover, InExportManifest)
}

// HandOver transitions ReadyForHandover → HandedOverToCarrier.
func (s Status) HandOver() (Status, error) {
	return s.transition(HandedOverToCarrier, ReadyForHandover)
}

// Depart transitions HandedOverToCarrier → Departed.
func (s Status) Depart() (Status, error) {
	return s.transition(Departed, HandedOverToCarrier)
}
