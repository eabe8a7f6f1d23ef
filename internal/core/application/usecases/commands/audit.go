package commands

import (
	"context"
	"encoding/json"
	"time"

	"exportflow/internal/core/domain/model/audit"
	"exportflow/internal/core/domain/model/bag"
	"exportflow/internal/core/domain/model/kernel"
	"exportflow/internal/core/domain/model/manifest"
	"exportflow/internal/core/domain/model/shipment"
)

// Audit action names recorded for accepted mutations.
const (
	actionShipmentCreated        = "SHIPMENT_CREATED"
	actionShipmentBooked         = "SHIPMENT_BOOKED"
	actionIntakeRecorded         = "INTAKE_RECORDED"
	actionMismatchFlagged        = "MISMATCH_FLAGGED"
	actionMismatchCleared        = "MISMATCH_CLEARED"
	actionLabelingRecorded       = "LABELING_RECORDED"
	actionBagCreated             = "BAG_CREATED"
	actionShipmentBagged         = "SHIPMENT_BAGGED"
	actionShipmentUnbagged       = "SHIPMENT_UNBAGGED"
	actionBagSealed              = "BAG_SEALED"
	actionManifestCreated        = "MANIFEST_CREATED"
	actionBagAddedToManifest     = "BAG_ADDED_TO_MANIFEST"
	actionBagRemovedFromManifest = "BAG_REMOVED_FROM_MANIFEST"
	actionManifestLocked         = "MANIFEST_LOCKED"
	actionHandoverRecorded       = "HANDOVER_RECORDED"
	actionDepartureRecorded      = "DEPARTURE_RECORDED"
)

// shipmentSnapshot serializes the audit-relevant shipment state.
func shipmentSnapshot(s *shipment.Shipment) string {
	type snapshot struct {
		AWB         string `json:"awb,omitempty"`
		Destination string `json:"destination"`
		Status      string `json:"status"`
		BagID       string `json:"bag_id,omitempty"`
		ManifestID  string `json:"manifest_id,omitempty"`
		Note        string `json:"note,omitempty"`
	}
	return marshalSnapshot(func(note string) any {
		snap := snapshot{
			Destination: s.Destination(),
			Status:      s.Status().String(),
			Note:        note,
		}
		if a := s.AWB(); a != nil {
			snap.AWB = a.String()
		}
		if id := s.Bag(); id != nil {
			snap.BagID = id.String()
		}
		if id := s.ManifestRef(); id != nil {
			snap.ManifestID = id.String()
		}
		return snap
	}, "")
}

// shipmentSnapshotWithNote serializes the shipment state plus an operator
// note, used for the audited mismatch override.
func shipmentSnapshotWithNote(s *shipment.Shipment, note string) string {
	full := shipmentSnapshot(s)
	var decoded map[string]any
	if err := json.Unmarshal([]byte(full), &decoded); err != nil {
		return full
	}
	decoded["note"] = note
	raw, err := json.Marshal(decoded)
	if err != nil {
		return full
	}
	return string(raw)
}

// bagSnapshot serializes the audit-relevant bag state.
func bagSnapshot(b *bag.Bag) string {
	type snapshot struct {
		Number      string `json:"number"`
		Destination string `json:"destination"`
		Shipments   int    `json:"shipments"`
		Sealed      bool   `json:"sealed"`
		ManifestID  string `json:"manifest_id,omitempty"`
	}
	return marshalSnapshot(func(string) any {
		snap := snapshot{
			Number:      b.Number(),
			Destination: b.Destination(),
			Shipments:   len(b.ShipmentIDs()),
			Sealed:      b.IsSealed(),
		}
		if id := b.ManifestRef(); id != nil {
			snap.ManifestID = id.String()
		}
		return snap
	}, "")
}

// manifestSnapshot serializes the audit-relevant manifest state.
func manifestSnapshot(m *manifest.Manifest) string {
	type snapshot struct {
		Number           string `json:"number"`
		FlightNumber     string `json:"flight_number"`
		Destination      string `json:"destination"`
		Bags             int    `json:"bags"`
		Locked           bool   `json:"locked"`
		CarrierReference string `json:"carrier_reference,omitempty"`
		HandedOver       bool   `json:"handed_over"`
		Departed         bool   `json:"departed"`
	}
	return marshalSnapshot(func(string) any {
		return snapshot{
			Number:           m.Number(),
			FlightNumber:     m.FlightNumber(),
			Destination:      m.Destination(),
			Bags:             len(m.BagIDs()),
			Locked:           m.IsLocked(),
			CarrierReference: m.CarrierReference(),
			HandedOver:       m.IsHandedOver(),
			Departed:         m.IsDeparted(),
		}
	}, "")
}

func marshalSnapshot(build func(note string) any, note string) string {
	raw, err := json.Marshal(build(note))
	if err != nil {
		return "{}"
	}
	return string(raw)
}

// appendAudit writes one audit entry within the current transaction.
func appendAudit(
	ctx context.Context,
	uow AuditRepoFactory,
	subjectType audit.SubjectType,
	subjectID kernel.UUID,
	action, actor string,
	occurredAt time.Time,
	before, after string,
) error {
	entry, err := audit.NewEntry(kernel.NewUUID(), subjectType, subjectID, action, actor, occurredAt, before, after)
	if err != nil {
		return err
	}
	return uow.AuditRepository().Append(ctx, entry)
}
