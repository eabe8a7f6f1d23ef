package queries

import (
	"context"
	"errors"
	"time"

	"exportflow/internal/core/domain/model/kernel"
	"exportflow/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetManifestQueryHandler reads one manifest and its bag roster from the
// database.
type GetManifestQueryHandler struct {
	db *gorm.DB
}

// NewGetManifestQueryHandler creates a handler for manifest lookups.
func NewGetManifestQueryHandler(db *gorm.DB) GetManifestQueryHandler {
	return GetManifestQueryHandler{db: db}
}

// Handle executes the lookup. Bags come back in the order they were added to
// the manifest, each with its current shipment count.
func (h GetManifestQueryHandler) Handle(ctx context.Context, query GetManifestQuery) (GetManifestQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetManifestQueryResponse{}, err
	}

	var row struct {
		ID               uuid.UUID
		Number           string
		Destination      string
		FlightNumber     string
		DepartureAt      time.Time
		Locked           bool
		LockedAt         *time.Time
		LockedBy         string
		HandedOverAt     *time.Time
		CarrierReference string
		DepartedAt       *time.Time
	}

	err := h.db.WithContext(ctx).Raw(`
		SELECT
			id, number, destination, flight_number, departure_at,
			locked, locked_at, locked_by,
			handed_over_at, carrier_reference, departed_at
		FROM manifests
		WHERE id = ?
	`, query.ManifestID().Bytes()).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return GetManifestQueryResponse{}, errs.NewObjectNotFoundError("manifest", query.ManifestID())
		}
		return GetManifestQueryResponse{}, err
	}

	id, err := kernel.UUIDFromBytes(row.ID[:])
	if err != nil {
		return GetManifestQueryResponse{}, err
	}

	resp := GetManifestQueryResponse{
		ID:               id,
		Number:           row.Number,
		Destination:      row.Destination,
		FlightNumber:     row.FlightNumber,
		DepartureAt:      row.DepartureAt,
		Locked:           row.Locked,
		LockedAt:         row.LockedAt,
		LockedBy:         row.LockedBy,
		HandedOverAt:     row.HandedOverAt,
		CarrierReference: row.CarrierReference,
		DepartedAt:       row.DepartedAt,
	}

	var bagRows []struct {
		ID            uuid.UUID
		Number        string
		Destination   string
		Sealed        bool
		ShipmentCount int
	}
	err = h.db.WithContext(ctx).Raw(`
		SELECT
			b.id, b.number, b.destination, b.sealed,
			(SELECT COUNT(*) FROM bag_shipments bs WHERE bs.bag_id = b.id) AS shipment_count
		FROM manifest_bags mb
		JOIN bags b ON b.id = mb.bag_id
		WHERE mb.manifest_id = ?
		ORDER BY mb.position
	`, row.ID).Scan(&bagRows).Error
	if err != nil {
		return GetManifestQueryResponse{}, err
	}

	bags := make([]ManifestBagResponse, 0, len(bagRows))
	for _, bagRow := range bagRows {
		bagID, bagErr := kernel.UUIDFromBytes(bagRow.ID[:])
		if bagErr != nil {
			return GetManifestQueryResponse{}, bagErr
		}
		bags = append(bags, ManifestBagResponse{
			ID:            bagID,
			Number:        bagRow.Number,
			Destination:   bagRow.Destination,
			Sealed:        bagRow.Sealed,
			ShipmentCount: bagRow.ShipmentCount,
		})
	}
	resp.Bags = bags

	var memberAWBs []string
	err = h.db.WithContext(ctx).Raw(`
		SELECT awb
		FROM shipments
		WHERE manifest_id = ? AND awb IS NOT NULL
		ORDER BY awb
	`, row.ID).Scan(&memberAWBs).Error
	if err != nil {
		return GetManifestQueryResponse{}, err
	}
	resp.MemberShipmentAWBs = memberAWBs

	return resp, nil
}
