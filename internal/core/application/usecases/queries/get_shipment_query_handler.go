package queries

import (
	"context"
	"errors"
	"time"

	"exportflow/internal/core/domain/model/kernel"
	"exportflow/internal/core/domain/model/shipment"
	"exportflow/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetShipmentQueryHandler reads one shipment and its tracking events from
// the database.
type GetShipmentQueryHandler struct {
	db *gorm.DB
}

// NewGetShipmentQueryHandler creates a handler for shipment lookups.
func NewGetShipmentQueryHandler(db *gorm.DB) GetShipmentQueryHandler {
	return GetShipmentQueryHandler{db: db}
}

// Handle executes the lookup. The internal status is translated to its wire
// name; tracking events come back oldest first.
func (h GetShipmentQueryHandler) Handle(ctx context.Context, query GetShipmentQuery) (GetShipmentQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetShipmentQueryResponse{}, err
	}

	var row struct {
		ID               uuid.UUID
		AWB              string
		Destination      string
		Status           int
		DeclaredWeightKg float64
		DeclaredLengthCm float64
		DeclaredWidthCm  float64
		DeclaredHeightCm float64
		MeasuredWeightKg *float64
		MeasuredLengthCm *float64
		MeasuredWidthCm  *float64
		MeasuredHeightCm *float64
		BagID            *uuid.UUID
		ManifestID       *uuid.UUID
		CreatedAt        time.Time
		UpdatedAt        time.Time
	}

	err := h.db.WithContext(ctx).Raw(`
		SELECT
			id, awb, destination, status,
			declared_weight_kg, declared_length_cm, declared_width_cm, declared_height_cm,
			measured_weight_kg, measured_length_cm, measured_width_cm, measured_height_cm,
			bag_id, manifest_id, created_at, updated_at
		FROM shipments
		WHERE awb = ?
	`, query.AWB().String()).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return GetShipmentQueryResponse{}, errs.NewObjectNotFoundError("shipment", query.AWB().String())
		}
		return GetShipmentQueryResponse{}, err
	}

	id, err := kernel.UUIDFromBytes(row.ID[:])
	if err != nil {
		return GetShipmentQueryResponse{}, err
	}

	bagID, err := optionalUUID(row.BagID)
	if err != nil {
		return GetShipmentQueryResponse{}, err
	}
	manifestID, err := optionalUUID(row.ManifestID)
	if err != nil {
		return GetShipmentQueryResponse{}, err
	}

	resp := GetShipmentQueryResponse{
		ID:               id,
		AWB:              row.AWB,
		Destination:      row.Destination,
		Status:           shipment.Status(row.Status).String(),
		DeclaredWeightKg: row.DeclaredWeightKg,
		DeclaredLengthCm: row.DeclaredLengthCm,
		DeclaredWidthCm:  row.DeclaredWidthCm,
		DeclaredHeightCm: row.DeclaredHeightCm,
		MeasuredWeightKg: row.MeasuredWeightKg,
		MeasuredLengthCm: row.MeasuredLengthCm,
		MeasuredWidthCm:  row.MeasuredWidthCm,
		MeasuredHeightCm: row.MeasuredHeightCm,
		BagID:            bagID,
		ManifestID:       manifestID,
		CreatedAt:        row.CreatedAt,
		UpdatedAt:        row.UpdatedAt,
	}

	var events []TrackingEventResponse
	err = h.db.WithContext(ctx).Raw(`
		SELECT status, description, location, occurred_at
		FROM tracking_events
		WHERE shipment_id = ?
		ORDER BY occurred_at
	`, row.ID).Scan(&events).Error
	if err != nil {
		return GetShipmentQueryResponse{}, err
	}
	resp.TrackingEvents = events

	return resp, nil
}

func optionalUUID(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}

	id, err := kernel.UUIDFromBytes((*raw)[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}
