// Package shipmentrepo provides data transfer objects and mapping functions
// for shipment persistence. It implements the repository pattern for the
// shipment aggregate, converting between domain entities and database rows.
package shipmentrepo

import (
	"time"

	"exportflow/internal/core/domain/model/kernel"
	"exportflow/internal/core/domain/model/shipment"

	"github.com/google/uuid"
)

// ShipmentDTO represents the database structure for persisting shipment
// aggregates. The AWB column carries a unique index so the database is the
// final authority on AWB uniqueness.
type ShipmentDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	AWB         *string   `gorm:"column:awb;uniqueIndex"`
	Destination string    `gorm:"index"`

	DeclaredWeightKg float64
	DeclaredLengthCm float64
	DeclaredWidthCm  float64
	DeclaredHeightCm float64

	MeasuredWeightKg *float64
	MeasuredLengthCm *float64
	MeasuredWidthCm  *float64
	MeasuredHeightCm *float64

	Status     int        `gorm:"index"`
	BagID      *uuid.UUID `gorm:"type:uuid;index"`
	ManifestID *uuid.UUID `gorm:"type:uuid;index"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the database table name for shipment entities.
func (ShipmentDTO) TableName() string {
	return "shipments"
}

// fromDomain converts a shipment domain aggregate to its database
// representation.
func fromDomain(aggregate *shipment.Shipment) ShipmentDTO {
	var awb *string
	if a := aggregate.AWB(); a != nil {
		raw := a.String()
		awb = &raw
	}

	var bagID, manifestID *uuid.UUID
	if id := aggregate.Bag(); id != nil {
		raw := id.Bytes()
		bagID = &raw
	}
	if id := aggregate.ManifestRef(); id != nil {
		raw := id.Bytes()
		manifestID = &raw
	}

	dto := ShipmentDTO{
		ID:          aggregate.ID().Bytes(),
		AWB:         awb,
		Destination: aggregate.Destination(),

		DeclaredWeightKg: aggregate.DeclaredWeight().Kg(),
		DeclaredLengthCm: aggregate.DeclaredDimensions().LengthCm(),
		DeclaredWidthCm:  aggregate.DeclaredDimensions().WidthCm(),
		DeclaredHeightCm: aggregate.DeclaredDimensions().HeightCm(),

		Status:     int(aggregate.Status()),
		BagID:      bagID,
		ManifestID: manifestID,

		CreatedAt: aggregate.CreatedAt(),
		UpdatedAt: aggregate.UpdatedAt(),
	}

	if w := aggregate.MeasuredWeight(); w != nil {
		kg := w.Kg()
		dto.MeasuredWeightKg = &kg
	}
	if d := aggregate.MeasuredDimensions(); d != nil {
		l, wd, h := d.LengthCm(), d.WidthCm(), d.HeightCm()
		dto.MeasuredLengthCm = &l
		dto.MeasuredWidthCm = &wd
		dto.MeasuredHeightCm = &h
	}

	return dto
}

// toDomain converts a database row to a shipment domain aggregate using
// RestoreShipment.
func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var awb *kernel.AWB
	if dto.AWB != nil {
		parsed, awbErr := kernel.AWBFromString(*dto.AWB)
		if awbErr != nil {
			return nil, awbErr
		}
		awb = &parsed
	}

	declaredWeight, err := shipment.NewWeight(dto.DeclaredWeightKg)
	if err != nil {
		return nil, err
	}
	declaredDims, err := shipment.NewDimensions(dto.DeclaredLengthCm, dto.DeclaredWidthCm, dto.DeclaredHeightCm)
	if err != nil {
		return nil, err
	}

	var measuredWeight *shipment.Weight
	if dto.MeasuredWeightKg != nil {
		w, weightErr := shipment.NewWeight(*dto.MeasuredWeightKg)
		if weightErr != nil {
			return nil, weightErr
		}
		measuredWeight = &w
	}

	var measuredDims *shipment.Dimensions
	if dto.MeasuredLengthCm != nil && dto.MeasuredWidthCm != nil && dto.MeasuredHeightCm != nil {
		d, dimsErr := shipment.NewDimensions(*dto.MeasuredLengthCm, *dto.MeasuredWidthCm, *dto.MeasuredHeightCm)
		if dimsErr != nil {
			return nil, dimsErr
		}
		measuredDims = &d
	}

	var bagID, manifestID *kernel.UUID
	if dto.BagID != nil {
		parsed, bagErr := kernel.UUIDFromBytes((*dto.BagID)[:])
		if bagErr != nil {
			return nil, bagErr
		}
		bagID = &parsed
	}
	if dto.ManifestID != nil {
		parsed, manifestErr := kernel.UUIDFromBytes((*dto.ManifestID)[:])
		if manifestErr != nil {
			return nil, manifestErr
		}
		manifestID = &parsed
	}

	return shipment.RestoreShipment(
		id, awb, dto.Destination,
		declaredWeight, declaredDims,
		measuredWeight, measuredDims,
		shipment.Status(dto.Status),
		bagID, manifestID,
		dto.CreatedAt, dto.UpdatedAt,
	)
}
