// Package bagrepo provides data transfer objects and mapping functions for
// bag persistence. Bag membership lives in its own table with a unique key on
// the shipment column, so the database rejects a shipment appearing in two
// bags regardless of what concurrent writers believe.
package bagrepo

import (
	"time"

	"exportflow/internal/core/domain/model/bag"
	"exportflow/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// BagDTO represents the database structure for persisting bag aggregates.
type BagDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Number      string    `gorm:"uniqueIndex"`
	Destination string    `gorm:"index"`

	Sealed   bool
	SealedAt *time.Time
	SealedBy string

	ManifestID *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt  time.Time

	Shipments []BagShipmentDTO `gorm:"foreignKey:BagID;references:ID"`
}

// TableName specifies the database table name for bag entities.
func (BagDTO) TableName() string {
	return "bags"
}

// BagShipmentDTO is one bag membership row. ShipmentID is the primary key:
// one shipment can belong to at most one bag, enforced by the database.
type BagShipmentDTO struct {
	ShipmentID uuid.UUID `gorm:"type:uuid;primaryKey"`
	BagID      uuid.UUID `gorm:"type:uuid;index"`
	Position   int
}

// TableName specifies the database table name for bag membership rows.
func (BagShipmentDTO) TableName() string {
	return "bag_shipments"
}

// fromDomain converts a bag domain aggregate to its database representation,
// membership rows included.
func fromDomain(aggregate *bag.Bag) BagDTO {
	var manifestID *uuid.UUID
	if id := aggregate.ManifestRef(); id != nil {
		raw := id.Bytes()
		manifestID = &raw
	}

	memberIDs := aggregate.ShipmentIDs()
	members := make([]BagShipmentDTO, 0, len(memberIDs))
	for i, shipmentID := range memberIDs {
		members = append(members, BagShipmentDTO{
			ShipmentID: shipmentID.Bytes(),
			BagID:      aggregate.ID().Bytes(),
			Position:   i,
		})
	}

	return BagDTO{
		ID:          aggregate.ID().Bytes(),
		Number:      aggregate.Number(),
		Destination: aggregate.Destination(),
		Sealed:      aggregate.IsSealed(),
		SealedAt:    aggregate.SealedAt(),
		SealedBy:    aggregate.SealedBy(),
		ManifestID:  manifestID,
		CreatedAt:   aggregate.CreatedAt(),
		Shipments:   members,
	}
}

// toDomain converts a database row to a bag domain aggregate using RestoreBag.
// Membership rows are expected in position order.
func toDomain(dto BagDTO) (*bag.Bag, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	shipmentIDs := make([]kernel.UUID, 0, len(dto.Shipments))
	for _, member := range dto.Shipments {
		shipmentID, memberErr := kernel.UUIDFromBytes(member.ShipmentID[:])
		if memberErr != nil {
			return nil, memberErr
		}
		shipmentIDs = append(shipmentIDs, shipmentID)
	}

	var manifestID *kernel.UUID
	if dto.ManifestID != nil {
		parsed, manifestErr := kernel.UUIDFromBytes((*dto.ManifestID)[:])
		if manifestErr != nil {
			return nil, manifestErr
		}
		manifestID = &parsed
	}

	return bag.RestoreBag(
		id, dto.Number, dto.Destination,
		shipmentIDs,
		dto.Sealed, dto.SealedAt, dto.SealedBy,
		manifestID, dto.CreatedAt,
	)
}
