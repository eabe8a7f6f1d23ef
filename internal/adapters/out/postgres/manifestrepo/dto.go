// Package manifestrepo provides data transfer objects and mapping functions
// for manifest persistence.
package manifestrepo

import (
	"time"

	"exportflow/internal/core/domain/model/kernel"
	"exportflow/internal/core/domain/model/manifest"

	"github.com/google/uuid"
)

// ManifestDTO represents the database structure for persisting manifest
// aggregates.
type ManifestDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Number       string    `gorm:"uniqueIndex"`
	FlightNumber string    `gorm:"index"`
	Destination  string    `gorm:"index"`
	DepartureAt  time.Time

	Locked   bool `gorm:"index"`
	LockedAt *time.Time
	LockedBy string

	CarrierReference string
	HandedOverAt     *time.Time
	DepartedAt       *time.Time

	CreatedBy string
	CreatedAt time.Time

	Bags []ManifestBagDTO `gorm:"foreignKey:ManifestID;references:ID"`
}

// TableName specifies the database table name for manifest entities.
func (ManifestDTO) TableName() string {
	return "manifests"
}

// ManifestBagDTO is one manifest membership row. BagID is the primary key:
// one bag can belong to at most one manifest, enforced by the database.
type ManifestBagDTO struct {
	BagID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	ManifestID uuid.UUID `gorm:"type:uuid;index"`
	Position   int
}

// TableName specifies the database table name for manifest membership rows.
func (ManifestBagDTO) TableName() string {
	return "manifest_bags"
}

// fromDomain converts a manifest domain aggregate to its database
// representation, membership rows included.
func fromDomain(aggregate *manifest.Manifest) ManifestDTO {
	memberIDs := aggregate.BagIDs()
	members := make([]ManifestBagDTO, 0, len(memberIDs))
	for i, bagID := range memberIDs {
		members = append(members, ManifestBagDTO{
			BagID:      bagID.Bytes(),
			ManifestID: aggregate.ID().Bytes(),
			Position:   i,
		})
	}

	return ManifestDTO{
		ID:           aggregate.ID().Bytes(),
		Number:       aggregate.Number(),
		FlightNumber: aggregate.FlightNumber(),
		Destination:  aggregate.Destination(),
		DepartureAt:  aggregate.DepartureAt(),

		Locked:   aggregate.IsLocked(),
		LockedAt: aggregate.LockedAt(),
		LockedBy: aggregate.LockedBy(),

		CarrierReference: aggregate.CarrierReference(),
		HandedOverAt:     aggregate.HandedOverAt(),
		DepartedAt:       aggregate.DepartedAt(),

		CreatedBy: aggregate.CreatedBy(),
		CreatedAt: aggregate.CreatedAt(),
		Bags:      members,
	}
}

// toDomain converts a database row to a manifest domain aggregate using
// RestoreManifest. Membership rows are expected in position order.
func toDomain(dto ManifestDTO) (*manifest.Manifest, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	bagIDs := make([]kernel.UUID, 0, len(dto.Bags))
	for _, member := range dto.Bags {
		bagID, memberErr := kernel.UUIDFromBytes(member.BagID[:])
		if memberErr != nil {
			return nil, memberErr
		}
		bagIDs = append(bagIDs, bagID)
	}

	return manifest.RestoreManifest(
		id, dto.Number, dto.FlightNumber, dto.Destination,
		dto.DepartureAt, bagIDs,
		dto.Locked, dto.LockedAt, dto.LockedBy,
		dto.CarrierReference, dto.HandedOverAt, dto.DepartedAt,
		dto.CreatedBy, dto.CreatedAt,
	)
}
