package bagrepo

import (
	"context"
	"errors"

	"exportflow/internal/core/domain/model/bag"
	"exportflow/internal/core/domain/model/kernel"
	"exportflow/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormBagRepository implements BagRepository using GORM.
type GormBagRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormBagRepository creates a new GORM bag repository.
func NewGormBagRepository(db *gorm.DB, tracker aggregateTracker) *GormBagRepository {
	return &GormBagRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new bag to the database.
func (r *GormBagRepository) Add(ctx context.Context, aggregate *bag.Bag) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing bag to the database, replacing its membership
// rows with the aggregate's current member list. Inserting a membership row
// for a shipment already in another bag violates the shipment primary key
// and fails the whole transaction.
func (r *GormBagRepository) Update(ctx context.Context, aggregate *bag.Bag) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	result := r.db.WithContext(ctx).
		Model(&BagDTO{}).
		Where("id = ?", dto.ID).
		Select("number", "destination", "sealed", "sealed_at", "sealed_by", "manifest_id", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	if err := r.db.WithContext(ctx).
		Where("bag_id = ?", dto.ID).
		Delete(&BagShipmentDTO{}).Error; err != nil {
		return err
	}
	if len(dto.Shipments) > 0 {
		if err := r.db.WithContext(ctx).Create(&dto.Shipments).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a bag by ID with its members, locking the bag row until the
// transaction ends.
func (r *GormBagRepository) Get(ctx context.Context, id kernel.UUID) (*bag.Bag, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto BagDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE", Table: clause.Table{Name: "bags"}}).
		Preload("Shipments", func(db *gorm.DB) *gorm.DB {
			return db.Order("bag_shipments.position")
		}).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("bag", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllByManifest retrieves all bags attached to the manifest.
func (r *GormBagRepository) GetAllByManifest(ctx context.Context, manifestID kernel.UUID) ([]*bag.Bag, error) {
	if err := manifestID.Validate(); err != nil {
		return nil, err
	}

	var dtos []BagDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE", Table: clause.Table{Name: "bags"}}).
		Preload("Shipments", func(db *gorm.DB) *gorm.DB {
			return db.Order("bag_shipments.position")
		}).
		Order("created_at").
		Find(&dtos, "manifest_id = ?", manifestID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	bags := make([]*bag.Bag, 0, len(dtos))
	for _, dto := range dtos {
		b, toErr := toDomain(dto)
		if toErr != nil {
			return nil, toErr
		}
		bags = append(bags, b)
	}

	return bags, nil
}
