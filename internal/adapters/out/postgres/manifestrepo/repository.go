package manifestrepo

import (
	"context"
	"errors"
	"time"

	"exportflow/internal/core/domain/model/kernel"
	"exportflow/internal/core/domain/model/manifest"
	"exportflow/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormManifestRepository implements ManifestRepository using GORM.
type GormManifestRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormManifestRepository creates a new GORM manifest repository.
func NewGormManifestRepository(db *gorm.DB, tracker aggregateTracker) *GormManifestRepository {
	return &GormManifestRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new manifest to the database.
func (r *GormManifestRepository) Add(ctx context.Context, aggregate *manifest.Manifest) error {
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

// Update saves an existing manifest to the database, replacing its membership
// rows with the aggregate's current bag list.
func (r *GormManifestRepository) Update(ctx context.Context, aggregate *manifest.Manifest) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	result := r.db.WithContext(ctx).
		Model(&ManifestDTO{}).
		Where("id = ?", dto.ID).
		Select("number", "flight_number", "destination", "departure_at",
			"locked", "locked_at", "locked_by",
			"carrier_reference", "handed_over_at", "departed_at",
			"created_by", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	if err := r.db.WithContext(ctx).
		Where("manifest_id = ?", dto.ID).
		Delete(&ManifestBagDTO{}).Error; err != nil {
		return err
	}
	if len(dto.Bags) > 0 {
		if err := r.db.WithContext(ctx).Create(&dto.Bags).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a manifest by ID with its bags, locking the manifest row
// until the transaction ends. Concurrent Lock attempts therefore serialize:
// the second transaction reloads the already-locked manifest and is rejected
// by the aggregate.
func (r *GormManifestRepository) Get(ctx context.Context, id kernel.UUID) (*manifest.Manifest, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ManifestDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE", Table: clause.Table{Name: "manifests"}}).
		Preload("Bags", func(db *gorm.DB) *gorm.DB {
			return db.Order("manifest_bags.position")
		}).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("manifest", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllLockedNotDeparted retrieves locked manifests whose scheduled
// departure has passed without a departure confirmation.
func (r *GormManifestRepository) GetAllLockedNotDeparted(ctx context.Context, asOf time.Time) ([]*manifest.Manifest, error) {
	var dtos []ManifestDTO
	err := r.db.WithContext(ctx).
		Preload("Bags", func(db *gorm.DB) *gorm.DB {
			return db.Order("manifest_bags.position")
		}).
		Order("departure_at").
		Find(&dtos, "locked = ? AND departed_at IS NULL AND departure_at <= ?", true, asOf).Error
	if err != nil {
		return nil, err
	}

	manifests := make([]*manifest.Manifest, 0, len(dtos))
	for _, dto := range dtos {
		m, toErr := toDomain(dto)
		if toErr != nil {
			return nil, toErr
		}
		manifests = append(manifests, m)
	}

	return manifests, nil
}
