package auditrepo

import (
	"context"

	"exportflow/internal/core/domain/model/audit"
	"exportflow/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GormAuditRepository implements AuditRepository using GORM.
type GormAuditRepository struct {
	db *gorm.DB
}

// NewGormAuditRepository creates a new GORM audit repository.
func NewGormAuditRepository(db *gorm.DB) *GormAuditRepository {
	return &GormAuditRepository{db: db}
}

// Append inserts a new audit entry.
func (r *GormAuditRepository) Append(ctx context.Context, entry *audit.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entry)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetAllBySubject retrieves all entries for one aggregate, oldest first.
func (r *GormAuditRepository) GetAllBySubject(ctx context.Context, subjectType audit.SubjectType, subjectID kernel.UUID) ([]*audit.Entry, error) {
	if err := subjectID.Validate(); err != nil {
		return nil, err
	}

	var dtos []EntryDTO
	err := r.db.WithContext(ctx).
		Order("occurred_at").
		Find(&dtos, "subject_type = ? AND subject_id = ?", string(subjectType), subjectID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	entries := make([]*audit.Entry, 0, len(dtos))
	for _, dto := range dtos {
		e, toErr := toDomain(dto)
		if toErr != nil {
			return nil, toErr
		}
		entries = append(entries, e)
	}

	return entries, nil
}
