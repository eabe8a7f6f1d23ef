// Package auditrepo persists the append-only audit trail. Rows are inserted
// once and never updated or deleted.
package auditrepo

import (
	"time"

	"exportflow/internal/core/domain/model/audit"
	"exportflow/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// EntryDTO represents one audit trail row.
type EntryDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	SubjectType string    `gorm:"index:idx_audit_subject"`
	SubjectID   uuid.UUID `gorm:"type:uuid;index:idx_audit_subject"`
	Action      string
	Actor       string
	OccurredAt  time.Time
	Before      string `gorm:"type:text"`
	After       string `gorm:"type:text"`
}

// TableName specifies the database table name for audit entries.
func (EntryDTO) TableName() string {
	return "audit_entries"
}

func fromDomain(entry *audit.Entry) EntryDTO {
	return EntryDTO{
		ID:          entry.ID().Bytes(),
		SubjectType: string(entry.SubjectType()),
		SubjectID:   entry.SubjectID().Bytes(),
		Action:      entry.Action(),
		Actor:       entry.Actor(),
		OccurredAt:  entry.OccurredAt(),
		Before:      entry.Before(),
		After:       entry.After(),
	}
}

func toDomain(dto EntryDTO) (*audit.Entry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	subjectID, err := kernel.UUIDFromBytes(dto.SubjectID[:])
	if err != nil {
		return nil, err
	}

	return audit.RestoreEntry(
		id, audit.SubjectType(dto.SubjectType), subjectID,
		dto.Action, dto.Actor, dto.OccurredAt,
		dto.Before, dto.After,
	)
}
