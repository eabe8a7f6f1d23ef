package ports

import (
	"context"

	"exportflow/internal/core/domain/model/audit"
	"exportflow/internal/core/domain/model/kernel"
)

// AuditRepository defines the append-only persistence contract for audit
// entries. Entries are never updated or deleted.
type AuditRepository interface {
	// Append persists a new audit entry.
	Append(ctx context.Context, entry *audit.Entry) error

	// GetAllBySubject retrieves all entries for one aggregate, oldest first.
	GetAllBySubject(ctx context.Context, subjectType audit.SubjectType, subjectID kernel.UUID) ([]*audit.Entry, error)
}
