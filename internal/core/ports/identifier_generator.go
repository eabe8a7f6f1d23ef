package ports

import (
	"context"
	"errors"
)

// ErrIdentifierExhausted is returned when the generator cannot produce an
// unused identifier within its bounded retry attempts.
var ErrIdentifierExhausted = errors.New("identifier space exhausted, retry later")

// IdentifierGenerator issues globally unique business identifiers.
// Implementations must guarantee that two concurrent calls never return the
// same value, even across process restarts.
type IdentifierGenerator interface {
	// IssueAWB returns a fresh air waybill number, e.g. "DH2026090112345".
	IssueAWB(ctx context.Context) (string, error)

	// IssueBagNumber returns a fresh bag number, e.g. "BG202609010001".
	IssueBagNumber(ctx context.Context) (string, error)

	// IssueManifestNumber returns a fresh manifest number, e.g. "MF202609011234".
	IssueManifestNumber(ctx context.Context) (string, error)
}
