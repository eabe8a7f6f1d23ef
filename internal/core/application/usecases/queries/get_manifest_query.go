package queries

import (
	"errors"
	"time"

	"exportflow/internal/core/domain/model/kernel"
	"exportflow/internal/pkg/guard"
)

var ErrGetManifestQueryIsNotConstructed = errors.New(
	"GetManifestQuery must be created via NewGetManifestQuery constructor",
)

// GetManifestQuery retrieves one export manifest together with its bags.
type GetManifestQuery struct {
	manifestID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetManifestQuery creates a query for one manifest.
func NewGetManifestQuery(manifestID kernel.UUID) (GetManifestQuery, error) {
	if err := manifestID.Validate(); err != nil {
		return GetManifestQuery{}, err
	}
	return GetManifestQuery{
		manifestID: manifestID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetManifestQuery) Validate() error {
	return q.guard.Validate(ErrGetManifestQueryIsNotConstructed)
}

// ManifestID returns the queried manifest identifier.
func (q GetManifestQuery) ManifestID() kernel.UUID { return q.manifestID }

// ManifestBagResponse is one bag listed on a manifest.
type ManifestBagResponse struct {
	ID            kernel.UUID
	Number        string
	Destination   string
	Sealed        bool
	ShipmentCount int
}

// GetManifestQueryResponse represents one manifest with its bag roster.
type GetManifestQueryResponse struct {
	ID           kernel.UUID
	Number       string
	Destination  string
	FlightNumber string
	DepartureAt  time.Time

	Locked   bool
	LockedAt *time.Time
	LockedBy string

	HandedOverAt     *time.Time
	CarrierReference string
	DepartedAt       *time.Time

	Bags               []ManifestBagResponse
	MemberShipmentAWBs []string
}
