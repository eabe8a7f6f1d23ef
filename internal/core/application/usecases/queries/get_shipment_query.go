// Package queries contains read-only operations in the CQRS architecture.
// Query handlers read the database directly, bypassing the domain model and
// unit of work machinery that write operations require.
package queries

import (
	"errors"
	"time"

	"exportflow/internal/core/domain/model/kernel"
	"exportflow/internal/pkg/guard"
)

var ErrGetShipmentQueryIsNotConstructed = errors.New(
	"GetShipmentQuery must be created via NewGetShipmentQuery constructor",
)

// GetShipmentQuery retrieves one shipment by its air waybill number,
// including its customer-visible tracking history.
type GetShipmentQuery struct {
	awb kernel.AWB

	guard guard.ConstructorGuard
}

// NewGetShipmentQuery creates a query for one shipment.
func NewGetShipmentQuery(awb kernel.AWB) (GetShipmentQuery, error) {
	if err := awb.Validate(); err != nil {
		return GetShipmentQuery{}, err
	}
	return GetShipmentQuery{
		awb:   awb,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShipmentQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentQueryIsNotConstructed)
}

// AWB returns the queried air waybill number.
func (q GetShipmentQuery) AWB() kernel.AWB { return q.awb }

// TrackingEventResponse is one customer-visible milestone.
type TrackingEventResponse struct {
	Status      string
	Description string
	Location    string
	OccurredAt  time.Time
}

// GetShipmentQueryResponse represents one shipment with its tracking history.
type GetShipmentQueryResponse struct {
	ID          kernel.UUID
	AWB         string
	Destination string
	Status      string

	DeclaredWeightKg float64
	DeclaredLengthCm float64
	DeclaredWidthCm  float64
	DeclaredHeightCm float64

	MeasuredWeightKg *float64
	MeasuredLengthCm *float64
	MeasuredWidthCm  *float64
	MeasuredHeightCm *float64

	BagID      *kernel.UUID
	ManifestID *kernel.UUID

	CreatedAt time.Time
	UpdatedAt time.Time

	TrackingEvents []TrackingEventResponse
}
