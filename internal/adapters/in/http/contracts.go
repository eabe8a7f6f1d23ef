package http

import (
	"time"

	"exportflow/internal/core/application/usecases/queries"
)

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreatedResponse carries the identifier of a newly created resource.
type CreatedResponse struct {
	ID string `json:"id"`
}

// ActorRequest is the body for operations that only need the operator
// identity.
type ActorRequest struct {
	Actor string `json:"actor"`
}

// CreateShipmentRequest is the body for registering a new shipment.
type CreateShipmentRequest struct {
	Destination      string  `json:"destination"`
	DeclaredWeightKg float64 `json:"declaredWeightKg"`
	DeclaredLengthCm float64 `json:"declaredLengthCm"`
	DeclaredWidthCm  float64 `json:"declaredWidthCm"`
	DeclaredHeightCm float64 `json:"declaredHeightCm"`
	Actor            string  `json:"actor"`
}

// RecordIntakeRequest is the body for recording warehouse measurements.
type RecordIntakeRequest struct {
	MeasuredWeightKg float64 `json:"measuredWeightKg"`
	MeasuredLengthCm float64 `json:"measuredLengthCm"`
	MeasuredWidthCm  float64 `json:"measuredWidthCm"`
	MeasuredHeightCm float64 `json:"measuredHeightCm"`
	Actor            string  `json:"actor"`
}

// ClearMismatchRequest is the body for a supervisor mismatch override.
type ClearMismatchRequest struct {
	Reason string `json:"reason"`
	Actor  string `json:"actor"`
}

// CreateBagRequest is the body for opening a new export bag.
type CreateBagRequest struct {
	Destination string `json:"destination"`
	Actor       string `json:"actor"`
}

// AssignToBagRequest is the body for placing a shipment into a bag.
type AssignToBagRequest struct {
	ShipmentID string `json:"shipmentId"`
	Actor      string `json:"actor"`
}

// CreateManifestRequest is the body for opening a new export manifest.
type CreateManifestRequest struct {
	FlightNumber string `json:"flightNumber"`
	Destination  string `json:"destination"`
	DepartureAt  string `json:"departureAt"`
	Actor        string `json:"actor"`
}

// AddBagToManifestRequest is the body for listing a bag on a manifest.
type AddBagToManifestRequest struct {
	BagID string `json:"bagId"`
	Actor string `json:"actor"`
}

// RecordHandoverRequest is the body for recording the carrier handover.
type RecordHandoverRequest struct {
	CarrierReference string `json:"carrierReference"`
	Actor            string `json:"actor"`
}

// TrackingEvent is one customer-visible milestone in a shipment response.
type TrackingEvent struct {
	Status      string    `json:"status"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	OccurredAt  time.Time `json:"occurredAt"`
}

// ShipmentResponse is the JSON representation of one shipment.
type ShipmentResponse struct {
	ID          string `json:"id"`
	AWB         string `json:"awb"`
	Destination string `json:"destination"`
	Status      string `json:"status"`

	DeclaredWeightKg float64 `json:"declaredWeightKg"`
	DeclaredLengthCm float64 `json:"declaredLengthCm"`
	DeclaredWidthCm  float64 `json:"declaredWidthCm"`
	DeclaredHeightCm float64 `json:"declaredHeightCm"`

	MeasuredWeightKg *float64 `json:"measuredWeightKg,omitempty"`
	MeasuredLengthCm *float64 `json:"measuredLengthCm,omitempty"`
	MeasuredWidthCm  *float64 `json:"measuredWidthCm,omitempty"`
	MeasuredHeightCm *float64 `json:"measuredHeightCm,omitempty"`

	BagID      *string `json:"bagId"`
	ManifestID *string `json:"manifestId"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	TrackingEvents []TrackingEvent `json:"trackingEvents"`
}

// ManifestBag is one bag listed in a manifest response.
type ManifestBag struct {
	ID            string `json:"id"`
	Number        string `json:"number"`
	Destination   string `json:"destination"`
	Sealed        bool   `json:"sealed"`
	ShipmentCount int    `json:"shipmentCount"`
}

// ManifestResponse is the JSON representation of one export manifest.
type ManifestResponse struct {
	ID           string    `json:"id"`
	Number       string    `json:"number"`
	Destination  string    `json:"destination"`
	FlightNumber string    `json:"flightNumber"`
	DepartureAt  time.Time `json:"departureAt"`

	Locked   bool       `json:"locked"`
	LockedAt *time.Time `json:"lockedAt,omitempty"`
	LockedBy string     `json:"lockedBy,omitempty"`

	HandedOverAt     *time.Time `json:"handedOverAt,omitempty"`
	CarrierReference string     `json:"carrierReference,omitempty"`
	DepartedAt       *time.Time `json:"departedAt,omitempty"`

	Bags               []ManifestBag `json:"bags"`
	MemberShipmentAWBs []string      `json:"memberShipmentAwbs"`
}

func shipmentResponseFrom(result queries.GetShipmentQueryResponse) ShipmentResponse {
	events := make([]TrackingEvent, 0, len(result.TrackingEvents))
	for _, event := range result.TrackingEvents {
		events = append(events, TrackingEvent{
			Status:      event.Status,
			Description: event.Description,
			Location:    event.Location,
			OccurredAt:  event.OccurredAt,
		})
	}

	var bagID, manifestID *string
	if result.BagID != nil {
		value := result.BagID.String()
		bagID = &value
	}
	if result.ManifestID != nil {
		value := result.ManifestID.String()
		manifestID = &value
	}

	return ShipmentResponse{
		ID:               result.ID.String(),
		AWB:              result.AWB,
		Destination:      result.Destination,
		Status:           result.Status,
		DeclaredWeightKg: result.DeclaredWeightKg,
		DeclaredLengthCm: result.DeclaredLengthCm,
		DeclaredWidthCm:  result.DeclaredWidthCm,
		DeclaredHeightCm: result.DeclaredHeightCm,
		MeasuredWeightKg: result.MeasuredWeightKg,
		MeasuredLengthCm: result.MeasuredLengthCm,
		MeasuredWidthCm:  result.MeasuredWidthCm,
		MeasuredHeightCm: result.MeasuredHeightCm,
		BagID:            bagID,
		ManifestID:       manifestID,
		CreatedAt:        result.CreatedAt,
		UpdatedAt:        result.UpdatedAt,
		TrackingEvents:   events,
	}
}

func manifestResponseFrom(result queries.GetManifestQueryResponse) ManifestResponse {
	bags := make([]ManifestBag, 0, len(result.Bags))
	for _, b := range result.Bags {
		bags = append(bags, ManifestBag{
			ID:            b.ID.String(),
			Number:        b.Number,
			Destination:   b.Destination,
			Sealed:        b.Sealed,
			ShipmentCount: b.ShipmentCount,
		})
	}

	return ManifestResponse{
		ID:                 result.ID.String(),
		Number:             result.Number,
		Destination:        result.Destination,
		FlightNumber:       result.FlightNumber,
		DepartureAt:        result.DepartureAt,
		Locked:             result.Locked,
		LockedAt:           result.LockedAt,
		LockedBy:           result.LockedBy,
		HandedOverAt:       result.HandedOverAt,
		CarrierReference:   result.CarrierReference,
		DepartedAt:         result.DepartedAt,
		Bags:               bags,
		MemberShipmentAWBs: result.MemberShipmentAWBs,
	}
}
