// Package shipment provides the Shipment aggregate root and its lifecycle
// state machine for the export flow.
//
// Key business rules:
//   - The AWB is assigned exactly once, at booking confirmation, and is
//     immutable afterwards.
//   - Intake measurements outside the configured tolerance divert the
//     shipment into the MismatchFlagged side-state, which only an explicit
//     audited override can clear.
//   - A shipment holds at most one active bag reference and belongs to at
//     most one manifest; bags and manifests reference shipments but the
//     shipment's own status stays authoritative.
//   - Every transition method rejects out-of-graph moves with
//     ErrInvalidTransition and leaves the aggregate unchanged.
package shipment
