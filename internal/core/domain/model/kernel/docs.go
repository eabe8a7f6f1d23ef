// Package kernel contains shared value objects used across all domain
// aggregates: entity identifiers (UUID) and the customer-facing air-waybill
// number (AWB). Both are immutable and validate themselves against
// zero-value construction.
package kernel
