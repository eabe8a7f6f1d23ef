// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management, and persistence.
package commands

import (
	"context"

	"exportflow/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ShipmentRepoFactory provides access to the shipment repository within a transaction.
	ShipmentRepoFactory interface {
		ShipmentRepository() ports.ShipmentRepository
	}

	// BagRepoFactory provides access to the bag repository within a transaction.
	BagRepoFactory interface {
		BagRepository() ports.BagRepository
	}

	// ManifestRepoFactory provides access to the manifest repository within a transaction.
	ManifestRepoFactory interface {
		ManifestRepository() ports.ManifestRepository
	}

	// AuditRepoFactory provides access to the audit repository within a transaction.
	AuditRepoFactory interface {
		AuditRepository() ports.AuditRepository
	}

	// TrackingRepoFactory provides access to the tracking repository within a transaction.
	TrackingRepoFactory interface {
		TrackingRepository() ports.TrackingRepository
	}

	// ShipmentUoW manages transactions for shipment-centric operations.
	// Every accepted mutation writes an audit entry in the same transaction,
	// so the audit repository is always in scope.
	ShipmentUoW interface {
		TxManager
		ShipmentRepoFactory
		AuditRepoFactory
		TrackingRepoFactory
	}

	// ShipmentUoWFactory creates new shipment unit of work instances.
	ShipmentUoWFactory interface {
		Create() ShipmentUoW
	}

	// BagUoW manages transactions spanning bag and shipment aggregates.
	BagUoW interface {
		ShipmentUoW
		BagRepoFactory
	}

	// BagUoWFactory creates new bag unit of work instances.
	BagUoWFactory interface {
		Create() BagUoW
	}

	// ManifestUoW manages transactions spanning manifest, bag and shipment
	// aggregates. Used by the batch transitions where a manifest event must
	// move every member shipment in one commit.
	ManifestUoW interface {
		BagUoW
		ManifestRepoFactory
	}

	// ManifestUoWFactory creates new manifest unit of work instances.
	ManifestUoWFactory interface {
		Create() ManifestUoW
	}
)
