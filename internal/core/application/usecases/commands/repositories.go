// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"fleet/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		BeginSerializable(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// TruckRepoFactory provides access to the truck repository within a transaction.
	TruckRepoFactory interface {
		TruckRepository() ports.TruckRepository
	}

	// DriverRepoFactory provides access to the driver repository within a transaction.
	DriverRepoFactory interface {
		DriverRepository() ports.DriverRepository
	}

	// DeliveryRepoFactory provides access to the delivery repository within a transaction.
	DeliveryRepoFactory interface {
		DeliveryRepository() ports.DeliveryRepository
	}

	// TruckUoW manages transactions for truck write operations. It reaches
	// into the delivery repository because deleting a truck cascades to its
	// deliveries, whose cache entries the handler must evict.
	TruckUoW interface {
		TxManager
		TruckRepoFactory
		DeliveryRepoFactory
	}

	// TruckUoWFactory creates new truck unit of work instances.
	TruckUoWFactory interface {
		Create() TruckUoW
	}

	// DriverUoW manages transactions for driver write operations. The
	// delivery repository serves the same cascade eviction as in TruckUoW.
	DriverUoW interface {
		TxManager
		DriverRepoFactory
		DeliveryRepoFactory
	}

	// DriverUoWFactory creates new driver unit of work instances.
	DriverUoWFactory interface {
		Create() DriverUoW
	}

	// AdmissionUoW manages transactions spanning all three aggregates.
	// Used by the delivery admission handler, which reads trucks and drivers,
	// counts their deliveries, and persists the new delivery atomically.
	AdmissionUoW interface {
		TxManager
		TruckRepoFactory
		DriverRepoFactory
		DeliveryRepoFactory
	}

	// AdmissionUoWFactory creates new admission unit of work instances.
	AdmissionUoWFactory interface {
		Create() AdmissionUoW
	}
)
