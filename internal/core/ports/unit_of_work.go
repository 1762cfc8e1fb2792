package ports

import (
	"context"
	"errors"
)

// ErrSerializationConflict is returned by Commit (wrapped) when a
// serializable transaction loses against a concurrent one. Callers may
// retry the whole transaction.
var ErrSerializationConflict = errors.New("serialization conflict, transaction must be retried")

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and repository accessors bound to the
// transaction. Client code must explicitly manage the transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction with default isolation.
	Begin(ctx context.Context) error

	// BeginSerializable starts a new database transaction at serializable
	// isolation. Used by the delivery admission handler so the capacity
	// count-checks and the subsequent insert form one logical transaction;
	// conflicting concurrent admissions fail at commit and are retried.
	BeginSerializable(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// TruckRepository returns a TruckRepository bound to the current transaction.
	TruckRepository() TruckRepository

	// DriverRepository returns a DriverRepository bound to the current transaction.
	DriverRepository() DriverRepository

	// DeliveryRepository returns a DeliveryRepository bound to the current transaction.
	DeliveryRepository() DeliveryRepository
}
