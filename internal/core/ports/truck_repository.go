package ports

import (
	"context"
	"time"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/core/domain/model/truck"
)

// TruckRepository defines the persistence contract for truck aggregates.
type TruckRepository interface {
	// Add persists a new truck aggregate to storage.
	Add(ctx context.Context, aggregate *truck.Truck) error

	// Update persists changes to an existing truck aggregate.
	Update(ctx context.Context, aggregate *truck.Truck) error

	// Get retrieves a truck aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*truck.Truck, error)

	// GetAll retrieves a page of trucks according to the page request.
	GetAll(ctx context.Context, page kernel.PageRequest) ([]*truck.Truck, error)

	// Exists reports whether a truck with the given id is stored.
	// Used to distinguish "not found" from validation failure on update/delete.
	Exists(ctx context.Context, id kernel.UUID) (bool, error)

	// Delete removes the truck and, by cascade, all of its deliveries.
	Delete(ctx context.Context, id kernel.UUID) error

	// CountDeliveriesInPeriod counts the truck's deliveries scheduled within
	// [from, to], inclusive. Used by the monthly-capacity rule.
	CountDeliveriesInPeriod(ctx context.Context, truckID kernel.UUID, from, to time.Time) (int, error)
}
