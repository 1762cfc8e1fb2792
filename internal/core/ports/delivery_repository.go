package ports

import (
	"context"
	"time"

	"fleet/internal/core/domain/model/delivery"
	"fleet/internal/core/domain/model/kernel"
)

// DeliveryRepository defines the persistence contract for delivery aggregates.
// Deliveries are created only through the admission command handler, never by
// a bare insert, so the interface deliberately has no Update method.
type DeliveryRepository interface {
	// Add persists a new delivery aggregate to storage.
	Add(ctx context.Context, aggregate *delivery.Delivery) error

	// Get retrieves a delivery aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)

	// GetAll retrieves a page of deliveries according to the page request.
	GetAll(ctx context.Context, page kernel.PageRequest) ([]*delivery.Delivery, error)

	// GetByPeriod retrieves a page of deliveries scheduled within [from, to].
	GetByPeriod(ctx context.Context, from, to time.Time, page kernel.PageRequest) ([]*delivery.Delivery, error)

	// SumValueForDay sums the value of deliveries scheduled on the given
	// calendar day (00:00:00 through 23:59:59), returning 0.00 when none match.
	SumValueForDay(ctx context.Context, day time.Time) (kernel.Money, error)

	// GetIDsForTruck lists the ids of the truck's deliveries. Delete handlers
	// use it to evict the cache entries of cascade-removed deliveries.
	GetIDsForTruck(ctx context.Context, truckID kernel.UUID) ([]kernel.UUID, error)

	// GetIDsForDriver lists the ids of the driver's deliveries.
	GetIDsForDriver(ctx context.Context, driverID kernel.UUID) ([]kernel.UUID, error)
}
