package ports

import (
	"context"
	"time"

	"fleet/internal/core/domain/model/driver"
	"fleet/internal/core/domain/model/kernel"
)

// DriverRepository defines the persistence contract for driver aggregates.
// The license number carries a unique index; adds and updates violating it
// surface a value-is-invalid error.
type DriverRepository interface {
	// Add persists a new driver aggregate to storage.
	Add(ctx context.Context, aggregate *driver.Driver) error

	// Update persists changes to an existing driver aggregate.
	Update(ctx context.Context, aggregate *driver.Driver) error

	// Get retrieves a driver aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error)

	// GetAll retrieves a page of drivers according to the page request.
	GetAll(ctx context.Context, page kernel.PageRequest) ([]*driver.Driver, error)

	// Exists reports whether a driver with the given id is stored.
	Exists(ctx context.Context, id kernel.UUID) (bool, error)

	// Delete removes the driver and, by cascade, all of the driver's deliveries.
	Delete(ctx context.Context, id kernel.UUID) error

	// CountDeliveriesInPeriod counts the driver's deliveries scheduled within
	// [from, to], inclusive. Used by the monthly-capacity rule.
	CountDeliveriesInPeriod(ctx context.Context, driverID kernel.UUID, from, to time.Time) (int, error)

	// CountDeliveriesToDestination counts the driver's all-time deliveries to
	// a destination, matched case-insensitively. Used by the restricted-region rule.
	CountDeliveriesToDestination(ctx context.Context, driverID kernel.UUID, destination string) (int, error)
}
