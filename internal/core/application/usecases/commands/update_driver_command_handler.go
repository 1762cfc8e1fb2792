package commands

import (
	"context"

	"fleet/internal/core/application/usecases/cachekeys"
	"fleet/internal/core/application/usecases/queries"
	"fleet/internal/core/domain/model/driver"
	"fleet/internal/core/ports"
	"fleet/internal/pkg/errs"
)

// UpdateDriverCommandHandler handles the business logic for driver updates.
type UpdateDriverCommandHandler struct {
	uowFactory DriverUoWFactory
	cache      ports.Cache
}

// NewUpdateDriverCommandHandler creates a handler for driver updates.
func NewUpdateDriverCommandHandler(uowFactory DriverUoWFactory, cache ports.Cache) UpdateDriverCommandHandler {
	return UpdateDriverCommandHandler{
		uowFactory: uowFactory,
		cache:      cache,
	}
}

// Handle replaces the driver's fields and refreshes its cache entry.
// Returns an object-not-found error when the driver does not exist.
func (h *UpdateDriverCommandHandler) Handle(ctx context.Context, cmd UpdateDriverCommand) (*driver.Driver, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	updatedDriver, err := driver.NewDriver(cmd.DriverID(), cmd.Name(), cmd.License())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	exists, err := uow.DriverRepository().Exists(ctx, cmd.DriverID())
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errs.NewObjectNotFoundError("driverID", cmd.DriverID())
	}

	if err = uow.DriverRepository().Update(ctx, updatedDriver); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	_ = h.cache.Set(ctx, cachekeys.Driver(updatedDriver.ID()), queries.DriverResponseFromAggregate(updatedDriver))
	return updatedDriver, nil
}
