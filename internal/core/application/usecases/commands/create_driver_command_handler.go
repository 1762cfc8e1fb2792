package commands

import (
	"context"

	"fleet/internal/core/application/usecases/cachekeys"
	"fleet/internal/core/application/usecases/queries"
	"fleet/internal/core/domain/model/driver"
	"fleet/internal/core/ports"
)

// CreateDriverCommandHandler handles the business logic for driver registration.
type CreateDriverCommandHandler struct {
	uowFactory DriverUoWFactory
	cache      ports.Cache
}

// NewCreateDriverCommandHandler creates a handler for driver registration.
func NewCreateDriverCommandHandler(uowFactory DriverUoWFactory, cache ports.Cache) CreateDriverCommandHandler {
	return CreateDriverCommandHandler{
		uowFactory: uowFactory,
		cache:      cache,
	}
}

// Handle validates the command, persists the driver in a transaction, and
// populates the driver's single-entity cache key.
func (h *CreateDriverCommandHandler) Handle(ctx context.Context, cmd CreateDriverCommand) (*driver.Driver, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	newDriver, err := driver.NewDriver(cmd.DriverID(), cmd.Name(), cmd.License())
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

	if err = uow.DriverRepository().Add(ctx, newDriver); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	_ = h.cache.Set(ctx, cachekeys.Driver(newDriver.ID()), queries.DriverResponseFromAggregate(newDriver))
	return newDriver, nil
}
