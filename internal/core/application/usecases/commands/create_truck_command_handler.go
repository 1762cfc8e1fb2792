package commands

import (
	"context"

	"fleet/internal/core/application/usecases/cachekeys"
	"fleet/internal/core/application/usecases/queries"
	"fleet/internal/core/domain/model/truck"
	"fleet/internal/core/ports"
)

// CreateTruckCommandHandler handles the business logic for truck registration.
type CreateTruckCommandHandler struct {
	uowFactory TruckUoWFactory
	cache      ports.Cache
}

// NewCreateTruckCommandHandler creates a handler for truck registration.
func NewCreateTruckCommandHandler(uowFactory TruckUoWFactory, cache ports.Cache) CreateTruckCommandHandler {
	return CreateTruckCommandHandler{
		uowFactory: uowFactory,
		cache:      cache,
	}
}

// Handle validates the command, persists the truck in a transaction, and
// populates the truck's single-entity cache key. Cache failures never fail
// the command; the cache adapter logs them.
func (h *CreateTruckCommandHandler) Handle(ctx context.Context, cmd CreateTruckCommand) (*truck.Truck, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	newTruck, err := truck.NewTruck(
		cmd.TruckID(), cmd.Plate(), cmd.Model(), cmd.ManufacturingYear(), cmd.DriverID())
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

	if err = uow.TruckRepository().Add(ctx, newTruck); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	_ = h.cache.Set(ctx, cachekeys.Truck(newTruck.ID()), queries.TruckResponseFromAggregate(newTruck))
	return newTruck, nil
}
