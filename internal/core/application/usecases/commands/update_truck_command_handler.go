package commands

import (
	"context"

	"fleet/internal/core/application/usecases/cachekeys"
	"fleet/internal/core/application/usecases/queries"
	"fleet/internal/core/domain/model/truck"
	"fleet/internal/core/ports"
	"fleet/internal/pkg/errs"
)

// UpdateTruckCommandHandler handles the business logic for truck updates.
type UpdateTruckCommandHandler struct {
	uowFactory TruckUoWFactory
	cache      ports.Cache
}

// NewUpdateTruckCommandHandler creates a handler for truck updates.
func NewUpdateTruckCommandHandler(uowFactory TruckUoWFactory, cache ports.Cache) UpdateTruckCommandHandler {
	return UpdateTruckCommandHandler{
		uowFactory: uowFactory,
		cache:      cache,
	}
}

// Handle replaces the truck's fields and refreshes its cache entry.
// Returns an object-not-found error when the truck does not exist.
func (h *UpdateTruckCommandHandler) Handle(ctx context.Context, cmd UpdateTruckCommand) (*truck.Truck, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	updatedTruck, err := truck.NewTruck(
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

	exists, err := uow.TruckRepository().Exists(ctx, cmd.TruckID())
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errs.NewObjectNotFoundError("truckID", cmd.TruckID())
	}

	if err = uow.TruckRepository().Update(ctx, updatedTruck); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	_ = h.cache.Set(ctx, cachekeys.Truck(updatedTruck.ID()), queries.TruckResponseFromAggregate(updatedTruck))
	return updatedTruck, nil
}
