package commands

import (
	"context"

	"fleet/internal/core/application/usecases/cachekeys"
	"fleet/internal/core/ports"
	"fleet/internal/pkg/errs"
)

// DeleteTruckCommandHandler handles the business logic for truck removal.
type DeleteTruckCommandHandler struct {
	uowFactory TruckUoWFactory
	cache      ports.Cache
}

// NewDeleteTruckCommandHandler creates a handler for truck removal.
func NewDeleteTruckCommandHandler(uowFactory TruckUoWFactory, cache ports.Cache) DeleteTruckCommandHandler {
	return DeleteTruckCommandHandler{
		uowFactory: uowFactory,
		cache:      cache,
	}
}

// Handle deletes the truck, cascading to its deliveries, and evicts the cache
// entries of the truck and every cascade-removed delivery. Returns an
// object-not-found error when the truck does not exist.
func (h *DeleteTruckCommandHandler) Handle(ctx context.Context, cmd DeleteTruckCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	exists, err := uow.TruckRepository().Exists(ctx, cmd.TruckID())
	if err != nil {
		return err
	}
	if !exists {
		return errs.NewObjectNotFoundError("truckID", cmd.TruckID())
	}

	// Collected before the delete; afterwards the rows are gone.
	deliveryIDs, err := uow.DeliveryRepository().GetIDsForTruck(ctx, cmd.TruckID())
	if err != nil {
		return err
	}

	if err = uow.TruckRepository().Delete(ctx, cmd.TruckID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	_ = h.cache.Delete(ctx, cachekeys.Truck(cmd.TruckID()))
	for _, deliveryID := range deliveryIDs {
		_ = h.cache.Delete(ctx, cachekeys.Delivery(deliveryID))
	}
	return nil
}
