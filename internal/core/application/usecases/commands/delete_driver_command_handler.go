package commands

import (
	"context"

	"fleet/internal/core/application/usecases/cachekeys"
	"fleet/internal/core/ports"
	"fleet/internal/pkg/errs"
)

// DeleteDriverCommandHandler handles the business logic for driver removal.
type DeleteDriverCommandHandler struct {
	uowFactory DriverUoWFactory
	cache      ports.Cache
}

// NewDeleteDriverCommandHandler creates a handler for driver removal.
func NewDeleteDriverCommandHandler(uowFactory DriverUoWFactory, cache ports.Cache) DeleteDriverCommandHandler {
	return DeleteDriverCommandHandler{
		uowFactory: uowFactory,
		cache:      cache,
	}
}

// Handle deletes the driver, cascading to the driver's deliveries, and evicts
// the cache entries of the driver and every cascade-removed delivery. Returns
// an object-not-found error when the driver does not exist.
func (h *DeleteDriverCommandHandler) Handle(ctx context.Context, cmd DeleteDriverCommand) error {
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

	exists, err := uow.DriverRepository().Exists(ctx, cmd.DriverID())
	if err != nil {
		return err
	}
	if !exists {
		return errs.NewObjectNotFoundError("driverID", cmd.DriverID())
	}

	// Collected before the delete; afterwards the rows are gone.
	deliveryIDs, err := uow.DeliveryRepository().GetIDsForDriver(ctx, cmd.DriverID())
	if err != nil {
		return err
	}

	if err = uow.DriverRepository().Delete(ctx, cmd.DriverID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	_ = h.cache.Delete(ctx, cachekeys.Driver(cmd.DriverID()))
	for _, deliveryID := range deliveryIDs {
		_ = h.cache.Delete(ctx, cachekeys.Delivery(deliveryID))
	}
	return nil
}
