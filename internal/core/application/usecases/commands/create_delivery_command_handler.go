package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fleet/internal/core/application/usecases/cachekeys"
	"fleet/internal/core/application/usecases/queries"
	"fleet/internal/core/domain/model/delivery"
	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/core/ports"
	"fleet/internal/pkg/errs"
)

// Admission limits. The truck and driver limits apply to the calendar month
// current at admission time; the restricted-region limit applies to the
// driver's whole delivery history.
const (
	TruckMonthlyDeliveryLimit  = 4
	DriverMonthlyDeliveryLimit = 2
	RestrictedRegionLimit      = 1

	// Serialization conflicts are rare and resolve on the next attempt;
	// three tries is plenty before surfacing the failure.
	admissionMaxAttempts = 3
)

// Admission rule identifiers, surfaced to clients in rejection responses.
const (
	RuleTruckCapacityExceeded  = "TruckCapacityExceeded"
	RuleDriverCapacityExceeded = "DriverCapacityExceeded"
	RuleRestrictedDestination  = "RestrictedDestinationExceeded"
)

// CreateDeliveryCommandHandler admits deliveries. An admission checks the
// truck's and driver's monthly capacity and the driver's restricted-region
// history, applies the destination's price multiplier, and persists the
// delivery, all atomically with respect to concurrent admissions.
type CreateDeliveryCommandHandler struct {
	uowFactory AdmissionUoWFactory
	locker     *EntityLocker
	cache      ports.Cache
}

// NewCreateDeliveryCommandHandler creates a handler for delivery admission.
// The locker must be shared by all admission handlers in the process.
func NewCreateDeliveryCommandHandler(
	uowFactory AdmissionUoWFactory, locker *EntityLocker, cache ports.Cache,
) CreateDeliveryCommandHandler {
	return CreateDeliveryCommandHandler{
		uowFactory: uowFactory,
		locker:     locker,
		cache:      cache,
	}
}

// Handle runs the admission. The checks run in a fixed order, so a request
// violating several rules always reports the same one: truck capacity,
// then driver capacity, then restricted region.
//
// The capacity window is the wall-clock month at admission time, computed
// once here so the decision does not shift while the checks run. A delivery
// scheduled months ahead still counts against this month's capacity.
func (h *CreateDeliveryCommandHandler) Handle(
	ctx context.Context, cmd CreateDeliveryCommand,
) (*delivery.Delivery, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	newDelivery, err := delivery.NewDelivery(
		cmd.DeliveryID(),
		cmd.Destination(),
		cmd.ScheduledAt(),
		cmd.CargoType(),
		cmd.Value(),
		cmd.TruckID(),
		cmd.DriverID(),
	)
	if err != nil {
		return nil, err
	}
	if err = newDelivery.AdjustForRegion(); err != nil {
		return nil, err
	}

	monthStart, monthEnd := kernel.MonthWindow(time.Now())

	// Truck before driver, always. See EntityLocker.Lock.
	unlock := h.locker.Lock(cmd.TruckID(), cmd.DriverID())
	defer unlock()

	for attempt := 1; ; attempt++ {
		err = h.admit(ctx, cmd, newDelivery, monthStart, monthEnd)
		if err == nil {
			break
		}
		if errors.Is(err, ports.ErrSerializationConflict) && attempt < admissionMaxAttempts {
			continue
		}
		return nil, err
	}

	_ = h.cache.Set(ctx, cachekeys.Delivery(newDelivery.ID()), queries.DeliveryResponseFromAggregate(newDelivery))
	return newDelivery, nil
}

// admit runs one serializable transaction: existence checks, the three
// business rules in order, and the insert.
func (h *CreateDeliveryCommandHandler) admit(
	ctx context.Context,
	cmd CreateDeliveryCommand,
	newDelivery *delivery.Delivery,
	monthStart, monthEnd time.Time,
) error {
	uow := h.uowFactory.Create()
	if err := uow.BeginSerializable(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	truckExists, err := uow.TruckRepository().Exists(ctx, cmd.TruckID())
	if err != nil {
		return err
	}
	if !truckExists {
		return errs.NewObjectNotFoundError("truckID", cmd.TruckID())
	}

	driverExists, err := uow.DriverRepository().Exists(ctx, cmd.DriverID())
	if err != nil {
		return err
	}
	if !driverExists {
		return errs.NewObjectNotFoundError("driverID", cmd.DriverID())
	}

	truckCount, err := uow.TruckRepository().CountDeliveriesInPeriod(ctx, cmd.TruckID(), monthStart, monthEnd)
	if err != nil {
		return err
	}
	if truckCount >= TruckMonthlyDeliveryLimit {
		return errs.NewBusinessRuleError(RuleTruckCapacityExceeded, fmt.Sprintf(
			"truck %s already has %d deliveries in %s",
			cmd.TruckID(), truckCount, monthStart.Format("2006-01")))
	}

	driverCount, err := uow.DriverRepository().CountDeliveriesInPeriod(ctx, cmd.DriverID(), monthStart, monthEnd)
	if err != nil {
		return err
	}
	if driverCount >= DriverMonthlyDeliveryLimit {
		return errs.NewBusinessRuleError(RuleDriverCapacityExceeded, fmt.Sprintf(
			"driver %s already has %d deliveries in %s",
			cmd.DriverID(), driverCount, monthStart.Format("2006-01")))
	}

	if delivery.IsRestrictedDestination(cmd.Destination()) {
		restrictedCount, err := uow.DriverRepository().CountDeliveriesToDestination(
			ctx, cmd.DriverID(), delivery.RestrictedRegion)
		if err != nil {
			return err
		}
		if restrictedCount >= RestrictedRegionLimit {
			return errs.NewBusinessRuleError(RuleRestrictedDestination, fmt.Sprintf(
				"driver %s already has a delivery to %s",
				cmd.DriverID(), delivery.RestrictedRegion))
		}
	}

	if err = uow.DeliveryRepository().Add(ctx, newDelivery); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
