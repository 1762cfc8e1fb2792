package delivery

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/pkg/errs"
)

// ErrDeliveryIsNotConstructed is returned when a Delivery instance was not
// created through NewDelivery or RestoreDelivery.
var ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery constructor")

const (
	// DestinationMinLength is the minimum length of a destination.
	DestinationMinLength = 2
	// DestinationMaxLength is the maximum length of a destination.
	DestinationMaxLength = 100
)

// valuableThreshold is the value above which a delivery is flagged valuable.
// Strictly greater than: a delivery of exactly 30000.00 is not valuable.
var valuableThreshold = mustMoney("30000.00")

func mustMoney(s string) kernel.Money {
	m, err := kernel.NewMoneyFromString(s)
	if err != nil {
		panic(err)
	}
	return m
}

// Delivery is a dependent aggregate referencing one Truck and one Driver by
// identity. Destination and value are immutable after creation.
//
// The three derived flags (valuable, dangerous, insured) are recomputed from
// the current value and cargo type on every construction and mutation; they
// are never supplied by a caller and can never be stale.
type Delivery struct {
	id kernel.UUID

	destination string
	scheduledAt time.Time
	cargoType   CargoType
	value       kernel.Money

	// derived, never caller-settable
	valuable  bool
	dangerous bool
	insured   bool

	truckID  kernel.UUID
	driverID kernel.UUID

	isConstructed bool
}

// NewDelivery creates a validated Delivery scheduled strictly in the future.
// The derived flags are computed from the declared value and cargo type.
func NewDelivery(
	id kernel.UUID,
	destination string,
	scheduledAt time.Time,
	cargoType CargoType,
	value kernel.Money,
	truckID kernel.UUID,
	driverID kernel.UUID,
) (*Delivery, error) {
	d, err := RestoreDelivery(id, destination, scheduledAt, cargoType, value, truckID, driverID)
	if err != nil {
		return nil, err
	}

	if !scheduledAt.After(time.Now()) {
		return nil, errs.NewValueIsInvalidErrorWithCause("scheduledAt",
			fmt.Errorf("%s is not in the future", scheduledAt.Format(time.RFC3339)))
	}

	return d, nil
}

// RestoreDelivery reconstructs a Delivery from persistence.
// The future-date rule is not re-checked (persisted deliveries age past their
// date), but the derived flags are recomputed so a read can never observe
// flags inconsistent with the stored value and cargo type.
func RestoreDelivery(
	id kernel.UUID,
	destination string,
	scheduledAt time.Time,
	cargoType CargoType,
	value kernel.Money,
	truckID kernel.UUID,
	driverID kernel.UUID,
) (*Delivery, error) {
	d := &Delivery{
		isConstructed: true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setDestination(destination),
		d.setScheduledAt(scheduledAt),
		d.setCargoType(cargoType),
		d.setValue(value),
		d.setTruckID(truckID),
		d.setDriverID(driverID),
	); err != nil {
		return nil, err
	}

	d.recomputeFlags()
	return d, nil
}

// Validate ensures the Delivery was created through its constructor.
func (d *Delivery) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDeliveryIsNotConstructed
	}

	return nil
}

// IsEqual compares two deliveries by identity.
func (d *Delivery) IsEqual(other *Delivery) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the delivery's unique identifier.
func (d *Delivery) ID() kernel.UUID {
	return d.id
}

// Destination returns the free-text destination.
func (d *Delivery) Destination() string {
	return d.destination
}

// ScheduledAt returns the scheduled date-time.
func (d *Delivery) ScheduledAt() time.Time {
	return d.scheduledAt
}

// CargoType returns the cargo classification.
func (d *Delivery) CargoType() CargoType {
	return d.cargoType
}

// Value returns the delivery's monetary value.
func (d *Delivery) Value() kernel.Money {
	return d.value
}

// IsValuable reports whether the value exceeds the valuable threshold.
func (d *Delivery) IsValuable() bool {
	return d.valuable
}

// IsDangerous reports whether the cargo is combustible.
func (d *Delivery) IsDangerous() bool {
	return d.dangerous
}

// HasInsurance reports whether the cargo is insured electronics.
func (d *Delivery) HasInsurance() bool {
	return d.insured
}

// TruckID returns the assigned truck's identifier.
func (d *Delivery) TruckID() kernel.UUID {
	return d.truckID
}

// DriverID returns the assigned driver's identifier.
func (d *Delivery) DriverID() kernel.UUID {
	return d.driverID
}

// AdjustForRegion multiplies the declared value by the destination's regional
// factor and recomputes the derived flags. Destinations outside the
// recognized regions are left unchanged. The adjustment always succeeds; it
// is applied exactly once, during admission, before the delivery is persisted.
func (d *Delivery) AdjustForRegion() error {
	factor, ok := RegionFactor(d.destination)
	if !ok {
		return nil
	}

	adjusted, err := d.value.MulFactor(factor)
	if err != nil {
		return err
	}

	d.value = adjusted
	d.recomputeFlags()
	return nil
}

// recomputeFlags derives the three boolean flags from current field values.
// Called on every construction and mutation, immediately before persistence.
func (d *Delivery) recomputeFlags() {
	d.valuable = d.value.GreaterThan(valuableThreshold)
	d.dangerous = d.cargoType == CargoCombustible
	d.insured = d.cargoType == CargoElectronics
}

func (d *Delivery) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Delivery) setDestination(destination string) error {
	if strings.TrimSpace(destination) == "" {
		return errs.NewValueIsRequiredError("destination")
	}
	if len(destination) < DestinationMinLength || len(destination) > DestinationMaxLength {
		return errs.NewValueIsOutOfRangeError(
			"destination length", len(destination), DestinationMinLength, DestinationMaxLength)
	}
	d.destination = destination
	return nil
}

func (d *Delivery) setScheduledAt(scheduledAt time.Time) error {
	if scheduledAt.IsZero() {
		return errs.NewValueIsRequiredError("scheduledAt")
	}
	d.scheduledAt = scheduledAt
	return nil
}

func (d *Delivery) setCargoType(cargoType CargoType) error {
	if err := cargoType.Validate(); err != nil {
		return err
	}
	d.cargoType = cargoType
	return nil
}

func (d *Delivery) setValue(value kernel.Money) error {
	if err := value.Validate(); err != nil {
		return err
	}
	if !value.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("value",
			fmt.Errorf("%s is not greater than zero", value))
	}
	d.value = value
	return nil
}

func (d *Delivery) setTruckID(truckID kernel.UUID) error {
	if err := truckID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("truckId", err)
	}
	d.truckID = truckID
	return nil
}

func (d *Delivery) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("driverId", err)
	}
	d.driverID = driverID
	return nil
}
