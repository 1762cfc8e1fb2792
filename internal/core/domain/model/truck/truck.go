package truck

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/pkg/errs"
)

// ErrTruckIsNotConstructed is returned when a Truck instance was not created
// through NewTruck or RestoreTruck.
var ErrTruckIsNotConstructed = errors.New("Truck must be created via NewTruck constructor")

const (
	// ModelMinLength is the minimum length of a truck model name.
	ModelMinLength = 2
	// ModelMaxLength is the maximum length of a truck model name.
	ModelMaxLength = 50
	// ManufacturingYearMin is the earliest accepted manufacturing year.
	ManufacturingYearMin = 1990
	// ManufacturingYearMax is the latest accepted manufacturing year.
	ManufacturingYearMax = 2025
)

// platePattern matches Mercosul license plates: three letters, one digit,
// one alphanumeric, two digits (e.g. "ABC1D23").
var platePattern = regexp.MustCompile(`^[A-Z]{3}[0-9][0-9A-Z][0-9]{2}$`)

// Truck is an aggregate root representing a vehicle in the fleet.
//
// Invariants:
//   - Plate matches the Mercosul format
//   - Model name is between 2 and 50 characters
//   - Manufacturing year, when present, is between 1990 and 2025
//   - An owning driver is optional (zero-or-one)
//
// Deleting a truck cascades removal of its deliveries; the cascade is
// enforced by the persistence adapter.
type Truck struct {
	id kernel.UUID

	plate string
	model string

	// manufacturingYear is nil when unknown
	manufacturingYear *int

	// driverID is the owning driver (nil if unowned)
	driverID *kernel.UUID

	isConstructed bool
}

// NewTruck creates a validated Truck.
// manufacturingYear and driverID may be nil.
func NewTruck(
	id kernel.UUID, plate, model string, manufacturingYear *int, driverID *kernel.UUID,
) (*Truck, error) {
	t := &Truck{
		isConstructed: true,
	}

	if err := errors.Join(
		t.setID(id),
		t.setPlate(plate),
		t.setModel(model),
		t.setManufacturingYear(manufacturingYear),
		t.setDriverID(driverID),
	); err != nil {
		return nil, err
	}

	return t, nil
}

// RestoreTruck reconstructs a Truck from persistence.
// Fields run through the same validation as NewTruck so that corrupt rows
// surface as errors instead of invalid aggregates.
func RestoreTruck(
	id kernel.UUID, plate, model string, manufacturingYear *int, driverID *kernel.UUID,
) (*Truck, error) {
	return NewTruck(id, plate, model, manufacturingYear, driverID)
}

// Validate ensures the Truck was created through its constructor.
func (t *Truck) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTruckIsNotConstructed
	}

	return nil
}

// IsEqual compares two trucks by identity.
func (t *Truck) IsEqual(other *Truck) bool {
	return other != nil && t.id.IsEqual(other.id)
}

// ID returns the truck's unique identifier.
func (t *Truck) ID() kernel.UUID {
	return t.id
}

// Plate returns the Mercosul license plate.
func (t *Truck) Plate() string {
	return t.plate
}

// Model returns the truck model name.
func (t *Truck) Model() string {
	return t.model
}

// ManufacturingYear returns the manufacturing year, or nil when unknown.
func (t *Truck) ManufacturingYear() *int {
	return t.manufacturingYear
}

// DriverID returns the owning driver's ID, or nil when the truck is unowned.
func (t *Truck) DriverID() *kernel.UUID {
	return t.driverID
}

func (t *Truck) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *Truck) setPlate(plate string) error {
	if strings.TrimSpace(plate) == "" {
		return errs.NewValueIsRequiredError("plate")
	}
	if !platePattern.MatchString(plate) {
		return errs.NewValueIsInvalidErrorWithCause("plate",
			fmt.Errorf("%q is not in Mercosul format (AAA0A00)", plate))
	}
	t.plate = plate
	return nil
}

func (t *Truck) setModel(model string) error {
	if strings.TrimSpace(model) == "" {
		return errs.NewValueIsRequiredError("model")
	}
	if len(model) < ModelMinLength || len(model) > ModelMaxLength {
		return errs.NewValueIsOutOfRangeError("model length", len(model), ModelMinLength, ModelMaxLength)
	}
	t.model = model
	return nil
}

func (t *Truck) setManufacturingYear(year *int) error {
	if year == nil {
		return nil
	}
	if *year < ManufacturingYearMin || *year > ManufacturingYearMax {
		return errs.NewValueIsOutOfRangeError(
			"manufacturingYear", *year, ManufacturingYearMin, ManufacturingYearMax)
	}
	t.manufacturingYear = year
	return nil
}

func (t *Truck) setDriverID(driverID *kernel.UUID) error {
	if driverID == nil {
		return nil
	}
	if err := driverID.Validate(); err != nil {
		return err
	}
	t.driverID = driverID
	return nil
}
