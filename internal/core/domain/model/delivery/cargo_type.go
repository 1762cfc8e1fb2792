package delivery

import (
	"fmt"
	"strings"

	"fleet/internal/pkg/errs"
)

// CargoType classifies the cargo carried by a delivery.
// It is persisted as its string representation.
type CargoType string

const (
	// CargoGeneral is unclassified cargo with no special handling.
	CargoGeneral CargoType = "GENERAL"

	// CargoCombustible marks deliveries as dangerous.
	CargoCombustible CargoType = "COMBUSTIBLE"

	// CargoElectronics marks deliveries as insured.
	CargoElectronics CargoType = "ELECTRONICS"

	// CargoPerishable is time-sensitive cargo.
	CargoPerishable CargoType = "PERISHABLE"

	// CargoBulk is loose, unpackaged cargo.
	CargoBulk CargoType = "BULK"
)

func validCargoTypes() map[CargoType]struct{} {
	return map[CargoType]struct{}{
		CargoGeneral:     {},
		CargoCombustible: {},
		CargoElectronics: {},
		CargoPerishable:  {},
		CargoBulk:        {},
	}
}

// CargoTypeFromString parses a cargo type name, case-insensitively.
func CargoTypeFromString(s string) (CargoType, error) {
	ct := CargoType(strings.ToUpper(strings.TrimSpace(s)))
	if err := ct.Validate(); err != nil {
		return "", err
	}
	return ct, nil
}

// Validate checks that the CargoType is one of the recognized values.
func (c CargoType) Validate() error {
	if _, ok := validCargoTypes()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("cargoType",
			fmt.Errorf("%q is not a valid cargo type", string(c)))
	}
	return nil
}

// String returns the persisted string representation.
func (c CargoType) String() string {
	return string(c)
}
