// Package driver provides the Driver aggregate root.
// A driver owns zero-or-more trucks and is assigned zero-or-more deliveries;
// both associations are modeled as foreign-key identifiers resolved by
// explicit lookups, never lazy on-access fetches.
package driver

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/pkg/errs"
)

// ErrDriverIsNotConstructed is returned when a Driver instance was not created
// through NewDriver or RestoreDriver.
var ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver constructor")

const (
	// NameMinLength is the minimum length of a driver's name.
	NameMinLength = 3
	// NameMaxLength is the maximum length of a driver's name.
	NameMaxLength = 100
)

// licensePattern matches a driver's license number: exactly 11 digits.
var licensePattern = regexp.MustCompile(`^[0-9]{11}$`)

// Driver is an aggregate root representing a fleet driver.
// The license number is globally unique; uniqueness is enforced by the
// persistence adapter with a unique index.
type Driver struct {
	id kernel.UUID

	name    string
	license string

	isConstructed bool
}

// NewDriver creates a validated Driver.
func NewDriver(id kernel.UUID, name, license string) (*Driver, error) {
	d := &Driver{
		isConstructed: true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setName(name),
		d.setLicense(license),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDriver reconstructs a Driver from persistence.
func RestoreDriver(id kernel.UUID, name, license string) (*Driver, error) {
	return NewDriver(id, name, license)
}

// Validate ensures the Driver was created through its constructor.
func (d *Driver) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDriverIsNotConstructed
	}

	return nil
}

// IsEqual compares two drivers by identity.
func (d *Driver) IsEqual(other *Driver) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the driver's unique identifier.
func (d *Driver) ID() kernel.UUID {
	return d.id
}

// Name returns the driver's name.
func (d *Driver) Name() string {
	return d.name
}

// License returns the 11-digit license number.
func (d *Driver) License() string {
	return d.license
}

func (d *Driver) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Driver) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if len(name) < NameMinLength || len(name) > NameMaxLength {
		return errs.NewValueIsOutOfRangeError("name length", len(name), NameMinLength, NameMaxLength)
	}
	d.name = name
	return nil
}

func (d *Driver) setLicense(license string) error {
	if strings.TrimSpace(license) == "" {
		return errs.NewValueIsRequiredError("license")
	}
	if !licensePattern.MatchString(license) {
		return errs.NewValueIsInvalidErrorWithCause("license",
			fmt.Errorf("%q is not an 11-digit number", license))
	}
	d.license = license
	return nil
}
