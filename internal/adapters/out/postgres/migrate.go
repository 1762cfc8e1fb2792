package postgres

import (
	"gorm.io/gorm"

	"fleet/internal/adapters/out/postgres/deliveryrepo"
	"fleet/internal/adapters/out/postgres/driverrepo"
	"fleet/internal/adapters/out/postgres/truckrepo"
)

// Migrate creates or updates the schema for all fleet tables. Drivers and
// trucks go first so the delivery foreign keys have something to reference.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&driverrepo.DriverDTO{},
		&truckrepo.TruckDTO{},
		&deliveryrepo.DeliveryDTO{},
	)
}
