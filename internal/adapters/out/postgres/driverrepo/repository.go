package driverrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fleet/internal/core/domain/model/driver"
	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Postgres error code for unique constraint violations.
const uniqueViolationCode = "23505"

// GormDriverRepository implements DriverRepository using GORM.
type GormDriverRepository struct {
	db *gorm.DB
}

// NewGormDriverRepository creates a new GORM driver repository.
func NewGormDriverRepository(db *gorm.DB) *GormDriverRepository {
	return &GormDriverRepository{db: db}
}

// Add saves a new driver to the database. A duplicate license number surfaces
// as a value-is-invalid error rather than a bare driver error.
func (r *GormDriverRepository) Add(ctx context.Context, aggregate *driver.Driver) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return translateUniqueViolation(err, aggregate.License())
	}

	return nil
}

// Update saves an existing driver to the database.
func (r *GormDriverRepository) Update(ctx context.Context, aggregate *driver.Driver) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Save(&dto)
	if result.Error != nil {
		return translateUniqueViolation(result.Error, aggregate.License())
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

// Get retrieves a driver by ID.
func (r *GormDriverRepository) Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DriverDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("driver", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves a page of drivers ordered by the page request.
func (r *GormDriverRepository) GetAll(ctx context.Context, page kernel.PageRequest) ([]*driver.Driver, error) {
	if err := page.Validate(); err != nil {
		return nil, err
	}

	var dtos []DriverDTO
	if err := r.db.WithContext(ctx).
		Order(page.OrderClause()).
		Limit(page.Size()).
		Offset(page.Offset()).
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	drivers := make([]*driver.Driver, 0, len(dtos))
	for _, dto := range dtos {
		d, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		drivers = append(drivers, d)
	}

	return drivers, nil
}

// Exists reports whether a driver with the given id is stored.
func (r *GormDriverRepository) Exists(ctx context.Context, id kernel.UUID) (bool, error) {
	if err := id.Validate(); err != nil {
		return false, err
	}

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&DriverDTO{}).
		Where("id = ?", id.Bytes()).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

// Delete removes the driver. The driver's deliveries go with it through the
// cascading foreign key; trucks pointing at the driver are detached first so
// they survive with no assigned driver.
func (r *GormDriverRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).
		Table("trucks").
		Where("driver_id = ?", id.Bytes()).
		Update("driver_id", nil).Error; err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&DriverDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("driver", id.String())
	}

	return nil
}

// CountDeliveriesInPeriod counts the driver's deliveries scheduled within
// [from, to], inclusive.
func (r *GormDriverRepository) CountDeliveriesInPeriod(
	ctx context.Context, driverID kernel.UUID, from, to time.Time,
) (int, error) {
	if err := driverID.Validate(); err != nil {
		return 0, err
	}

	var count int64
	if err := r.db.WithContext(ctx).
		Table("deliveries").
		Where("driver_id = ? AND scheduled_at BETWEEN ? AND ?", driverID.Bytes(), from, to).
		Count(&count).Error; err != nil {
		return 0, err
	}

	return int(count), nil
}

// CountDeliveriesToDestination counts the driver's all-time deliveries to a
// destination, matched case-insensitively.
func (r *GormDriverRepository) CountDeliveriesToDestination(
	ctx context.Context, driverID kernel.UUID, destination string,
) (int, error) {
	if err := driverID.Validate(); err != nil {
		return 0, err
	}

	var count int64
	if err := r.db.WithContext(ctx).
		Table("deliveries").
		Where("driver_id = ? AND UPPER(destination) = UPPER(?)", driverID.Bytes(), destination).
		Count(&count).Error; err != nil {
		return 0, err
	}

	return int(count), nil
}

// translateUniqueViolation maps a unique index violation on the license
// column to a domain validation error.
func translateUniqueViolation(err error, license string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		return errs.NewValueIsInvalidErrorWithCause("license",
			fmt.Errorf("license %s is already registered", license))
	}
	return err
}
