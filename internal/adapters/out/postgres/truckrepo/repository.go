package truckrepo

import (
	"context"
	"errors"
	"time"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/core/domain/model/truck"
	"fleet/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormTruckRepository implements TruckRepository using GORM.
type GormTruckRepository struct {
	db *gorm.DB
}

// NewGormTruckRepository creates a new GORM truck repository.
func NewGormTruckRepository(db *gorm.DB) *GormTruckRepository {
	return &GormTruckRepository{db: db}
}

// Add saves a new truck to the database.
func (r *GormTruckRepository) Add(ctx context.Context, aggregate *truck.Truck) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update saves an existing truck to the database.
func (r *GormTruckRepository) Update(ctx context.Context, aggregate *truck.Truck) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Save(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

// Get retrieves a truck by ID.
func (r *GormTruckRepository) Get(ctx context.Context, id kernel.UUID) (*truck.Truck, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TruckDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("truck", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves a page of trucks ordered by the page request.
func (r *GormTruckRepository) GetAll(ctx context.Context, page kernel.PageRequest) ([]*truck.Truck, error) {
	if err := page.Validate(); err != nil {
		return nil, err
	}

	var dtos []TruckDTO
	if err := r.db.WithContext(ctx).
		Order(page.OrderClause()).
		Limit(page.Size()).
		Offset(page.Offset()).
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	trucks := make([]*truck.Truck, 0, len(dtos))
	for _, dto := range dtos {
		t, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		trucks = append(trucks, t)
	}

	return trucks, nil
}

// Exists reports whether a truck with the given id is stored.
func (r *GormTruckRepository) Exists(ctx context.Context, id kernel.UUID) (bool, error) {
	if err := id.Validate(); err != nil {
		return false, err
	}

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&TruckDTO{}).
		Where("id = ?", id.Bytes()).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

// Delete removes the truck. Its deliveries go with it through the cascading
// foreign key.
func (r *GormTruckRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&TruckDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("truck", id.String())
	}

	return nil
}

// CountDeliveriesInPeriod counts the truck's deliveries scheduled within
// [from, to], inclusive.
func (r *GormTruckRepository) CountDeliveriesInPeriod(
	ctx context.Context, truckID kernel.UUID, from, to time.Time,
) (int, error) {
	if err := truckID.Validate(); err != nil {
		return 0, err
	}

	var count int64
	if err := r.db.WithContext(ctx).
		Table("deliveries").
		Where("truck_id = ? AND scheduled_at BETWEEN ? AND ?", truckID.Bytes(), from, to).
		Count(&count).Error; err != nil {
		return 0, err
	}

	return int(count), nil
}
