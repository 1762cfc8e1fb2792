package deliveryrepo

import (
	"context"
	"errors"
	"time"

	"fleet/internal/core/domain/model/delivery"
	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormDeliveryRepository implements DeliveryRepository using GORM.
type GormDeliveryRepository struct {
	db *gorm.DB
}

// NewGormDeliveryRepository creates a new GORM delivery repository.
func NewGormDeliveryRepository(db *gorm.DB) *GormDeliveryRepository {
	return &GormDeliveryRepository{db: db}
}

// Add saves a new delivery to the database.
func (r *GormDeliveryRepository) Add(ctx context.Context, aggregate *delivery.Delivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get retrieves a delivery by ID.
func (r *GormDeliveryRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DeliveryDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("delivery", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves a page of deliveries ordered by the page request.
func (r *GormDeliveryRepository) GetAll(
	ctx context.Context, page kernel.PageRequest,
) ([]*delivery.Delivery, error) {
	if err := page.Validate(); err != nil {
		return nil, err
	}

	var dtos []DeliveryDTO
	if err := r.db.WithContext(ctx).
		Order(page.OrderClause()).
		Limit(page.Size()).
		Offset(page.Offset()).
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetByPeriod retrieves a page of deliveries scheduled within [from, to].
func (r *GormDeliveryRepository) GetByPeriod(
	ctx context.Context, from, to time.Time, page kernel.PageRequest,
) ([]*delivery.Delivery, error) {
	if err := page.Validate(); err != nil {
		return nil, err
	}

	var dtos []DeliveryDTO
	if err := r.db.WithContext(ctx).
		Where("scheduled_at BETWEEN ? AND ?", from, to).
		Order(page.OrderClause()).
		Limit(page.Size()).
		Offset(page.Offset()).
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// SumValueForDay sums the value of deliveries scheduled on the given calendar
// day, returning 0.00 when none match.
func (r *GormDeliveryRepository) SumValueForDay(ctx context.Context, day time.Time) (kernel.Money, error) {
	dayStart, dayEnd := kernel.DayWindow(day)

	var total decimal.Decimal
	err := r.db.WithContext(ctx).
		Model(&DeliveryDTO{}).
		Select("COALESCE(SUM(value), 0.00)").
		Where("scheduled_at BETWEEN ? AND ?", dayStart, dayEnd).
		Scan(&total).Error
	if err != nil {
		return kernel.Money{}, err
	}

	return kernel.NewMoneyFromDecimal(total)
}

// GetIDsForTruck lists the ids of the truck's deliveries.
func (r *GormDeliveryRepository) GetIDsForTruck(ctx context.Context, truckID kernel.UUID) ([]kernel.UUID, error) {
	return r.ownedIDs(ctx, "truck_id = ?", truckID)
}

// GetIDsForDriver lists the ids of the driver's deliveries.
func (r *GormDeliveryRepository) GetIDsForDriver(ctx context.Context, driverID kernel.UUID) ([]kernel.UUID, error) {
	return r.ownedIDs(ctx, "driver_id = ?", driverID)
}

func (r *GormDeliveryRepository) ownedIDs(
	ctx context.Context, cond string, owner kernel.UUID,
) ([]kernel.UUID, error) {
	if err := owner.Validate(); err != nil {
		return nil, err
	}

	var raw []uuid.UUID
	if err := r.db.WithContext(ctx).
		Model(&DeliveryDTO{}).
		Where(cond, owner.Bytes()).
		Pluck("id", &raw).Error; err != nil {
		return nil, err
	}

	ids := make([]kernel.UUID, 0, len(raw))
	for _, b := range raw {
		id, err := kernel.UUIDFromBytes(b[:])
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func toDomainSlice(dtos []DeliveryDTO) ([]*delivery.Delivery, error) {
	deliveries := make([]*delivery.Delivery, 0, len(dtos))
	for _, dto := range dtos {
		d, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		deliveries = append(deliveries, d)
	}
	return deliveries, nil
}
