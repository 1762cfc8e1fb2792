package queries

import (
	"context"
	"database/sql"
	"errors"

	"fleet/internal/core/application/usecases/cachekeys"
	"fleet/internal/core/ports"
	"fleet/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetDeliveryByIDQueryHandler retrieves one delivery, reading through the cache.
type GetDeliveryByIDQueryHandler struct {
	db    *gorm.DB
	cache ports.Cache
}

// NewGetDeliveryByIDQueryHandler creates a handler for single-delivery lookups.
func NewGetDeliveryByIDQueryHandler(db *gorm.DB, cache ports.Cache) GetDeliveryByIDQueryHandler {
	return GetDeliveryByIDQueryHandler{db: db, cache: cache}
}

// Handle returns the delivery read model, or an object-not-found error.
func (h GetDeliveryByIDQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryByIDQuery,
) (DeliveryResponse, error) {
	if err := query.Validate(); err != nil {
		return DeliveryResponse{}, err
	}

	key := cachekeys.Delivery(query.DeliveryID())

	var cached DeliveryResponse
	if hit, err := h.cache.Get(ctx, key, &cached); err == nil && hit {
		return cached, nil
	}

	row := h.db.WithContext(ctx).Raw(deliverySelect+`
		WHERE id = ?
	`, query.DeliveryID().String()).Row()

	response, err := scanDeliveryRow(row)
	if errors.Is(err, sql.ErrNoRows) {
		return DeliveryResponse{}, errs.NewObjectNotFoundError("deliveryID", query.DeliveryID())
	}
	if err != nil {
		return DeliveryResponse{}, err
	}

	_ = h.cache.Set(ctx, key, response)
	return response, nil
}

// deliverySelect casts value to text so the amount round-trips exactly
// instead of passing through a float.
const deliverySelect = `
		SELECT
			id,
			destination,
			scheduled_at,
			cargo_type,
			value::text,
			valuable,
			dangerous,
			insured,
			truck_id,
			driver_id
		FROM deliveries
`

func scanDeliveryRow(row rowScanner) (DeliveryResponse, error) {
	var response DeliveryResponse
	if err := row.Scan(
		&response.ID,
		&response.Destination,
		&response.ScheduledAt,
		&response.CargoType,
		&response.Value,
		&response.Valuable,
		&response.Dangerous,
		&response.Insured,
		&response.TruckID,
		&response.DriverID,
	); err != nil {
		return DeliveryResponse{}, err
	}
	return response, nil
}
