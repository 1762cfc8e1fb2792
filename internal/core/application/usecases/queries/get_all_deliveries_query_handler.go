package queries

import (
	"context"
	"fmt"

	"fleet/internal/core/application/usecases/cachekeys"
	"fleet/internal/core/ports"

	"gorm.io/gorm"
)

// GetAllDeliveriesQueryHandler retrieves delivery pages, reading through the cache.
type GetAllDeliveriesQueryHandler struct {
	db    *gorm.DB
	cache ports.Cache
}

// NewGetAllDeliveriesQueryHandler creates a handler for delivery listing queries.
func NewGetAllDeliveriesQueryHandler(db *gorm.DB, cache ports.Cache) GetAllDeliveriesQueryHandler {
	return GetAllDeliveriesQueryHandler{db: db, cache: cache}
}

// Handle returns one page of delivery read models.
func (h GetAllDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetAllDeliveriesQuery,
) ([]DeliveryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	key := cachekeys.DeliveriesPage(query.Page())

	cached := make([]DeliveryResponse, 0)
	if hit, err := h.cache.Get(ctx, key, &cached); err == nil && hit {
		return cached, nil
	}

	rows, err := h.db.WithContext(ctx).Raw(fmt.Sprintf(`%s
		ORDER BY %s
		LIMIT ? OFFSET ?
	`, deliverySelect, query.Page().OrderClause()), query.Page().Size(), query.Page().Offset()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	deliveries := make([]DeliveryResponse, 0)
	for rows.Next() {
		response, scanErr := scanDeliveryRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		deliveries = append(deliveries, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	_ = h.cache.Set(ctx, key, deliveries)
	return deliveries, nil
}
