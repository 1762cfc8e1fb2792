package queries

import (
	"context"
	"fmt"

	"fleet/internal/core/application/usecases/cachekeys"
	"fleet/internal/core/ports"

	"gorm.io/gorm"
)

// GetDeliveriesByPeriodQueryHandler retrieves period-bounded delivery pages,
// reading through the cache.
type GetDeliveriesByPeriodQueryHandler struct {
	db    *gorm.DB
	cache ports.Cache
}

// NewGetDeliveriesByPeriodQueryHandler creates a handler for period queries.
func NewGetDeliveriesByPeriodQueryHandler(db *gorm.DB, cache ports.Cache) GetDeliveriesByPeriodQueryHandler {
	return GetDeliveriesByPeriodQueryHandler{db: db, cache: cache}
}

// Handle returns one page of deliveries scheduled within the query's range.
func (h GetDeliveriesByPeriodQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveriesByPeriodQuery,
) ([]DeliveryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	key := cachekeys.DeliveriesPeriodPage(query.From(), query.To(), query.Page())

	cached := make([]DeliveryResponse, 0)
	if hit, err := h.cache.Get(ctx, key, &cached); err == nil && hit {
		return cached, nil
	}

	rows, err := h.db.WithContext(ctx).Raw(fmt.Sprintf(`%s
		WHERE scheduled_at BETWEEN ? AND ?
		ORDER BY %s
		LIMIT ? OFFSET ?
	`, deliverySelect, query.Page().OrderClause()),
		query.From(), query.To(), query.Page().Size(), query.Page().Offset()).Rows()
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
