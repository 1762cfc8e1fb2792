package queries

import (
	"context"
	"fmt"

	"fleet/internal/core/application/usecases/cachekeys"
	"fleet/internal/core/ports"

	"gorm.io/gorm"
)

// GetAllTrucksQueryHandler retrieves truck pages, reading through the cache.
// Page entries are refreshed only by TTL expiry, so a page may lag behind
// recent writes by up to the cache's expiry.
type GetAllTrucksQueryHandler struct {
	db    *gorm.DB
	cache ports.Cache
}

// NewGetAllTrucksQueryHandler creates a handler for truck listing queries.
func NewGetAllTrucksQueryHandler(db *gorm.DB, cache ports.Cache) GetAllTrucksQueryHandler {
	return GetAllTrucksQueryHandler{db: db, cache: cache}
}

// Handle returns one page of truck read models.
func (h GetAllTrucksQueryHandler) Handle(
	ctx context.Context,
	query GetAllTrucksQuery,
) ([]TruckResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	key := cachekeys.TrucksPage(query.Page())

	cached := make([]TruckResponse, 0)
	if hit, err := h.cache.Get(ctx, key, &cached); err == nil && hit {
		return cached, nil
	}

	// The order clause comes from a validated whitelist, never from raw input.
	rows, err := h.db.WithContext(ctx).Raw(fmt.Sprintf(`
		SELECT
			id,
			plate,
			model,
			manufacturing_year,
			driver_id
		FROM trucks
		ORDER BY %s
		LIMIT ? OFFSET ?
	`, query.Page().OrderClause()), query.Page().Size(), query.Page().Offset()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	trucks := make([]TruckResponse, 0)
	for rows.Next() {
		response, scanErr := scanTruckRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		trucks = append(trucks, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	_ = h.cache.Set(ctx, key, trucks)
	return trucks, nil
}
