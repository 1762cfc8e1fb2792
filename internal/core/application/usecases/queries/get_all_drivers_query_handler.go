package queries

import (
	"context"
	"fmt"

	"fleet/internal/core/application/usecases/cachekeys"
	"fleet/internal/core/ports"

	"gorm.io/gorm"
)

// GetAllDriversQueryHandler retrieves driver pages, reading through the cache.
type GetAllDriversQueryHandler struct {
	db    *gorm.DB
	cache ports.Cache
}

// NewGetAllDriversQueryHandler creates a handler for driver listing queries.
func NewGetAllDriversQueryHandler(db *gorm.DB, cache ports.Cache) GetAllDriversQueryHandler {
	return GetAllDriversQueryHandler{db: db, cache: cache}
}

// Handle returns one page of driver read models.
func (h GetAllDriversQueryHandler) Handle(
	ctx context.Context,
	query GetAllDriversQuery,
) ([]DriverResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	key := cachekeys.DriversPage(query.Page())

	cached := make([]DriverResponse, 0)
	if hit, err := h.cache.Get(ctx, key, &cached); err == nil && hit {
		return cached, nil
	}

	rows, err := h.db.WithContext(ctx).Raw(fmt.Sprintf(`
		SELECT
			id,
			name,
			license
		FROM drivers
		ORDER BY %s
		LIMIT ? OFFSET ?
	`, query.Page().OrderClause()), query.Page().Size(), query.Page().Offset()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	drivers := make([]DriverResponse, 0)
	for rows.Next() {
		var response DriverResponse
		if scanErr := rows.Scan(&response.ID, &response.Name, &response.License); scanErr != nil {
			return nil, scanErr
		}
		drivers = append(drivers, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	_ = h.cache.Set(ctx, key, drivers)
	return drivers, nil
}
