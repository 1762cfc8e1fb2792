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

// GetDriverByIDQueryHandler retrieves one driver, reading through the cache.
type GetDriverByIDQueryHandler struct {
	db    *gorm.DB
	cache ports.Cache
}

// NewGetDriverByIDQueryHandler creates a handler for single-driver lookups.
func NewGetDriverByIDQueryHandler(db *gorm.DB, cache ports.Cache) GetDriverByIDQueryHandler {
	return GetDriverByIDQueryHandler{db: db, cache: cache}
}

// Handle returns the driver read model, or an object-not-found error.
func (h GetDriverByIDQueryHandler) Handle(
	ctx context.Context,
	query GetDriverByIDQuery,
) (DriverResponse, error) {
	if err := query.Validate(); err != nil {
		return DriverResponse{}, err
	}

	key := cachekeys.Driver(query.DriverID())

	var cached DriverResponse
	if hit, err := h.cache.Get(ctx, key, &cached); err == nil && hit {
		return cached, nil
	}

	var response DriverResponse
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			license
		FROM drivers
		WHERE id = ?
	`, query.DriverID().String()).Row().Scan(&response.ID, &response.Name, &response.License)
	if errors.Is(err, sql.ErrNoRows) {
		return DriverResponse{}, errs.NewObjectNotFoundError("driverID", query.DriverID())
	}
	if err != nil {
		return DriverResponse{}, err
	}

	_ = h.cache.Set(ctx, key, response)
	return response, nil
}
