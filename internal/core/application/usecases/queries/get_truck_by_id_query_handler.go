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

// GetTruckByIDQueryHandler retrieves one truck, reading through the cache.
// The truck's cache entry is kept exact by the write side, so a hit is as
// fresh as the database row.
type GetTruckByIDQueryHandler struct {
	db    *gorm.DB
	cache ports.Cache
}

// NewGetTruckByIDQueryHandler creates a handler for single-truck lookups.
func NewGetTruckByIDQueryHandler(db *gorm.DB, cache ports.Cache) GetTruckByIDQueryHandler {
	return GetTruckByIDQueryHandler{db: db, cache: cache}
}

// Handle returns the truck read model, or an object-not-found error.
func (h GetTruckByIDQueryHandler) Handle(
	ctx context.Context,
	query GetTruckByIDQuery,
) (TruckResponse, error) {
	if err := query.Validate(); err != nil {
		return TruckResponse{}, err
	}

	key := cachekeys.Truck(query.TruckID())

	var cached TruckResponse
	if hit, err := h.cache.Get(ctx, key, &cached); err == nil && hit {
		return cached, nil
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			plate,
			model,
			manufacturing_year,
			driver_id
		FROM trucks
		WHERE id = ?
	`, query.TruckID().String()).Row()

	response, err := scanTruckRow(row)
	if errors.Is(err, sql.ErrNoRows) {
		return TruckResponse{}, errs.NewObjectNotFoundError("truckID", query.TruckID())
	}
	if err != nil {
		return TruckResponse{}, err
	}

	_ = h.cache.Set(ctx, key, response)
	return response, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTruckRow(row rowScanner) (TruckResponse, error) {
	var response TruckResponse
	var year sql.NullInt64
	var driverID sql.NullString

	if err := row.Scan(
		&response.ID,
		&response.Plate,
		&response.Model,
		&year,
		&driverID,
	); err != nil {
		return TruckResponse{}, err
	}

	if year.Valid {
		y := int(year.Int64)
		response.ManufacturingYear = &y
	}
	if driverID.Valid {
		response.DriverID = &driverID.String
	}
	return response, nil
}
