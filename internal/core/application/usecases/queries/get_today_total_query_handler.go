package queries

import (
	"context"
	"time"

	"fleet/internal/core/application/usecases/cachekeys"
	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/core/ports"

	"gorm.io/gorm"
)

// GetTodayTotalQueryHandler sums the value of a day's deliveries, reading
// through the cache. The cached total is refreshed by TTL expiry and by the
// background refresh job, never invalidated per write.
type GetTodayTotalQueryHandler struct {
	db    *gorm.DB
	cache ports.Cache
}

// NewGetTodayTotalQueryHandler creates a handler for daily total queries.
func NewGetTodayTotalQueryHandler(db *gorm.DB, cache ports.Cache) GetTodayTotalQueryHandler {
	return GetTodayTotalQueryHandler{db: db, cache: cache}
}

// Handle returns the day's total, 0.00 when no deliveries are scheduled.
func (h GetTodayTotalQueryHandler) Handle(
	ctx context.Context,
	query GetTodayTotalQuery,
) (TodayTotalResponse, error) {
	if err := query.Validate(); err != nil {
		return TodayTotalResponse{}, err
	}

	key := cachekeys.TodayTotal(query.Day())

	var cached TodayTotalResponse
	if hit, err := h.cache.Get(ctx, key, &cached); err == nil && hit {
		return cached, nil
	}

	response, err := h.Compute(ctx, query.Day())
	if err != nil {
		return TodayTotalResponse{}, err
	}

	_ = h.cache.Set(ctx, key, response)
	return response, nil
}

// Refresh recomputes the day's total and overwrites its cache entry.
func (h GetTodayTotalQueryHandler) Refresh(ctx context.Context, day time.Time) error {
	response, err := h.Compute(ctx, day)
	if err != nil {
		return err
	}
	return h.cache.Set(ctx, cachekeys.TodayTotal(day), response)
}

// Compute sums the day's deliveries straight from the database, bypassing
// the cache. The refresh job uses it to repopulate the cached total.
func (h GetTodayTotalQueryHandler) Compute(ctx context.Context, day time.Time) (TodayTotalResponse, error) {
	dayStart, dayEnd := kernel.DayWindow(day)

	var total string
	err := h.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(value), 0.00)::text
		FROM deliveries
		WHERE scheduled_at BETWEEN ? AND ?
	`, dayStart, dayEnd).Row().Scan(&total)
	if err != nil {
		return TodayTotalResponse{}, err
	}

	money, err := kernel.NewMoneyFromString(total)
	if err != nil {
		return TodayTotalResponse{}, err
	}

	return TodayTotalResponse{
		Date:  day.Format("2006-01-02"),
		Total: money.String(),
	}, nil
}
