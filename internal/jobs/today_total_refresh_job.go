package jobs

import (
	"context"
	"log/slog"
	"time"

	"fleet/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// refreshSchedule recomputes the total every 30 seconds. The reporting
// endpoint reads the cached entry, so the interval bounds how stale the
// figure can get between admissions.
const refreshSchedule = "*/30 * * * * *"

// TodayTotalRefreshJob keeps the cached daily delivery total warm.
// Runs on a fixed schedule, recomputing the total for the current day.
// The cache key carries the calendar date, so the first run after midnight
// naturally starts populating the new day's entry while yesterday's
// expires through its TTL.
type TodayTotalRefreshJob struct {
	handler queries.GetTodayTotalQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewTodayTotalRefreshJob creates a job refreshing the daily total cache entry.
func NewTodayTotalRefreshJob(
	handler queries.GetTodayTotalQueryHandler, logger *slog.Logger,
) *TodayTotalRefreshJob {
	return &TodayTotalRefreshJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "today_total_refresh_job"),
	}
}

// Start begins the refresh job on its schedule.
func (j *TodayTotalRefreshJob) Start() error {
	_, err := j.cron.AddFunc(refreshSchedule, func() {
		ctx := context.Background()

		if err := j.handler.Refresh(ctx, time.Now()); err != nil {
			j.logger.ErrorContext(ctx, "Daily total refresh failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Daily total refresh job started",
		"schedule", refreshSchedule)
	return nil
}

// Stop stops the refresh job.
func (j *TodayTotalRefreshJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Daily total refresh job stopped")
}
