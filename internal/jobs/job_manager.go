package jobs

import (
	"fmt"
	"log/slog"

	"fleet/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	todayTotalRefreshJob *TodayTotalRefreshJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	getTodayTotalHandler queries.GetTodayTotalQueryHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		todayTotalRefreshJob: NewTodayTotalRefreshJob(getTodayTotalHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.todayTotalRefreshJob.Start(); err != nil {
		return fmt.Errorf("failed to start daily total refresh job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.todayTotalRefreshJob.Stop()
}
