// Package jobs provides scheduled background tasks for the fleet service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the fleet service.
//
// # Available Jobs
//
// 1. TodayTotalRefreshJob - Runs every 30 seconds to recompute the current day's
// delivery value total and overwrite its cache entry
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(getTodayTotalHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The refresh job uses the cron expression "*/30 * * * * *", running twice a
// minute. The cached total therefore lags the database by at most the refresh
// interval plus one query.
//
// # Error Handling
//
// Refresh failures are logged and retried on the next tick; the reporting
// endpoint falls back to computing the total on demand when the cache entry
// is missing.
package jobs
