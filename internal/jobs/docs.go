// Package jobs provides scheduled background tasks for the kitchen service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations around the order board.
//
// # Available Jobs
//
// 1. PendingReminderJob - Runs every minute and logs orders that have sat in
// pending longer than the configured threshold
// 2. BoardRefreshJob - Runs every thirty seconds and broadcasts a board-wide
// refresh hint so long-lived event-stream clients reconcile by re-fetching
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required dependencies
//	jobManager := jobs.NewJobManager(orderBoardHandler, hub, reminderAfter, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - The reminder job logs query failures and skips the run
// - A failed job start stops any already running jobs
package jobs
