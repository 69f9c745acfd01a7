package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/core/application/usecases/queries"
	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	pendingReminderJob *PendingReminderJob
	boardRefreshJob    *BoardRefreshJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	orderBoardHandler queries.GetOrderBoardQueryHandler,
	notifier ports.ChangeNotifier,
	pendingReminderAfter time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		pendingReminderJob: NewPendingReminderJob(orderBoardHandler, pendingReminderAfter, logger),
		boardRefreshJob:    NewBoardRefreshJob(notifier, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.pendingReminderJob.Start(); err != nil {
		return fmt.Errorf("failed to start pending reminder job: %w", err)
	}

	if err := jm.boardRefreshJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.pendingReminderJob.Stop()
		return fmt.Errorf("failed to start board refresh job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.boardRefreshJob.Stop()
	jm.pendingReminderJob.Stop()
}
