package jobs

import (
	"context"
	"log/slog"

	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// BoardRefreshJob periodically broadcasts a board-wide refresh hint. Event
// delivery is lossy for slow subscribers, so long-lived clients rely on this
// beat to reconcile by re-fetching even when they missed a change.
type BoardRefreshJob struct {
	notifier ports.ChangeNotifier
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewBoardRefreshJob creates a refresh job publishing through the notifier.
func NewBoardRefreshJob(notifier ports.ChangeNotifier, logger *slog.Logger) *BoardRefreshJob {
	return &BoardRefreshJob{
		notifier: notifier,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "board_refresh_job"),
	}
}

// Start begins the refresh job to run every thirty seconds.
func (j *BoardRefreshJob) Start() error {
	_, err := j.cron.AddFunc("*/30 * * * * *", func() {
		j.notifier.GeneralChanged()
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Board refresh job started (running every thirty seconds)")
	return nil
}

// Stop stops the refresh job.
func (j *BoardRefreshJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Board refresh job stopped")
}
