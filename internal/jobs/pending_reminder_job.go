package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/core/application/usecases/queries"
	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/core/domain/model/order"

	"github.com/robfig/cron/v3"
)

// PendingReminderJob watches the kitchen board for orders that sit in pending
// longer than the configured threshold and logs a reminder once a minute.
// Nobody acts on the log automatically; it exists so an unattended board does
// not silently starve orders.
type PendingReminderJob struct {
	handler   queries.GetOrderBoardQueryHandler
	threshold time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewPendingReminderJob creates a reminder job. Orders older than threshold
// that are still pending get logged on every run.
func NewPendingReminderJob(handler queries.GetOrderBoardQueryHandler,
	threshold time.Duration, logger *slog.Logger) *PendingReminderJob {
	return &PendingReminderJob{
		handler:   handler,
		threshold: threshold,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "pending_reminder_job"),
	}
}

// Start begins the reminder job to run once a minute.
func (j *PendingReminderJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		board, err := j.handler.Handle(ctx, queries.NewGetOrderBoardQuery())
		if err != nil {
			j.logger.ErrorContext(ctx, "Pending reminder job failed", "error", err)
			return
		}

		cutoff := time.Now().UTC().Add(-j.threshold)

		for _, card := range board {
			if card.Status != order.Pending.String() || card.CreatedAt.After(cutoff) {
				continue
			}

			j.logger.WarnContext(ctx, "Order has been pending for too long",
				"order_id", card.ID,
				"sequence", card.Sequence,
				"username", card.Username,
				"pending_for", time.Since(card.CreatedAt).Round(time.Second).String(),
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Pending reminder job started (running every minute)",
		"threshold", j.threshold.String())
	return nil
}

// Stop stops the reminder job.
func (j *PendingReminderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Pending reminder job stopped")
}
