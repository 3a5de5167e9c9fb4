// Package jobs contains the scheduled background work of the application.
package jobs

import (
	"context"
	"log/slog"
	"time"

	"sendit/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// PendingReminderJob periodically nudges customers whose deliveries have been
// waiting in Pending beyond the configured age.
type PendingReminderJob struct {
	handler   commands.RemindPendingDeliveriesCommandHandler
	schedule  string
	olderThan time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewPendingReminderJob creates the reminder job. The schedule is a cron
// expression with a seconds field, matching the scheduler configuration.
func NewPendingReminderJob(
	handler commands.RemindPendingDeliveriesCommandHandler,
	schedule string,
	olderThan time.Duration,
	logger *slog.Logger,
) *PendingReminderJob {
	return &PendingReminderJob{
		handler:   handler,
		schedule:  schedule,
		olderThan: olderThan,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "pending_reminder_job"),
	}
}

// Start schedules the reminder job.
func (j *PendingReminderJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		cmd, err := commands.NewRemindPendingDeliveriesCommand(j.olderThan)
		if err != nil {
			j.logger.ErrorContext(ctx, "Pending reminder job misconfigured", "error", err)
			return
		}

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Pending reminder job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Pending reminder job started", "schedule", j.schedule)
	return nil
}

// Stop stops the reminder job.
func (j *PendingReminderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Pending reminder job stopped")
}
