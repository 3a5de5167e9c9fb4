package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"sendit/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	pendingReminderJob *PendingReminderJob
}

// NewJobManager creates a job manager wired to the given command handlers.
func NewJobManager(
	remindHandler commands.RemindPendingDeliveriesCommandHandler,
	reminderSchedule string,
	reminderAge time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		pendingReminderJob: NewPendingReminderJob(remindHandler, reminderSchedule, reminderAge, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.pendingReminderJob.Start(); err != nil {
		return fmt.Errorf("failed to start pending reminder job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.pendingReminderJob.Stop()
}
