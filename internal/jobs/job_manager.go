package jobs

import (
	"fmt"
	"log/slog"

	"courierquote/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	townDirectoryRefreshJob *TownDirectoryRefreshJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	refreshTownDirectoryHandler commands.RefreshTownDirectoryCommandHandler,
	townDirectoryRefreshSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		townDirectoryRefreshJob: NewTownDirectoryRefreshJob(
			refreshTownDirectoryHandler, townDirectoryRefreshSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.townDirectoryRefreshJob.Start(); err != nil {
		return fmt.Errorf("failed to start town directory refresh job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.townDirectoryRefreshJob.Stop()
}
