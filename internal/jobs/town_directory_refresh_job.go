package jobs

import (
	"context"
	"log/slog"

	"courierquote/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultTownDirectoryRefreshSchedule is used when no schedule is configured.
const DefaultTownDirectoryRefreshSchedule = "@every 5m"

// TownDirectoryRefreshJob reloads the town directory on a cron schedule.
type TownDirectoryRefreshJob struct {
	handler  commands.RefreshTownDirectoryCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewTownDirectoryRefreshJob creates the job. schedule is a standard cron
// expression or a descriptor such as "@every 5m"; empty means the default.
func NewTownDirectoryRefreshJob(
	handler commands.RefreshTownDirectoryCommandHandler,
	schedule string,
	logger *slog.Logger,
) *TownDirectoryRefreshJob {
	if schedule == "" {
		schedule = DefaultTownDirectoryRefreshSchedule
	}
	return &TownDirectoryRefreshJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(),
		logger:   logger.With("component", "town_directory_refresh_job"),
	}
}

// Run reloads the directory once. A failure is logged and the previous
// table stays in use.
func (j *TownDirectoryRefreshJob) Run(ctx context.Context) error {
	if err := j.handler.Handle(ctx, commands.NewRefreshTownDirectoryCommand()); err != nil {
		j.logger.ErrorContext(ctx, "Town directory refresh failed", "error", err)
		return err
	}
	return nil
}

// Start schedules Run. It fails only on an invalid schedule.
func (j *TownDirectoryRefreshJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		_ = j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Town directory refresh job started", "schedule", j.schedule)
	return nil
}

// Stop stops the schedule and waits for a running refresh to finish.
func (j *TownDirectoryRefreshJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Town directory refresh job stopped")
}
