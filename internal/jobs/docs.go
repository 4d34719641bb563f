// Package jobs provides scheduled background tasks for the quote service.
//
// Jobs are cron-based, using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// TownDirectoryRefreshJob reloads the town table from its file so that
// classification picks up edits without a restart. It runs on TOWN_DATA_REFRESH,
// "@every 5m" by default.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(refreshHandler, "@every 5m", logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed reload is logged and the directory keeps serving the last table
// it loaded successfully.
package jobs
