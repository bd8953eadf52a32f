// Package jobs provides scheduled background tasks for the quote engine.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic housekeeping the quote flow requires.
//
// # Available Jobs
//
// 1. SessionSweeperJob - Evicts quote selections that were stored but never
// taken, once they outlive the configured TTL.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(sessionStore, maxAge, schedule, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The sweeper is fire-and-forget: a sweep removes whatever qualifies and
// logs only when it actually evicted something. Failed job starts stop any
// already running jobs.
package jobs
