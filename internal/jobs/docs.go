// Package jobs provides scheduled background tasks for the dispatch system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
// The dispatch core itself is fully synchronous; the jobs here are read-only
// monitors and never mutate orders or drivers.
//
// # Available Jobs
//
// 1. PendingOrdersJob - Runs every minute and logs the dispatch backlog so
// operators notice when pending orders pile up without assignment.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(getDashboardStatsHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
package jobs
