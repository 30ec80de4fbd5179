// Package jobs provides scheduled background tasks for the dispatch system.
//
// Jobs are cron-based (github.com/robfig/cron/v3, seconds enabled) and are
// started and stopped together through JobManager.
//
// # Available Jobs
//
//  1. CoverageRefreshJob - asks the coverage loop for a recompute on a fixed
//     schedule, so dashboards stay current when change notifications are lost
//  2. EscalationScanJob - evaluates outstanding orders and logs every order that
//     waited past its escalation threshold
//
// # Usage
//
//	jobManager := jobs.NewJobManager(jobs.Schedules{
//		CoverageRefresh: "@every 30s",
//		EscalationScan:  "0 * * * * *",
//	}, orchestrator, escalatedOrdersHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failing scan is logged and retried on the next tick. A job that fails to
// start stops the jobs already running.
package jobs
