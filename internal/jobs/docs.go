// Package jobs provides scheduled background tasks for the coffee shop.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// ReconciliationJob drains the recovery retry queue: paid orders whose first
// save failed are saved again, and orders that keep failing are handed to the
// queue's fallback strategy. It is only scheduled when RECOVERY=retry.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(
//		jobs.NewReconciliationJob(reconcileHandler, jobs.DefaultReconcileSchedule, logger),
//	)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules are six field cron expressions with a leading seconds field, so
// "*/10 * * * * *" runs every ten seconds. Descriptors like "@every 1m" work too.
//
// # Error Handling
//
// A failed pass is logged and retried on the next tick. Failed job starts
// stop any already running jobs.
package jobs
