// Package jobs provides scheduled background tasks for the shop.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required by the order lifecycle.
//
// # Available Jobs
//
// 1. StaleOrderSweepJob - Runs every minute to cancel open orders that have
// outlived the configured grace period and to return their stock to the shelf.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(cancelStaleOrdersHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The sweep job uses the six-field cron expression "0 * * * * *",
// running once per minute at the top of the second. Orders are only cancelled after the grace period
// configured through ORDER_GRACE_PERIOD, so a minute of scheduling slack is
// acceptable.
//
// # Error Handling
//
// Sweep failures are logged and retried on the next tick; a failed run never
// stops the schedule.
package jobs
