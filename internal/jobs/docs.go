// Package jobs provides scheduled background tasks for the food delivery system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for order fulfillment.
//
// # Available Jobs
//
// 1. AgentAssignmentJob - Runs every 5 seconds to assign the oldest placed order to an available delivery agent
// 2. StateFlushJob - Runs every 30 seconds to retry writing in-memory state after a failed save
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required dependencies
//	jobManager := jobs.NewJobManager(assignAgentHandler, store, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - Assignment job ignores expected business errors (no placed orders, no available agents)
// - Flush job only acts while the store reports unsaved changes
// - Failed job starts will stop any already running jobs
package jobs
