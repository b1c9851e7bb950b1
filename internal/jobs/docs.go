// Package jobs provides scheduled background tasks for the dispatch system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the dispatch service.
//
// # Available Jobs
//
// 1. RequestIntakeJob - Periodically generates new pending delivery requests
// from the fixed service-area address pool, simulating incoming orders.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(createRequestHandler, schedule, logger)
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
// The intake job's cron expression comes from configuration (INTAKE_SCHEDULE),
// so deployments can tune how fast synthetic demand arrives.
//
// # Error Handling
//
// Intake failures are logged and the next tick retries; a single bad tick
// never stops the schedule.
package jobs
