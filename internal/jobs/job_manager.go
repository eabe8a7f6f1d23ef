// Package jobs provides scheduled background tasks for the export engine,
// implemented with github.com/robfig/cron/v3. The only job today is the
// departure watch, which flags locked manifests whose scheduled departure
// time has passed without a recorded departure.
package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	departureWatchJob *DepartureWatchJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(manifests manifestSource, logger *slog.Logger) *JobManager {
	return &JobManager{
		departureWatchJob: NewDepartureWatchJob(manifests, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.departureWatchJob.Start(); err != nil {
		return fmt.Errorf("failed to start departure watch job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.departureWatchJob.Stop()
}
