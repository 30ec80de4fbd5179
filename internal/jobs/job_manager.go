package jobs

import (
	"fmt"
	"log/slog"

	"logistics/internal/core/ports"
)

// Default schedules in cron-with-seconds syntax.
const (
	DefaultCoverageRefreshSchedule = "@every 30s"
	DefaultEscalationScanSchedule  = "0 * * * * *"
)

// Schedules holds the cron specs of the jobs. Empty specs use the defaults.
type Schedules struct {
	CoverageRefresh string
	EscalationScan  string
}

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	coverageRefreshJob *CoverageRefreshJob
	escalationScanJob  *EscalationScanJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	schedules Schedules,
	trigger ports.RefreshTrigger,
	escalations escalatedOrdersHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		coverageRefreshJob: NewCoverageRefreshJob(orDefault(schedules.CoverageRefresh, DefaultCoverageRefreshSchedule), trigger, logger),
		escalationScanJob:  NewEscalationScanJob(orDefault(schedules.EscalationScan, DefaultEscalationScanSchedule), escalations, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.coverageRefreshJob.Start(); err != nil {
		return fmt.Errorf("failed to start coverage refresh job: %w", err)
	}

	if err := jm.escalationScanJob.Start(); err != nil {
		jm.coverageRefreshJob.Stop()
		return fmt.Errorf("failed to start escalation scan job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.escalationScanJob.Stop()
	jm.coverageRefreshJob.Stop()
}

func orDefault(spec, fallback string) string {
	if spec == "" {
		return fallback
	}
	return spec
}
