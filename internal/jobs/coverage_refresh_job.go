package jobs

import (
	"context"
	"log/slog"

	"logistics/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// CoverageRefreshJob periodically triggers a coverage recompute.
type CoverageRefreshJob struct {
	schedule string
	trigger  ports.RefreshTrigger
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewCoverageRefreshJob creates the poll job.
func NewCoverageRefreshJob(schedule string, trigger ports.RefreshTrigger, logger *slog.Logger) *CoverageRefreshJob {
	return &CoverageRefreshJob{
		schedule: schedule,
		trigger:  trigger,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "coverage_refresh_job"),
	}
}

// Start schedules the poll. Returns the cron parse error for a bad schedule.
func (j *CoverageRefreshJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.Run); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Coverage refresh job started", "schedule", j.schedule)
	return nil
}

// Run performs one tick.
func (j *CoverageRefreshJob) Run() {
	j.trigger.Trigger(ports.RefreshPoll)
}

// Stop stops the job and waits for a running tick.
func (j *CoverageRefreshJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Coverage refresh job stopped")
}
