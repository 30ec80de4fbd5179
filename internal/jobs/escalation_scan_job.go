package jobs

import (
	"context"
	"log/slog"
	"time"

	"logistics/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

const escalationScanTimeout = 30 * time.Second

type escalatedOrdersHandler interface {
	Handle(ctx context.Context, query queries.GetEscalatedOrdersQuery) ([]queries.EscalatedOrder, error)
}

// EscalationScanJob logs outstanding orders that need attention.
type EscalationScanJob struct {
	schedule string
	handler  escalatedOrdersHandler
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewEscalationScanJob creates the scan job.
func NewEscalationScanJob(schedule string, handler escalatedOrdersHandler, logger *slog.Logger) *EscalationScanJob {
	return &EscalationScanJob{
		schedule: schedule,
		handler:  handler,
		cron:     cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:   logger.With("component", "escalation_scan_job"),
	}
}

// Start schedules the scan. Returns the cron parse error for a bad schedule.
func (j *EscalationScanJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), escalationScanTimeout)
		defer cancel()
		_, _ = j.Run(ctx)
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Escalation scan job started", "schedule", j.schedule)
	return nil
}

// Run performs one scan and returns the escalated orders it found.
func (j *EscalationScanJob) Run(ctx context.Context) ([]queries.EscalatedOrder, error) {
	escalated, err := j.handler.Handle(ctx, queries.NewGetEscalatedOrdersQuery(""))
	if err != nil {
		j.logger.ErrorContext(ctx, "Escalation scan failed", "error", err)
		return nil, err
	}

	for _, o := range escalated {
		j.logger.WarnContext(ctx, "Order needs escalation",
			"order_id", o.ID,
			"order_number", o.OrderNumber,
			"status", o.Status,
			"priority", o.Priority,
			"zone_id", o.ZoneID,
			"age_minutes", o.AgeMinutes,
			"reasons", o.Reasons,
		)
	}
	if len(escalated) > 0 {
		j.logger.InfoContext(ctx, "Escalation scan finished", "escalated", len(escalated))
	}
	return escalated, nil
}

// Stop stops the job and waits for a running scan.
func (j *EscalationScanJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Escalation scan job stopped")
}
