package jobs

import (
	"context"
	"log/slog"

	"coffeeshop/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultReconcileSchedule runs the reconciliation every ten seconds.
const DefaultReconcileSchedule = "*/10 * * * * *"

// ReconciliationJob periodically saves paid orders that could not be stored
// when they were placed.
type ReconciliationJob struct {
	handler  commands.ReconcileUnstoredOrdersCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewReconciliationJob creates the job. schedule is a six field cron
// expression with seconds, or a descriptor such as "@every 30s". An empty
// schedule means DefaultReconcileSchedule.
func NewReconciliationJob(
	handler commands.ReconcileUnstoredOrdersCommandHandler,
	schedule string,
	logger *slog.Logger,
) *ReconciliationJob {
	if schedule == "" {
		schedule = DefaultReconcileSchedule
	}
	return &ReconciliationJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "reconciliation_job"),
	}
}

func (j *ReconciliationJob) Name() string {
	return "reconciliation"
}

func (j *ReconciliationJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.Run); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Reconciliation job started", "schedule", j.schedule)
	return nil
}

// Run makes one reconciliation pass.
func (j *ReconciliationJob) Run() {
	ctx := context.Background()

	report, err := j.handler.Handle(ctx, commands.NewReconcileUnstoredOrdersCommand())
	if err != nil {
		j.logger.ErrorContext(ctx, "Reconciliation job failed", "error", err)
		return
	}
	if report.Stored+report.Requeued+report.GaveUp > 0 {
		j.logger.InfoContext(ctx, "Reconciled unstored orders",
			"stored", report.Stored,
			"requeued", report.Requeued,
			"gave_up", report.GaveUp,
		)
	}
}

// Stop stops scheduling and waits for a running pass to finish.
func (j *ReconciliationJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Reconciliation job stopped")
}
