package jobs

import (
	"context"
	"log/slog"

	"minishop/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// StaleOrderSweepJob manages the scheduled cancellation of abandoned orders.
// Runs every minute to cancel open orders older than the grace period and
// return their reserved stock to the shelf.
type StaleOrderSweepJob struct {
	handler commands.CancelStaleOrdersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewStaleOrderSweepJob creates a new job for sweeping stale orders.
// Uses CancelStaleOrdersCommandHandler to cancel overdue orders every minute.
func NewStaleOrderSweepJob(handler commands.CancelStaleOrdersCommandHandler, logger *slog.Logger) *StaleOrderSweepJob {
	return &StaleOrderSweepJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "stale_order_sweep_job"),
	}
}

// Start begins the stale order sweep job to run every minute.
func (j *StaleOrderSweepJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewCancelStaleOrdersCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Stale order sweep job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale order sweep job started (running every minute)")
	return nil
}

// Stop stops the stale order sweep job.
func (j *StaleOrderSweepJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale order sweep job stopped")
}
