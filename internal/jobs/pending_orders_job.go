package jobs

import (
	"context"
	"log/slog"

	"taxidispatch/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// PendingOrdersJob periodically logs the dispatch backlog. It reads the same
// counters as the admin dashboard and raises the log level when orders are
// waiting, so an idle dispatch desk shows up in the logs before customers call.
type PendingOrdersJob struct {
	handler queries.GetDashboardStatsQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewPendingOrdersJob creates a new backlog monitoring job.
// Uses GetDashboardStatsQueryHandler to read the counters every minute.
func NewPendingOrdersJob(handler queries.GetDashboardStatsQueryHandler, logger *slog.Logger) *PendingOrdersJob {
	return &PendingOrdersJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "pending_orders_job"),
	}
}

// Start begins the backlog monitoring job to run every minute.
func (j *PendingOrdersJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		stats, err := j.handler.Handle(ctx, queries.NewGetDashboardStatsQuery())
		if err != nil {
			j.logger.ErrorContext(ctx, "Pending orders job failed", "error", err)
			return
		}

		if stats.PendingOrders > 0 {
			j.logger.WarnContext(ctx, "Orders waiting for assignment",
				"pending_orders", stats.PendingOrders,
				"active_drivers", stats.ActiveDrivers,
				"busy_drivers", stats.BusyDrivers,
			)
			return
		}

		j.logger.InfoContext(ctx, "Dispatch backlog clear",
			"total_orders", stats.TotalOrders,
			"active_drivers", stats.ActiveDrivers,
			"busy_drivers", stats.BusyDrivers,
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Pending orders job started (running every minute)")
	return nil
}

// Stop stops the backlog monitoring job.
func (j *PendingOrdersJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Pending orders job stopped")
}
