package jobs

import (
	"context"
	"log/slog"
	"time"

	"dispatch/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// StalePendingJob periodically reports delivery requests that have stayed
// pending past the configured threshold. The job only observes; it never
// changes request status.
type StalePendingJob struct {
	handler   queries.GetStalePendingRequestsQueryHandler
	threshold time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewStalePendingJob creates a job that logs pending requests older than the
// given threshold. Runs once per minute.
func NewStalePendingJob(
	handler queries.GetStalePendingRequestsQueryHandler,
	threshold time.Duration,
	logger *slog.Logger,
) *StalePendingJob {
	return &StalePendingJob{
		handler:   handler,
		threshold: threshold,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "stale_pending_job"),
	}
}

// Start begins the stale pending job to run every minute.
func (j *StalePendingJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		query, queryErr := queries.NewGetStalePendingRequestsQuery(time.Now().UTC().Add(-j.threshold))
		if queryErr != nil {
			j.logger.ErrorContext(ctx, "Stale pending job failed to build query", "error", queryErr)
			return
		}

		stale, handleErr := j.handler.Handle(ctx, query)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Stale pending job failed", "error", handleErr)
			return
		}

		for _, request := range stale {
			j.logger.WarnContext(ctx, "Delivery request pending past threshold",
				"delivery_id", request.DeliveryID,
				"order_id", request.OrderID,
				"pending_since", request.CreatedAt,
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale pending job started (running every minute)")
	return nil
}

// Stop stops the stale pending job.
func (j *StalePendingJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale pending job stopped")
}
