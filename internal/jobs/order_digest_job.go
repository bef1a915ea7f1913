package jobs

import (
	"context"
	"log/slog"

	"foodorder/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// OrderDigestJob periodically tallies orders per status and logs the counts.
type OrderDigestJob struct {
	handler queries.GetAllOrdersQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOrderDigestJob creates a job that logs an order status digest every
// minute.
func NewOrderDigestJob(handler queries.GetAllOrdersQueryHandler, logger *slog.Logger) *OrderDigestJob {
	return &OrderDigestJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "order_digest_job"),
	}
}

// Start begins the digest job, firing at the top of every minute.
func (j *OrderDigestJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		orders, err := j.handler.Handle(ctx, queries.NewGetAllOrdersQuery())
		if err != nil {
			j.logger.ErrorContext(ctx, "Order digest job failed", "error", err)
			return
		}

		counts := make(map[string]int)
		for _, o := range orders {
			counts[o.Status]++
		}
		j.logger.InfoContext(ctx, "Order digest", "total", len(orders), "by_status", counts)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order digest job started (running every minute)")
	return nil
}

// Stop stops the digest job.
func (j *OrderDigestJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order digest job stopped")
}
