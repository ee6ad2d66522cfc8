package jobs

import (
	"context"
	"log/slog"

	"restaurant/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// DefaultBacklogSchedule fires at the start of every minute.
const DefaultBacklogSchedule = "0 * * * * *"

// OrderCounter is satisfied by queries.CountOrdersByStatusQueryHandler.
type OrderCounter interface {
	Handle(ctx context.Context, query queries.CountOrdersByStatusQuery) (queries.CountOrdersByStatusQueryResponse, error)
}

// OrderBacklogJob periodically logs how many orders sit in each status.
type OrderBacklogJob struct {
	counter  OrderCounter
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewOrderBacklogJob creates the job. An empty schedule falls back to
// DefaultBacklogSchedule; schedules use the six-field, seconds-first syntax.
func NewOrderBacklogJob(counter OrderCounter, schedule string, logger *slog.Logger) *OrderBacklogJob {
	if schedule == "" {
		schedule = DefaultBacklogSchedule
	}

	return &OrderBacklogJob{
		counter:  counter,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "order_backlog_job"),
	}
}

// Start registers the report on the schedule and starts the scheduler.
func (j *OrderBacklogJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Report(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order backlog job started", "schedule", j.schedule)
	return nil
}

// Report runs one count and logs it.
func (j *OrderBacklogJob) Report(ctx context.Context) {
	resp, err := j.counter.Handle(ctx, queries.NewCountOrdersByStatusQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Order backlog job failed", "error", err)
		return
	}

	attrs := make([]any, 0, 2*len(resp.Counts)+4)
	for status, count := range resp.Counts {
		attrs = append(attrs, status.String(), count)
	}
	attrs = append(attrs, "total", resp.Total(), "open", resp.Open())

	j.logger.InfoContext(ctx, "order backlog", attrs...)
}

// Stop stops the scheduler and waits for a running report to finish.
func (j *OrderBacklogJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Order backlog job stopped")
}
