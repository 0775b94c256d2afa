package worker

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/treadworks/orderflow/internal/domain/model"
	"github.com/treadworks/orderflow/internal/notify"
)

// WorkflowFacade exposes the subset of application functionality required by
// the reminder job.
type WorkflowFacade interface {
	PendingOrdersBefore(ctx context.Context, cutoff time.Time) ([]model.Order, error)
	RemindCounterpart(ctx context.Context, order *model.Order) (notify.Delivery, error)
}

// ReminderJob periodically re-notifies approvers about orders that stayed
// pending past a configured age. Failures are logged and never fatal.
type ReminderJob struct {
	facade WorkflowFacade
	maxAge time.Duration
	spec   string
	cron   *cron.Cron
	logger *slog.Logger
	now    func() time.Time
}

// NewReminderJob constructs the reminder job with a cron schedule spec.
func NewReminderJob(facade WorkflowFacade, spec string, maxAge time.Duration, logger *slog.Logger) *ReminderJob {
	return &ReminderJob{
		facade: facade,
		maxAge: maxAge,
		spec:   spec,
		cron:   cron.New(),
		logger: logger.With("component", "reminder_job"),
		now:    time.Now,
	}
}

// Start schedules the job.
func (j *ReminderJob) Start() error {
	_, err := j.cron.AddFunc(j.spec, func() {
		j.runOnce(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("reminder job started", slog.String("schedule", j.spec), slog.Duration("max_age", j.maxAge))
	return nil
}

// Stop halts the schedule; an in-flight run completes.
func (j *ReminderJob) Stop() {
	j.cron.Stop()
	j.logger.Info("reminder job stopped")
}

func (j *ReminderJob) runOnce(ctx context.Context) {
	cutoff := j.now().Add(-j.maxAge)
	orders, err := j.facade.PendingOrdersBefore(ctx, cutoff)
	if err != nil {
		j.logger.Error("list pending orders failed", slog.String("error", err.Error()))
		return
	}

	for _, order := range orders {
		delivery, err := j.facade.RemindCounterpart(ctx, &order)
		if err != nil {
			j.logger.Error("reminder failed",
				slog.Int64("order", order.ID),
				slog.String("error", err.Error()),
			)
			continue
		}
		switch delivery.State {
		case notify.StateSent:
			j.logger.Info("reminder sent",
				slog.Int64("order", order.ID),
				slog.String("recipient", delivery.Recipient),
			)
		case notify.StateNoRecipient:
			j.logger.Warn("reminder skipped", slog.Int64("order", order.ID), slog.String("reason", delivery.Reason))
		case notify.StateFailed:
			j.logger.Error("reminder delivery failed", slog.Int64("order", order.ID), slog.String("reason", delivery.Reason))
		}
	}
}
