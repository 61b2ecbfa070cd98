package jobs

import (
	"context"
	"log/slog"
	"time"

	"tours/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// RetryNotificationsHandler is implemented by commands.RetryNotificationsCommandHandler.
type RetryNotificationsHandler interface {
	Handle(ctx context.Context, cmd commands.RetryNotificationsCommand) (int, error)
}

// NotificationRetryJob periodically re-schedules failed and stale notification
// deliveries.
type NotificationRetryJob struct {
	handler    RetryNotificationsHandler
	schedule   string
	staleAfter time.Duration
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewNotificationRetryJob runs on schedule, a standard cron spec or a
// descriptor such as "@every 1m".
func NewNotificationRetryJob(
	handler RetryNotificationsHandler,
	schedule string,
	staleAfter time.Duration,
	logger *slog.Logger,
) *NotificationRetryJob {
	return &NotificationRetryJob{
		handler:    handler,
		schedule:   schedule,
		staleAfter: staleAfter,
		cron:       cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:     logger.With("component", "notification_retry_job"),
	}
}

func (j *NotificationRetryJob) Start() error {
	cmd, err := commands.NewRetryNotificationsCommand(j.staleAfter, commands.DefaultRetryBatchSize)
	if err != nil {
		return err
	}

	if _, err = j.cron.AddFunc(j.schedule, func() { j.runOnce(cmd) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Notification retry job started", "schedule", j.schedule)
	return nil
}

func (j *NotificationRetryJob) runOnce(cmd commands.RetryNotificationsCommand) {
	ctx := context.Background()
	if _, err := j.handler.Handle(ctx, cmd); err != nil {
		j.logger.ErrorContext(ctx, "Notification retry job failed", "error", err)
	}
}

// Stop waits for a running retry pass to return.
func (j *NotificationRetryJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Notification retry job stopped")
}
