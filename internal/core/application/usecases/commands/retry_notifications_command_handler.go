package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

type RetryNotificationsCommandHandler struct {
	uowFactory  DeliveryUoWFactory
	scheduler   DeliveryScheduler
	maxAttempts int
	now         func() time.Time
	logger      *slog.Logger
}

func NewRetryNotificationsCommandHandler(
	uowFactory DeliveryUoWFactory,
	scheduler DeliveryScheduler,
	maxAttempts int,
	logger *slog.Logger,
) RetryNotificationsCommandHandler {
	return RetryNotificationsCommandHandler{
		uowFactory:  uowFactory,
		scheduler:   scheduler,
		maxAttempts: maxAttempts,
		now:         time.Now,
		logger:      logger.With("component", "retry_notifications"),
	}
}

// Handle schedules one batch and returns how many deliveries were handed to
// the scheduler.
func (h RetryNotificationsCommandHandler) Handle(ctx context.Context, cmd RetryNotificationsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	staleBefore := h.now().Add(-cmd.StaleAfter())
	deliveries, err := uow.DeliveryRepository().ListRetryable(ctx, h.maxAttempts, staleBefore, cmd.BatchSize())
	if err != nil {
		return 0, fmt.Errorf("list retryable deliveries: %w", err)
	}
	if len(deliveries) == 0 {
		return 0, nil
	}

	ids := make([]uint, 0, len(deliveries))
	for _, d := range deliveries {
		ids = append(ids, d.ID())
	}
	h.scheduler.Schedule(ctx, ids...)

	h.logger.InfoContext(ctx, "deliveries rescheduled", "count", len(ids))
	return len(ids), nil
}
