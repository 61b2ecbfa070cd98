package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"tours/internal/core/ports"
	"tours/internal/pkg/errs"
)

// QueueDeliveryScheduler submits one dispatch task per delivery to a TaskQueue.
// Deliveries that do not fit in the queue stay Pending and are picked up by the
// retry job once stale.
type QueueDeliveryScheduler struct {
	queue   ports.TaskQueue
	handler DispatchNotificationCommandHandler
	logger  *slog.Logger
}

func NewQueueDeliveryScheduler(
	queue ports.TaskQueue,
	handler DispatchNotificationCommandHandler,
	logger *slog.Logger,
) *QueueDeliveryScheduler {
	return &QueueDeliveryScheduler{
		queue:   queue,
		handler: handler,
		logger:  logger.With("component", "delivery_scheduler"),
	}
}

func (s *QueueDeliveryScheduler) Schedule(ctx context.Context, deliveryIDs ...uint) {
	for _, id := range deliveryIDs {
		cmd, err := NewDispatchNotificationCommand(id)
		if err != nil {
			s.logger.ErrorContext(ctx, "invalid delivery id", "error", err)
			continue
		}

		err = s.queue.Submit(fmt.Sprintf("dispatch delivery %d", id), func(taskCtx context.Context) error {
			err := s.handler.Handle(taskCtx, cmd)
			if errors.Is(err, errs.ErrDispatch) {
				// Recorded on the delivery; the retry job owns further attempts.
				return nil
			}
			return err
		})
		if err != nil {
			s.logger.WarnContext(ctx, "delivery not queued, left for retry", "delivery_id", id, "error", err)
		}
	}
}
