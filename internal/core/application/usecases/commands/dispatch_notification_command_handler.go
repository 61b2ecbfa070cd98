package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"tours/internal/core/domain/model/booking"
	"tours/internal/core/domain/model/notification"
	"tours/internal/core/domain/model/tour"
)

// BookingDispatcher sends booking emails. Implemented by notifications.Dispatcher.
type BookingDispatcher interface {
	DispatchBooking(ctx context.Context, b *booking.Booking, t *tour.Tour, kinds ...notification.Kind) error
}

// DispatchNotificationCommandHandler sends a single delivery and records the
// outcome. The mail relay is contacted outside any database transaction.
type DispatchNotificationCommandHandler struct {
	uowFactory  DeliveryUoWFactory
	dispatcher  BookingDispatcher
	maxAttempts int
	now         func() time.Time
	logger      *slog.Logger
}

func NewDispatchNotificationCommandHandler(
	uowFactory DeliveryUoWFactory,
	dispatcher BookingDispatcher,
	maxAttempts int,
	logger *slog.Logger,
) DispatchNotificationCommandHandler {
	return DispatchNotificationCommandHandler{
		uowFactory:  uowFactory,
		dispatcher:  dispatcher,
		maxAttempts: maxAttempts,
		now:         time.Now,
		logger:      logger.With("component", "dispatch_notification"),
	}
}

// Handle returns the *errs.DispatchError of a failed send after recording it.
// Deliveries already sent or out of attempts are skipped without error.
func (h DispatchNotificationCommandHandler) Handle(ctx context.Context, cmd DispatchNotificationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	d, err := uow.DeliveryRepository().Get(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}
	if !d.CanAttempt(h.maxAttempts) {
		h.logger.DebugContext(ctx, "delivery skipped",
			"delivery_id", d.ID(), "status", d.Status().String(), "attempts", d.Attempts())
		return nil
	}

	b, err := uow.BookingRepository().Get(ctx, d.BookingID())
	if err != nil {
		return fmt.Errorf("load booking %d: %w", d.BookingID(), err)
	}
	t, err := uow.TourRepository().Get(ctx, b.TourID())
	if err != nil {
		return fmt.Errorf("load tour %d: %w", b.TourID(), err)
	}

	sendErr := h.dispatcher.DispatchBooking(ctx, b, t, d.Kind())
	if sendErr != nil {
		_ = d.MarkFailed(sendErr, h.now())
		h.logger.WarnContext(ctx, "notification dispatch failed",
			"delivery_id", d.ID(), "kind", d.Kind().String(), "attempts", d.Attempts(), "error", sendErr)
	} else {
		_ = d.MarkSent(h.now())
	}

	if err = h.record(ctx, uow, d); err != nil {
		return err
	}
	return sendErr
}

func (h DispatchNotificationCommandHandler) record(ctx context.Context, uow DeliveryUoW, d *notification.Delivery) error {
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.DeliveryRepository().Update(ctx, d); err != nil {
		return fmt.Errorf("record delivery %d: %w", d.ID(), err)
	}
	return uow.Commit(ctx)
}
