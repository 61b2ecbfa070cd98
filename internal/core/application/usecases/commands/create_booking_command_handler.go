package commands

import (
	"context"
	"errors"
	"log/slog"

	"tours/internal/core/domain/model/booking"
	"tours/internal/core/domain/model/notification"
	"tours/internal/core/domain/services"
	"tours/internal/pkg/errs"
)

// DeliveryScheduler submits deliveries for background dispatch. It must not block.
type DeliveryScheduler interface {
	Schedule(ctx context.Context, deliveryIDs ...uint)
}

// CreateBookingCommandHandler runs the booking workflow: tour lookup, reference
// code allocation, one transactional insert of the booking and its delivery
// records, then post-commit scheduling of the notification emails.
//
// Example:
//
//	handler := NewCreateBookingCommandHandler(uowFactory, services.NewReferenceCodeAllocator(), scheduler, logger)
//	b, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound): // unknown tour
//	case errors.Is(err, errs.ErrPersistence):    // not recorded
//	}
type CreateBookingCommandHandler struct {
	uowFactory BookingUoWFactory
	allocator  services.ReferenceCodeAllocator
	scheduler  DeliveryScheduler
	logger     *slog.Logger
}

func NewCreateBookingCommandHandler(
	uowFactory BookingUoWFactory,
	allocator services.ReferenceCodeAllocator,
	scheduler DeliveryScheduler,
	logger *slog.Logger,
) CreateBookingCommandHandler {
	return CreateBookingCommandHandler{
		uowFactory: uowFactory,
		allocator:  allocator,
		scheduler:  scheduler,
		logger:     logger.With("component", "create_booking"),
	}
}

// Handle returns the persisted booking. Notification failures never surface
// here: emails are dispatched after commit by the scheduler.
func (h CreateBookingCommandHandler) Handle(ctx context.Context, cmd CreateBookingCommand) (*booking.Booking, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, errs.NewPersistenceError("begin booking transaction", err)
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	t, err := uow.TourRepository().Get(ctx, cmd.TourID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}
	if err != nil {
		return nil, errs.NewPersistenceError("load tour", err)
	}
	if !t.IsActive() {
		return nil, errs.NewObjectNotFoundError("tour", cmd.TourID())
	}

	bookingRepo := uow.BookingRepository()
	code, err := h.allocator.Allocate(ctx, bookingRepo)
	if err != nil {
		return nil, errs.NewPersistenceError("allocate reference code", err)
	}

	b, err := booking.NewBooking(code, t.ID(), cmd.Customer(), cmd.PreferredDate(), cmd.AdditionalServices())
	if err != nil {
		return nil, errs.CollectValidationError(err)
	}

	if err = bookingRepo.Add(ctx, b); err != nil {
		return nil, errs.NewPersistenceError("add booking", err)
	}

	deliveryRepo := uow.DeliveryRepository()
	deliveryIDs := make([]uint, 0, len(notification.BookingKinds()))
	for _, kind := range notification.BookingKinds() {
		d, dErr := notification.NewDelivery(b.ID(), kind)
		if dErr != nil {
			return nil, errs.NewPersistenceError("create notification delivery", dErr)
		}
		if dErr = deliveryRepo.Add(ctx, d); dErr != nil {
			return nil, errs.NewPersistenceError("add notification delivery", dErr)
		}
		deliveryIDs = append(deliveryIDs, d.ID())
	}

	uow.AfterCommit(func(ctx context.Context) {
		h.scheduler.Schedule(ctx, deliveryIDs...)
	})

	if err = uow.Commit(ctx); err != nil {
		return nil, errs.NewPersistenceError("commit booking", err)
	}

	h.logger.InfoContext(ctx, "booking created",
		"booking_id", b.ID(), "reference_code", b.ReferenceCode().String(), "tour_id", b.TourID())
	return b, nil
}
