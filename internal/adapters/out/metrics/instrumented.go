package metrics

import (
	"context"
	"errors"

	"tours/internal/core/application/usecases/commands"
	"tours/internal/core/domain/model/booking"
	"tours/internal/core/domain/model/notification"
	"tours/internal/core/domain/model/tour"
	"tours/internal/core/ports"
)

// ContactKind labels contact-form emails, which carry no notification.Kind.
const ContactKind = "contact"

type BookingCreator interface {
	Handle(ctx context.Context, cmd commands.CreateBookingCommand) (*booking.Booking, error)
}

type countingBookingCreator struct {
	next    BookingCreator
	metrics *Metrics
}

// CountBookings counts every booking next persists.
func (m *Metrics) CountBookings(next BookingCreator) BookingCreator {
	return countingBookingCreator{next: next, metrics: m}
}

func (c countingBookingCreator) Handle(ctx context.Context, cmd commands.CreateBookingCommand) (*booking.Booking, error) {
	b, err := c.next.Handle(ctx, cmd)
	if err == nil {
		c.metrics.BookingCreated()
	}
	return b, err
}

type countingBookingDispatcher struct {
	next    commands.BookingDispatcher
	metrics *Metrics
}

// CountBookingDispatch sends each kind through next separately so the outcome
// of every email is counted on its own.
func (m *Metrics) CountBookingDispatch(next commands.BookingDispatcher) commands.BookingDispatcher {
	return countingBookingDispatcher{next: next, metrics: m}
}

func (c countingBookingDispatcher) DispatchBooking(
	ctx context.Context,
	b *booking.Booking,
	t *tour.Tour,
	kinds ...notification.Kind,
) error {
	if len(kinds) == 0 {
		kinds = notification.BookingKinds()
	}

	var failures []error
	for _, kind := range kinds {
		err := c.next.DispatchBooking(ctx, b, t, kind)
		c.metrics.NotificationDispatched(kind.String(), err)
		if err != nil {
			failures = append(failures, err)
		}
	}
	return errors.Join(failures...)
}

type countingContactDispatcher struct {
	next    commands.ContactDispatcher
	metrics *Metrics
}

func (m *Metrics) CountContactDispatch(next commands.ContactDispatcher) commands.ContactDispatcher {
	return countingContactDispatcher{next: next, metrics: m}
}

func (c countingContactDispatcher) AdminConfigured() bool {
	return c.next.AdminConfigured()
}

func (c countingContactDispatcher) DispatchContact(ctx context.Context, msg ports.ContactMessage) error {
	err := c.next.DispatchContact(ctx, msg)
	c.metrics.NotificationDispatched(ContactKind, err)
	return err
}
