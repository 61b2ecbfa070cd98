package notifications_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"tours/internal/core/application/notifications"
	"tours/internal/core/domain/model/booking"
	"tours/internal/core/domain/model/kernel"
	"tours/internal/core/domain/model/notification"
	"tours/internal/core/domain/model/tour"
	"tours/internal/core/ports"
	"tours/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRenderer struct{ mock.Mock }

func (m *MockRenderer) RenderBooking(kind notification.Kind, data ports.BookingMessage) (ports.RenderedMessage, error) {
	args := m.Called(kind, data)
	return args.Get(0).(ports.RenderedMessage), args.Error(1)
}

func (m *MockRenderer) RenderContact(data ports.ContactMessage) (ports.RenderedMessage, error) {
	args := m.Called(data)
	return args.Get(0).(ports.RenderedMessage), args.Error(1)
}

type MockMailer struct{ mock.Mock }

func (m *MockMailer) Send(ctx context.Context, msg ports.MailMessage) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func fixture(t *testing.T) (*booking.Booking, *tour.Tour) {
	t.Helper()
	tr, err := tour.NewTour("Gold Coast Explorer", "", "Ghana", "Central", 899.5, 12, true, nil)
	require.NoError(t, err)
	tr.MarkPersisted(1, time.Now())

	email, err := kernel.NewEmail("customer_email", "john@example.com")
	require.NoError(t, err)
	b, err := booking.RestoreBooking(7, "BKG-ABC123", 1,
		booking.Customer{Name: "John Doe", Email: email, Age: 30, Country: "USA"},
		time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), "Airport pickup", booking.Pending, time.Now())
	require.NoError(t, err)
	return b, tr
}

func newDispatcher(r *MockRenderer, m *MockMailer, admin string) *notifications.Dispatcher {
	return notifications.NewDispatcher(r, m, admin, slog.New(slog.DiscardHandler))
}

func TestDispatcher_DispatchBooking_SendsBothMessages(t *testing.T) {
	// Arrange
	ctx := t.Context()
	b, tr := fixture(t)
	renderer := new(MockRenderer)
	mailer := new(MockMailer)

	data := ports.BookingMessage{
		ReferenceCode:      "BKG-ABC123",
		CustomerName:       "John Doe",
		CustomerEmail:      "john@example.com",
		CustomerAge:        30,
		CustomerCountry:    "USA",
		TourName:           "Gold Coast Explorer",
		TourCountry:        "Ghana",
		PreferredDate:      time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
		AdditionalServices: "Airport pickup",
	}
	renderer.On("RenderBooking", notification.CustomerConfirmation, data).
		Return(ports.RenderedMessage{Subject: "Booking Confirmation", HTMLBody: "<p>hi</p>"}, nil).Once()
	renderer.On("RenderBooking", notification.AdminAlert, data).
		Return(ports.RenderedMessage{Subject: "New Booking", HTMLBody: "<p>new</p>"}, nil).Once()
	mailer.On("Send", ctx, ports.MailMessage{
		To: "john@example.com", Subject: "Booking Confirmation", HTMLBody: "<p>hi</p>",
	}).Return(nil).Once()
	mailer.On("Send", ctx, ports.MailMessage{
		To: "admin@tours.test", ReplyTo: "john@example.com", Subject: "New Booking", HTMLBody: "<p>new</p>",
	}).Return(nil).Once()

	// Act
	err := newDispatcher(renderer, mailer, "admin@tours.test").DispatchBooking(ctx, b, tr)

	// Assert
	require.NoError(t, err)
	renderer.AssertExpectations(t)
	mailer.AssertExpectations(t)
}

func TestDispatcher_DispatchBooking_JoinsFailures(t *testing.T) {
	// Arrange
	ctx := t.Context()
	b, tr := fixture(t)
	renderer := new(MockRenderer)
	mailer := new(MockMailer)

	renderer.On("RenderBooking", notification.CustomerConfirmation, mock.Anything).
		Return(ports.RenderedMessage{}, errors.New("template: missing key")).Once()
	renderer.On("RenderBooking", notification.AdminAlert, mock.Anything).
		Return(ports.RenderedMessage{Subject: "New Booking"}, nil).Once()
	mailer.On("Send", ctx, mock.Anything).Return(errors.New("535 bad credentials")).Once()

	// Act
	err := newDispatcher(renderer, mailer, "admin@tours.test").DispatchBooking(ctx, b, tr)

	// Assert
	var derr *errs.DispatchError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, "booking BKG-ABC123", derr.Subject)
	assert.ErrorContains(t, err, "missing key")
	assert.ErrorContains(t, err, "535 bad credentials")
}

func TestDispatcher_DispatchBooking_SingleKindWithoutAdmin(t *testing.T) {
	ctx := t.Context()
	b, tr := fixture(t)
	renderer := new(MockRenderer)
	mailer := new(MockMailer)

	d := newDispatcher(renderer, mailer, "")

	err := d.DispatchBooking(ctx, b, tr, notification.AdminAlert)
	require.ErrorIs(t, err, errs.ErrDispatch)
	assert.ErrorContains(t, err, notifications.ErrAdminRecipientNotConfigured.Error())
	renderer.AssertNotCalled(t, "RenderBooking", mock.Anything, mock.Anything)
	mailer.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestDispatcher_DispatchBooking_RejectsUnconstructedAggregates(t *testing.T) {
	_, tr := fixture(t)
	d := newDispatcher(new(MockRenderer), new(MockMailer), "admin@tours.test")

	err := d.DispatchBooking(t.Context(), nil, tr)
	require.ErrorIs(t, err, errs.ErrDispatch)
}

func TestDispatcher_DispatchContact(t *testing.T) {
	msg := ports.ContactMessage{Name: "Ama", Email: "ama@example.com", Subject: "Hi", Message: "Question"}

	t.Run("should send to admin with reply-to", func(t *testing.T) {
		ctx := t.Context()
		renderer := new(MockRenderer)
		mailer := new(MockMailer)
		renderer.On("RenderContact", msg).Return(ports.RenderedMessage{Subject: "Contact: Hi", HTMLBody: "<p>q</p>"}, nil).Once()
		mailer.On("Send", ctx, ports.MailMessage{
			To: "admin@tours.test", ReplyTo: "ama@example.com", Subject: "Contact: Hi", HTMLBody: "<p>q</p>",
		}).Return(nil).Once()

		require.NoError(t, newDispatcher(renderer, mailer, "admin@tours.test").DispatchContact(ctx, msg))
		mailer.AssertExpectations(t)
	})

	t.Run("should fail without admin address", func(t *testing.T) {
		err := newDispatcher(new(MockRenderer), new(MockMailer), "").DispatchContact(t.Context(), msg)
		require.ErrorIs(t, err, errs.ErrDispatch)
	})
}
