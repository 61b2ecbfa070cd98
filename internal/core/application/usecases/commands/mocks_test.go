package commands_test

import (
	"context"
	"log/slog"
	"time"

	"tours/internal/core/application/usecases/commands"
	"tours/internal/core/domain/model/booking"
	"tours/internal/core/domain/model/location"
	"tours/internal/core/domain/model/notification"
	"tours/internal/core/domain/model/tour"
	"tours/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

type MockTourRepository struct{ mock.Mock }

func (m *MockTourRepository) Add(ctx context.Context, t *tour.Tour) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTourRepository) Get(ctx context.Context, id uint) (*tour.Tour, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*tour.Tour), args.Error(1)
}

type MockLocationRepository struct{ mock.Mock }

func (m *MockLocationRepository) Add(ctx context.Context, l *location.Location) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockLocationRepository) FindMissing(ctx context.Context, ids []uint) ([]uint, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]uint), args.Error(1)
}

type MockBookingRepository struct{ mock.Mock }

func (m *MockBookingRepository) Add(ctx context.Context, b *booking.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBookingRepository) Get(ctx context.Context, id uint) (*booking.Booking, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*booking.Booking), args.Error(1)
}

func (m *MockBookingRepository) ExistsReferenceCode(ctx context.Context, code booking.ReferenceCode) (bool, error) {
	args := m.Called(ctx, code)
	return args.Bool(0), args.Error(1)
}

type MockDeliveryRepository struct{ mock.Mock }

func (m *MockDeliveryRepository) Add(ctx context.Context, d *notification.Delivery) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDeliveryRepository) Update(ctx context.Context, d *notification.Delivery) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDeliveryRepository) Get(ctx context.Context, id uint) (*notification.Delivery, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*notification.Delivery), args.Error(1)
}

func (m *MockDeliveryRepository) ListRetryable(
	ctx context.Context,
	maxAttempts int,
	staleBefore time.Time,
	limit int,
) ([]*notification.Delivery, error) {
	args := m.Called(ctx, maxAttempts, staleBefore, limit)
	return args.Get(0).([]*notification.Delivery), args.Error(1)
}

// MockUoW satisfies every narrowed unit of work. Hooks registered with
// AfterCommit run when the mocked Commit succeeds.
type MockUoW struct {
	mock.Mock

	hooks []func(ctx context.Context)
}

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	if err := args.Error(0); err != nil {
		return err
	}
	for _, hook := range m.hooks {
		hook(ctx)
	}
	return nil
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) AfterCommit(hook func(ctx context.Context)) {
	m.Called()
	m.hooks = append(m.hooks, hook)
}

func (m *MockUoW) TourRepository() ports.TourRepository {
	args := m.Called()
	return args.Get(0).(ports.TourRepository)
}

func (m *MockUoW) LocationRepository() ports.LocationRepository {
	args := m.Called()
	return args.Get(0).(ports.LocationRepository)
}

func (m *MockUoW) BookingRepository() ports.BookingRepository {
	args := m.Called()
	return args.Get(0).(ports.BookingRepository)
}

func (m *MockUoW) DeliveryRepository() ports.DeliveryRepository {
	args := m.Called()
	return args.Get(0).(ports.DeliveryRepository)
}

type MockBookingUoWFactory struct{ mock.Mock }

func (m *MockBookingUoWFactory) Create() commands.BookingUoW {
	args := m.Called()
	return args.Get(0).(commands.BookingUoW)
}

type MockCatalogUoWFactory struct{ mock.Mock }

func (m *MockCatalogUoWFactory) Create() commands.CatalogUoW {
	args := m.Called()
	return args.Get(0).(commands.CatalogUoW)
}

type MockDeliveryUoWFactory struct{ mock.Mock }

func (m *MockDeliveryUoWFactory) Create() commands.DeliveryUoW {
	args := m.Called()
	return args.Get(0).(commands.DeliveryUoW)
}

type MockDeliveryScheduler struct{ mock.Mock }

func (m *MockDeliveryScheduler) Schedule(ctx context.Context, deliveryIDs ...uint) {
	m.Called(ctx, deliveryIDs)
}

type MockBookingDispatcher struct{ mock.Mock }

func (m *MockBookingDispatcher) DispatchBooking(
	ctx context.Context,
	b *booking.Booking,
	t *tour.Tour,
	kinds ...notification.Kind,
) error {
	args := m.Called(ctx, b, t, kinds)
	return args.Error(0)
}

type MockContactDispatcher struct{ mock.Mock }

func (m *MockContactDispatcher) AdminConfigured() bool {
	return m.Called().Bool(0)
}

func (m *MockContactDispatcher) DispatchContact(ctx context.Context, msg ports.ContactMessage) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

// inlineQueue runs submitted tasks synchronously, or rejects them when full is set.
type inlineQueue struct {
	full      bool
	submitted []string
	errs      []error
}

func (q *inlineQueue) Submit(name string, task ports.Task) error {
	if q.full {
		return ports.ErrTaskQueueFull
	}
	q.submitted = append(q.submitted, name)
	q.errs = append(q.errs, task(context.Background()))
	return nil
}
