package commands_test

import (
	"errors"
	"testing"

	"tours/internal/core/application/usecases/commands"
	"tours/internal/core/domain/model/notification"
	"tours/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestQueueDeliveryScheduler_Schedule_SubmitsOneTaskPerDelivery(t *testing.T) {
	// Arrange
	ctx := t.Context()
	factory := new(MockDeliveryUoWFactory)
	uow := new(MockUoW)
	deliveries := new(MockDeliveryRepository)

	factory.On("Create").Return(uow)
	uow.On("DeliveryRepository").Return(deliveries)
	deliveries.On("Get", mock.Anything, mock.Anything).Return(storedDelivery(t, notification.Sent, 1), nil)

	handler := commands.NewDispatchNotificationCommandHandler(factory, new(MockBookingDispatcher), maxAttempts, discardLogger())
	queue := &inlineQueue{}
	scheduler := commands.NewQueueDeliveryScheduler(queue, handler, discardLogger())

	// Act
	scheduler.Schedule(ctx, 5, 6)

	// Assert
	assert.Equal(t, []string{"dispatch delivery 5", "dispatch delivery 6"}, queue.submitted)
	assert.Equal(t, []error{nil, nil}, queue.errs)
	deliveries.AssertNumberOfCalls(t, "Get", 2)
}

func TestQueueDeliveryScheduler_Schedule_SwallowsRecordedDispatchFailure(t *testing.T) {
	// Arrange
	ctx := t.Context()
	d := storedDelivery(t, notification.Pending, 0)
	b := persistedBooking(t, 7, 1)
	tr := persistedTour(t, 1, true)

	factory := new(MockDeliveryUoWFactory)
	uow := new(MockUoW)
	deliveries := new(MockDeliveryRepository)
	bookings := new(MockBookingRepository)
	tours := new(MockTourRepository)
	dispatcher := new(MockBookingDispatcher)

	factory.On("Create").Return(uow)
	uow.On("DeliveryRepository").Return(deliveries)
	uow.On("BookingRepository").Return(bookings)
	uow.On("TourRepository").Return(tours)
	uow.On("Begin", mock.Anything).Return(nil)
	uow.On("Commit", mock.Anything).Return(nil)
	uow.On("Rollback", mock.Anything).Return(nil)
	deliveries.On("Get", mock.Anything, uint(5)).Return(d, nil)
	deliveries.On("Update", mock.Anything, d).Return(nil)
	bookings.On("Get", mock.Anything, uint(7)).Return(b, nil)
	tours.On("Get", mock.Anything, uint(1)).Return(tr, nil)
	dispatcher.On("DispatchBooking", mock.Anything, b, tr, mock.Anything).
		Return(errs.NewDispatchError("booking", errors.New("relay down")))

	handler := commands.NewDispatchNotificationCommandHandler(factory, dispatcher, maxAttempts, discardLogger())
	queue := &inlineQueue{}
	scheduler := commands.NewQueueDeliveryScheduler(queue, handler, discardLogger())

	// Act
	scheduler.Schedule(ctx, 5)

	// Assert
	require.Len(t, queue.errs, 1)
	require.NoError(t, queue.errs[0])
	assert.Equal(t, notification.Failed, d.Status())
	deliveries.AssertCalled(t, "Update", mock.Anything, d)
}

func TestQueueDeliveryScheduler_Schedule_FullQueueDoesNotPanic(t *testing.T) {
	handler := commands.NewDispatchNotificationCommandHandler(new(MockDeliveryUoWFactory), new(MockBookingDispatcher),
		maxAttempts, discardLogger())
	queue := &inlineQueue{full: true}
	scheduler := commands.NewQueueDeliveryScheduler(queue, handler, discardLogger())

	assert.NotPanics(t, func() {
		scheduler.Schedule(t.Context(), 1, 0, 2)
	})
	assert.Empty(t, queue.submitted)
}
