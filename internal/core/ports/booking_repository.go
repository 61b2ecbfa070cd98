package ports

import (
	"context"

	"tours/internal/core/domain/model/booking"
)

// BookingRepository persists bookings. Bookings are written once and never updated.
type BookingRepository interface {
	// Add inserts a booking and assigns its id and creation time.
	Add(ctx context.Context, aggregate *booking.Booking) error

	// Get returns a booking by id, or errs.ObjectNotFoundError.
	Get(ctx context.Context, id uint) (*booking.Booking, error)

	// ExistsReferenceCode reports whether code is already used by a booking.
	ExistsReferenceCode(ctx context.Context, code booking.ReferenceCode) (bool, error)
}
