package queries

import (
	"context"
	"errors"

	"tours/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrListBookingsQueryIsNotConstructed = errors.New(
	"ListBookingsQuery must be created via NewListBookingsQuery constructor",
)

// ListBookingsQuery lists every booking, newest first.
type ListBookingsQuery struct {
	guard guard.ConstructorGuard
}

func NewListBookingsQuery() ListBookingsQuery {
	return ListBookingsQuery{guard: guard.NewConstructorGuard()}
}

func (q ListBookingsQuery) Validate() error {
	return q.guard.Validate(ErrListBookingsQueryIsNotConstructed)
}

type ListBookingsQueryHandler struct {
	db *gorm.DB
}

func NewListBookingsQueryHandler(db *gorm.DB) ListBookingsQueryHandler {
	return ListBookingsQueryHandler{db: db}
}

func (h ListBookingsQueryHandler) Handle(ctx context.Context, query ListBookingsQuery) ([]BookingResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT ` + bookingColumns + `
		FROM bookings b
		ORDER BY b.created_at DESC, b.id DESC
	`).Rows()
	if err != nil {
		return nil, err
	}
	return collect(rows, scanBooking)
}
