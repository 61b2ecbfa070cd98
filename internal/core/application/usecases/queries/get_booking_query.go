package queries

import (
	"context"
	"database/sql"
	"errors"

	"tours/internal/pkg/errs"
	"tours/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrGetBookingQueryIsNotConstructed = errors.New(
	"GetBookingQuery must be created via NewGetBookingQuery constructor",
)

type GetBookingQuery struct {
	id uint

	guard guard.ConstructorGuard
}

func NewGetBookingQuery(id uint) GetBookingQuery {
	return GetBookingQuery{id: id, guard: guard.NewConstructorGuard()}
}

func (q GetBookingQuery) Validate() error {
	return q.guard.Validate(ErrGetBookingQueryIsNotConstructed)
}

func (q GetBookingQuery) ID() uint {
	return q.id
}

type GetBookingQueryHandler struct {
	db *gorm.DB
}

func NewGetBookingQueryHandler(db *gorm.DB) GetBookingQueryHandler {
	return GetBookingQueryHandler{db: db}
}

func (h GetBookingQueryHandler) Handle(ctx context.Context, query GetBookingQuery) (BookingResponse, error) {
	if err := query.Validate(); err != nil {
		return BookingResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT `+bookingColumns+`
		FROM bookings b
		WHERE b.id = ?
	`, query.ID()).Row()

	booking, err := scanBooking(row)
	if errors.Is(err, sql.ErrNoRows) {
		return BookingResponse{}, errs.NewObjectNotFoundError("booking", query.ID())
	}
	if err != nil {
		return BookingResponse{}, err
	}
	return booking, nil
}
