package queries

import (
	"context"
	"errors"
	"time"

	"tours/internal/pkg/errs"
	"tours/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrBookingTrendsQueryIsNotConstructed = errors.New(
	"BookingTrendsQuery must be created via NewBookingTrendsQuery constructor",
)

const (
	DefaultTrendMonths = 12
	MinTrendMonths     = 1
	MaxTrendMonths     = 24

	// daysPerTrendMonth sizes the lookback window.
	daysPerTrendMonth = 30
)

// BookingTrendsQuery groups bookings of the last Months months by calendar
// month (UTC).
type BookingTrendsQuery struct {
	months int
	asOf   time.Time

	guard guard.ConstructorGuard
}

// NewBookingTrendsQuery uses DefaultTrendMonths when months is nil.
func NewBookingTrendsQuery(months *int, asOf time.Time) (BookingTrendsQuery, error) {
	m := DefaultTrendMonths
	if months != nil {
		m = *months
	}
	if m < MinTrendMonths || m > MaxTrendMonths {
		return BookingTrendsQuery{}, errs.CollectValidationError(
			errs.NewValueIsOutOfRangeError("months", m, MinTrendMonths, MaxTrendMonths))
	}
	return BookingTrendsQuery{months: m, asOf: asOf.UTC(), guard: guard.NewConstructorGuard()}, nil
}

func (q BookingTrendsQuery) Validate() error {
	return q.guard.Validate(ErrBookingTrendsQueryIsNotConstructed)
}

func (q BookingTrendsQuery) Months() int {
	return q.months
}

// Since is the start of the lookback window.
func (q BookingTrendsQuery) Since() time.Time {
	return q.asOf.AddDate(0, 0, -q.months*daysPerTrendMonth)
}

type BookingTrendsQueryHandler struct {
	db *gorm.DB
}

func NewBookingTrendsQueryHandler(db *gorm.DB) BookingTrendsQueryHandler {
	return BookingTrendsQueryHandler{db: db}
}

// Handle returns months with at least one booking, oldest first.
func (h BookingTrendsQueryHandler) Handle(ctx context.Context, query BookingTrendsQuery) ([]BookingTrend, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			EXTRACT(YEAR FROM created_at AT TIME ZONE 'UTC')::int AS year,
			EXTRACT(MONTH FROM created_at AT TIME ZONE 'UTC')::int AS month,
			count(*),
			count(DISTINCT customer_email)
		FROM bookings
		WHERE created_at >= ?
		GROUP BY year, month
		ORDER BY year, month
	`, query.Since()).Rows()
	if err != nil {
		return nil, err
	}
	return collect(rows, func(s scanner) (BookingTrend, error) {
		var t BookingTrend
		err := s.Scan(&t.Year, &t.Month, &t.Bookings, &t.UniqueCustomers)
		return t, err
	})
}
