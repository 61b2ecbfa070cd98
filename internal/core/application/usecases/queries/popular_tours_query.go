package queries

import (
	"context"
	"errors"

	"tours/internal/pkg/errs"
	"tours/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrPopularToursQueryIsNotConstructed = errors.New(
	"PopularToursQuery must be created via NewPopularToursQuery constructor",
)

const (
	DefaultPopularLimit = 10
	MinPopularLimit     = 5
	MaxPopularLimit     = 50
)

// PopularToursQuery ranks booked tours by booking count.
type PopularToursQuery struct {
	limit int

	guard guard.ConstructorGuard
}

// NewPopularToursQuery uses DefaultPopularLimit when limit is nil.
func NewPopularToursQuery(limit *int) (PopularToursQuery, error) {
	l := DefaultPopularLimit
	if limit != nil {
		l = *limit
	}
	if l < MinPopularLimit || l > MaxPopularLimit {
		return PopularToursQuery{}, errs.CollectValidationError(
			errs.NewValueIsOutOfRangeError("limit", l, MinPopularLimit, MaxPopularLimit))
	}
	return PopularToursQuery{limit: l, guard: guard.NewConstructorGuard()}, nil
}

func (q PopularToursQuery) Validate() error {
	return q.guard.Validate(ErrPopularToursQueryIsNotConstructed)
}

func (q PopularToursQuery) Limit() int {
	return q.limit
}

type PopularToursQueryHandler struct {
	db *gorm.DB
}

func NewPopularToursQueryHandler(db *gorm.DB) PopularToursQueryHandler {
	return PopularToursQueryHandler{db: db}
}

// Handle skips tours without bookings. Every booking of a tour visits all of
// the tour's locations, so the per-booking average is the tour's location count.
func (h PopularToursQueryHandler) Handle(ctx context.Context, query PopularToursQuery) ([]PopularTour, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT t.id, t.name, t.country, t.region, count(b.id) AS booking_count,
			(SELECT count(*) FROM tour_locations tl WHERE tl.tour_id = t.id) AS location_count
		FROM tours t
		JOIN bookings b ON b.tour_id = t.id
		GROUP BY t.id
		ORDER BY booking_count DESC, t.id
		LIMIT ?
	`, query.Limit()).Rows()
	if err != nil {
		return nil, err
	}
	return collect(rows, func(s scanner) (PopularTour, error) {
		var (
			p         PopularTour
			locations int
		)
		if err := s.Scan(&p.ID, &p.Name, &p.Country, &p.Region, &p.BookingCount, &locations); err != nil {
			return PopularTour{}, err
		}
		p.TotalLocationsBooked = p.BookingCount * locations
		p.AvgLocationsPerBooking = float64(locations)
		return p, nil
	})
}
