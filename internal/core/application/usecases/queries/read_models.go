// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries read straight from the database and return flat read models.
package queries

import (
	"database/sql"
	"time"
)

// TourResponse is the catalog read model of a tour.
type TourResponse struct {
	ID          uint
	Name        string
	Description string
	Country     string
	Region      string
	Price       float64
	Capacity    int
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type LocationResponse struct {
	ID          uint
	Name        string
	Description string
	Country     string
	Region      string
	CreatedAt   time.Time
}

// BookingResponse is the read model of a stored booking.
type BookingResponse struct {
	ID                 uint
	ReferenceCode      string
	TourID             uint
	CustomerName       string
	CustomerEmail      string
	CustomerAge        int
	CustomerCountry    string
	PreferredDate      time.Time
	AdditionalServices string
	Status             string
	CreatedAt          time.Time
}

const (
	tourColumns = `t.id, t.name, t.description, t.country, t.region, t.price, t.capacity,
		t.is_active, t.created_at, t.updated_at`
	locationColumns = `l.id, l.name, l.description, l.country, l.region, l.created_at`
	bookingColumns  = `b.id, b.reference_code, b.tour_id, b.customer_name, b.customer_email,
		b.customer_age, b.customer_country, b.preferred_date, b.additional_services, b.status, b.created_at`
)

type scanner interface {
	Scan(dest ...any) error
}

func scanTour(s scanner) (TourResponse, error) {
	var t TourResponse
	err := s.Scan(&t.ID, &t.Name, &t.Description, &t.Country, &t.Region, &t.Price, &t.Capacity,
		&t.IsActive, &t.CreatedAt, &t.UpdatedAt)
	return t, err
}

func scanLocation(s scanner) (LocationResponse, error) {
	var l LocationResponse
	err := s.Scan(&l.ID, &l.Name, &l.Description, &l.Country, &l.Region, &l.CreatedAt)
	return l, err
}

func scanBooking(s scanner) (BookingResponse, error) {
	var b BookingResponse
	err := s.Scan(&b.ID, &b.ReferenceCode, &b.TourID, &b.CustomerName, &b.CustomerEmail,
		&b.CustomerAge, &b.CustomerCountry, &b.PreferredDate, &b.AdditionalServices, &b.Status, &b.CreatedAt)
	return b, err
}

// collect drains rows with scan. The result is never nil.
func collect[T any](rows *sql.Rows, scan func(scanner) (T, error)) ([]T, error) {
	defer rows.Close()

	out := make([]T, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
