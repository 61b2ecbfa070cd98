package http

import (
	"tours/internal/adapters/in/http/api"
	"tours/internal/core/application/usecases/queries"
	"tours/internal/core/domain/model/booking"
	"tours/internal/core/domain/model/location"
	"tours/internal/core/domain/model/tour"
)

func tourResponse(t queries.TourResponse) api.Tour {
	return api.Tour{
		Id:          int(t.ID),
		Name:        t.Name,
		Description: t.Description,
		Country:     t.Country,
		Region:      t.Region,
		Price:       t.Price,
		Capacity:    t.Capacity,
		IsActive:    t.IsActive,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func toursResponse(tours []queries.TourResponse) []api.Tour {
	response := make([]api.Tour, len(tours))
	for i, t := range tours {
		response[i] = tourResponse(t)
	}
	return response
}

func tourFromDomain(t *tour.Tour) api.Tour {
	return api.Tour{
		Id:          int(t.ID()),
		Name:        t.Name(),
		Description: t.Description(),
		Country:     t.Country(),
		Region:      t.Region(),
		Price:       t.Price(),
		Capacity:    t.Capacity(),
		IsActive:    t.IsActive(),
		CreatedAt:   t.CreatedAt(),
		UpdatedAt:   t.UpdatedAt(),
	}
}

func locationResponse(l queries.LocationResponse) api.Location {
	return api.Location{
		Id:          int(l.ID),
		Name:        l.Name,
		Description: l.Description,
		Country:     l.Country,
		Region:      l.Region,
		CreatedAt:   l.CreatedAt,
	}
}

func locationsResponse(locations []queries.LocationResponse) []api.Location {
	response := make([]api.Location, len(locations))
	for i, l := range locations {
		response[i] = locationResponse(l)
	}
	return response
}

func locationFromDomain(l *location.Location) api.Location {
	return api.Location{
		Id:          int(l.ID()),
		Name:        l.Name(),
		Description: l.Description(),
		Country:     l.Country(),
		Region:      l.Region(),
		CreatedAt:   l.CreatedAt(),
	}
}

func bookingResponse(b queries.BookingResponse) api.Booking {
	return api.Booking{
		Id:                 int(b.ID),
		ReferenceCode:      b.ReferenceCode,
		TourId:             int(b.TourID),
		CustomerName:       b.CustomerName,
		CustomerEmail:      b.CustomerEmail,
		CustomerAge:        b.CustomerAge,
		CustomerCountry:    b.CustomerCountry,
		PreferredDate:      b.PreferredDate,
		AdditionalServices: optional(b.AdditionalServices),
		Status:             b.Status,
		CreatedAt:          b.CreatedAt,
	}
}

func bookingFromDomain(b *booking.Booking) api.Booking {
	c := b.Customer()
	return api.Booking{
		Id:                 int(b.ID()),
		ReferenceCode:      b.ReferenceCode().String(),
		TourId:             int(b.TourID()),
		CustomerName:       c.Name,
		CustomerEmail:      c.Email.String(),
		CustomerAge:        c.Age,
		CustomerCountry:    c.Country,
		PreferredDate:      b.PreferredDate(),
		AdditionalServices: optional(b.AdditionalServices()),
		Status:             b.Status().String(),
		CreatedAt:          b.CreatedAt(),
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
