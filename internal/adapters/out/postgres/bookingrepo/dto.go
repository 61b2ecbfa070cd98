// Package bookingrepo persists bookings.
package bookingrepo

import (
	"time"

	"tours/internal/adapters/out/postgres/catalogrepo"
	"tours/internal/core/domain/model/booking"
	"tours/internal/core/domain/model/kernel"
)

type BookingDTO struct {
	ID                 uint                 `gorm:"primaryKey"`
	ReferenceCode      string               `gorm:"type:varchar(10);not null;uniqueIndex"`
	TourID             uint                 `gorm:"not null;index"`
	Tour               *catalogrepo.TourDTO `gorm:"foreignKey:TourID;constraint:OnDelete:RESTRICT"`
	CustomerName       string               `gorm:"type:varchar(200);not null"`
	CustomerEmail      string               `gorm:"type:varchar(254);not null;index"`
	CustomerAge        int                  `gorm:"type:int;not null"`
	CustomerCountry    string               `gorm:"type:varchar(100);not null"`
	PreferredDate      time.Time            `gorm:"not null"`
	AdditionalServices string               `gorm:"type:text;not null;default:''"`
	Status             string               `gorm:"type:varchar(20);not null;default:'pending'"`
	CreatedAt          time.Time            `gorm:"not null;index"`
}

func (BookingDTO) TableName() string {
	return "bookings"
}

func fromDomain(b *booking.Booking) BookingDTO {
	c := b.Customer()
	return BookingDTO{
		ID:                 b.ID(),
		ReferenceCode:      b.ReferenceCode().String(),
		TourID:             b.TourID(),
		CustomerName:       c.Name,
		CustomerEmail:      c.Email.String(),
		CustomerAge:        c.Age,
		CustomerCountry:    c.Country,
		PreferredDate:      b.PreferredDate(),
		AdditionalServices: b.AdditionalServices(),
		Status:             b.Status().String(),
	}
}

func toDomain(dto BookingDTO) (*booking.Booking, error) {
	code, err := booking.ParseReferenceCode(dto.ReferenceCode)
	if err != nil {
		return nil, err
	}
	email, err := kernel.NewEmail("customer_email", dto.CustomerEmail)
	if err != nil {
		return nil, err
	}

	return booking.RestoreBooking(dto.ID, code, dto.TourID,
		booking.Customer{
			Name:    dto.CustomerName,
			Email:   email,
			Age:     dto.CustomerAge,
			Country: dto.CustomerCountry,
		},
		dto.PreferredDate, dto.AdditionalServices, booking.Status(dto.Status), dto.CreatedAt)
}
