package booking

import (
	"errors"
	"time"

	"tours/internal/core/domain/model/kernel"
	"tours/internal/pkg/errs"
)

const (
	MinAge                      = 1
	MaxAge                      = 120
	CustomerNameMaxLength       = 200
	CustomerCountryMaxLength    = 100
	AdditionalServicesMaxLength = 2000
)

var (
	// ErrBookingIsNotConstructed is returned when a Booking was not created
	// through NewBooking or RestoreBooking.
	ErrBookingIsNotConstructed = errors.New("Booking must be created via NewBooking constructor")
)

// Customer holds the contact details captured with a booking.
type Customer struct {
	Name    string
	Email   kernel.Email
	Age     int
	Country string
}

// Booking is the durable record of a customer's request to join a tour.
type Booking struct {
	id                 uint
	referenceCode      ReferenceCode
	tourID             uint
	customer           Customer
	preferredDate      time.Time
	additionalServices string
	status             Status
	createdAt          time.Time

	isConstructed bool
}

// NewBooking validates and creates an unsaved booking in the Pending status.
func NewBooking(
	code ReferenceCode,
	tourID uint,
	customer Customer,
	preferredDate time.Time,
	additionalServices string,
) (*Booking, error) {
	b := &Booking{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		b.setReferenceCode(code),
		b.setTourID(tourID),
		b.setCustomer(customer),
		b.setPreferredDate(preferredDate),
		b.setAdditionalServices(additionalServices),
	); err != nil {
		return nil, err
	}

	return b, nil
}

// RestoreBooking rebuilds a persisted booking with its stored status.
func RestoreBooking(
	id uint,
	code ReferenceCode,
	tourID uint,
	customer Customer,
	preferredDate time.Time,
	additionalServices string,
	status Status,
	createdAt time.Time,
) (*Booking, error) {
	b, err := NewBooking(code, tourID, customer, preferredDate, additionalServices)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}
	b.status = status
	b.MarkPersisted(id, createdAt)
	return b, nil
}

func (b *Booking) Validate() error {
	if b == nil || !b.isConstructed {
		return ErrBookingIsNotConstructed
	}
	return nil
}

// MarkPersisted records the storage-assigned id and creation time.
func (b *Booking) MarkPersisted(id uint, createdAt time.Time) {
	b.id = id
	b.createdAt = createdAt
}

func (b *Booking) ID() uint {
	return b.id
}

func (b *Booking) ReferenceCode() ReferenceCode {
	return b.referenceCode
}

func (b *Booking) TourID() uint {
	return b.tourID
}

func (b *Booking) Customer() Customer {
	return b.customer
}

func (b *Booking) PreferredDate() time.Time {
	return b.preferredDate
}

func (b *Booking) AdditionalServices() string {
	return b.additionalServices
}

func (b *Booking) Status() Status {
	return b.status
}

func (b *Booking) CreatedAt() time.Time {
	return b.createdAt
}

func (b *Booking) setReferenceCode(code ReferenceCode) error {
	if err := code.Validate(); err != nil {
		return err
	}
	b.referenceCode = code
	return nil
}

func (b *Booking) setTourID(tourID uint) error {
	if tourID == 0 {
		return errs.NewValueIsRequiredError("tour_id")
	}
	b.tourID = tourID
	return nil
}

func (b *Booking) setCustomer(c Customer) error {
	name, nameErr := kernel.RequiredText("customer_name", c.Name, CustomerNameMaxLength)
	country, countryErr := kernel.RequiredText("customer_country", c.Country, CustomerCountryMaxLength)

	var emailErr error
	if err := c.Email.Validate(); err != nil {
		emailErr = errs.NewValueIsRequiredError("customer_email")
	}

	var ageErr error
	if c.Age < MinAge || c.Age > MaxAge {
		ageErr = errs.NewValueIsOutOfRangeError("customer_age", c.Age, MinAge, MaxAge)
	}

	if err := errors.Join(nameErr, emailErr, ageErr, countryErr); err != nil {
		return err
	}

	b.customer = Customer{Name: name, Email: c.Email, Age: c.Age, Country: country}
	return nil
}

func (b *Booking) setPreferredDate(date time.Time) error {
	if date.IsZero() {
		return errs.NewValueIsRequiredError("preferred_date")
	}
	b.preferredDate = date
	return nil
}

func (b *Booking) setAdditionalServices(s string) (err error) {
	b.additionalServices, err = kernel.OptionalText("additional_services", s, AdditionalServicesMaxLength)
	return err
}
