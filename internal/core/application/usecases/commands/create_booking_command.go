package commands

import (
	"errors"
	"strings"
	"time"

	"tours/internal/core/domain/model/booking"
	"tours/internal/core/domain/model/kernel"
	"tours/internal/pkg/errs"
	"tours/internal/pkg/guard"
)

var ErrCreateBookingCommandIsNotConstructed = errors.New(
	"CreateBookingCommand must be created via NewCreateBookingCommand constructor",
)

// PreferredDateLayouts are the accepted preferred_date formats, tried in order.
var PreferredDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// CreateBookingCommand is a parsed booking request.
//
// Example:
//
//	cmd, err := NewCreateBookingCommand(1, "John Doe", "john@example.com", 30, "USA", "2024-06-15T00:00:00", "")
//	if err != nil {
//	    return err // *errs.ValidationError listing every bad field
//	}
//	b, err := handler.Handle(ctx, cmd)
type CreateBookingCommand struct { //nolint:recvcheck //using for validation
	tourID             uint
	customer           booking.Customer
	preferredDate      time.Time
	additionalServices string

	guard guard.ConstructorGuard
}

// NewCreateBookingCommand parses raw request fields. On failure it returns an
// *errs.ValidationError naming every violated field.
func NewCreateBookingCommand(
	tourID int,
	customerName, customerEmail string,
	customerAge int,
	customerCountry, preferredDate, additionalServices string,
) (CreateBookingCommand, error) {
	cmd := CreateBookingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTourID(tourID),
		cmd.setCustomer(customerName, customerEmail, customerAge, customerCountry),
		cmd.setPreferredDate(preferredDate),
		cmd.setAdditionalServices(additionalServices),
	); err != nil {
		return CreateBookingCommand{}, errs.CollectValidationError(err)
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateBookingCommand) Validate() error {
	return c.guard.Validate(ErrCreateBookingCommandIsNotConstructed)
}

func (c CreateBookingCommand) TourID() uint {
	return c.tourID
}

func (c CreateBookingCommand) Customer() booking.Customer {
	return c.customer
}

func (c CreateBookingCommand) PreferredDate() time.Time {
	return c.preferredDate
}

func (c CreateBookingCommand) AdditionalServices() string {
	return c.additionalServices
}

func (c *CreateBookingCommand) setTourID(tourID int) error {
	if tourID <= 0 {
		return errs.NewValueIsRequiredErrorWithCause("tour_id", errors.New("must be a positive id"))
	}
	c.tourID = uint(tourID)
	return nil
}

func (c *CreateBookingCommand) setCustomer(name, email string, age int, country string) error {
	name, nameErr := kernel.RequiredText("customer_name", name, booking.CustomerNameMaxLength)
	address, emailErr := kernel.NewEmail("customer_email", email)
	country, countryErr := kernel.RequiredText("customer_country", country, booking.CustomerCountryMaxLength)

	var ageErr error
	if age < booking.MinAge || age > booking.MaxAge {
		ageErr = errs.NewValueIsOutOfRangeError("customer_age", age, booking.MinAge, booking.MaxAge)
	}

	if err := errors.Join(nameErr, emailErr, ageErr, countryErr); err != nil {
		return err
	}

	c.customer = booking.Customer{Name: name, Email: address, Age: age, Country: country}
	return nil
}

func (c *CreateBookingCommand) setPreferredDate(raw string) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return errs.NewValueIsRequiredError("preferred_date")
	}

	for _, layout := range PreferredDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			c.preferredDate = t
			return nil
		}
	}

	return errs.NewValueIsInvalidErrorWithCause("preferred_date",
		errors.New("must be a date (2006-01-02) or date-time (RFC 3339)"))
}

func (c *CreateBookingCommand) setAdditionalServices(s string) (err error) {
	c.additionalServices, err = kernel.OptionalText("additional_services", s, booking.AdditionalServicesMaxLength)
	return err
}
