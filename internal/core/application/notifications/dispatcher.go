// Package notifications renders booking and contact emails and submits them to
// the mail transport.
package notifications

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"tours/internal/core/domain/model/booking"
	"tours/internal/core/domain/model/notification"
	"tours/internal/core/domain/model/tour"
	"tours/internal/core/ports"
	"tours/internal/pkg/errs"
)

var ErrAdminRecipientNotConfigured = errors.New("admin recipient address is not configured")

// Dispatcher renders notification templates and hands them to a Mailer. The
// sender credentials live in the Mailer; Dispatcher only knows recipients.
type Dispatcher struct {
	renderer   ports.MessageRenderer
	mailer     ports.Mailer
	adminEmail string
	logger     *slog.Logger
}

func NewDispatcher(renderer ports.MessageRenderer, mailer ports.Mailer, adminEmail string, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		renderer:   renderer,
		mailer:     mailer,
		adminEmail: adminEmail,
		logger:     logger.With("component", "notification_dispatcher"),
	}
}

// AdminConfigured reports whether admin alerts and contact messages have a recipient.
func (d *Dispatcher) AdminConfigured() bool {
	return d.adminEmail != ""
}

// DispatchBooking sends the given kinds of booking emails, or both when kinds
// is empty. Every message is attempted; failures are returned together as one
// *errs.DispatchError.
func (d *Dispatcher) DispatchBooking(ctx context.Context, b *booking.Booking, t *tour.Tour, kinds ...notification.Kind) error {
	if len(kinds) == 0 {
		kinds = notification.BookingKinds()
	}

	if err := errors.Join(b.Validate(), t.Validate()); err != nil {
		return errs.NewDispatchError("booking", err)
	}
	subject := "booking " + b.ReferenceCode().String()

	data := bookingMessage(b, t)
	var failures []error
	for _, kind := range kinds {
		if err := d.sendBooking(ctx, kind, data); err != nil {
			failures = append(failures, fmt.Errorf("%s: %w", kind, err))
			continue
		}
		d.logger.InfoContext(ctx, "booking email sent",
			"kind", kind.String(), "reference_code", data.ReferenceCode)
	}

	if len(failures) > 0 {
		return errs.NewDispatchError(subject, errors.Join(failures...))
	}
	return nil
}

// DispatchContact sends a contact-form message to the admin address with
// Reply-To set to the visitor.
func (d *Dispatcher) DispatchContact(ctx context.Context, msg ports.ContactMessage) error {
	subject := "contact message from " + msg.Email
	if !d.AdminConfigured() {
		return errs.NewDispatchError(subject, ErrAdminRecipientNotConfigured)
	}

	rendered, err := d.renderer.RenderContact(msg)
	if err != nil {
		return errs.NewDispatchError(subject, fmt.Errorf("render: %w", err))
	}

	if err = d.mailer.Send(ctx, ports.MailMessage{
		To:       d.adminEmail,
		ReplyTo:  msg.Email,
		Subject:  rendered.Subject,
		HTMLBody: rendered.HTMLBody,
	}); err != nil {
		return errs.NewDispatchError(subject, err)
	}

	d.logger.InfoContext(ctx, "contact email sent", "from", msg.Email)
	return nil
}

func (d *Dispatcher) sendBooking(ctx context.Context, kind notification.Kind, data ports.BookingMessage) error {
	var to, replyTo string
	switch kind {
	case notification.CustomerConfirmation:
		to = data.CustomerEmail
	case notification.AdminAlert:
		if !d.AdminConfigured() {
			return ErrAdminRecipientNotConfigured
		}
		to, replyTo = d.adminEmail, data.CustomerEmail
	default:
		return kind.Validate()
	}

	rendered, err := d.renderer.RenderBooking(kind, data)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	return d.mailer.Send(ctx, ports.MailMessage{
		To:       to,
		ReplyTo:  replyTo,
		Subject:  rendered.Subject,
		HTMLBody: rendered.HTMLBody,
	})
}

func bookingMessage(b *booking.Booking, t *tour.Tour) ports.BookingMessage {
	c := b.Customer()
	return ports.BookingMessage{
		ReferenceCode:      b.ReferenceCode().String(),
		CustomerName:       c.Name,
		CustomerEmail:      c.Email.String(),
		CustomerAge:        c.Age,
		CustomerCountry:    c.Country,
		TourName:           t.Name(),
		TourCountry:        t.Country(),
		PreferredDate:      b.PreferredDate(),
		AdditionalServices: b.AdditionalServices(),
	}
}
