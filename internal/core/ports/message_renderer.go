package ports

import (
	"time"

	"tours/internal/core/domain/model/notification"
)

// BookingMessage is the template data shared by both booking emails.
type BookingMessage struct {
	ReferenceCode      string
	CustomerName       string
	CustomerEmail      string
	CustomerAge        int
	CustomerCountry    string
	TourName           string
	TourCountry        string
	PreferredDate      time.Time
	AdditionalServices string
}

// ContactMessage is the template data of a contact-form email.
type ContactMessage struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// RenderedMessage is a subject and HTML body ready to send.
type RenderedMessage struct {
	Subject  string
	HTMLBody string
}

// MessageRenderer turns template data into email content.
type MessageRenderer interface {
	RenderBooking(kind notification.Kind, data BookingMessage) (RenderedMessage, error)
	RenderContact(data ContactMessage) (RenderedMessage, error)
}
