// Package mail renders notification emails from embedded HTML templates and
// delivers them over SMTP.
package mail

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"time"

	"tours/internal/core/domain/model/notification"
	"tours/internal/core/ports"
)

// DateLayout formats preferred tour dates in emails.
const DateLayout = "January 02, 2006"

const DefaultBrand = "Afro Nyanka Tours"

const contactTemplate = "contact"

//go:embed templates/*.html
var templateFS embed.FS

type page struct {
	Brand  string
	Accent template.CSS
	Data   any
}

var accents = map[string]template.CSS{
	notification.CustomerConfirmation.String(): "#2E8B57",
	notification.AdminAlert.String():           "#FF6B35",
	contactTemplate:                            "#1F6FB2",
}

// Renderer implements ports.MessageRenderer.
type Renderer struct {
	brand     string
	templates map[string]*template.Template
}

func NewRenderer(brand string) (*Renderer, error) {
	if brand == "" {
		brand = DefaultBrand
	}

	funcs := template.FuncMap{
		"date": func(t time.Time) string { return t.Format(DateLayout) },
	}

	r := &Renderer{brand: brand, templates: make(map[string]*template.Template, len(accents))}
	for name := range accents {
		tmpl, err := template.New(name).Funcs(funcs).ParseFS(templateFS,
			"templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse %s template: %w", name, err)
		}
		r.templates[name] = tmpl
	}

	return r, nil
}

func (r *Renderer) RenderBooking(kind notification.Kind, data ports.BookingMessage) (ports.RenderedMessage, error) {
	var subject string
	switch kind {
	case notification.CustomerConfirmation:
		subject = "Booking Confirmation - " + data.TourName
	case notification.AdminAlert:
		subject = "New Booking Received - " + data.CustomerName
	default:
		return ports.RenderedMessage{}, kind.Validate()
	}

	body, err := r.render(kind.String(), data)
	if err != nil {
		return ports.RenderedMessage{}, err
	}
	return ports.RenderedMessage{Subject: subject, HTMLBody: body}, nil
}

func (r *Renderer) RenderContact(data ports.ContactMessage) (ports.RenderedMessage, error) {
	body, err := r.render(contactTemplate, data)
	if err != nil {
		return ports.RenderedMessage{}, err
	}
	return ports.RenderedMessage{Subject: "Contact Form: " + data.Subject, HTMLBody: body}, nil
}

func (r *Renderer) render(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := r.templates[name].ExecuteTemplate(&buf, "layout", page{
		Brand:  r.brand,
		Accent: accents[name],
		Data:   data,
	}); err != nil {
		return "", fmt.Errorf("execute %s template: %w", name, err)
	}
	return buf.String(), nil
}
