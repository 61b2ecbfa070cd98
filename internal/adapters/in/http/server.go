package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"tours/internal/adapters/in/http/api"
	"tours/internal/core/application/usecases/commands"
	"tours/internal/core/application/usecases/queries"
	"tours/internal/core/domain/model/booking"
	"tours/internal/core/domain/model/location"
	"tours/internal/core/domain/model/tour"

	"github.com/labstack/echo/v4"
)

const (
	bookingCreatedMessage = "Booking created successfully! Confirmation emails will be sent shortly."
	contactQueuedMessage  = "Your message has been sent successfully! We'll get back to you soon."
)

// Use case contracts the server depends on. The application handlers satisfy
// them directly.
type (
	CreateTourHandler interface {
		Handle(ctx context.Context, cmd commands.CreateTourCommand) (*tour.Tour, error)
	}
	CreateLocationHandler interface {
		Handle(ctx context.Context, cmd commands.CreateLocationCommand) (*location.Location, error)
	}
	CreateBookingHandler interface {
		Handle(ctx context.Context, cmd commands.CreateBookingCommand) (*booking.Booking, error)
	}
	SendContactMessageHandler interface {
		Handle(ctx context.Context, cmd commands.SendContactMessageCommand) error
	}
	GetTourHandler interface {
		Handle(ctx context.Context, query queries.GetTourQuery) (queries.TourResponse, error)
	}
	ListToursHandler interface {
		Handle(ctx context.Context, query queries.ListToursQuery) ([]queries.TourResponse, error)
	}
	ListCountriesHandler interface {
		Handle(ctx context.Context, query queries.ListCountriesQuery) ([]string, error)
	}
	ListTourLocationsHandler interface {
		Handle(ctx context.Context, query queries.ListTourLocationsQuery) ([]queries.LocationResponse, error)
	}
	ListLocationsHandler interface {
		Handle(ctx context.Context, query queries.ListLocationsQuery) ([]queries.LocationResponse, error)
	}
	GetBookingHandler interface {
		Handle(ctx context.Context, query queries.GetBookingQuery) (queries.BookingResponse, error)
	}
	ListBookingsHandler interface {
		Handle(ctx context.Context, query queries.ListBookingsQuery) ([]queries.BookingResponse, error)
	}
)

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	// Command handlers
	CreateTour         CreateTourHandler
	CreateLocation     CreateLocationHandler
	CreateBooking      CreateBookingHandler
	SendContactMessage SendContactMessageHandler

	// Query handlers
	GetTour           GetTourHandler
	ListTours         ListToursHandler
	ListCountries     ListCountriesHandler
	ListTourLocations ListTourLocationsHandler
	ListLocations     ListLocationsHandler
	GetBooking        GetBookingHandler
	ListBookings      ListBookingsHandler

	// Analytics query handlers
	AnalyticsOverview    AnalyticsOverviewHandler
	BookingTrends        BookingTrendsHandler
	PopularTours         PopularToursHandler
	CustomerDemographics CustomerDemographicsHandler
}

// Server implements api.ServerInterface.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
	now      func() time.Time
	logger   *slog.Logger
}

var _ api.ServerInterface = (*Server)(nil)

func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	return &Server{
		handlers: handlers,
		now:      time.Now,
		logger:   logger.With("component", "http_server"),
	}
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.Health{Status: "healthy"})
}

// ListTours handles GET /tours - active tours ordered by name.
func (s *Server) ListTours(ctx echo.Context) error {
	tours, err := s.handlers.ListTours.Handle(ctx.Request().Context(), queries.NewListToursQuery())
	if err != nil {
		return s.fail(ctx, err, "Failed to retrieve tours")
	}
	return ctx.JSON(http.StatusOK, toursResponse(tours))
}

// ListToursByCountry handles GET /tours/country/{country}. No match is an empty list.
func (s *Server) ListToursByCountry(ctx echo.Context, country string) error {
	tours, err := s.handlers.ListTours.Handle(ctx.Request().Context(), queries.NewListToursByCountryQuery(country))
	if err != nil {
		return s.fail(ctx, err, "Failed to retrieve tours")
	}
	return ctx.JSON(http.StatusOK, toursResponse(tours))
}

// ListCountries handles GET /tours/countries.
func (s *Server) ListCountries(ctx echo.Context) error {
	countries, err := s.handlers.ListCountries.Handle(ctx.Request().Context(), queries.NewListCountriesQuery())
	if err != nil {
		return s.fail(ctx, err, "Failed to retrieve countries")
	}
	return ctx.JSON(http.StatusOK, api.Countries{Countries: countries})
}

// GetTour handles GET /tours/{id}.
func (s *Server) GetTour(ctx echo.Context, id int) error {
	tourID, err := pathID(id)
	if err != nil {
		return err
	}

	t, err := s.handlers.GetTour.Handle(ctx.Request().Context(), queries.NewGetTourQuery(tourID))
	if err != nil {
		return s.fail(ctx, err, "Failed to retrieve tour")
	}
	return ctx.JSON(http.StatusOK, tourResponse(t))
}

// ListTourLocations handles GET /tours/{id}/locations.
func (s *Server) ListTourLocations(ctx echo.Context, id int) error {
	tourID, err := pathID(id)
	if err != nil {
		return err
	}

	locations, err := s.handlers.ListTourLocations.Handle(ctx.Request().Context(), queries.NewListTourLocationsQuery(tourID))
	if err != nil {
		return s.fail(ctx, err, "Failed to retrieve tour locations")
	}
	return ctx.JSON(http.StatusOK, locationsResponse(locations))
}

// CreateTour handles POST /tours.
func (s *Server) CreateTour(ctx echo.Context) error {
	var body api.CreateTourJSONRequestBody
	if err := bind(ctx, &body); err != nil {
		return s.fail(ctx, err, "Invalid request body")
	}

	cmd, err := commands.NewCreateTourCommand(
		body.Name,
		deref(body.Description),
		body.Country,
		deref(body.Region),
		deref(body.Price),
		deref(body.Capacity),
		body.IsActive == nil || *body.IsActive,
		deref(body.LocationIds),
	)
	if err != nil {
		return s.fail(ctx, err, "Invalid tour data")
	}

	t, err := s.handlers.CreateTour.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err, "Failed to create tour")
	}
	return ctx.JSON(http.StatusCreated, tourFromDomain(t))
}

// ListLocations handles GET /locations.
func (s *Server) ListLocations(ctx echo.Context) error {
	locations, err := s.handlers.ListLocations.Handle(ctx.Request().Context(), queries.NewListLocationsQuery())
	if err != nil {
		return s.fail(ctx, err, "Failed to retrieve locations")
	}
	return ctx.JSON(http.StatusOK, locationsResponse(locations))
}

// ListLocationsByCountry handles GET /locations/country/{country}. No match is 404.
func (s *Server) ListLocationsByCountry(ctx echo.Context, country string) error {
	locations, err := s.handlers.ListLocations.Handle(ctx.Request().Context(), queries.NewListLocationsByCountryQuery(country))
	if err != nil {
		return s.fail(ctx, err, "Failed to retrieve locations")
	}
	return ctx.JSON(http.StatusOK, locationsResponse(locations))
}

// CreateLocation handles POST /locations.
func (s *Server) CreateLocation(ctx echo.Context) error {
	var body api.CreateLocationJSONRequestBody
	if err := bind(ctx, &body); err != nil {
		return s.fail(ctx, err, "Invalid request body")
	}

	cmd := commands.NewCreateLocationCommand(body.Name, deref(body.Description), body.Country, deref(body.Region))
	l, err := s.handlers.CreateLocation.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err, "Failed to create location")
	}
	return ctx.JSON(http.StatusCreated, locationFromDomain(l))
}

// CreateBooking handles POST /bookings. The response does not wait for the
// notification emails.
func (s *Server) CreateBooking(ctx echo.Context) error {
	var body api.CreateBookingJSONRequestBody
	if err := bind(ctx, &body); err != nil {
		return s.fail(ctx, err, "Invalid request body")
	}

	cmd, err := commands.NewCreateBookingCommand(
		body.TourId,
		body.CustomerName,
		body.CustomerEmail,
		body.CustomerAge,
		body.CustomerCountry,
		body.PreferredDate,
		deref(body.AdditionalServices),
	)
	if err != nil {
		return s.fail(ctx, err, "Invalid booking data")
	}

	b, err := s.handlers.CreateBooking.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err, "Failed to create booking")
	}

	return ctx.JSON(http.StatusCreated, api.BookingCreated{
		Booking: bookingFromDomain(b),
		Message: bookingCreatedMessage,
	})
}

// ListBookings handles GET /bookings - newest first.
func (s *Server) ListBookings(ctx echo.Context) error {
	bookings, err := s.handlers.ListBookings.Handle(ctx.Request().Context(), queries.NewListBookingsQuery())
	if err != nil {
		return s.fail(ctx, err, "Failed to retrieve bookings")
	}

	response := make([]api.Booking, len(bookings))
	for i, b := range bookings {
		response[i] = bookingResponse(b)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetBooking handles GET /bookings/{id}.
func (s *Server) GetBooking(ctx echo.Context, id int) error {
	bookingID, err := pathID(id)
	if err != nil {
		return err
	}

	b, err := s.handlers.GetBooking.Handle(ctx.Request().Context(), queries.NewGetBookingQuery(bookingID))
	if err != nil {
		return s.fail(ctx, err, "Failed to retrieve booking")
	}
	return ctx.JSON(http.StatusOK, bookingResponse(b))
}

// SendContactMessage handles POST /contact. The message is queued for the admin.
func (s *Server) SendContactMessage(ctx echo.Context) error {
	var body api.SendContactMessageJSONRequestBody
	if err := bind(ctx, &body); err != nil {
		return s.fail(ctx, err, "Invalid request body")
	}

	cmd, err := commands.NewSendContactMessageCommand(body.Name, body.Email, body.Subject, body.Message)
	if err != nil {
		return s.fail(ctx, err, "Invalid contact message")
	}

	if err = s.handlers.SendContactMessage.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err, "Failed to send your message")
	}

	return ctx.JSON(http.StatusAccepted, api.ContactAccepted{
		Message: contactQueuedMessage,
		Success: true,
	})
}

func deref[T any](v *T) T {
	var zero T
	if v == nil {
		return zero
	}
	return *v
}
