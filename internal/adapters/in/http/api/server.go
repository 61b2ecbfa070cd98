package api

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// (GET /analytics/demographics)
	GetCustomerDemographics(ctx echo.Context) error
	// (GET /analytics/overview)
	GetAnalyticsOverview(ctx echo.Context) error
	// (GET /analytics/tours/popular)
	ListPopularTours(ctx echo.Context, params ListPopularToursParams) error
	// (GET /analytics/trends)
	GetBookingTrends(ctx echo.Context, params GetBookingTrendsParams) error
	// (GET /bookings)
	ListBookings(ctx echo.Context) error
	// (POST /bookings)
	CreateBooking(ctx echo.Context) error
	// (GET /bookings/{id})
	GetBooking(ctx echo.Context, id int) error
	// (POST /contact)
	SendContactMessage(ctx echo.Context) error
	// (GET /health)
	Health(ctx echo.Context) error
	// (GET /locations)
	ListLocations(ctx echo.Context) error
	// (POST /locations)
	CreateLocation(ctx echo.Context) error
	// (GET /locations/country/{country})
	ListLocationsByCountry(ctx echo.Context, country string) error
	// (GET /tours)
	ListTours(ctx echo.Context) error
	// (POST /tours)
	CreateTour(ctx echo.Context) error
	// (GET /tours/countries)
	ListCountries(ctx echo.Context) error
	// (GET /tours/country/{country})
	ListToursByCountry(ctx echo.Context, country string) error
	// (GET /tours/{id})
	GetTour(ctx echo.Context, id int) error
	// (GET /tours/{id}/locations)
	ListTourLocations(ctx echo.Context, id int) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func (w *ServerInterfaceWrapper) GetCustomerDemographics(ctx echo.Context) error {
	return w.Handler.GetCustomerDemographics(ctx)
}

func (w *ServerInterfaceWrapper) GetAnalyticsOverview(ctx echo.Context) error {
	return w.Handler.GetAnalyticsOverview(ctx)
}

func (w *ServerInterfaceWrapper) ListPopularTours(ctx echo.Context) error {
	var params ListPopularToursParams
	if err := bindQueryInt(ctx, "limit", &params.Limit); err != nil {
		return err
	}
	return w.Handler.ListPopularTours(ctx, params)
}

func (w *ServerInterfaceWrapper) GetBookingTrends(ctx echo.Context) error {
	var params GetBookingTrendsParams
	if err := bindQueryInt(ctx, "months", &params.Months); err != nil {
		return err
	}
	return w.Handler.GetBookingTrends(ctx, params)
}

func (w *ServerInterfaceWrapper) ListBookings(ctx echo.Context) error {
	return w.Handler.ListBookings(ctx)
}

func (w *ServerInterfaceWrapper) CreateBooking(ctx echo.Context) error {
	return w.Handler.CreateBooking(ctx)
}

func (w *ServerInterfaceWrapper) GetBooking(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetBooking(ctx, id)
}

func (w *ServerInterfaceWrapper) SendContactMessage(ctx echo.Context) error {
	return w.Handler.SendContactMessage(ctx)
}

func (w *ServerInterfaceWrapper) Health(ctx echo.Context) error {
	return w.Handler.Health(ctx)
}

func (w *ServerInterfaceWrapper) ListLocations(ctx echo.Context) error {
	return w.Handler.ListLocations(ctx)
}

func (w *ServerInterfaceWrapper) CreateLocation(ctx echo.Context) error {
	return w.Handler.CreateLocation(ctx)
}

func (w *ServerInterfaceWrapper) ListLocationsByCountry(ctx echo.Context) error {
	country, err := bindCountry(ctx)
	if err != nil {
		return err
	}
	return w.Handler.ListLocationsByCountry(ctx, country)
}

func (w *ServerInterfaceWrapper) ListTours(ctx echo.Context) error {
	return w.Handler.ListTours(ctx)
}

func (w *ServerInterfaceWrapper) CreateTour(ctx echo.Context) error {
	return w.Handler.CreateTour(ctx)
}

func (w *ServerInterfaceWrapper) ListCountries(ctx echo.Context) error {
	return w.Handler.ListCountries(ctx)
}

func (w *ServerInterfaceWrapper) ListToursByCountry(ctx echo.Context) error {
	country, err := bindCountry(ctx)
	if err != nil {
		return err
	}
	return w.Handler.ListToursByCountry(ctx, country)
}

func (w *ServerInterfaceWrapper) GetTour(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetTour(ctx, id)
}

func (w *ServerInterfaceWrapper) ListTourLocations(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.ListTourLocations(ctx, id)
}

func bindID(ctx echo.Context) (int, error) {
	var id int
	err := runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false})
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}
	return id, nil
}

func bindCountry(ctx echo.Context) (string, error) {
	var country string
	err := runtime.BindStyledParameterWithOptions("simple", "country", ctx.Param("country"), &country,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false})
	if err != nil {
		return "", echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter country: %s", err))
	}
	return country, nil
}

func bindQueryInt(ctx echo.Context, name string, dst **int) error {
	err := runtime.BindQueryParameter("form", true, false, name, ctx.QueryParams(), dst)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
	}
	return nil
}

// EchoRouter is the subset of echo routing used by RegisterHandlers; both
// *echo.Echo and *echo.Group satisfy it.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers the routes under baseURL. write
// applies to the POST routes that create bookings or send messages.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string, write ...echo.MiddlewareFunc) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.GET(baseURL+"/analytics/demographics", wrapper.GetCustomerDemographics)
	router.GET(baseURL+"/analytics/overview", wrapper.GetAnalyticsOverview)
	router.GET(baseURL+"/analytics/tours/popular", wrapper.ListPopularTours)
	router.GET(baseURL+"/analytics/trends", wrapper.GetBookingTrends)
	router.GET(baseURL+"/bookings", wrapper.ListBookings)
	router.POST(baseURL+"/bookings", wrapper.CreateBooking, write...)
	router.GET(baseURL+"/bookings/:id", wrapper.GetBooking)
	router.POST(baseURL+"/contact", wrapper.SendContactMessage, write...)
	router.GET(baseURL+"/health", wrapper.Health)
	router.GET(baseURL+"/locations", wrapper.ListLocations)
	router.POST(baseURL+"/locations", wrapper.CreateLocation)
	router.GET(baseURL+"/locations/country/:country", wrapper.ListLocationsByCountry)
	router.GET(baseURL+"/tours", wrapper.ListTours)
	router.POST(baseURL+"/tours", wrapper.CreateTour)
	router.GET(baseURL+"/tours/countries", wrapper.ListCountries)
	router.GET(baseURL+"/tours/country/:country", wrapper.ListToursByCountry)
	router.GET(baseURL+"/tours/:id", wrapper.GetTour)
	router.GET(baseURL+"/tours/:id/locations", wrapper.ListTourLocations)
}
