package http

import (
	"context"
	"net/http"

	"tours/internal/adapters/in/http/api"
	"tours/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

type (
	AnalyticsOverviewHandler interface {
		Handle(ctx context.Context, query queries.AnalyticsOverviewQuery) (queries.AnalyticsOverviewResponse, error)
	}
	BookingTrendsHandler interface {
		Handle(ctx context.Context, query queries.BookingTrendsQuery) ([]queries.BookingTrend, error)
	}
	PopularToursHandler interface {
		Handle(ctx context.Context, query queries.PopularToursQuery) ([]queries.PopularTour, error)
	}
	CustomerDemographicsHandler interface {
		Handle(ctx context.Context, query queries.CustomerDemographicsQuery) (queries.CustomerDemographicsResponse, error)
	}
)

// GetAnalyticsOverview handles GET /analytics/overview.
func (s *Server) GetAnalyticsOverview(ctx echo.Context) error {
	overview, err := s.handlers.AnalyticsOverview.Handle(ctx.Request().Context(),
		queries.NewAnalyticsOverviewQuery(s.now()))
	if err != nil {
		return s.fail(ctx, err, "Failed to fetch analytics overview")
	}
	return ctx.JSON(http.StatusOK, api.AnalyticsOverview{
		LastUpdated: overview.AsOf,
		Overview: api.OverviewTotals{
			TotalBookings:           overview.TotalBookings,
			TotalCustomers:          overview.TotalCustomers,
			TotalTours:              overview.TotalTours,
			TotalLocations:          overview.TotalLocations,
			ThisMonthBookings:       overview.ThisMonthBookings,
			BookingGrowthPercentage: overview.BookingGrowthPercentage,
			RecentBookings30Days:    overview.RecentBookings30Days,
		},
	})
}

// GetBookingTrends handles GET /analytics/trends?months=N.
func (s *Server) GetBookingTrends(ctx echo.Context, params api.GetBookingTrendsParams) error {
	query, err := queries.NewBookingTrendsQuery(params.Months, s.now())
	if err != nil {
		return s.fail(ctx, err, "Invalid trends request")
	}

	trends, err := s.handlers.BookingTrends.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err, "Failed to fetch booking trends")
	}

	response := api.BookingTrends{Trends: make([]api.BookingTrend, len(trends)), TotalPeriods: len(trends)}
	for i, t := range trends {
		response.Trends[i] = api.BookingTrend{
			Year:            t.Year,
			Month:           int(t.Month),
			MonthName:       t.Month.String(),
			Period:          t.Period(),
			Bookings:        t.Bookings,
			UniqueCustomers: t.UniqueCustomers,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// ListPopularTours handles GET /analytics/tours/popular?limit=N.
func (s *Server) ListPopularTours(ctx echo.Context, params api.ListPopularToursParams) error {
	query, err := queries.NewPopularToursQuery(params.Limit)
	if err != nil {
		return s.fail(ctx, err, "Invalid popular tours request")
	}

	tours, err := s.handlers.PopularTours.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err, "Failed to fetch popular tours")
	}

	response := api.PopularTours{PopularTours: make([]api.PopularTour, len(tours)), TotalAnalyzed: len(tours)}
	for i, t := range tours {
		response.PopularTours[i] = api.PopularTour{
			Id:                     int(t.ID),
			Name:                   t.Name,
			Country:                t.Country,
			Region:                 optional(t.Region),
			BookingCount:           t.BookingCount,
			TotalLocationsBooked:   t.TotalLocationsBooked,
			AvgLocationsPerBooking: t.AvgLocationsPerBooking,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetCustomerDemographics handles GET /analytics/demographics.
func (s *Server) GetCustomerDemographics(ctx echo.Context) error {
	demographics, err := s.handlers.CustomerDemographics.Handle(ctx.Request().Context(),
		queries.NewCustomerDemographicsQuery())
	if err != nil {
		return s.fail(ctx, err, "Failed to fetch customer demographics")
	}

	response := api.CustomerDemographics{
		CountryDistribution: make([]api.CountryDemographic, len(demographics.Countries)),
		AgeDistribution:     make([]api.AgeDistribution, len(demographics.AgeGroups)),
		TotalCountries:      len(demographics.Countries),
	}
	for i, c := range demographics.Countries {
		response.CountryDistribution[i] = api.CountryDemographic{
			Country:             c.Country,
			UniqueCustomers:     c.UniqueCustomers,
			TotalBookings:       c.TotalBookings,
			AvgAge:              c.AvgAge,
			BookingsPerCustomer: c.BookingsPerCustomer,
		}
	}
	for i, g := range demographics.AgeGroups {
		response.AgeDistribution[i] = api.AgeDistribution{AgeGroup: g.Label, BookingCount: g.BookingCount}
	}
	return ctx.JSON(http.StatusOK, response)
}
