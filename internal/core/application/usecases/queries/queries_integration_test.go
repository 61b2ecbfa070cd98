package queries_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	postgres_adapter "tours/internal/adapters/out/postgres"
	"tours/internal/adapters/out/postgres/bookingrepo"
	"tours/internal/adapters/out/postgres/catalogrepo"
	"tours/internal/adapters/out/postgres/pgtest"
	"tours/internal/core/application/usecases/queries"
	"tours/internal/core/domain/model/booking"
	"tours/internal/core/domain/model/kernel"
	"tours/internal/core/domain/model/location"
	"tours/internal/core/domain/model/tour"
	"tours/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type QueriesIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
}

func (suite *QueriesIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, dsn, err := pgtest.Run(ctx)
	suite.Require().NoError(err)
	suite.container = container

	db, err := postgres_adapter.Open(ctx, dsn, false)
	suite.Require().NoError(err)
	suite.db = db
	suite.Require().NoError(postgres_adapter.Migrate(db))
}

func (suite *QueriesIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE " + pgtest.Tables + " RESTART IDENTITY CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *QueriesIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *QueriesIntegrationTestSuite) addLocation(name, country string) *location.Location {
	l, err := location.NewLocation(name, "", country, "")
	suite.Require().NoError(err)
	suite.Require().NoError(catalogrepo.NewGormLocationRepository(suite.db).Add(context.Background(), l))
	return l
}

func (suite *QueriesIntegrationTestSuite) addTour(name, country string, active bool, locationIDs ...uint) *tour.Tour {
	t, err := tour.NewTour(name, "About "+name, country, "", 100, 10, active, locationIDs)
	suite.Require().NoError(err)
	suite.Require().NoError(catalogrepo.NewGormTourRepository(suite.db).Add(context.Background(), t))
	return t
}

func (suite *QueriesIntegrationTestSuite) addBooking(code booking.ReferenceCode, tourID uint) *booking.Booking {
	email, err := kernel.NewEmail("customer_email", "john@example.com")
	suite.Require().NoError(err)
	b, err := booking.NewBooking(code, tourID,
		booking.Customer{Name: "John Doe", Email: email, Age: 30, Country: "USA"},
		time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), "")
	suite.Require().NoError(err)
	suite.Require().NoError(bookingrepo.NewGormBookingRepository(suite.db).Add(context.Background(), b))
	return b
}

func (suite *QueriesIntegrationTestSuite) TestGetTour() {
	ctx := context.Background()
	active := suite.addTour("Gold Coast Explorer", "Ghana", true)
	inactive := suite.addTour("Closed Season", "Ghana", false)
	handler := queries.NewGetTourQueryHandler(suite.db)

	first, err := handler.Handle(ctx, queries.NewGetTourQuery(active.ID()))
	suite.Require().NoError(err)
	suite.Equal("Gold Coast Explorer", first.Name)
	suite.Equal("Ghana", first.Country)
	suite.InDelta(100.0, first.Price, 0.001)
	suite.True(first.IsActive)

	second, err := handler.Handle(ctx, queries.NewGetTourQuery(active.ID()))
	suite.Require().NoError(err)
	suite.Equal(first.ID, second.ID, "Reads must be idempotent")
	suite.Equal(first.Name, second.Name)
	suite.True(first.CreatedAt.Equal(second.CreatedAt))

	_, err = handler.Handle(ctx, queries.NewGetTourQuery(inactive.ID()))
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	_, err = handler.Handle(ctx, queries.NewGetTourQuery(9999))
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	_, err = handler.Handle(ctx, queries.GetTourQuery{})
	suite.Require().ErrorIs(err, queries.ErrGetTourQueryIsNotConstructed)
}

func (suite *QueriesIntegrationTestSuite) TestListTours_OrderedByNameActiveOnly() {
	suite.addTour("Volta Lake", "Ghana", true)
	suite.addTour("Atlas Trek", "Morocco", true)
	suite.addTour("Hidden", "Ghana", false)

	result, err := queries.NewListToursQueryHandler(suite.db).Handle(context.Background(), queries.NewListToursQuery())

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal("Atlas Trek", result[0].Name)
	suite.Equal("Volta Lake", result[1].Name)
}

func (suite *QueriesIntegrationTestSuite) TestListToursByCountry() {
	ctx := context.Background()
	suite.addTour("Volta Lake", "Ghana", true)
	suite.addTour("Cape Coast", "Ghana", true)
	suite.addTour("Atlas Trek", "Morocco", true)
	handler := queries.NewListToursQueryHandler(suite.db)

	ghana, err := handler.Handle(ctx, queries.NewListToursByCountryQuery("ghana"))
	suite.Require().NoError(err)
	suite.Require().Len(ghana, 2)
	for _, t := range ghana {
		suite.Equal("Ghana", t.Country)
	}

	atlantis, err := handler.Handle(ctx, queries.NewListToursByCountryQuery("Atlantis"))
	suite.Require().NoError(err)
	suite.NotNil(atlantis)
	suite.Empty(atlantis)

	partial, err := handler.Handle(ctx, queries.NewListToursByCountryQuery("Gha"))
	suite.Require().NoError(err)
	suite.Empty(partial, "Country match must be exact")
}

func (suite *QueriesIntegrationTestSuite) TestListCountries() {
	suite.addTour("Volta Lake", "Ghana", true)
	suite.addTour("Cape Coast", "Ghana", true)
	suite.addTour("Atlas Trek", "Morocco", true)
	suite.addTour("Fjords", "Norway", false)

	countries, err := queries.NewListCountriesQueryHandler(suite.db).
		Handle(context.Background(), queries.NewListCountriesQuery())

	suite.Require().NoError(err)
	suite.Equal([]string{"Ghana", "Morocco"}, countries)
}

func (suite *QueriesIntegrationTestSuite) TestListLocations() {
	ctx := context.Background()
	suite.addLocation("Mole", "Ghana")
	suite.addLocation("Elmina", "Ghana")
	suite.addLocation("Marrakesh", "Morocco")
	handler := queries.NewListLocationsQueryHandler(suite.db)

	all, err := handler.Handle(ctx, queries.NewListLocationsQuery())
	suite.Require().NoError(err)
	suite.Require().Len(all, 3)
	suite.Equal("Elmina", all[0].Name)

	ghana, err := handler.Handle(ctx, queries.NewListLocationsByCountryQuery("GHANA"))
	suite.Require().NoError(err)
	suite.Len(ghana, 2)

	_, err = handler.Handle(ctx, queries.NewListLocationsByCountryQuery("Atlantis"))
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueriesIntegrationTestSuite) TestListLocations_EmptyCatalog() {
	result, err := queries.NewListLocationsQueryHandler(suite.db).
		Handle(context.Background(), queries.NewListLocationsQuery())

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *QueriesIntegrationTestSuite) TestListTourLocations_InVisitOrder() {
	ctx := context.Background()
	mole := suite.addLocation("Mole", "Ghana")
	elmina := suite.addLocation("Elmina", "Ghana")
	t := suite.addTour("Grand Ghana", "Ghana", true, mole.ID(), elmina.ID())
	bare := suite.addTour("Day Trip", "Ghana", true)
	handler := queries.NewListTourLocationsQueryHandler(suite.db)

	result, err := handler.Handle(ctx, queries.NewListTourLocationsQuery(t.ID()))
	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal("Mole", result[0].Name)
	suite.Equal("Elmina", result[1].Name)

	empty, err := handler.Handle(ctx, queries.NewListTourLocationsQuery(bare.ID()))
	suite.Require().NoError(err)
	suite.Empty(empty)

	_, err = handler.Handle(ctx, queries.NewListTourLocationsQuery(9999))
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueriesIntegrationTestSuite) TestGetBooking() {
	ctx := context.Background()
	t := suite.addTour("Gold Coast Explorer", "Ghana", true)
	b := suite.addBooking("BKG-QRY001", t.ID())
	handler := queries.NewGetBookingQueryHandler(suite.db)

	result, err := handler.Handle(ctx, queries.NewGetBookingQuery(b.ID()))
	suite.Require().NoError(err)
	suite.Equal("BKG-QRY001", result.ReferenceCode)
	suite.Equal(t.ID(), result.TourID)
	suite.Equal("John Doe", result.CustomerName)
	suite.Equal("john@example.com", result.CustomerEmail)
	suite.Equal(30, result.CustomerAge)
	suite.Equal("USA", result.CustomerCountry)
	suite.True(time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC).Equal(result.PreferredDate))
	suite.Equal("pending", result.Status)

	_, err = handler.Handle(ctx, queries.NewGetBookingQuery(9999))
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueriesIntegrationTestSuite) TestListBookings_NewestFirst() {
	t := suite.addTour("Gold Coast Explorer", "Ghana", true)
	older := suite.addBooking("BKG-OLD001", t.ID())
	newer := suite.addBooking("BKG-NEW001", t.ID())

	result, err := queries.NewListBookingsQueryHandler(suite.db).
		Handle(context.Background(), queries.NewListBookingsQuery())

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal(newer.ID(), result[0].ID)
	suite.Equal(older.ID(), result[1].ID)
}

func (suite *QueriesIntegrationTestSuite) TestHandle_ContextCancellation_ReturnsError() {
	suite.addTour("Gold Coast Explorer", "Ghana", true)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := queries.NewListToursQueryHandler(suite.db).Handle(ctx, queries.NewListToursQuery())
	suite.Require().Error(err)
	suite.Nil(result)
}

type customerBooking struct {
	code    booking.ReferenceCode
	email   string
	age     int
	country string
	created time.Time
}

func (suite *QueriesIntegrationTestSuite) addCustomerBookings(tourID uint, bookings ...customerBooking) {
	repo := bookingrepo.NewGormBookingRepository(suite.db)
	for _, cb := range bookings {
		email, err := kernel.NewEmail("customer_email", cb.email)
		suite.Require().NoError(err)
		b, err := booking.NewBooking(cb.code, tourID,
			booking.Customer{Name: "Guest", Email: email, Age: cb.age, Country: cb.country},
			time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC), "")
		suite.Require().NoError(err)
		suite.Require().NoError(repo.Add(context.Background(), b))
		suite.Require().NoError(suite.db.Exec("UPDATE bookings SET created_at = ? WHERE id = ?", cb.created, b.ID()).Error)
	}
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 9, 0, 0, 0, time.UTC)
}

func (suite *QueriesIntegrationTestSuite) TestAnalyticsOverview() {
	asOf := time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)
	suite.addLocation("Elmina", "Ghana")
	heritage := suite.addTour("Heritage Trail", "Ghana", true)
	suite.addTour("Atlas Trek", "Morocco", true)
	suite.addTour("Closed Season", "Ghana", false)
	suite.addCustomerBookings(heritage.ID(),
		customerBooking{"BKG-MAR001", "ama@example.com", 30, "Ghana", time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)},
		customerBooking{"BKG-MAR002", "ama@example.com", 30, "Ghana", day(2025, time.March, 10)},
		customerBooking{"BKG-MAR003", "kofi@example.com", 41, "Ghana", day(2025, time.March, 14)},
		customerBooking{"BKG-FEB001", "jane@example.com", 28, "USA", day(2025, time.February, 1)},
		customerBooking{"BKG-FEB002", "ama@example.com", 30, "Ghana", day(2025, time.February, 20)},
		customerBooking{"BKG-OLD001", "old@example.com", 55, "UK", day(2024, time.January, 5)},
	)

	result, err := queries.NewAnalyticsOverviewQueryHandler(suite.db).
		Handle(context.Background(), queries.NewAnalyticsOverviewQuery(asOf))

	suite.Require().NoError(err)
	suite.Equal(6, result.TotalBookings)
	suite.Equal(4, result.TotalCustomers)
	suite.Equal(2, result.TotalTours, "Inactive tours are not counted")
	suite.Equal(1, result.TotalLocations)
	suite.Equal(3, result.ThisMonthBookings)
	suite.Equal(2, result.LastMonthBookings)
	suite.InDelta(50.0, result.BookingGrowthPercentage, 0.001)
	suite.Equal(4, result.RecentBookings30Days)
	suite.True(asOf.Equal(result.AsOf))
}

func (suite *QueriesIntegrationTestSuite) TestAnalyticsOverview_EmptyAndNoPriorMonth() {
	handler := queries.NewAnalyticsOverviewQueryHandler(suite.db)
	asOf := time.Date(2025, time.January, 20, 0, 0, 0, 0, time.UTC)

	empty, err := handler.Handle(context.Background(), queries.NewAnalyticsOverviewQuery(asOf))
	suite.Require().NoError(err)
	suite.Zero(empty.TotalBookings)
	suite.Zero(empty.BookingGrowthPercentage)

	t := suite.addTour("Heritage Trail", "Ghana", true)
	suite.addCustomerBookings(t.ID(),
		customerBooking{"BKG-JAN001", "ama@example.com", 30, "Ghana", day(2025, time.January, 3)})

	result, err := handler.Handle(context.Background(), queries.NewAnalyticsOverviewQuery(asOf))
	suite.Require().NoError(err)
	suite.Equal(1, result.ThisMonthBookings)
	suite.Zero(result.LastMonthBookings)
	suite.Zero(result.BookingGrowthPercentage, "Growth is zero without bookings last month")

	_, err = handler.Handle(context.Background(), queries.AnalyticsOverviewQuery{})
	suite.Require().ErrorIs(err, queries.ErrAnalyticsOverviewQueryIsNotConstructed)
}

func (suite *QueriesIntegrationTestSuite) TestBookingTrends_GroupsByMonthWithinWindow() {
	asOf := time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)
	t := suite.addTour("Heritage Trail", "Ghana", true)
	suite.addCustomerBookings(t.ID(),
		customerBooking{"BKG-DEC000", "old@example.com", 30, "Ghana", day(2024, time.December, 1)},
		customerBooking{"BKG-DEC001", "ama@example.com", 30, "Ghana", day(2024, time.December, 20)},
		customerBooking{"BKG-JAN001", "ama@example.com", 30, "Ghana", day(2025, time.January, 5)},
		customerBooking{"BKG-JAN002", "kofi@example.com", 30, "Ghana", day(2025, time.January, 6)},
		customerBooking{"BKG-JAN003", "ama@example.com", 30, "Ghana", day(2025, time.January, 7)},
		customerBooking{"BKG-MAR001", "jane@example.com", 30, "USA", day(2025, time.March, 1)},
	)
	months := 3
	query, err := queries.NewBookingTrendsQuery(&months, asOf)
	suite.Require().NoError(err)

	trends, err := queries.NewBookingTrendsQueryHandler(suite.db).Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal([]queries.BookingTrend{
		{Year: 2024, Month: time.December, Bookings: 1, UniqueCustomers: 1},
		{Year: 2025, Month: time.January, Bookings: 3, UniqueCustomers: 2},
		{Year: 2025, Month: time.March, Bookings: 1, UniqueCustomers: 1},
	}, trends)
	suite.Equal("January 2025", trends[1].Period())
}

func (suite *QueriesIntegrationTestSuite) TestBookingTrends_Empty() {
	query, err := queries.NewBookingTrendsQuery(nil, time.Now())
	suite.Require().NoError(err)

	trends, err := queries.NewBookingTrendsQueryHandler(suite.db).Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(trends)
	suite.Empty(trends)
}

func (suite *QueriesIntegrationTestSuite) TestPopularTours_RankedByBookings() {
	mole := suite.addLocation("Mole", "Ghana")
	elmina := suite.addLocation("Elmina", "Ghana")
	grand := suite.addTour("Grand Ghana", "Ghana", true, mole.ID(), elmina.ID())
	dayTrip := suite.addTour("Day Trip", "Ghana", true)
	suite.addTour("Never Booked", "Ghana", true)
	now := time.Now()
	suite.addCustomerBookings(dayTrip.ID(),
		customerBooking{"BKG-DAY001", "ama@example.com", 30, "Ghana", now})
	suite.addCustomerBookings(grand.ID(),
		customerBooking{"BKG-GRD001", "ama@example.com", 30, "Ghana", now},
		customerBooking{"BKG-GRD002", "kofi@example.com", 30, "Ghana", now},
		customerBooking{"BKG-GRD003", "jane@example.com", 30, "USA", now},
	)
	query, err := queries.NewPopularToursQuery(nil)
	suite.Require().NoError(err)

	result, err := queries.NewPopularToursQueryHandler(suite.db).Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2, "Tours without bookings are left out")
	suite.Equal(queries.PopularTour{
		ID: grand.ID(), Name: "Grand Ghana", Country: "Ghana",
		BookingCount: 3, TotalLocationsBooked: 6, AvgLocationsPerBooking: 2,
	}, result[0])
	suite.Equal("Day Trip", result[1].Name)
	suite.Equal(1, result[1].BookingCount)
	suite.Zero(result[1].TotalLocationsBooked)
}

func (suite *QueriesIntegrationTestSuite) TestPopularTours_HonoursLimit() {
	now := time.Now()
	for i, name := range []string{"A", "B", "C", "D", "E", "F"} {
		t := suite.addTour("Tour "+name, "Ghana", true)
		suite.addCustomerBookings(t.ID(), customerBooking{
			booking.ReferenceCode(fmt.Sprintf("BKG-LIM%03d", i)), "ama@example.com", 30, "Ghana", now,
		})
	}
	limit := 5
	query, err := queries.NewPopularToursQuery(&limit)
	suite.Require().NoError(err)

	result, err := queries.NewPopularToursQueryHandler(suite.db).Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Len(result, 5)
	suite.Equal("Tour A", result[0].Name, "Ties are broken by tour id")
}

func (suite *QueriesIntegrationTestSuite) TestCustomerDemographics() {
	t := suite.addTour("Heritage Trail", "Ghana", true)
	now := time.Now()
	suite.addCustomerBookings(t.ID(),
		customerBooking{"BKG-DEM001", "ama@example.com", 30, "Ghana", now},
		customerBooking{"BKG-DEM002", "ama@example.com", 40, "Ghana", now},
		customerBooking{"BKG-DEM003", "kofi@example.com", 22, "Ghana", now},
		customerBooking{"BKG-DEM004", "jane@example.com", 70, "USA", now},
	)

	result, err := queries.NewCustomerDemographicsQueryHandler(suite.db).
		Handle(context.Background(), queries.NewCustomerDemographicsQuery())

	suite.Require().NoError(err)
	suite.Equal([]queries.CountryDemographic{
		{Country: "Ghana", UniqueCustomers: 2, TotalBookings: 3, AvgAge: 30.7, BookingsPerCustomer: 1.5},
		{Country: "USA", UniqueCustomers: 1, TotalBookings: 1, AvgAge: 70, BookingsPerCustomer: 1},
	}, result.Countries)
	suite.Equal([]queries.AgeGroup{
		{Label: "Under 25", BookingCount: 1},
		{Label: "25-34", BookingCount: 1},
		{Label: "35-44", BookingCount: 1},
		{Label: "65+", BookingCount: 1},
	}, result.AgeGroups)
}

func (suite *QueriesIntegrationTestSuite) TestCustomerDemographics_Empty() {
	result, err := queries.NewCustomerDemographicsQueryHandler(suite.db).
		Handle(context.Background(), queries.NewCustomerDemographicsQuery())

	suite.Require().NoError(err)
	suite.NotNil(result.Countries)
	suite.Empty(result.Countries)
	suite.Empty(result.AgeGroups)
}

func TestQueriesIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(QueriesIntegrationTestSuite))
}
