package queries_test

import (
	"testing"
	"time"

	"tours/internal/core/application/usecases/queries"
	"tours/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueries_ConstructedViaConstructor(t *testing.T) {
	require.NoError(t, queries.NewGetTourQuery(1).Validate())
	require.NoError(t, queries.NewListToursQuery().Validate())
	require.NoError(t, queries.NewListCountriesQuery().Validate())
	require.NoError(t, queries.NewListLocationsQuery().Validate())
	require.NoError(t, queries.NewListTourLocationsQuery(1).Validate())
	require.NoError(t, queries.NewGetBookingQuery(1).Validate())
	require.NoError(t, queries.NewListBookingsQuery().Validate())
	require.NoError(t, queries.NewAnalyticsOverviewQuery(time.Now()).Validate())
	require.NoError(t, queries.NewCustomerDemographicsQuery().Validate())
}

func TestQueries_NotConstructedViaConstructor(t *testing.T) {
	assert.ErrorIs(t, queries.GetTourQuery{}.Validate(), queries.ErrGetTourQueryIsNotConstructed)
	assert.ErrorIs(t, queries.ListToursQuery{}.Validate(), queries.ErrListToursQueryIsNotConstructed)
	assert.ErrorIs(t, queries.ListCountriesQuery{}.Validate(), queries.ErrListCountriesQueryIsNotConstructed)
	assert.ErrorIs(t, queries.ListLocationsQuery{}.Validate(), queries.ErrListLocationsQueryIsNotConstructed)
	assert.ErrorIs(t, queries.ListTourLocationsQuery{}.Validate(), queries.ErrListTourLocationsQueryIsNotConstructed)
	assert.ErrorIs(t, queries.GetBookingQuery{}.Validate(), queries.ErrGetBookingQueryIsNotConstructed)
	assert.ErrorIs(t, queries.ListBookingsQuery{}.Validate(), queries.ErrListBookingsQueryIsNotConstructed)
	assert.ErrorIs(t, queries.AnalyticsOverviewQuery{}.Validate(), queries.ErrAnalyticsOverviewQueryIsNotConstructed)
	assert.ErrorIs(t, queries.BookingTrendsQuery{}.Validate(), queries.ErrBookingTrendsQueryIsNotConstructed)
	assert.ErrorIs(t, queries.PopularToursQuery{}.Validate(), queries.ErrPopularToursQueryIsNotConstructed)
	assert.ErrorIs(t, queries.CustomerDemographicsQuery{}.Validate(),
		queries.ErrCustomerDemographicsQueryIsNotConstructed)
}

func TestListQueries_TrimCountry(t *testing.T) {
	assert.Equal(t, "Ghana", queries.NewListToursByCountryQuery("  Ghana ").Country())

	q := queries.NewListLocationsByCountryQuery(" Ghana")
	assert.True(t, q.ByCountry())
	assert.Equal(t, "Ghana", q.Country())
	assert.False(t, queries.NewListLocationsQuery().ByCountry())
}

func TestNewBookingTrendsQuery(t *testing.T) {
	asOf := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)

	q, err := queries.NewBookingTrendsQuery(nil, asOf)
	require.NoError(t, err)
	assert.Equal(t, queries.DefaultTrendMonths, q.Months())
	assert.Equal(t, asOf.AddDate(0, 0, -360), q.Since())

	for _, months := range []int{1, 24} {
		q, err = queries.NewBookingTrendsQuery(&months, asOf)
		require.NoError(t, err)
		assert.Equal(t, months, q.Months())
	}

	for _, months := range []int{0, -1, 25} {
		_, err = queries.NewBookingTrendsQuery(&months, asOf)
		var validation *errs.ValidationError
		require.ErrorAs(t, err, &validation, "months=%d", months)
		assert.Equal(t, []errs.FieldError{{Field: "months", Reason: "must be between 1 and 24"}}, validation.Fields)
	}
}

func TestNewPopularToursQuery(t *testing.T) {
	q, err := queries.NewPopularToursQuery(nil)
	require.NoError(t, err)
	assert.Equal(t, queries.DefaultPopularLimit, q.Limit())

	for _, limit := range []int{5, 50} {
		q, err = queries.NewPopularToursQuery(&limit)
		require.NoError(t, err)
		assert.Equal(t, limit, q.Limit())
	}

	for _, limit := range []int{4, 51} {
		_, err = queries.NewPopularToursQuery(&limit)
		var validation *errs.ValidationError
		require.ErrorAs(t, err, &validation, "limit=%d", limit)
		assert.True(t, validation.Has("limit"))
	}
}
