package queries

import (
	"context"
	"errors"

	"tours/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrCustomerDemographicsQueryIsNotConstructed = errors.New(
	"CustomerDemographicsQuery must be created via NewCustomerDemographicsQuery constructor",
)

// CustomerDemographicsQuery breaks bookings down by customer country and age band.
type CustomerDemographicsQuery struct {
	guard guard.ConstructorGuard
}

func NewCustomerDemographicsQuery() CustomerDemographicsQuery {
	return CustomerDemographicsQuery{guard: guard.NewConstructorGuard()}
}

func (q CustomerDemographicsQuery) Validate() error {
	return q.guard.Validate(ErrCustomerDemographicsQueryIsNotConstructed)
}

type CustomerDemographicsQueryHandler struct {
	db *gorm.DB
}

func NewCustomerDemographicsQueryHandler(db *gorm.DB) CustomerDemographicsQueryHandler {
	return CustomerDemographicsQueryHandler{db: db}
}

// Handle orders countries by booking count and age bands from youngest up.
// Bands without bookings are omitted.
func (h CustomerDemographicsQueryHandler) Handle(
	ctx context.Context,
	query CustomerDemographicsQuery,
) (CustomerDemographicsResponse, error) {
	if err := query.Validate(); err != nil {
		return CustomerDemographicsResponse{}, err
	}

	db := h.db.WithContext(ctx)
	rows, err := db.Raw(`
		SELECT customer_country, count(DISTINCT customer_email), count(*), avg(customer_age)::float8
		FROM bookings
		WHERE customer_country <> ''
		GROUP BY customer_country
		ORDER BY count(*) DESC, customer_country
	`).Rows()
	if err != nil {
		return CustomerDemographicsResponse{}, err
	}
	countries, err := collect(rows, func(s scanner) (CountryDemographic, error) {
		var c CountryDemographic
		if err := s.Scan(&c.Country, &c.UniqueCustomers, &c.TotalBookings, &c.AvgAge); err != nil {
			return CountryDemographic{}, err
		}
		c.AvgAge = round(c.AvgAge, 1)
		if c.UniqueCustomers > 0 {
			c.BookingsPerCustomer = round(float64(c.TotalBookings)/float64(c.UniqueCustomers), 2)
		}
		return c, nil
	})
	if err != nil {
		return CustomerDemographicsResponse{}, err
	}

	rows, err = db.Raw(`
		SELECT CASE
				WHEN customer_age < 25 THEN 'Under 25'
				WHEN customer_age < 35 THEN '25-34'
				WHEN customer_age < 45 THEN '35-44'
				WHEN customer_age < 55 THEN '45-54'
				WHEN customer_age < 65 THEN '55-64'
				ELSE '65+'
			END AS age_group,
			count(*)
		FROM bookings
		GROUP BY age_group
		ORDER BY min(customer_age)
	`).Rows()
	if err != nil {
		return CustomerDemographicsResponse{}, err
	}
	groups, err := collect(rows, func(s scanner) (AgeGroup, error) {
		var g AgeGroup
		err := s.Scan(&g.Label, &g.BookingCount)
		return g, err
	})
	if err != nil {
		return CustomerDemographicsResponse{}, err
	}

	return CustomerDemographicsResponse{Countries: countries, AgeGroups: groups}, nil
}
