package queries

import (
	"math"
	"strconv"
	"time"
)

// AnalyticsOverviewResponse holds dashboard totals as of AsOf.
type AnalyticsOverviewResponse struct {
	TotalBookings           int
	TotalCustomers          int
	TotalTours              int
	TotalLocations          int
	ThisMonthBookings       int
	LastMonthBookings       int
	BookingGrowthPercentage float64
	RecentBookings30Days    int
	AsOf                    time.Time
}

// BookingTrend is one calendar month of bookings.
type BookingTrend struct {
	Year            int
	Month           time.Month
	Bookings        int
	UniqueCustomers int
}

// Period renders the month as "June 2025".
func (t BookingTrend) Period() string {
	return t.Month.String() + " " + strconv.Itoa(t.Year)
}

type PopularTour struct {
	ID                     uint
	Name                   string
	Country                string
	Region                 string
	BookingCount           int
	TotalLocationsBooked   int
	AvgLocationsPerBooking float64
}

type CountryDemographic struct {
	Country             string
	UniqueCustomers     int
	TotalBookings       int
	AvgAge              float64
	BookingsPerCustomer float64
}

type AgeGroup struct {
	Label        string
	BookingCount int
}

type CustomerDemographicsResponse struct {
	Countries []CountryDemographic
	AgeGroups []AgeGroup
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
