// Package api holds the HTTP contract of the tours API: the embedded
// OpenAPI document, its request and response types, and the echo routing
// that binds path parameters before calling a ServerInterface.
package api

import "time"

// Booking defines model for Booking.
type Booking struct {
	AdditionalServices *string   `json:"additional_services,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	CustomerAge        int       `json:"customer_age"`
	CustomerCountry    string    `json:"customer_country"`
	CustomerEmail      string    `json:"customer_email"`
	CustomerName       string    `json:"customer_name"`
	Id                 int       `json:"id"`
	PreferredDate      time.Time `json:"preferred_date"`
	ReferenceCode      string    `json:"reference_code"`
	Status             string    `json:"status"`
	TourId             int       `json:"tour_id"`
}

// BookingCreated defines model for BookingCreated.
type BookingCreated struct {
	Booking Booking `json:"booking"`
	Message string  `json:"message"`
}

// ContactAccepted defines model for ContactAccepted.
type ContactAccepted struct {
	Message string `json:"message"`
	Success bool   `json:"success"`
}

// ContactForm defines model for ContactForm.
type ContactForm struct {
	Email   string `json:"email"`
	Message string `json:"message"`
	Name    string `json:"name"`
	Subject string `json:"subject"`
}

// Countries defines model for Countries.
type Countries struct {
	Countries []string `json:"countries"`
}

// Error defines model for Error.
type Error struct {
	Code    int           `json:"code"`
	Errors  *[]FieldError `json:"errors,omitempty"`
	Message string        `json:"message"`
}

// FieldError defines model for FieldError.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// Health defines model for Health.
type Health struct {
	Status string `json:"status"`
}

// Location defines model for Location.
type Location struct {
	Country     string    `json:"country"`
	CreatedAt   time.Time `json:"created_at"`
	Description string    `json:"description"`
	Id          int       `json:"id"`
	Name        string    `json:"name"`
	Region      string    `json:"region"`
}

// NewBooking defines model for NewBooking.
type NewBooking struct {
	AdditionalServices *string `json:"additional_services,omitempty"`
	CustomerAge        int     `json:"customer_age"`
	CustomerCountry    string  `json:"customer_country"`
	CustomerEmail      string  `json:"customer_email"`
	CustomerName       string  `json:"customer_name"`

	// PreferredDate RFC 3339 timestamp, 2006-01-02T15:04:05 or 2006-01-02
	PreferredDate string `json:"preferred_date"`
	TourId        int    `json:"tour_id"`
}

// NewLocation defines model for NewLocation.
type NewLocation struct {
	Country     string  `json:"country"`
	Description *string `json:"description,omitempty"`
	Name        string  `json:"name"`
	Region      *string `json:"region,omitempty"`
}

// NewTour defines model for NewTour.
type NewTour struct {
	Capacity    *int     `json:"capacity,omitempty"`
	Country     string   `json:"country"`
	Description *string  `json:"description,omitempty"`
	IsActive    *bool    `json:"is_active,omitempty"`
	LocationIds *[]int   `json:"location_ids,omitempty"`
	Name        string   `json:"name"`
	Price       *float64 `json:"price,omitempty"`
	Region      *string  `json:"region,omitempty"`
}

// Tour defines model for Tour.
type Tour struct {
	Capacity    int       `json:"capacity"`
	Country     string    `json:"country"`
	CreatedAt   time.Time `json:"created_at"`
	Description string    `json:"description"`
	Id          int       `json:"id"`
	IsActive    bool      `json:"is_active"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	Region      string    `json:"region"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// AgeDistribution defines model for AgeDistribution.
type AgeDistribution struct {
	AgeGroup     string `json:"age_group"`
	BookingCount int    `json:"booking_count"`
}

// AnalyticsOverview defines model for AnalyticsOverview.
type AnalyticsOverview struct {
	LastUpdated time.Time      `json:"last_updated"`
	Overview    OverviewTotals `json:"overview"`
}

// OverviewTotals defines model for AnalyticsOverview.overview.
type OverviewTotals struct {
	BookingGrowthPercentage float64 `json:"booking_growth_percentage"`
	RecentBookings30Days    int     `json:"recent_bookings_30_days"`
	ThisMonthBookings       int     `json:"this_month_bookings"`
	TotalBookings           int     `json:"total_bookings"`
	TotalCustomers          int     `json:"total_customers"`
	TotalLocations          int     `json:"total_locations"`
	TotalTours              int     `json:"total_tours"`
}

// BookingTrend defines model for BookingTrend.
type BookingTrend struct {
	Bookings        int    `json:"bookings"`
	Month           int    `json:"month"`
	MonthName       string `json:"month_name"`
	Period          string `json:"period"`
	UniqueCustomers int    `json:"unique_customers"`
	Year            int    `json:"year"`
}

// BookingTrends defines model for BookingTrends.
type BookingTrends struct {
	TotalPeriods int            `json:"total_periods"`
	Trends       []BookingTrend `json:"trends"`
}

// CountryDemographic defines model for CountryDemographic.
type CountryDemographic struct {
	AvgAge              float64 `json:"avg_age"`
	BookingsPerCustomer float64 `json:"bookings_per_customer"`
	Country             string  `json:"country"`
	TotalBookings       int     `json:"total_bookings"`
	UniqueCustomers     int     `json:"unique_customers"`
}

// CustomerDemographics defines model for CustomerDemographics.
type CustomerDemographics struct {
	AgeDistribution     []AgeDistribution    `json:"age_distribution"`
	CountryDistribution []CountryDemographic `json:"country_distribution"`
	TotalCountries      int                  `json:"total_countries"`
}

// PopularTour defines model for PopularTour.
type PopularTour struct {
	AvgLocationsPerBooking float64 `json:"avg_locations_per_booking"`
	BookingCount           int     `json:"booking_count"`
	Country                string  `json:"country"`
	Id                     int     `json:"id"`
	Name                   string  `json:"name"`
	Region                 *string `json:"region,omitempty"`
	TotalLocationsBooked   int     `json:"total_locations_booked"`
}

// PopularTours defines model for PopularTours.
type PopularTours struct {
	PopularTours  []PopularTour `json:"popular_tours"`
	TotalAnalyzed int           `json:"total_analyzed"`
}

// GetBookingTrendsParams defines parameters for GetBookingTrends.
type GetBookingTrendsParams struct {
	Months *int `form:"months,omitempty" json:"months,omitempty"`
}

// ListPopularToursParams defines parameters for ListPopularTours.
type ListPopularToursParams struct {
	Limit *int `form:"limit,omitempty" json:"limit,omitempty"`
}

// CreateBookingJSONRequestBody defines body for CreateBooking for application/json ContentType.
type CreateBookingJSONRequestBody = NewBooking

// CreateLocationJSONRequestBody defines body for CreateLocation for application/json ContentType.
type CreateLocationJSONRequestBody = NewLocation

// CreateTourJSONRequestBody defines body for CreateTour for application/json ContentType.
type CreateTourJSONRequestBody = NewTour

// SendContactMessageJSONRequestBody defines body for SendContactMessage for application/json ContentType.
type SendContactMessageJSONRequestBody = ContactForm
