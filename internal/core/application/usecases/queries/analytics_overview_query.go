package queries

import (
	"context"
	"errors"
	"time"

	"tours/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrAnalyticsOverviewQueryIsNotConstructed = errors.New(
	"AnalyticsOverviewQuery must be created via NewAnalyticsOverviewQuery constructor",
)

const recentWindow = 30 * 24 * time.Hour

// AnalyticsOverviewQuery computes dashboard totals. Calendar months are
// taken in UTC.
type AnalyticsOverviewQuery struct {
	asOf time.Time

	guard guard.ConstructorGuard
}

func NewAnalyticsOverviewQuery(asOf time.Time) AnalyticsOverviewQuery {
	return AnalyticsOverviewQuery{asOf: asOf.UTC(), guard: guard.NewConstructorGuard()}
}

func (q AnalyticsOverviewQuery) Validate() error {
	return q.guard.Validate(ErrAnalyticsOverviewQueryIsNotConstructed)
}

func (q AnalyticsOverviewQuery) AsOf() time.Time {
	return q.asOf
}

type AnalyticsOverviewQueryHandler struct {
	db *gorm.DB
}

func NewAnalyticsOverviewQueryHandler(db *gorm.DB) AnalyticsOverviewQueryHandler {
	return AnalyticsOverviewQueryHandler{db: db}
}

// Handle reports growth as the percentage change from last month to this
// month, or zero when last month had no bookings.
func (h AnalyticsOverviewQueryHandler) Handle(ctx context.Context, query AnalyticsOverviewQuery) (AnalyticsOverviewResponse, error) {
	if err := query.Validate(); err != nil {
		return AnalyticsOverviewResponse{}, err
	}

	asOf := query.AsOf()
	thisMonth := time.Date(asOf.Year(), asOf.Month(), 1, 0, 0, 0, 0, time.UTC)
	nextMonth := thisMonth.AddDate(0, 1, 0)
	lastMonth := thisMonth.AddDate(0, -1, 0)

	out := AnalyticsOverviewResponse{AsOf: asOf}
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			(SELECT count(*) FROM bookings),
			(SELECT count(DISTINCT customer_email) FROM bookings),
			(SELECT count(*) FROM tours WHERE is_active),
			(SELECT count(*) FROM locations),
			(SELECT count(*) FROM bookings WHERE created_at >= ? AND created_at < ?),
			(SELECT count(*) FROM bookings WHERE created_at >= ? AND created_at < ?),
			(SELECT count(*) FROM bookings WHERE created_at >= ?)
	`, thisMonth, nextMonth, lastMonth, thisMonth, asOf.Add(-recentWindow)).Row().Scan(
		&out.TotalBookings, &out.TotalCustomers, &out.TotalTours, &out.TotalLocations,
		&out.ThisMonthBookings, &out.LastMonthBookings, &out.RecentBookings30Days,
	)
	if err != nil {
		return AnalyticsOverviewResponse{}, err
	}

	if out.LastMonthBookings > 0 {
		change := float64(out.ThisMonthBookings-out.LastMonthBookings) / float64(out.LastMonthBookings)
		out.BookingGrowthPercentage = round(change*100, 2)
	}
	return out, nil
}
