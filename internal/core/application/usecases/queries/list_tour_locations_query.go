package queries

import (
	"context"
	"errors"

	"tours/internal/pkg/errs"
	"tours/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrListTourLocationsQueryIsNotConstructed = errors.New(
	"ListTourLocationsQuery must be created via NewListTourLocationsQuery constructor",
)

// ListTourLocationsQuery lists the locations an active tour visits, in visit order.
type ListTourLocationsQuery struct {
	tourID uint

	guard guard.ConstructorGuard
}

func NewListTourLocationsQuery(tourID uint) ListTourLocationsQuery {
	return ListTourLocationsQuery{tourID: tourID, guard: guard.NewConstructorGuard()}
}

func (q ListTourLocationsQuery) Validate() error {
	return q.guard.Validate(ErrListTourLocationsQueryIsNotConstructed)
}

func (q ListTourLocationsQuery) TourID() uint {
	return q.tourID
}

type ListTourLocationsQueryHandler struct {
	db *gorm.DB
}

func NewListTourLocationsQueryHandler(db *gorm.DB) ListTourLocationsQueryHandler {
	return ListTourLocationsQueryHandler{db: db}
}

// Handle returns errs.ObjectNotFoundError when the tour is unknown or inactive.
// A tour without locations yields an empty slice.
func (h ListTourLocationsQueryHandler) Handle(
	ctx context.Context,
	query ListTourLocationsQuery,
) ([]LocationResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	db := h.db.WithContext(ctx)

	var exists bool
	err := db.Raw(`SELECT EXISTS (SELECT 1 FROM tours WHERE id = ? AND is_active)`, query.TourID()).
		Scan(&exists).Error
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errs.NewObjectNotFoundError("tour", query.TourID())
	}

	rows, err := db.Raw(`
		SELECT `+locationColumns+`
		FROM tour_locations tl
		JOIN locations l ON l.id = tl.location_id
		WHERE tl.tour_id = ?
		ORDER BY tl.visit_order, l.id
	`, query.TourID()).Rows()
	if err != nil {
		return nil, err
	}
	return collect(rows, scanLocation)
}
