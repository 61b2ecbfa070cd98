// Package ports defines the contracts between the tours application core and
// its infrastructure: repositories, the unit of work, the mail transport and
// the background task queue.
package ports

import (
	"context"

	"tours/internal/core/domain/model/location"
	"tours/internal/core/domain/model/tour"
)

// TourRepository is the write-side contract of the tour catalog.
type TourRepository interface {
	// Add persists a new tour together with its location links and assigns its id.
	Add(ctx context.Context, aggregate *tour.Tour) error

	// Get returns a tour regardless of its active flag, or errs.ObjectNotFoundError.
	Get(ctx context.Context, id uint) (*tour.Tour, error)
}

// LocationRepository is the write-side contract for catalog locations.
type LocationRepository interface {
	// Add persists a new location and assigns its id.
	Add(ctx context.Context, aggregate *location.Location) error

	// FindMissing returns the ids among ids that name no location.
	FindMissing(ctx context.Context, ids []uint) ([]uint, error)
}
