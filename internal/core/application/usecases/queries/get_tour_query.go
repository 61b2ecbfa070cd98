package queries

import (
	"errors"

	"tours/internal/pkg/guard"
)

var ErrGetTourQueryIsNotConstructed = errors.New(
	"GetTourQuery must be created via NewGetTourQuery constructor",
)

// GetTourQuery fetches one active tour by id.
//
// Example:
//
//	tour, err := NewGetTourQueryHandler(db).Handle(ctx, NewGetTourQuery(1))
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // unknown or inactive tour
//	}
type GetTourQuery struct {
	id uint

	guard guard.ConstructorGuard
}

func NewGetTourQuery(id uint) GetTourQuery {
	return GetTourQuery{id: id, guard: guard.NewConstructorGuard()}
}

func (q GetTourQuery) Validate() error {
	return q.guard.Validate(ErrGetTourQueryIsNotConstructed)
}

func (q GetTourQuery) ID() uint {
	return q.id
}
