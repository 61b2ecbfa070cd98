package queries

import (
	"errors"
	"strings"

	"tours/internal/pkg/guard"
)

var ErrListToursQueryIsNotConstructed = errors.New(
	"ListToursQuery must be created via NewListToursQuery constructor",
)

// ListToursQuery lists active tours ordered by name, optionally restricted to
// one country (case-insensitive exact match).
type ListToursQuery struct {
	country string

	guard guard.ConstructorGuard
}

// NewListToursQuery lists every active tour.
func NewListToursQuery() ListToursQuery {
	return ListToursQuery{guard: guard.NewConstructorGuard()}
}

// NewListToursByCountryQuery lists active tours in country. A blank country
// matches nothing.
func NewListToursByCountryQuery(country string) ListToursQuery {
	return ListToursQuery{country: strings.TrimSpace(country), guard: guard.NewConstructorGuard()}
}

func (q ListToursQuery) Validate() error {
	return q.guard.Validate(ErrListToursQueryIsNotConstructed)
}

func (q ListToursQuery) Country() string {
	return q.country
}
