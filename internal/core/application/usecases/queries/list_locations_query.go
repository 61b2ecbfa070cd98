package queries

import (
	"errors"
	"strings"

	"tours/internal/pkg/guard"
)

var ErrListLocationsQueryIsNotConstructed = errors.New(
	"ListLocationsQuery must be created via NewListLocationsQuery constructor",
)

// ListLocationsQuery lists locations ordered by name. Restricted to a country,
// an empty result is reported as not found.
type ListLocationsQuery struct {
	country string

	guard guard.ConstructorGuard
}

func NewListLocationsQuery() ListLocationsQuery {
	return ListLocationsQuery{guard: guard.NewConstructorGuard()}
}

func NewListLocationsByCountryQuery(country string) ListLocationsQuery {
	return ListLocationsQuery{country: strings.TrimSpace(country), guard: guard.NewConstructorGuard()}
}

func (q ListLocationsQuery) Validate() error {
	return q.guard.Validate(ErrListLocationsQueryIsNotConstructed)
}

func (q ListLocationsQuery) Country() string {
	return q.country
}

// ByCountry reports whether the query is restricted to a country.
func (q ListLocationsQuery) ByCountry() bool {
	return q.country != ""
}
