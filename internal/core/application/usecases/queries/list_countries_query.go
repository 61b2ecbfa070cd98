package queries

import (
	"context"
	"errors"

	"tours/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrListCountriesQueryIsNotConstructed = errors.New(
	"ListCountriesQuery must be created via NewListCountriesQuery constructor",
)

// ListCountriesQuery lists the distinct countries that have active tours.
type ListCountriesQuery struct {
	guard guard.ConstructorGuard
}

func NewListCountriesQuery() ListCountriesQuery {
	return ListCountriesQuery{guard: guard.NewConstructorGuard()}
}

func (q ListCountriesQuery) Validate() error {
	return q.guard.Validate(ErrListCountriesQueryIsNotConstructed)
}

type ListCountriesQueryHandler struct {
	db *gorm.DB
}

func NewListCountriesQueryHandler(db *gorm.DB) ListCountriesQueryHandler {
	return ListCountriesQueryHandler{db: db}
}

// Handle returns countries sorted alphabetically.
func (h ListCountriesQueryHandler) Handle(ctx context.Context, query ListCountriesQuery) ([]string, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	countries := make([]string, 0)
	err := h.db.WithContext(ctx).Raw(`
		SELECT DISTINCT country
		FROM tours
		WHERE is_active
		ORDER BY country
	`).Scan(&countries).Error
	if err != nil {
		return nil, err
	}
	return countries, nil
}
