package queries

import (
	"context"

	"tours/internal/pkg/errs"

	"gorm.io/gorm"
)

type ListLocationsQueryHandler struct {
	db *gorm.DB
}

func NewListLocationsQueryHandler(db *gorm.DB) ListLocationsQueryHandler {
	return ListLocationsQueryHandler{db: db}
}

func (h ListLocationsQueryHandler) Handle(ctx context.Context, query ListLocationsQuery) ([]LocationResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tx := h.db.WithContext(ctx)
	if query.ByCountry() {
		tx = tx.Raw(`
			SELECT `+locationColumns+`
			FROM locations l
			WHERE LOWER(l.country) = LOWER(?)
			ORDER BY l.name, l.id
		`, query.Country())
	} else {
		tx = tx.Raw(`
			SELECT ` + locationColumns + `
			FROM locations l
			ORDER BY l.name, l.id
		`)
	}

	rows, err := tx.Rows()
	if err != nil {
		return nil, err
	}
	locations, err := collect(rows, scanLocation)
	if err != nil {
		return nil, err
	}

	if query.ByCountry() && len(locations) == 0 {
		return nil, errs.NewObjectNotFoundError("locations in country", query.Country())
	}
	return locations, nil
}
