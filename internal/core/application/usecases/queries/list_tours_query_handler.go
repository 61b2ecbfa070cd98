package queries

import (
	"context"

	"gorm.io/gorm"
)

type ListToursQueryHandler struct {
	db *gorm.DB
}

func NewListToursQueryHandler(db *gorm.DB) ListToursQueryHandler {
	return ListToursQueryHandler{db: db}
}

// Handle never reports an empty result as an error.
func (h ListToursQueryHandler) Handle(ctx context.Context, query ListToursQuery) ([]TourResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tx := h.db.WithContext(ctx)
	if query.Country() == "" {
		tx = tx.Raw(`
			SELECT ` + tourColumns + `
			FROM tours t
			WHERE t.is_active
			ORDER BY t.name, t.id
		`)
	} else {
		tx = tx.Raw(`
			SELECT `+tourColumns+`
			FROM tours t
			WHERE t.is_active AND LOWER(t.country) = LOWER(?)
			ORDER BY t.name, t.id
		`, query.Country())
	}

	rows, err := tx.Rows()
	if err != nil {
		return nil, err
	}
	return collect(rows, scanTour)
}
