package queries

import (
	"context"
	"database/sql"
	"errors"

	"tours/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetTourQueryHandler struct {
	db *gorm.DB
}

func NewGetTourQueryHandler(db *gorm.DB) GetTourQueryHandler {
	return GetTourQueryHandler{db: db}
}

// Handle returns errs.ObjectNotFoundError for unknown and inactive tours alike.
func (h GetTourQueryHandler) Handle(ctx context.Context, query GetTourQuery) (TourResponse, error) {
	if err := query.Validate(); err != nil {
		return TourResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT `+tourColumns+`
		FROM tours t
		WHERE t.id = ? AND t.is_active
	`, query.ID()).Row()

	tour, err := scanTour(row)
	if errors.Is(err, sql.ErrNoRows) {
		return TourResponse{}, errs.NewObjectNotFoundError("tour", query.ID())
	}
	if err != nil {
		return TourResponse{}, err
	}
	return tour, nil
}
