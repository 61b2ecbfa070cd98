package commands

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"tours/internal/core/domain/model/tour"
	"tours/internal/pkg/errs"
)

type CreateTourCommandHandler struct {
	uowFactory CatalogUoWFactory
	logger     *slog.Logger
}

func NewCreateTourCommandHandler(uowFactory CatalogUoWFactory, logger *slog.Logger) CreateTourCommandHandler {
	return CreateTourCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "create_tour"),
	}
}

// Handle inserts the tour and its location links in one transaction. Unknown
// location ids are reported as a validation error on location_ids.
func (h CreateTourCommandHandler) Handle(ctx context.Context, cmd CreateTourCommand) (*tour.Tour, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	t, err := tour.NewTour(cmd.Name(), cmd.Description(), cmd.Country(), cmd.Region(),
		cmd.Price(), cmd.Capacity(), cmd.Active(), cmd.LocationIDs())
	if err != nil {
		return nil, errs.CollectValidationError(err)
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, errs.NewPersistenceError("begin tour transaction", err)
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	missing, err := uow.LocationRepository().FindMissing(ctx, t.LocationIDs())
	if err != nil {
		return nil, errs.NewPersistenceError("check tour locations", err)
	}
	if len(missing) > 0 {
		return nil, errs.NewValidationError(errs.FieldError{
			Field:  "location_ids",
			Reason: "unknown location ids: " + joinIDs(missing),
		})
	}

	if err = uow.TourRepository().Add(ctx, t); err != nil {
		return nil, errs.NewPersistenceError("add tour", err)
	}
	if err = uow.Commit(ctx); err != nil {
		return nil, errs.NewPersistenceError("commit tour", err)
	}

	h.logger.InfoContext(ctx, "tour created", "tour_id", t.ID(), "country", t.Country())
	return t, nil
}

func joinIDs(ids []uint) string {
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, fmt.Sprint(id))
	}
	return strings.Join(parts, ", ")
}
