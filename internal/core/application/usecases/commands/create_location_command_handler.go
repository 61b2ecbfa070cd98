package commands

import (
	"context"
	"log/slog"

	"tours/internal/core/domain/model/location"
	"tours/internal/pkg/errs"
)

type CreateLocationCommandHandler struct {
	uowFactory CatalogUoWFactory
	logger     *slog.Logger
}

func NewCreateLocationCommandHandler(uowFactory CatalogUoWFactory, logger *slog.Logger) CreateLocationCommandHandler {
	return CreateLocationCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "create_location"),
	}
}

func (h CreateLocationCommandHandler) Handle(ctx context.Context, cmd CreateLocationCommand) (*location.Location, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	l, err := location.NewLocation(cmd.Name(), cmd.Description(), cmd.Country(), cmd.Region())
	if err != nil {
		return nil, errs.CollectValidationError(err)
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, errs.NewPersistenceError("begin location transaction", err)
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.LocationRepository().Add(ctx, l); err != nil {
		return nil, errs.NewPersistenceError("add location", err)
	}
	if err = uow.Commit(ctx); err != nil {
		return nil, errs.NewPersistenceError("commit location", err)
	}

	h.logger.InfoContext(ctx, "location created", "location_id", l.ID())
	return l, nil
}
