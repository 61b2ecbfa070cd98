package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork per command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a business transaction boundary. Repositories obtained after
// Begin share its transaction.
type UnitOfWork interface {
	Begin(ctx context.Context) error

	// Commit commits the transaction and then runs the AfterCommit hooks in
	// registration order. Hooks never run when the commit fails.
	Commit(ctx context.Context) error

	// Rollback discards the transaction and its pending hooks.
	// Returns an error if no transaction is active.
	Rollback(ctx context.Context) error

	// AfterCommit registers hook to run once the transaction is durable.
	AfterCommit(hook func(ctx context.Context))

	TourRepository() TourRepository
	LocationRepository() LocationRepository
	BookingRepository() BookingRepository
	DeliveryRepository() DeliveryRepository
}
