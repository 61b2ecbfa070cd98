// Package commands contains business operations that modify system state.
// Every command is validated at construction, and its handler owns the
// transaction boundary.
package commands

import (
	"context"

	"tours/internal/core/ports"
)

// Unit of Work interfaces narrowed to what each handler touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// CommitHooks registers work that must only happen after a durable commit.
	CommitHooks interface {
		AfterCommit(hook func(ctx context.Context))
	}

	TourRepoFactory interface {
		TourRepository() ports.TourRepository
	}

	LocationRepoFactory interface {
		LocationRepository() ports.LocationRepository
	}

	BookingRepoFactory interface {
		BookingRepository() ports.BookingRepository
	}

	DeliveryRepoFactory interface {
		DeliveryRepository() ports.DeliveryRepository
	}

	// CatalogUoW manages transactions for tour and location writes.
	CatalogUoW interface {
		TxManager
		TourRepoFactory
		LocationRepoFactory
	}

	CatalogUoWFactory interface {
		Create() CatalogUoW
	}

	// BookingUoW manages the booking workflow transaction: the tour lookup,
	// the booking insert and its delivery records.
	BookingUoW interface {
		TxManager
		CommitHooks
		TourRepoFactory
		BookingRepoFactory
		DeliveryRepoFactory
	}

	BookingUoWFactory interface {
		Create() BookingUoW
	}

	// DeliveryUoW manages notification delivery state.
	DeliveryUoW interface {
		TxManager
		TourRepoFactory
		BookingRepoFactory
		DeliveryRepoFactory
	}

	DeliveryUoWFactory interface {
		Create() DeliveryUoW
	}
)
