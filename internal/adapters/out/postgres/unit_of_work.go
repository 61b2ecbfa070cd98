// Package postgres provides the GORM-based Unit of Work and the database
// bootstrap of the tours service.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	if err := uow.BookingRepository().Add(ctx, b); err != nil {
//	    return err
//	}
//	uow.AfterCommit(func(ctx context.Context) {
//	    scheduler.Schedule(ctx, deliveryIDs...)
//	})
//
//	return uow.Commit(ctx)
//
// Each UnitOfWork instance owns at most one transaction and must not be shared
// between goroutines.
package postgres

import (
	"context"

	"tours/internal/adapters/out/postgres/bookingrepo"
	"tours/internal/adapters/out/postgres/catalogrepo"
	"tours/internal/adapters/out/postgres/deliveryrepo"
	"tours/internal/core/ports"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates UnitOfWork instances using GORM database connections.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a fresh UnitOfWork with no active transaction.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{db: f.db}
}

// GormUnitOfWork coordinates a database transaction across repositories and
// runs post-commit hooks once the transaction is durable.
type GormUnitOfWork struct {
	db    *gorm.DB
	tx    *gorm.DB
	hooks []func(ctx context.Context)
}

// Begin starts a transaction. Calling Begin while one is active is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit commits the active transaction, then runs the registered hooks in
// order. Hooks are dropped when the commit fails.
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	hooks := uow.hooks
	uow.hooks = nil
	if err != nil {
		return err
	}

	for _, hook := range hooks {
		hook(ctx)
	}
	return nil
}

// Rollback discards the active transaction and its hooks. Returns
// gorm.ErrInvalidTransaction when nothing is active, e.g. after Commit.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.hooks = nil
	return err
}

func (uow *GormUnitOfWork) AfterCommit(hook func(ctx context.Context)) {
	uow.hooks = append(uow.hooks, hook)
}

// TourRepository runs inside the active transaction, or on the pool otherwise.
// The same holds for every repository accessor below.
func (uow *GormUnitOfWork) TourRepository() ports.TourRepository {
	return catalogrepo.NewGormTourRepository(uow.conn())
}

func (uow *GormUnitOfWork) LocationRepository() ports.LocationRepository {
	return catalogrepo.NewGormLocationRepository(uow.conn())
}

func (uow *GormUnitOfWork) BookingRepository() ports.BookingRepository {
	return bookingrepo.NewGormBookingRepository(uow.conn())
}

func (uow *GormUnitOfWork) DeliveryRepository() ports.DeliveryRepository {
	return deliveryrepo.NewGormDeliveryRepository(uow.conn())
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
