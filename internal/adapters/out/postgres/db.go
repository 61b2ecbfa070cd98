package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"tours/internal/adapters/out/postgres/bookingrepo"
	"tours/internal/adapters/out/postgres/catalogrepo"
	"tours/internal/adapters/out/postgres/deliveryrepo"

	_ "github.com/lib/pq" // registers the "postgres" database/sql driver
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	maxOpenConns    = 20
	maxIdleConns    = 5
	connMaxLifetime = 30 * time.Minute
	pingTimeout     = 5 * time.Second
)

// Open connects to dsn through lib/pq and wraps the pool in GORM. With debug
// set, GORM logs every statement.
func Open(ctx context.Context, dsn string, debug bool) (*gorm.DB, error) {
	sqlDB, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err = sqlDB.PingContext(pingCtx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	logLevel := logger.Warn
	if debug {
		logLevel = logger.Info
	}

	db, err := gorm.Open(gorm_postgres.New(gorm_postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("open gorm: %w", err)
	}
	return db, nil
}

// Migrate creates or updates the schema. Tables are listed parents first so
// foreign keys resolve.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&catalogrepo.LocationDTO{},
		&catalogrepo.TourDTO{},
		&catalogrepo.TourLocationDTO{},
		&bookingrepo.BookingDTO{},
		&deliveryrepo.DeliveryDTO{},
	)
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
